package sql2cypher

import (
	"errors"
	"fmt"

	"github.com/rlch/sql2cypher/dialects/sql"
)

// Sentinel errors.
var (
	// ErrParse is returned when the SQL parser rejects the input.
	ErrParse = sql.ErrParse

	// ErrUnsupportedStatement is returned for statement kinds that have no
	// Cypher translation.
	ErrUnsupportedStatement = errors.New("sql2cypher: unsupported statement")

	// ErrUnsupportedExpression is returned for fields and functions that have
	// no Cypher translation.
	ErrUnsupportedExpression = errors.New("sql2cypher: unsupported expression")

	// ErrUnsupportedCondition is returned for predicates that have no Cypher
	// translation.
	ErrUnsupportedCondition = errors.New("sql2cypher: unsupported condition")

	// ErrUnsupportedJoin is returned for joins that cannot become a pattern.
	ErrUnsupportedJoin = errors.New("sql2cypher: unsupported join")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("sql2cypher: invalid configuration")

	// ErrConfigNotFound is returned when no configuration file is found.
	ErrConfigNotFound = errors.New("sql2cypher: no .sql2cypher.yaml found")
)

// UnsupportedError reports a construct without a translation. Node is the
// offending part rendered back to SQL.
type UnsupportedError struct {
	Kind error
	Node string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Node)
}

// Unwrap returns the sentinel in Kind.
func (e *UnsupportedError) Unwrap() error {
	return e.Kind
}
