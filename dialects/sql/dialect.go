package sql

import (
	"fmt"
	"slices"
	"strings"
)

// Dialect identifies a SQL dialect accepted by the parser.
type Dialect string

// Built-in dialects.
const (
	DialectDefault   Dialect = "DEFAULT"
	DialectMySQL     Dialect = "MYSQL"
	DialectPostgres  Dialect = "POSTGRES"
	DialectSQLite    Dialect = "SQLITE"
	DialectSQLServer Dialect = "SQLSERVER"
)

// DialectFeatures describes the syntax a dialect accepts beyond the common core.
type DialectFeatures struct {
	// Identifier quoting styles.
	DoubleQuotes bool
	Backticks    bool
	Brackets     bool

	// DoubleQuotedStrings treats "..." in value position as a string literal.
	DoubleQuotedStrings bool

	// LimitComma accepts LIMIT offset, count.
	LimitComma bool

	// Top accepts SELECT TOP n.
	Top bool
}

var dialects = make(map[Dialect]DialectFeatures)

//nolint:gochecknoinits // Built-in dialect registration
func init() {
	RegisterDialect(DialectDefault, DialectFeatures{
		DoubleQuotes: true,
		Backticks:    true,
		Brackets:     true,
		LimitComma:   true,
		Top:          true,
	})
	RegisterDialect(DialectMySQL, DialectFeatures{
		Backticks:           true,
		DoubleQuotedStrings: true,
		LimitComma:          true,
	})
	RegisterDialect(DialectPostgres, DialectFeatures{DoubleQuotes: true})
	RegisterDialect(DialectSQLite, DialectFeatures{
		DoubleQuotes: true,
		Backticks:    true,
		Brackets:     true,
		LimitComma:   true,
	})
	RegisterDialect(DialectSQLServer, DialectFeatures{
		DoubleQuotes: true,
		Brackets:     true,
		Top:          true,
	})
}

// RegisterDialect registers the features of a dialect by name.
// Registering an existing name replaces its features.
func RegisterDialect(d Dialect, features DialectFeatures) {
	dialects[d] = features
}

// Features returns the registered features of the dialect.
func (d Dialect) Features() (DialectFeatures, error) {
	features, ok := dialects[d]
	if !ok {
		return DialectFeatures{}, fmt.Errorf("%w: %s", ErrUnknownDialect, d)
	}

	return features, nil
}

// ParseDialect returns the dialect registered under name, ignoring case.
// An empty name yields DialectDefault.
func ParseDialect(name string) (Dialect, error) {
	if strings.TrimSpace(name) == "" {
		return DialectDefault, nil
	}

	d := Dialect(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := dialects[d]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}

	return d, nil
}

// RegisteredDialects returns the names of all registered dialects, sorted.
func RegisteredDialects() []Dialect {
	names := make([]Dialect, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// UnmarshalText implements encoding.TextUnmarshaler so dialects can be read
// from YAML configuration files.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
