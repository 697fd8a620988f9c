package sql2cypher

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

// Translator turns SQL statements into Cypher. A Translator is immutable and
// safe for concurrent use.
type Translator struct {
	cfg    Config
	parser *sql.Parser
	log    *zap.Logger

	// err is the configuration error reported by every call.
	err error
}

// Default returns a translator with the default configuration.
func Default() *Translator {
	return With(DefaultConfig())
}

// With returns a translator for cfg. Invalid configuration surfaces from the
// first Translate call as an error wrapping ErrConfig.
func With(cfg Config) *Translator {
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	t := &Translator{cfg: cfg, log: cfg.logger.Named("translator")}

	meta, err := buildMeta(cfg)
	if err != nil {
		t.err = err
		return t
	}

	t.parser, err = sql.NewParser(cfg.parserSettings(meta))
	if err != nil {
		t.err = fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return t
}

// Config returns the configuration of t.
func (t *Translator) Config() Config {
	return t.cfg
}

// Translate parses query as a single statement and renders its Cypher
// translation.
func (t *Translator) Translate(query string) (string, error) {
	stmt, err := t.TranslateStatement(query)
	if err != nil {
		return "", err
	}

	format := cypher.Compact
	if t.cfg.prettyPrint {
		format = cypher.Pretty
	}

	return cypher.Render(stmt, format), nil
}

// TranslateStatement parses query and returns the Cypher statement without
// rendering it.
func (t *Translator) TranslateStatement(query string) (*cypher.Statement, error) {
	if t.err != nil {
		return nil, t.err
	}

	start := time.Now()

	parsed, err := t.parser.Parse(query)
	if err != nil {
		return nil, err
	}

	stmt, err := newTranslation(t.cfg).statement(parsed)
	if err != nil {
		return nil, err
	}

	t.log.Debug("translated statement",
		zap.String("sql", strings.TrimSpace(query)),
		zap.String("kind", statementKind(parsed)),
		zap.Duration("duration", time.Since(start)))

	return stmt, nil
}

func statementKind(s sql.Statement) string {
	switch s.(type) {
	case *sql.Select:
		return "select"
	case *sql.Insert:
		return "insert"
	case *sql.Delete:
		return "delete"
	case *sql.Truncate:
		return "truncate"
	default:
		return fmt.Sprintf("%T", s)
	}
}
