package sql

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"go.uber.org/zap"

	sqlgrammar "github.com/rlch/sql2cypher/dialects/sql/grammar"
)

// DefaultNamedParamPrefix is the sigil of named parameters when none is set.
const DefaultNamedParamPrefix = ":"

// namedParamPrefixes are the sigils the lexer recognizes.
const namedParamPrefixes = ":@$&#"

// Settings configure a Parser.
type Settings struct {
	// Dialect selects the accepted syntax. Empty means DialectDefault.
	Dialect Dialect

	// NameCase folds identifiers as they are parsed.
	NameCase NameCase

	// NamedParamPrefix is the sigil of named parameters. Blank means ":".
	NamedParamPrefix string

	// Meta is consulted to resolve unqualified columns and to attach table
	// and column comments to the model.
	Meta *Meta

	// Logger receives diagnostics when Diagnostics is set.
	Logger      *zap.Logger
	Diagnostics bool
}

// Parser turns SQL text into the typed model. A Parser holds no per-call
// state and is safe for concurrent use.
type Parser struct {
	settings Settings
	features DialectFeatures
	prefix   string
	log      *zap.Logger
}

// NewParser validates the settings and returns a parser.
func NewParser(settings Settings) (*Parser, error) {
	if settings.Dialect == "" {
		settings.Dialect = DialectDefault
	}

	features, err := settings.Dialect.Features()
	if err != nil {
		return nil, err
	}

	prefix := strings.TrimSpace(settings.NamedParamPrefix)
	if prefix == "" {
		prefix = DefaultNamedParamPrefix
	}

	if len(prefix) != 1 || !strings.Contains(namedParamPrefixes, prefix) {
		return nil, fmt.Errorf("%w: named parameter prefix %q is not one of %q",
			ErrInvalidSettings, settings.NamedParamPrefix, namedParamPrefixes)
	}

	log := settings.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Parser{
		settings: settings,
		features: features,
		prefix:   prefix,
		log:      log.Named("sql"),
	}, nil
}

// Settings returns the settings the parser was built with.
func (p *Parser) Settings() Settings {
	return p.settings
}

// Parse parses a single statement. Errors unwrap to ErrParse.
func (p *Parser) Parse(query string) (Statement, error) {
	script, err := sqlgrammar.Parse(query)
	if err != nil {
		return nil, syntaxError(err)
	}

	c := &converter{p: p, query: query}

	return c.statement(script.Statement)
}

// syntaxError converts a participle error into a ParseError.
func syntaxError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &ParseError{Pos: perr.Position(), Msg: perr.Message()}
	}

	return &ParseError{Msg: err.Error()}
}

func (p *Parser) diag(msg string, fields ...zap.Field) {
	if p.settings.Diagnostics {
		p.log.Debug(msg, fields...)
	}
}
