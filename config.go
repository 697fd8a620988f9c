package sql2cypher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rlch/sql2cypher/dialects/sql"
)

// ----------------------------------------------------------------------------
// Translator configuration
// ----------------------------------------------------------------------------

// Config holds the translator options. It is immutable once built; use Modify
// to derive a changed copy.
type Config struct {
	parseNameCase             sql.NameCase
	renderNameCase            sql.NameCase
	diagnosticLogging         bool
	logger                    *zap.Logger
	tableToLabelMappings      map[string]string
	joinColumnsToTypeMappings map[string]string
	sqlDialect                sql.Dialect
	prettyPrint               bool
	parseNamedParamPrefix     string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	cfg, _ := NewConfigBuilder().Build()
	return cfg
}

// ParseNameCase is the folding applied to identifiers while parsing.
func (c Config) ParseNameCase() sql.NameCase { return c.parseNameCase }

// RenderNameCase is the folding applied to SQL shown in error messages.
func (c Config) RenderNameCase() sql.NameCase { return c.renderNameCase }

// DiagnosticLogging reports whether parser diagnostics are logged.
func (c Config) DiagnosticLogging() bool { return c.diagnosticLogging }

// Logger returns the logger. It is never nil.
func (c Config) Logger() *zap.Logger { return c.logger }

// TableToLabelMappings returns a copy of the table to label mappings.
func (c Config) TableToLabelMappings() map[string]string {
	return maps.Clone(c.tableToLabelMappings)
}

// JoinColumnsToTypeMappings returns a copy of the table.column to
// relationship type mappings.
func (c Config) JoinColumnsToTypeMappings() map[string]string {
	return maps.Clone(c.joinColumnsToTypeMappings)
}

// SQLDialect is the dialect used for parsing.
func (c Config) SQLDialect() sql.Dialect { return c.sqlDialect }

// PrettyPrint reports whether output is pretty printed.
func (c Config) PrettyPrint() bool { return c.prettyPrint }

// ParseNamedParamPrefix returns the named parameter sigil, or "" when the
// parser default applies.
func (c Config) ParseNamedParamPrefix() string { return c.parseNamedParamPrefix }

// Modify returns a builder initialized from c.
func (c Config) Modify() *Builder {
	cfg := c
	cfg.tableToLabelMappings = maps.Clone(c.tableToLabelMappings)
	cfg.joinColumnsToTypeMappings = maps.Clone(c.joinColumnsToTypeMappings)

	return &Builder{cfg: cfg}
}

// parserSettings returns the parser settings for c and the given metadata.
func (c Config) parserSettings(meta *sql.Meta) sql.Settings {
	return sql.Settings{
		Dialect:          c.sqlDialect,
		NameCase:         c.parseNameCase,
		NamedParamPrefix: c.parseNamedParamPrefix,
		Meta:             meta,
		Logger:           c.logger,
		Diagnostics:      c.diagnosticLogging,
	}
}

// ----------------------------------------------------------------------------
// Builder
// ----------------------------------------------------------------------------

// Builder builds a Config.
type Builder struct {
	cfg Config
}

// NewConfigBuilder returns a builder holding the defaults.
func NewConfigBuilder() *Builder {
	return &Builder{cfg: Config{
		parseNameCase:             sql.NameCaseLowerIfUnquoted,
		renderNameCase:            sql.NameCaseLower,
		logger:                    zap.NewNop(),
		tableToLabelMappings:      map[string]string{},
		joinColumnsToTypeMappings: map[string]string{},
		sqlDialect:                sql.DialectDefault,
		prettyPrint:               true,
	}}
}

// ParseNameCase sets the identifier folding used while parsing.
func (b *Builder) ParseNameCase(c sql.NameCase) *Builder {
	b.cfg.parseNameCase = c
	return b
}

// RenderNameCase sets the folding of SQL shown in error messages.
func (b *Builder) RenderNameCase(c sql.NameCase) *Builder {
	b.cfg.renderNameCase = c
	return b
}

// DiagnosticLogging enables parser diagnostics.
func (b *Builder) DiagnosticLogging(enabled bool) *Builder {
	b.cfg.diagnosticLogging = enabled
	return b
}

// Logger sets the logger. Nil restores the no-op logger.
func (b *Builder) Logger(l *zap.Logger) *Builder {
	if l == nil {
		l = zap.NewNop()
	}

	b.cfg.logger = l

	return b
}

// TableToLabelMappings replaces the table to label mappings.
func (b *Builder) TableToLabelMappings(m map[string]string) *Builder {
	b.cfg.tableToLabelMappings = cloneOrEmpty(m)
	return b
}

// JoinColumnsToTypeMappings replaces the table.column to relationship type
// mappings.
func (b *Builder) JoinColumnsToTypeMappings(m map[string]string) *Builder {
	b.cfg.joinColumnsToTypeMappings = cloneOrEmpty(m)
	return b
}

// SQLDialect sets the parse dialect.
func (b *Builder) SQLDialect(d sql.Dialect) *Builder {
	b.cfg.sqlDialect = d
	return b
}

// PrettyPrint toggles pretty printing.
func (b *Builder) PrettyPrint(enabled bool) *Builder {
	b.cfg.prettyPrint = enabled
	return b
}

// ParseNamedParamPrefix sets the named parameter sigil. Blank restores the
// parser default.
func (b *Builder) ParseNamedParamPrefix(prefix string) *Builder {
	b.cfg.parseNamedParamPrefix = strings.TrimSpace(prefix)
	return b
}

// Build validates the options and returns the config.
func (b *Builder) Build() (Config, error) {
	cfg := b.cfg
	cfg.tableToLabelMappings = maps.Clone(b.cfg.tableToLabelMappings)
	cfg.joinColumnsToTypeMappings = maps.Clone(b.cfg.joinColumnsToTypeMappings)

	if cfg.sqlDialect == "" {
		cfg.sqlDialect = sql.DialectDefault
	}

	if _, err := cfg.sqlDialect.Features(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	switch cfg.renderNameCase {
	case sql.NameCaseDefault, sql.NameCaseAsIs, sql.NameCaseLower, sql.NameCaseUpper:
	default:
		return Config{}, fmt.Errorf("%w: render name case %s is not supported", ErrConfig, cfg.renderNameCase)
	}

	if _, ok := nameCases[cfg.parseNameCase]; !ok {
		return Config{}, fmt.Errorf("%w: unknown parse name case %s", ErrConfig, cfg.parseNameCase)
	}

	if p := cfg.parseNamedParamPrefix; p != "" && (len(p) != 1 || !strings.Contains(namedParamPrefixes, p)) {
		return Config{}, fmt.Errorf("%w: named parameter prefix %q is not one of %q", ErrConfig, p, namedParamPrefixes)
	}

	for key := range cfg.joinColumnsToTypeMappings {
		if !strings.Contains(key, ".") {
			return Config{}, fmt.Errorf("%w: join column %q is not of the form table.column", ErrConfig, key)
		}
	}

	return cfg, nil
}

const namedParamPrefixes = ":@$&#"

var nameCases = map[sql.NameCase]struct{}{
	sql.NameCaseDefault:         {},
	sql.NameCaseAsIs:            {},
	sql.NameCaseLower:           {},
	sql.NameCaseLowerIfUnquoted: {},
	sql.NameCaseUpper:           {},
	sql.NameCaseUpperIfUnquoted: {},
}

func cloneOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}

	return maps.Clone(m)
}

// ParseNameCaseFromString parses a name case, ignoring case.
func ParseNameCaseFromString(s string) (sql.NameCase, error) {
	c, err := sql.ParseNameCase(s)
	if err != nil {
		return sql.NameCaseDefault, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return c, nil
}

// ParseDialect parses a dialect name, ignoring case.
func ParseDialect(s string) (sql.Dialect, error) {
	d, err := sql.ParseDialect(s)
	if err != nil {
		return sql.DialectDefault, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return d, nil
}

// ----------------------------------------------------------------------------
// Configuration files
// ----------------------------------------------------------------------------

// FileConfig is the content of a .sql2cypher.yaml file.
type FileConfig struct {
	ParseNameCase             string            `yaml:"parse_name_case,omitempty"`
	RenderNameCase            string            `yaml:"render_name_case,omitempty"`
	SQLDialect                string            `yaml:"sql_dialect,omitempty"`
	NamedParamPrefix          string            `yaml:"named_param_prefix,omitempty"`
	PrettyPrint               *bool             `yaml:"pretty_print,omitempty"`
	DiagnosticLogging         bool              `yaml:"diagnostic_logging,omitempty"`
	TableToLabelMappings      map[string]string `yaml:"table_to_label_mappings,omitempty"`
	JoinColumnsToTypeMappings map[string]string `yaml:"join_columns_to_type_mappings,omitempty"`
}

// Builder converts the file into a builder. Unset keys keep their defaults.
func (f *FileConfig) Builder() (*Builder, error) {
	b := NewConfigBuilder().
		ParseNamedParamPrefix(f.NamedParamPrefix).
		DiagnosticLogging(f.DiagnosticLogging).
		TableToLabelMappings(f.TableToLabelMappings).
		JoinColumnsToTypeMappings(f.JoinColumnsToTypeMappings)

	if f.ParseNameCase != "" {
		c, err := ParseNameCaseFromString(f.ParseNameCase)
		if err != nil {
			return nil, err
		}

		b.ParseNameCase(c)
	}

	if f.RenderNameCase != "" {
		c, err := ParseNameCaseFromString(f.RenderNameCase)
		if err != nil {
			return nil, err
		}

		b.RenderNameCase(c)
	}

	if f.SQLDialect != "" {
		d, err := ParseDialect(f.SQLDialect)
		if err != nil {
			return nil, err
		}

		b.SQLDialect(d)
	}

	if f.PrettyPrint != nil {
		b.PrettyPrint(*f.PrettyPrint)
	}

	return b, nil
}

// DefaultConfigNames are the filenames we search for.
var DefaultConfigNames = []string{".sql2cypher.yaml", ".sql2cypher.yml", "sql2cypher.yaml", "sql2cypher.yml"}

// LoadConfig finds and loads the nearest config file walking up from dir.
func LoadConfig(dir string) (*FileConfig, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return nil, err
	}

	return LoadConfigFile(path)
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)

			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}

		dir = parent
	}
}

// LoadConfigFile loads a config from a specific path. Unknown keys are
// rejected.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}

	return &cfg, nil
}
