package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rlch/sql2cypher"
)

// ErrNoStatements is returned when no SQL is given.
var ErrNoStatements = errors.New("no SQL statements given")

func runTranslate(ctx context.Context, cmd *cli.Command) error {
	queries := cmd.Args().Slice()
	if len(queries) == 0 {
		return ErrNoStatements
	}

	logger, err := newLogger(cmd.Bool("debug"))
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	cfg, err := buildConfig(cmd, logger)
	if err != nil {
		return err
	}

	results, err := translateAll(ctx, sql2cypher.With(cfg), queries)

	for i, r := range results {
		if i > 0 && cfg.PrettyPrint() {
			_, _ = fmt.Fprintln(cmd.Root().Writer)
		}

		_, _ = fmt.Fprintln(cmd.Root().Writer, r)
	}

	return err
}

// buildConfig layers the flags over the config file.
func buildConfig(cmd *cli.Command, logger *zap.Logger) (sql2cypher.Config, error) {
	fc, err := loadFileConfig(cmd.String("config"))
	if err != nil {
		return sql2cypher.Config{}, err
	}

	fc.TableToLabelMappings = merge(fc.TableToLabelMappings, cmd.StringMap("table-to-label-mapping"))
	fc.JoinColumnsToTypeMappings = merge(fc.JoinColumnsToTypeMappings, cmd.StringMap("join-column-to-type-mapping"))

	if cmd.IsSet("parse-name-case") {
		fc.ParseNameCase = cmd.String("parse-name-case")
	}

	if cmd.IsSet("sql-dialect") {
		fc.SQLDialect = cmd.String("sql-dialect")
	}

	if cmd.IsSet("named-param-prefix") {
		fc.NamedParamPrefix = cmd.String("named-param-prefix")
	}

	if cmd.Bool("disable-pretty-printing") {
		pretty := false
		fc.PrettyPrint = &pretty
	}

	if cmd.Bool("debug") {
		fc.DiagnosticLogging = true
	}

	b, err := fc.Builder()
	if err != nil {
		return sql2cypher.Config{}, err
	}

	return b.Logger(logger).Build()
}

// loadFileConfig loads path, or the nearest config above the working
// directory when path is empty. A missing config yields the defaults.
func loadFileConfig(path string) (*sql2cypher.FileConfig, error) {
	if path != "" {
		return sql2cypher.LoadConfigFile(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	fc, err := sql2cypher.LoadConfig(cwd)
	if errors.Is(err, sql2cypher.ErrConfigNotFound) {
		return &sql2cypher.FileConfig{}, nil
	}

	return fc, err
}

func merge(base, override map[string]string) map[string]string {
	out := maps.Clone(base)
	if out == nil {
		out = make(map[string]string, len(override))
	}

	maps.Copy(out, override)

	return out
}

// translateAll translates queries concurrently. The results are in input
// order and stop before the first failing statement.
func translateAll(ctx context.Context, t *sql2cypher.Translator, queries []string) ([]string, error) {
	results := make([]string, len(queries))
	errs := make([]error, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = t.Translate(q)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			if len(queries) == 1 {
				return nil, err
			}

			return results[:i], fmt.Errorf("statement %d: %w", i+1, err)
		}
	}

	return results, nil
}
