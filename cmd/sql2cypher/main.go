// Command sql2cypher translates SQL statements into Cypher.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := newCommand()

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		cli.HandleExitCoder(cli.Exit(formatError(os.Stderr, err), 1))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:                  "sql2cypher",
		Usage:                 "Translate SQL statements into Cypher",
		ArgsUsage:             "<sql> [sql...]",
		Version:               version(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: nearest .sql2cypher.yaml)",
				Sources: cli.EnvVars("SQL2CYPHER_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "parse-name-case",
				Usage:   "identifier folding on parse (as_is, lower, lower_if_unquoted, upper, upper_if_unquoted, default)",
				Sources: cli.EnvVars("SQL2CYPHER_PARSE_NAME_CASE"),
			},
			&cli.StringMapFlag{
				Name:    "table-to-label-mapping",
				Aliases: []string{"l"},
				Usage:   "table to node label, as table=Label",
				Sources: cli.EnvVars("SQL2CYPHER_TABLE_TO_LABEL_MAPPINGS"),
			},
			&cli.StringMapFlag{
				Name:    "join-column-to-type-mapping",
				Aliases: []string{"j"},
				Usage:   "join column to relationship type, as table.column=TYPE",
				Sources: cli.EnvVars("SQL2CYPHER_JOIN_COLUMN_TO_TYPE_MAPPINGS"),
			},
			&cli.StringFlag{
				Name:    "sql-dialect",
				Aliases: []string{"d"},
				Usage:   "SQL dialect (default, mysql, postgres, sqlite, sqlserver)",
				Sources: cli.EnvVars("SQL2CYPHER_SQL_DIALECT"),
			},
			&cli.StringFlag{
				Name:    "named-param-prefix",
				Usage:   "sigil of named parameters (one of :@$&#)",
				Sources: cli.EnvVars("SQL2CYPHER_NAMED_PARAM_PREFIX"),
			},
			&cli.BoolFlag{
				Name:    "disable-pretty-printing",
				Usage:   "render each statement on a single line",
				Sources: cli.EnvVars("SQL2CYPHER_DISABLE_PRETTY_PRINTING"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log parser diagnostics and translation tracing to stderr",
				Sources: cli.EnvVars("SQL2CYPHER_DEBUG"),
			},
		},
		Action: runTranslate,
	}
}
