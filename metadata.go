package sql2cypher

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rlch/sql2cypher/dialects/sql"
)

// Comment keys understood by the translator.
const (
	labelKey = "label"
	typeKey  = "type"
)

// buildMeta synthesizes table definitions from the label and type mappings.
// Names are folded with the parse name case so that they match the folded
// identifiers of parsed queries.
func buildMeta(cfg Config) (*sql.Meta, error) {
	fold := func(name string) string {
		return cfg.parseNameCase.Fold(strings.TrimSpace(name), false)
	}

	var (
		tables = make(map[string]*sql.TableBuilder)
		order  []*sql.TableBuilder
	)

	table := func(name string) *sql.TableBuilder {
		if t, ok := tables[name]; ok {
			return t
		}

		t := sql.CreateTable(name)
		tables[name] = t
		order = append(order, t)

		return t
	}

	for _, name := range sortedKeys(cfg.tableToLabelMappings) {
		table(fold(name)).Comment(labelKey + "=" + cfg.tableToLabelMappings[name])
	}

	for _, key := range sortedKeys(cfg.joinColumnsToTypeMappings) {
		tableName, column, ok := strings.Cut(key, ".")
		if !ok || strings.TrimSpace(tableName) == "" || strings.TrimSpace(column) == "" {
			return nil, fmt.Errorf("%w: join column %q is not of the form table.column", ErrConfig, key)
		}

		table(fold(tableName)).Column(fold(column), typeKey+"="+cfg.joinColumnsToTypeMappings[key])
	}

	return sql.NewMeta(order...), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
