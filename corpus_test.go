package sql2cypher_test

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rlch/sql2cypher"
)

// translationCase is one entry of testdata/translations.yaml.
type translationCase struct {
	Name          string            `yaml:"name"`
	SQL           string            `yaml:"sql"`
	Cypher        string            `yaml:"cypher"`
	TableMappings map[string]string `yaml:"table_mappings"`
	JoinMappings  map[string]string `yaml:"join_mappings"`
	Pretty        bool              `yaml:"pretty"`
}

func loadTranslations(t *testing.T) []translationCase {
	t.Helper()

	data, err := os.ReadFile("testdata/translations.yaml")
	require.NoError(t, err)

	var cases []translationCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func TestTranslate_Corpus(t *testing.T) {
	t.Parallel()

	for _, tc := range loadTranslations(t) {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			b := sql2cypher.NewConfigBuilder().
				PrettyPrint(tc.Pretty).
				TableToLabelMappings(tc.TableMappings).
				JoinColumnsToTypeMappings(tc.JoinMappings)

			got := translate(t, b, tc.SQL)
			if diff := cmp.Diff(tc.Cypher, got); diff != "" {
				t.Errorf("Translate(%q) mismatch (-want +got):\n%s", tc.SQL, diff)
			}
		})
	}
}

func TestTranslate_Golden(t *testing.T) {
	t.Parallel()

	graph := map[string]string{
		"person":   "Person",
		"movie":    "Movie",
		"acted_in": "ACTED_IN",
	}

	tests := []struct {
		name string
		sql  string
	}{
		{
			name: "select_join_chain",
			sql: `SELECT p.name, r.roles, m.title
				FROM person p
				JOIN acted_in r ON p.id = r.person_id
				JOIN movie m ON m.id = r.movie_id
				WHERE m.released BETWEEN 1990 AND 2000 AND p.born IS NOT NULL
				ORDER BY m.released DESC, p.name
				LIMIT 25 OFFSET 50`,
		},
		{
			name: "select_expressions",
			sql: `SELECT p.name AS name,
				CASE WHEN p.born < 1970 THEN 'old' ELSE 'young' END AS generation,
				coalesce(p.nickname, upper(p.name)) AS display,
				round(p.rating * 100) / 100 AS rating
				FROM person p
				WHERE NOT (p.name = 'Keanu' OR p.name = :excluded)`,
		},
		{
			name: "insert_rows",
			sql:  `INSERT INTO movie (title, released, tagline) VALUES ('The Matrix', 1999, 'Welcome'), ('Speed', 1994, NULL)`,
		},
		{
			name: "delete_where",
			sql:  `DELETE FROM person WHERE person.born < ? AND (person.name, person.born) < ('M', 1960)`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translate(t, sql2cypher.NewConfigBuilder().TableToLabelMappings(graph), tt.sql)

			g := goldie.New(t,
				goldie.WithFixtureDir("testdata/golden"),
				goldie.WithNameSuffix(".golden"),
			)
			g.Assert(t, tt.name, []byte(got+"\n"))
		})
	}
}
