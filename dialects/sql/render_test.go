package sql_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/sql2cypher/dialects/sql"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		nameCase sql.NameCase
		want     string
	}{
		{
			"select",
			"SELECT t.a AS x, 'it''s' FROM My_Table AS t WHERE t.a = 1 AND t.b IS NULL ORDER BY x DESC LIMIT :n",
			sql.NameCaseLower,
			"SELECT t.a AS x, 'it''s' FROM my_table AS t WHERE (t.a = 1 AND t.b IS NULL) ORDER BY x DESC LIMIT :n",
		},
		{
			"upper names",
			"SELECT t.a FROM t",
			sql.NameCaseUpper,
			"SELECT T.A FROM T",
		},
		{
			"join",
			"SELECT * FROM a JOIN b ON a.id = b.a_id",
			sql.NameCaseLower,
			"SELECT * FROM a JOIN b ON a.id = b.a_id",
		},
		{
			"insert",
			"INSERT INTO person (name, age) VALUES ('A', 1), ('B', -2)",
			sql.NameCaseLower,
			"INSERT INTO person (name, age) VALUES ('A', 1), ('B', -2)",
		},
		{
			"delete",
			"DELETE FROM person WHERE NOT (id BETWEEN SYMMETRIC 1 AND ?)",
			sql.NameCaseLower,
			"DELETE FROM person WHERE NOT (person.id BETWEEN SYMMETRIC 1 AND ?)",
		},
		{"truncate", "TRUNCATE person", sql.NameCaseLower, "TRUNCATE TABLE person"},
		{
			"case and cast",
			"SELECT CASE WHEN 1 = 1 THEN CAST(2 AS VARCHAR(10)) ELSE -t.a END FROM t",
			sql.NameCaseLower,
			"SELECT CASE WHEN 1 = 1 THEN CAST(2 AS VARCHAR(10)) ELSE -t.a END FROM t",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stmt := parse(t, sql.Settings{NameCase: sql.NameCaseLowerIfUnquoted}, tt.query)

			if diff := cmp.Diff(tt.want, sql.Render(stmt, tt.nameCase)); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseComment(t *testing.T) {
	t.Parallel()

	got := sql.ParseComment("label=Person, type = KNOWS,broken,=x,extra=a=b")
	want := map[string]string{"label": "Person", "type": "KNOWS", "extra": "a=b"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseComment() mismatch (-want +got):\n%s", diff)
	}

	label, ok := sql.CommentValue("label=Person", "label")
	assert.True(t, ok)
	assert.Equal(t, "Person", label)

	_, ok = sql.CommentValue("  ", "label")
	assert.False(t, ok)
}

func TestMeta(t *testing.T) {
	t.Parallel()

	meta := sql.NewMeta(
		sql.CreateTable("person").Column("a", "type=A").Column("a", "type=B").Comment("label=Person"),
		sql.CreateTable("movie"),
	)

	tables := meta.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "person", tables[0].Name)
	assert.Equal(t, "movie", tables[1].Name)

	person := meta.Table("person")
	require.Len(t, person.Columns(), 1)
	assert.Equal(t, "type=B", person.Column("a").Comment)
	assert.Nil(t, person.Column("b"))
	assert.Nil(t, meta.Table("nope"))

	var empty *sql.Meta
	assert.Nil(t, empty.Table("person"))
}

func TestParseNameCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    sql.NameCase
		wantErr bool
	}{
		{"lower_if_unquoted", sql.NameCaseLowerIfUnquoted, false},
		{"LOWER-IF-UNQUOTED", sql.NameCaseLowerIfUnquoted, false},
		{" as_is ", sql.NameCaseAsIs, false},
		{"default", sql.NameCaseDefault, false},
		{"upper", sql.NameCaseUpper, false},
		{"camel", sql.NameCaseDefault, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := sql.ParseNameCase(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, sql.ErrUnknownNameCase)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDialect(t *testing.T) {
	t.Parallel()

	d, err := sql.ParseDialect("mysql")
	require.NoError(t, err)
	assert.Equal(t, sql.DialectMySQL, d)

	d, err = sql.ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, sql.DialectDefault, d)

	_, err = sql.ParseDialect("oracle")
	require.ErrorIs(t, err, sql.ErrUnknownDialect)

	assert.Equal(t,
		[]sql.Dialect{sql.DialectDefault, sql.DialectMySQL, sql.DialectPostgres, sql.DialectSQLite, sql.DialectSQLServer},
		sql.RegisteredDialects())
}
