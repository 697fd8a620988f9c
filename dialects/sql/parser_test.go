package sql_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/sql2cypher/dialects/sql"
)

var cmpModel = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmpopts.IgnoreUnexported(sql.TableMeta{}),
}

func num(n int64) *sql.Param {
	return &sql.Param{Inline: true, Value: decimal.NewFromInt(n)}
}

func str(s string) *sql.Param {
	return &sql.Param{Inline: true, Value: s}
}

func mustParser(t *testing.T, settings sql.Settings) *sql.Parser {
	t.Helper()

	p, err := sql.NewParser(settings)
	require.NoError(t, err)

	return p
}

func parse(t *testing.T, settings sql.Settings, query string) sql.Statement {
	t.Helper()

	stmt, err := mustParser(t, settings).Parse(query)
	require.NoError(t, err)

	return stmt
}

func TestParser_Select(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{NameCase: sql.NameCaseLowerIfUnquoted},
		"SELECT t.a, T.B FROM My_Table AS t WHERE t.a = 1")

	tbl := &sql.TableRef{Name: "my_table", Alias: "t"}
	want := &sql.Select{
		Fields: []sql.SelectField{
			&sql.TableField{Table: tbl, Name: "a"},
			&sql.TableField{Table: tbl, Name: "b"},
		},
		From: []sql.Table{tbl},
		Where: &sql.Compare{
			Op:    sql.OpEq,
			Left:  &sql.TableField{Table: tbl, Name: "a"},
			Right: num(1),
		},
	}

	if diff := cmp.Diff(want, got, cmpModel); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_TableIdentity(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{}, "SELECT a.x, b.x FROM t a, t b").(*sql.Select)
	require.Len(t, got.From, 2)

	first := got.Fields[0].(*sql.TableField)
	second := got.Fields[1].(*sql.TableField)

	assert.Same(t, got.From[0], first.Table)
	assert.Same(t, got.From[1], second.Table)
	assert.NotSame(t, first.Table, second.Table)
}

func TestParser_AliasHidesTableName(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{},
		"SELECT r.since, rr.role FROM a JOIN r AS rr ON a.id = rr.aid JOIN b ON rr.bid = b.id").(*sql.Select)

	since := got.Fields[0].(*sql.TableField)
	role := got.Fields[1].(*sql.TableField)

	inner := got.From[0].(*sql.Join).Left.(*sql.Join)
	assert.Same(t, inner.Right, role.Table)
	assert.NotSame(t, inner.Right, since.Table)
	assert.Equal(t, "r", since.Table.Name)
	assert.False(t, since.Table.Aliased())
}

func TestParser_Joins(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{},
		"SELECT * FROM a JOIN ab ON a.id = ab.a_id LEFT JOIN b ON ab.b_id = b.id").(*sql.Select)
	require.Len(t, got.From, 1)

	outer, ok := got.From[0].(*sql.Join)
	require.True(t, ok, "expected a join, got %T", got.From[0])
	assert.Equal(t, sql.JoinLeft, outer.Kind)

	inner, ok := outer.Left.(*sql.Join)
	require.True(t, ok, "expected a nested join, got %T", outer.Left)
	assert.Equal(t, sql.JoinInner, inner.Kind)

	on := outer.On.(*sql.Compare)
	assert.Same(t, inner.Right, on.Left.(*sql.TableField).Table)
	assert.Same(t, outer.Right, on.Right.(*sql.TableField).Table)
}

func TestParser_UnqualifiedColumns(t *testing.T) {
	t.Parallel()

	meta := sql.NewMeta(
		sql.CreateTable("a").Column("name", ""),
		sql.CreateTable("b").Column("title", ""),
	)

	t.Run("single table", func(t *testing.T) {
		t.Parallel()

		got := parse(t, sql.Settings{}, "DELETE FROM person WHERE id = 1").(*sql.Delete)
		cmpare := got.Where.(*sql.Compare)
		assert.Same(t, got.From, cmpare.Left.(*sql.TableField).Table)
	})

	t.Run("resolved through metadata", func(t *testing.T) {
		t.Parallel()

		got := parse(t, sql.Settings{Meta: meta}, "SELECT name, title FROM a, b").(*sql.Select)
		assert.Same(t, got.From[0], got.Fields[0].(*sql.TableField).Table)
		assert.Same(t, got.From[1], got.Fields[1].(*sql.TableField).Table)
	})

	t.Run("unresolvable", func(t *testing.T) {
		t.Parallel()

		got := parse(t, sql.Settings{Meta: meta}, "SELECT other FROM a, b").(*sql.Select)
		assert.Equal(t, &sql.UnqualifiedField{Name: "other"}, got.Fields[0])
	})

	t.Run("order by alias", func(t *testing.T) {
		t.Parallel()

		got := parse(t, sql.Settings{}, "SELECT t.a AS x FROM t ORDER BY x").(*sql.Select)
		assert.Equal(t, &sql.AliasRef{Name: "x"}, got.OrderBy[0].Field)
	})
}

func TestParser_Metadata(t *testing.T) {
	t.Parallel()

	meta := sql.NewMeta(sql.CreateTable("person").Comment("label=Person").Column("city_id", "type=LIVES_IN"))

	got := parse(t, sql.Settings{Meta: meta}, "SELECT p.city_id FROM person p").(*sql.Select)
	field := got.Fields[0].(*sql.TableField)

	assert.Equal(t, "label=Person", field.Table.Comment())
	require.NotNil(t, field.Column())
	assert.Equal(t, "type=LIVES_IN", field.Column().Comment)
}

func TestParser_Literals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  sql.Field
	}{
		{"integer", "SELECT 42", num(42)},
		{"negative integer", "SELECT -42", num(-42)},
		{"double negation", "SELECT - -1", num(1)},
		{"decimal", "SELECT 1.25", &sql.Param{Inline: true, Value: decimal.RequireFromString("1.25")}},
		{"string", "SELECT 'it''s'", str("it's")},
		{"true", "SELECT TRUE", &sql.Boolean{Value: true}},
		{"false", "SELECT false", &sql.Boolean{Value: false}},
		{"null", "SELECT NULL", &sql.Null{}},
		{"named param", "SELECT :limit", &sql.Param{Name: "limit"}},
		{"anonymous param", "SELECT ?", &sql.Param{}},
		{"negated column", "SELECT -t.a FROM t", &sql.Neg{Arg: &sql.TableField{Table: &sql.TableRef{Name: "t"}, Name: "a"}}},
		{
			"precedence", "SELECT 1 + 2 * 3",
			&sql.Arithmetic{Op: sql.OpAdd, Left: num(1), Right: &sql.Arithmetic{Op: sql.OpMul, Left: num(2), Right: num(3)}},
		},
		{
			"cast", "SELECT CAST(1 AS double precision)",
			&sql.Cast{Field: num(1), Type: sql.DataType{Name: "DOUBLE PRECISION"}},
		},
		{
			"standard substring", "SELECT SUBSTRING('abc' FROM 2 FOR 1)",
			&sql.Function{Name: "substring", Args: []sql.Field{str("abc"), num(2), num(1)}},
		},
		{
			"trim leading", "SELECT TRIM(LEADING FROM 'abc')",
			&sql.Function{Name: "ltrim", Args: []sql.Field{str("abc")}},
		},
		{
			"trim characters", "SELECT TRIM(BOTH 'x' FROM 'xax')",
			&sql.Function{Name: "trim", Args: []sql.Field{str("xax"), str("x")}},
		},
		{
			"function name folded", "SELECT COALESCE(NULL, 1)",
			&sql.Function{Name: "coalesce", Args: []sql.Field{&sql.Null{}, num(1)}},
		},
		{
			"condition as value", "SELECT (1 = 1)",
			&sql.ConditionField{Condition: &sql.Compare{Op: sql.OpEq, Left: num(1), Right: num(1)}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parse(t, sql.Settings{}, tt.query).(*sql.Select)
			require.Len(t, got.Fields, 1)

			if diff := cmp.Diff(tt.want, got.Fields[0], cmpModel); diff != "" {
				t.Errorf("field mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Conditions(t *testing.T) {
	t.Parallel()

	tbl := &sql.TableRef{Name: "t"}
	a := &sql.TableField{Table: tbl, Name: "a"}
	b := &sql.TableField{Table: tbl, Name: "b"}

	tests := []struct {
		name  string
		where string
		want  sql.Condition
	}{
		{
			"and binds tighter than or", "a = 1 OR a = 2 AND b = 3",
			&sql.Combined{
				Op:   sql.OpOr,
				Left: &sql.Compare{Op: sql.OpEq, Left: a, Right: num(1)},
				Right: &sql.Combined{
					Op:    sql.OpAnd,
					Left:  &sql.Compare{Op: sql.OpEq, Left: a, Right: num(2)},
					Right: &sql.Compare{Op: sql.OpEq, Left: b, Right: num(3)},
				},
			},
		},
		{"not equal", "a != 1", &sql.Compare{Op: sql.OpNe, Left: a, Right: num(1)}},
		{"not", "NOT a >= 1", &sql.Not{Condition: &sql.Compare{Op: sql.OpGe, Left: a, Right: num(1)}}},
		{
			"between symmetric", "a BETWEEN SYMMETRIC 10 AND 1",
			&sql.Between{Arg: a, Low: num(10), High: num(1), Symmetric: true},
		},
		{"is not null", "a IS NOT NULL", &sql.IsNull{Arg: a, Not: true}},
		{
			"row compare", "(a, b) <= (1, 2)",
			&sql.RowCompare{
				Op:    sql.OpLe,
				Left:  &sql.Row{Fields: []sql.Field{a, b}},
				Right: &sql.Row{Fields: []sql.Field{num(1), num(2)}},
			},
		},
		{"row is null", "(a, b) IS NULL", &sql.RowIsNull{Row: &sql.Row{Fields: []sql.Field{a, b}}}},
		{"boolean field", "TRUE", &sql.FieldCondition{Field: &sql.Boolean{Value: true}}},
		{"parenthesized", "(a < 1)", &sql.Compare{Op: sql.OpLt, Left: a, Right: num(1)}},
		{"in list", "a IN (1, 2)", &sql.InList{Arg: a, Values: []sql.Field{num(1), num(2)}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parse(t, sql.Settings{}, "SELECT * FROM t WHERE "+tt.where).(*sql.Select)

			if diff := cmp.Diff(tt.want, got.Where, cmpModel); diff != "" {
				t.Errorf("WHERE mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_LimitAndOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		dialect    sql.Dialect
		query      string
		wantLimit  sql.Field
		wantOffset sql.Field
	}{
		{"limit", sql.DialectDefault, "SELECT a FROM t LIMIT 10", num(10), nil},
		{"limit offset", sql.DialectPostgres, "SELECT a FROM t LIMIT 10 OFFSET 5", num(10), num(5)},
		{"mysql comma", sql.DialectMySQL, "SELECT a FROM t LIMIT 5, 10", num(10), num(5)},
		{"offset only", sql.DialectDefault, "SELECT a FROM t OFFSET 3 ROWS", nil, num(3)},
		{"top", sql.DialectSQLServer, "SELECT TOP 7 a FROM t", num(7), nil},
		{"named limit", sql.DialectDefault, "SELECT a FROM t LIMIT :n", &sql.Param{Name: "n"}, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parse(t, sql.Settings{Dialect: tt.dialect}, tt.query).(*sql.Select)

			if diff := cmp.Diff(tt.wantLimit, got.Limit, cmpModel); diff != "" {
				t.Errorf("limit mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantOffset, got.Offset, cmpModel); diff != "" {
				t.Errorf("offset mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Insert(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{NameCase: sql.NameCaseLowerIfUnquoted}, "INSERT INTO Person(Name, age) VALUES ('A', 1), ('B', 2)")

	want := &sql.Insert{
		Into:    &sql.TableRef{Name: "person"},
		Columns: []string{"name", "age"},
		Rows: [][]sql.Field{
			{str("A"), num(1)},
			{str("B"), num(2)},
		},
	}

	if diff := cmp.Diff(want, got, cmpModel); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_NameCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		nameCase sql.NameCase
		want     []string
	}{
		{sql.NameCaseAsIs, []string{"Person", "Quoted"}},
		{sql.NameCaseDefault, []string{"Person", "Quoted"}},
		{sql.NameCaseLower, []string{"person", "quoted"}},
		{sql.NameCaseLowerIfUnquoted, []string{"person", "Quoted"}},
		{sql.NameCaseUpper, []string{"PERSON", "QUOTED"}},
		{sql.NameCaseUpperIfUnquoted, []string{"PERSON", "Quoted"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.nameCase.String(), func(t *testing.T) {
			t.Parallel()

			got := parse(t, sql.Settings{NameCase: tt.nameCase}, `SELECT * FROM Person, "Quoted"`).(*sql.Select)
			require.Len(t, got.From, 2)
			assert.Equal(t, tt.want, []string{got.From[0].(*sql.TableRef).Name, got.From[1].(*sql.TableRef).Name})
		})
	}
}

func TestParser_Dialects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dialect sql.Dialect
		query   string
		wantErr bool
	}{
		{"default accepts backticks", sql.DialectDefault, "SELECT `a` FROM `t`", false},
		{"default accepts brackets", sql.DialectDefault, "SELECT [a] FROM [t]", false},
		{"mysql accepts backticks", sql.DialectMySQL, "SELECT `a` FROM `t`", false},
		{"mysql rejects brackets", sql.DialectMySQL, "SELECT [a] FROM [t]", true},
		{"mysql rejects quoted table", sql.DialectMySQL, `SELECT * FROM "t"`, true},
		{"postgres rejects backticks", sql.DialectPostgres, "SELECT `a` FROM `t`", true},
		{"postgres rejects limit comma", sql.DialectPostgres, "SELECT a FROM t LIMIT 1, 2", true},
		{"postgres rejects top", sql.DialectPostgres, "SELECT TOP 1 a FROM t", true},
		{"sqlserver accepts brackets", sql.DialectSQLServer, "SELECT [a] FROM [t]", false},
		{"sqlserver rejects backticks", sql.DialectSQLServer, "SELECT `a` FROM `t`", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mustParser(t, sql.Settings{Dialect: tt.dialect}).Parse(tt.query)
			if tt.wantErr {
				require.ErrorIs(t, err, sql.ErrParse)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestParser_MySQLDoubleQuotedStrings(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{Dialect: sql.DialectMySQL}, `SELECT * FROM t WHERE t.a = "x"`).(*sql.Select)
	cmpare := got.Where.(*sql.Compare)

	if diff := cmp.Diff(str("x"), cmpare.Right, cmpModel); diff != "" {
		t.Errorf("right operand mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_NamedParamPrefix(t *testing.T) {
	t.Parallel()

	_, err := mustParser(t, sql.Settings{}).Parse("SELECT $n")
	require.ErrorIs(t, err, sql.ErrParse)

	got := parse(t, sql.Settings{NamedParamPrefix: " $ "}, "SELECT $n").(*sql.Select)
	assert.Equal(t, &sql.Param{Name: "n"}, got.Fields[0])

	_, err = sql.NewParser(sql.Settings{NamedParamPrefix: "%"})
	require.ErrorIs(t, err, sql.ErrInvalidSettings)
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"syntax", "SELEC 1"},
		{"row arity", "SELECT * FROM t WHERE (t.a, t.b) = (1, 2, 3)"},
		{"row against value", "SELECT * FROM t WHERE (t.a, t.b) = 1"},
		{"insert arity", "INSERT INTO t (a, b) VALUES (1)"},
		{"limit and top", "SELECT TOP 1 a FROM t LIMIT 2"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := mustParser(t, sql.Settings{}).Parse(tt.query)
			require.ErrorIs(t, err, sql.ErrParse)

			var perr *sql.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 1, perr.Pos.Line)
		})
	}
}

func TestNewParser_UnknownDialect(t *testing.T) {
	t.Parallel()

	_, err := sql.NewParser(sql.Settings{Dialect: "ORACLE"})
	require.ErrorIs(t, err, sql.ErrUnknownDialect)
}

func TestParser_OtherStatement(t *testing.T) {
	t.Parallel()

	got := parse(t, sql.Settings{NameCase: sql.NameCaseLowerIfUnquoted}, "  Create Table T (a INT) ; ")

	want := &sql.OtherStatement{Keyword: "CREATE", Text: "Create Table T (a INT)"}
	if diff := cmp.Diff(want, got, cmpModel); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Create Table T (a INT)", sql.Render(got, sql.NameCaseLower))
}
