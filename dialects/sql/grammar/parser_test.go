package sqlgrammar_test

import (
	"slices"
	"testing"

	sqlgrammar "github.com/rlch/sql2cypher/dialects/sql/grammar"
)

func TestParse_Accepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"literal select", "SELECT 1"},
		{"aliased table", "SELECT t.a, t.b FROM my_table AS t WHERE t.a = 1"},
		{"implicit alias", "SELECT p.name FROM person p"},
		{"star", "SELECT * FROM t"},
		{"qualified star", "SELECT t.* FROM t"},
		{"order and named limit", "SELECT a FROM t ORDER BY a DESC LIMIT :n"},
		{"limit offset", "SELECT a FROM t LIMIT 10 OFFSET 5"},
		{"limit comma", "SELECT a FROM t LIMIT 5, 10"},
		{"offset fetch style", "SELECT a FROM t OFFSET 5 ROWS"},
		{"top", "SELECT TOP 5 a FROM t"},
		{"nulls last", "SELECT a FROM t ORDER BY a ASC NULLS LAST"},
		{"inner join", "SELECT c.name, o.id FROM customers c JOIN orders o ON c.id = o.customer_id"},
		{"outer join", "SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.a_id"},
		{"join chain", "SELECT * FROM a JOIN ab ON a.id = ab.a_id JOIN b ON ab.b_id = b.id"},
		{"join using", "SELECT * FROM a JOIN b USING (id)"},
		{"row comparison", "SELECT * FROM t WHERE (t.a, t.b) < (1, 2)"},
		{"explicit row", "SELECT * FROM t WHERE ROW(t.a, t.b) IS NULL"},
		{"symmetric between", "SELECT * FROM t WHERE t.a BETWEEN SYMMETRIC 1 AND 10"},
		{"not between", "SELECT * FROM t WHERE t.a NOT BETWEEN 1 AND 10"},
		{"boolean logic", "SELECT * FROM t WHERE t.a IS NOT NULL AND NOT t.b = 2 OR t.c <> 3 XOR t.d != 4"},
		{"like and in", "SELECT * FROM t WHERE t.a LIKE 'x%' AND t.b NOT IN (1, 2)"},
		{"searched case", "SELECT CASE WHEN t.a = 1 THEN 'one' ELSE 'other' END FROM t"},
		{"simple case", "SELECT CASE t.a WHEN 1 THEN 'one' END AS label FROM t"},
		{"cast with precision", "SELECT CAST(t.a AS VARCHAR(20)) FROM t"},
		{"multi-word type", "SELECT CAST(t.a AS DOUBLE PRECISION) FROM t"},
		{"standard substring", "SELECT SUBSTRING(t.a FROM 2 FOR 3) FROM t"},
		{"function substring", "SELECT substring(t.a, 2) FROM t"},
		{"trim leading", "SELECT TRIM(LEADING FROM t.a) FROM t"},
		{"trim function", "SELECT trim(t.a) FROM t"},
		{"left and right", "SELECT left(t.a, 2), right(t.a, 2) FROM t"},
		{"arithmetic", "SELECT (t.a + 1) * 2 - -3 / t.b % 4 FROM t"},
		{"concat", "SELECT t.a || 'x' FROM t"},
		{"backticks", "SELECT `a` FROM `t`"},
		{"double quotes", `SELECT "a" FROM "t"`},
		{"brackets", "SELECT [a] FROM [t]"},
		{"schema qualified", "SELECT s.t.a FROM s.t"},
		{"anonymous params", "SELECT * FROM t WHERE t.a = ? AND t.b = ?"},
		{"insert", "INSERT INTO person(name, age) VALUES ('A', 1)"},
		{"insert many", "INSERT INTO person (name) VALUES ('A'), ('B');"},
		{"delete", "DELETE FROM person WHERE id = 1"},
		{"truncate table", "TRUNCATE TABLE person"},
		{"truncate", "TRUNCATE person"},
		{"lower case keywords", "select a from t where a = 1"},
		{"comments", "SELECT a /* the a */ FROM t -- trailing"},
		{"escaped quote", "SELECT 'it''s'"},
		{"float literals", "SELECT 1.5, .5, 1e3"},
		{"update", "UPDATE t SET a = 1"},
		{"create table", "CREATE TABLE t (a INT PRIMARY KEY, b VARCHAR(20));"},
		{"merge", "MERGE INTO t USING u ON t.id = u.id WHEN MATCHED THEN DELETE"},
		{"drop", "drop table t"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			script, err := sqlgrammar.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.query, err)
			}

			if script == nil || script.Statement == nil {
				t.Fatalf("Parse(%q) returned no statement", tt.query)
			}
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"misspelled keyword", "SELEC 1"},
		{"empty select list", "SELECT FROM t"},
		{"dangling where", "SELECT a FROM t WHERE"},
		{"statement after update", "UPDATE t SET a = 1; SELECT 2"},
		{"unknown leading keyword", "FROB t"},
		{"union", "SELECT a FROM t UNION SELECT b FROM u"},
		{"keyword as table", "SELECT a FROM select"},
		{"two statements", "SELECT 1; SELECT 2"},
		{"unterminated string", "SELECT 'abc"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := sqlgrammar.Parse(tt.query); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.query)
			}
		})
	}
}

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	script, err := sqlgrammar.Parse("SELECT t.a AS x FROM my_table AS t WHERE t.a = 1 ORDER BY x DESC")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	sel := script.Statement.Select
	if sel == nil {
		t.Fatal("expected a SELECT")
	}

	if len(sel.Items) != 1 || sel.Items[0].Alias == nil || sel.Items[0].Alias.Ident != "x" {
		t.Errorf("unexpected select items: %+v", sel.Items)
	}

	if len(sel.From) != 1 || sel.From[0].Primary.Alias == nil {
		t.Fatalf("unexpected FROM: %+v", sel.From)
	}

	if name, quoted := sel.From[0].Primary.Table.Parts[0].Value(); name != "my_table" || quoted {
		t.Errorf("table name = %q (quoted %v), want my_table", name, quoted)
	}

	if sel.Where == nil || !sel.Where.Left.Left.Left.Predicate.HasTail() {
		t.Errorf("WHERE should be a comparison")
	}

	if len(sel.OrderBy) != 1 || sel.OrderBy[0].Order != "DESC" {
		t.Errorf("unexpected ORDER BY: %+v", sel.OrderBy)
	}
}

func TestParse_OtherStatement(t *testing.T) {
	t.Parallel()

	script, err := sqlgrammar.Parse("update t set a = 'x;y';")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	other := script.Statement.Other
	if other == nil {
		t.Fatal("expected an unparsed statement")
	}

	if other.Keyword != "update" {
		t.Errorf("Keyword = %q, want update", other.Keyword)
	}

	if want := []string{"t", "set", "a", "=", "'x;y'"}; !slices.Equal(other.Tokens, want) {
		t.Errorf("Tokens = %q, want %q", other.Tokens, want)
	}

	if script.Semi != ";" {
		t.Errorf("Semi = %q, want ;", script.Semi)
	}
}

func TestName_Value(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      *sqlgrammar.Name
		wantValue  string
		wantQuoted bool
	}{
		{"bare", &sqlgrammar.Name{Ident: "Person"}, "Person", false},
		{"double quoted", &sqlgrammar.Name{Quoted: `"My ""Table"""`}, `My "Table"`, true},
		{"backtick", &sqlgrammar.Name{Backtick: "`a``b`"}, "a`b", true},
		{"bracket", &sqlgrammar.Name{Bracket: "[order details]"}, "order details", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, quoted := tt.input.Value()
			if value != tt.wantValue || quoted != tt.wantQuoted {
				t.Errorf("Value() = (%q, %v), want (%q, %v)", value, quoted, tt.wantValue, tt.wantQuoted)
			}
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	if got := sqlgrammar.Unquote("'it''s'"); got != "it's" {
		t.Errorf("Unquote = %q, want %q", got, "it's")
	}
}
