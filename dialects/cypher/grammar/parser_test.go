package cyphergrammar_test

import (
	"reflect"
	"testing"

	"github.com/rlch/sql2cypher/dialects/cypher/grammar"
)

func TestParse_Accepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"simple return", "RETURN 42"},
		{"return string", `RETURN 'it\'s'`},
		{"return float", "RETURN 3.14"},
		{"return bool", "RETURN true"},
		{"return null", "RETURN NULL"},
		{"return list", "RETURN [1, 2, 3]"},
		{"return map", `RETURN {name: 'test', age: 25}`},
		{"simple match", "MATCH (n) RETURN n"},
		{"match with label", "MATCH (u:User) RETURN u"},
		{"escaped names", "MATCH (`my node`:`My Label`) RETURN `my node`.`a b`"},
		{"match with properties", `MATCH (u:User {name: 'Alice'}) RETURN u`},
		{"property access", "MATCH (u:User) RETURN u.name AS name"},
		{"function call", "RETURN toLower(substring('abc', 1, 2))"},
		{"zero-arg function", "RETURN pi() * e()"},
		{"arithmetic", "RETURN (1 + 2) * 3 - -4 ^ 2 % 5"},
		{"comparison", "MATCH (t) WHERE t.a <> 1 RETURN t"},
		{"boolean logic", "RETURN true AND false OR NOT (true) XOR false"},
		{"generic case", "RETURN CASE WHEN 1 = 1 THEN NULL ELSE 2 END"},
		{"simple case", "MATCH (t) RETURN CASE t.a WHEN 1 THEN 'x' END"},
		{"order by", "MATCH (u:User) RETURN u.name ORDER BY u.name DESC, u.age ASC"},
		{"skip limit", "MATCH (u:User) RETURN u SKIP 10 LIMIT $n"},
		{"anonymous parameters", "MATCH (u) WHERE u.a = $1 AND u.b = $2 RETURN u"},
		{"return star", "MATCH (u) RETURN *"},
		{"create", "CREATE (n:Person {name: 'Alice'})"},
		{"relationship ltr", "MATCH (a)-[:KNOWS]->(b) RETURN a, b"},
		{"relationship rtl", "MATCH (a:A)<-[r:KNOWS|LIKES]-(b:B) RETURN r"},
		{"relationship chain", "MATCH (a)-[:X]->(b)<-[c:Y]-(d) RETURN c.x"},
		{"untyped relationship", "MATCH (a)-->(b), (c)--(d) RETURN a"},
		{"optional match", "OPTIONAL MATCH (u:User) RETURN u"},
		{"unwind create set", "UNWIND [{a: 1}, {a: 2}] AS properties CREATE (n:N) SET n = properties"},
		{"set property", "MATCH (u:User) SET u.name = $name, u.age = 1 RETURN u"},
		{"is null", "MATCH (u:User) WHERE u.email IS NULL RETURN u"},
		{"is not null", "MATCH (u:User) WHERE u.email IS NOT NULL RETURN u"},
		{"in list", "RETURN 1 IN [1, 2, 3]"},
		{"delete", "MATCH (u:User) WHERE u.id = 1 DELETE u"},
		{"detach delete", "MATCH (u:User) DETACH DELETE u"},
		{"lowercase keywords", "match (u) where u.a = 1 return u order by u.a limit 1"},
		{"multi line", "MATCH (u)\nWHERE u.a = 1\nRETURN u\nLIMIT 1;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ast, err := cyphergrammar.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.query, err)
			}

			if ast == nil {
				t.Fatalf("Parse(%q) returned nil AST", tt.query)
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
		{"empty", ""},
		{"dangling where", "MATCH (n) WHERE RETURN n"},
		{"unclosed node", "MATCH (n RETURN n"},
		{"missing return items", "MATCH (n) RETURN"},
		{"unterminated string", "RETURN 'abc"},
		{"bad relationship", "MATCH (a)-[:X]>(b) RETURN a"},
		{"set without value", "MATCH (n) SET n.a RETURN n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := cyphergrammar.Parse(tt.query); err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.query)
			}
		})
	}
}

func TestQuery_Keywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  []string
	}{
		{"RETURN 1", []string{"RETURN"}},
		{"MATCH (n) WHERE n.a = 1 DELETE n", []string{"MATCH", "DELETE"}},
		{"MATCH (n) DETACH DELETE n", []string{"MATCH", "DETACH DELETE"}},
		{"UNWIND [] AS p CREATE (n:N) SET n = p", []string{"UNWIND", "CREATE", "SET"}},
		{"OPTIONAL MATCH (n) RETURN n", []string{"OPTIONAL MATCH", "RETURN"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()

			ast, err := cyphergrammar.Parse(tt.query)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.query, err)
			}

			if got := ast.Query.Keywords(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keywords() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_Structure(t *testing.T) {
	t.Parallel()

	ast, err := cyphergrammar.Parse("MATCH (p:Person)<-[r:KNOWS]-(f) WHERE p.age >= 18 OR p.name IS NULL RETURN p.name AS name")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	match := ast.Query.Clauses[0].Match
	if match == nil {
		t.Fatal("first clause is not MATCH")
	}

	elem := match.Pattern.Elements[0]
	if elem.Node.Variable != "p" || elem.Node.Labels.Labels[0] != "Person" {
		t.Errorf("unexpected start node %+v", elem.Node)
	}

	if len(elem.Chain) != 1 {
		t.Fatalf("chain length = %d, want 1", len(elem.Chain))
	}

	rel := elem.Chain[0].Rel
	if !rel.LeftArrow || rel.RightArrow {
		t.Errorf("direction: left=%v right=%v, want incoming", rel.LeftArrow, rel.RightArrow)
	}

	if rel.Detail.Variable != "r" || !reflect.DeepEqual(rel.Detail.Types, []string{"KNOWS"}) {
		t.Errorf("unexpected relationship detail %+v", rel.Detail)
	}

	if !match.Where.Expr.HasOR() {
		t.Error("WHERE should be a disjunction")
	}

	item := ast.Query.Clauses[1].Return.Body.Items.Items[0]
	if item.Alias != "name" {
		t.Errorf("alias = %q, want name", item.Alias)
	}
}
