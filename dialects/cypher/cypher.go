// Package cypher models Cypher statements and renders them as text.
//
// Statements are assembled with a small builder:
//
//	p := cypher.NewNode("Person").Named("p")
//	stmt := cypher.Match(p).
//		Where(cypher.Compare(cypher.Eq, p.Property("name"), cypher.NamedParameter("name"))).
//		Returning(p.Property("age")).
//		Build()
//	cypher.Render(stmt, cypher.Compact) // MATCH (p:Person) WHERE p.name = $name RETURN p.age
//
// Built-in functions are created through NewFunction, which checks names and
// argument counts against a fixed catalogue.
package cypher
