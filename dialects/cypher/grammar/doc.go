// Package cyphergrammar parses the Cypher produced by the cypher renderer.
//
// The grammar covers MATCH, RETURN, CREATE, UNWIND, SET and [DETACH] DELETE
// with node and relationship patterns, parameters, CASE, function calls and
// the usual operators.
//
// The package is test support: the translator never imports it. Tests parse
// every rendered statement with it to check that the output is well-formed
// Cypher.
//
//	script, err := cyphergrammar.Parse("MATCH (p:Person) RETURN p.name")
//	if err != nil {
//	    return err
//	}
//	_ = script.Query.Keywords() // [MATCH RETURN]
package cyphergrammar
