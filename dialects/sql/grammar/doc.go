// Package sqlgrammar provides a parser for the SQL statements understood by
// sql2cypher, built with participle.
//
// The grammar covers SELECT (with joins, WHERE, ORDER BY, LIMIT and OFFSET),
// INSERT ... VALUES, DELETE and TRUNCATE, together with the expression
// language used inside them: arithmetic, comparisons, BETWEEN, IS NULL, row
// constructors, CASE, CAST and function calls.
//
// # Key Features
//
//   - Reserved words are lexed separately so they are never taken as aliases
//   - Case-insensitive keyword matching
//   - ANSI, MySQL and SQL Server identifier quoting
//   - Named (:name, @name, $name, &name, #name) and anonymous (?) parameters
//
// # Usage
//
//	script, err := sqlgrammar.Parse("SELECT t.a FROM my_table t WHERE t.a = 1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Work with script.Statement...
//
// The parse tree keeps names as written. Package sql converts it into the
// typed model the translator works with.
package sqlgrammar
