// Package sql parses single SQL statements into a typed model.
//
// The model is a closed set of types behind the Statement, Table, Field and
// Condition interfaces. Table references are resolved while parsing: every
// column reference points at the *TableRef it came from, so two occurrences
// of the same table stay distinguishable by identity.
//
// Parsing is configured through Settings: the dialect decides which quoting
// styles and LIMIT forms are accepted, the name case folds identifiers, and
// Meta supplies table and column comments used for resolution.
//
//	p, err := sql.NewParser(sql.Settings{NameCase: sql.NameCaseLowerIfUnquoted})
//	if err != nil {
//	    return err
//	}
//	stmt, err := p.Parse("SELECT p.name FROM person p WHERE p.age > 18")
package sql
