package cyphergrammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser is the Cypher parser instance.
var Parser = participle.MustBuild[Script](
	participle.Lexer(CypherLexer),
	participle.Elide("Whitespace", "BlockComment", "LineComment"),
	participle.UseLookahead(10),
	participle.CaseInsensitive("Ident"),
)

// Parse parses a Cypher query string.
func Parse(query string) (*Script, error) {
	return Parser.ParseString("", query)
}

// Keywords returns the leading keyword of every clause, upper-cased, in
// order. DETACH DELETE is reported as "DETACH DELETE".
func (q *Query) Keywords() []string {
	if q == nil {
		return nil
	}

	out := make([]string, 0, len(q.Clauses))

	for _, c := range q.Clauses {
		switch {
		case c.Match != nil && c.Match.Optional:
			out = append(out, "OPTIONAL MATCH")
		case c.Match != nil:
			out = append(out, "MATCH")
		case c.Unwind != nil:
			out = append(out, "UNWIND")
		case c.Create != nil:
			out = append(out, "CREATE")
		case c.Set != nil:
			out = append(out, "SET")
		case c.Delete != nil && c.Delete.Detach:
			out = append(out, "DETACH DELETE")
		case c.Delete != nil:
			out = append(out, "DELETE")
		case c.Return != nil:
			out = append(out, "RETURN")
		}
	}

	return out
}

// String returns the dotted path of a PropertyExpr.
func (p *PropertyExpr) String() string {
	if p == nil {
		return ""
	}

	return strings.Join(append([]string{p.Base}, p.Props...), ".")
}

// IsFloat reports whether the literal is a floating-point number.
func (l *Literal) IsFloat() bool {
	return l != nil && l.Float != nil
}

// IsInt reports whether the literal is an integer.
func (l *Literal) IsInt() bool {
	return l != nil && l.Int != nil
}

// IsString reports whether the literal is a string.
func (l *Literal) IsString() bool {
	return l != nil && l.String != nil
}

// HasOR reports whether the expression uses OR.
func (e *Expression) HasOR() bool {
	return e != nil && len(e.Right) > 0
}

// HasXOR reports whether the expression uses XOR.
func (x *XorExpr) HasXOR() bool {
	return x != nil && len(x.Right) > 0
}

// HasAND reports whether the expression uses AND.
func (a *AndExpr) HasAND() bool {
	return a != nil && len(a.Right) > 0
}
