package sqlgrammar

import (
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser is the SQL parser instance.
var Parser = participle.MustBuild[Script](
	participle.Lexer(SQLLexer),
	participle.Elide("Whitespace", "BlockComment", "LineComment"),
	participle.UseLookahead(participle.MaxLookahead), // Qualified stars, TRIM/SUBSTRING forms and predicate tails backtrack
	participle.CaseInsensitive("Keyword", "Ident"),
)

// Parse parses a single SQL statement into a parse tree.
func Parse(query string) (*Script, error) {
	return Parser.ParseString("", query)
}

// ParseBytes parses a single SQL statement from bytes into a parse tree.
func ParseBytes(query []byte) (*Script, error) {
	return Parser.ParseBytes("", query)
}

// Value returns the identifier text without its quotes and reports whether
// it was quoted. Doubled quote characters inside quoted names are collapsed.
func (n *Name) Value() (string, bool) {
	switch {
	case n == nil:
		return "", false
	case n.Quoted != "":
		return strings.ReplaceAll(n.Quoted[1:len(n.Quoted)-1], `""`, `"`), true
	case n.Backtick != "":
		return strings.ReplaceAll(n.Backtick[1:len(n.Backtick)-1], "``", "`"), true
	case n.Bracket != "":
		return n.Bracket[1 : len(n.Bracket)-1], true
	default:
		return n.Ident, false
	}
}

// Unquote returns the content of a single-quoted string literal.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	return strings.ReplaceAll(s[1:len(s)-1], "''", "'")
}

// IsRow returns true if the group is a row constructor rather than a
// parenthesized expression.
func (p *Primary) IsRow() bool {
	return p != nil && (p.Row != nil || len(p.Group) > 1)
}

// IsFloat returns true if this literal is a floating-point number.
func (l *Literal) IsFloat() bool {
	return l != nil && l.Float != ""
}

// IsInt returns true if this literal is an integer.
func (l *Literal) IsInt() bool {
	return l != nil && l.Int != ""
}

// HasOR returns true if this expression uses OR.
func (e *Expression) HasOR() bool {
	return e != nil && len(e.Right) > 0
}

// HasXOR returns true if the XorExpr uses XOR.
func (x *XorExpr) HasXOR() bool {
	return x != nil && len(x.Right) > 0
}

// HasAND returns true if the AndExpr uses AND.
func (a *AndExpr) HasAND() bool {
	return a != nil && len(a.Right) > 0
}

// HasTail returns true if the predicate has a comparison or test.
func (p *Predicate) HasTail() bool {
	return p != nil && (p.Compare != nil || p.Between != nil || p.Is != nil || p.Like != nil || p.In != nil)
}
