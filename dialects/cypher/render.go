package cypher

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Format selects the renderer layout.
type Format int

const (
	// Compact renders a statement on a single line.
	Compact Format = iota
	// Pretty starts every clause, and the WHERE, ORDER BY, SKIP and LIMIT
	// parts, on its own line.
	Pretty
)

// Render renders a statement. Anonymous parameters are numbered $1, $2, ...
// in order of first appearance.
func Render(s *Statement, f Format) string {
	r := newRenderer(f)

	for i, c := range s.Clauses {
		if i > 0 {
			r.newline()
		}

		r.clause(c)
	}

	return r.b.String()
}

// RenderExpression renders a single expression in compact form.
func RenderExpression(e Expression) string {
	r := newRenderer(Compact)
	r.expr(e)

	return r.b.String()
}

type renderer struct {
	b      *strings.Builder
	format Format
	anon   map[*Parameter]int
}

func newRenderer(f Format) *renderer {
	return &renderer{b: &strings.Builder{}, format: f, anon: map[*Parameter]int{}}
}

func (r *renderer) write(s string) {
	r.b.WriteString(s)
}

func (r *renderer) newline() {
	if r.format == Pretty {
		r.write("\n")
		return
	}

	r.write(" ")
}

// ----------------------------------------------------------------------------
// Clauses
// ----------------------------------------------------------------------------

func (r *renderer) clause(c Clause) {
	switch c := c.(type) {
	case *MatchClause:
		r.write("MATCH ")
		r.patterns(c.Patterns)

		if c.Where != nil {
			r.newline()
			r.write("WHERE ")
			r.expr(c.Where)
		}

	case *ReturnClause:
		r.write("RETURN ")
		r.list(c.Items)

		if len(c.OrderBy) > 0 {
			r.newline()
			r.write("ORDER BY ")

			for i, s := range c.OrderBy {
				if i > 0 {
					r.write(", ")
				}

				r.sortItem(s)
			}
		}

		if c.Skip != nil {
			r.newline()
			r.write("SKIP ")
			r.expr(c.Skip)
		}

		if c.Limit != nil {
			r.newline()
			r.write("LIMIT ")
			r.expr(c.Limit)
		}

	case *CreateClause:
		r.write("CREATE ")
		r.patterns(c.Patterns)

	case *UnwindClause:
		r.write("UNWIND ")
		r.expr(c.Expression)
		r.write(" AS ")
		r.write(escapeName(c.As))

	case *SetClause:
		r.write("SET ")

		for i, item := range c.Items {
			if i > 0 {
				r.write(", ")
			}

			r.expr(item.Target)
			r.write(" = ")
			r.expr(item.Value)
		}

	case *DeleteClause:
		if c.Detach {
			r.write("DETACH ")
		}

		r.write("DELETE ")
		r.list(c.Items)

	default:
		panic(fmt.Sprintf("cypher: unknown clause %T", c))
	}
}

func (r *renderer) sortItem(s *SortItem) {
	r.expr(s.Expression)

	switch s.Direction {
	case Ascending:
		r.write(" ASC")
	case Descending:
		r.write(" DESC")
	case Undefined:
	}
}

func (r *renderer) list(items []Expression) {
	for i, e := range items {
		if i > 0 {
			r.write(", ")
		}

		r.expr(e)
	}
}

// ----------------------------------------------------------------------------
// Patterns
// ----------------------------------------------------------------------------

func (r *renderer) patterns(ps []PatternElement) {
	for i, p := range ps {
		if i > 0 {
			r.write(", ")
		}

		r.pattern(p)
	}
}

func (r *renderer) pattern(p PatternElement) {
	switch p := p.(type) {
	case *Node:
		r.node(p)
	case *Relationship:
		r.node(p.Left)
		r.relationship(p)
		r.node(p.Right)
	case *RelationshipChain:
		for i, rel := range p.Relationships {
			if i == 0 {
				r.node(rel.Left)
			}

			r.relationship(rel)
			r.node(rel.Right)
		}
	default:
		panic(fmt.Sprintf("cypher: unknown pattern element %T", p))
	}
}

func (r *renderer) node(n *Node) {
	r.write("(")
	r.write(escapeName(n.Name))

	// A label equal to the variable adds nothing.
	if !(len(n.Labels) == 1 && n.Labels[0] == n.Name) {
		for _, l := range n.Labels {
			r.write(":")
			r.write(escapeName(l))
		}
	}

	if n.Properties != nil {
		if n.Name != "" || len(n.Labels) > 0 {
			r.write(" ")
		}

		r.expr(n.Properties)
	}

	r.write(")")
}

func (r *renderer) relationship(rel *Relationship) {
	if rel.Direction == RTL {
		r.write("<")
	}

	r.write("-")

	if rel.Name != "" || len(rel.Types) > 0 {
		r.write("[")
		r.write(escapeName(rel.Name))

		for i, t := range rel.Types {
			if i == 0 {
				r.write(":")
			} else {
				r.write("|")
			}

			r.write(escapeName(t))
		}

		r.write("]")
	}

	r.write("-")

	if rel.Direction == LTR {
		r.write(">")
	}
}

// ----------------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------------

func (r *renderer) expr(e Expression) {
	switch e := e.(type) {
	case *Literal:
		r.write(literal(e.Value))

	case *ListLiteral:
		r.write("[")
		r.list(e.Items)
		r.write("]")

	case *MapLiteral:
		r.write("{")

		for i, entry := range e.Entries {
			if i > 0 {
				r.write(", ")
			}

			r.write(escapeName(entry.Key))
			r.write(": ")
			r.expr(entry.Value)
		}

		r.write("}")

	case *Parameter:
		r.write("$")

		if e.Name != "" {
			r.write(escapeName(e.Name))
			return
		}

		n, ok := r.anon[e]
		if !ok {
			n = len(r.anon) + 1
			r.anon[e] = n
		}

		r.write(strconv.Itoa(n))

	case *SymbolicName:
		r.write(escapeName(e.Name))

	case *Property:
		r.operand(e.Container, !isAtom(e.Container))
		r.write(".")
		r.write(escapeName(e.Name))

	case *Asterisk:
		r.write("*")

	case *Operation:
		r.operation(e)

	case *FunctionInvocation:
		r.write(e.Name)
		r.write("(")
		r.list(e.Args)
		r.write(")")

	case *Case:
		r.caseExpr(e)

	case *Aliased:
		r.expr(e.Expression)
		r.write(" AS ")
		r.write(escapeName(e.Alias))

	case *Comparison:
		r.operand(e.Left, isPredicate(e.Left))
		r.write(" ")
		r.write(string(e.Op))
		r.write(" ")
		r.operand(e.Right, isPredicate(e.Right))

	case *IsNull:
		r.operand(e.Arg, isPredicate(e.Arg))

		if e.Not {
			r.write(" IS NOT NULL")
		} else {
			r.write(" IS NULL")
		}

	case *Compound:
		for i, c := range e.Conditions {
			if i > 0 {
				r.write(" ")
				r.write(string(e.Op))
				r.write(" ")
			}

			inner, nested := c.(*Compound)
			r.operand(c, nested && inner.Op != e.Op)
		}

	case *Not:
		r.write("NOT (")
		r.expr(e.Condition)
		r.write(")")

	default:
		panic(fmt.Sprintf("cypher: unknown expression %T", e))
	}
}

func (r *renderer) operand(e Expression, parens bool) {
	if parens {
		r.write("(")
	}

	r.expr(e)

	if parens {
		r.write(")")
	}
}

func (r *renderer) operation(o *Operation) {
	r.operand(o.Left, needsParens(o, o.Left, false))
	r.write(" ")
	r.write(string(o.Op))
	r.write(" ")
	r.operand(o.Right, needsParens(o, o.Right, true))
}

func (r *renderer) caseExpr(c *Case) {
	r.write("CASE")

	if c.Value != nil {
		r.write(" ")
		r.expr(c.Value)
	}

	for _, w := range c.Whens {
		r.write(" WHEN ")
		r.expr(w.When)
		r.write(" THEN ")
		r.expr(w.Then)
	}

	if c.Else != nil {
		r.write(" ELSE ")
		r.expr(c.Else)
	}

	r.write(" END")
}

func needsParens(parent *Operation, child Expression, right bool) bool {
	switch child := child.(type) {
	case *Operation:
		pp, cp := parent.Op.precedence(), child.Op.precedence()
		if cp != pp {
			return cp < pp
		}

		if parent.Op == OpPow {
			return !right
		}

		return right && parent.Op != OpAdd && parent.Op != OpMultiply
	default:
		return isPredicate(child)
	}
}

func isPredicate(e Expression) bool {
	switch e.(type) {
	case *Comparison, *IsNull, *Compound, *Not:
		return true
	}

	return false
}

func isAtom(e Expression) bool {
	switch e.(type) {
	case *SymbolicName, *Parameter, *Property, *FunctionInvocation, *Literal, *MapLiteral, *ListLiteral:
		return true
	}

	return false
}

// ----------------------------------------------------------------------------
// Lexical helpers
// ----------------------------------------------------------------------------

func literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return quote(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEN") {
			s += ".0"
		}

		return s
	case decimal.Decimal:
		return v.String()
	default:
		return quote(fmt.Sprint(v))
	}
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// escapeName backquotes names that are not plain identifiers.
func escapeName(name string) string {
	if name == "" || isIdentifier(name) {
		return name
	}

	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func isIdentifier(s string) bool {
	for i, c := range s {
		switch {
		case c == '_', unicode.IsLetter(c):
		case i > 0 && unicode.IsDigit(c):
		default:
			return false
		}
	}

	return true
}
