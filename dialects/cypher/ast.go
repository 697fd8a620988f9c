package cypher

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ----------------------------------------------------------------------------
// Cypher model
//
// Expressions, conditions and pattern elements are plain values. Conditions
// are expressions; the renderer decides on parentheses.
// ----------------------------------------------------------------------------

// Expression is any Cypher expression.
type Expression interface {
	expression()
}

// Condition is an expression usable as a predicate.
type Condition interface {
	Expression
	condition()
}

// ----------------------------------------------------------------------------
// Literals and names
// ----------------------------------------------------------------------------

// Literal is a scalar constant. Value is nil, bool, string, int64, float64
// or decimal.Decimal.
type Literal struct {
	Value any
}

// Null returns the NULL literal.
func Null() *Literal { return &Literal{} }

// True returns the true literal.
func True() *Literal { return &Literal{Value: true} }

// False returns the false literal.
func False() *Literal { return &Literal{Value: false} }

// LiteralOf returns a literal for a scalar value.
func LiteralOf(v any) *Literal { return &Literal{Value: v} }

// Number returns a literal for an exact number.
func Number(d decimal.Decimal) *Literal { return &Literal{Value: d} }

// ListLiteral is [a, b, ...].
type ListLiteral struct {
	Items []Expression
}

// ListOf returns a list literal.
func ListOf(items ...Expression) *ListLiteral {
	return &ListLiteral{Items: items}
}

// MapEntry is one key of a map literal.
type MapEntry struct {
	Key   string
	Value Expression
}

// MapLiteral is {k: v, ...}. Entries keep their order.
type MapLiteral struct {
	Entries []MapEntry
}

// MapOf returns a map literal with the given entries.
func MapOf(entries ...MapEntry) *MapLiteral {
	return &MapLiteral{Entries: entries}
}

// Parameter is $name. A parameter without a name is anonymous; the renderer
// numbers anonymous parameters in order of first appearance.
type Parameter struct {
	Name string
}

// NamedParameter returns $name.
func NamedParameter(name string) *Parameter { return &Parameter{Name: name} }

// AnonParameter returns a fresh anonymous parameter.
func AnonParameter() *Parameter { return &Parameter{} }

// SymbolicName is a variable bound by a pattern, UNWIND or an alias.
type SymbolicName struct {
	Name string
}

// Name returns a symbolic name.
func Name(name string) *SymbolicName { return &SymbolicName{Name: name} }

// Property is container.name.
type Property struct {
	Container Expression
	Name      string
}

// Asterisk is *.
type Asterisk struct{}

// ----------------------------------------------------------------------------
// Operations
// ----------------------------------------------------------------------------

// Operator is a binary arithmetic or string operator.
type Operator string

// Operators.
const (
	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpModulo   Operator = "%"
	OpPow      Operator = "^"
)

func (o Operator) precedence() int {
	switch o {
	case OpPow:
		return 3
	case OpMultiply, OpDivide, OpModulo:
		return 2
	default:
		return 1
	}
}

// Operation is a binary operation.
type Operation struct {
	Op    Operator
	Left  Expression
	Right Expression
}

// Add returns l + r.
func Add(l, r Expression) *Operation { return &Operation{Op: OpAdd, Left: l, Right: r} }

// Subtract returns l - r.
func Subtract(l, r Expression) *Operation { return &Operation{Op: OpSubtract, Left: l, Right: r} }

// Multiply returns l * r.
func Multiply(l, r Expression) *Operation { return &Operation{Op: OpMultiply, Left: l, Right: r} }

// Divide returns l / r.
func Divide(l, r Expression) *Operation { return &Operation{Op: OpDivide, Left: l, Right: r} }

// Modulo returns l % r.
func Modulo(l, r Expression) *Operation { return &Operation{Op: OpModulo, Left: l, Right: r} }

// FunctionInvocation is name(args).
type FunctionInvocation struct {
	Name string
	Args []Expression
}

// CaseWhen is a WHEN ... THEN ... branch.
type CaseWhen struct {
	When Expression
	Then Expression
}

// Case is CASE [value] WHEN ... THEN ... [ELSE ...] END. A nil Value makes
// it a generic case whose branches are conditions.
type Case struct {
	Value Expression
	Whens []CaseWhen
	Else  Expression
}

// When appends a branch.
func (c *Case) When(when, then Expression) *Case {
	c.Whens = append(c.Whens, CaseWhen{When: when, Then: then})
	return c
}

// ElseDefault sets the ELSE branch.
func (c *Case) ElseDefault(e Expression) *Case {
	c.Else = e
	return c
}

// CaseExpression starts a case. Pass nil for a generic case.
func CaseExpression(value Expression) *Case {
	return &Case{Value: value}
}

// Aliased is expr AS alias.
type Aliased struct {
	Expression Expression
	Alias      string
}

// As aliases an expression.
func As(e Expression, alias string) *Aliased {
	return &Aliased{Expression: e, Alias: alias}
}

// ----------------------------------------------------------------------------
// Conditions
// ----------------------------------------------------------------------------

// Comparator is a comparison operator.
type Comparator string

// Comparators.
const (
	Eq  Comparator = "="
	Ne  Comparator = "<>"
	Lt  Comparator = "<"
	Lte Comparator = "<="
	Gt  Comparator = ">"
	Gte Comparator = ">="
)

// Comparison is l op r.
type Comparison struct {
	Op    Comparator
	Left  Expression
	Right Expression
}

// Compare returns l op r.
func Compare(op Comparator, l, r Expression) *Comparison {
	return &Comparison{Op: op, Left: l, Right: r}
}

// IsNull is x IS [NOT] NULL.
type IsNull struct {
	Arg Expression
	Not bool
}

// LogicalOperator combines conditions.
type LogicalOperator string

// Logical operators.
const (
	And LogicalOperator = "AND"
	Or  LogicalOperator = "OR"
	Xor LogicalOperator = "XOR"
)

// Compound is c1 op c2 op ... Nested compounds with the same operator are
// flattened when built through Combine.
type Compound struct {
	Op         LogicalOperator
	Conditions []Condition
}

// Combine joins two conditions. A nil side yields the other side.
func Combine(op LogicalOperator, l, r Condition) Condition {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	}

	out := &Compound{Op: op}
	out.Conditions = append(out.Conditions, flatten(op, l)...)
	out.Conditions = append(out.Conditions, flatten(op, r)...)

	return out
}

func flatten(op LogicalOperator, c Condition) []Condition {
	if cc, ok := c.(*Compound); ok && cc.Op == op {
		return cc.Conditions
	}

	return []Condition{c}
}

// AndOf returns l AND r.
func AndOf(l, r Condition) Condition { return Combine(And, l, r) }

// OrOf returns l OR r.
func OrOf(l, r Condition) Condition { return Combine(Or, l, r) }

// XorOf returns l XOR r.
func XorOf(l, r Condition) Condition { return Combine(Xor, l, r) }

// Not negates a condition.
type Not struct {
	Condition Condition
}

// ----------------------------------------------------------------------------
// Sorting
// ----------------------------------------------------------------------------

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Undefined Direction = iota
	Ascending
	Descending
)

// ParseDirection maps a sort order name to a direction, ignoring case.
// "DEFAULT" and "" are Undefined.
func ParseDirection(name string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "DEFAULT", "UNDEFINED":
		return Undefined, nil
	case "ASC", "ASCENDING":
		return Ascending, nil
	case "DESC", "DESCENDING":
		return Descending, nil
	}

	return Undefined, fmt.Errorf("cypher: unknown sort direction %q", name)
}

// SortItem is an ORDER BY entry.
type SortItem struct {
	Expression Expression
	Direction  Direction
}

// Sort returns a sort item.
func Sort(e Expression, d Direction) *SortItem {
	return &SortItem{Expression: e, Direction: d}
}

// ----------------------------------------------------------------------------
// Sealing
// ----------------------------------------------------------------------------

func (*Literal) expression()            {}
func (*ListLiteral) expression()        {}
func (*MapLiteral) expression()         {}
func (*Parameter) expression()          {}
func (*SymbolicName) expression()       {}
func (*Property) expression()           {}
func (*Asterisk) expression()           {}
func (*Operation) expression()          {}
func (*FunctionInvocation) expression() {}
func (*Case) expression()               {}
func (*Aliased) expression()            {}
func (*Comparison) expression()         {}
func (*IsNull) expression()             {}
func (*Compound) expression()           {}
func (*Not) expression()                {}

// Values that may evaluate to a boolean are usable as predicates.
func (*Literal) condition()            {}
func (*Parameter) condition()          {}
func (*SymbolicName) condition()       {}
func (*Property) condition()           {}
func (*FunctionInvocation) condition() {}
func (*Case) condition()               {}
func (*Comparison) condition()         {}
func (*IsNull) condition()             {}
func (*Compound) condition()           {}
func (*Not) condition()                {}
