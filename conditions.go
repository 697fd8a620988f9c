package sql2cypher

import (
	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

var comparators = map[sql.CompareOp]cypher.Comparator{
	sql.OpEq: cypher.Eq,
	sql.OpNe: cypher.Ne,
	sql.OpLt: cypher.Lt,
	sql.OpLe: cypher.Lte,
	sql.OpGt: cypher.Gt,
	sql.OpGe: cypher.Gte,
}

var logicalOperators = map[sql.LogicalOp]cypher.LogicalOperator{
	sql.OpAnd: cypher.And,
	sql.OpOr:  cypher.Or,
	sql.OpXor: cypher.Xor,
}

func (t *translation) condition(c sql.Condition) (cypher.Condition, error) {
	switch c := c.(type) {
	case *sql.Combined:
		op, ok := logicalOperators[c.Op]
		if !ok {
			return nil, t.unsupported(ErrUnsupportedCondition, c)
		}

		l, err := t.condition(c.Left)
		if err != nil {
			return nil, err
		}

		r, err := t.condition(c.Right)
		if err != nil {
			return nil, err
		}

		return cypher.Combine(op, l, r), nil

	case *sql.Not:
		inner, err := t.condition(c.Condition)
		if err != nil {
			return nil, err
		}

		return &cypher.Not{Condition: inner}, nil

	case *sql.Compare:
		l, err := t.expression(c.Left)
		if err != nil {
			return nil, err
		}

		r, err := t.expression(c.Right)
		if err != nil {
			return nil, err
		}

		return cypher.Compare(comparators[c.Op], l, r), nil

	case *sql.Between:
		return t.between(c)

	case *sql.IsNull:
		arg, err := t.expression(c.Arg)
		if err != nil {
			return nil, err
		}

		return &cypher.IsNull{Arg: arg, Not: c.Not}, nil

	case *sql.RowCompare:
		return t.rowCompare(c)

	case *sql.RowIsNull:
		args, err := t.expressions(c.Row.Fields)
		if err != nil {
			return nil, err
		}

		var out cypher.Condition
		for _, arg := range args {
			out = cypher.AndOf(out, &cypher.IsNull{Arg: arg, Not: c.Not})
		}

		return out, nil

	case *sql.FieldCondition:
		e, err := t.expression(c.Field)
		if err != nil {
			return nil, err
		}

		if cond, ok := e.(cypher.Condition); ok {
			return cond, nil
		}

		return nil, t.unsupported(ErrUnsupportedCondition, c)

	default:
		// Like, InList
		return nil, t.unsupported(ErrUnsupportedCondition, c)
	}
}

// between lowers x BETWEEN a AND b to a <= x AND x <= b. Each operand is
// lowered once and shared, so anonymous parameters keep a single number.
func (t *translation) between(b *sql.Between) (cypher.Condition, error) {
	x, err := t.expression(b.Arg)
	if err != nil {
		return nil, err
	}

	low, err := t.expression(b.Low)
	if err != nil {
		return nil, err
	}

	high, err := t.expression(b.High)
	if err != nil {
		return nil, err
	}

	within := func(low, high cypher.Expression) cypher.Condition {
		return cypher.AndOf(cypher.Compare(cypher.Lte, low, x), cypher.Compare(cypher.Lte, x, high))
	}

	out := within(low, high)
	if b.Symmetric {
		out = cypher.OrOf(out, within(high, low))
	}

	if b.Not {
		return &cypher.Not{Condition: out}, nil
	}

	return out, nil
}

// rowCompare expands a row comparison component-wise. Equality and
// inequality become conjunctions; orderings become the lexicographic
// comparison built from the last component towards the first:
//
//	strict(r0, s0) OR (r0 = s0 AND (strict(r1, s1) OR (... last(rn, sn))))
func (t *translation) rowCompare(c *sql.RowCompare) (cypher.Condition, error) {
	left, err := t.expressions(c.Left.Fields)
	if err != nil {
		return nil, err
	}

	right, err := t.expressions(c.Right.Fields)
	if err != nil {
		return nil, err
	}

	if len(left) != len(right) || len(left) == 0 {
		return nil, t.unsupported(ErrUnsupportedCondition, c)
	}

	if c.Op == sql.OpEq || c.Op == sql.OpNe {
		var out cypher.Condition
		for i := range left {
			out = cypher.AndOf(out, cypher.Compare(comparators[c.Op], left[i], right[i]))
		}

		return out, nil
	}

	var strict cypher.Comparator

	switch c.Op {
	case sql.OpLt, sql.OpLe:
		strict = cypher.Lt
	default:
		strict = cypher.Gt
	}

	n := len(left) - 1
	out := cypher.Condition(cypher.Compare(comparators[c.Op], left[n], right[n]))

	for i := n - 1; i >= 0; i-- {
		out = cypher.OrOf(
			cypher.Compare(strict, left[i], right[i]),
			cypher.AndOf(cypher.Compare(cypher.Eq, left[i], right[i]), out),
		)
	}

	return out, nil
}
