package sql2cypher

import (
	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

// unwindVariable names each property map of a multi-row INSERT.
const unwindVariable = "properties"

func (t *translation) statement(s sql.Statement) (*cypher.Statement, error) {
	switch s := s.(type) {
	case *sql.Select:
		return t.selectStatement(s)
	case *sql.Delete:
		return t.deleteStatement(s)
	case *sql.Truncate:
		return t.truncateStatement(s)
	case *sql.Insert:
		return t.insertStatement(s)
	default:
		return nil, t.unsupported(ErrUnsupportedStatement, s)
	}
}

func (t *translation) selectStatement(s *sql.Select) (*cypher.Statement, error) {
	if s.Distinct || len(s.GroupBy) > 0 || s.Having != nil {
		return nil, t.unsupported(ErrUnsupportedStatement, s)
	}

	if len(s.From) == 0 {
		items, err := t.selectFields(s.Fields)
		if err != nil {
			return nil, err
		}

		return cypher.Returning(items...).Build(), nil
	}

	patterns := make([]cypher.PatternElement, 0, len(s.From))

	for _, from := range s.From {
		p, err := t.resolve(from)
		if err != nil {
			return nil, err
		}

		patterns = append(patterns, p)
	}

	b := cypher.Match(patterns...)

	if s.Where != nil {
		where, err := t.condition(s.Where)
		if err != nil {
			return nil, err
		}

		b.Where(where)
	}

	// The select list is lowered only now that FROM has bound every table.
	items, err := t.selectFields(s.Fields)
	if err != nil {
		return nil, err
	}

	b.Returning(items...)

	for _, o := range s.OrderBy {
		item, err := t.sortItem(o)
		if err != nil {
			return nil, err
		}

		b.OrderBy(item)
	}

	skip, err := t.limitValue(s.Offset)
	if err != nil {
		return nil, err
	}

	limit, err := t.limitValue(s.Limit)
	if err != nil {
		return nil, err
	}

	return b.Skip(skip).Limit(limit).Build(), nil
}

func (t *translation) selectFields(fields []sql.SelectField) ([]cypher.Expression, error) {
	out := make([]cypher.Expression, 0, len(fields))

	for _, f := range fields {
		e, err := t.selectField(f)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// limitValue lowers LIMIT and OFFSET values. Only literals and parameters
// are carried over.
func (t *translation) limitValue(f sql.Field) (cypher.Expression, error) {
	p, ok := f.(*sql.Param)
	if !ok {
		if f != nil {
			return nil, t.unsupported(ErrUnsupportedExpression, f)
		}

		return nil, nil
	}

	return param(p), nil
}

func (t *translation) deleteStatement(d *sql.Delete) (*cypher.Statement, error) {
	node := t.resolveNode(d.From)
	b := cypher.Match(node)

	if d.Where != nil {
		where, err := t.condition(d.Where)
		if err != nil {
			return nil, err
		}

		b.Where(where)
	}

	return b.Delete(node.SymbolicName()).Build(), nil
}

func (t *translation) truncateStatement(s *sql.Truncate) (*cypher.Statement, error) {
	node := t.resolveNode(s.Table)

	return cypher.Match(node).DetachDelete(node.SymbolicName()).Build(), nil
}

func (t *translation) insertStatement(s *sql.Insert) (*cypher.Statement, error) {
	if len(s.Columns) == 0 || len(s.Rows) == 0 {
		return nil, t.unsupported(ErrUnsupportedStatement, s)
	}

	node := t.resolveNode(s.Into)

	rows := make([]cypher.Expression, 0, len(s.Rows))

	for _, row := range s.Rows {
		props, err := t.properties(s, row)
		if err != nil {
			return nil, err
		}

		rows = append(rows, props)
	}

	if len(rows) == 1 {
		return cypher.Create(node.WithProperties(rows[0].(*cypher.MapLiteral))).Build(), nil
	}

	return cypher.Unwind(cypher.ListOf(rows...), unwindVariable).
		Create(node).
		Set(node.SymbolicName(), cypher.Name(unwindVariable)).
		Build(), nil
}

// properties builds the property map of one VALUES row, in column order.
func (t *translation) properties(s *sql.Insert, row []sql.Field) (*cypher.MapLiteral, error) {
	if len(row) != len(s.Columns) {
		return nil, t.unsupported(ErrUnsupportedStatement, s)
	}

	entries := make([]cypher.MapEntry, 0, len(row))

	for i, f := range row {
		e, err := t.expression(f)
		if err != nil {
			return nil, err
		}

		entries = append(entries, cypher.MapEntry{Key: s.Columns[i], Value: e})
	}

	return cypher.MapOf(entries...), nil
}
