package sql

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Render returns SQL text for a part of the model. Names are folded with
// the given name case. The output is meant for messages, not for execution.
func Render(part QueryPart, nameCase NameCase) string {
	var b strings.Builder

	r := &renderer{b: &b, nameCase: nameCase}
	r.part(part)

	return b.String()
}

type renderer struct {
	b        *strings.Builder
	nameCase NameCase
}

func (r *renderer) write(s string) {
	r.b.WriteString(s)
}

func (r *renderer) name(s string) {
	r.write(r.nameCase.Fold(s, false))
}

func (r *renderer) part(p QueryPart) {
	switch p := p.(type) {
	case nil:
		r.write("NULL")
	case Statement:
		r.statement(p)
	case Table:
		r.table(p)
	case Field:
		r.field(p)
	case SelectField:
		r.selectField(p)
	case Condition:
		r.condition(p)
	case *SortField:
		r.sortField(p)
	}
}

func (r *renderer) list(n int, each func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			r.write(", ")
		}

		each(i)
	}
}

func (r *renderer) statement(s Statement) {
	switch s := s.(type) {
	case *Select:
		r.selectStatement(s)
	case *Insert:
		r.write("INSERT INTO ")
		r.table(s.Into)

		if len(s.Columns) > 0 {
			r.write(" (")
			r.list(len(s.Columns), func(i int) { r.name(s.Columns[i]) })
			r.write(")")
		}

		r.write(" VALUES ")
		r.list(len(s.Rows), func(i int) {
			r.write("(")
			r.list(len(s.Rows[i]), func(j int) { r.field(s.Rows[i][j]) })
			r.write(")")
		})
	case *Delete:
		r.write("DELETE FROM ")
		r.table(s.From)

		if s.Where != nil {
			r.write(" WHERE ")
			r.condition(s.Where)
		}
	case *Truncate:
		r.write("TRUNCATE TABLE ")
		r.table(s.Table)
	case *OtherStatement:
		r.write(s.Text)
	}
}

func (r *renderer) selectStatement(s *Select) {
	r.write("SELECT ")

	if s.Distinct {
		r.write("DISTINCT ")
	}

	r.list(len(s.Fields), func(i int) { r.selectField(s.Fields[i]) })

	if len(s.From) > 0 {
		r.write(" FROM ")
		r.list(len(s.From), func(i int) { r.table(s.From[i]) })
	}

	if s.Where != nil {
		r.write(" WHERE ")
		r.condition(s.Where)
	}

	if len(s.GroupBy) > 0 {
		r.write(" GROUP BY ")
		r.list(len(s.GroupBy), func(i int) { r.field(s.GroupBy[i]) })
	}

	if s.Having != nil {
		r.write(" HAVING ")
		r.condition(s.Having)
	}

	if len(s.OrderBy) > 0 {
		r.write(" ORDER BY ")
		r.list(len(s.OrderBy), func(i int) { r.sortField(s.OrderBy[i]) })
	}

	if s.Limit != nil {
		r.write(" LIMIT ")
		r.field(s.Limit)
	}

	if s.Offset != nil {
		r.write(" OFFSET ")
		r.field(s.Offset)
	}
}

func (r *renderer) table(t Table) {
	switch t := t.(type) {
	case *TableRef:
		if t.Schema != "" {
			r.name(t.Schema)
			r.write(".")
		}

		r.name(t.Name)

		if t.Alias != "" {
			r.write(" AS ")
			r.name(t.Alias)
		}
	case *Join:
		r.table(t.Left)
		r.write(" " + t.Kind.String() + " ")
		r.table(t.Right)

		switch {
		case t.On != nil:
			r.write(" ON ")
			r.condition(t.On)
		case len(t.Using) > 0:
			r.write(" USING (")
			r.list(len(t.Using), func(i int) { r.name(t.Using[i]) })
			r.write(")")
		}
	}
}

func (r *renderer) qualifier(t *TableRef) {
	if t.Alias != "" {
		r.name(t.Alias)
	} else {
		r.name(t.Name)
	}
}

func (r *renderer) selectField(f SelectField) {
	switch f := f.(type) {
	case *Asterisk:
		r.write("*")
	case *QualifiedAsterisk:
		r.qualifier(f.Table)
		r.write(".*")
	case *FieldAlias:
		r.field(f.Field)
		r.write(" AS ")
		r.name(f.Alias)
	case Field:
		r.field(f)
	}
}

func (r *renderer) sortField(s *SortField) {
	r.field(s.Field)

	switch s.Order {
	case SortAsc:
		r.write(" ASC")
	case SortDesc:
		r.write(" DESC")
	}

	switch s.Nulls {
	case NullsFirst:
		r.write(" NULLS FIRST")
	case NullsLast:
		r.write(" NULLS LAST")
	}
}

func (r *renderer) field(f Field) {
	switch f := f.(type) {
	case nil:
		r.write("NULL")
	case *Param:
		r.param(f)
	case *Boolean:
		if f.Value {
			r.write("TRUE")
		} else {
			r.write("FALSE")
		}
	case *Null:
		r.write("NULL")
	case *TableField:
		r.qualifier(f.Table)
		r.write(".")
		r.name(f.Name)
	case *UnqualifiedField:
		r.name(f.Name)
	case *AliasRef:
		r.name(f.Name)
	case *Arithmetic:
		r.write("(")
		r.field(f.Left)
		r.write(" " + f.Op.String() + " ")
		r.field(f.Right)
		r.write(")")
	case *Neg:
		r.write("-")
		r.field(f.Arg)
	case *Function:
		r.name(f.Name)
		r.write("(")
		r.list(len(f.Args), func(i int) { r.field(f.Args[i]) })
		r.write(")")
	case *Cast:
		r.write("CAST(")
		r.field(f.Field)
		r.write(" AS " + f.Type.String() + ")")
	case *CaseSimple:
		r.write("CASE ")
		r.field(f.Value)

		for _, w := range f.Whens {
			r.write(" WHEN ")
			r.field(w.When)
			r.write(" THEN ")
			r.field(w.Then)
		}

		r.caseElse(f.Else)
	case *CaseSearched:
		r.write("CASE")

		for _, w := range f.Whens {
			r.write(" WHEN ")
			r.condition(w.When)
			r.write(" THEN ")
			r.field(w.Then)
		}

		r.caseElse(f.Else)
	case *Row:
		r.row(f)
	case *ConditionField:
		r.write("(")
		r.condition(f.Condition)
		r.write(")")
	}
}

func (r *renderer) caseElse(f Field) {
	if f != nil {
		r.write(" ELSE ")
		r.field(f)
	}

	r.write(" END")
}

func (r *renderer) row(row *Row) {
	r.write("(")
	r.list(len(row.Fields), func(i int) { r.field(row.Fields[i]) })
	r.write(")")
}

func (r *renderer) param(p *Param) {
	switch {
	case p.Inline:
		switch v := p.Value.(type) {
		case decimal.Decimal:
			r.write(v.String())
		case string:
			r.write("'" + strings.ReplaceAll(v, "'", "''") + "'")
		default:
			r.write("NULL")
		}
	case p.Name != "":
		r.write(":" + p.Name)
	default:
		r.write("?")
	}
}

func (r *renderer) condition(c Condition) {
	switch c := c.(type) {
	case *Combined:
		r.write("(")
		r.condition(c.Left)
		r.write(" " + c.Op.String() + " ")
		r.condition(c.Right)
		r.write(")")
	case *Not:
		r.write("NOT (")
		r.condition(c.Condition)
		r.write(")")
	case *Compare:
		r.field(c.Left)
		r.write(" " + c.Op.String() + " ")
		r.field(c.Right)
	case *Between:
		r.field(c.Arg)

		if c.Not {
			r.write(" NOT")
		}

		r.write(" BETWEEN ")

		if c.Symmetric {
			r.write("SYMMETRIC ")
		}

		r.field(c.Low)
		r.write(" AND ")
		r.field(c.High)
	case *IsNull:
		r.field(c.Arg)
		r.isNull(c.Not)
	case *RowCompare:
		r.row(c.Left)
		r.write(" " + c.Op.String() + " ")
		r.row(c.Right)
	case *RowIsNull:
		r.row(c.Row)
		r.isNull(c.Not)
	case *Like:
		r.field(c.Arg)

		if c.Not {
			r.write(" NOT")
		}

		r.write(" LIKE ")
		r.field(c.Pattern)

		if c.Escape != nil {
			r.write(" ESCAPE ")
			r.field(c.Escape)
		}
	case *InList:
		r.field(c.Arg)

		if c.Not {
			r.write(" NOT")
		}

		r.write(" IN (")
		r.list(len(c.Values), func(i int) { r.field(c.Values[i]) })
		r.write(")")
	case *FieldCondition:
		r.field(c.Field)
	}
}

func (r *renderer) isNull(not bool) {
	if not {
		r.write(" IS NOT NULL")
	} else {
		r.write(" IS NULL")
	}
}
