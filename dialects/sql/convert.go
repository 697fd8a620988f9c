package sql

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	sqlgrammar "github.com/rlch/sql2cypher/dialects/sql/grammar"
)

// converter turns one parse tree into the typed model. It is created per
// Parse call.
type converter struct {
	p     *Parser
	query string

	// scope holds the table occurrences visible to column references.
	scope []*TableRef

	// aliases holds select list aliases while ORDER BY is converted.
	aliases map[string]bool
}

// ----------------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------------

func (c *converter) statement(s *sqlgrammar.Statement) (Statement, error) {
	switch {
	case s.Select != nil:
		return c.selectStatement(s.Select)
	case s.Insert != nil:
		return c.insert(s.Insert)
	case s.Delete != nil:
		return c.delete(s.Delete)
	case s.Truncate != nil:
		return c.truncate(s.Truncate)
	case s.Other != nil:
		return c.other(s.Other), nil
	default:
		return nil, parseErrorf(s.Pos, "empty statement")
	}
}

func (c *converter) selectStatement(s *sqlgrammar.Select) (*Select, error) {
	out := &Select{Distinct: s.Distinct}

	if err := c.from(s.From, out); err != nil {
		return nil, err
	}

	aliases := make(map[string]bool)

	for _, item := range s.Items {
		field, err := c.selectItem(item)
		if err != nil {
			return nil, err
		}

		if fa, ok := field.(*FieldAlias); ok {
			aliases[fa.Alias] = true
		}

		out.Fields = append(out.Fields, field)
	}

	var err error

	if s.Where != nil {
		if out.Where, err = c.condition(s.Where); err != nil {
			return nil, err
		}
	}

	for _, g := range s.GroupBy {
		field, err := c.field(g)
		if err != nil {
			return nil, err
		}

		out.GroupBy = append(out.GroupBy, field)
	}

	if s.Having != nil {
		if out.Having, err = c.condition(s.Having); err != nil {
			return nil, err
		}
	}

	c.aliases = aliases

	for _, item := range s.OrderBy {
		sf, err := c.sortItem(item)
		if err != nil {
			return nil, err
		}

		out.OrderBy = append(out.OrderBy, sf)
	}

	c.aliases = nil

	if err := c.limit(s, out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *converter) limit(s *sqlgrammar.Select, out *Select) error {
	var err error

	if s.Top != nil {
		if !c.p.features.Top {
			return c.unsupportedSyntax(s.Top.Pos, "TOP")
		}

		if out.Limit, err = c.additive(s.Top); err != nil {
			return err
		}
	}

	if l := s.Limit; l != nil {
		if out.Limit != nil {
			return parseErrorf(l.Pos, "LIMIT cannot be combined with TOP")
		}

		first, err := c.additive(l.Count)
		if err != nil {
			return err
		}

		switch {
		case l.Comma:
			if !c.p.features.LimitComma {
				return c.unsupportedSyntax(l.Pos, "LIMIT offset, count")
			}

			out.Offset = first
			if out.Limit, err = c.additive(l.Second); err != nil {
				return err
			}
		case l.Offset != nil:
			out.Limit = first
			if out.Offset, err = c.additive(l.Offset); err != nil {
				return err
			}
		default:
			out.Limit = first
		}
	}

	if s.Offset != nil {
		if out.Offset != nil {
			return parseErrorf(s.Offset.Pos, "duplicate OFFSET")
		}

		if out.Offset, err = c.additive(s.Offset.Value); err != nil {
			return err
		}
	}

	return nil
}

func (c *converter) insert(s *sqlgrammar.Insert) (*Insert, error) {
	into, err := c.tableName(s.Table, nil)
	if err != nil {
		return nil, err
	}

	out := &Insert{Into: into}

	for _, col := range s.Columns {
		name, err := c.name(col)
		if err != nil {
			return nil, err
		}

		out.Columns = append(out.Columns, name)
	}

	for i, row := range s.Rows {
		if len(out.Columns) > 0 && len(row.Values) != len(out.Columns) {
			return nil, parseErrorf(row.Pos, "row %d has %d values, expected %d", i+1, len(row.Values), len(out.Columns))
		}

		values := make([]Field, 0, len(row.Values))

		for _, v := range row.Values {
			field, err := c.field(v)
			if err != nil {
				return nil, err
			}

			values = append(values, field)
		}

		out.Rows = append(out.Rows, values)
	}

	return out, nil
}

func (c *converter) delete(s *sqlgrammar.Delete) (*Delete, error) {
	from, err := c.tableName(s.Table.Table, s.Table.Alias)
	if err != nil {
		return nil, err
	}

	c.scope = append(c.scope, from)
	out := &Delete{From: from}

	if s.Where != nil {
		if out.Where, err = c.condition(s.Where); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (c *converter) truncate(s *sqlgrammar.Truncate) (*Truncate, error) {
	table, err := c.tableName(s.Table, nil)
	if err != nil {
		return nil, err
	}

	return &Truncate{Table: table}, nil
}

// other keeps the source of an unmodelled statement for error messages.
func (c *converter) other(s *sqlgrammar.Other) *OtherStatement {
	text := c.query
	if off := s.Pos.Offset; off >= 0 && off <= len(text) {
		text = text[off:]
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSpace(strings.TrimSuffix(text, ";"))

	return &OtherStatement{Keyword: Upper(s.Keyword), Text: text}
}

// ----------------------------------------------------------------------------
// Tables
// ----------------------------------------------------------------------------

// from registers every table occurrence before any ON condition is
// converted, so conditions may refer to all of them.
func (c *converter) from(exprs []*sqlgrammar.TableExpr, out *Select) error {
	type pending struct {
		join *Join
		src  *sqlgrammar.Join
	}

	var joins []pending

	for _, te := range exprs {
		primary, err := c.tableName(te.Primary.Table, te.Primary.Alias)
		if err != nil {
			return err
		}

		c.scope = append(c.scope, primary)

		var table Table = primary

		for _, j := range te.Joins {
			right, err := c.tableName(j.Table.Table, j.Table.Alias)
			if err != nil {
				return err
			}

			c.scope = append(c.scope, right)

			join := &Join{Kind: joinKind(j), Left: table, Right: right}
			joins = append(joins, pending{join: join, src: j})
			table = join
		}

		out.From = append(out.From, table)
	}

	for _, p := range joins {
		switch {
		case p.src.On != nil:
			on, err := c.condition(p.src.On)
			if err != nil {
				return err
			}

			p.join.On = on
		case len(p.src.Using) > 0:
			for _, u := range p.src.Using {
				name, err := c.name(u)
				if err != nil {
					return err
				}

				p.join.Using = append(p.join.Using, name)
			}
		}
	}

	return nil
}

func joinKind(j *sqlgrammar.Join) JoinKind {
	if j.Natural {
		return JoinNatural
	}

	switch strings.ToUpper(j.Kind) {
	case "LEFT":
		return JoinLeft
	case "RIGHT":
		return JoinRight
	case "FULL":
		return JoinFull
	case "CROSS":
		return JoinCross
	default:
		return JoinInner
	}
}

func (c *converter) tableName(tn *sqlgrammar.TableName, alias *sqlgrammar.Name) (*TableRef, error) {
	parts := make([]string, 0, len(tn.Parts))

	for _, part := range tn.Parts {
		name, err := c.name(part)
		if err != nil {
			return nil, err
		}

		parts = append(parts, name)
	}

	ref := &TableRef{
		Schema: strings.Join(parts[:len(parts)-1], "."),
		Name:   parts[len(parts)-1],
	}

	if alias != nil {
		name, err := c.name(alias)
		if err != nil {
			return nil, err
		}

		ref.Alias = name
	}

	ref.Meta = c.p.settings.Meta.Table(ref.Name)
	if ref.Meta == nil {
		c.p.diag("no metadata for table", zap.String("table", ref.Name))
	}

	return ref, nil
}

// name checks the quoting style against the dialect and folds the name.
func (c *converter) name(n *sqlgrammar.Name) (string, error) {
	f := c.p.features

	switch {
	case n.Quoted != "" && !f.DoubleQuotes:
		return "", c.unsupportedSyntax(n.Pos, "double-quoted identifiers")
	case n.Backtick != "" && !f.Backticks:
		return "", c.unsupportedSyntax(n.Pos, "backtick-quoted identifiers")
	case n.Bracket != "" && !f.Brackets:
		return "", c.unsupportedSyntax(n.Pos, "bracket-quoted identifiers")
	}

	value, quoted := n.Value()

	return c.p.settings.NameCase.Fold(value, quoted), nil
}

func (c *converter) unsupportedSyntax(pos lexer.Position, what string) error {
	return parseErrorf(pos, "%s not supported by dialect %s", what, c.p.settings.Dialect)
}

// ----------------------------------------------------------------------------
// Select list and sorting
// ----------------------------------------------------------------------------

func (c *converter) selectItem(item *sqlgrammar.SelectItem) (SelectField, error) {
	switch {
	case item.Star:
		return &Asterisk{}, nil
	case len(item.Qualified) > 0:
		names := make([]string, 0, len(item.Qualified))

		for _, n := range item.Qualified {
			name, err := c.name(n)
			if err != nil {
				return nil, err
			}

			names = append(names, name)
		}

		return &QualifiedAsterisk{Table: c.lookupTable(names)}, nil
	}

	field, err := c.field(item.Expr)
	if err != nil {
		return nil, err
	}

	if item.Alias == nil {
		return field, nil
	}

	alias, err := c.name(item.Alias)
	if err != nil {
		return nil, err
	}

	return &FieldAlias{Field: field, Alias: alias}, nil
}

func (c *converter) sortItem(item *sqlgrammar.SortItem) (*SortField, error) {
	field, err := c.field(item.Expr)
	if err != nil {
		return nil, err
	}

	sf := &SortField{Field: field}

	switch strings.ToUpper(item.Order) {
	case "ASC":
		sf.Order = SortAsc
	case "DESC":
		sf.Order = SortDesc
	}

	switch strings.ToUpper(item.Nulls) {
	case "FIRST":
		sf.Nulls = NullsFirst
	case "LAST":
		sf.Nulls = NullsLast
	}

	return sf, nil
}

// ----------------------------------------------------------------------------
// Column resolution
// ----------------------------------------------------------------------------

// lookupTable finds the table occurrence a qualifier refers to. An aliased
// occurrence answers only to its alias. A qualifier that matches nothing in
// scope yields a detached occurrence.
func (c *converter) lookupTable(qualifier []string) *TableRef {
	name := qualifier[len(qualifier)-1]
	schema := strings.Join(qualifier[:len(qualifier)-1], ".")

	for _, t := range c.scope {
		if schema != "" && t.Schema != schema {
			continue
		}

		if t.Alias == name || (t.Alias == "" && t.Name == name) {
			return t
		}
	}

	c.p.diag("qualifier not in scope", zap.String("qualifier", strings.Join(qualifier, ".")))

	return &TableRef{Schema: schema, Name: name, Meta: c.p.settings.Meta.Table(name)}
}

func (c *converter) column(names []*sqlgrammar.Name) (Field, error) {
	parts := make([]string, 0, len(names))

	for _, n := range names {
		name, err := c.name(n)
		if err != nil {
			return nil, err
		}

		parts = append(parts, name)
	}

	if len(parts) > 3 {
		return nil, parseErrorf(names[0].Pos, "too many qualifiers in %s", strings.Join(parts, "."))
	}

	column := parts[len(parts)-1]
	if len(parts) > 1 {
		return &TableField{Table: c.lookupTable(parts[:len(parts)-1]), Name: column}, nil
	}

	if c.aliases[column] {
		return &AliasRef{Name: column}, nil
	}

	return c.unqualified(column), nil
}

// unqualified ties a bare column name to the only table in scope, or to the
// only table whose metadata declares the column.
func (c *converter) unqualified(column string) Field {
	switch len(c.scope) {
	case 0:
		return &UnqualifiedField{Name: column}
	case 1:
		return &TableField{Table: c.scope[0], Name: column}
	}

	var match *TableRef

	for _, t := range c.scope {
		if t.Meta.Column(column) == nil {
			continue
		}

		if match != nil {
			c.p.diag("ambiguous column", zap.String("column", column))
			return &UnqualifiedField{Name: column}
		}

		match = t
	}

	if match == nil {
		c.p.diag("column not found in metadata", zap.String("column", column))
		return &UnqualifiedField{Name: column}
	}

	return &TableField{Table: match, Name: column}
}

// ----------------------------------------------------------------------------
// Conditions
// ----------------------------------------------------------------------------

func (c *converter) condition(e *sqlgrammar.Expression) (Condition, error) {
	result, err := c.xorCondition(e.Left)
	if err != nil {
		return nil, err
	}

	for _, right := range e.Right {
		next, err := c.xorCondition(right)
		if err != nil {
			return nil, err
		}

		result = &Combined{Op: OpOr, Left: result, Right: next}
	}

	return result, nil
}

func (c *converter) xorCondition(x *sqlgrammar.XorExpr) (Condition, error) {
	result, err := c.andCondition(x.Left)
	if err != nil {
		return nil, err
	}

	for _, right := range x.Right {
		next, err := c.andCondition(right)
		if err != nil {
			return nil, err
		}

		result = &Combined{Op: OpXor, Left: result, Right: next}
	}

	return result, nil
}

func (c *converter) andCondition(a *sqlgrammar.AndExpr) (Condition, error) {
	result, err := c.notCondition(a.Left)
	if err != nil {
		return nil, err
	}

	for _, right := range a.Right {
		next, err := c.notCondition(right)
		if err != nil {
			return nil, err
		}

		result = &Combined{Op: OpAnd, Left: result, Right: next}
	}

	return result, nil
}

func (c *converter) notCondition(n *sqlgrammar.NotExpr) (Condition, error) {
	if n.Not != nil {
		inner, err := c.notCondition(n.Not)
		if err != nil {
			return nil, err
		}

		return &Not{Condition: inner}, nil
	}

	return c.predicate(n.Predicate)
}

func (c *converter) predicate(p *sqlgrammar.Predicate) (Condition, error) {
	if !p.HasTail() {
		field, err := c.additive(p.Left)
		if err != nil {
			return nil, err
		}

		if cf, ok := field.(*ConditionField); ok {
			return cf.Condition, nil
		}

		return &FieldCondition{Field: field}, nil
	}

	left, err := c.additive(p.Left)
	if err != nil {
		return nil, err
	}

	switch {
	case p.Compare != nil:
		return c.compare(p.Compare, left)
	case p.Between != nil:
		return c.between(p.Between, left)
	case p.Is != nil:
		if row, ok := left.(*Row); ok {
			return &RowIsNull{Row: row, Not: p.Is.Not}, nil
		}

		return &IsNull{Arg: left, Not: p.Is.Not}, nil
	case p.Like != nil:
		return c.like(p.Like, left)
	default:
		return c.in(p.In, left)
	}
}

func (c *converter) compare(cmp *sqlgrammar.Compare, left Field) (Condition, error) {
	right, err := c.additive(cmp.Right)
	if err != nil {
		return nil, err
	}

	op := compareOp(cmp.Op)

	lrow, lok := left.(*Row)
	rrow, rok := right.(*Row)

	switch {
	case lok && rok:
		if len(lrow.Fields) != len(rrow.Fields) {
			return nil, parseErrorf(cmp.Pos, "row arity mismatch: %d and %d", len(lrow.Fields), len(rrow.Fields))
		}

		return &RowCompare{Op: op, Left: lrow, Right: rrow}, nil
	case lok || rok:
		return nil, parseErrorf(cmp.Pos, "cannot compare a row with a value")
	}

	return &Compare{Op: op, Left: left, Right: right}, nil
}

func compareOp(op string) CompareOp {
	switch op {
	case "<>", "!=":
		return OpNe
	case "<":
		return OpLt
	case "<=":
		return OpLe
	case ">":
		return OpGt
	case ">=":
		return OpGe
	default:
		return OpEq
	}
}

func (c *converter) between(b *sqlgrammar.Between, arg Field) (Condition, error) {
	low, err := c.additive(b.Low)
	if err != nil {
		return nil, err
	}

	high, err := c.additive(b.High)
	if err != nil {
		return nil, err
	}

	return &Between{Arg: arg, Low: low, High: high, Symmetric: b.Symmetric, Not: b.Not}, nil
}

func (c *converter) like(l *sqlgrammar.Like, arg Field) (Condition, error) {
	pattern, err := c.additive(l.Pattern)
	if err != nil {
		return nil, err
	}

	out := &Like{Arg: arg, Pattern: pattern, Not: l.Not}

	if l.Escape != nil {
		if out.Escape, err = c.additive(l.Escape); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (c *converter) in(in *sqlgrammar.In, arg Field) (Condition, error) {
	out := &InList{Arg: arg, Not: in.Not}

	for _, v := range in.Values {
		field, err := c.field(v)
		if err != nil {
			return nil, err
		}

		out.Values = append(out.Values, field)
	}

	return out, nil
}

// ----------------------------------------------------------------------------
// Fields
// ----------------------------------------------------------------------------

// field converts an expression in value position. Boolean expressions become
// a ConditionField.
func (c *converter) field(e *sqlgrammar.Expression) (Field, error) {
	if p := plainOperand(e); p != nil {
		return c.additive(p)
	}

	cond, err := c.condition(e)
	if err != nil {
		return nil, err
	}

	return &ConditionField{Condition: cond}, nil
}

// plainOperand returns the operand of an expression without boolean
// operators or predicate tails.
func plainOperand(e *sqlgrammar.Expression) *sqlgrammar.Additive {
	if e.HasOR() || e.Left.HasXOR() || e.Left.Left.HasAND() {
		return nil
	}

	n := e.Left.Left.Left
	if n.Not != nil || n.Predicate.HasTail() {
		return nil
	}

	return n.Predicate.Left
}

func (c *converter) additive(a *sqlgrammar.Additive) (Field, error) {
	result, err := c.multiplicative(a.Left)
	if err != nil {
		return nil, err
	}

	for _, term := range a.Right {
		right, err := c.multiplicative(term.Expr)
		if err != nil {
			return nil, err
		}

		op := OpAdd

		switch term.Op {
		case "-":
			op = OpSub
		case "||":
			op = OpConcat
		}

		result = &Arithmetic{Op: op, Left: result, Right: right}
	}

	return result, nil
}

func (c *converter) multiplicative(m *sqlgrammar.Multiplicative) (Field, error) {
	result, err := c.unary(m.Left)
	if err != nil {
		return nil, err
	}

	for _, term := range m.Right {
		right, err := c.unary(term.Expr)
		if err != nil {
			return nil, err
		}

		op := OpMul

		switch term.Op {
		case "/":
			op = OpDiv
		case "%":
			op = OpMod
		}

		result = &Arithmetic{Op: op, Left: result, Right: right}
	}

	return result, nil
}

func (c *converter) unary(u *sqlgrammar.Unary) (Field, error) {
	switch {
	case u.Plus != nil:
		return c.unary(u.Plus)
	case u.Minus != nil:
		inner, err := c.unary(u.Minus)
		if err != nil {
			return nil, err
		}

		// Negative numeric literals are values, not negations.
		if d, ok := NumericValue(asParam(inner)); ok {
			return &Param{Inline: true, Value: d.Neg()}, nil
		}

		return &Neg{Arg: inner}, nil
	default:
		return c.primary(u.Primary)
	}
}

func asParam(f Field) *Param {
	p, _ := f.(*Param)
	return p
}

func (c *converter) primary(p *sqlgrammar.Primary) (Field, error) {
	switch {
	case p.Case != nil:
		return c.caseExpr(p.Case)
	case p.Cast != nil:
		return c.cast(p.Cast)
	case p.Substring != nil:
		return c.substring(p.Substring)
	case p.Trim != nil:
		return c.trim(p.Trim)
	case p.Row != nil:
		return c.row(p.Row.Values)
	case p.Function != nil:
		return c.function(p.Function)
	case p.Literal != nil:
		return c.literal(p.Literal)
	case p.Param != "":
		return c.param(p.Pos, p.Param)
	case len(p.Group) == 1:
		return c.field(p.Group[0])
	case len(p.Group) > 1:
		return c.row(p.Group)
	default:
		if s, ok := c.doubleQuotedString(p.Column); ok {
			return &Param{Inline: true, Value: s}, nil
		}

		return c.column(p.Column)
	}
}

// doubleQuotedString reports whether a lone double-quoted name is a string
// literal in the current dialect.
func (c *converter) doubleQuotedString(names []*sqlgrammar.Name) (string, bool) {
	if !c.p.features.DoubleQuotedStrings || len(names) != 1 || names[0].Quoted == "" {
		return "", false
	}

	value, _ := names[0].Value()
	c.p.diag("double-quoted token read as string literal", zap.String("value", value))

	return value, true
}

func (c *converter) row(values []*sqlgrammar.Expression) (*Row, error) {
	row := &Row{Fields: make([]Field, 0, len(values))}

	for _, v := range values {
		field, err := c.field(v)
		if err != nil {
			return nil, err
		}

		row.Fields = append(row.Fields, field)
	}

	return row, nil
}

func (c *converter) literal(l *sqlgrammar.Literal) (Field, error) {
	switch {
	case l.IsFloat(), l.IsInt():
		text := l.Float + l.Int

		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, parseErrorf(l.Pos, "invalid number %s", text)
		}

		return &Param{Inline: true, Value: d}, nil
	case l.String != "":
		return &Param{Inline: true, Value: sqlgrammar.Unquote(l.String)}, nil
	case l.True:
		return &Boolean{Value: true}, nil
	case l.False:
		return &Boolean{Value: false}, nil
	default:
		return &Null{}, nil
	}
}

func (c *converter) param(pos lexer.Position, text string) (Field, error) {
	if text == "?" {
		return &Param{}, nil
	}

	if text[:1] != c.p.prefix {
		return nil, parseErrorf(pos, "named parameter %s does not use prefix %q", text, c.p.prefix)
	}

	return &Param{Name: text[1:]}, nil
}

func (c *converter) function(f *sqlgrammar.Function) (Field, error) {
	out := &Function{Name: Lower(f.Name), Args: make([]Field, 0, len(f.Args))}

	for _, a := range f.Args {
		field, err := c.field(a)
		if err != nil {
			return nil, err
		}

		out.Args = append(out.Args, field)
	}

	return out, nil
}

func (c *converter) substring(s *sqlgrammar.Substring) (Field, error) {
	exprs := []*sqlgrammar.Expression{s.Expr, s.From}
	if s.Length != nil {
		exprs = append(exprs, s.Length)
	}

	out := &Function{Name: "substring"}

	for _, e := range exprs {
		field, err := c.field(e)
		if err != nil {
			return nil, err
		}

		out.Args = append(out.Args, field)
	}

	return out, nil
}

// trim maps TRIM(LEADING FROM s) and TRIM(TRAILING FROM s) to ltrim and
// rtrim. Explicit trim characters stay as a second argument.
func (c *converter) trim(t *sqlgrammar.Trim) (Field, error) {
	from, err := c.field(t.From)
	if err != nil {
		return nil, err
	}

	name := "trim"
	if t.Chars == nil {
		switch strings.ToUpper(t.Mode) {
		case "LEADING":
			name = "ltrim"
		case "TRAILING":
			name = "rtrim"
		}
	}

	out := &Function{Name: name, Args: []Field{from}}

	if t.Chars != nil {
		chars, err := c.field(t.Chars)
		if err != nil {
			return nil, err
		}

		out.Args = append(out.Args, chars)
	}

	return out, nil
}

func (c *converter) cast(e *sqlgrammar.Cast) (Field, error) {
	field, err := c.field(e.Expr)
	if err != nil {
		return nil, err
	}

	dt := DataType{Params: e.Type.Params}

	names := make([]string, 0, len(e.Type.Names))
	for _, n := range e.Type.Names {
		names = append(names, Upper(n))
	}

	dt.Name = strings.Join(names, " ")

	return &Cast{Field: field, Type: dt}, nil
}

func (c *converter) caseExpr(e *sqlgrammar.Case) (Field, error) {
	var (
		elseField Field
		err       error
	)

	if e.Else != nil {
		if elseField, err = c.field(e.Else); err != nil {
			return nil, err
		}
	}

	if e.Value == nil {
		out := &CaseSearched{Else: elseField}

		for _, w := range e.Whens {
			when, err := c.condition(w.When)
			if err != nil {
				return nil, err
			}

			then, err := c.field(w.Then)
			if err != nil {
				return nil, err
			}

			out.Whens = append(out.Whens, SearchedWhen{When: when, Then: then})
		}

		return out, nil
	}

	value, err := c.field(e.Value)
	if err != nil {
		return nil, err
	}

	out := &CaseSimple{Value: value, Else: elseField}

	for _, w := range e.Whens {
		when, err := c.field(w.When)
		if err != nil {
			return nil, err
		}

		then, err := c.field(w.Then)
		if err != nil {
			return nil, err
		}

		out.Whens = append(out.Whens, SimpleWhen{When: when, Then: then})
	}

	return out, nil
}
