package cypher

// Statement is a sequence of clauses.
type Statement struct {
	Clauses []Clause
}

// Clause is one clause of a statement.
type Clause interface {
	clause()
}

// MatchClause is MATCH patterns [WHERE condition].
type MatchClause struct {
	Patterns []PatternElement
	Where    Condition
}

// ReturnClause is RETURN items [ORDER BY ...] [SKIP n] [LIMIT n].
type ReturnClause struct {
	Items   []Expression
	OrderBy []*SortItem
	Skip    Expression
	Limit   Expression
}

// CreateClause is CREATE patterns.
type CreateClause struct {
	Patterns []PatternElement
}

// UnwindClause is UNWIND expression AS name.
type UnwindClause struct {
	Expression Expression
	As         string
}

// SetItem is target = value.
type SetItem struct {
	Target Expression
	Value  Expression
}

// SetClause is SET items.
type SetClause struct {
	Items []SetItem
}

// DeleteClause is [DETACH] DELETE items.
type DeleteClause struct {
	Detach bool
	Items  []Expression
}

func (*MatchClause) clause()  {}
func (*ReturnClause) clause() {}
func (*CreateClause) clause() {}
func (*UnwindClause) clause() {}
func (*SetClause) clause()    {}
func (*DeleteClause) clause() {}

// ----------------------------------------------------------------------------
// Builder
// ----------------------------------------------------------------------------

// Builder assembles a statement clause by clause. Modifiers such as Where or
// OrderBy apply to the most recent clause they fit.
type Builder struct {
	clauses []Clause
}

// Match starts a statement with MATCH.
func Match(patterns ...PatternElement) *Builder {
	return (&Builder{}).Match(patterns...)
}

// Returning starts a statement with RETURN.
func Returning(items ...Expression) *Builder {
	return (&Builder{}).Returning(items...)
}

// Create starts a statement with CREATE.
func Create(patterns ...PatternElement) *Builder {
	return (&Builder{}).Create(patterns...)
}

// Unwind starts a statement with UNWIND.
func Unwind(e Expression, as string) *Builder {
	return (&Builder{}).Unwind(e, as)
}

// Match appends a MATCH clause.
func (b *Builder) Match(patterns ...PatternElement) *Builder {
	b.clauses = append(b.clauses, &MatchClause{Patterns: patterns})
	return b
}

// Where sets the condition of the last MATCH. A nil condition is ignored.
func (b *Builder) Where(c Condition) *Builder {
	if m, ok := b.last().(*MatchClause); ok && c != nil {
		m.Where = AndOf(m.Where, c)
	}

	return b
}

// Returning appends a RETURN clause.
func (b *Builder) Returning(items ...Expression) *Builder {
	b.clauses = append(b.clauses, &ReturnClause{Items: items})
	return b
}

// OrderBy sets the sort items of the last RETURN.
func (b *Builder) OrderBy(items ...*SortItem) *Builder {
	if r, ok := b.last().(*ReturnClause); ok {
		r.OrderBy = append(r.OrderBy, items...)
	}

	return b
}

// Skip sets SKIP on the last RETURN. A nil expression is ignored.
func (b *Builder) Skip(e Expression) *Builder {
	if r, ok := b.last().(*ReturnClause); ok && e != nil {
		r.Skip = e
	}

	return b
}

// Limit sets LIMIT on the last RETURN. A nil expression is ignored.
func (b *Builder) Limit(e Expression) *Builder {
	if r, ok := b.last().(*ReturnClause); ok && e != nil {
		r.Limit = e
	}

	return b
}

// Create appends a CREATE clause.
func (b *Builder) Create(patterns ...PatternElement) *Builder {
	b.clauses = append(b.clauses, &CreateClause{Patterns: patterns})
	return b
}

// Unwind appends an UNWIND clause.
func (b *Builder) Unwind(e Expression, as string) *Builder {
	b.clauses = append(b.clauses, &UnwindClause{Expression: e, As: as})
	return b
}

// Set appends target = value, extending a directly preceding SET.
func (b *Builder) Set(target, value Expression) *Builder {
	item := SetItem{Target: target, Value: value}

	if s, ok := b.last().(*SetClause); ok {
		s.Items = append(s.Items, item)
		return b
	}

	b.clauses = append(b.clauses, &SetClause{Items: []SetItem{item}})

	return b
}

// Delete appends DELETE items.
func (b *Builder) Delete(items ...Expression) *Builder {
	b.clauses = append(b.clauses, &DeleteClause{Items: items})
	return b
}

// DetachDelete appends DETACH DELETE items.
func (b *Builder) DetachDelete(items ...Expression) *Builder {
	b.clauses = append(b.clauses, &DeleteClause{Detach: true, Items: items})
	return b
}

// Build returns the statement.
func (b *Builder) Build() *Statement {
	clauses := make([]Clause, len(b.clauses))
	copy(clauses, b.clauses)

	return &Statement{Clauses: clauses}
}

func (b *Builder) last() Clause {
	if len(b.clauses) == 0 {
		return nil
	}

	return b.clauses[len(b.clauses)-1]
}
