package sql

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ----------------------------------------------------------------------------
// Typed SQL model
//
// The parser converts the participle parse tree into these types. Every
// variant implements exactly one of the sealed interfaces below, so consumers
// can dispatch with a type switch and treat the default arm as unsupported.
// ----------------------------------------------------------------------------

// QueryPart is any node of the model.
type QueryPart interface {
	queryPart()
}

// Statement is a top-level statement.
type Statement interface {
	QueryPart
	statement()
}

// Table is a table reference or a join tree.
type Table interface {
	QueryPart
	table()
}

// SelectField is an entry of a select list.
type SelectField interface {
	QueryPart
	selectField()
}

// Field is a value expression. Every field can appear in a select list.
type Field interface {
	SelectField
	field()
}

// Condition is a boolean predicate.
type Condition interface {
	QueryPart
	condition()
}

// ----------------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------------

// Select is a SELECT statement.
type Select struct {
	Distinct bool
	Fields   []SelectField
	From     []Table
	Where    Condition
	GroupBy  []Field
	Having   Condition
	OrderBy  []*SortField
	Limit    Field
	Offset   Field
}

// Insert is an INSERT ... VALUES statement.
type Insert struct {
	Into    *TableRef
	Columns []string
	Rows    [][]Field
}

// Delete is a DELETE statement.
type Delete struct {
	From  *TableRef
	Where Condition
}

// Truncate is a TRUNCATE statement.
type Truncate struct {
	Table *TableRef
}

// OtherStatement is a statement of a kind the model does not describe, such
// as UPDATE or CREATE TABLE. Keyword is its upper-cased leading keyword and
// Text its source without the terminating semicolon.
type OtherStatement struct {
	Keyword string
	Text    string
}

// ----------------------------------------------------------------------------
// Tables
// ----------------------------------------------------------------------------

// TableRef is one occurrence of a table in a statement. Two occurrences of the
// same table are distinct values; consumers key on the pointer.
type TableRef struct {
	Schema string
	Name   string
	Alias  string
	Meta   *TableMeta
}

// Comment returns the table comment from metadata, or "".
func (t *TableRef) Comment() string {
	if t == nil || t.Meta == nil {
		return ""
	}

	return t.Meta.Comment
}

// Aliased reports whether the occurrence carries an alias.
func (t *TableRef) Aliased() bool {
	return t != nil && t.Alias != ""
}

// JoinKind is the kind of a join.
type JoinKind int

// Join kinds.
const (
	JoinInner JoinKind = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
	JoinNatural
)

func (k JoinKind) String() string {
	switch k {
	case JoinLeft:
		return "LEFT JOIN"
	case JoinRight:
		return "RIGHT JOIN"
	case JoinFull:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	case JoinNatural:
		return "NATURAL JOIN"
	default:
		return "JOIN"
	}
}

// Join is a join of two tables.
type Join struct {
	Kind  JoinKind
	Left  Table
	Right Table
	On    Condition
	Using []string
}

// ----------------------------------------------------------------------------
// Select list entries
// ----------------------------------------------------------------------------

// Asterisk is an unqualified *.
type Asterisk struct{}

// QualifiedAsterisk is t.*.
type QualifiedAsterisk struct {
	Table *TableRef
}

// FieldAlias is expr AS alias.
type FieldAlias struct {
	Field Field
	Alias string
}

// ----------------------------------------------------------------------------
// Fields
// ----------------------------------------------------------------------------

// Param is a bind value. Inline params are literals written in the statement;
// the others are named or anonymous placeholders.
type Param struct {
	Inline bool
	Name   string
	// Value is a decimal.Decimal or a string for inline params, nil otherwise.
	Value any
}

// Anonymous reports whether the param is an anonymous placeholder.
func (p *Param) Anonymous() bool {
	return !p.Inline && p.Name == ""
}

// Boolean is TRUE or FALSE.
type Boolean struct {
	Value bool
}

// Null is the NULL literal.
type Null struct{}

// TableField is a column of a table occurrence.
type TableField struct {
	Table *TableRef
	Name  string
}

// Column returns the column metadata of the field, if any.
func (f *TableField) Column() *ColumnMeta {
	if f.Table == nil || f.Table.Meta == nil {
		return nil
	}

	return f.Table.Meta.Column(f.Name)
}

// UnqualifiedField is a column name that could not be tied to a table.
type UnqualifiedField struct {
	Name string
}

// AliasRef refers to a select list alias, e.g. from ORDER BY.
type AliasRef struct {
	Name string
}

// ArithmeticOp is a binary arithmetic operator.
type ArithmeticOp int

// Arithmetic operators.
const (
	OpAdd ArithmeticOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpConcat
)

func (o ArithmeticOp) String() string {
	return [...]string{"+", "-", "*", "/", "%", "||"}[o]
}

// Arithmetic is a binary arithmetic expression.
type Arithmetic struct {
	Op    ArithmeticOp
	Left  Field
	Right Field
}

// Neg is unary minus applied to a non-literal.
type Neg struct {
	Arg Field
}

// Function is a function call. Name is lower case.
type Function struct {
	Name string
	Args []Field
}

// Arg returns the i-th argument or nil.
func (f *Function) Arg(i int) Field {
	if i < len(f.Args) {
		return f.Args[i]
	}

	return nil
}

// Cast is CAST(field AS type).
type Cast struct {
	Field Field
	Type  DataType
}

// DataType is a SQL type name in upper case, e.g. "DOUBLE PRECISION".
type DataType struct {
	Name   string
	Params []string
}

// IsString reports whether the type is a character type.
func (d DataType) IsString() bool {
	switch d.Name {
	case "CHAR", "CHARACTER", "CHARACTER VARYING", "VARCHAR", "VARCHAR2", "NCHAR", "NVARCHAR",
		"LONGVARCHAR", "LONGNVARCHAR", "TEXT", "NTEXT", "CLOB", "NCLOB", "STRING":
		return true
	}

	return false
}

// IsBoolean reports whether the type is a boolean type.
func (d DataType) IsBoolean() bool {
	return d.Name == "BOOLEAN" || d.Name == "BOOL" || d.Name == "BIT"
}

// IsFloat reports whether the type is a floating point or exact numeric type
// with a fractional part.
func (d DataType) IsFloat() bool {
	switch d.Name {
	case "FLOAT", "REAL", "DOUBLE", "DOUBLE PRECISION", "DECIMAL", "DEC", "NUMERIC":
		return true
	}

	return false
}

// IsInteger reports whether the type is an integer type.
func (d DataType) IsInteger() bool {
	switch d.Name {
	case "TINYINT", "SMALLINT", "INT", "INTEGER", "BIGINT", "INT2", "INT4", "INT8":
		return true
	}

	return false
}

func (d DataType) String() string {
	if len(d.Params) == 0 {
		return d.Name
	}

	return d.Name + "(" + strings.Join(d.Params, ", ") + ")"
}

// CaseSimple is CASE value WHEN v THEN r ... END.
type CaseSimple struct {
	Value Field
	Whens []SimpleWhen
	Else  Field
}

// SimpleWhen is a branch of a simple CASE.
type SimpleWhen struct {
	When Field
	Then Field
}

// CaseSearched is CASE WHEN cond THEN r ... END.
type CaseSearched struct {
	Whens []SearchedWhen
	Else  Field
}

// SearchedWhen is a branch of a searched CASE.
type SearchedWhen struct {
	When Condition
	Then Field
}

// Row is a row value constructor (a, b, ...).
type Row struct {
	Fields []Field
}

// ConditionField is a condition used as a value.
type ConditionField struct {
	Condition Condition
}

// ----------------------------------------------------------------------------
// Conditions
// ----------------------------------------------------------------------------

// LogicalOp combines two conditions.
type LogicalOp int

// Logical operators.
const (
	OpAnd LogicalOp = iota
	OpOr
	OpXor
)

func (o LogicalOp) String() string {
	return [...]string{"AND", "OR", "XOR"}[o]
}

// Combined is a binary AND, OR or XOR.
type Combined struct {
	Op    LogicalOp
	Left  Condition
	Right Condition
}

// Not negates a condition.
type Not struct {
	Condition Condition
}

// CompareOp is a comparison operator.
type CompareOp int

// Comparison operators.
const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

func (o CompareOp) String() string {
	return [...]string{"=", "<>", "<", "<=", ">", ">="}[o]
}

// Compare is a binary comparison of two fields.
type Compare struct {
	Op    CompareOp
	Left  Field
	Right Field
}

// Between is arg [NOT] BETWEEN [SYMMETRIC] low AND high.
type Between struct {
	Arg       Field
	Low       Field
	High      Field
	Symmetric bool
	Not       bool
}

// IsNull is arg IS [NOT] NULL.
type IsNull struct {
	Arg Field
	Not bool
}

// RowCompare compares two rows of equal arity.
type RowCompare struct {
	Op    CompareOp
	Left  *Row
	Right *Row
}

// RowIsNull is (a, b) IS [NOT] NULL.
type RowIsNull struct {
	Row *Row
	Not bool
}

// Like is arg [NOT] LIKE pattern.
type Like struct {
	Arg     Field
	Pattern Field
	Escape  Field
	Not     bool
}

// InList is arg [NOT] IN (values).
type InList struct {
	Arg    Field
	Values []Field
	Not    bool
}

// FieldCondition is a value used as a condition, e.g. WHERE TRUE.
type FieldCondition struct {
	Field Field
}

// ----------------------------------------------------------------------------
// Sorting
// ----------------------------------------------------------------------------

// SortOrder is the direction of a sort field.
type SortOrder int

// Sort orders.
const (
	SortDefault SortOrder = iota
	SortAsc
	SortDesc
)

func (o SortOrder) String() string {
	return [...]string{"DEFAULT", "ASC", "DESC"}[o]
}

// NullOrdering is NULLS FIRST or NULLS LAST.
type NullOrdering int

// Null orderings.
const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// SortField is an ORDER BY entry.
type SortField struct {
	Field Field
	Order SortOrder
	Nulls NullOrdering
}

// ----------------------------------------------------------------------------
// Sealing
// ----------------------------------------------------------------------------

func (*Select) queryPart()            {}
func (*Insert) queryPart()            {}
func (*Delete) queryPart()            {}
func (*Truncate) queryPart()          {}
func (*OtherStatement) queryPart()    {}
func (*TableRef) queryPart()          {}
func (*Join) queryPart()              {}
func (*Asterisk) queryPart()          {}
func (*QualifiedAsterisk) queryPart() {}
func (*FieldAlias) queryPart()        {}
func (*Param) queryPart()             {}
func (*Boolean) queryPart()           {}
func (*Null) queryPart()              {}
func (*TableField) queryPart()        {}
func (*UnqualifiedField) queryPart()  {}
func (*AliasRef) queryPart()          {}
func (*Arithmetic) queryPart()        {}
func (*Neg) queryPart()               {}
func (*Function) queryPart()          {}
func (*Cast) queryPart()              {}
func (*CaseSimple) queryPart()        {}
func (*CaseSearched) queryPart()      {}
func (*Row) queryPart()               {}
func (*ConditionField) queryPart()    {}
func (*Combined) queryPart()          {}
func (*Not) queryPart()               {}
func (*Compare) queryPart()           {}
func (*Between) queryPart()           {}
func (*IsNull) queryPart()            {}
func (*RowCompare) queryPart()        {}
func (*RowIsNull) queryPart()         {}
func (*Like) queryPart()              {}
func (*InList) queryPart()            {}
func (*FieldCondition) queryPart()    {}
func (*SortField) queryPart()         {}

func (*Select) statement()         {}
func (*Insert) statement()         {}
func (*Delete) statement()         {}
func (*Truncate) statement()       {}
func (*OtherStatement) statement() {}

func (*TableRef) table() {}
func (*Join) table()     {}

func (*Asterisk) selectField()          {}
func (*QualifiedAsterisk) selectField() {}
func (*FieldAlias) selectField()        {}
func (*Param) selectField()             {}
func (*Boolean) selectField()           {}
func (*Null) selectField()              {}
func (*TableField) selectField()        {}
func (*UnqualifiedField) selectField()  {}
func (*AliasRef) selectField()          {}
func (*Arithmetic) selectField()        {}
func (*Neg) selectField()               {}
func (*Function) selectField()          {}
func (*Cast) selectField()              {}
func (*CaseSimple) selectField()        {}
func (*CaseSearched) selectField()      {}
func (*Row) selectField()               {}
func (*ConditionField) selectField()    {}

func (*Param) field()            {}
func (*Boolean) field()          {}
func (*Null) field()             {}
func (*TableField) field()       {}
func (*UnqualifiedField) field() {}
func (*AliasRef) field()         {}
func (*Arithmetic) field()       {}
func (*Neg) field()              {}
func (*Function) field()         {}
func (*Cast) field()             {}
func (*CaseSimple) field()       {}
func (*CaseSearched) field()     {}
func (*Row) field()              {}
func (*ConditionField) field()   {}

func (*Combined) condition()       {}
func (*Not) condition()            {}
func (*Compare) condition()        {}
func (*Between) condition()        {}
func (*IsNull) condition()         {}
func (*RowCompare) condition()     {}
func (*RowIsNull) condition()      {}
func (*Like) condition()           {}
func (*InList) condition()         {}
func (*FieldCondition) condition() {}

// NumericValue returns the decimal value of an inline numeric param.
func NumericValue(p *Param) (decimal.Decimal, bool) {
	if p == nil || !p.Inline {
		return decimal.Decimal{}, false
	}

	d, ok := p.Value.(decimal.Decimal)

	return d, ok
}
