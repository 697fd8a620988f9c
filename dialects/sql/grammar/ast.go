package sqlgrammar

import "github.com/alecthomas/participle/v2/lexer"

// ----------------------------------------------------------------------------
// SQL concrete syntax tree
//
// This file defines the parse tree for the statements the translator accepts:
// SELECT, INSERT, DELETE and TRUNCATE. Other statement kinds are recognised by
// their leading keyword only. Names are kept exactly as written;
// case folding and name resolution happen when the tree is converted into the
// typed model in package sql.
// ----------------------------------------------------------------------------

// Script is the root of a SQL parse tree.
type Script struct {
	Pos       lexer.Position
	Statement *Statement `@@`
	Semi      string     `@Semicolon?`
}

// Statement is one of the supported top-level statements.
type Statement struct {
	Pos      lexer.Position
	Select   *Select   `  @@`
	Insert   *Insert   `| @@`
	Delete   *Delete   `| @@`
	Truncate *Truncate `| @@`
	Other    *Other    `| @@`
}

// ----------------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------------

// Select represents SELECT ... FROM ... WHERE ... ORDER BY ... LIMIT ... OFFSET.
type Select struct {
	Pos      lexer.Position
	Distinct bool          `"SELECT" @"DISTINCT"?`
	Top      *Additive     `( "TOP" @@ )?`
	Items    []*SelectItem `@@ ( "," @@ )*`
	From     []*TableExpr  `( "FROM" @@ ( "," @@ )* )?`
	Where    *Expression   `( "WHERE" @@ )?`
	GroupBy  []*Expression `( "GROUP" "BY" @@ ( "," @@ )* )?`
	Having   *Expression   `( "HAVING" @@ )?`
	OrderBy  []*SortItem   `( "ORDER" "BY" @@ ( "," @@ )* )?`
	Limit    *Limit        `@@?`
	Offset   *Offset       `@@?`
}

// SelectItem is *, t.*, or an expression with an optional alias.
type SelectItem struct {
	Pos       lexer.Position
	Star      bool        `  @"*"`
	Qualified []*Name     `| ( @@ "." )+ "*"`
	Expr      *Expression `| @@`
	Alias     *Name       `  ( "AS"? @@ )?`
}

// Limit represents LIMIT n, LIMIT n OFFSET m and the MySQL LIMIT m, n.
type Limit struct {
	Pos    lexer.Position
	Count  *Additive `"LIMIT" @@`
	Comma  bool      `( ( @","`
	Second *Additive `    @@ )`
	Offset *Additive `| "OFFSET" @@ ( "ROWS" | "ROW" )? )?`
}

// Offset represents a standalone OFFSET n [ROWS].
type Offset struct {
	Pos   lexer.Position
	Value *Additive `"OFFSET" @@ ( "ROWS" | "ROW" )?`
}

// Insert represents INSERT INTO t (cols) VALUES (...), (...).
type Insert struct {
	Pos     lexer.Position
	Table   *TableName `"INSERT" "INTO" @@`
	Columns []*Name    `( "(" @@ ( "," @@ )* ")" )?`
	Rows    []*Row     `"VALUES" @@ ( "," @@ )*`
}

// Row is a parenthesized list of values.
type Row struct {
	Pos    lexer.Position
	Values []*Expression `"(" @@ ( "," @@ )* ")"`
}

// Delete represents DELETE FROM t WHERE ...
type Delete struct {
	Pos   lexer.Position
	Table *TablePrimary `"DELETE" "FROM" @@`
	Where *Expression   `( "WHERE" @@ )?`
}

// Truncate represents TRUNCATE [TABLE] t.
type Truncate struct {
	Pos   lexer.Position
	Table *TableName `"TRUNCATE" "TABLE"? @@`
}

// Other is a statement of a kind without a parse tree. Everything up to the
// terminating semicolon is consumed unparsed.
type Other struct {
	Pos     lexer.Position
	Keyword string   `@( "UPDATE" | "MERGE" | "UPSERT" | "REPLACE" | "CREATE" | "ALTER" | "DROP" | "RENAME" | "COMMENT" | "GRANT" | "REVOKE" | "CALL" | "EXEC" | "EXECUTE" | "WITH" )`
	Tokens  []string `( @~Semicolon )*`
}

// ----------------------------------------------------------------------------
// Tables and joins
// ----------------------------------------------------------------------------

// TableExpr is a table followed by any number of joins (left associative).
type TableExpr struct {
	Pos     lexer.Position
	Primary *TablePrimary `@@`
	Joins   []*Join       `@@*`
}

// TablePrimary is a possibly qualified table name with an optional alias.
type TablePrimary struct {
	Pos   lexer.Position
	Table *TableName `@@`
	Alias *Name      `( "AS"? @@ )?`
}

// TableName is schema.table or table.
type TableName struct {
	Pos   lexer.Position
	Parts []*Name `@@ ( "." @@ )*`
}

// Join is [INNER | LEFT | RIGHT | FULL | CROSS] [OUTER] JOIN t [ON cond | USING (cols)].
type Join struct {
	Pos     lexer.Position
	Natural bool          `@"NATURAL"?`
	Kind    string        `@( "INNER" | "LEFT" | "RIGHT" | "FULL" | "CROSS" )?`
	Outer   bool          `@"OUTER"? "JOIN"`
	Table   *TablePrimary `@@`
	On      *Expression   `( "ON" @@`
	Using   []*Name       `| "USING" "(" @@ ( "," @@ )* ")" )?`
}

// Name is a bare or quoted identifier.
type Name struct {
	Pos      lexer.Position
	Ident    string `  @Ident`
	Quoted   string `| @QuotedIdent`
	Backtick string `| @BacktickIdent`
	Bracket  string `| @BracketIdent`
}

// ----------------------------------------------------------------------------
// Sorting
// ----------------------------------------------------------------------------

// SortItem is an expression with an optional direction and null ordering.
type SortItem struct {
	Pos   lexer.Position
	Expr  *Expression `@@`
	Order string      `@( "ASC" | "DESC" )?`
	Nulls string      `( "NULLS" @( "FIRST" | "LAST" ) )?`
}

// ----------------------------------------------------------------------------
// Expressions
//
// Expression precedence (lowest to highest):
// 1. OR
// 2. XOR
// 3. AND
// 4. NOT
// 5. Predicates (comparison, BETWEEN, IS NULL, LIKE, IN)
// 6. Addition/Subtraction/Concatenation (+, -, ||)
// 7. Multiplication/Division/Modulo (*, /, %)
// 8. Unary (-, +)
// 9. Primary (literals, columns, function calls, CASE, CAST, rows)
// ----------------------------------------------------------------------------

// Expression is the top-level expression type (OR).
type Expression struct {
	Pos   lexer.Position
	Left  *XorExpr   `@@`
	Right []*XorExpr `( "OR" @@ )*`
}

// XorExpr handles XOR.
type XorExpr struct {
	Pos   lexer.Position
	Left  *AndExpr   `@@`
	Right []*AndExpr `( "XOR" @@ )*`
}

// AndExpr handles AND.
type AndExpr struct {
	Pos   lexer.Position
	Left  *NotExpr   `@@`
	Right []*NotExpr `( "AND" @@ )*`
}

// NotExpr handles (possibly repeated) NOT.
type NotExpr struct {
	Pos       lexer.Position
	Not       *NotExpr   `  "NOT" @@`
	Predicate *Predicate `| @@`
}

// Predicate is an operand with an optional predicate tail.
type Predicate struct {
	Pos     lexer.Position
	Left    *Additive `@@`
	Compare *Compare  `( @@`
	Between *Between  `| @@`
	Is      *IsNull   `| @@`
	Like    *Like     `| @@`
	In      *In       `| @@ )?`
}

// Compare is a binary comparison tail.
type Compare struct {
	Pos   lexer.Position
	Op    string    `@( "=" | "<>" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right *Additive `@@`
}

// Between is [NOT] BETWEEN [SYMMETRIC | ASYMMETRIC] low AND high.
type Between struct {
	Pos       lexer.Position
	Not       bool      `@"NOT"? "BETWEEN"`
	Symmetric bool      `( @"SYMMETRIC" | "ASYMMETRIC" )?`
	Low       *Additive `@@ "AND"`
	High      *Additive `@@`
}

// IsNull is IS [NOT] NULL.
type IsNull struct {
	Pos lexer.Position
	Not bool `"IS" @"NOT"? "NULL"`
}

// Like is [NOT] LIKE pattern [ESCAPE e].
type Like struct {
	Pos     lexer.Position
	Not     bool      `@"NOT"? "LIKE"`
	Pattern *Additive `@@`
	Escape  *Additive `( "ESCAPE" @@ )?`
}

// In is [NOT] IN (list).
type In struct {
	Pos    lexer.Position
	Not    bool          `@"NOT"? "IN"`
	Values []*Expression `"(" @@ ( "," @@ )* ")"`
}

// Additive handles +, - and ||.
type Additive struct {
	Pos   lexer.Position
	Left  *Multiplicative `@@`
	Right []*AdditiveTerm `@@*`
}

// AdditiveTerm is an operator and its right operand.
type AdditiveTerm struct {
	Pos  lexer.Position
	Op   string          `@( "+" | "-" | "||" )`
	Expr *Multiplicative `@@`
}

// Multiplicative handles *, / and %.
type Multiplicative struct {
	Pos   lexer.Position
	Left  *Unary                `@@`
	Right []*MultiplicativeTerm `@@*`
}

// MultiplicativeTerm is an operator and its right operand.
type MultiplicativeTerm struct {
	Pos  lexer.Position
	Op   string `@( "*" | "/" | "%" )`
	Expr *Unary `@@`
}

// Unary is a signed primary.
type Unary struct {
	Pos     lexer.Position
	Minus   *Unary   `  "-" @@`
	Plus    *Unary   `| "+" @@`
	Primary *Primary `| @@`
}

// Primary is the highest-precedence expression.
type Primary struct {
	Pos       lexer.Position
	Case      *Case         `  @@`
	Cast      *Cast         `| @@`
	Substring *Substring    `| @@`
	Trim      *Trim         `| @@`
	Row       *ExplicitRow  `| @@`
	Function  *Function     `| @@`
	Literal   *Literal      `| @@`
	Param     string        `| @Param`
	Group     []*Expression `| "(" @@ ( "," @@ )* ")"`
	Column    []*Name       `| @@ ( "." @@ )*`
}

// ExplicitRow is ROW(a, b, ...).
type ExplicitRow struct {
	Pos    lexer.Position
	Values []*Expression `"ROW" "(" @@ ( "," @@ )* ")"`
}

// Literal is a constant value.
type Literal struct {
	Pos    lexer.Position
	Float  string `  @Float`
	Int    string `| @Int`
	String string `| @String`
	True   bool   `| @"TRUE"`
	False  bool   `| @"FALSE"`
	Null   bool   `| @"NULL"`
}

// Function is name(args). LEFT and RIGHT are reserved for joins but are also
// string functions.
type Function struct {
	Pos  lexer.Position
	Name string        `@( Ident | "LEFT" | "RIGHT" ) "("`
	Args []*Expression `( @@ ( "," @@ )* )? ")"`
}

// Case is a simple or searched CASE expression.
type Case struct {
	Pos   lexer.Position
	Value *Expression `"CASE" @@?`
	Whens []*When     `@@+`
	Else  *Expression `( "ELSE" @@ )? "END"`
}

// When is a WHEN ... THEN ... branch.
type When struct {
	Pos  lexer.Position
	When *Expression `"WHEN" @@`
	Then *Expression `"THEN" @@`
}

// Cast is CAST(expr AS type).
type Cast struct {
	Pos  lexer.Position
	Expr *Expression `"CAST" "(" @@ "AS"`
	Type *DataType   `@@ ")"`
}

// DataType is a possibly multi-word type name with optional precision.
type DataType struct {
	Pos    lexer.Position
	Names  []string `@Ident+`
	Params []string `( "(" @Int ( "," @Int )* ")" )?`
}

// Substring is the SQL standard SUBSTRING(s FROM p [FOR n]).
type Substring struct {
	Pos    lexer.Position
	Expr   *Expression `"SUBSTRING" "(" @@`
	From   *Expression `"FROM" @@`
	Length *Expression `( "FOR" @@ )? ")"`
}

// Trim is the SQL standard TRIM([LEADING | TRAILING | BOTH] [chars] FROM s).
type Trim struct {
	Pos   lexer.Position
	Mode  string      `"TRIM" "(" @( "LEADING" | "TRAILING" | "BOTH" )?`
	Chars *Expression `@@?`
	From  *Expression `"FROM" @@ ")"`
}
