package cyphergrammar

import "github.com/alecthomas/participle/v2/lexer"

// ----------------------------------------------------------------------------
// Cypher parse tree
//
// The accepted language is the part of openCypher that translated SQL
// statements use: MATCH, RETURN, CREATE, UNWIND, SET and DELETE over
// node/relationship patterns and scalar expressions.
// ----------------------------------------------------------------------------

// Script is the root of a Cypher parse tree.
type Script struct {
	Pos   lexer.Position
	Query *Query `@@`
	Semi  string `@Semicolon?`
}

// Query is a sequence of clauses.
type Query struct {
	Pos     lexer.Position
	Clauses []*Clause `@@+`
}

// Clause is any supported clause.
type Clause struct {
	Pos    lexer.Position
	Match  *MatchClause  `  @@`
	Unwind *UnwindClause `| @@`
	Create *CreateClause `| @@`
	Set    *SetClause    `| @@`
	Delete *DeleteClause `| @@`
	Return *ReturnClause `| @@`
}

// ----------------------------------------------------------------------------
// Clauses
// ----------------------------------------------------------------------------

// MatchClause is OPTIONAL? MATCH pattern WHERE?.
type MatchClause struct {
	Pos      lexer.Position
	Optional bool     `@"OPTIONAL"?`
	Pattern  *Pattern `"MATCH" @@`
	Where    *Where   `@@?`
}

// UnwindClause is UNWIND expr AS symbol.
type UnwindClause struct {
	Pos    lexer.Position
	Expr   *Expression `"UNWIND" @@`
	Symbol string      `"AS" @( Ident | EscapedIdent )`
}

// CreateClause is CREATE pattern.
type CreateClause struct {
	Pos     lexer.Position
	Pattern *Pattern `"CREATE" @@`
}

// SetClause is SET items.
type SetClause struct {
	Pos   lexer.Position
	Items []*SetItem `"SET" @@ ( Comma @@ )*`
}

// SetItem assigns to a variable or a property path.
type SetItem struct {
	Pos    lexer.Position
	Target *PropertyExpr `@@`
	Value  *Expression   `Eq @@`
}

// DeleteClause is DETACH? DELETE expressions.
type DeleteClause struct {
	Pos    lexer.Position
	Detach bool          `@"DETACH"?`
	Exprs  []*Expression `"DELETE" @@ ( Comma @@ )*`
}

// ReturnClause is RETURN projection.
type ReturnClause struct {
	Pos  lexer.Position
	Body *ProjectionBody `"RETURN" @@`
}

// ProjectionBody is the body of RETURN.
type ProjectionBody struct {
	Pos      lexer.Position
	Distinct bool             `@"DISTINCT"?`
	Items    *ProjectionItems `@@`
	Order    *OrderBy         `@@?`
	Skip     *Expression      `( "SKIP" @@ )?`
	Limit    *Expression      `( "LIMIT" @@ )?`
}

// ProjectionItems is * or a list of projection items.
type ProjectionItems struct {
	Pos   lexer.Position
	Star  bool              `  @Star`
	Items []*ProjectionItem `| @@ ( Comma @@ )*`
}

// ProjectionItem is an expression with an optional alias.
type ProjectionItem struct {
	Pos   lexer.Position
	Expr  *Expression `@@`
	Alias string      `( "AS" @( Ident | EscapedIdent ) )?`
}

// OrderBy is ORDER BY items.
type OrderBy struct {
	Pos   lexer.Position
	Items []*OrderItem `"ORDER" "BY" @@ ( Comma @@ )*`
}

// OrderItem is an expression with an optional direction.
type OrderItem struct {
	Pos  lexer.Position
	Expr *Expression `@@`
	Desc bool        `( @( "DESC" | "DESCENDING" ) | "ASC" | "ASCENDING" )?`
}

// Where is WHERE expr.
type Where struct {
	Pos  lexer.Position
	Expr *Expression `"WHERE" @@`
}

// ----------------------------------------------------------------------------
// Patterns
// ----------------------------------------------------------------------------

// Pattern is a comma-separated list of pattern elements.
type Pattern struct {
	Pos      lexer.Position
	Elements []*PatternElement `@@ ( Comma @@ )*`
}

// PatternElement is a node pattern followed by relationship hops.
type PatternElement struct {
	Pos   lexer.Position
	Node  *NodePattern        `@@`
	Chain []*PatternElemChain `@@*`
}

// PatternElemChain is a relationship pattern followed by a node pattern.
type PatternElemChain struct {
	Pos  lexer.Position
	Rel  *RelationshipPattern `@@`
	Node *NodePattern         `@@`
}

// NodePattern is (variable? labels? properties?).
type NodePattern struct {
	Pos        lexer.Position
	Variable   string      `LParen @( Ident | EscapedIdent )?`
	Labels     *NodeLabels `@@?`
	Properties *MapLiteral `@@? RParen`
}

// NodeLabels is a sequence of :Label.
type NodeLabels struct {
	Pos    lexer.Position
	Labels []string `( Colon @( Ident | EscapedIdent ) )+`
}

// RelationshipPattern is -[...]->, <-[...]- or -[...]-.
type RelationshipPattern struct {
	Pos        lexer.Position
	LeftArrow  bool                `@Less? Minus`
	Detail     *RelationshipDetail `( LBracket @@ RBracket )?`
	RightArrow bool                `Minus @Greater?`
}

// RelationshipDetail is the content inside relationship brackets.
type RelationshipDetail struct {
	Pos      lexer.Position
	Variable string   `@( Ident | EscapedIdent )?`
	Types    []string `( Colon @( Ident | EscapedIdent ) ( Pipe Colon? @( Ident | EscapedIdent ) )* )?`
}

// ----------------------------------------------------------------------------
// Expressions
//
// Precedence, lowest first: OR, XOR, AND, NOT, comparison, + -, * / %, ^,
// unary, postfix, atom.
// ----------------------------------------------------------------------------

// Expression is the OR level.
type Expression struct {
	Pos   lexer.Position
	Left  *XorExpr   `@@`
	Right []*XorExpr `( "OR" @@ )*`
}

// XorExpr is the XOR level.
type XorExpr struct {
	Pos   lexer.Position
	Left  *AndExpr   `@@`
	Right []*AndExpr `( "XOR" @@ )*`
}

// AndExpr is the AND level.
type AndExpr struct {
	Pos   lexer.Position
	Left  *NotExpr   `@@`
	Right []*NotExpr `( "AND" @@ )*`
}

// NotExpr is NOT*.
type NotExpr struct {
	Pos  lexer.Position
	Not  []string        `@"NOT"*`
	Expr *ComparisonExpr `@@`
}

// ComparisonExpr is a chain of comparisons.
type ComparisonExpr struct {
	Pos   lexer.Position
	Left  *AddSubExpr       `@@`
	Right []*ComparisonTerm `@@*`
}

// ComparisonTerm is an operator and its right operand.
type ComparisonTerm struct {
	Pos  lexer.Position
	Op   string      `@( NotEqual | LessEqual | GreaterEqual | Eq | Less | Greater )`
	Expr *AddSubExpr `@@`
}

// AddSubExpr is the + - level.
type AddSubExpr struct {
	Pos   lexer.Position
	Left  *MultDivExpr  `@@`
	Right []*AddSubTerm `@@*`
}

// AddSubTerm is + or - with its operand.
type AddSubTerm struct {
	Pos  lexer.Position
	Op   string       `@( Plus | Minus )`
	Expr *MultDivExpr `@@`
}

// MultDivExpr is the * / % level.
type MultDivExpr struct {
	Pos   lexer.Position
	Left  *PowerExpr     `@@`
	Right []*MultDivTerm `@@*`
}

// MultDivTerm is *, / or % with its operand.
type MultDivTerm struct {
	Pos  lexer.Position
	Op   string     `@( Star | Slash | Percent )`
	Expr *PowerExpr `@@`
}

// PowerExpr is the ^ level.
type PowerExpr struct {
	Pos   lexer.Position
	Left  *UnaryExpr   `@@`
	Right []*UnaryExpr `( Caret @@ )*`
}

// UnaryExpr is an optional sign.
type UnaryExpr struct {
	Pos  lexer.Position
	Op   string       `@( Plus | Minus )?`
	Expr *PostfixExpr `@@`
}

// PostfixExpr is an atom followed by property lookups and predicates.
type PostfixExpr struct {
	Pos      lexer.Position
	Atom     *Atom            `@@`
	Suffixes []*PostfixSuffix `@@*`
}

// PostfixSuffix is .name, IS [NOT] NULL or IN list.
type PostfixSuffix struct {
	Pos      lexer.Position
	Property string        `  Dot @( Ident | EscapedIdent )`
	IsNull   *IsNullSuffix `| @@`
	In       *AddSubExpr   `| "IN" @@`
}

// IsNullSuffix is IS NOT? NULL.
type IsNullSuffix struct {
	Pos  lexer.Position
	Not  bool `"IS" @"NOT"?`
	Null bool `@"NULL"`
}

// ----------------------------------------------------------------------------
// Atoms
// ----------------------------------------------------------------------------

// Atom is the base expression. FunctionCall needs a following LParen, so it
// is tried before Variable.
type Atom struct {
	Pos           lexer.Position
	Parameter     *Parameter      `  @@`
	CaseExpr      *CaseExpression `| @@`
	Parenthesized *Expression     `| LParen @@ RParen`
	FunctionCall  *FunctionCall   `| @@`
	Literal       *Literal        `| @@`
	Variable      string          `| @( Ident | EscapedIdent )`
}

// Literal is a constant value.
type Literal struct {
	Pos    lexer.Position
	Null   bool         `  @"NULL"`
	True   bool         `| @"TRUE"`
	False  bool         `| @"FALSE"`
	Float  *string      `| @Float`
	Int    *string      `| @Int`
	String *string      `| @String`
	List   *ListLiteral `| @@`
	Map    *MapLiteral  `| @@`
}

// ListLiteral is [expr, ...].
type ListLiteral struct {
	Pos   lexer.Position
	Items []*Expression `LBracket ( @@ ( Comma @@ )* )? RBracket`
}

// MapLiteral is {key: value, ...}.
type MapLiteral struct {
	Pos   lexer.Position
	Pairs []*MapPair `LBrace ( @@ ( Comma @@ )* )? RBrace`
}

// MapPair is key: value.
type MapPair struct {
	Pos   lexer.Position
	Key   string      `@( Ident | EscapedIdent ) Colon`
	Value *Expression `@@`
}

// Parameter is $name or $0.
type Parameter struct {
	Pos  lexer.Position
	Name string `Dollar ( @( Ident | EscapedIdent ) | @Int )`
}

// CaseExpression is CASE expr? (WHEN expr THEN expr)+ (ELSE expr)? END.
type CaseExpression struct {
	Pos   lexer.Position
	Input *Expression `"CASE" ( (?! "WHEN" ) @@ )?`
	Whens []*CaseWhen `@@+`
	Else  *Expression `( "ELSE" @@ )?`
	End   bool        `@"END"`
}

// CaseWhen is WHEN expr THEN expr.
type CaseWhen struct {
	Pos  lexer.Position
	When *Expression `"WHEN" @@`
	Then *Expression `"THEN" @@`
}

// FunctionCall is name(args).
type FunctionCall struct {
	Pos  lexer.Position
	Name string        `@Ident (?= LParen )`
	Args []*Expression `LParen ( @@ ( Comma @@ )* )? RParen`
}

// PropertyExpr is a variable followed by property lookups: a.b.c
type PropertyExpr struct {
	Pos   lexer.Position
	Base  string   `@( Ident | EscapedIdent )`
	Props []string `( Dot @( Ident | EscapedIdent ) )*`
}
