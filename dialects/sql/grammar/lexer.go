package sqlgrammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// reserved lists the words that can never be used as bare identifiers.
// Everything else that appears as a literal in the grammar (NULLS, SYMMETRIC,
// TOP, ...) is lexed as an Ident and matched case-insensitively.
const reserved = `SELECT|FROM|WHERE|AND|OR|XOR|NOT|AS|ON|USING|JOIN|INNER|LEFT|RIGHT|FULL|OUTER|CROSS|NATURAL|` +
	`ORDER|BY|ASC|DESC|LIMIT|OFFSET|INSERT|INTO|VALUES|DELETE|TRUNCATE|TABLE|IS|NULL|TRUE|FALSE|` +
	`BETWEEN|CASE|WHEN|THEN|ELSE|END|CAST|LIKE|IN|DISTINCT|ALL|GROUP|HAVING|UNION|UPDATE|SET|FOR|ESCAPE`

// SQLLexer defines the lexer for the supported SQL surface.
// Keywords are case-insensitive; identifiers keep their case until name
// folding is applied by the caller.
var SQLLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Whitespace and comments (elided from output)
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
		{Name: "BlockComment", Pattern: `/\*(?s:.)*?\*/`, Action: nil},
		{Name: "LineComment", Pattern: `--[^\r\n]*`, Action: nil},

		// Reserved words must come before identifiers
		{Name: "Keyword", Pattern: `(?i)(?:` + reserved + `)\b`},

		// Parameters: anonymous ? or a sigil followed by a name
		{Name: "Param", Pattern: `\?|[:@$&#][A-Za-z0-9_]+`},

		// Multi-character operators (must come before single-char)
		{Name: "NotEqual", Pattern: `<>|!=`},
		{Name: "LessEqual", Pattern: `<=`},
		{Name: "GreaterEqual", Pattern: `>=`},
		{Name: "Concat", Pattern: `\|\|`},

		// Numbers - float must come before int and before Dot
		{Name: "Float", Pattern: `(?:\d+\.\d*|\.\d+)(?:[eE][+-]?\d+)?|\d+[eE][+-]?\d+`},
		{Name: "Int", Pattern: `\d+`},

		// Single-character operators
		{Name: "Eq", Pattern: `=`},
		{Name: "Less", Pattern: `<`},
		{Name: "Greater", Pattern: `>`},
		{Name: "Plus", Pattern: `\+`},
		{Name: "Minus", Pattern: `-`},
		{Name: "Star", Pattern: `\*`},
		{Name: "Slash", Pattern: `/`},
		{Name: "Percent", Pattern: `%`},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Comma", Pattern: `,`},
		{Name: "Semicolon", Pattern: `;`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},

		// String literals use doubled single quotes for escaping
		{Name: "String", Pattern: `'(?:[^']|'')*'`},

		// Quoted identifiers: "ansi", `mysql`, [sqlserver]
		{Name: "QuotedIdent", Pattern: `"(?:[^"]|"")*"`},
		{Name: "BacktickIdent", Pattern: "`(?:[^`]|``)*`"},
		{Name: "BracketIdent", Pattern: `\[[^\]]+\]`},

		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	},
})
