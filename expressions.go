package sql2cypher

import (
	"github.com/rlch/sql2cypher/dialects/cypher"
	"github.com/rlch/sql2cypher/dialects/sql"
)

// translation is the state of a single Translate call.
type translation struct {
	cfg     Config
	symbols *symbolTable
}

func newTranslation(cfg Config) *translation {
	return &translation{cfg: cfg, symbols: newSymbolTable()}
}

func (t *translation) unsupported(kind error, part sql.QueryPart) error {
	return &UnsupportedError{Kind: kind, Node: sql.Render(part, t.cfg.renderNameCase)}
}

// ----------------------------------------------------------------------------
// Select list and sorting
// ----------------------------------------------------------------------------

func (t *translation) selectField(f sql.SelectField) (cypher.Expression, error) {
	switch f := f.(type) {
	case *sql.Asterisk:
		return &cypher.Asterisk{}, nil
	case *sql.QualifiedAsterisk:
		return t.symbols.variable(f.Table), nil
	case *sql.FieldAlias:
		e, err := t.expression(f.Field)
		if err != nil {
			return nil, err
		}

		return cypher.As(e, f.Alias), nil
	case sql.Field:
		return t.expression(f)
	default:
		return nil, t.unsupported(ErrUnsupportedExpression, f)
	}
}

func (t *translation) sortItem(s *sql.SortField) (*cypher.SortItem, error) {
	if s.Nulls != sql.NullsDefault {
		return nil, t.unsupported(ErrUnsupportedExpression, s)
	}

	e, err := t.expression(s.Field)
	if err != nil {
		return nil, err
	}

	dir, err := cypher.ParseDirection(s.Order.String())
	if err != nil {
		return nil, t.unsupported(ErrUnsupportedExpression, s)
	}

	return cypher.Sort(e, dir), nil
}

// ----------------------------------------------------------------------------
// Fields
// ----------------------------------------------------------------------------

func (t *translation) expression(f sql.Field) (cypher.Expression, error) {
	switch f := f.(type) {
	case nil:
		return cypher.Null(), nil
	case *sql.Null:
		return cypher.Null(), nil
	case *sql.Boolean:
		if f.Value {
			return cypher.True(), nil
		}

		return cypher.False(), nil
	case *sql.Param:
		return param(f), nil
	case *sql.TableField:
		return t.symbols.property(f.Table, f.Name), nil
	case *sql.AliasRef:
		return cypher.Name(f.Name), nil
	case *sql.Arithmetic:
		return t.arithmetic(f)
	case *sql.Function:
		return t.function(f)
	case *sql.CaseSimple:
		return t.caseSimple(f)
	case *sql.CaseSearched:
		return t.caseSearched(f)
	case *sql.Cast:
		return t.cast(f)
	case *sql.ConditionField:
		return t.condition(f.Condition)
	default:
		// Neg, Row, UnqualifiedField
		return nil, t.unsupported(ErrUnsupportedExpression, f)
	}
}

func param(p *sql.Param) cypher.Expression {
	switch {
	case p.Inline:
		if d, ok := sql.NumericValue(p); ok {
			return cypher.Number(d)
		}

		return cypher.LiteralOf(p.Value)
	case p.Name != "":
		return cypher.NamedParameter(p.Name)
	default:
		return cypher.AnonParameter()
	}
}

func (t *translation) arithmetic(a *sql.Arithmetic) (cypher.Expression, error) {
	var build func(l, r cypher.Expression) *cypher.Operation

	switch a.Op {
	case sql.OpAdd:
		build = cypher.Add
	case sql.OpSub:
		build = cypher.Subtract
	case sql.OpMul:
		build = cypher.Multiply
	case sql.OpDiv:
		build = cypher.Divide
	case sql.OpMod:
		build = cypher.Modulo
	default:
		return nil, t.unsupported(ErrUnsupportedExpression, a)
	}

	l, err := t.expression(a.Left)
	if err != nil {
		return nil, err
	}

	r, err := t.expression(a.Right)
	if err != nil {
		return nil, err
	}

	return build(l, r), nil
}

func (t *translation) expressions(fields []sql.Field) ([]cypher.Expression, error) {
	out := make([]cypher.Expression, 0, len(fields))

	for _, f := range fields {
		e, err := t.expression(f)
		if err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, nil
}

// ----------------------------------------------------------------------------
// Functions
// ----------------------------------------------------------------------------

// renamedFunctions maps SQL function names onto their Cypher counterpart when
// the call translates argument for argument.
var renamedFunctions = map[string]string{
	"abs":              "abs",
	"ceil":             "ceil",
	"ceiling":          "ceil",
	"floor":            "floor",
	"round":            "round",
	"sign":             "sign",
	"rand":             "rand",
	"random":           "rand",
	"e":                "e",
	"exp":              "exp",
	"ln":               "log",
	"log10":            "log10",
	"sqrt":             "sqrt",
	"pi":               "pi",
	"acos":             "acos",
	"asin":             "asin",
	"atan":             "atan",
	"atan2":            "atan2",
	"cos":              "cos",
	"cot":              "cot",
	"degrees":          "degrees",
	"radians":          "radians",
	"sin":              "sin",
	"tan":              "tan",
	"char_length":      "size",
	"character_length": "size",
	"length":           "size",
	"left":             "left",
	"right":            "right",
	"replace":          "replace",
	"reverse":          "reverse",
	"ltrim":            "ltrim",
	"rtrim":            "rtrim",
	"substring":        "substring",
	"substr":           "substring",
	"lower":            "toLower",
	"lcase":            "toLower",
	"upper":            "toUpper",
	"ucase":            "toUpper",
	"trim":             "trim",
	"coalesce":         "coalesce",
	"nvl":              "coalesce",
	"ifnull":           "coalesce",
}

func (t *translation) function(f *sql.Function) (cypher.Expression, error) {
	args, err := t.expressions(f.Args)
	if err != nil {
		return nil, err
	}

	switch f.Name {
	case "log":
		if len(args) == 2 {
			// log(a, b) is log(a) / log(b)
			return cypher.Divide(
				&cypher.FunctionInvocation{Name: "log", Args: args[:1]},
				&cypher.FunctionInvocation{Name: "log", Args: args[1:]},
			), nil
		}

		return t.builtin(f, "log", args)

	case "square":
		if len(args) != 1 {
			return nil, t.unsupported(ErrUnsupportedExpression, f)
		}

		return cypher.Multiply(args[0], args[0]), nil

	case "nullif":
		if len(args) != 2 {
			return nil, t.unsupported(ErrUnsupportedExpression, f)
		}

		return cypher.CaseExpression(nil).
			When(cypher.Compare(cypher.Eq, args[0], args[1]), cypher.Null()).
			ElseDefault(args[0]), nil

	case "nvl2":
		if len(args) != 3 {
			return nil, t.unsupported(ErrUnsupportedExpression, f)
		}

		return cypher.CaseExpression(nil).
			When(&cypher.IsNull{Arg: args[0], Not: true}, args[1]).
			ElseDefault(args[2]), nil

	case "nvl", "ifnull":
		if len(args) != 2 {
			return nil, t.unsupported(ErrUnsupportedExpression, f)
		}
	}

	name, ok := renamedFunctions[f.Name]
	if !ok {
		return nil, t.unsupported(ErrUnsupportedExpression, f)
	}

	return t.builtin(f, name, args)
}

func (t *translation) builtin(f *sql.Function, name string, args []cypher.Expression) (cypher.Expression, error) {
	fn, err := cypher.NewFunction(name, args...)
	if err != nil {
		// trim(x, chars) and similar forms have no Cypher equivalent.
		return nil, t.unsupported(ErrUnsupportedExpression, f)
	}

	return fn, nil
}

// ----------------------------------------------------------------------------
// CASE and CAST
// ----------------------------------------------------------------------------

func (t *translation) caseSimple(c *sql.CaseSimple) (cypher.Expression, error) {
	value, err := t.expression(c.Value)
	if err != nil {
		return nil, err
	}

	out := cypher.CaseExpression(value)

	for _, w := range c.Whens {
		when, err := t.expression(w.When)
		if err != nil {
			return nil, err
		}

		then, err := t.expression(w.Then)
		if err != nil {
			return nil, err
		}

		out.When(when, then)
	}

	if c.Else != nil {
		e, err := t.expression(c.Else)
		if err != nil {
			return nil, err
		}

		out.ElseDefault(e)
	}

	return out, nil
}

func (t *translation) caseSearched(c *sql.CaseSearched) (cypher.Expression, error) {
	out := cypher.CaseExpression(nil)

	for _, w := range c.Whens {
		when, err := t.condition(w.When)
		if err != nil {
			return nil, err
		}

		then, err := t.expression(w.Then)
		if err != nil {
			return nil, err
		}

		out.When(when, then)
	}

	if c.Else != nil {
		e, err := t.expression(c.Else)
		if err != nil {
			return nil, err
		}

		out.ElseDefault(e)
	}

	return out, nil
}

func (t *translation) cast(c *sql.Cast) (cypher.Expression, error) {
	var name string

	switch {
	case c.Type.IsString():
		name = "toString"
	case c.Type.IsBoolean():
		name = "toBoolean"
	case c.Type.IsFloat():
		name = "toFloat"
	case c.Type.IsInteger():
		name = "toInteger"
	default:
		return nil, t.unsupported(ErrUnsupportedExpression, c)
	}

	e, err := t.expression(c.Field)
	if err != nil {
		return nil, err
	}

	return &cypher.FunctionInvocation{Name: name, Args: []cypher.Expression{e}}, nil
}
