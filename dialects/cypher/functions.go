package cypher

import (
	"errors"
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Function catalogue
//
// The built-in functions the translator may emit, keyed by lowercase name.
// Variadic functions have MaxArgs < 0.
// ----------------------------------------------------------------------------

var (
	// ErrUnknownFunction is returned for a name missing from the catalogue.
	ErrUnknownFunction = errors.New("cypher: unknown function")
	// ErrFunctionArity is returned when the argument count is out of range.
	ErrFunctionArity = errors.New("cypher: wrong number of arguments")
)

// FunctionSignature describes one built-in function.
type FunctionSignature struct {
	Name    string // canonical spelling
	MinArgs int
	MaxArgs int
}

func (s FunctionSignature) accepts(n int) bool {
	return n >= s.MinArgs && (s.MaxArgs < 0 || n <= s.MaxArgs)
}

func fixed(name string, n int) FunctionSignature {
	return FunctionSignature{Name: name, MinArgs: n, MaxArgs: n}
}

var functionCatalogue = func() map[string]FunctionSignature {
	sigs := []FunctionSignature{
		// Numeric
		fixed("abs", 1),
		fixed("ceil", 1),
		fixed("floor", 1),
		{Name: "round", MinArgs: 1, MaxArgs: 3},
		fixed("sign", 1),
		fixed("rand", 0),
		fixed("isNaN", 1),

		// Logarithmic
		fixed("e", 0),
		fixed("exp", 1),
		fixed("log", 1),
		fixed("log10", 1),
		fixed("sqrt", 1),

		// Trigonometric
		fixed("acos", 1),
		fixed("asin", 1),
		fixed("atan", 1),
		fixed("atan2", 2),
		fixed("cos", 1),
		fixed("cot", 1),
		fixed("degrees", 1),
		fixed("haversin", 1),
		fixed("pi", 0),
		fixed("radians", 1),
		fixed("sin", 1),
		fixed("tan", 1),

		// String
		fixed("left", 2),
		fixed("right", 2),
		fixed("ltrim", 1),
		fixed("rtrim", 1),
		fixed("trim", 1),
		fixed("replace", 3),
		fixed("reverse", 1),
		{Name: "split", MinArgs: 2, MaxArgs: 2},
		{Name: "substring", MinArgs: 2, MaxArgs: 3},
		fixed("toLower", 1),
		fixed("toUpper", 1),
		fixed("size", 1),

		// Conversion
		fixed("toString", 1),
		fixed("toBoolean", 1),
		fixed("toFloat", 1),
		fixed("toInteger", 1),

		// Scalar
		{Name: "coalesce", MinArgs: 1, MaxArgs: -1},
		fixed("id", 1),
		fixed("elementId", 1),
		fixed("labels", 1),
		fixed("type", 1),
		fixed("timestamp", 0),
	}

	m := make(map[string]FunctionSignature, len(sigs))
	for _, s := range sigs {
		m[strings.ToLower(s.Name)] = s
	}

	return m
}()

// LookupFunction returns the signature of a built-in function. Lookup ignores
// case.
func LookupFunction(name string) (FunctionSignature, bool) {
	s, ok := functionCatalogue[strings.ToLower(name)]
	return s, ok
}

// NewFunction returns an invocation of a built-in function after checking its
// arity. The invocation uses the canonical spelling.
func NewFunction(name string, args ...Expression) (*FunctionInvocation, error) {
	sig, ok := LookupFunction(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	if !sig.accepts(len(args)) {
		return nil, fmt.Errorf("%w: %s takes %s, got %d", ErrFunctionArity, sig.Name, sig.arity(), len(args))
	}

	return &FunctionInvocation{Name: sig.Name, Args: args}, nil
}

func (s FunctionSignature) arity() string {
	switch {
	case s.MaxArgs < 0:
		return fmt.Sprintf("at least %d", s.MinArgs)
	case s.MinArgs == s.MaxArgs:
		return fmt.Sprintf("%d", s.MinArgs)
	default:
		return fmt.Sprintf("%d to %d", s.MinArgs, s.MaxArgs)
	}
}
