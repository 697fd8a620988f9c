package sql

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameCase controls how identifiers are folded when parsed or rendered.
type NameCase int

const (
	// NameCaseDefault behaves like NameCaseAsIs.
	NameCaseDefault NameCase = iota
	NameCaseAsIs
	NameCaseLower
	NameCaseLowerIfUnquoted
	NameCaseUpper
	NameCaseUpperIfUnquoted
)

var nameCaseNames = map[NameCase]string{
	NameCaseDefault:         "DEFAULT",
	NameCaseAsIs:            "AS_IS",
	NameCaseLower:           "LOWER",
	NameCaseLowerIfUnquoted: "LOWER_IF_UNQUOTED",
	NameCaseUpper:           "UPPER",
	NameCaseUpperIfUnquoted: "UPPER_IF_UNQUOTED",
}

func (c NameCase) String() string {
	if name, ok := nameCaseNames[c]; ok {
		return name
	}

	return fmt.Sprintf("NameCase(%d)", int(c))
}

// ParseNameCase returns the name case with the given name, ignoring case.
// Dashes are accepted in place of underscores.
func ParseNameCase(name string) (NameCase, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(name)), "-", "_")
	for c, n := range nameCaseNames {
		if n == normalized {
			return c, nil
		}
	}

	return NameCaseDefault, fmt.Errorf("%w: %q", ErrUnknownNameCase, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *NameCase) UnmarshalText(text []byte) error {
	parsed, err := ParseNameCase(string(text))
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Fold applies the name case to an identifier.
func (c NameCase) Fold(name string, quoted bool) string {
	switch c {
	case NameCaseLower:
		return Lower(name)
	case NameCaseLowerIfUnquoted:
		if quoted {
			return name
		}

		return Lower(name)
	case NameCaseUpper:
		return Upper(name)
	case NameCaseUpperIfUnquoted:
		if quoted {
			return name
		}

		return Upper(name)
	default:
		return name
	}
}

// Lower lower-cases s independently of the process locale.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Upper upper-cases s independently of the process locale.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
