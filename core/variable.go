package core

import (
	"fmt"
	"strings"

	"github.com/sarchlab/pasm/token"
)

// Variable is a named value declared with `@name value`.
type Variable struct {
	Name  string
	Value Value
}

func (v Variable) String() string {
	return fmt.Sprintf("%s: %s", v.Name, v.Value)
}

// ResolveVariables turns pending declarations into variables, in order.
// Declarations that reuse a name are all kept.
func ResolveVariables(decls []string) ([]Variable, error) {
	vars := make([]Variable, 0, len(decls))

	for _, decl := range decls {
		v, err := resolveVariable(decl)
		if err != nil {
			return nil, err
		}

		vars = append(vars, v)
	}

	return vars, nil
}

// resolveVariable reads `name value`. Only the first word after the name is
// the value; anything after it is ignored.
func resolveVariable(decl string) (Variable, error) {
	fields := strings.Fields(decl)
	if len(fields) == 0 {
		return Variable{}, fmt.Errorf("%w: %q", ErrMalformedDeclaration, decl)
	}

	name := strings.ReplaceAll(fields[0], string(token.VariableSigil), "")
	if name == "" {
		return Variable{}, fmt.Errorf("%w: %q", ErrMalformedDeclaration, decl)
	}

	valueText := ""
	if len(fields) > 1 {
		valueText = fields[1]
	}

	value := ParseValue(valueText)
	if value.IsText() {
		value = Text(stripQuotes(valueText))
	}

	return Variable{Name: name, Value: value}, nil
}

// lookupVariables returns every variable with the given name, in declaration
// order.
func lookupVariables(vars []Variable, name string) []Variable {
	var matches []Variable

	for _, v := range vars {
		if v.Name == name {
			matches = append(matches, v)
		}
	}

	return matches
}
