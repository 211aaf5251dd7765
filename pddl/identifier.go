package pddl

import "strings"

// Named is implemented by every symbol that lives in a name-keyed
// container: types, objects, variables, predicates, functions, classes,
// preferences, operators.
type Named interface {
	Name() string
}

// Identifier is the case-normalized name every PDDL symbol carries.
// Equality and hashing of the symbols that embed it use the lower-cased
// form; renaming via SetName re-normalizes.
type Identifier struct {
	name string
}

// NewIdentifier constructs an Identifier, normalizing to lower case.
func NewIdentifier(name string) Identifier {
	return Identifier{name: strings.ToLower(name)}
}

// Name returns the normalized name.
func (id *Identifier) Name() string {
	return id.name
}

// SetName renames the identifier, re-normalizing to lower case.
func (id *Identifier) SetName(name string) {
	id.name = strings.ToLower(name)
}
