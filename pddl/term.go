package pddl

import "strings"

// Term is the polymorphic value a predicate/function argument or effect
// target can be: an Object (constant) or a Variable.
type Term interface {
	Named
	termNode()
	String() string
}

// Object is a named constant, optionally typed.
type Object struct {
	Identifier
	types *NameSet[*Type]
}

// NewObject creates an untyped object.
func NewObject(name string) *Object {
	return &Object{Identifier: NewIdentifier(name), types: NewNameSet[*Type]()}
}

func (*Object) termNode() {}

// AddType attaches a type to this object (objects may carry more than one
// type annotation in PDDL, e.g. "peg1 peg2 - peg").
func (o *Object) AddType(t *Type) {
	o.types.Put(t)
}

// Types returns the object's type annotations, possibly empty.
func (o *Object) Types() []*Type {
	return o.types.Iter()
}

func (o *Object) String() string {
	return o.Name()
}

// Variable is a parameter/quantifier-bound name. The concrete syntax's
// leading "?" is stripped before storage.
type Variable struct {
	Identifier
	types *NameSet[*Type]
}

// NewVariable creates an untyped variable. name may be given with or
// without the leading "?"; it is stripped either way.
func NewVariable(name string) *Variable {
	return &Variable{
		Identifier: NewIdentifier(strings.TrimPrefix(name, "?")),
		types:      NewNameSet[*Type](),
	}
}

func (*Variable) termNode() {}

// AddType attaches a type to this variable.
func (v *Variable) AddType(t *Type) {
	v.types.Put(t)
}

// Types returns the variable's type annotations, possibly empty.
func (v *Variable) Types() []*Type {
	return v.types.Iter()
}

func (v *Variable) String() string {
	return "?" + v.Name()
}
