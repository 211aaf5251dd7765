package pddl

import "strings"

// Predicate is a symbol with an ordered, optionally typed parameter list.
// Order is significant: (at ?x ?y) and a predicate declared (at ?y ?x)
// are different arities in argument position, even if never different in
// practice, so parameters are a Sequence, not a set.
type Predicate struct {
	Identifier
	parameters *Sequence[*Variable]
}

// NewPredicate creates a predicate with no parameters.
func NewPredicate(name string) *Predicate {
	return &Predicate{Identifier: NewIdentifier(name), parameters: NewSequence[*Variable]()}
}

// AddParameter appends a parameter to the predicate's ordered list.
func (p *Predicate) AddParameter(v *Variable) {
	p.parameters.Append(v)
}

// Parameters returns the ordered parameter list.
func (p *Predicate) Parameters() []*Variable {
	return p.parameters.Iter()
}

// Arity returns the number of parameters.
func (p *Predicate) Arity() int {
	return p.parameters.Len()
}

func (p *Predicate) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(p.Name())
	for _, v := range p.parameters.Iter() {
		b.WriteByte(' ')
		b.WriteString(v.String())
	}
	b.WriteByte(')')
	return b.String()
}

// PrintTyped renders the predicate's declaration form, grouping
// consecutively-typed parameters the way "typed list of X" syntax does:
// (name ?x ?y - t1 ?z - t2).
func (p *Predicate) PrintTyped() string {
	return printTypedParamList(p.Name(), p.parameters.Iter())
}

func printTypedParamList(head string, params []*Variable) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(head)
	i := 0
	for i < len(params) {
		types := params[i].Types()
		j := i
		for j < len(params) && sameTypes(params[j].Types(), types) {
			b.WriteByte(' ')
			b.WriteString(params[j].String())
			j++
		}
		if len(types) > 0 {
			b.WriteString(" - ")
			if len(types) == 1 {
				b.WriteString(types[0].Name())
			} else {
				b.WriteString(typeUnionString(types))
			}
		}
		i = j
	}
	b.WriteByte(')')
	return b.String()
}

func sameTypes(a, b []*Type) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, t := range a {
		seen[t.Name()] = true
	}
	for _, t := range b {
		if !seen[t.Name()] {
			return false
		}
	}
	return true
}

func typeUnionString(types []*Type) string {
	var b strings.Builder
	b.WriteString("(either")
	for _, t := range types {
		b.WriteByte(' ')
		b.WriteString(t.Name())
	}
	b.WriteByte(')')
	return b.String()
}
