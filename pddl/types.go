package pddl

import "fmt"

// Type is a named node in a domain's typing graph. A type may list zero
// or more direct supertypes; the graph they form is a DAG, never a cycle.
type Type struct {
	Identifier
	supertypes *NameSet[*Type]
}

// NewType creates a type with no supertypes.
func NewType(name string) *Type {
	return &Type{
		Identifier: NewIdentifier(name),
		supertypes: NewNameSet[*Type](),
	}
}

// Supertypes returns the direct supertypes, in unspecified order.
func (t *Type) Supertypes() []*Type {
	return t.supertypes.Iter()
}

func (t *Type) hasDirectSupertype(other *Type) bool {
	return t.supertypes.Has(other.Name())
}

func (t *Type) addSupertypeUnchecked(parent *Type) {
	t.supertypes.Put(parent)
}

// String renders the bare type name (used inside typed-list printing).
func (t *Type) String() string {
	return t.Name()
}

// TypeGraph is the per-domain typing graph. It always contains the two
// built-in roots "object" and "number" (spec.md section 3: "Two built-in
// roots object and number always exist in every domain").
type TypeGraph struct {
	*NameSet[*Type]
}

// NewTypeGraph constructs a typing graph seeded with object and number.
func NewTypeGraph() *TypeGraph {
	g := &TypeGraph{NameSet: NewNameSet[*Type]()}
	g.Put(NewType("object"))
	g.Put(NewType("number"))
	return g
}

// Object returns the built-in "object" root.
func (g *TypeGraph) Object() *Type {
	t, _ := g.Get("object")
	return t
}

// Number returns the built-in "number" root.
func (g *TypeGraph) Number() *Type {
	t, _ := g.Get("number")
	return t
}

// AddType inserts a freshly declared type with no supertypes, idempotent
// if the name already exists (declaring the same type name twice with no
// annotation is harmless — the supertype edges are what accumulate).
func (g *TypeGraph) AddType(name string) *Type {
	if t, err := g.Get(name); err == nil {
		return t
	}
	t := NewType(name)
	g.Put(t)
	return t
}

// AddSupertypeEdge makes parent a direct supertype of child. Adding an
// edge that already exists is a no-op. Making "object" a subtype of
// anything, or introducing a cycle, fails with InvalidSubtype.
func (g *TypeGraph) AddSupertypeEdge(child, parent *Type) error {
	if child.Name() == "object" {
		return NewError(InvalidSubtype, "cannot make built-in type \"object\" a subtype of %q", parent.Name())
	}
	if child.hasDirectSupertype(parent) {
		return nil
	}
	if ancestorIncludes(parent, child) {
		return NewError(InvalidSubtype, "declaring %q a supertype of %q would introduce a cycle", parent.Name(), child.Name())
	}
	child.addSupertypeUnchecked(parent)
	return nil
}

// ancestorIncludes reports whether target is start or one of start's
// transitive supertypes.
func ancestorIncludes(start, target *Type) bool {
	if start == target {
		return true
	}
	for _, p := range start.Supertypes() {
		if ancestorIncludes(p, target) {
			return true
		}
	}
	return false
}

// PrintOrder returns user-declared types (excluding the built-in object
// and number roots) ordered so that every supertype is emitted before its
// subtypes. Grounded bit-for-bit on the original C++ printer's iterated
// frontier-peeling algorithm (impl/domain.cc's operator<<): repeatedly
// peel off the types in the current frontier that are not themselves a
// supertype of another frontier member, push that peel as a level, and
// continue with the frontier of referenced supertypes. Popping the level
// stack then yields supertypes-first order.
func (g *TypeGraph) PrintOrder() []*Type {
	frontier := make(map[*Type]bool)
	for _, t := range g.Iter() {
		frontier[t] = true
	}

	var levels [][]*Type
	for len(frontier) > 0 {
		newFrontier := make(map[*Type]bool)
		for t := range frontier {
			for _, p := range t.Supertypes() {
				newFrontier[p] = true
			}
		}
		var level []*Type
		for t := range frontier {
			if !newFrontier[t] {
				level = append(level, t)
			}
		}
		levels = append(levels, level)
		frontier = newFrontier
	}

	object, number := g.Object(), g.Number()
	var order []*Type
	for i := len(levels) - 1; i >= 0; i-- {
		for _, t := range levels[i] {
			if t == object || t == number {
				continue
			}
			order = append(order, t)
		}
	}
	return order
}

func (g *TypeGraph) String() string {
	return fmt.Sprintf("TypeGraph(%d types)", g.Len())
}
