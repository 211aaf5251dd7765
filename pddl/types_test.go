package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeGraphSeededWithObjectAndNumber(t *testing.T) {
	g := NewTypeGraph()
	require.NotNil(t, g.Object())
	require.NotNil(t, g.Number())
	require.Equal(t, 2, g.Len())
}

func TestTypeGraphAddTypeIdempotent(t *testing.T) {
	g := NewTypeGraph()
	a1 := g.AddType("peg")
	a2 := g.AddType("peg")
	if a1 != a2 {
		t.Fatalf("AddType should return the same *Type for repeated declarations")
	}
}

func TestTypeGraphRejectsObjectAsSubtype(t *testing.T) {
	g := NewTypeGraph()
	peg := g.AddType("peg")
	err := g.AddSupertypeEdge(g.Object(), peg)
	require.Error(t, err)
	require.Equal(t, InvalidSubtype, err.(*ParseError).Kind)
}

func TestTypeGraphRejectsCycle(t *testing.T) {
	g := NewTypeGraph()
	a := g.AddType("a")
	b := g.AddType("b")
	require.NoError(t, g.AddSupertypeEdge(b, a))

	err := g.AddSupertypeEdge(a, b)
	require.Error(t, err)
	require.Equal(t, InvalidSubtype, err.(*ParseError).Kind)
}

// TestTypeGraphPrintOrder mirrors scenario S6: a type graph where "disk"
// is declared a subtype of both "small" and "movable", and PrintOrder
// must emit every supertype before any of its subtypes.
func TestTypeGraphPrintOrder(t *testing.T) {
	g := NewTypeGraph()
	small := g.AddType("small")
	movable := g.AddType("movable")
	disk := g.AddType("disk")
	require.NoError(t, g.AddSupertypeEdge(disk, small))
	require.NoError(t, g.AddSupertypeEdge(disk, movable))

	order := g.PrintOrder()
	index := make(map[string]int, len(order))
	for i, t := range order {
		index[t.Name()] = i
	}

	if index["disk"] <= index["small"] {
		t.Errorf("expected small before disk, got order %v", namesOf(order))
	}
	if index["disk"] <= index["movable"] {
		t.Errorf("expected movable before disk, got order %v", namesOf(order))
	}
	for _, ty := range order {
		if ty.Name() == "object" || ty.Name() == "number" {
			t.Errorf("PrintOrder must exclude the built-in roots, found %q", ty.Name())
		}
	}
}

func namesOf(types []*Type) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name()
	}
	return out
}
