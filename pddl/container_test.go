package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameSetAddAndGet(t *testing.T) {
	s := NewNameSet[*Object]()
	require.NoError(t, s.Add(NewObject("Block1")))

	got, err := s.Get("block1")
	require.NoError(t, err)
	require.Equal(t, "block1", got.Name())
}

func TestNameSetDuplicateRejected(t *testing.T) {
	s := NewNameSet[*Object]()
	require.NoError(t, s.Add(NewObject("a")))

	err := s.Add(NewObject("A"))
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	require.Equal(t, DuplicateSymbol, pe.Kind)
}

func TestNameSetPutOverwrites(t *testing.T) {
	s := NewNameSet[*Object]()
	s.Put(NewObject("peg"))
	s.Put(NewObject("peg"))
	if s.Len() != 1 {
		t.Fatalf("expected 1 entry after overwriting Put, got %d", s.Len())
	}
}

func TestNameSetUnknownSymbol(t *testing.T) {
	s := NewNameSet[*Object]()
	_, err := s.Get("missing")
	require.Error(t, err)
	require.Equal(t, UnknownSymbol, err.(*ParseError).Kind)
}

func TestSequenceOrderPreserved(t *testing.T) {
	seq := NewSequence[*Action]()
	seq.Append(NewAction("move"))
	seq.Append(NewAction("pick"))
	seq.Append(NewAction("drop"))

	names := []string{}
	for _, a := range seq.Iter() {
		names = append(names, a.Name())
	}
	require.Equal(t, []string{"move", "pick", "drop"}, names)
}

func TestSequenceAtOutOfRange(t *testing.T) {
	seq := NewSequence[*Action]()
	seq.Append(NewAction("move"))
	_, err := seq.At(5)
	require.Error(t, err)
	require.Equal(t, IndexOutOfRange, err.(*ParseError).Kind)
}

func TestSequenceRemoveByName(t *testing.T) {
	seq := NewSequence[*Action]()
	seq.Append(NewAction("move"))
	seq.Append(NewAction("pick"))
	seq.Remove("move")
	if seq.Len() != 1 {
		t.Fatalf("expected 1 remaining, got %d", seq.Len())
	}
	if seq.Iter()[0].Name() != "pick" {
		t.Fatalf("expected pick to remain, got %s", seq.Iter()[0].Name())
	}
}
