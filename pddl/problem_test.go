package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProblemMergesDomainRequirements(t *testing.T) {
	d := NewDomain("depot")
	require.NoError(t, d.EnableRequirement(":typing"))

	p := NewProblem("depot-1", d)
	require.True(t, p.Requirements.Typing)
}

func TestProblemEnableRequirementDoesNotTouchDomain(t *testing.T) {
	d := NewDomain("depot")
	p := NewProblem("depot-1", d)
	require.NoError(t, p.EnableRequirement(":numeric-fluents"))
	require.True(t, p.Requirements.NumericFluents)
	require.False(t, d.Requirements.NumericFluents)
}

func TestProblemPrintPanicsWhenIncomplete(t *testing.T) {
	d := NewDomain("depot")
	p := NewProblem("depot-1", d)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Print to panic on an incomplete problem")
		}
	}()
	p.Print()
}

func TestProblemPrintCompleteForm(t *testing.T) {
	d := NewDomain("depot")
	p := NewProblem("depot-1", d)
	p.Objects().Add(NewObject("crate1"))
	p.SetInit(effectStub{})
	p.SetGoal(conjunctionStub{})

	out := p.Print()
	require.Contains(t, out, "(define (problem depot-1) (:domain depot)")
	require.Contains(t, out, "(:objects crate1)")
	require.Contains(t, out, "(:init (and))")
	require.Contains(t, out, "(:goal (and))")
}
