package pddl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainEnableRequirementInsertsReservedFunctions(t *testing.T) {
	d := NewDomain("rockets")
	require.NoError(t, d.EnableRequirement(":action-costs"))
	_, err := d.Functions().Get("total-cost")
	require.NoError(t, err)

	require.NoError(t, d.EnableRequirement(":time"))
	_, err = d.Functions().Get("total-time")
	require.NoError(t, err)
}

func TestDomainEnableRequirementReservedInsertIdempotent(t *testing.T) {
	d := NewDomain("rockets")
	require.NoError(t, d.EnableRequirement(":action-costs"))
	require.NoError(t, d.EnableRequirement(":action-costs"))
	require.Equal(t, 1, countNamed(d.Functions().Iter(), "total-cost"))
}

func countNamed[T Named](items []T, name string) int {
	n := 0
	for _, it := range items {
		if it.Name() == name {
			n++
		}
	}
	return n
}

// TestDomainPrintActionBodyOnce resolves the domain-printer Open
// Question for actions: a domain with one action prints that action
// exactly once, unlike the original C++ printer which double-emits the
// action list. It matches the action's full body, not just its name:
// parameters, precondition and effect must all appear.
func TestDomainPrintActionBodyOnce(t *testing.T) {
	d := NewDomain("depot")
	require.NoError(t, d.EnableRequirement(":strips"))

	move := NewAction("move")
	move.AddParameter(NewVariable("?x"))
	move.SetPrecondition(conjunctionStub{})
	move.SetEffect(effectStub{})
	d.AddAction(move)

	out := d.Print()
	want := "(:action move\n :parameters ( ?x )\n :precondition (and)\n :effect (and)\n)"
	if n := strings.Count(out, want); n != 1 {
		t.Fatalf("expected action move's full body to print exactly once, got %d in:\n%s", n, out)
	}
}

// TestDomainPrintOperatorWithoutPreconditionOrEffectDefaultsToEmptyAnd
// checks that an operator with no precondition/effect set (nil) prints
// the canonical empty conjunction rather than an empty string or "nil".
func TestDomainPrintOperatorWithoutPreconditionOrEffectDefaultsToEmptyAnd(t *testing.T) {
	d := NewDomain("depot")
	d.AddAction(NewAction("wait"))

	out := d.Print()
	require.Contains(t, out, "(:action wait\n :parameters ( )\n :precondition (and)\n :effect (and)\n)")
}

// TestDomainPrintDurativeActionIncludesDurationAndConditionKeyword
// checks the durative-action-specific layout: a :duration line and
// :condition in place of :precondition.
func TestDomainPrintDurativeActionIncludesDurationAndConditionKeyword(t *testing.T) {
	d := NewDomain("depot")
	fly := NewDurativeAction("fly")
	fly.AddParameter(NewVariable("?p"))
	fly.SetDuration(conjunctionStub{})
	fly.SetPrecondition(conjunctionStub{})
	fly.SetEffect(effectStub{})
	d.AddDurativeAction(fly)

	out := d.Print()
	want := "(:durative-action fly\n :parameters ( ?p )\n :duration (and)\n :condition (and)\n :effect (and)\n)"
	require.Contains(t, out, want)
}

// TestDomainPrintClassIncludesMembers checks that class printing
// includes member functions rather than just the class name, matching
// the original C++ Class::print layout (no space between :class and
// the name).
func TestDomainPrintClassIncludesMembers(t *testing.T) {
	d := NewDomain("depot")
	c := NewClass("vehicle")
	require.NoError(t, c.AddMember(NewFunction("fuel")))
	d.Classes().Put(c)

	out := d.Print()
	require.Contains(t, out, "(:classvehicle (fuel))")
}

func TestDomainPrintIncludesRequirementsLine(t *testing.T) {
	d := NewDomain("depot")
	require.NoError(t, d.EnableRequirement(":typing"))
	require.NoError(t, d.EnableRequirement(":equality"))

	out := d.Print()
	require.Contains(t, out, ":typing")
	require.Contains(t, out, ":equality")
}

func TestDomainPrintOmitsEmptyRequirementsLine(t *testing.T) {
	d := NewDomain("bare")
	out := d.Print()
	require.NotContains(t, out, ":requirements")
}

// conjunctionStub/effectStub are minimal Formula/Effect stand-ins so
// this package's tests don't need to import pddl/ast (which itself
// imports pddl, so ast cannot be imported from pddl's own test binary
// without a cycle).
type conjunctionStub struct{}

func (conjunctionStub) formulaNode() {}
func (conjunctionStub) String() string { return "(and)" }

type effectStub struct{}

func (effectStub) effectNode() {}
func (effectStub) String() string { return "(and)" }
