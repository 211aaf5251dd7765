package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnableRequirementStripsColonAndLowercases(t *testing.T) {
	var r Requirements
	require.NoError(t, r.EnableRequirement(":Typing"))
	require.True(t, r.Typing)
}

func TestEnableRequirementUnknownFlag(t *testing.T) {
	var r Requirements
	err := r.EnableRequirement(":made-up")
	require.Error(t, err)
	require.Equal(t, SyntaxError, err.(*ParseError).Kind)
}

func TestQuantifiedPreconditionsImplication(t *testing.T) {
	var r Requirements
	require.NoError(t, r.EnableRequirement("quantified-preconditions"))
	require.True(t, r.ExistentialPreconditions)
	require.True(t, r.UniversalPreconditions)
}

func TestFluentsImplication(t *testing.T) {
	var r Requirements
	require.NoError(t, r.EnableRequirement("fluents"))
	require.True(t, r.NumericFluents)
	require.True(t, r.ObjectFluents)
}

func TestADLImplicationClosure(t *testing.T) {
	var r Requirements
	require.NoError(t, r.EnableRequirement("adl"))
	require.True(t, r.Strips)
	require.True(t, r.Typing)
	require.True(t, r.DisjunctivePreconditions)
	require.True(t, r.Equality)
	require.True(t, r.QuantifiedPreconditions)
	require.True(t, r.ExistentialPreconditions)
	require.True(t, r.UniversalPreconditions)
	require.True(t, r.ConditionalEffects)
}

func TestReservedFunctionsFor(t *testing.T) {
	require.ElementsMatch(t, []string{"total-time"}, reservedFunctionsFor("time"))
	require.ElementsMatch(t, []string{"total-time"}, reservedFunctionsFor("durative-actions"))
	require.ElementsMatch(t, []string{"total-cost"}, reservedFunctionsFor("action-costs"))
	require.Nil(t, reservedFunctionsFor("typing"))
}

func TestRequirementsMergeIsUnionOfFlags(t *testing.T) {
	domain := Requirements{Typing: true}
	problem := Requirements{NumericFluents: true}
	problem.Merge(&domain)
	require.True(t, problem.Typing)
	require.True(t, problem.NumericFluents)
}
