package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionDefaultsHaveNoPreconditionOrEffect(t *testing.T) {
	a := NewAction("move")
	require.Nil(t, a.Precondition())
	require.Nil(t, a.Effect())
}

func TestActionParametersPreserveOrder(t *testing.T) {
	a := NewAction("move")
	a.AddParameter(NewVariable("from"))
	a.AddParameter(NewVariable("to"))

	params := a.Parameters()
	require.Len(t, params, 2)
	require.Equal(t, "from", params[0].Name())
	require.Equal(t, "to", params[1].Name())
}

func TestDurativeActionDurationDefaultsNil(t *testing.T) {
	da := NewDurativeAction("charge")
	require.Nil(t, da.Duration())

	da.SetDuration(conjunctionStub{})
	require.NotNil(t, da.Duration())
}

func TestDerivedPredicateSatisfiesNamed(t *testing.T) {
	pred := NewPredicate("clear-path")
	dp := NewDerivedPredicate(pred, conjunctionStub{})
	require.Equal(t, "clear-path", dp.Name())

	set := NewNameSet[*DerivedPredicate]()
	set.Put(dp)
	got, err := set.Get("clear-path")
	require.NoError(t, err)
	require.Same(t, dp, got)
}

func TestClassMembersAndDuplicateRejection(t *testing.T) {
	cls := NewClass("robot")
	require.NoError(t, cls.AddMember(NewFunction("battery")))
	err := cls.AddMember(NewFunction("battery"))
	require.Error(t, err)
	require.Equal(t, DuplicateSymbol, err.(*ParseError).Kind)
}

func TestPreferenceWrapsFormula(t *testing.T) {
	pref := NewPreference("avoid-collision", conjunctionStub{})
	require.Equal(t, "avoid-collision", pref.Name())
	require.NotNil(t, pref.Formula())
}
