package pddl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredicateStringRendersBareArgs(t *testing.T) {
	pred := NewPredicate("at")
	pred.AddParameter(NewVariable("x"))
	pred.AddParameter(NewVariable("y"))
	require.Equal(t, "(at ?x ?y)", pred.String())
}

func TestPredicatePrintTypedGroupsConsecutiveSameTypes(t *testing.T) {
	loc := NewType("location")
	obj := NewType("object")

	pred := NewPredicate("at")
	x := NewVariable("x")
	x.AddType(obj)
	y := NewVariable("y")
	y.AddType(loc)
	z := NewVariable("z")
	z.AddType(loc)
	pred.AddParameter(x)
	pred.AddParameter(y)
	pred.AddParameter(z)

	require.Equal(t, "(at ?x - object ?y ?z - location)", pred.PrintTyped())
}

func TestPredicatePrintTypedEitherUnion(t *testing.T) {
	a := NewType("a")
	b := NewType("b")
	pred := NewPredicate("holds")
	v := NewVariable("x")
	v.AddType(a)
	v.AddType(b)
	pred.AddParameter(v)

	out := pred.PrintTyped()
	require.Contains(t, out, "(either")
	require.Contains(t, out, "a")
	require.Contains(t, out, "b")
}

func TestFunctionIsNumericByDefault(t *testing.T) {
	fn := NewFunction("fuel-level")
	require.True(t, fn.IsNumeric())

	fn.SetReturnType(NewType("container"))
	require.False(t, fn.IsNumeric())
	require.Equal(t, "container", fn.ReturnType().Name())
}

func TestNumberFloatAndIntRoundTrip(t *testing.T) {
	i := NewIntNumber(5)
	require.True(t, i.IsInt())
	require.Equal(t, int64(5), i.Int())
	require.Equal(t, "5", i.String())
	require.Equal(t, float64(5), i.Float())

	f := NewFloatNumber(2.5)
	require.False(t, f.IsInt())
	require.Equal(t, "2.5", f.String())
}

func TestVariableStripsLeadingQuestionMark(t *testing.T) {
	v := NewVariable("?x")
	require.Equal(t, "x", v.Name())
	require.Equal(t, "?x", v.String())

	v2 := NewVariable("y")
	require.Equal(t, "y", v2.Name())
}
