package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
)

func TestPredicateAddAndDeleteStrings(t *testing.T) {
	pred := pddl.NewPredicate("holding")
	v := pddl.NewVariable("b")
	add := &ast.PredicateAdd{Predicate: pred, Args: []pddl.Term{v}}
	require.Equal(t, "(holding ?b)", add.String())

	del := &ast.PredicateDelete{Predicate: pred, Args: []pddl.Term{v}}
	require.Equal(t, "(not (holding ?b))", del.String())
}

func TestEffectConjunctionAndDisjunctionChildManagement(t *testing.T) {
	conj := ast.NewEffectConjunction()
	conj.Append(&ast.PredicateAdd{Predicate: pddl.NewPredicate("a")})
	conj.Append(&ast.PredicateAdd{Predicate: pddl.NewPredicate("b")})
	require.Equal(t, "(and (a) (b))", conj.String())

	require.NoError(t, conj.Remove(1))
	require.Equal(t, "(and (a))", conj.String())

	_, err := conj.ChildAt(3)
	require.Error(t, err)
	require.Equal(t, pddl.IndexOutOfRange, err.(*pddl.ParseError).Kind)

	disj := ast.NewEffectDisjunction(
		&ast.PredicateAdd{Predicate: pddl.NewPredicate("a")},
		&ast.PredicateAdd{Predicate: pddl.NewPredicate("b")},
	)
	require.Equal(t, "(oneof (a) (b))", disj.String())
}

func TestConditionalEffectString(t *testing.T) {
	cond := &ast.PredicateApplication{Predicate: pddl.NewPredicate("clear")}
	eff := &ast.PredicateAdd{Predicate: pddl.NewPredicate("open")}
	c := &ast.Conditional{Condition: cond, Effect: eff}
	require.Equal(t, "(when (clear) (open))", c.String())
}

func TestForAllAndExistsEffectStrings(t *testing.T) {
	v := pddl.NewVariable("x")
	eff := &ast.PredicateAdd{Predicate: pddl.NewPredicate("done")}

	forall := &ast.ForAllEffect{Variables: []*pddl.Variable{v}, Effect: eff}
	require.Equal(t, "(forall (?x) (done))", forall.String())

	exists := &ast.ExistsEffect{Variables: []*pddl.Variable{v}, Effect: eff}
	require.Equal(t, "(exists (?x) (done))", exists.String())
}

func TestAssignString(t *testing.T) {
	target := &ast.FunctionApplication{Function: pddl.NewFunction("fuel")}
	value := &ast.NumberLiteral{Value: pddl.NewIntNumber(10)}
	a := &ast.Assign{Target: target, Value: value}
	require.Equal(t, "(assign (fuel) 10)", a.String())
}

func TestNumericUpdateConstructors(t *testing.T) {
	target := &ast.FunctionApplication{Function: pddl.NewFunction("fuel")}
	value := &ast.NumberLiteral{Value: pddl.NewIntNumber(5)}

	require.Equal(t, "(increase (fuel) 5)", ast.NewIncrease(target, value).String())
	require.Equal(t, "(decrease (fuel) 5)", ast.NewDecrease(target, value).String())
	require.Equal(t, "(scale-up (fuel) 5)", ast.NewScaleUp(target, value).String())
	require.Equal(t, "(scale-down (fuel) 5)", ast.NewScaleDown(target, value).String())
}

func TestTimedEffectAndTimedInitialLiteralStrings(t *testing.T) {
	eff := &ast.PredicateAdd{Predicate: pddl.NewPredicate("lit")}

	timed := &ast.TimedEffect{Point: ast.AtStartPoint, Effect: eff}
	require.Equal(t, "(at start (lit))", timed.String())

	til := &ast.TimedInitialLiteral{Time: pddl.NewIntNumber(5), Effect: eff}
	require.Equal(t, "(at 5 (lit))", til.String())
}
