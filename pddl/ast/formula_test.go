package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
)

func atPredicate() *pddl.Predicate {
	pred := pddl.NewPredicate("at")
	pred.AddParameter(pddl.NewVariable("x"))
	return pred
}

func TestPredicateApplicationString(t *testing.T) {
	pred := atPredicate()
	v := pred.Parameters()[0]
	app := &ast.PredicateApplication{Predicate: pred, Args: []pddl.Term{v}}
	require.Equal(t, "(at ?x)", app.String())
}

func TestEqualityDistinctFromComparison(t *testing.T) {
	x := pddl.NewVariable("x")
	y := pddl.NewVariable("y")
	eq := &ast.Equality{Terms: []pddl.Term{x, y}}
	require.Equal(t, "(= ?x ?y)", eq.String())

	cmp := &ast.Comparison{Op: "=", Left: &ast.NumberLiteral{Value: pddl.NewIntNumber(1)}, Right: &ast.NumberLiteral{Value: pddl.NewIntNumber(1)}}
	require.Equal(t, "(= 1 1)", cmp.String())
}

func TestNegationString(t *testing.T) {
	pred := atPredicate()
	app := &ast.PredicateApplication{Predicate: pred}
	neg := &ast.Negation{Formula: app}
	require.Equal(t, "(not (at))", neg.String())
}

func TestConjunctionChildManagement(t *testing.T) {
	conj := ast.NewConjunction()
	conj.Append(&ast.PredicateApplication{Predicate: pddl.NewPredicate("a")})
	conj.Append(&ast.PredicateApplication{Predicate: pddl.NewPredicate("b")})
	require.Equal(t, "(and (a) (b))", conj.String())

	child, err := conj.ChildAt(1)
	require.NoError(t, err)
	require.Equal(t, "(b)", child.String())

	require.NoError(t, conj.Remove(0))
	require.Equal(t, "(and (b))", conj.String())

	_, err = conj.ChildAt(5)
	require.Error(t, err)
	require.Equal(t, pddl.IndexOutOfRange, err.(*pddl.ParseError).Kind)
}

func TestDisjunctionString(t *testing.T) {
	disj := ast.NewDisjunction(
		&ast.PredicateApplication{Predicate: pddl.NewPredicate("a")},
		&ast.PredicateApplication{Predicate: pddl.NewPredicate("b")},
	)
	require.Equal(t, "(or (a) (b))", disj.String())
}

func TestImplicationString(t *testing.T) {
	imp := &ast.Implication{
		Antecedent: &ast.PredicateApplication{Predicate: pddl.NewPredicate("a")},
		Consequent: &ast.PredicateApplication{Predicate: pddl.NewPredicate("b")},
	}
	require.Equal(t, "(imply (a) (b))", imp.String())
}

func TestUniversalAndExistentialString(t *testing.T) {
	v := pddl.NewVariable("x")
	body := &ast.PredicateApplication{Predicate: pddl.NewPredicate("p")}

	forall := &ast.Universal{Variables: []*pddl.Variable{v}, Formula: body}
	require.Equal(t, "(forall (?x) (p))", forall.String())

	exists := &ast.Existential{Variables: []*pddl.Variable{v}, Formula: body}
	require.Equal(t, "(exists (?x) (p))", exists.String())
}

func TestTimedFormulaPoints(t *testing.T) {
	body := &ast.PredicateApplication{Predicate: pddl.NewPredicate("p")}
	atStart := &ast.TimedFormula{Point: ast.AtStartPoint, Formula: body}
	require.Equal(t, "(at start (p))", atStart.String())

	overAll := &ast.TimedFormula{Point: ast.OverAllPoint, Formula: body}
	require.Equal(t, "(over all (p))", overAll.String())
}

func TestConstraintFormulaStrings(t *testing.T) {
	p := &ast.PredicateApplication{Predicate: pddl.NewPredicate("p")}
	q := &ast.PredicateApplication{Predicate: pddl.NewPredicate("q")}
	n := pddl.NewIntNumber(5)

	require.Equal(t, "(always (p))", (&ast.Always{Formula: p}).String())
	require.Equal(t, "(sometime (p))", (&ast.Sometime{Formula: p}).String())
	require.Equal(t, "(at-most-once (p))", (&ast.AtMostOnce{Formula: p}).String())
	require.Equal(t, "(within 5 (p))", (&ast.Within{Number: n, Formula: p}).String())
	require.Equal(t, "(hold-after 5 (p))", (&ast.HoldAfter{Number: n, Formula: p}).String())
	require.Equal(t, "(hold-during 0 5 (p))", (&ast.HoldDuring{From: pddl.NewIntNumber(0), To: n, Formula: p}).String())
	require.Equal(t, "(sometime-after (p) (q))", (&ast.SometimeAfter{First: p, Second: q}).String())
	require.Equal(t, "(sometime-before (p) (q))", (&ast.SometimeBefore{First: p, Second: q}).String())
	require.Equal(t, "(always-within 5 (p) (q))", (&ast.AlwaysWithin{Number: n, First: p, Second: q}).String())
}

func TestPreferenceFormulaString(t *testing.T) {
	pred := &ast.PredicateApplication{Predicate: pddl.NewPredicate("p")}
	pref := pddl.NewPreference("avoid-p", pred)
	pf := &ast.PreferenceFormula{Preference: pref}
	require.Equal(t, "(preference avoid-p (p))", pf.String())
}
