package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
)

func TestNumberLiteralString(t *testing.T) {
	lit := &ast.NumberLiteral{Value: pddl.NewIntNumber(7)}
	require.Equal(t, "7", lit.String())

	flit := &ast.NumberLiteral{Value: pddl.NewFloatNumber(1.5)}
	require.Equal(t, "1.5", flit.String())
}

func TestFunctionApplicationZeroArgAndArgs(t *testing.T) {
	fn := pddl.NewFunction("total-fuel")
	zero := &ast.FunctionApplication{Function: fn}
	require.Equal(t, "(total-fuel)", zero.String())

	fn2 := pddl.NewFunction("fuel-level")
	v := pddl.NewVariable("r")
	app := &ast.FunctionApplication{Function: fn2, Args: []pddl.Term{v}}
	require.Equal(t, "(fuel-level ?r)", app.String())
}

func TestUnaryMinusDistinctFromBinaryExpression(t *testing.T) {
	// Resolves the Open Question: a lone operand inside "(- e)" must
	// never be read as a BinaryExpression missing its second argument.
	operand := &ast.NumberLiteral{Value: pddl.NewIntNumber(3)}
	unary := &ast.UnaryMinus{Operand: operand}
	require.Equal(t, "(- 3)", unary.String())

	binary := &ast.BinaryExpression{Op: "-", Left: operand, Right: &ast.NumberLiteral{Value: pddl.NewIntNumber(1)}}
	require.Equal(t, "(- 3 1)", binary.String())

	var _ pddl.Expression = unary
	var _ pddl.Expression = binary
	require.NotEqual(t, unary.String(), binary.String())
}

func TestBinaryExpressionOperators(t *testing.T) {
	left := &ast.NumberLiteral{Value: pddl.NewIntNumber(2)}
	right := &ast.NumberLiteral{Value: pddl.NewIntNumber(3)}
	for _, op := range []string{"+", "*", "/"} {
		expr := &ast.BinaryExpression{Op: op, Left: left, Right: right}
		require.Equal(t, "("+op+" 2 3)", expr.String())
	}
}

func TestPlaceholdersAndReservedAtoms(t *testing.T) {
	require.Equal(t, "#t", (&ast.TimePlaceholder{}).String())
	require.Equal(t, "?duration", (&ast.DurationPlaceholder{}).String())
	require.Equal(t, "(total-time)", (&ast.TotalTime{}).String())
	require.Equal(t, "(total-cost)", (&ast.TotalCost{}).String())
}

func TestViolationExpressionString(t *testing.T) {
	pred := &ast.PredicateApplication{Predicate: pddl.NewPredicate("p")}
	pref := pddl.NewPreference("avoid-p", pred)
	v := &ast.ViolationExpression{Preference: pref}
	require.Equal(t, "(is-violated avoid-p)", v.String())
}

func TestMinimizeAndMaximizeStrings(t *testing.T) {
	expr := &ast.TotalCost{}
	require.Equal(t, "minimize (total-cost)", (&ast.Minimize{Expression: expr}).String())
	require.Equal(t, "maximize (total-cost)", (&ast.Maximize{Expression: expr}).String())
}
