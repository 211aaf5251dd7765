package ast

import (
	"fmt"
	"strings"

	"github.com/wbrown/go-pddl/pddl"
)

// NumberLiteral is a bare numeric constant.
type NumberLiteral struct {
	Value pddl.Number
}

func (*NumberLiteral) expressionNode() {}
func (n *NumberLiteral) String() string { return n.Value.String() }

// FunctionApplication is (name t1 t2 ... tn), a numeric (or object-fluent)
// function invocation.
type FunctionApplication struct {
	Function *pddl.Function
	Args     []pddl.Term
}

func (*FunctionApplication) expressionNode() {}

func (f *FunctionApplication) String() string {
	if len(f.Args) == 0 {
		return fmt.Sprintf("(%s)", f.Function.Name())
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(f.Function.Name())
	for _, a := range f.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// BinaryExpression is arithmetic +, -, *, / over two expressions.
type BinaryExpression struct {
	Op          string
	Left, Right pddl.Expression
}

func (*BinaryExpression) expressionNode() {}

func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.Left.String(), b.Right.String())
}

// UnaryMinus is the single-operand arithmetic negation (- e), kept
// distinct from BinaryExpression because "-" is ambiguous between unary
// and binary arity in the grammar (spec.md's resolved Open Question:
// unary minus requires exactly one operand, never falls back to treating
// a lone operand as a binary expression missing its second argument).
type UnaryMinus struct {
	Operand pddl.Expression
}

func (*UnaryMinus) expressionNode() {}
func (u *UnaryMinus) String() string { return fmt.Sprintf("(- %s)", u.Operand.String()) }

// TimePlaceholder is "#t", the current-time value used in continuous
// effects (PDDL+).
type TimePlaceholder struct{}

func (*TimePlaceholder) expressionNode() {}
func (*TimePlaceholder) String() string  { return "#t" }

// DurationPlaceholder is "?duration", standing for a durative action's
// own duration inside its duration constraint.
type DurationPlaceholder struct{}

func (*DurationPlaceholder) expressionNode() {}
func (*DurationPlaceholder) String() string  { return "?duration" }

// TotalTime is the reserved (total-time) metric atom.
type TotalTime struct{}

func (*TotalTime) expressionNode() {}
func (*TotalTime) String() string  { return "(total-time)" }

// TotalCost is the reserved (total-cost) metric atom.
type TotalCost struct{}

func (*TotalCost) expressionNode() {}
func (*TotalCost) String() string  { return "(total-cost)" }

// ViolationExpression is (is-violated pref-name), counting violations of
// a named preference for use in a metric expression.
type ViolationExpression struct {
	Preference *pddl.Preference
}

func (*ViolationExpression) expressionNode() {}
func (v *ViolationExpression) String() string {
	return fmt.Sprintf("(is-violated %s)", v.Preference.Name())
}

// Minimize wraps a metric expression. String renders "minimize expr"
// without parentheses; Problem.Print adds them inside "(:metric ...)".
type Minimize struct {
	Expression pddl.Expression
}

func (*Minimize) expressionNode() {}
func (m *Minimize) String() string { return fmt.Sprintf("minimize %s", m.Expression.String()) }

// Maximize wraps a metric expression. String renders "maximize expr"
// without parentheses; Problem.Print adds them inside "(:metric ...)".
type Maximize struct {
	Expression pddl.Expression
}

func (*Maximize) expressionNode() {}
func (m *Maximize) String() string { return fmt.Sprintf("maximize %s", m.Expression.String()) }
