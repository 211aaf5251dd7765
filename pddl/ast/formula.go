// Package ast holds the concrete Formula, Expression and Effect node
// types. It imports pddl for Term, Predicate, Function, Variable,
// Number, Preference and the Formula/Expression/Effect interfaces
// themselves; pddl does not import ast, so Domain/Problem/Preference
// hold these nodes only through the interface types.
package ast

import (
	"fmt"
	"strings"

	"github.com/wbrown/go-pddl/pddl"
)

// PredicateApplication is a positive literal: (name t1 t2 ... tn).
type PredicateApplication struct {
	Predicate *pddl.Predicate
	Args      []pddl.Term
}

func (*PredicateApplication) formulaNode() {}

func (p *PredicateApplication) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(p.Predicate.Name())
	for _, a := range p.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Equality is the :equality formula (= t1 t2 ... tn) over terms,
// distinct from Comparison's numeric "=" (spec.md S3).
type Equality struct {
	Terms []pddl.Term
}

func (*Equality) formulaNode() {}

func (e *Equality) String() string {
	var b strings.Builder
	b.WriteString("(=")
	for _, t := range e.Terms {
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Negation is (not formula).
type Negation struct {
	Formula pddl.Formula
}

func (*Negation) formulaNode() {}

func (n *Negation) String() string {
	return fmt.Sprintf("(not %s)", n.Formula.String())
}

// Conjunction is (and f1 f2 ... fn).
type Conjunction struct {
	children []pddl.Formula
}

func (*Conjunction) formulaNode() {}

// NewConjunction creates a conjunction over the given children.
func NewConjunction(children ...pddl.Formula) *Conjunction {
	return &Conjunction{children: append([]pddl.Formula(nil), children...)}
}

// Append adds a child formula.
func (c *Conjunction) Append(f pddl.Formula) {
	c.children = append(c.children, f)
}

// Remove deletes the child at index, failing with IndexOutOfRange if out
// of bounds.
func (c *Conjunction) Remove(index int) error {
	if index < 0 || index >= len(c.children) {
		return pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(c.children))
	}
	c.children = append(c.children[:index], c.children[index+1:]...)
	return nil
}

// ChildAt returns the child at index, failing with IndexOutOfRange if
// out of bounds.
func (c *Conjunction) ChildAt(index int) (pddl.Formula, error) {
	if index < 0 || index >= len(c.children) {
		return nil, pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(c.children))
	}
	return c.children[index], nil
}

// Children returns every child, in order.
func (c *Conjunction) Children() []pddl.Formula {
	out := make([]pddl.Formula, len(c.children))
	copy(out, c.children)
	return out
}

func (c *Conjunction) String() string {
	return printFormulaGroup("and", c.children)
}

// Disjunction is (or f1 f2 ... fn).
type Disjunction struct {
	children []pddl.Formula
}

func (*Disjunction) formulaNode() {}

// NewDisjunction creates a disjunction over the given children.
func NewDisjunction(children ...pddl.Formula) *Disjunction {
	return &Disjunction{children: append([]pddl.Formula(nil), children...)}
}

func (d *Disjunction) Append(f pddl.Formula) {
	d.children = append(d.children, f)
}

func (d *Disjunction) Remove(index int) error {
	if index < 0 || index >= len(d.children) {
		return pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(d.children))
	}
	d.children = append(d.children[:index], d.children[index+1:]...)
	return nil
}

func (d *Disjunction) ChildAt(index int) (pddl.Formula, error) {
	if index < 0 || index >= len(d.children) {
		return nil, pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(d.children))
	}
	return d.children[index], nil
}

func (d *Disjunction) Children() []pddl.Formula {
	out := make([]pddl.Formula, len(d.children))
	copy(out, d.children)
	return out
}

func (d *Disjunction) String() string {
	return printFormulaGroup("or", d.children)
}

func printFormulaGroup(keyword string, children []pddl.Formula) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(keyword)
	for _, f := range children {
		b.WriteByte(' ')
		b.WriteString(f.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Implication is (imply antecedent consequent).
type Implication struct {
	Antecedent pddl.Formula
	Consequent pddl.Formula
}

func (*Implication) formulaNode() {}

func (i *Implication) String() string {
	return fmt.Sprintf("(imply %s %s)", i.Antecedent.String(), i.Consequent.String())
}

// Universal is (forall (vars...) formula).
type Universal struct {
	Variables []*pddl.Variable
	Formula   pddl.Formula
}

func (*Universal) formulaNode() {}

func (u *Universal) String() string {
	return fmt.Sprintf("(forall (%s) %s)", joinVariables(u.Variables), u.Formula.String())
}

// Existential is (exists (vars...) formula).
type Existential struct {
	Variables []*pddl.Variable
	Formula   pddl.Formula
}

func (*Existential) formulaNode() {}

func (e *Existential) String() string {
	return fmt.Sprintf("(exists (%s) %s)", joinVariables(e.Variables), e.Formula.String())
}

func joinVariables(vars []*pddl.Variable) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Comparison is a numeric comparison between expressions: <, <=, =, >=, >.
type Comparison struct {
	Op    string
	Left  pddl.Expression
	Right pddl.Expression
}

func (*Comparison) formulaNode() {}

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.Op, c.Left.String(), c.Right.String())
}

// PreferenceFormula references a named preference from within a goal or
// precondition formula: (preference name formula).
type PreferenceFormula struct {
	Preference *pddl.Preference
}

func (*PreferenceFormula) formulaNode() {}

func (p *PreferenceFormula) String() string {
	return fmt.Sprintf("(preference %s %s)", p.Preference.Name(), p.Preference.Formula().String())
}

// TimedFormulaPoint is one of the three multi-word temporal prefixes
// durative-action conditions use.
type TimedFormulaPoint string

const (
	AtStartPoint TimedFormulaPoint = "at start"
	AtEndPoint   TimedFormulaPoint = "at end"
	OverAllPoint TimedFormulaPoint = "over all"
)

// TimedFormula wraps a condition with an "at start" / "at end" /
// "over all" prefix.
type TimedFormula struct {
	Point   TimedFormulaPoint
	Formula pddl.Formula
}

func (*TimedFormula) formulaNode() {}

func (t *TimedFormula) String() string {
	return fmt.Sprintf("(%s %s)", string(t.Point), t.Formula.String())
}

// Always is the constraint formula (always formula).
type Always struct{ Formula pddl.Formula }

func (*Always) formulaNode() {}
func (a *Always) String() string { return fmt.Sprintf("(always %s)", a.Formula.String()) }

// Sometime is the constraint formula (sometime formula).
type Sometime struct{ Formula pddl.Formula }

func (*Sometime) formulaNode() {}
func (s *Sometime) String() string { return fmt.Sprintf("(sometime %s)", s.Formula.String()) }

// AtMostOnce is the constraint formula (at-most-once formula).
type AtMostOnce struct{ Formula pddl.Formula }

func (*AtMostOnce) formulaNode() {}
func (a *AtMostOnce) String() string { return fmt.Sprintf("(at-most-once %s)", a.Formula.String()) }

// Within is the constraint formula (within number formula).
type Within struct {
	Number  pddl.Number
	Formula pddl.Formula
}

func (*Within) formulaNode() {}
func (w *Within) String() string {
	return fmt.Sprintf("(within %s %s)", w.Number.String(), w.Formula.String())
}

// HoldAfter is the constraint formula (hold-after number formula).
type HoldAfter struct {
	Number  pddl.Number
	Formula pddl.Formula
}

func (*HoldAfter) formulaNode() {}
func (h *HoldAfter) String() string {
	return fmt.Sprintf("(hold-after %s %s)", h.Number.String(), h.Formula.String())
}

// HoldDuring is the constraint formula (hold-during n1 n2 formula).
type HoldDuring struct {
	From, To pddl.Number
	Formula  pddl.Formula
}

func (*HoldDuring) formulaNode() {}
func (h *HoldDuring) String() string {
	return fmt.Sprintf("(hold-during %s %s %s)", h.From.String(), h.To.String(), h.Formula.String())
}

// SometimeAfter is the constraint formula (sometime-after f1 f2).
type SometimeAfter struct{ First, Second pddl.Formula }

func (*SometimeAfter) formulaNode() {}
func (s *SometimeAfter) String() string {
	return fmt.Sprintf("(sometime-after %s %s)", s.First.String(), s.Second.String())
}

// SometimeBefore is the constraint formula (sometime-before f1 f2).
type SometimeBefore struct{ First, Second pddl.Formula }

func (*SometimeBefore) formulaNode() {}
func (s *SometimeBefore) String() string {
	return fmt.Sprintf("(sometime-before %s %s)", s.First.String(), s.Second.String())
}

// AlwaysWithin is the constraint formula (always-within number f1 f2).
type AlwaysWithin struct {
	Number        pddl.Number
	First, Second pddl.Formula
}

func (*AlwaysWithin) formulaNode() {}
func (a *AlwaysWithin) String() string {
	return fmt.Sprintf("(always-within %s %s %s)", a.Number.String(), a.First.String(), a.Second.String())
}
