package ast

import (
	"fmt"
	"strings"

	"github.com/wbrown/go-pddl/pddl"
)

// PredicateAdd is a positive effect literal: (name t1 ... tn).
type PredicateAdd struct {
	Predicate *pddl.Predicate
	Args      []pddl.Term
}

func (*PredicateAdd) effectNode() {}

func (p *PredicateAdd) String() string {
	return printAtom(p.Predicate.Name(), p.Args)
}

// PredicateDelete is a negative effect literal: (not (name t1 ... tn)).
type PredicateDelete struct {
	Predicate *pddl.Predicate
	Args      []pddl.Term
}

func (*PredicateDelete) effectNode() {}

func (p *PredicateDelete) String() string {
	return fmt.Sprintf("(not %s)", printAtom(p.Predicate.Name(), p.Args))
}

func printAtom(name string, args []pddl.Term) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	return b.String()
}

// EffectConjunction is (and e1 e2 ... en).
type EffectConjunction struct {
	children []pddl.Effect
}

func (*EffectConjunction) effectNode() {}

// NewEffectConjunction creates a conjunction over the given children.
func NewEffectConjunction(children ...pddl.Effect) *EffectConjunction {
	return &EffectConjunction{children: append([]pddl.Effect(nil), children...)}
}

func (c *EffectConjunction) Append(e pddl.Effect) {
	c.children = append(c.children, e)
}

func (c *EffectConjunction) Remove(index int) error {
	if index < 0 || index >= len(c.children) {
		return pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(c.children))
	}
	c.children = append(c.children[:index], c.children[index+1:]...)
	return nil
}

func (c *EffectConjunction) ChildAt(index int) (pddl.Effect, error) {
	if index < 0 || index >= len(c.children) {
		return nil, pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(c.children))
	}
	return c.children[index], nil
}

func (c *EffectConjunction) Children() []pddl.Effect {
	out := make([]pddl.Effect, len(c.children))
	copy(out, c.children)
	return out
}

func (c *EffectConjunction) String() string {
	return printEffectGroup("and", c.children)
}

// EffectDisjunction is (oneof e1 e2 ... en): exactly one branch occurs,
// nondeterministically.
type EffectDisjunction struct {
	children []pddl.Effect
}

func (*EffectDisjunction) effectNode() {}

// NewEffectDisjunction creates a oneof effect over the given children.
func NewEffectDisjunction(children ...pddl.Effect) *EffectDisjunction {
	return &EffectDisjunction{children: append([]pddl.Effect(nil), children...)}
}

func (d *EffectDisjunction) Append(e pddl.Effect) {
	d.children = append(d.children, e)
}

func (d *EffectDisjunction) Remove(index int) error {
	if index < 0 || index >= len(d.children) {
		return pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(d.children))
	}
	d.children = append(d.children[:index], d.children[index+1:]...)
	return nil
}

func (d *EffectDisjunction) ChildAt(index int) (pddl.Effect, error) {
	if index < 0 || index >= len(d.children) {
		return nil, pddl.NewError(pddl.IndexOutOfRange, "index %d out of range [0,%d)", index, len(d.children))
	}
	return d.children[index], nil
}

func (d *EffectDisjunction) Children() []pddl.Effect {
	out := make([]pddl.Effect, len(d.children))
	copy(out, d.children)
	return out
}

func (d *EffectDisjunction) String() string {
	return printEffectGroup("oneof", d.children)
}

func printEffectGroup(keyword string, children []pddl.Effect) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(keyword)
	for _, e := range children {
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Conditional is (when formula effect).
type Conditional struct {
	Condition pddl.Formula
	Effect    pddl.Effect
}

func (*Conditional) effectNode() {}

func (c *Conditional) String() string {
	return fmt.Sprintf("(when %s %s)", c.Condition.String(), c.Effect.String())
}

// ForAllEffect is (forall (vars...) effect).
type ForAllEffect struct {
	Variables []*pddl.Variable
	Effect    pddl.Effect
}

func (*ForAllEffect) effectNode() {}

func (f *ForAllEffect) String() string {
	return fmt.Sprintf("(forall (%s) %s)", joinVariables(f.Variables), f.Effect.String())
}

// ExistsEffect is (exists (vars...) effect).
type ExistsEffect struct {
	Variables []*pddl.Variable
	Effect    pddl.Effect
}

func (*ExistsEffect) effectNode() {}

func (e *ExistsEffect) String() string {
	return fmt.Sprintf("(exists (%s) %s)", joinVariables(e.Variables), e.Effect.String())
}

// Assign is (assign fluent-expr value-expr).
type Assign struct {
	Target pddl.Expression
	Value  pddl.Expression
}

func (*Assign) effectNode() {}

// String renders the generic assign-effect form. Problem.Print writes
// the initial state through its String form as well, so an init
// assignment prints as "(assign fhead value)", not as "(= fhead value)".
func (a *Assign) String() string {
	return fmt.Sprintf("(assign %s %s)", a.Target.String(), a.Value.String())
}

// numericUpdate is the shared shape of increase/decrease/scale-up/
// scale-down, which all apply an operator between a fluent and a value
// expression.
type numericUpdate struct {
	Keyword string
	Target  pddl.Expression
	Value   pddl.Expression
}

func (u *numericUpdate) String() string {
	return fmt.Sprintf("(%s %s %s)", u.Keyword, u.Target.String(), u.Value.String())
}

// Increase is (increase fluent-expr value-expr).
type Increase struct{ numericUpdate }

func (*Increase) effectNode() {}

// NewIncrease creates an increase effect.
func NewIncrease(target, value pddl.Expression) *Increase {
	return &Increase{numericUpdate{Keyword: "increase", Target: target, Value: value}}
}

// Decrease is (decrease fluent-expr value-expr).
type Decrease struct{ numericUpdate }

func (*Decrease) effectNode() {}

// NewDecrease creates a decrease effect.
func NewDecrease(target, value pddl.Expression) *Decrease {
	return &Decrease{numericUpdate{Keyword: "decrease", Target: target, Value: value}}
}

// ScaleUp is (scale-up fluent-expr value-expr).
type ScaleUp struct{ numericUpdate }

func (*ScaleUp) effectNode() {}

// NewScaleUp creates a scale-up effect.
func NewScaleUp(target, value pddl.Expression) *ScaleUp {
	return &ScaleUp{numericUpdate{Keyword: "scale-up", Target: target, Value: value}}
}

// ScaleDown is (scale-down fluent-expr value-expr).
type ScaleDown struct{ numericUpdate }

func (*ScaleDown) effectNode() {}

// NewScaleDown creates a scale-down effect.
func NewScaleDown(target, value pddl.Expression) *ScaleDown {
	return &ScaleDown{numericUpdate{Keyword: "scale-down", Target: target, Value: value}}
}

// TimedEffect wraps a durative action's effect with an "at start" /
// "at end" prefix.
type TimedEffect struct {
	Point  TimedFormulaPoint // reuses AtStartPoint / AtEndPoint
	Effect pddl.Effect
}

func (*TimedEffect) effectNode() {}

func (t *TimedEffect) String() string {
	return fmt.Sprintf("(%s %s)", string(t.Point), t.Effect.String())
}

// TimedInitialLiteral is (at number effect), an initial fact that
// becomes true at a specified time rather than time zero.
type TimedInitialLiteral struct {
	Time   pddl.Number
	Effect pddl.Effect
}

func (*TimedInitialLiteral) effectNode() {}

func (t *TimedInitialLiteral) String() string {
	return fmt.Sprintf("(at %s %s)", t.Time.String(), t.Effect.String())
}
