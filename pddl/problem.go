package pddl

import (
	"fmt"
	"strings"
)

// Problem is the root AST node for a (define (problem ...) ...) form.
type Problem struct {
	Identifier
	domain       *Domain
	Requirements Requirements

	objects *NameSet[*Object]

	init        Effect // always a Conjunction of primitive effects
	goal        Formula
	constraints Formula
	metric      Expression // wrapped in Minimize/Maximize by the caller
}

// NewProblem creates a problem bound to domain. Requirements are seeded
// from the domain's own, since a problem's requirements augment rather
// than replace them (spec.md's Problem data model).
func NewProblem(name string, domain *Domain) *Problem {
	p := &Problem{
		Identifier: NewIdentifier(name),
		domain:     domain,
		objects:    NewNameSet[*Object](),
	}
	p.Requirements.Merge(&domain.Requirements)
	return p
}

// Domain returns the problem's parent domain.
func (p *Problem) Domain() *Domain {
	return p.domain
}

// Objects returns the problem's declared objects.
func (p *Problem) Objects() *NameSet[*Object] {
	return p.objects
}

// EnableRequirement applies a requirement flag's closure to the
// problem's own requirement set (the domain's is unaffected).
func (p *Problem) EnableRequirement(name string) error {
	return p.Requirements.EnableRequirement(name)
}

// SetInit records the initial-state effect, which must be a Conjunction
// of primitive effects (predicate add, numeric assignment, timed
// literal); validated by the parser, not here.
func (p *Problem) SetInit(e Effect) {
	p.init = e
}

// Init returns the initial-state effect.
func (p *Problem) Init() Effect {
	return p.init
}

// SetGoal records the goal formula.
func (p *Problem) SetGoal(f Formula) {
	p.goal = f
}

// Goal returns the goal formula.
func (p *Problem) Goal() Formula {
	return p.goal
}

// SetConstraints records the problem's optional constraints formula.
func (p *Problem) SetConstraints(f Formula) {
	p.constraints = f
}

// Constraints returns the problem's constraints formula, or nil if
// unset.
func (p *Problem) Constraints() Formula {
	return p.constraints
}

// SetMetric records the optional metric expression (already wrapped in
// Minimize/Maximize by the caller).
func (p *Problem) SetMetric(e Expression) {
	p.metric = e
}

// Metric returns the metric expression, or nil if unset.
func (p *Problem) Metric() Expression {
	return p.metric
}

// Print renders the problem in canonical PDDL form. Panics if domain,
// init or goal were never set — mirroring the original's throw-on-print
// for an incompletely built problem (impl/problem.cc). The initial state
// is written through its String form: wrapped in "(and ...)", with
// numeric assignments as "(assign fhead value)".
func (p *Problem) Print() string {
	if p.domain == nil {
		panic("pddl: problem has no domain")
	}
	if p.init == nil {
		panic("pddl: problem has no initial state")
	}
	if p.goal == nil {
		panic("pddl: problem has no goal")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "(define (problem %s) (:domain %s)\n", p.Name(), p.domain.Name())

	if p.objects.Len() > 0 {
		b.WriteString("  (:objects")
		for _, o := range p.objects.Iter() {
			b.WriteByte(' ')
			b.WriteString(o.Name())
		}
		b.WriteString(")\n")
	}

	fmt.Fprintf(&b, "  (:init %s)\n", p.init.String())
	fmt.Fprintf(&b, "  (:goal %s)\n", p.goal.String())

	if p.constraints != nil {
		fmt.Fprintf(&b, "  (:constraints %s)\n", p.constraints.String())
	}
	if p.metric != nil {
		fmt.Fprintf(&b, "  (:metric %s)\n", p.metric.String())
	}

	b.WriteString(")")
	return b.String()
}
