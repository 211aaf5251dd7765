package pddl

import "strings"

// Operator is the common shape shared by actions, durative actions,
// events and processes: an identifier, an ordered variable parameter
// list, a precondition formula and an effect. Kept in the root package
// (rather than pddl/ast, where the Formula/Expression/Effect node
// implementations live) because Domain holds sequences of operators and
// must not import pddl/ast to avoid a cycle — operators only reference
// the Formula/Effect interfaces already declared here.
type Operator struct {
	Identifier
	parameters    *Sequence[*Variable]
	precondition  Formula
	effect        Effect
}

func newOperator(name string) Operator {
	return Operator{Identifier: NewIdentifier(name), parameters: NewSequence[*Variable]()}
}

// AddParameter appends a parameter to the operator's ordered list.
func (o *Operator) AddParameter(v *Variable) {
	o.parameters.Append(v)
}

// Parameters returns the ordered parameter list.
func (o *Operator) Parameters() []*Variable {
	return o.parameters.Iter()
}

// SetPrecondition records the operator's precondition. A nil precondition
// defaults to an empty conjunction when left unset by the source text,
// per spec.md's documented default for an omitted :precondition.
func (o *Operator) SetPrecondition(f Formula) {
	o.precondition = f
}

// Precondition returns the operator's precondition, or nil if never set
// (callers should treat nil as "always true").
func (o *Operator) Precondition() Formula {
	return o.precondition
}

// SetEffect records the operator's effect.
func (o *Operator) SetEffect(e Effect) {
	o.effect = e
}

// Effect returns the operator's effect, or nil if never set (callers
// should treat nil as "no change").
func (o *Operator) Effect() Effect {
	return o.effect
}

// emptyConjunction is the canonical printed form of an omitted
// precondition or effect. pddl cannot construct a real ast.Conjunction{}
// here without importing pddl/ast, which would cycle back to this
// package, so the default is this hardcoded literal instead.
const emptyConjunction = "(and)"

// print renders the operator body shared by every kind: name, bare
// parameter list, an optional duration line, the precondition under
// preconditionKeyword ("precondition" for action/event/process,
// "condition" for durative-action), and the effect. Layout per
// spec.md's operator printer contract, grounded on the original C++
// Operator<Derived>::print template.
func (o *Operator) print(kind, preconditionKeyword string, duration Formula) string {
	var b strings.Builder
	b.WriteString("(:")
	b.WriteString(kind)
	b.WriteByte(' ')
	b.WriteString(o.Name())
	b.WriteString("\n :parameters (")
	for _, v := range o.parameters.Iter() {
		b.WriteByte(' ')
		b.WriteString(v.String())
	}
	b.WriteString(" )\n")
	if duration != nil {
		b.WriteString(" :duration ")
		b.WriteString(duration.String())
		b.WriteByte('\n')
	}
	b.WriteByte(' ')
	b.WriteByte(':')
	b.WriteString(preconditionKeyword)
	b.WriteByte(' ')
	if o.precondition != nil {
		b.WriteString(o.precondition.String())
	} else {
		b.WriteString(emptyConjunction)
	}
	b.WriteString("\n :effect ")
	if o.effect != nil {
		b.WriteString(o.effect.String())
	} else {
		b.WriteString(emptyConjunction)
	}
	b.WriteString("\n)")
	return b.String()
}

// Action is an instantaneous operator: parameters, precondition, effect.
type Action struct {
	Operator
}

// NewAction creates an action with no parameters, precondition or effect.
func NewAction(name string) *Action {
	return &Action{Operator: newOperator(name)}
}

// String renders the action in canonical form: spec.md 4.3.
func (a *Action) String() string {
	return a.Operator.print("action", "precondition", nil)
}

// DurativeAction additionally carries a duration constraint formula
// (typically a Comparison against a DurationPlaceholder).
type DurativeAction struct {
	Operator
	duration Formula
}

// NewDurativeAction creates a durative action with no duration set.
func NewDurativeAction(name string) *DurativeAction {
	return &DurativeAction{Operator: newOperator(name)}
}

// SetDuration records the duration constraint.
func (d *DurativeAction) SetDuration(f Formula) {
	d.duration = f
}

// Duration returns the duration constraint, or nil if unset.
func (d *DurativeAction) Duration() Formula {
	return d.duration
}

// String renders the durative action in canonical form: spec.md 4.3.
// Durative actions use the :condition keyword rather than
// :precondition and carry a :duration line, per the original C++'s
// DurativeAction-specific print override.
func (d *DurativeAction) String() string {
	return d.Operator.print("durative-action", "condition", d.duration)
}

// Event is a process-modeling operator that fires instantaneously when
// its precondition becomes true (PDDL+).
type Event struct {
	Operator
}

// NewEvent creates an event with no parameters, precondition or effect.
func NewEvent(name string) *Event {
	return &Event{Operator: newOperator(name)}
}

// String renders the event in canonical form: spec.md 4.3.
func (e *Event) String() string {
	return e.Operator.print("event", "precondition", nil)
}

// Process is a process-modeling operator that applies its (continuous)
// effect for as long as its precondition holds (PDDL+).
type Process struct {
	Operator
}

// NewProcess creates a process with no parameters, precondition or
// effect.
func NewProcess(name string) *Process {
	return &Process{Operator: newOperator(name)}
}

// String renders the process in canonical form: spec.md 4.3.
func (p *Process) String() string {
	return p.Operator.print("process", "precondition", nil)
}
