package pddl

import "strings"

// Domain is the root AST node for a (define (domain ...) ...) form: an
// identifier, its requirement flags, the typed containers for every
// declarable symbol kind, and the operator sequences that act on them.
type Domain struct {
	Identifier
	Requirements Requirements

	types      *TypeGraph
	constants  *NameSet[*Object]
	predicates *NameSet[*Predicate]
	functions  *NameSet[*Function]
	classes    *NameSet[*Class]
	derived    *NameSet[*DerivedPredicate]
	preferences *NameSet[*Preference]

	actions         *Sequence[*Action]
	durativeActions *Sequence[*DurativeAction]
	events          *Sequence[*Event]
	processes       *Sequence[*Process]

	constraints Formula
}

// NewDomain creates an empty domain, seeded with the built-in object and
// number types.
func NewDomain(name string) *Domain {
	return &Domain{
		Identifier:      NewIdentifier(name),
		types:           NewTypeGraph(),
		constants:       NewNameSet[*Object](),
		predicates:      NewNameSet[*Predicate](),
		functions:       NewNameSet[*Function](),
		classes:         NewNameSet[*Class](),
		derived:         NewNameSet[*DerivedPredicate](),
		preferences:     NewNameSet[*Preference](),
		actions:         NewSequence[*Action](),
		durativeActions: NewSequence[*DurativeAction](),
		events:          NewSequence[*Event](),
		processes:       NewSequence[*Process](),
	}
}

func (d *Domain) Types() *TypeGraph                      { return d.types }
func (d *Domain) Constants() *NameSet[*Object]            { return d.constants }
func (d *Domain) Predicates() *NameSet[*Predicate]        { return d.predicates }
func (d *Domain) Functions() *NameSet[*Function]          { return d.functions }
func (d *Domain) Classes() *NameSet[*Class]               { return d.classes }
func (d *Domain) DerivedPredicates() *NameSet[*DerivedPredicate] { return d.derived }
func (d *Domain) Preferences() *NameSet[*Preference]      { return d.preferences }
func (d *Domain) Actions() []*Action                      { return d.actions.Iter() }
func (d *Domain) DurativeActionList() []*DurativeAction   { return d.durativeActions.Iter() }
func (d *Domain) Events() []*Event                        { return d.events.Iter() }
func (d *Domain) Processes() []*Process                   { return d.processes.Iter() }

func (d *Domain) AddAction(a *Action)                   { d.actions.Append(a) }
func (d *Domain) AddDurativeAction(a *DurativeAction)   { d.durativeActions.Append(a) }
func (d *Domain) AddEvent(e *Event)                     { d.events.Append(e) }
func (d *Domain) AddProcess(p *Process)                 { d.processes.Append(p) }

// SetConstraints records the domain's optional global constraints
// formula.
func (d *Domain) SetConstraints(f Formula) {
	d.constraints = f
}

// Constraints returns the domain's constraints formula, or nil if unset.
func (d *Domain) Constraints() Formula {
	return d.constraints
}

// EnableRequirement applies a requirement flag's closure to the domain
// and, when that closure brings a reserved function into existence
// (total-time / total-cost), inserts it into the function table
// idempotently — mirroring the original parser's try/catch-around-insert
// pattern (parse_requirements.hh) without needing exceptions: Put is
// itself idempotent.
func (d *Domain) EnableRequirement(name string) error {
	if err := d.Requirements.EnableRequirement(name); err != nil {
		return err
	}
	for _, fn := range reservedFunctionsFor(strings.TrimPrefix(strings.ToLower(name), ":")) {
		d.functions.Put(NewFunction(fn))
	}
	return nil
}

// Print renders the domain in canonical PDDL form. Each operator kind is
// emitted exactly once — the original C++ printer this is grounded on
// (impl/domain.cc) emits the action list a second time where a
// durative-actions loop belongs; that bug is not reproduced here.
func (d *Domain) Print() string {
	var b strings.Builder
	b.WriteString("(define (domain ")
	b.WriteString(d.Name())
	b.WriteString(")\n")

	if req := d.printRequirements(); req != "" {
		b.WriteString("  ")
		b.WriteString(req)
		b.WriteByte('\n')
	}

	if order := d.types.PrintOrder(); len(order) > 0 {
		b.WriteString("  (:types")
		for _, t := range order {
			b.WriteByte(' ')
			b.WriteString(t.Name())
			if sups := t.Supertypes(); len(sups) > 0 {
				b.WriteString(" - ")
				b.WriteString(sups[0].Name())
			}
		}
		b.WriteString(")\n")
	}

	if d.constants.Len() > 0 {
		b.WriteString("  (:constants")
		for _, o := range d.constants.Iter() {
			b.WriteByte(' ')
			b.WriteString(o.Name())
		}
		b.WriteString(")\n")
	}

	if d.predicates.Len() > 0 {
		b.WriteString("  (:predicates")
		for _, p := range d.predicates.Iter() {
			b.WriteByte(' ')
			b.WriteString(p.PrintTyped())
		}
		b.WriteString(")\n")
	}

	if d.functions.Len() > 0 {
		b.WriteString("  (:functions")
		for _, f := range d.functions.Iter() {
			b.WriteByte(' ')
			b.WriteString(f.String())
		}
		b.WriteString(")\n")
	}

	if d.classes.Len() > 0 {
		for _, c := range d.classes.Iter() {
			b.WriteString("  (:class")
			b.WriteString(c.Name())
			for _, m := range c.Members() {
				b.WriteByte(' ')
				b.WriteString(m.String())
			}
			b.WriteString(")\n")
		}
	}

	if d.constraints != nil {
		b.WriteString("  (:constraints ")
		b.WriteString(d.constraints.String())
		b.WriteString(")\n")
	}

	for _, dp := range d.derived.Iter() {
		b.WriteString("  (:derived ")
		b.WriteString(dp.Predicate().String())
		b.WriteByte(' ')
		b.WriteString(dp.Formula().String())
		b.WriteString(")\n")
	}

	for _, a := range d.actions.Iter() {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	for _, a := range d.durativeActions.Iter() {
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	for _, e := range d.events.Iter() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	for _, p := range d.processes.Iter() {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}

	b.WriteString(")")
	return b.String()
}

func (d *Domain) printRequirements() string {
	var names []string
	r := d.Requirements
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(r.Equality, ":equality")
	add(r.Strips, ":strips")
	add(r.Typing, ":typing")
	add(r.NegativePreconditions, ":negative-preconditions")
	add(r.DisjunctivePreconditions, ":disjunctive-preconditions")
	add(r.ExistentialPreconditions, ":existential-preconditions")
	add(r.UniversalPreconditions, ":universal-preconditions")
	add(r.QuantifiedPreconditions, ":quantified-preconditions")
	add(r.ConditionalEffects, ":conditional-effects")
	add(r.Fluents, ":fluents")
	add(r.NumericFluents, ":numeric-fluents")
	add(r.ObjectFluents, ":object-fluents")
	add(r.DurativeActions, ":durative-actions")
	add(r.Time, ":time")
	add(r.ActionCosts, ":action-costs")
	add(r.Modules, ":modules")
	add(r.ADL, ":adl")
	add(r.DurationInequalities, ":duration-inequalities")
	add(r.ContinuousEffects, ":continuous-effects")
	add(r.DerivedPredicates, ":derived-predicates")
	add(r.TimedInitialLiterals, ":timed-initial-literals")
	add(r.Preferences, ":preferences")
	add(r.Constraints, ":constraints")
	if len(names) == 0 {
		return ""
	}
	return "(:requirements " + strings.Join(names, " ") + ")"
}
