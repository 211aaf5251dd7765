package pddl

// DerivedPredicate is a predicate whose truth value is computed from a
// defining formula rather than asserted directly by effects.
type DerivedPredicate struct {
	predicate *Predicate
	formula   Formula
}

// NewDerivedPredicate pairs a predicate head with its defining formula.
func NewDerivedPredicate(predicate *Predicate, formula Formula) *DerivedPredicate {
	return &DerivedPredicate{predicate: predicate, formula: formula}
}

// Name returns the underlying predicate's name, so DerivedPredicate
// satisfies Named and can live in a NameSet.
func (d *DerivedPredicate) Name() string {
	return d.predicate.Name()
}

// Predicate returns the predicate head being defined.
func (d *DerivedPredicate) Predicate() *Predicate {
	return d.predicate
}

// Formula returns the defining condition.
func (d *DerivedPredicate) Formula() Formula {
	return d.formula
}
