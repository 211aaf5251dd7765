package pddl

import "strings"

// Requirements is the flat set of boolean flags declared in a domain's
// or problem's (:requirements ...) block. Flags imply other flags per
// the PDDL spec's closure rules; EnableRequirement applies those
// closures so that every implied flag reads as set even if never
// written literally.
type Requirements struct {
	Equality                  bool
	Strips                    bool
	Typing                    bool
	NegativePreconditions     bool
	DisjunctivePreconditions  bool
	ExistentialPreconditions  bool
	UniversalPreconditions    bool
	QuantifiedPreconditions   bool
	ConditionalEffects        bool
	Fluents                   bool
	NumericFluents            bool
	ObjectFluents             bool
	DurativeActions           bool
	Time                      bool
	ActionCosts               bool
	Modules                   bool
	ADL                       bool
	DurationInequalities      bool
	ContinuousEffects         bool
	DerivedPredicates         bool
	TimedInitialLiterals      bool
	Preferences               bool
	Constraints               bool
}

// reservedFunctionsFor returns the names of reserved functions a flag's
// closure brings into existence (spec.md 4.5: time and durative-actions
// each imply total-time; action-costs implies total-cost).
func reservedFunctionsFor(name string) []string {
	switch name {
	case "time", "durative-actions":
		return []string{"total-time"}
	case "action-costs":
		return []string{"total-cost"}
	}
	return nil
}

// EnableRequirement sets the named flag (PDDL keyword spelling, with or
// without a leading colon) and every flag it implies. Unknown names fail
// with SyntaxError, since the grammar itself should never offer one.
func (r *Requirements) EnableRequirement(name string) error {
	name = strings.TrimPrefix(strings.ToLower(name), ":")
	switch name {
	case "equality":
		r.Equality = true
	case "strips":
		r.Strips = true
	case "typing":
		r.Typing = true
	case "negative-preconditions":
		r.NegativePreconditions = true
	case "disjunctive-preconditions":
		r.DisjunctivePreconditions = true
	case "existential-preconditions":
		r.ExistentialPreconditions = true
	case "universal-preconditions":
		r.UniversalPreconditions = true
	case "quantified-preconditions":
		r.QuantifiedPreconditions = true
		r.ExistentialPreconditions = true
		r.UniversalPreconditions = true
	case "conditional-effects":
		r.ConditionalEffects = true
	case "fluents":
		r.Fluents = true
		r.NumericFluents = true
		r.ObjectFluents = true
	case "numeric-fluents":
		r.NumericFluents = true
	case "object-fluents":
		r.ObjectFluents = true
	case "durative-actions":
		r.DurativeActions = true
	case "time":
		r.Time = true
	case "action-costs":
		r.ActionCosts = true
	case "modules":
		r.Modules = true
	case "adl":
		r.ADL = true
		r.Strips = true
		r.Typing = true
		r.DisjunctivePreconditions = true
		r.Equality = true
		r.QuantifiedPreconditions = true
		r.ExistentialPreconditions = true
		r.UniversalPreconditions = true
		r.ConditionalEffects = true
	case "duration-inequalities":
		r.DurationInequalities = true
	case "continuous-effects":
		r.ContinuousEffects = true
	case "derived-predicates":
		r.DerivedPredicates = true
	case "timed-initial-literals":
		r.TimedInitialLiterals = true
	case "preferences":
		r.Preferences = true
	case "constraints":
		r.Constraints = true
	default:
		return NewError(SyntaxError, "unknown requirement %q", name)
	}
	return nil
}

// Merge folds another requirement set into this one (a problem's
// requirements augment its domain's, per spec.md's Problem data model).
func (r *Requirements) Merge(other *Requirements) {
	*r = Requirements{
		Equality:                 r.Equality || other.Equality,
		Strips:                   r.Strips || other.Strips,
		Typing:                   r.Typing || other.Typing,
		NegativePreconditions:    r.NegativePreconditions || other.NegativePreconditions,
		DisjunctivePreconditions: r.DisjunctivePreconditions || other.DisjunctivePreconditions,
		ExistentialPreconditions: r.ExistentialPreconditions || other.ExistentialPreconditions,
		UniversalPreconditions:   r.UniversalPreconditions || other.UniversalPreconditions,
		QuantifiedPreconditions:  r.QuantifiedPreconditions || other.QuantifiedPreconditions,
		ConditionalEffects:       r.ConditionalEffects || other.ConditionalEffects,
		Fluents:                  r.Fluents || other.Fluents,
		NumericFluents:           r.NumericFluents || other.NumericFluents,
		ObjectFluents:            r.ObjectFluents || other.ObjectFluents,
		DurativeActions:          r.DurativeActions || other.DurativeActions,
		Time:                     r.Time || other.Time,
		ActionCosts:              r.ActionCosts || other.ActionCosts,
		Modules:                  r.Modules || other.Modules,
		ADL:                      r.ADL || other.ADL,
		DurationInequalities:     r.DurationInequalities || other.DurationInequalities,
		ContinuousEffects:        r.ContinuousEffects || other.ContinuousEffects,
		DerivedPredicates:        r.DerivedPredicates || other.DerivedPredicates,
		TimedInitialLiterals:     r.TimedInitialLiterals || other.TimedInitialLiterals,
		Preferences:              r.Preferences || other.Preferences,
		Constraints:              r.Constraints || other.Constraints,
	}
}
