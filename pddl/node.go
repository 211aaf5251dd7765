package pddl

// Formula, Expression and Effect are declared here in the root package,
// rather than in pddl/ast where their concrete node types live, so that
// Domain, Problem, Preference and DerivedPredicate can hold references to
// them without the root package importing pddl/ast (which itself imports
// pddl for Term, Predicate, Function and Type). pddl/ast's node types
// satisfy these interfaces by implementing the marker methods.

// Formula is any logical-condition AST node: predicate application,
// equality, negation, conjunction/disjunction, quantification,
// comparison, preference reference, or a timed-formula wrapper used in
// durative-action conditions and problem constraints.
type Formula interface {
	formulaNode()
	String() string
}

// Expression is any numeric/object-valued AST node used on the right
// side of an assignment effect, inside a comparison, or as a duration
// constraint: literals, function application, arithmetic, or one of the
// special total-time/total-cost/duration/violation placeholders.
type Expression interface {
	expressionNode()
	String() string
}

// Effect is any state-change AST node an operator's effect (or a
// problem's initial state) may contain: predicate add/delete, numeric
// fluent assignment, conjunction, conditional/universal wrapping, or a
// timed-effect wrapper used in durative-action effects.
type Effect interface {
	effectNode()
	String() string
}
