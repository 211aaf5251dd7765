// Package parser implements the hand-written recursive-descent PDDL
// parser: one method per grammar rule, a scoped variable-binding table,
// and requirement-gated acceptance of syntactic constructs. Grounded on
// the teacher's datalog/parser/parser.go (switch-dispatched rule
// functions returning (value, error), fmt.Errorf wrapping) adapted to
// PDDL's grammar and to this package's structured *pddl.ParseError.
package parser

import (
	"strings"

	"github.com/wbrown/go-pddl/pddl"
)

// ParserState is the parser's mutable working memory, shared by every
// file of one Parse call: the roots under construction and the currently visible
// variable scopes. Unlike the original C++ parser_state, there is no
// explicit formulas/effects/expressions/numbers stack — Go's call stack
// plays that role directly, since every grammar rule here is an
// ordinary recursive function returning its completed node.
type ParserState struct {
	Domains  *pddl.NameSet[*pddl.Domain]
	Problems *pddl.NameSet[*pddl.Problem]

	domain  *pddl.Domain
	problem *pddl.Problem

	// variables is a stack of scopes, innermost last. Pushed on entering
	// an operator's parameter list or a quantifier/forall/exists body,
	// popped on leaving it.
	variables []map[string]*pddl.Variable
}

func newParserState() *ParserState {
	return &ParserState{
		Domains:  pddl.NewNameSet[*pddl.Domain](),
		Problems: pddl.NewNameSet[*pddl.Problem](),
	}
}

func (s *ParserState) pushScope() {
	s.variables = append(s.variables, make(map[string]*pddl.Variable))
}

func (s *ParserState) popScope() {
	s.variables = s.variables[:len(s.variables)-1]
}

// bindVariable registers v in the innermost scope, failing with
// DuplicateSymbol if that scope already binds the name.
func (s *ParserState) bindVariable(v *pddl.Variable) error {
	top := s.variables[len(s.variables)-1]
	key := strings.ToLower(v.Name())
	if _, ok := top[key]; ok {
		return pddl.NewError(pddl.DuplicateSymbol, "variable ?%s already bound in this scope", v.Name())
	}
	top[key] = v
	return nil
}

// resolveVariable looks a ?-prefixed name up from the innermost scope
// outward.
func (s *ParserState) resolveVariable(name string) (*pddl.Variable, error) {
	key := strings.ToLower(strings.TrimPrefix(name, "?"))
	for i := len(s.variables) - 1; i >= 0; i-- {
		if v, ok := s.variables[i][key]; ok {
			return v, nil
		}
	}
	return nil, pddl.NewError(pddl.UnknownSymbol, "undeclared variable ?%s", strings.TrimPrefix(name, "?"))
}

// resolveObject looks a constant up in the problem's objects first (if a
// problem is being parsed), then the domain's constants.
func (s *ParserState) resolveObject(name string) (*pddl.Object, error) {
	if s.problem != nil {
		if o, err := s.problem.Objects().Get(name); err == nil {
			return o, nil
		}
	}
	if s.domain != nil {
		if o, err := s.domain.Constants().Get(name); err == nil {
			return o, nil
		}
	}
	return nil, pddl.NewError(pddl.UnknownSymbol, "undeclared object %q", name)
}

// requirements returns the effective requirement set for whichever root
// is currently being parsed — the problem's own (already merged with its
// domain's at construction) if a problem is active, else the domain's.
func (s *ParserState) requirements() *pddl.Requirements {
	if s.problem != nil {
		return &s.problem.Requirements
	}
	return &s.domain.Requirements
}

func (s *ParserState) lookupType(name string) (*pddl.Type, error) {
	if s.domain == nil {
		return nil, pddl.NewError(pddl.UnknownSymbol, "no active domain")
	}
	return s.domain.Types().Get(name)
}
