package parser

import "github.com/wbrown/go-pddl/pddl"

// parseDerivedBlock parses "(:derived (name ?v1 - t ...) formula)".
func (p *Parser) parseDerivedBlock() error {
	if !p.state.requirements().DerivedPredicates {
		t := p.peek()
		return p.errAt(t, pddl.MissingRequirement, ":derived requires requirement :derived-predicates")
	}
	if err := p.expectLParen(); err != nil {
		return err
	}
	name, nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	pred := pddl.NewPredicate(name)

	p.state.pushScope()
	defer p.state.popScope()

	groups, err := p.parseTypedList(true)
	if err != nil {
		return err
	}
	for _, g := range groups {
		types := p.resolveTypes(g.TypeNames)
		for i, n := range g.Names {
			v := pddl.NewVariable(n)
			for _, t := range types {
				v.AddType(t)
			}
			if err := p.state.bindVariable(v); err != nil {
				return p.errAt(g.Tokens[i], pddl.DuplicateSymbol, "%s", err.Error())
			}
			pred.AddParameter(v)
		}
	}
	if err := p.expectRParen(); err != nil {
		return err
	}

	formula, err := p.parseFormula()
	if err != nil {
		return err
	}
	if err := p.expectRParen(); err != nil {
		return err
	}

	if err := p.state.domain.Predicates().Add(pred); err != nil {
		return p.errAt(nameTok, pddl.DuplicateSymbol, "%s", err.Error())
	}
	dp := pddl.NewDerivedPredicate(pred, formula)
	p.state.domain.DerivedPredicates().Put(dp)
	return nil
}
