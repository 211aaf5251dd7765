package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseTerm parses a single term reference: a ?-prefixed variable
// (resolved against the current scope stack) or a bare identifier
// (resolved as an object).
func (p *Parser) parseTerm() (pddl.Term, error) {
	t := p.peek()
	switch t.Type {
	case lexer.TokenVariable:
		p.next()
		v, err := p.state.resolveVariable(t.Value)
		if err != nil {
			return nil, p.errAt(t, pddl.UnknownSymbol, "%s", err.Error())
		}
		return v, nil
	case lexer.TokenIdent:
		p.next()
		o, err := p.state.resolveObject(t.Value)
		if err != nil {
			return nil, p.errAt(t, pddl.UnknownSymbol, "%s", err.Error())
		}
		return o, nil
	default:
		return nil, p.errAt(t, pddl.SyntaxError, "expected a term, got %s", t.String())
	}
}

// parseTermList parses terms until the closing ')' of the enclosing
// group.
func (p *Parser) parseTermList() ([]pddl.Term, error) {
	var terms []pddl.Term
	for !p.atRParen() {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}
