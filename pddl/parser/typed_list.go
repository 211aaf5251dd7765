package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// typedGroup is one run of names sharing a trailing "- <type>" (or
// "- (either t1 t2 ...)") annotation, or no annotation at all.
type typedGroup struct {
	Names    []string
	Tokens   []lexer.Token
	TypeNames []string
}

// parseTypedList parses "x1 x2 ... xn [- <T>]" repeated until the
// closing ')' of the enclosing group (spec.md 4.6, "typed list parsing,
// shared sub-rule"). wantVariable selects whether names are read as
// ?-variables or bare identifiers (objects/types).
func (p *Parser) parseTypedList(wantVariable bool) ([]typedGroup, error) {
	var groups []typedGroup
	var names []string
	var toks []lexer.Token

	flush := func(typeNames []string) {
		if len(names) == 0 {
			return
		}
		groups = append(groups, typedGroup{Names: names, Tokens: toks, TypeNames: typeNames})
		names, toks = nil, nil
	}

	for {
		if p.atRParen() {
			flush(nil)
			return groups, nil
		}
		if p.peek().Type == lexer.TokenDash {
			dashTok := p.next()
			if !p.requirementsTyping() {
				return nil, p.errAt(dashTok, pddl.MissingRequirement, "typed parameters require requirement :typing")
			}
			typeNames, err := p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
			flush(typeNames)
			continue
		}
		want := lexer.TokenIdent
		if wantVariable {
			want = lexer.TokenVariable
		}
		t := p.peek()
		if t.Type != want {
			return nil, p.errAt(t, pddl.SyntaxError, "unexpected token %s in typed list", t.String())
		}
		p.next()
		names = append(names, t.Value)
		toks = append(toks, t)
	}
}

func (p *Parser) requirementsTyping() bool {
	return p.state.requirements().Typing
}

// parseTypeAnnotation parses either a bare type name or an
// "(either t1 t2 ...)" union, returning the type names involved.
func (p *Parser) parseTypeAnnotation() ([]string, error) {
	if p.atLParen() {
		p.next()
		if _, _, err := requireIdentValue(p, "either"); err != nil {
			return nil, err
		}
		var names []string
		for !p.atRParen() {
			name, _, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		return names, nil
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return []string{name}, nil
}

func requireIdentValue(p *Parser, value string) (string, lexer.Token, error) {
	name, tok, err := p.expectIdent()
	if err != nil {
		return name, tok, err
	}
	if name != value {
		return name, tok, p.errAt(tok, pddl.SyntaxError, "expected %q, got %q", value, name)
	}
	return name, tok, nil
}

// resolveTypes looks up every name in a typed group's annotation,
// creating the type in the domain's graph if it does not yet exist (PDDL
// allows a type to be used in a "- T" position before its own
// declaration line).
func (p *Parser) resolveTypes(names []string) []*pddl.Type {
	if len(names) == 0 {
		return nil
	}
	out := make([]*pddl.Type, 0, len(names))
	for _, n := range names {
		out = append(out, p.state.domain.Types().AddType(n))
	}
	return out
}
