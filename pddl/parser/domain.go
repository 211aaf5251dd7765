package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseDomain parses a complete "(define (domain name) ...)" form,
// dispatching each preamble item by its leading keyword. The grammar
// sketch in spec.md 4.6 lists a fixed item order; this parser accepts
// the items in any order. Only types resolve lazily (AddType creates a
// type on first use); predicates, functions and constants are looked up
// when used, so a reference placed before its declaration fails with
// UnknownSymbol.
func (p *Parser) parseDomain() (*pddl.Domain, error) {
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if _, _, err := requireIdentValue(p, "define"); err != nil {
		return nil, err
	}
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if _, _, err := requireIdentValue(p, "domain"); err != nil {
		return nil, err
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	domain := pddl.NewDomain(name)
	p.state.domain = domain
	p.state.problem = nil
	defer func() { p.state.domain = nil }()

	for !p.atRParen() {
		if err := p.expectLParen(); err != nil {
			return nil, err
		}
		kwTok, err := p.expect(lexer.TokenKeyword)
		if err != nil {
			return nil, err
		}
		if err := p.dispatchDomainItem(kwTok.Value); err != nil {
			return nil, err
		}
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	if err := p.state.Domains.Add(domain); err != nil {
		return nil, err
	}
	return domain, nil
}

func (p *Parser) dispatchDomainItem(keyword string) error {
	switch keyword {
	case "requirements":
		if err := p.parseRequirementsBlock(); err != nil {
			return err
		}
		return p.expectRParen()
	case "types":
		if err := p.parseTypesBlock(); err != nil {
			return err
		}
		return p.expectRParen()
	case "constants":
		if err := p.parseObjectLikeBlock(p.state.domain.Constants()); err != nil {
			return err
		}
		return p.expectRParen()
	case "predicates":
		if err := p.parsePredicatesBlock(); err != nil {
			return err
		}
		return p.expectRParen()
	case "functions":
		if err := p.parseFunctionsBlock(); err != nil {
			return err
		}
		return p.expectRParen()
	case "constraints":
		if !p.state.requirements().Constraints {
			t := p.peek()
			return p.errAt(t, pddl.MissingRequirement, ":constraints requires requirement :constraints")
		}
		f, err := p.parseFormula()
		if err != nil {
			return err
		}
		p.state.domain.SetConstraints(f)
		return p.expectRParen()
	case "class":
		return p.parseClassBlock()
	case "action":
		return p.parseActionBlock()
	case "durative-action":
		return p.parseDurativeActionBlock()
	case "event":
		return p.parseEventBlock()
	case "process":
		return p.parseProcessBlock()
	case "derived":
		return p.parseDerivedBlock()
	default:
		t := p.peek()
		return p.errAt(t, pddl.SyntaxError, "unknown domain item :%s", keyword)
	}
}
