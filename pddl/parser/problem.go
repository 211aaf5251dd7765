package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseProblem parses a complete "(define (problem name) (:domain d) ...)"
// form. The domain must already be present in state.Domains (spec.md
// 4.6's forward-reference rule); the driver pre-scans for domains before
// attempting any problem file.
func (p *Parser) parseProblem() (*pddl.Problem, error) {
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if _, _, err := requireIdentValue(p, "define"); err != nil {
		return nil, err
	}
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	if _, _, err := requireIdentValue(p, "problem"); err != nil {
		return nil, err
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	domainKwTok, err := p.expect(lexer.TokenKeyword)
	if err != nil {
		return nil, err
	}
	if domainKwTok.Value != "domain" {
		return nil, p.errAt(domainKwTok, pddl.SyntaxError, "expected :domain, got :%s", domainKwTok.Value)
	}
	domainName, domainNameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	domain, err := p.state.Domains.Get(domainName)
	if err != nil {
		return nil, p.errAt(domainNameTok, pddl.UnknownSymbol, "undeclared domain %q", domainName)
	}

	problem := pddl.NewProblem(name, domain)
	p.state.domain = domain
	p.state.problem = problem
	defer func() { p.state.domain, p.state.problem = nil, nil }()

	for !p.atRParen() {
		if err := p.expectLParen(); err != nil {
			return nil, err
		}
		kwTok, err := p.expect(lexer.TokenKeyword)
		if err != nil {
			return nil, err
		}
		if err := p.dispatchProblemItem(kwTok.Value); err != nil {
			return nil, err
		}
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}

	if err := p.state.Problems.Add(problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (p *Parser) dispatchProblemItem(keyword string) error {
	switch keyword {
	case "requirements":
		if err := p.parseRequirementsBlock(); err != nil {
			return err
		}
		return p.expectRParen()

	case "objects":
		if err := p.parseObjectLikeBlock(p.state.problem.Objects()); err != nil {
			return err
		}
		return p.expectRParen()

	case "init":
		conj := ast.NewEffectConjunction()
		for !p.atRParen() {
			eff, err := p.parseInitEffect()
			if err != nil {
				return err
			}
			conj.Append(eff)
		}
		p.state.problem.SetInit(conj)
		return p.expectRParen()

	case "goal":
		f, err := p.parseFormula()
		if err != nil {
			return err
		}
		p.state.problem.SetGoal(f)
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
		p.state.problem.SetConstraints(f)
		return p.expectRParen()

	case "metric":
		dirTok := p.peek()
		dir, _, err := p.expectIdent()
		if err != nil {
			return err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return err
		}
		var wrapped pddl.Expression
		switch dir {
		case "minimize":
			wrapped = &ast.Minimize{Expression: expr}
		case "maximize":
			wrapped = &ast.Maximize{Expression: expr}
		default:
			return p.errAt(dirTok, pddl.SyntaxError, "expected minimize or maximize, got %q", dir)
		}
		p.state.problem.SetMetric(wrapped)
		return p.expectRParen()

	default:
		t := p.peek()
		return p.errAt(t, pddl.SyntaxError, "unknown problem item :%s", keyword)
	}
}
