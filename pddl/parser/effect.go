package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseEffect parses a single effect group, covering the full operator
// effect grammar (spec.md 4.2's effect keyword list).
func (p *Parser) parseEffect() (pddl.Effect, error) {
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	headTok := p.peek()
	head, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	switch head {
	case "not":
		inner, err := p.parsePredicateAtomEffect()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		return &ast.PredicateDelete{Predicate: inner.Predicate, Args: inner.Args}, nil

	case "and":
		conj := ast.NewEffectConjunction()
		for !p.atRParen() {
			child, err := p.parseEffect()
			if err != nil {
				return nil, err
			}
			conj.Append(child)
		}
		return conj, p.expectRParen()

	case "oneof":
		disj := ast.NewEffectDisjunction()
		for !p.atRParen() {
			child, err := p.parseEffect()
			if err != nil {
				return nil, err
			}
			disj.Append(child)
		}
		return disj, p.expectRParen()

	case "when":
		if !p.state.requirements().ConditionalEffects {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "when requires requirement :conditional-effects")
		}
		cond, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		eff, err := p.parseEffect()
		if err != nil {
			return nil, err
		}
		return &ast.Conditional{Condition: cond, Effect: eff}, p.expectRParen()

	case "forall":
		if !p.state.requirements().ConditionalEffects {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "forall requires requirement :conditional-effects in effect position")
		}
		vars, eff, err := p.parseQuantifiedEffectBody()
		if err != nil {
			return nil, err
		}
		return &ast.ForAllEffect{Variables: vars, Effect: eff}, nil

	case "exists":
		if !p.state.requirements().ConditionalEffects {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "exists requires requirement :conditional-effects in effect position")
		}
		vars, eff, err := p.parseQuantifiedEffectBody()
		if err != nil {
			return nil, err
		}
		return &ast.ExistsEffect{Variables: vars, Effect: eff}, nil

	case "assign":
		if !p.state.requirements().NumericFluents && !p.state.requirements().ObjectFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "assign requires requirement :numeric-fluents or :object-fluents")
		}
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Target: target, Value: value}, p.expectRParen()

	case "increase", "decrease", "scale-up", "scale-down":
		if !p.state.requirements().NumericFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "%s requires requirement :numeric-fluents", head)
		}
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		switch head {
		case "increase":
			return ast.NewIncrease(target, value), nil
		case "decrease":
			return ast.NewDecrease(target, value), nil
		case "scale-up":
			return ast.NewScaleUp(target, value), nil
		default:
			return ast.NewScaleDown(target, value), nil
		}

	case "at":
		if next := p.peek(); next.Type == lexer.TokenNumber || (next.Type == lexer.TokenIdent && (next.Value == "start" || next.Value == "end")) {
			return p.parseTimedEffectOrInitialLiteralTail(headTok)
		}
		pred, err := p.state.domain.Predicates().Get(head)
		if err != nil {
			return nil, p.errAt(headTok, pddl.UnknownSymbol, "undeclared predicate %q", head)
		}
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		return &ast.PredicateAdd{Predicate: pred, Args: args}, p.expectRParen()

	default:
		pred, err := p.state.domain.Predicates().Get(head)
		if err != nil {
			return nil, p.errAt(headTok, pddl.UnknownSymbol, "undeclared predicate %q", head)
		}
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		return &ast.PredicateAdd{Predicate: pred, Args: args}, p.expectRParen()
	}
}

// parsePredicateAtomEffect parses "(name t1 ... tn)" as a predicate
// literal, without the add/delete sign already decided by the caller
// (used by "not" in effect position).
func (p *Parser) parsePredicateAtomEffect() (*ast.PredicateAdd, error) {
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	name, nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	pred, err := p.state.domain.Predicates().Get(name)
	if err != nil {
		return nil, p.errAt(nameTok, pddl.UnknownSymbol, "undeclared predicate %q", name)
	}
	args, err := p.parseTermList()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	return &ast.PredicateAdd{Predicate: pred, Args: args}, nil
}

func (p *Parser) parseQuantifiedEffectBody() ([]*pddl.Variable, pddl.Effect, error) {
	if err := p.expectLParen(); err != nil {
		return nil, nil, err
	}
	groups, err := p.parseTypedList(true)
	if err != nil {
		return nil, nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, nil, err
	}
	p.state.pushScope()
	defer p.state.popScope()

	var vars []*pddl.Variable
	for _, g := range groups {
		types := p.resolveTypes(g.TypeNames)
		for i, n := range g.Names {
			v := pddl.NewVariable(n)
			for _, t := range types {
				v.AddType(t)
			}
			if err := p.state.bindVariable(v); err != nil {
				return nil, nil, p.errAt(g.Tokens[i], pddl.DuplicateSymbol, "%s", err.Error())
			}
			vars = append(vars, v)
		}
	}
	eff, err := p.parseEffect()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, nil, err
	}
	return vars, eff, nil
}

// parseTimedEffectOrInitialLiteralTail parses what follows "at" in
// effect position: either "at start|end <effect>" (durative-action
// effects) or "at <number> <effect>" (timed initial literal). The number
// form is accepted in operator effects as well as in :init.
func (p *Parser) parseTimedEffectOrInitialLiteralTail(atTok lexer.Token) (pddl.Effect, error) {
	if p.peek().Type == lexer.TokenNumber {
		if !p.state.requirements().TimedInitialLiterals {
			return nil, p.errAt(atTok, pddl.MissingRequirement, "timed initial literals require requirement :timed-initial-literals")
		}
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		inner, err := p.parseEffect()
		if err != nil {
			return nil, err
		}
		return &ast.TimedInitialLiteral{Time: n, Effect: inner}, p.expectRParen()
	}

	word, wordTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	var point ast.TimedFormulaPoint
	switch word {
	case "start":
		point = ast.AtStartPoint
	case "end":
		point = ast.AtEndPoint
	default:
		return nil, p.errAt(wordTok, pddl.SyntaxError, "expected start, end, or a time literal, got %q", word)
	}
	if !p.state.requirements().DurativeActions {
		return nil, p.errAt(atTok, pddl.MissingRequirement, "at start/end requires requirement :durative-actions")
	}
	inner, err := p.parseEffect()
	if err != nil {
		return nil, err
	}
	return &ast.TimedEffect{Point: point, Effect: inner}, p.expectRParen()
}

// parseInitEffect parses a single :init element, restricted to: bare
// predicate add, negated predicate, "(= fhead number)" assignment, or a
// timed initial literal (spec.md 4.6 "init-state restriction").
func (p *Parser) parseInitEffect() (pddl.Effect, error) {
	openTok := p.peek()
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	headTok := p.peek()
	head, _, err := p.expectIdent()
	if err != nil {
		return nil, err
	}

	switch head {
	case "not":
		inner, err := p.parsePredicateAtomEffect()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		if !p.state.requirements().NegativePreconditions {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "negative init facts require requirement :negative-preconditions")
		}
		return &ast.PredicateDelete{Predicate: inner.Predicate, Args: inner.Args}, nil

	case "=":
		if !p.state.requirements().NumericFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "numeric init facts require requirement :numeric-fluents")
		}
		target, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		if _, ok := value.(*ast.NumberLiteral); !ok {
			return nil, p.errAt(openTok, pddl.BadInitialState, "init assignment value must be a number literal")
		}
		return &ast.Assign{Target: target, Value: value}, nil

	case "at":
		if p.peek().Type == lexer.TokenNumber {
			return p.parseTimedEffectOrInitialLiteralTail(headTok)
		}
		fallthrough

	default:
		pred, err := p.state.domain.Predicates().Get(head)
		if err != nil {
			return nil, p.errAt(headTok, pddl.UnknownSymbol, "undeclared predicate %q", head)
		}
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, err
		}
		return &ast.PredicateAdd{Predicate: pred, Args: args}, nil
	}
}
