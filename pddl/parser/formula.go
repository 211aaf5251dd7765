package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseFormula parses a single formula group "( ... )" per the grammar
// sketched in spec.md 4.6's parse_formula shape: negation, conjunction,
// disjunction, quantification, implication, (term-)equality, numeric
// comparison, predicate application, a preference reference, a timed
// prefix, or one of the long-horizon constraint keywords. Not every
// caller's context accepts every variant, but this function itself does
// not restrict the grammar by context: operator preconditions, goals,
// constraints and derived-predicate bodies all call it directly.
func (p *Parser) parseFormula() (pddl.Formula, error) {
	openTok := p.peek()
	if err := p.expectLParen(); err != nil {
		return nil, err
	}

	headTok := p.peek()
	switch {
	case headTok.Type == lexer.TokenIdent:
		head := headTok.Value
		switch head {
		case "not":
			p.next()
			inner, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
			if !p.state.requirements().NegativePreconditions {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "not requires requirement :negative-preconditions")
			}
			return &ast.Negation{Formula: inner}, nil

		case "and":
			p.next()
			conj := ast.NewConjunction()
			for !p.atRParen() {
				child, err := p.parseFormula()
				if err != nil {
					return nil, err
				}
				conj.Append(child)
			}
			return conj, p.expectRParen()

		case "or":
			p.next()
			if !p.state.requirements().DisjunctivePreconditions {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "or requires requirement :disjunctive-preconditions")
			}
			disj := ast.NewDisjunction()
			for !p.atRParen() {
				child, err := p.parseFormula()
				if err != nil {
					return nil, err
				}
				disj.Append(child)
			}
			return disj, p.expectRParen()

		case "imply":
			p.next()
			if !p.state.requirements().DisjunctivePreconditions {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "imply requires requirement :disjunctive-preconditions")
			}
			ante, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			conseq, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			return &ast.Implication{Antecedent: ante, Consequent: conseq}, p.expectRParen()

		case "forall":
			p.next()
			if !p.state.requirements().UniversalPreconditions {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "forall requires requirement :universal-preconditions")
			}
			vars, body, err := p.parseQuantifiedFormulaBody()
			if err != nil {
				return nil, err
			}
			return &ast.Universal{Variables: vars, Formula: body}, nil

		case "exists":
			p.next()
			if !p.state.requirements().ExistentialPreconditions {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "exists requires requirement :existential-preconditions")
			}
			vars, body, err := p.parseQuantifiedFormulaBody()
			if err != nil {
				return nil, err
			}
			return &ast.Existential{Variables: vars, Formula: body}, nil

		case "preference":
			p.next()
			if !p.state.requirements().Preferences {
				return nil, p.errAt(headTok, pddl.MissingRequirement, "preference requires requirement :preferences")
			}
			name := "_anonymous"
			if p.peek().Type == lexer.TokenIdent {
				v, _, err := p.expectIdent()
				if err != nil {
					return nil, err
				}
				name = v
			}
			inner, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
			pref := pddl.NewPreference(name, inner)
			p.state.domain.Preferences().Put(pref)
			return &ast.PreferenceFormula{Preference: pref}, nil
		}

		if next := p.lex.PeekTokenAt(1); head == "at" && next.Type == lexer.TokenIdent && (next.Value == "start" || next.Value == "end") {
			p.next()
			return p.parseTimedFormulaTail(headTok)
		}
		if head == "over" {
			p.next()
			if _, _, err := requireIdentValue(p, "all"); err != nil {
				return nil, err
			}
			inner, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			if err := p.expectRParen(); err != nil {
				return nil, err
			}
			return &ast.TimedFormula{Point: ast.OverAllPoint, Formula: inner}, nil
		}

		if form, ok, err := p.tryParseConstraintFormula(head, headTok); ok || err != nil {
			return form, err
		}

		// Otherwise this is a predicate application.
		return p.parsePredicateApplication(openTok)

	case headTok.Type == lexer.TokenKeyword && headTok.Value == "=":
		// Not produced by the lexer (= is read as TokenIdent); kept for
		// defensiveness against a future lexer change.
		return p.parsePredicateApplication(openTok)

	default:
		return p.parseEqualityOrComparison(openTok)
	}
}

func (p *Parser) parsePredicateApplication(openTok lexer.Token) (pddl.Formula, error) {
	name, nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	switch name {
	case "=":
		return p.parseEqualityOrComparisonBody(openTok, "=")
	case "<", "<=", ">=", ">":
		return p.parseComparisonBody(openTok, name)
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
	return &ast.PredicateApplication{Predicate: pred, Args: args}, nil
}

// parseEqualityOrComparison handles a bare "(" already consumed whose head
// token is not an identifier. "=" and the comparison operators are read
// as identifiers by the lexer and take the parsePredicateApplication
// path instead, so here expectIdent fails and a SyntaxError is reported.
func (p *Parser) parseEqualityOrComparison(openTok lexer.Token) (pddl.Formula, error) {
	name, nameTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	switch name {
	case "=":
		return p.parseEqualityOrComparisonBody(openTok, "=")
	case "<", "<=", ">=", ">":
		return p.parseComparisonBody(openTok, name)
	}
	return nil, p.errAt(nameTok, pddl.SyntaxError, "expected a formula head, got %q", name)
}

// parseEqualityOrComparisonBody disambiguates term-equality from numeric
// "=" comparison by speculatively parsing the first child as a term
// (spec.md 4.6's "term-equality vs expression-equality disambiguation").
func (p *Parser) parseEqualityOrComparisonBody(openTok lexer.Token, op string) (pddl.Formula, error) {
	mark := p.lex.Mark()
	if term, err := p.parseTerm(); err == nil {
		if second, err2 := p.parseTerm(); err2 == nil && p.atRParen() {
			p.next()
			if !p.state.requirements().Equality {
				return nil, p.errAt(openTok, pddl.MissingRequirement, "term equality requires requirement :equality")
			}
			return &ast.Equality{Terms: []pddl.Term{term, second}}, nil
		}
	}
	p.lex.Reset(mark)

	if !p.state.requirements().NumericFluents {
		return nil, p.errAt(openTok, pddl.MissingRequirement, "numeric comparison requires requirement :numeric-fluents")
	}
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	return &ast.Comparison{Op: op, Left: left, Right: right}, nil
}

func (p *Parser) parseComparisonBody(openTok lexer.Token, op string) (pddl.Formula, error) {
	if !p.state.requirements().NumericFluents {
		return nil, p.errAt(openTok, pddl.MissingRequirement, "numeric comparison requires requirement :numeric-fluents")
	}
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	return &ast.Comparison{Op: op, Left: left, Right: right}, nil
}

// parseQuantifiedFormulaBody parses "(vars...) formula)" shared by
// forall/exists, pushing and popping a variable scope around the body.
func (p *Parser) parseQuantifiedFormulaBody() ([]*pddl.Variable, pddl.Formula, error) {
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
	body, err := p.parseFormula()
	if err != nil {
		return nil, nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, nil, err
	}
	return vars, body, nil
}

// parseTimedFormulaTail parses the remainder of "(at start|end f)" after
// "at" has already been consumed.
func (p *Parser) parseTimedFormulaTail(atTok lexer.Token) (pddl.Formula, error) {
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
		return nil, p.errAt(wordTok, pddl.SyntaxError, "expected start or end, got %q", word)
	}
	if !p.state.requirements().DurativeActions {
		return nil, p.errAt(atTok, pddl.MissingRequirement, "at start/end requires requirement :durative-actions")
	}
	inner, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if err := p.expectRParen(); err != nil {
		return nil, err
	}
	return &ast.TimedFormula{Point: point, Formula: inner}, nil
}

// tryParseConstraintFormula recognizes the :constraints-only keywords.
// ok is false (with a nil error) when head isn't one of them, so the
// caller falls through to predicate-application parsing.
func (p *Parser) tryParseConstraintFormula(head string, headTok lexer.Token) (pddl.Formula, bool, error) {
	switch head {
	case "always", "sometime", "at-most-once":
		p.next()
		inner, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, true, err
		}
		if !p.state.requirements().Constraints {
			return nil, true, p.errAt(headTok, pddl.MissingRequirement, "%s requires requirement :constraints", head)
		}
		switch head {
		case "always":
			return &ast.Always{Formula: inner}, true, nil
		case "sometime":
			return &ast.Sometime{Formula: inner}, true, nil
		default:
			return &ast.AtMostOnce{Formula: inner}, true, nil
		}

	case "within", "hold-after":
		p.next()
		n, err := p.parseNumber()
		if err != nil {
			return nil, true, err
		}
		inner, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, true, err
		}
		if !p.state.requirements().Constraints {
			return nil, true, p.errAt(headTok, pddl.MissingRequirement, "%s requires requirement :constraints", head)
		}
		if head == "within" {
			return &ast.Within{Number: n, Formula: inner}, true, nil
		}
		return &ast.HoldAfter{Number: n, Formula: inner}, true, nil

	case "hold-during":
		p.next()
		from, err := p.parseNumber()
		if err != nil {
			return nil, true, err
		}
		to, err := p.parseNumber()
		if err != nil {
			return nil, true, err
		}
		inner, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, true, err
		}
		if !p.state.requirements().Constraints {
			return nil, true, p.errAt(headTok, pddl.MissingRequirement, "hold-during requires requirement :constraints")
		}
		return &ast.HoldDuring{From: from, To: to, Formula: inner}, true, nil

	case "sometime-after", "sometime-before":
		p.next()
		first, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		second, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, true, err
		}
		if !p.state.requirements().Constraints {
			return nil, true, p.errAt(headTok, pddl.MissingRequirement, "%s requires requirement :constraints", head)
		}
		if head == "sometime-after" {
			return &ast.SometimeAfter{First: first, Second: second}, true, nil
		}
		return &ast.SometimeBefore{First: first, Second: second}, true, nil

	case "always-within":
		p.next()
		n, err := p.parseNumber()
		if err != nil {
			return nil, true, err
		}
		first, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		second, err := p.parseFormula()
		if err != nil {
			return nil, true, err
		}
		if err := p.expectRParen(); err != nil {
			return nil, true, err
		}
		if !p.state.requirements().Constraints {
			return nil, true, p.errAt(headTok, pddl.MissingRequirement, "always-within requires requirement :constraints")
		}
		return &ast.AlwaysWithin{Number: n, First: first, Second: second}, true, nil
	}
	return nil, false, nil
}
