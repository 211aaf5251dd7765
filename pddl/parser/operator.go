package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
)

// operatorBody is what every operator kind shares, parsed once and
// assembled into the right concrete type by each caller.
type operatorBody struct {
	Parameters   []*pddl.Variable
	Duration     pddl.Formula // only meaningful for durative actions
	Precondition pddl.Formula
	Effect       pddl.Effect
}

// parseOperatorBody parses ":parameters (...)" [":duration <f>"]
// (":precondition"|":condition") <f> ":effect" <e>, in that order,
// within a fresh variable scope covering the whole operator (spec.md
// 4.6's "Operator parameter precondition/effect"). preconditionKeyword is
// "precondition" for action/event/process, "condition" for
// durative-action (same slot internally either way).
func (p *Parser) parseOperatorBody(wantDuration bool, preconditionKeyword string) (operatorBody, error) {
	var body operatorBody

	p.state.pushScope()
	defer p.state.popScope()

	if err := p.expectKeyword("parameters"); err != nil {
		return body, err
	}
	if err := p.expectLParen(); err != nil {
		return body, err
	}
	groups, err := p.parseTypedList(true)
	if err != nil {
		return body, err
	}
	for _, g := range groups {
		types := p.resolveTypes(g.TypeNames)
		for i, n := range g.Names {
			v := pddl.NewVariable(n)
			for _, t := range types {
				v.AddType(t)
			}
			if err := p.state.bindVariable(v); err != nil {
				return body, p.errAt(g.Tokens[i], pddl.DuplicateSymbol, "%s", err.Error())
			}
			body.Parameters = append(body.Parameters, v)
		}
	}
	if err := p.expectRParen(); err != nil {
		return body, err
	}

	if wantDuration {
		if err := p.expectKeyword("duration"); err != nil {
			return body, err
		}
		dc, err := p.parseDurationConstraint()
		if err != nil {
			return body, err
		}
		body.Duration = dc
	}

	if p.atKeyword(preconditionKeyword) {
		p.next()
		f, err := p.parseFormula()
		if err != nil {
			return body, err
		}
		body.Precondition = f
	} else {
		body.Precondition = ast.NewConjunction()
	}

	if err := p.expectKeyword("effect"); err != nil {
		return body, err
	}
	eff, err := p.parseEffect()
	if err != nil {
		return body, err
	}
	body.Effect = eff

	return body, p.expectRParen()
}

// parseDurationConstraint parses a duration constraint formula: either a
// plain "(= ?duration expr)" equality, or an inequality form gated by
// :duration-inequalities.
func (p *Parser) parseDurationConstraint() (pddl.Formula, error) {
	openTok := p.peek()
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	op, opTok, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	switch op {
	case "=":
		left, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: "=", Left: left, Right: right}, p.expectRParen()
	case "<=", ">=":
		if !p.state.requirements().DurationInequalities {
			return nil, p.errAt(opTok, pddl.MissingRequirement, ":duration with %s requires requirement :duration-inequalities", op)
		}
		left, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: op, Left: left, Right: right}, p.expectRParen()
	default:
		return nil, p.errAt(openTok, pddl.SyntaxError, "expected a duration constraint, got %q", op)
	}
}

func (p *Parser) parseActionBlock() error {
	name, _, err := p.expectIdent()
	if err != nil {
		return err
	}
	action := pddl.NewAction(name)
	body, err := p.parseOperatorBody(false, "precondition")
	if err != nil {
		return err
	}
	for _, v := range body.Parameters {
		action.AddParameter(v)
	}
	action.SetPrecondition(body.Precondition)
	action.SetEffect(body.Effect)
	p.state.domain.AddAction(action)
	return nil
}

func (p *Parser) parseDurativeActionBlock() error {
	if !p.state.requirements().DurativeActions {
		t := p.peek()
		return p.errAt(t, pddl.MissingRequirement, ":durative-action requires requirement :durative-actions")
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return err
	}
	da := pddl.NewDurativeAction(name)
	body, err := p.parseOperatorBody(true, "condition")
	if err != nil {
		return err
	}
	for _, v := range body.Parameters {
		da.AddParameter(v)
	}
	da.SetDuration(body.Duration)
	da.SetPrecondition(body.Precondition)
	da.SetEffect(body.Effect)
	p.state.domain.AddDurativeAction(da)
	return nil
}

func (p *Parser) parseEventBlock() error {
	if !p.state.requirements().Time {
		t := p.peek()
		return p.errAt(t, pddl.MissingRequirement, ":event requires requirement :time")
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return err
	}
	event := pddl.NewEvent(name)
	body, err := p.parseOperatorBody(false, "precondition")
	if err != nil {
		return err
	}
	for _, v := range body.Parameters {
		event.AddParameter(v)
	}
	event.SetPrecondition(body.Precondition)
	event.SetEffect(body.Effect)
	p.state.domain.AddEvent(event)
	return nil
}

func (p *Parser) parseProcessBlock() error {
	if !p.state.requirements().Time {
		t := p.peek()
		return p.errAt(t, pddl.MissingRequirement, ":process requires requirement :time")
	}
	name, _, err := p.expectIdent()
	if err != nil {
		return err
	}
	process := pddl.NewProcess(name)
	body, err := p.parseOperatorBody(false, "precondition")
	if err != nil {
		return err
	}
	for _, v := range body.Parameters {
		process.AddParameter(v)
	}
	process.SetPrecondition(body.Precondition)
	process.SetEffect(body.Effect)
	p.state.domain.AddProcess(process)
	return nil
}
