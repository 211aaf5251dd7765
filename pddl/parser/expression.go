package parser

import (
	"strconv"
	"strings"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/ast"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// parseNumber parses a bare numeric literal token into a pddl.Number.
func (p *Parser) parseNumber() (pddl.Number, error) {
	t, err := p.expect(lexer.TokenNumber)
	if err != nil {
		return pddl.Number{}, err
	}
	if strings.Contains(t.Value, ".") {
		v, convErr := strconv.ParseFloat(t.Value, 64)
		if convErr != nil {
			return pddl.Number{}, p.errAt(t, pddl.SyntaxError, "malformed float literal %q", t.Value)
		}
		return pddl.NewFloatNumber(v), nil
	}
	v, convErr := strconv.ParseInt(t.Value, 10, 64)
	if convErr != nil {
		return pddl.Number{}, p.errAt(t, pddl.SyntaxError, "malformed integer literal %q", t.Value)
	}
	return pddl.NewIntNumber(v), nil
}

// parseExpression parses a numeric/object-valued expression: a literal,
// a function application, arithmetic, or one of the reserved
// placeholders (#t, ?duration, (total-time), (total-cost),
// (is-violated pref)).
func (p *Parser) parseExpression() (pddl.Expression, error) {
	t := p.peek()
	switch t.Type {
	case lexer.TokenNumber:
		n, err := p.parseNumber()
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Value: n}, nil

	case lexer.TokenHash:
		p.next()
		return &ast.TimePlaceholder{}, nil

	case lexer.TokenVariable:
		if strings.EqualFold(t.Value, "duration") {
			p.next()
			return &ast.DurationPlaceholder{}, nil
		}
		return nil, p.errAt(t, pddl.SyntaxError, "unexpected variable ?%s in expression", t.Value)

	case lexer.TokenLParen:
		return p.parseExpressionGroup()

	default:
		return nil, p.errAt(t, pddl.SyntaxError, "expected an expression, got %s", t.String())
	}
}

func (p *Parser) parseExpressionGroup() (pddl.Expression, error) {
	if err := p.expectLParen(); err != nil {
		return nil, err
	}
	var head string
	headTok := p.peek()
	if headTok.Type == lexer.TokenDash {
		// A lone "-" is lexed as TokenDash (the typed-list separator).
		p.next()
		head = "-"
	} else {
		var err error
		if head, headTok, err = p.expectIdent(); err != nil {
			return nil, err
		}
	}

	switch head {
	case "total-time":
		if !p.state.requirements().Time && !p.state.requirements().DurativeActions {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "total-time requires requirement :time or :durative-actions")
		}
		if !p.atRParen() {
			return nil, p.errAt(headTok, pddl.ReservedName, "total-time takes no parameters")
		}
		return &ast.TotalTime{}, p.expectRParen()

	case "total-cost":
		if !p.state.requirements().ActionCosts {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "total-cost requires requirement :action-costs")
		}
		if !p.atRParen() {
			return nil, p.errAt(headTok, pddl.ReservedName, "total-cost takes no parameters")
		}
		return &ast.TotalCost{}, p.expectRParen()

	case "is-violated":
		if !p.state.requirements().Preferences {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "is-violated requires requirement :preferences")
		}
		name, _, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		pref, err := p.state.domain.Preferences().Get(name)
		if err != nil {
			return nil, p.errAt(headTok, pddl.UnknownSymbol, "undeclared preference %q", name)
		}
		return &ast.ViolationExpression{Preference: pref}, p.expectRParen()

	case "+", "*":
		if !p.state.requirements().NumericFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "arithmetic requires requirement :numeric-fluents")
		}
		left, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Op: head, Left: left, Right: right}, p.expectRParen()

	case "-":
		if !p.state.requirements().NumericFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "arithmetic requires requirement :numeric-fluents")
		}
		first, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.atRParen() {
			p.next()
			return &ast.UnaryMinus{Operand: first}, nil
		}
		second, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Op: "-", Left: first, Right: second}, p.expectRParen()

	case "/":
		if !p.state.requirements().NumericFluents {
			return nil, p.errAt(headTok, pddl.MissingRequirement, "arithmetic requires requirement :numeric-fluents")
		}
		left, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpression{Op: "/", Left: left, Right: right}, p.expectRParen()

	default:
		fn, err := p.state.domain.Functions().Get(head)
		if err != nil {
			return nil, p.errAt(headTok, pddl.UnknownSymbol, "undeclared function %q", head)
		}
		args, err := p.parseTermList()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionApplication{Function: fn, Args: args}, p.expectRParen()
	}
}
