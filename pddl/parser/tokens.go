package parser

import (
	"strings"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

func (p *Parser) peek() lexer.Token { return p.lex.PeekToken() }
func (p *Parser) next() lexer.Token { return p.lex.NextToken() }

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	t := p.next()
	if t.Type != tt {
		return t, p.errAt(t, pddl.SyntaxError, "unexpected token %s", t.String())
	}
	return t, nil
}

func (p *Parser) expectLParen() error {
	_, err := p.expect(lexer.TokenLParen)
	return err
}

func (p *Parser) expectRParen() error {
	_, err := p.expect(lexer.TokenRParen)
	return err
}

func (p *Parser) atLParen() bool { return p.peek().Type == lexer.TokenLParen }
func (p *Parser) atRParen() bool { return p.peek().Type == lexer.TokenRParen }
func (p *Parser) isDashToken() bool { return p.peek().Type == lexer.TokenDash }

// expectKeyword consumes a :name keyword token, case-insensitively.
func (p *Parser) expectKeyword(name string) error {
	t, err := p.expect(lexer.TokenKeyword)
	if err != nil {
		return err
	}
	if !strings.EqualFold(t.Value, name) {
		return p.errAt(t, pddl.SyntaxError, "expected :%s, got :%s", name, t.Value)
	}
	return nil
}

func (p *Parser) atKeyword(name string) bool {
	t := p.peek()
	return t.Type == lexer.TokenKeyword && strings.EqualFold(t.Value, name)
}

func (p *Parser) atAnyKeyword() bool {
	return p.peek().Type == lexer.TokenKeyword
}

func (p *Parser) atIdent(name string) bool {
	t := p.peek()
	return t.Type == lexer.TokenIdent && strings.EqualFold(t.Value, name)
}

func (p *Parser) atIdentIn(names ...string) bool {
	t := p.peek()
	if t.Type != lexer.TokenIdent {
		return false
	}
	for _, n := range names {
		if strings.EqualFold(t.Value, n) {
			return true
		}
	}
	return false
}

func (p *Parser) expectIdent() (string, lexer.Token, error) {
	t, err := p.expect(lexer.TokenIdent)
	return t.Value, t, err
}

func (p *Parser) expectVariable() (string, lexer.Token, error) {
	t, err := p.expect(lexer.TokenVariable)
	return t.Value, t, err
}
