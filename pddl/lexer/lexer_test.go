package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wbrown/go-pddl/pddl/lexer"
)

func lexAll(t *testing.T, input string) []lexer.Token {
	t.Helper()
	lx := lexer.NewLexer(input)
	require.NoError(t, lx.Lex())
	var toks []lexer.Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Type == lexer.TokenEOF {
			return toks
		}
	}
}

func TestLexParensAndIdent(t *testing.T) {
	toks := lexAll(t, "(move x)")
	require.Equal(t, lexer.TokenLParen, toks[0].Type)
	require.Equal(t, lexer.TokenIdent, toks[1].Type)
	require.Equal(t, "move", toks[1].Value)
	require.Equal(t, lexer.TokenIdent, toks[2].Type)
	require.Equal(t, lexer.TokenRParen, toks[3].Type)
	require.Equal(t, lexer.TokenEOF, toks[4].Type)
}

func TestLexVariableAndKeyword(t *testing.T) {
	toks := lexAll(t, "?x :parameters")
	require.Equal(t, lexer.TokenVariable, toks[0].Type)
	require.Equal(t, "x", toks[0].Value)
	require.Equal(t, lexer.TokenKeyword, toks[1].Type)
	require.Equal(t, "parameters", toks[1].Value)
}

func TestLexHashT(t *testing.T) {
	toks := lexAll(t, "#t")
	require.Equal(t, lexer.TokenHash, toks[0].Type)
}

func TestLexBareHashIsError(t *testing.T) {
	lx := lexer.NewLexer("#x")
	require.Error(t, lx.Lex())
}

func TestLexNegativeNumberVsDash(t *testing.T) {
	toks := lexAll(t, "-5 - foo")
	require.Equal(t, lexer.TokenNumber, toks[0].Type)
	require.Equal(t, "-5", toks[0].Value)
	require.Equal(t, lexer.TokenDash, toks[1].Type)
	require.Equal(t, lexer.TokenIdent, toks[2].Type)
}

func TestLexFloatNumber(t *testing.T) {
	toks := lexAll(t, "3.14")
	require.Equal(t, lexer.TokenNumber, toks[0].Type)
	require.Equal(t, "3.14", toks[0].Value)
}

func TestLexSkipsCommentsAndWhitespace(t *testing.T) {
	toks := lexAll(t, "; a comment\n  (at)  ; trailing\n")
	require.Equal(t, lexer.TokenLParen, toks[0].Type)
	require.Equal(t, lexer.TokenIdent, toks[1].Type)
	require.Equal(t, lexer.TokenRParen, toks[2].Type)
}

func TestLexUnexpectedCharacter(t *testing.T) {
	lx := lexer.NewLexer("(foo @)")
	require.Error(t, lx.Lex())
}

func TestPeekTokenAtDoesNotAdvance(t *testing.T) {
	lx := lexer.NewLexer("(define (domain d))")
	require.NoError(t, lx.Lex())

	require.Equal(t, lexer.TokenLParen, lx.PeekTokenAt(0).Type)
	require.Equal(t, "define", lx.PeekTokenAt(1).Value)
	require.Equal(t, lexer.TokenLParen, lx.PeekTokenAt(2).Type)
	require.Equal(t, "domain", lx.PeekTokenAt(3).Value)

	// still at the start
	require.Equal(t, lexer.TokenLParen, lx.PeekToken().Type)
}

func TestMarkAndReset(t *testing.T) {
	lx := lexer.NewLexer("(a b c)")
	require.NoError(t, lx.Lex())

	lx.NextToken() // (
	mark := lx.Mark()
	lx.NextToken() // a
	lx.NextToken() // b
	lx.Reset(mark)
	require.Equal(t, "a", lx.PeekToken().Value)
}
