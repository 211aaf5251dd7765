package parser

import (
	"os"

	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// Parser holds one file's token stream and the (possibly shared) working
// state it parses into.
type Parser struct {
	lex   *lexer.Lexer
	file  string
	debug bool
	state *ParserState
}

func newParser(file, src string, debug bool, state *ParserState) (*Parser, error) {
	lx := lexer.NewLexer(src)
	if err := lx.Lex(); err != nil {
		return nil, pddl.NewErrorAt(pddl.LexicalError, file, 0, 0, "%s", err.Error())
	}
	return &Parser{lex: lx, file: file, debug: debug, state: state}, nil
}

// Result is the outcome of a successful Parse: every domain and problem
// parsed across the given files, keyed by name.
type Result struct {
	domains  *pddl.NameSet[*pddl.Domain]
	problems *pddl.NameSet[*pddl.Problem]
}

// Domains returns every parsed domain, in unspecified order.
func (r *Result) Domains() []*pddl.Domain {
	return r.domains.Iter()
}

// Problems returns every parsed problem, in unspecified order.
func (r *Result) Problems() []*pddl.Problem {
	return r.problems.Iter()
}

// Domain looks a parsed domain up by name.
func (r *Result) Domain(name string) (*pddl.Domain, error) {
	return r.domains.Get(name)
}

// Problem looks a parsed problem up by name.
func (r *Result) Problem(name string) (*pddl.Problem, error) {
	return r.problems.Get(name)
}

type formKind int

const (
	formUnknown formKind = iota
	formDomain
	formProblem
)

// Parse is the package's sole entry point: it reads every file, parses
// domains first (so a problem's forward "(:domain d)" reference always
// resolves), then parses problems against the now-complete domain table
// (spec.md 4.7's parse driver / 4.6's forward-reference rule).
func Parse(paths []string, debugLogs bool) (*Result, error) {
	state := newParserState()

	sources := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, pddl.NewError(pddl.IOError, "reading %q: %v", path, err)
		}
		sources[path] = string(data)
	}

	for _, path := range paths {
		p, err := newParser(path, sources[path], debugLogs, state)
		if err != nil {
			return nil, err
		}
		if err := p.processFile(formDomain); err != nil {
			return nil, err
		}
	}

	for _, path := range paths {
		p, err := newParser(path, sources[path], debugLogs, state)
		if err != nil {
			return nil, err
		}
		if err := p.processFile(formProblem); err != nil {
			return nil, err
		}
	}

	return &Result{domains: state.Domains, problems: state.Problems}, nil
}

// processFile walks every top-level form in the file, fully parsing
// forms of kind want and skipping the rest (they belong to the other
// pass).
func (p *Parser) processFile(want formKind) error {
	for p.peek().Type != lexer.TokenEOF {
		kind := p.peekFormKind()
		switch {
		case kind == formUnknown:
			t := p.peek()
			return p.errAt(t, pddl.SyntaxError, "expected (define (domain ...)) or (define (problem ...))")
		case kind == want:
			p.trace("form:" + formKindName(kind))
			if kind == formDomain {
				if _, err := p.parseDomain(); err != nil {
					return err
				}
			} else {
				if _, err := p.parseProblem(); err != nil {
					return err
				}
			}
		default:
			p.skipTopLevelForm()
		}
	}
	return nil
}

// peekFormKind looks past "(define (" to the domain/problem keyword
// without consuming any tokens.
func (p *Parser) peekFormKind() formKind {
	if p.lex.PeekTokenAt(0).Type != lexer.TokenLParen {
		return formUnknown
	}
	if p.lex.PeekTokenAt(1).Type != lexer.TokenIdent || p.lex.PeekTokenAt(1).Value != "define" {
		return formUnknown
	}
	if p.lex.PeekTokenAt(2).Type != lexer.TokenLParen {
		return formUnknown
	}
	head := p.lex.PeekTokenAt(3)
	if head.Type != lexer.TokenIdent {
		return formUnknown
	}
	switch head.Value {
	case "domain":
		return formDomain
	case "problem":
		return formProblem
	default:
		return formUnknown
	}
}

func (p *Parser) skipTopLevelForm() {
	depth := 0
	for {
		t := p.next()
		switch t.Type {
		case lexer.TokenLParen:
			depth++
		case lexer.TokenRParen:
			depth--
			if depth == 0 {
				return
			}
		case lexer.TokenEOF:
			return
		}
	}
}

func formKindName(k formKind) string {
	switch k {
	case formDomain:
		return "domain"
	case formProblem:
		return "problem"
	default:
		return "unknown"
	}
}
