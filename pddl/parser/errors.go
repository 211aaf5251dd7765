package parser

import (
	"github.com/wbrown/go-pddl/pddl"
	"github.com/wbrown/go-pddl/pddl/lexer"
)

// errAt wraps a failure at tok's source position with the active file
// path, matching spec.md's "every error carries a file path, line,
// column" requirement.
func (p *Parser) errAt(tok lexer.Token, kind pddl.ErrorKind, format string, args ...any) error {
	return pddl.NewErrorAt(kind, p.file, tok.Line, tok.Col, format, args...)
}

// requireFlag fails with MissingRequirement at tok's position unless ok
// is true.
func (p *Parser) requireFlag(ok bool, tok lexer.Token, construct, flag string) error {
	if ok {
		return nil
	}
	return p.errAt(tok, pddl.MissingRequirement, "%s requires requirement :%s", construct, flag)
}

// errKindOf extracts the ErrorKind a lower-level helper (e.g.
// Requirements.EnableRequirement) already classified its failure as, so
// re-wrapping with errAt doesn't collapse it to a generic SyntaxError.
func errKindOf(err error) pddl.ErrorKind {
	if pe, ok := err.(*pddl.ParseError); ok {
		return pe.Kind
	}
	return pddl.SyntaxError
}
