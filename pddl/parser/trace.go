package parser

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var traceColor = color.New(color.FgCyan)

// trace emits a cyan debug line when the parser was constructed with
// debugLogs enabled. It is called once per top-level form a file
// defines, not on entry to every grammar rule.
func (p *Parser) trace(rule string) {
	if !p.debug {
		return
	}
	tok := p.peek()
	traceColor.Fprintf(os.Stderr, "[%s] %s at %d:%d (next=%s)\n", p.file, rule, tok.Line, tok.Col, fmt.Sprint(tok))
}
