package parser

import "github.com/wbrown/go-pddl/pddl/lexer"

// parseRequirementsBlock parses the body of (:requirements :f1 :f2 ...),
// applying each flag (and its implication closure) to whichever root is
// currently active.
func (p *Parser) parseRequirementsBlock() error {
	for !p.atRParen() {
		t, err := p.expect(lexer.TokenKeyword)
		if err != nil {
			return err
		}
		if err := p.enableRequirement(t.Value, t); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) enableRequirement(name string, tok lexer.Token) error {
	var err error
	if p.state.problem != nil {
		err = p.state.problem.EnableRequirement(name)
	} else {
		err = p.state.domain.EnableRequirement(name)
	}
	if err != nil {
		return p.errAt(tok, errKindOf(err), "%s", err.Error())
	}
	return nil
}
