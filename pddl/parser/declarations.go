package parser

import "github.com/wbrown/go-pddl/pddl"

// parseTypesBlock parses the body of (:types ...): a typed list of type
// names, where "- <T>" makes every accumulated name a direct subtype of
// <T>.
func (p *Parser) parseTypesBlock() error {
	groups, err := p.parseTypedList(false)
	if err != nil {
		return err
	}
	for _, g := range groups {
		children := make([]*pddl.Type, len(g.Names))
		for i, n := range g.Names {
			children[i] = p.state.domain.Types().AddType(n)
		}
		supers := p.resolveTypes(g.TypeNames)
		for _, child := range children {
			for _, super := range supers {
				if err := p.state.domain.Types().AddSupertypeEdge(child, super); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// parseObjectLikeBlock parses (:constants ...) or (:objects ...): a
// typed list of names, each becoming a declared Object registered into
// dest.
func (p *Parser) parseObjectLikeBlock(dest *pddl.NameSet[*pddl.Object]) error {
	groups, err := p.parseTypedList(false)
	if err != nil {
		return err
	}
	for _, g := range groups {
		types := p.resolveTypes(g.TypeNames)
		for i, n := range g.Names {
			obj := pddl.NewObject(n)
			for _, t := range types {
				obj.AddType(t)
			}
			if err := dest.Add(obj); err != nil {
				return p.errAt(g.Tokens[i], pddl.DuplicateSymbol, "%s", err.Error())
			}
		}
	}
	return nil
}

// parsePredicatesBlock parses (:predicates (name ?v1 ?v2 - t ...) ...).
func (p *Parser) parsePredicatesBlock() error {
	for !p.atRParen() {
		if err := p.expectLParen(); err != nil {
			return err
		}
		name, nameTok, err := p.expectIdent()
		if err != nil {
			return err
		}
		pred := pddl.NewPredicate(name)
		if err := p.parsePredicateParams(pred); err != nil {
			return err
		}
		if err := p.state.domain.Predicates().Add(pred); err != nil {
			return p.errAt(nameTok, pddl.DuplicateSymbol, "%s", err.Error())
		}
	}
	return nil
}

func (p *Parser) parsePredicateParams(pred *pddl.Predicate) error {
	groups, err := p.parseTypedList(true)
	if err != nil {
		return err
	}
	for _, g := range groups {
		types := p.resolveTypes(g.TypeNames)
		for _, n := range g.Names {
			v := pddl.NewVariable(n)
			for _, t := range types {
				v.AddType(t)
			}
			pred.AddParameter(v)
		}
	}
	return p.expectRParen()
}

// parseFunctionsBlock parses (:functions (f ?v1 - t) ... - <return-type>
// (g ?v2) ...), where a trailing "- <T>" after one or more function
// skeletons makes them object-fluents of that return type (spec.md 4.1:
// functions are numeric unless :object-fluents is set and an explicit
// type annotation is given).
func (p *Parser) parseFunctionsBlock() error {
	var pending []*pddl.Function
	flush := func(typeNames []string) error {
		if len(pending) == 0 {
			return nil
		}
		if len(typeNames) > 0 {
			if !p.state.requirements().ObjectFluents {
				return pddl.NewError(pddl.MissingRequirement, "object-fluent return type requires requirement :object-fluents")
			}
			types := p.resolveTypes(typeNames)
			if len(types) > 0 {
				for _, fn := range pending {
					fn.SetReturnType(types[0])
				}
			}
		}
		pending = nil
		return nil
	}

	for !p.atRParen() {
		if p.isDashToken() {
			p.next()
			typeNames, err := p.parseTypeAnnotation()
			if err != nil {
				return err
			}
			if err := flush(typeNames); err != nil {
				return err
			}
			continue
		}
		if err := p.expectLParen(); err != nil {
			return err
		}
		name, nameTok, err := p.expectIdent()
		if err != nil {
			return err
		}
		fn := pddl.NewFunction(name)
		groups, err := p.parseTypedList(true)
		if err != nil {
			return err
		}
		for _, g := range groups {
			types := p.resolveTypes(g.TypeNames)
			for _, n := range g.Names {
				v := pddl.NewVariable(n)
				for _, t := range types {
					v.AddType(t)
				}
				fn.AddParameter(v)
			}
		}
		if err := p.expectRParen(); err != nil {
			return err
		}
		if err := p.state.domain.Functions().Add(fn); err != nil {
			return p.errAt(nameTok, pddl.DuplicateSymbol, "%s", err.Error())
		}
		pending = append(pending, fn)
	}
	return flush(nil)
}

// parseClassBlock parses a single "(:class name (fname ?v - t ...) ...)"
// declaration, gated by the :modules requirement.
func (p *Parser) parseClassBlock() error {
	if !p.state.requirements().Modules {
		t := p.peek()
		return p.errAt(t, pddl.MissingRequirement, ":class requires requirement :modules")
	}
	name, nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	cls := pddl.NewClass(name)
	for !p.atRParen() {
		if err := p.expectLParen(); err != nil {
			return err
		}
		fname, fnameTok, err := p.expectIdent()
		if err != nil {
			return err
		}
		fn := pddl.NewFunction(fname)
		groups, err := p.parseTypedList(true)
		if err != nil {
			return err
		}
		for _, g := range groups {
			types := p.resolveTypes(g.TypeNames)
			for _, n := range g.Names {
				v := pddl.NewVariable(n)
				for _, t := range types {
					v.AddType(t)
				}
				fn.AddParameter(v)
			}
		}
		if err := p.expectRParen(); err != nil {
			return err
		}
		if err := cls.AddMember(fn); err != nil {
			return p.errAt(fnameTok, pddl.DuplicateSymbol, "%s", err.Error())
		}
	}
	if err := p.state.domain.Classes().Add(cls); err != nil {
		return p.errAt(nameTok, pddl.DuplicateSymbol, "%s", err.Error())
	}
	return p.expectRParen()
}
