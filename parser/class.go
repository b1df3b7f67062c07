package parser

import (
	"github.com/coregx/backre/charclass"
	"github.com/coregx/backre/internal/codec"
	"github.com/coregx/backre/token"
)

// parseClass parses a bracket expression `[...]` into a single
// Class/NClass token (spec.md §4.4 bracket-expression grammar).
func (p *Parser) parseClass() (*token.Token, error) {
	start := p.pos
	p.pos++ // consume '['

	negated := false
	if p.peek() == '^' {
		negated = true
		p.pos++
	}

	cls := charclass.New()

	for {
		if p.atEnd() {
			return nil, p.errAt(UNBBRA, start)
		}
		if p.peek() == ']' {
			p.pos++
			break
		}

		// Nested class operators: `&&[...]` intersects, `-[...]`
		// differences, and a bare `[...]` unions — all relative to
		// the enclosing class built so far. `&&` not immediately
		// followed by `[` is two literal '&' members (falls through
		// to the default member parsing below, one '&' at a time).
		if p.peek() == '&' && p.peekAt(1) == '&' && p.peekAt(2) == '[' {
			p.pos += 2
			nested, err := p.parseNestedClass()
			if err != nil {
				return nil, err
			}
			cls.Intersection(nested)
			continue
		}
		if p.peek() == '-' && p.peekAt(1) == '[' {
			p.pos++
			nested, err := p.parseNestedClass()
			if err != nil {
				return nil, err
			}
			cls.Difference(nested)
			continue
		}
		if p.peek() == '[' {
			nested, err := p.parseNestedClass()
			if err != nil {
				return nil, err
			}
			cls.Union(nested)
			continue
		}

		lo, loClass, err := p.parseClassMember()
		if err != nil {
			return nil, err
		}
		if loClass != nil {
			cls.Union(loClass)
			continue
		}

		// Possible range: lo '-' hi, but `-` immediately before `]` is
		// a literal hyphen, and `-` is never a range operator when lo
		// came from a class-escape (handled above via loClass).
		if p.peek() == '-' && p.peekAt(1) != ']' && !p.atEndAt(1) {
			p.pos++ // consume '-'
			hi, hiClass, err := p.parseClassMember()
			if err != nil {
				return nil, err
			}
			if hiClass != nil {
				return nil, p.errAt(BADRAN, p.pos)
			}
			if hi < lo {
				return nil, p.errAt(BADRAN, p.pos)
			}
			cls.InsertRange(lo, hi)
			continue
		}

		cls.InsertCodepoint(lo)
	}

	if cls.Empty() && !negated {
		return nil, p.errAt(EMPCLA, start)
	}

	return token.NewClass(cls, negated), nil
}

func (p *Parser) atEndAt(n int) bool { return p.pos+n >= len(p.src) }

// parseNestedClass parses a `[...]` bracket expression found inside an
// enclosing bracket expression (spec.md §4.4 nested-class operators)
// and returns its fully-materialized (negation already folded in)
// CharClass, ready to union/intersect/difference into the caller's set.
func (p *Parser) parseNestedClass() (*charclass.CharClass, error) {
	tok, err := p.parseClass()
	if err != nil {
		return nil, err
	}
	if tok.Negated {
		return charclassComplement(tok.Class), nil
	}
	return tok.Class, nil
}

// parseClassMember parses one member of a bracket expression: either a
// single codepoint (returned as lo, nil) or a predefined class escape
// like \d/\w/\s (returned as 0, cls).
func (p *Parser) parseClassMember() (cp uint32, cls *charclass.CharClass, err error) {
	if p.peek() == '\\' {
		return p.parseClassEscape()
	}
	cp, n := codec.Decode([]byte(p.src[p.pos:]))
	p.pos += n
	return cp, nil, nil
}
