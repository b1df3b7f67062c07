package parser

import (
	"strconv"

	"github.com/coregx/backre/internal/codec"
	"github.com/coregx/backre/token"
)

// Parser turns pattern source into a token.TokenStream plus a
// name→group-number table.
type Parser struct {
	src       string
	pos       int
	names     map[string]int
	nextGroup int
}

// Parse compiles pattern source into a TokenStream and a group-name
// table, or returns a *SyntaxError describing the first grammar
// violation encountered (spec.md §4.4). The returned int is the total
// capture-slot count (groups 0..n-1, 0 being the whole match), the
// size backtrack.New sizes a compiled pattern's capture store to.
func Parse(pattern string) (*token.TokenStream, map[string]int, int, error) {
	p := &Parser{src: pattern, nextGroup: 1, names: make(map[string]int)}

	stream, err := p.parseBody(false)
	if err != nil {
		return nil, nil, 0, err
	}
	if !p.atEnd() {
		// a ')' remains unconsumed: it was never opened.
		return nil, nil, 0, p.errAt(UNBPAR, p.pos)
	}

	weedeatStream(stream)

	totalGroups := p.nextGroup // groups 0..nextGroup-1 (0 is the whole match)
	if err := badrefCheck(stream, p.names, totalGroups, pattern); err != nil {
		return nil, nil, 0, err
	}

	return stream, p.names, totalGroups, nil
}

func (p *Parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *Parser) peek() byte {
	if p.atEnd() {
		return 0
	}
	return p.src[p.pos]
}

func (p *Parser) peekAt(n int) byte {
	if p.pos+n >= len(p.src) || p.pos+n < 0 {
		return 0
	}
	return p.src[p.pos+n]
}

func (p *Parser) errAt(code ErrorCode, pos int) *SyntaxError {
	return &SyntaxError{Code: code, Pos: pos, Pattern: p.src}
}

func (p *Parser) scanDigits() string {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// parseBody parses a sequence of alternatives up to (and, if inGroup,
// consuming) a closing ')'. The returned stream holds the branch atoms
// with ALTERNATOR tokens marking branch boundaries, exactly as the
// Factory expects to walk it (spec.md §4.5).
func (p *Parser) parseBody(inGroup bool) (*token.TokenStream, error) {
	s := token.New()
	canRepeat := false

	for {
		if p.atEnd() {
			if inGroup {
				return nil, p.errAt(UNBPAR, p.pos)
			}
			return s, nil
		}

		c := p.peek()

		switch {
		case c == ')':
			if inGroup {
				p.pos++
				return s, nil
			}
			return nil, p.errAt(UNBPAR, p.pos)

		case c == '|':
			p.pos++
			s.PushBack(token.NewSimple(token.Alternator))
			canRepeat = false

		case c == '*' || c == '+' || c == '?':
			if !canRepeat {
				return nil, p.errAt(NOTREP, p.pos)
			}
			p.pos++
			min, max := 1, 1
			switch c {
			case '*':
				min, max = 0, token.Unbounded
			case '+':
				min, max = 1, token.Unbounded
			case '?':
				min, max = 0, 1
			}
			s.PushBack(token.NewRange(min, max))
			p.applyQuantifierSuffix(s)
			canRepeat = false

		case c == '{':
			min, max, ok, err := p.tryParseBraceQuantifier()
			if err != nil {
				return nil, err
			}
			if ok {
				if !canRepeat {
					return nil, p.errAt(NOTREP, p.pos)
				}
				s.PushBack(token.NewRange(min, max))
				p.applyQuantifierSuffix(s)
				canRepeat = false
				continue
			}
			tok, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			s.PushBack(tok)
			canRepeat = true

		default:
			tok, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			s.PushBack(tok)
			canRepeat = true
		}
	}
}

// applyQuantifierSuffix consumes a trailing '?' (LAZY) or '+'
// (POSSESSIVE) immediately after a just-pushed RANGE token.
func (p *Parser) applyQuantifierSuffix(s *token.TokenStream) {
	switch p.peek() {
	case '?':
		p.pos++
		s.PushBack(token.NewSimple(token.Lazy))
	case '+':
		p.pos++
		s.PushBack(token.NewSimple(token.Possessive))
	}
}

// tryParseBraceQuantifier attempts to parse a {a,b}/{a,}/{a} quantifier
// at the current position without consuming input if the shape doesn't
// match (an unrecognized '{' is simply a literal character, per the
// grammar's "whichever rule matches earliest wins" determinism).
func (p *Parser) tryParseBraceQuantifier() (min, max int, ok bool, err error) {
	save := p.pos
	start := p.pos
	if p.peek() != '{' {
		return 0, 0, false, nil
	}
	p.pos++

	minStr := p.scanDigits()
	if minStr == "" {
		p.pos = save
		return 0, 0, false, nil
	}
	minVal, convErr := strconv.Atoi(minStr)
	if convErr != nil {
		return 0, 0, false, p.errAt(BADINT, start)
	}

	maxVal := minVal
	if p.peek() == ',' {
		p.pos++
		maxStr := p.scanDigits()
		if maxStr == "" {
			maxVal = token.Unbounded
		} else {
			m, convErr2 := strconv.Atoi(maxStr)
			if convErr2 != nil {
				return 0, 0, false, p.errAt(BADINT, start)
			}
			maxVal = m
		}
	}

	if p.peek() != '}' {
		p.pos = save
		return 0, 0, false, nil
	}
	p.pos++

	if maxVal != token.Unbounded && maxVal < minVal {
		return 0, 0, false, p.errAt(BADQAN, start)
	}
	return minVal, maxVal, true, nil
}

// parseAtom parses one non-quantifier construct: a literal codepoint, a
// '.' wildcard, an anchor, a character class, a group, or an escape.
func (p *Parser) parseAtom() (*token.Token, error) {
	c := p.peek()
	switch c {
	case '.':
		p.pos++
		cls := dotClass()
		return token.NewClass(cls, true), nil

	case '^':
		p.pos++
		return token.NewSimple(token.StAnch), nil

	case '$':
		p.pos++
		return token.NewSimple(token.EdgeAnch), nil

	case '[':
		return p.parseClass()

	case '(':
		return p.parseGroup()

	case '\\':
		return p.parseEscape()

	default:
		cp, n := codec.Decode([]byte(p.src[p.pos:]))
		p.pos += n
		return token.NewLiteral(cp), nil
	}
}

// parseGroup parses a '(' construct: a plain capturing group, a
// non-capturing group, an atomic group, a lookahead, a named group, or
// a subroutine call.
func (p *Parser) parseGroup() (*token.Token, error) {
	start := p.pos
	p.pos++ // consume '('

	if p.peek() != '?' {
		groupNum := p.nextGroup
		p.nextGroup++
		sub, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return token.NewGroupLike(token.Group, sub, groupNum), nil
	}

	// '(?' prefix: dispatch on the following character(s).
	p.pos++ // consume '?'
	switch p.peek() {
	case ':':
		p.pos++
		sub, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return token.NewGroupLike(token.Group, sub, -1), nil

	case '>':
		p.pos++
		sub, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return token.NewGroupLike(token.Atomic, sub, -1), nil

	case '=':
		p.pos++
		sub, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return token.NewGroupLike(token.Lookahead, sub, -1), nil

	case '!':
		p.pos++
		sub, err := p.parseBody(true)
		if err != nil {
			return nil, err
		}
		return token.NewGroupLike(token.NLookahead, sub, -1), nil

	case '<':
		// '(?<=' and '(?<!' are lookbehind, explicitly unsupported
		// (spec.md Non-goals). '(?<name>' is a named capturing group.
		next := p.peekAt(1)
		if next == '=' || next == '!' {
			return nil, p.errAt(QUEPAR, start)
		}
		p.pos++ // consume '<'
		return p.parseNamedGroup('>')

	case '\'':
		p.pos++
		return p.parseNamedGroup('\'')

	case 'P':
		if p.peekAt(1) == '<' {
			p.pos += 2
			return p.parseNamedGroup('>')
		}
		if p.peekAt(1) == '=' || p.peekAt(1) == '>' {
			return nil, p.errAt(QUEPAR, start)
		}
		return nil, p.errAt(QUEPAR, start)

	case 'R':
		if p.peekAt(1) == ')' {
			p.pos += 2
			return token.NewReference(token.Subroutine, 0), nil
		}
		return nil, p.errAt(QUEPAR, start)

	case '&':
		p.pos++
		nameStart := p.pos
		for !p.atEnd() && p.peek() != ')' {
			p.pos++
		}
		if p.atEnd() {
			return nil, p.errAt(UNBPAR, start)
		}
		name := p.src[nameStart:p.pos]
		p.pos++ // consume ')'
		if name == "" {
			return nil, p.errAt(QUEPAR, start)
		}
		t := token.NewName(name)
		t.NameKind = token.Subroutine
		return t, nil

	default:
		if isDigit(p.peek()) {
			numStart := p.pos
			digits := p.scanDigits()
			if p.peek() != ')' {
				return nil, p.errAt(QUEPAR, start)
			}
			p.pos++
			n, convErr := strconv.Atoi(digits)
			if convErr != nil {
				return nil, p.errAt(BADINT, numStart)
			}
			return token.NewReference(token.Subroutine, n), nil
		}
		return nil, p.errAt(QUEPAR, start)
	}
}

// parseNamedGroup parses the name up to closeDelim (either '>' or '\'')
// and the group body, registering the name in the parser's name table.
func (p *Parser) parseNamedGroup(closeDelim byte) (*token.Token, error) {
	nameStart := p.pos
	for !p.atEnd() && p.peek() != closeDelim {
		p.pos++
	}
	if p.atEnd() {
		return nil, p.errAt(UNBPAR, nameStart)
	}
	name := p.src[nameStart:p.pos]
	p.pos++ // consume close delimiter

	if name == "" {
		return nil, p.errAt(QUEPAR, nameStart)
	}
	if isDigit(name[0]) {
		return nil, p.errAt(GRPDIG, nameStart)
	}
	if _, dup := p.names[name]; dup {
		return nil, p.errAt(NAMEXT, nameStart)
	}

	groupNum := p.nextGroup
	p.nextGroup++
	p.names[name] = groupNum

	sub, err := p.parseBody(true)
	if err != nil {
		return nil, err
	}
	return token.NewGroupLike(token.Group, sub, groupNum), nil
}
