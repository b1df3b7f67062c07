package parser

import (
	"strconv"

	"github.com/coregx/backre/charclass"
	"github.com/coregx/backre/token"
)

// parseEscape parses a top-level `\...` sequence: class shorthands,
// anchors, backreferences/subroutine-number escapes, and character
// escapes.
//
// \b is always the word-boundary anchor at this level; backspace
// (0x08) is only reachable through \b inside a bracket expression,
// handled by parseClassEscape instead — the two can't share a case in
// the same switch without colliding.
func (p *Parser) parseEscape() (*token.Token, error) {
	start := p.pos
	p.pos++ // consume '\'
	if p.atEnd() {
		return nil, p.errAt(BOGESC, start)
	}
	c := p.peek()

	switch c {
	case 'd':
		p.pos++
		return token.NewClass(digitClass(), false), nil
	case 'D':
		p.pos++
		return token.NewClass(digitClass(), true), nil
	case 's':
		p.pos++
		return token.NewClass(spaceClass(), false), nil
	case 'S':
		p.pos++
		return token.NewClass(spaceClass(), true), nil
	case 'h':
		p.pos++
		return token.NewClass(hspaceClass(), false), nil
	case 'H':
		p.pos++
		return token.NewClass(hspaceClass(), true), nil
	case 'w':
		p.pos++
		return token.NewClass(wordClassCopy(), false), nil
	case 'W':
		p.pos++
		return token.NewClass(wordClassCopy(), true), nil

	case 'b':
		p.pos++
		return token.NewSimple(token.WordAnch), nil
	case 'B':
		p.pos++
		return token.NewSimple(token.NWordAnch), nil
	case 'A':
		p.pos++
		return token.NewSimple(token.StAnch), nil
	case 'z', 'Z':
		p.pos++
		return token.NewSimple(token.EdgeAnch), nil

	case 'n':
		p.pos++
		return token.NewLiteral('\n'), nil
	case 'r':
		p.pos++
		return token.NewLiteral('\r'), nil
	case 't':
		p.pos++
		return token.NewLiteral('\t'), nil
	case 'f':
		p.pos++
		return token.NewLiteral('\f'), nil
	case 'v':
		p.pos++
		return token.NewLiteral('\v'), nil
	case 'a':
		p.pos++
		return token.NewLiteral(0x07), nil
	case 'e':
		p.pos++
		return token.NewLiteral(0x1B), nil
	case '0':
		p.pos++
		return token.NewSimple(token.EdgeAnch), nil
	case 'N':
		p.pos++
		return token.NewClass(lineTerminatorClass(), true), nil

	case 'x':
		p.pos++
		return p.parseHexEscape(start)

	case 'g', 'k':
		return p.parseBackrefEscape(start)

	case 'Q':
		p.pos++
		return p.parseLiteralBlock()

	default:
		if isDigit(c) {
			return p.parseNumericBackref(start)
		}
		if isMeta(c) {
			p.pos++
			return token.NewLiteral(uint32(c)), nil
		}
		return nil, p.errAt(BOGESC, start)
	}
}

func isMeta(c byte) bool {
	switch c {
	case '.', '^', '$', '*', '+', '?', '(', ')', '[', ']', '{', '}', '|', '\\', '/', '-':
		return true
	}
	return false
}

// parseHexEscape parses `\xHH` or `\x{HHHH}`.
func (p *Parser) parseHexEscape(start int) (*token.Token, error) {
	if p.peek() == '{' {
		p.pos++
		hexStart := p.pos
		for !p.atEnd() && isHex(p.peek()) {
			p.pos++
		}
		if p.atEnd() || p.peek() != '}' || p.pos == hexStart {
			return nil, p.errAt(HEXESC, start)
		}
		hex := p.src[hexStart:p.pos]
		p.pos++ // consume '}'
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || n > 0x10FFFF {
			return nil, p.errAt(HEXESC, start)
		}
		return token.NewLiteral(uint32(n)), nil
	}

	if p.pos+2 > len(p.src) || !isHex(p.peekAt(0)) || !isHex(p.peekAt(1)) {
		return nil, p.errAt(HEXESC, start)
	}
	hex := p.src[p.pos : p.pos+2]
	p.pos += 2
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, p.errAt(HEXESC, start)
	}
	return token.NewLiteral(uint32(n)), nil
}

// parseLiteralBlock parses `\Q...\E`, a run of literal characters with
// all metacharacter meaning suppressed, and returns it as a single
// String token.
func (p *Parser) parseLiteralBlock() (*token.Token, error) {
	p.pos++ // consume 'Q'
	var buf []byte
	for !p.atEnd() {
		if p.peek() == '\\' && p.peekAt(1) == 'E' {
			p.pos += 2
			return token.NewString(buf), nil
		}
		buf = append(buf, p.peek())
		p.pos++
	}
	return token.NewString(buf), nil
}

// parseNumericBackref parses a bare `\1`..`\99`-style backreference.
// Both `\g` and `\k` forms (numeric or named, per the grammar's
// Backreferences section) and a bare digit escape are all
// backreferences, never subroutine calls — only the explicit `(?R)`,
// `(?&name)`, and `(?number)` group forms call subroutines.
func (p *Parser) parseNumericBackref(start int) (*token.Token, error) {
	digits := p.scanDigits()
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil, p.errAt(BADINT, start)
	}
	return token.NewReference(token.Reference, n), nil
}

// parseBackrefEscape parses `\g<n>`, `\g'n'`, `\g<name>`, `\k<n>`,
// `\k'n'`, and `\k<name>` — all backreferences.
func (p *Parser) parseBackrefEscape(start int) (*token.Token, error) {
	p.pos++ // consume 'g' or 'k'
	if p.atEnd() {
		return nil, p.errAt(BOGESC, start)
	}
	open := p.peek()
	var closeDelim byte
	switch open {
	case '<':
		closeDelim = '>'
	case '\'':
		closeDelim = '\''
	default:
		return nil, p.errAt(BOGESC, start)
	}
	p.pos++

	bodyStart := p.pos
	for !p.atEnd() && p.peek() != closeDelim {
		p.pos++
	}
	if p.atEnd() {
		return nil, p.errAt(BOGESC, start)
	}
	body := p.src[bodyStart:p.pos]
	p.pos++ // consume close delim

	if body == "" {
		return nil, p.errAt(BOGESC, start)
	}
	if isDigit(body[0]) {
		n, err := strconv.Atoi(body)
		if err != nil {
			return nil, p.errAt(BADINT, bodyStart)
		}
		return token.NewReference(token.Reference, n), nil
	}

	t := token.NewName(body)
	t.NameKind = token.Reference
	return t, nil
}

// parseClassEscape parses a `\...` escape found inside a bracket
// expression. Some sequences (\d, \w, \s, ...) resolve to a
// sub-CharClass to union or exclude; others resolve to a plain
// codepoint, including \b as backspace (0x08) — distinct from the
// top-level word-boundary anchor parseEscape handles.
func (p *Parser) parseClassEscape() (cp uint32, cls *charclass.CharClass, err error) {
	start := p.pos
	p.pos++ // consume '\'
	if p.atEnd() {
		return 0, nil, p.errAt(BOGESC, start)
	}
	c := p.peek()

	switch c {
	case 'd':
		p.pos++
		return 0, digitClass(), nil
	case 'D':
		p.pos++
		d, _ := negatedCopy(digitClass(), true)
		return 0, charclassComplement(d), nil
	case 's':
		p.pos++
		return 0, spaceClass(), nil
	case 'S':
		p.pos++
		return 0, charclassComplement(spaceClass()), nil
	case 'w':
		p.pos++
		return 0, wordClassCopy(), nil
	case 'W':
		p.pos++
		return 0, charclassComplement(wordClassCopy()), nil
	case 'b':
		p.pos++
		return 0x08, nil, nil
	case 'n':
		p.pos++
		return '\n', nil, nil
	case 'r':
		p.pos++
		return '\r', nil, nil
	case 't':
		p.pos++
		return '\t', nil, nil
	case 'f':
		p.pos++
		return '\f', nil, nil
	case 'v':
		p.pos++
		return '\v', nil, nil
	case ']', '^', '-', '\\':
		p.pos++
		return uint32(c), nil, nil
	case 'a':
		p.pos++
		return 0x07, nil, nil
	case 'x':
		p.pos++
		tok, err := p.parseHexEscape(start)
		if err != nil {
			return 0, nil, err
		}
		return tok.Codepoint, nil, nil
	default:
		if isOctalDigit(c) {
			return p.parseOctalEscape()
		}
		return 0, nil, p.errAt(BOGESC, start)
	}
}

// parseOctalEscape parses up to three octal digits (`\ddd`) inside a
// bracket expression into a codepoint.
func (p *Parser) parseOctalEscape() (uint32, *charclass.CharClass, error) {
	start := p.pos
	for i := 0; i < 3 && !p.atEnd() && isOctalDigit(p.peek()); i++ {
		p.pos++
	}
	n, err := strconv.ParseUint(p.src[start:p.pos], 8, 32)
	if err != nil {
		return 0, nil, p.errAt(BOGESC, start)
	}
	return uint32(n), nil, nil
}

// charclassComplement returns the full-codepoint-space complement of
// cls, used to fold a negated class shorthand (\D, \S, \W) into a
// bracket expression where negation cannot be expressed per-member.
func charclassComplement(cls *charclass.CharClass) *charclass.CharClass {
	full := charclass.NewRange(0, 0x10FFFF)
	full.Difference(cls)
	return full
}
