// Package token implements the parser's tagged token representation and
// the doubly-linked TokenStream it is assembled into.
//
// A TokenStream is an intrusive doubly-linked list: each Token carries
// its own prev/next pointers so the parser can splice, slice, and
// re-link ranges of tokens in place (weedeat's possessive-quantifier
// rewrite slices the quantified atom out and inserts an atomic group in
// its place) without rebuilding the whole sequence.
package token

import "github.com/coregx/backre/charclass"

// Unbounded is the repetition-range sentinel meaning "no upper bound",
// used as a RANGE token's Max field for patterns like `a+` or `a{2,}`.
const Unbounded = int(^uint(0) >> 1)

// Kind identifies a Token's variant. Only the fields documented for that
// Kind are meaningful on a given Token.
type Kind uint8

const (
	Literal Kind = iota
	String
	Name
	Alternator
	Class
	Group
	Atomic
	Lookahead
	NLookahead
	RangeQuant
	Lazy
	Possessive
	Reference
	Subroutine
	WordAnch
	NWordAnch
	StAnch
	EdgeAnch
	Empty
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case String:
		return "String"
	case Name:
		return "Name"
	case Alternator:
		return "Alternator"
	case Class:
		return "Class"
	case Group:
		return "Group"
	case Atomic:
		return "Atomic"
	case Lookahead:
		return "Lookahead"
	case NLookahead:
		return "NLookahead"
	case RangeQuant:
		return "RangeQuant"
	case Lazy:
		return "Lazy"
	case Possessive:
		return "Possessive"
	case Reference:
		return "Reference"
	case Subroutine:
		return "Subroutine"
	case WordAnch:
		return "WordAnch"
	case NWordAnch:
		return "NWordAnch"
	case StAnch:
		return "StAnch"
	case EdgeAnch:
		return "EdgeAnch"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Token is a single tagged node in a TokenStream.
//
// Only the fields relevant to Kind are populated; the rest are left at
// their zero value. GroupNumber is -1 for tokens with no associated
// capture group.
type Token struct {
	Kind        Kind
	GroupNumber int

	Codepoint uint32               // Literal
	Bytes     []byte                // String
	Name      string                // Name
	Class     *charclass.CharClass  // Class
	Negated   bool                  // Class
	Sub       *TokenStream          // Group, Atomic, Lookahead, NLookahead
	Min, Max  int                   // RangeQuant
	RefIndex  int                   // Reference, Subroutine
	NameKind  Kind                  // Name: which kind (Reference or Subroutine) this name resolves to

	prev, next *Token
	owner      *TokenStream
}

// NewLiteral returns a Literal token for cp.
func NewLiteral(cp uint32) *Token {
	return &Token{Kind: Literal, GroupNumber: -1, Codepoint: cp}
}

// NewString returns a String token for the coalesced literal bytes b.
func NewString(b []byte) *Token {
	return &Token{Kind: String, GroupNumber: -1, Bytes: b}
}

// NewClass returns a Class/NClass token over cls.
func NewClass(cls *charclass.CharClass, negated bool) *Token {
	return &Token{Kind: Class, GroupNumber: -1, Class: cls, Negated: negated}
}

// NewSimple returns a token of a Kind that carries no payload besides
// Kind/GroupNumber (Alternator, Lazy, Possessive, WordAnch, NWordAnch,
// StAnch, EdgeAnch, Empty).
func NewSimple(k Kind) *Token {
	return &Token{Kind: k, GroupNumber: -1}
}

// NewRange returns a RangeQuant token with repetition bounds [min,max].
func NewRange(min, max int) *Token {
	return &Token{Kind: RangeQuant, GroupNumber: -1, Min: min, Max: max}
}

// NewGroupLike returns a Group/Atomic/Lookahead/NLookahead token wrapping
// sub, with the given capture group number (-1 for non-capturing).
func NewGroupLike(k Kind, sub *TokenStream, groupNumber int) *Token {
	return &Token{Kind: k, GroupNumber: groupNumber, Sub: sub}
}

// NewName returns a Name token recording a not-yet-resolved group
// reference by name.
func NewName(name string) *Token {
	return &Token{Kind: Name, GroupNumber: -1, Name: name}
}

// NewReference returns a Reference/Subroutine token targeting group
// groupIndex.
func NewReference(k Kind, groupIndex int) *Token {
	return &Token{Kind: k, GroupNumber: -1, RefIndex: groupIndex}
}

// Prev returns the previous token in its stream, or nil at the front.
func (t *Token) Prev() *Token { return t.prev }

// Next returns the next token in its stream, or nil at the back.
func (t *Token) Next() *Token { return t.next }
