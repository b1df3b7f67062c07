package parser

import (
	"github.com/coregx/backre/charclass"
	"github.com/coregx/backre/internal/codec"
	"github.com/coregx/backre/token"
)

// weedeatStream applies the parser's top-level post-pass, in order:
// rewrite NUL-matching classes to an end-of-string check, coalesce
// unquantified literal runs into strings, rewrite POSSESSIVE
// quantifiers as atomic groups, and lift any literal left quantified
// (and therefore excluded from coalescing) into a single-codepoint
// class so the execution engine's repeating-atom machinery can drive
// it like any other repeatable primitive.
//
// Applying weedeatStream twice is a no-op: each step's trigger
// condition (a Class matching NUL, an adjacent unquantified Literal
// pair, a POSSESSIVE token, a bare Literal) no longer holds once that
// step has already run.
func weedeatStream(s *token.TokenStream) {
	rewriteNulClasses(s)
	coalesceLiterals(s)
	rewritePossessive(s)
	liftStandaloneLiterals(s)
}

// rewriteNulClasses finds every CLASS that matches codepoint 0 (either
// a plain class containing it, or a negated class whose complement
// contains it) and replaces it in place with a non-capturing group
// `(?:[class-without-0]|$)`, so the NUL terminator is matched by an
// end-of-string check instead of a byte comparison (spec.md §4.4,
// weedeat step 1).
func rewriteNulClasses(s *token.TokenStream) {
	for t := s.Front(); t != nil; t = t.Next() {
		if t.Sub != nil {
			rewriteNulClasses(t.Sub)
		}
		if t.Kind != token.Class {
			continue
		}

		matchesNul := t.Class.Search(0)
		if t.Negated {
			matchesNul = !matchesNul
		}
		if !matchesNul {
			continue
		}

		newCls := t.Class.Copy()
		if t.Negated {
			newCls.InsertCodepoint(0)
		} else {
			newCls.DeleteCodepoint(0)
		}

		sub := token.New()
		sub.PushBack(token.NewClass(newCls, t.Negated))
		sub.PushBack(token.NewSimple(token.Alternator))
		sub.PushBack(token.NewSimple(token.EdgeAnch))

		t.Kind = token.Group
		t.GroupNumber = -1
		t.Sub = sub
		t.Class = nil
		t.Negated = false
	}
}

// coalesceLiterals merges maximal runs of consecutive, unquantified
// LITERAL tokens into a single STRING token (spec.md §4.4, weedeat
// step 2). A Literal immediately followed by a RangeQuant is excluded
// from its neighboring run since the quantifier applies to it alone.
func coalesceLiterals(s *token.TokenStream) {
	for t := s.Front(); t != nil; t = t.Next() {
		if t.Sub != nil {
			coalesceLiterals(t.Sub)
		}
	}

	out := token.New()
	var pending []byte
	flush := func() {
		if len(pending) > 0 {
			out.PushBack(token.NewString(pending))
			pending = nil
		}
	}

	t := s.Front()
	for t != nil {
		next := t.Next()
		if t.Kind == token.Literal && !(next != nil && next.Kind == token.RangeQuant) {
			buf := make([]byte, codec.ByteLen(t.Codepoint))
			codec.Encode(t.Codepoint, buf)
			pending = append(pending, buf...)
		} else {
			flush()
			out.PushBack(t)
		}
		t = next
	}
	flush()

	s.Free()
	for cur := out.Front(); cur != nil; {
		next := cur.Next()
		out.Remove(cur)
		s.PushBack(cur)
		cur = next
	}
}

// rewritePossessive finds every POSSESSIVE token and replaces it and
// the (atom, RangeQuant) pair directly preceding it with a single
// ATOMIC group wrapping that pair (spec.md §4.4, weedeat step 3): a
// possessive quantifier is just a greedy quantifier with no
// backtracking into it, which is exactly what an atomic group gives
// the execution engine for free.
func rewritePossessive(s *token.TokenStream) {
	for t := s.Front(); t != nil; {
		next := t.Next()
		if t.Sub != nil {
			rewritePossessive(t.Sub)
		}
		if t.Kind == token.Possessive {
			quant := t.Prev()
			atom := quant.Prev()
			before := atom.Prev()

			detached := s.Slice(atom, t)
			detached.Remove(t) // drop the Possessive marker itself

			atomicTok := token.NewGroupLike(token.Atomic, detached, -1)
			s.InsertAfter(before, atomicTok)
			next = atomicTok.Next()
		}
		t = next
	}
}

// liftStandaloneLiterals rewrites every LITERAL token still present
// after coalescing (i.e. one excluded from a run because it carries
// its own quantifier) into a single-codepoint CLASS token (spec.md
// §4.4, weedeat step 4). The execution engine's repeating-atom loop
// only knows how to drive Class/Backreference/Group/Atomic/Subroutine
// atoms; String is a non-repeating primitive.
func liftStandaloneLiterals(s *token.TokenStream) {
	for t := s.Front(); t != nil; t = t.Next() {
		if t.Sub != nil {
			liftStandaloneLiterals(t.Sub)
		}
		if t.Kind == token.Literal {
			cls := charclass.NewCodepoint(t.Codepoint)
			t.Kind = token.Class
			t.Class = cls
			t.Negated = false
			t.Codepoint = 0
		}
	}
}
