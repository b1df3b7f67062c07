package backtrack

import (
	"bytes"

	"github.com/coregx/backre/charclass"
	"github.com/coregx/backre/internal/codec"
	"github.com/coregx/backre/matcher"
)

// cont is "the rest of the match": given the position reached after
// some atom, branch, or core succeeds, it tries to complete the
// remaining pattern and reports whether some combination of choices
// still ahead (more repeats, a different branch, a different nested
// alternative) makes the whole match succeed. Returning false asks the
// caller to backtrack and try the next alternative; the continuation
// itself is called at most once per alternative, never retried with
// the same position twice.
//
// This is spec.md §4.6/§4.7's explicit backtrack stack re-expressed
// as Go recursion: each cont closure IS a frame, the Go call stack IS
// the BacktrackStack, and "popping a frame to try the next
// alternative" is simply returning false from the closure that frame
// represents. See stack.go for why Stack/Frame still exist alongside
// this and what they are used for (bounding recursion depth, not
// driving it).
type cont func(pos int) bool

// session carries the fixed inputs to one match attempt (the haystack,
// the absolute start used by anchors, the shared capture store) plus
// the mutable backtracking bookkeeping (step/depth accounting) that
// core.go's three mutually-recursive methods thread through every
// call.
type session struct {
	input  []byte
	head   int
	groups []Capture

	stack    *Stack
	steps    int
	maxSteps int // 0 = unlimited
	maxDepth int // 0 = unlimited
	aborted  bool
}

// tick charges one unit of backtracking work and reports whether the
// session is still within its step budget (engine.Config.MaxBacktrackSteps,
// spec.md §9 "pathological backtracking").
func (s *session) tick() bool {
	if s.aborted {
		return false
	}
	s.steps++
	if s.maxSteps > 0 && s.steps > s.maxSteps {
		s.aborted = true
		return false
	}
	return true
}

// coreMatch attempts core at input[pos:], trying each Branch in turn,
// and calls k with the position reached on the first branch (and,
// within it, the first combination of atom choices) that lets k
// itself succeed (spec.md §4.7.1).
func (s *session) coreMatch(core *matcher.Core, pos int, k cont) bool {
	idx := core.GroupIndex
	capturing := idx >= 0 && idx < len(s.groups)
	var prev Capture
	if capturing {
		prev = s.groups[idx]
		s.groups[idx] = Capture{Unset, Unset}
	}

	for b := core.Branches; b != nil; b = b.Next {
		if s.branchMatch(b, 0, pos, func(end int) bool {
			if capturing {
				s.groups[idx] = Capture{pos, end}
			}
			if k(end) {
				return true
			}
			if capturing {
				s.groups[idx] = Capture{Unset, Unset}
			}
			return false
		}) {
			return true
		}
	}
	if capturing {
		// Every branch failed: restore the capture an earlier repeat of
		// this core left, so a failed extra repeat does not erase it.
		s.groups[idx] = prev
	}
	return false
}

// branchMatch walks branch's Atoms in order starting at atomIdx,
// threading k through as the continuation for "everything after this
// atom" (spec.md §4.7.2).
func (s *session) branchMatch(branch *matcher.Branch, atomIdx, pos int, k cont) bool {
	if atomIdx == len(branch.Atoms) {
		return k(pos)
	}
	atom := branch.Atoms[atomIdx]
	return s.atomMatch(atom, pos, func(end int) bool {
		return s.branchMatch(branch, atomIdx+1, end, k)
	})
}

// atomMatch dispatches on atom.Kind: String/LookAhead/WordAnchor/
// EdgeAnchor match exactly once regardless of Min/Max; the remaining
// kinds repeat under the greedy or lazy loop (spec.md §4.7.3).
func (s *session) atomMatch(atom *matcher.Atom, pos int, k cont) bool {
	if !s.tick() {
		return false
	}
	s.stack.Push(Frame{Pos: pos})
	defer s.stack.Pop()
	if s.maxDepth > 0 && s.stack.Len() > s.maxDepth {
		s.aborted = true
		return false
	}

	switch atom.Kind {
	case matcher.StringAtom:
		end, ok := s.matchStringOnce(atom, pos)
		return ok && k(end)

	case matcher.LookAheadAtom:
		matched := s.coreMatch(atom.Group, pos, func(int) bool { return true })
		if matched == atom.Invert {
			return false
		}
		return k(pos)

	case matcher.WordAnchorAtom:
		if s.wordBoundary(pos) != atom.Invert {
			return k(pos)
		}
		return false

	case matcher.EdgeAnchorAtom:
		if atom.Invert {
			if pos == s.head {
				return k(pos)
			}
			return false
		}
		if pos == len(s.input) {
			return k(pos)
		}
		return false

	default: // ClassAtom, BackreferenceAtom, GroupAtom, AtomicAtom, SubroutineAtom
		if atom.Greedy {
			return s.matchGreedy(atom, pos, 0, k)
		}
		return s.matchLazy(atom, pos, 0, k)
	}
}

// matchGreedy consumes as many repeats of atom as it can before
// falling back to k, backtracking to fewer repeats only if every
// longer attempt (including whatever k demands afterward) fails
// (spec.md §4.7.3 "Greedy loop").
func (s *session) matchGreedy(atom *matcher.Atom, pos, count int, k cont) bool {
	if count < atom.Max {
		if s.matchOnce(atom, pos, func(end int) bool {
			if end == pos && count > 0 {
				return false // empty-match guard: no progress, stop growing
			}
			return s.matchGreedy(atom, end, count+1, k)
		}) {
			return true
		}
	}
	if count >= atom.Min {
		return k(pos)
	}
	return false
}

// matchLazy tries k after as few repeats as satisfy Min, consuming one
// more only when that fails (spec.md §4.7.3 "Lazy loop").
func (s *session) matchLazy(atom *matcher.Atom, pos, count int, k cont) bool {
	if count >= atom.Min {
		if k(pos) {
			return true
		}
	}
	if count < atom.Max {
		return s.matchOnce(atom, pos, func(end int) bool {
			if end == pos && count > 0 {
				return false
			}
			return s.matchLazy(atom, end, count+1, k)
		})
	}
	return false
}

// matchOnce runs one repeat of a repeating atom's primitive at pos and
// threads k through as the continuation for what happens with the
// resulting end position (spec.md §4.7.3 "Primitive semantics").
func (s *session) matchOnce(atom *matcher.Atom, pos int, k cont) bool {
	switch atom.Kind {
	case matcher.ClassAtom:
		cp, n := codec.Decode(s.input[pos:])
		if cp == codec.Invalid {
			return false
		}
		if atom.Class.Search(cp) == atom.Invert {
			return false
		}
		return k(pos + n)

	case matcher.BackreferenceAtom:
		cap := s.groups[atom.RefIndex]
		if cap.Begin == Unset {
			return false
		}
		text := s.input[cap.Begin:cap.End]
		if pos+len(text) > len(s.input) {
			return false
		}
		if !bytes.Equal(s.input[pos:pos+len(text)], text) {
			return false
		}
		return k(pos + len(text))

	case matcher.GroupAtom:
		return s.coreMatch(atom.Group, pos, k)

	case matcher.AtomicAtom:
		var end int
		matched := s.coreMatch(atom.Group, pos, func(e int) bool {
			end = e
			return true // commit to the first inner success; no outer backtracking into it
		})
		return matched && k(end)

	case matcher.SubroutineAtom:
		// Captures made while matching the target core are isolated in
		// snapshot for the whole traversal; the real, shared groups is
		// swapped back in only for the brief window k runs in, since k
		// represents the rest of the *outer* match (spec.md §4.8
		// "nested subroutine captures are rolled back").
		saved := s.groups
		snapshot := cloneCaptures(saved)
		s.groups = snapshot
		ok := s.coreMatch(atom.Target, pos, func(e int) bool {
			s.groups = saved
			if k(e) {
				return true
			}
			s.groups = snapshot
			return false
		})
		s.groups = saved
		return ok
	}
	return false
}

func (s *session) matchStringOnce(atom *matcher.Atom, pos int) (int, bool) {
	n := len(atom.Bytes)
	if pos+n > len(s.input) {
		return 0, false
	}
	if !bytes.Equal(s.input[pos:pos+n], atom.Bytes) {
		return 0, false
	}
	return pos + n, true
}

// wordBoundary reports whether pos sits between a word byte and a
// non-word byte (or string edge), per spec.md §4.7.3 "WordAnchor".
// Word characters are all ASCII, so testing raw bytes against the
// word class is safe even though it skips a full UTF-8 decode: a
// multi-byte sequence's lead/continuation bytes never fall in a word
// class's ranges.
func (s *session) wordBoundary(pos int) bool {
	before := pos > 0 && isWordByte(s.input[pos-1])
	after := pos < len(s.input) && isWordByte(s.input[pos])
	return before != after
}

func isWordByte(b byte) bool {
	return charclass.IsWordChar(uint32(b))
}
