// Package matcher implements the Core/Branch/Atom matcher graph the
// parser's TokenStream is lowered into (spec.md §4.5), and the graph
// types the backtrack package's execution engine walks.
package matcher

import "github.com/coregx/backre/charclass"

// AtomKind identifies which of the primitives in spec.md §3 "Atom" an
// Atom wraps. Only the fields documented for that Kind are meaningful.
type AtomKind uint8

const (
	ClassAtom AtomKind = iota
	StringAtom
	GroupAtom
	AtomicAtom
	BackreferenceAtom
	SubroutineAtom
	LookAheadAtom
	WordAnchorAtom
	EdgeAnchorAtom
)

func (k AtomKind) String() string {
	switch k {
	case ClassAtom:
		return "Class"
	case StringAtom:
		return "String"
	case GroupAtom:
		return "Group"
	case AtomicAtom:
		return "Atomic"
	case BackreferenceAtom:
		return "Backreference"
	case SubroutineAtom:
		return "Subroutine"
	case LookAheadAtom:
		return "LookAhead"
	case WordAnchorAtom:
		return "WordAnchor"
	case EdgeAnchorAtom:
		return "EdgeAnchor"
	default:
		return "Unknown"
	}
}

// Atom is one matching primitive on a Branch, plus the repetition range
// and greediness that control how the execution engine drives it
// (spec.md §3 "Matcher graph", §4.7.3).
//
// An Atom exclusively owns its payload (Class, Bytes, or a nested Core
// via Group) except Subroutine, whose Target is a non-owning
// back-reference resolved by the Factory after the whole graph is
// built (spec.md §4.5, §9).
type Atom struct {
	Kind   AtomKind
	Invert bool
	Greedy bool
	Min    int
	Max    int

	Class    *charclass.CharClass // ClassAtom
	Bytes    []byte                // StringAtom
	Group    *Core                 // GroupAtom, AtomicAtom, LookAheadAtom
	RefIndex int                   // BackreferenceAtom: capture slot; SubroutineAtom: target group index
	Target   *Core                 // SubroutineAtom: resolved back-reference, filled by the Factory's second pass
}

// newAtom returns an Atom defaulted to the non-repeating shape ([1,1],
// greedy) most Kinds start as; repetition tokens mutate Min/Max/Greedy
// afterward.
func newAtom(kind AtomKind) *Atom {
	return &Atom{Kind: kind, Min: 1, Max: 1, Greedy: true}
}

// Branch is one alternative inside a Core: an ordered sequence of
// Atoms, plus a link to the next alternative (spec.md §3 "Branch").
type Branch struct {
	Atoms []*Atom
	Next  *Branch
}

// Core is a compiled subpattern with a group-index (0 for the root,
// ≥1 for a capturing group, <0 for non-capturing) and a linked list of
// alternative Branches (spec.md §3 "Core").
type Core struct {
	GroupIndex int
	Branches   *Branch
}

// FindCore searches root (and every Core reachable through a
// Group/Atomic/LookAhead atom, depth-first) for the Core whose
// GroupIndex equals target. Subroutine atoms are never descended into
// since their Group field is always nil (a resolved call lives in
// Target, which this search does not follow) — exactly the property
// that keeps subroutine back-edges from being traversed during this
// search (spec.md §9).
func FindCore(root *Core, target int) *Core {
	if root == nil {
		return nil
	}
	if root.GroupIndex == target {
		return root
	}
	for b := root.Branches; b != nil; b = b.Next {
		for _, a := range b.Atoms {
			if a.Group != nil {
				if found := FindCore(a.Group, target); found != nil {
					return found
				}
			}
		}
	}
	return nil
}
