package engine

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/backre/matcher"
)

// literalPrefilter accelerates the leftmost scan for patterns whose
// entire top level is an alternation of fixed literals (no quantifier,
// no nested group): "foo|bar|baz" can only start a match at an offset
// one of those three strings occurs at, so scanning ahead with an
// Aho-Corasick automaton skips every position that can't possibly
// begin a match before the backtracker is ever invoked there.
//
// This is a candidate-position accelerator, not a second matching
// strategy: the backtracker still runs (and still fills captures) at
// every candidate offset the automaton reports.
type literalPrefilter struct {
	automaton *ahocorasick.Automaton
}

// buildPrefilter inspects root's top-level branches and returns a
// prefilter if every branch is exactly one non-repeating string atom
// at least minLen bytes long. A single branch gains nothing over
// trying the backtracker directly, so at least two are required.
// Returns nil if the pattern doesn't have this shape.
func buildPrefilter(root *matcher.Core, minLen int) *literalPrefilter {
	if root == nil || root.Branches == nil || root.Branches.Next == nil {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for b := root.Branches; b != nil; b = b.Next {
		if len(b.Atoms) != 1 {
			return nil
		}
		atom := b.Atoms[0]
		if atom.Kind != matcher.StringAtom || atom.Min != 1 || atom.Max != 1 {
			return nil
		}
		if len(atom.Bytes) < minLen {
			return nil
		}
		builder.AddPattern(atom.Bytes)
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &literalPrefilter{automaton: automaton}
}

// candidateAt reports the offset of the next literal occurrence at or
// after at, or false if none of the indexed literals occur anywhere
// from at to the end of haystack (ruling out the rest of the search).
func (p *literalPrefilter) candidateAt(haystack []byte, at int) (int, bool) {
	if at >= len(haystack) {
		return 0, false
	}
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}
