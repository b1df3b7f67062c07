// Package backtrack implements spec.md §4.6-§4.8: the execution engine
// that walks a compiled matcher.Core/Branch/Atom graph against an
// input buffer, the capture store it fills in, and the explicit
// backtrack-depth accounting that bounds it.
package backtrack

import "github.com/coregx/backre/matcher"

// Limits caps how much backtracking work a single MatchAt call may do
// before it gives up and reports no match, guarding against
// pathological patterns on adversarial input (spec.md §9). Either
// field left at zero means unlimited.
type Limits struct {
	MaxBacktrackSteps int
	MaxRecursionDepth int
}

// Matcher executes one compiled pattern's graph against arbitrary
// input positions. A Matcher is immutable after New and safe for
// concurrent use; each MatchAt call builds its own session, but the
// capture store can be supplied by the caller (MatchAtInto) so the
// engine package can pool it across searches.
type Matcher struct {
	Root      *matcher.Core
	NumGroups int
	Limits    Limits
}

// New wraps a Factory-built graph for execution. numGroups is the
// total capture-slot count Parse returned (groups 0..numGroups-1).
func New(root *matcher.Core, numGroups int) *Matcher {
	return &Matcher{Root: root, NumGroups: numGroups}
}

// MatchAt attempts exactly one match of m's pattern anchored at pos
// (no leftmost scanning — that is engine.Engine's job, spec.md §4.9).
// On success it returns the filled capture store (slot 0 is the whole
// match), the number of backtrack steps taken, and true; on failure,
// or if the step/depth budget in m.Limits is exhausted first, it
// returns (nil, steps, false).
func (m *Matcher) MatchAt(input []byte, pos int) ([]Capture, int, bool) {
	groups := m.NewCaptures()
	ok, steps := m.MatchAtInto(input, pos, groups)
	if !ok {
		return nil, steps, false
	}
	return groups, steps, true
}

// NewCaptures returns a capture store sized for m's pattern, every
// slot Unset. Callers that want to reuse an allocation across many
// MatchAtInto calls (engine's sync.Pool-backed search state) hold onto
// the returned slice and pass it back in.
func (m *Matcher) NewCaptures() []Capture {
	groups := make([]Capture, m.NumGroups)
	for i := range groups {
		groups[i] = Capture{Unset, Unset}
	}
	return groups
}

// MatchAtInto is MatchAt without the capture-store allocation: groups
// must already have length m.NumGroups and is overwritten in place.
// Returns whether the match succeeded and how many backtrack steps it
// took (for Stats wiring).
func (m *Matcher) MatchAtInto(input []byte, pos int, groups []Capture) (bool, int) {
	for i := range groups {
		groups[i] = Capture{Unset, Unset}
	}

	s := &session{
		input:    input,
		head:     0,
		groups:   groups,
		stack:    NewStack(),
		maxSteps: m.Limits.MaxBacktrackSteps,
		maxDepth: m.Limits.MaxRecursionDepth,
	}

	var end int
	ok := s.coreMatch(m.Root, pos, func(e int) bool {
		end = e
		return true
	})
	if !ok {
		return false, s.steps
	}
	groups[0] = Capture{pos, end}
	return true, s.steps
}
