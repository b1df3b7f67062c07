package backtrack

// Unset marks a capture slot that did not participate in a match,
// either because its group never matched or because it is still being
// attempted (spec.md §3 "Capture store", §4.7.1 step 2).
const Unset = -1

// Capture is one {begin,end} byte-offset pair into the caller-owned
// input buffer. Slot 0 always holds the whole match on success; slot i
// holds capturing group i.
type Capture struct {
	Begin, End int
}

// cloneCaptures returns an independent copy of groups, used to give a
// Subroutine call its own isolated capture store (spec.md §4.8
// "nested subroutine captures are rolled back").
func cloneCaptures(groups []Capture) []Capture {
	out := make([]Capture, len(groups))
	copy(out, groups)
	return out
}
