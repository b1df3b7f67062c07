package backre

// Match is a successful match against a particular haystack, carrying
// the whole-match text plus every capture group's position. It
// implements the spec's match object (get/num_groups/offset/group/
// named_group) under Go-idiomatic names.
//
// A Match holds a reference to the haystack it was found in (not a
// copy); callers that need the bytes to outlive the haystack should
// copy them.
type Match struct {
	re       *Regex
	haystack []byte
	idx      []int // flattened [start0, end0, start1, end1, ...]
}

func newMatch(re *Regex, haystack []byte, idx []int) *Match {
	return &Match{re: re, haystack: haystack, idx: idx}
}

// Get returns the matched substring (group 0).
func (m *Match) Get() []byte {
	return m.Group(0)
}

// String returns the matched substring (group 0) as a string.
func (m *Match) String() string {
	return string(m.Get())
}

// NumGroups returns the number of capture slots, including slot 0.
func (m *Match) NumGroups() int {
	return len(m.idx) / 2
}

// Offset returns the byte offset of the whole match from the start of
// the haystack it was found in.
func (m *Match) Offset() int {
	return m.idx[0]
}

// End returns the byte offset one past the end of the whole match.
func (m *Match) End() int {
	return m.idx[1]
}

// Group returns capture group i's matched bytes, or nil if group i did
// not participate in the match (or i is out of range).
func (m *Match) Group(i int) []byte {
	if i < 0 || i >= m.NumGroups() {
		return nil
	}
	start, end := m.idx[2*i], m.idx[2*i+1]
	if start < 0 || end < 0 {
		return nil
	}
	return m.haystack[start:end]
}

// GroupString is Group as a string.
func (m *Match) GroupString(i int) string {
	g := m.Group(i)
	if g == nil {
		return ""
	}
	return string(g)
}

// GroupIndex returns group i's [start, end) offsets, or nil if group i
// did not participate or is out of range.
func (m *Match) GroupIndex(i int) []int {
	if i < 0 || i >= m.NumGroups() {
		return nil
	}
	start, end := m.idx[2*i], m.idx[2*i+1]
	if start < 0 || end < 0 {
		return nil
	}
	return []int{start, end}
}

// NamedGroup returns the matched bytes of the group named name, or nil
// if no such group exists or it did not participate.
func (m *Match) NamedGroup(name string) []byte {
	idx := m.re.SubexpIndex(name)
	if idx < 0 {
		return nil
	}
	return m.Group(idx)
}

// NamedGroupString is NamedGroup as a string.
func (m *Match) NamedGroupString(name string) string {
	g := m.NamedGroup(name)
	if g == nil {
		return ""
	}
	return string(g)
}

func (m *Match) groupBytes() [][]byte {
	out := make([][]byte, m.NumGroups())
	for i := range out {
		out[i] = m.Group(i)
	}
	return out
}

func (m *Match) groupStrings() []string {
	out := make([]string, m.NumGroups())
	for i := range out {
		out[i] = m.GroupString(i)
	}
	return out
}
