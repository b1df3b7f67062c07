package backre

// Scanner iterates over successive non-overlapping matches of a Regex
// against one haystack, yielding a *Match per call until the haystack
// is exhausted. A zero-length match advances the scan position by one
// byte before the next Next call, so scanning always terminates
// (spec's Scanner rule).
//
// Example:
//
//	sc := re.Scan([]byte("hello world"))
//	for {
//	    m, ok := sc.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(m.String())
//	}
type Scanner struct {
	re       *Regex
	haystack []byte
	pos      int
	done     bool
}

// Scan returns a Scanner over re's successive matches in haystack.
func (re *Regex) Scan(haystack []byte) *Scanner {
	return &Scanner{re: re, haystack: haystack}
}

// Next returns the next match, or ok=false once no more matches remain
// (including once the scan position has passed the end of the
// haystack).
func (s *Scanner) Next() (*Match, bool) {
	if s.done || s.pos > len(s.haystack) {
		return nil, false
	}

	idx, ok := s.re.eng.FindSubmatchAt(s.haystack, s.pos)
	if !ok {
		s.done = true
		return nil, false
	}

	m := newMatch(s.re, s.haystack, idx)
	if idx[1] > idx[0] {
		s.pos = idx[1]
	} else {
		s.pos = idx[1] + 1
	}
	return m, true
}
