package token

// TokenStream is a doubly-linked, ordered sequence of Tokens. It is the
// output of the parser's grammar rules before the Factory lowers it into
// a matcher graph, and it is also the payload of Group/Atomic/Lookahead/
// NLookahead tokens (their nested sub-pattern).
type TokenStream struct {
	front, back *Token
	size        int
}

// New returns an empty TokenStream.
func New() *TokenStream {
	return &TokenStream{}
}

// Size returns the number of tokens in the stream.
func (s *TokenStream) Size() int { return s.size }

// Empty reports whether the stream has no tokens.
func (s *TokenStream) Empty() bool { return s.size == 0 }

// Front returns the first token, or nil if the stream is empty.
func (s *TokenStream) Front() *Token { return s.front }

// Back returns the last token, or nil if the stream is empty.
func (s *TokenStream) Back() *Token { return s.back }

// PushBack appends t to the end of the stream. t must not already
// belong to a stream.
func (s *TokenStream) PushBack(t *Token) {
	t.owner = s
	t.prev = s.back
	t.next = nil
	if s.back != nil {
		s.back.next = t
	} else {
		s.front = t
	}
	s.back = t
	s.size++
}

// PushFront prepends t to the start of the stream. t must not already
// belong to a stream.
func (s *TokenStream) PushFront(t *Token) {
	t.owner = s
	t.next = s.front
	t.prev = nil
	if s.front != nil {
		s.front.prev = t
	} else {
		s.back = t
	}
	s.front = t
	s.size++
}

// PopFront removes and returns the first token, or nil if the stream is
// empty.
func (s *TokenStream) PopFront() *Token {
	t := s.front
	if t == nil {
		return nil
	}
	s.front = t.next
	if s.front != nil {
		s.front.prev = nil
	} else {
		s.back = nil
	}
	t.next, t.prev, t.owner = nil, nil, nil
	s.size--
	return t
}

// InsertAfter inserts t immediately after node. If node is nil, t is
// inserted at the front of the stream.
func (s *TokenStream) InsertAfter(node, t *Token) {
	if node == nil {
		s.PushFront(t)
		return
	}
	t.owner = s
	t.prev = node
	t.next = node.next
	if node.next != nil {
		node.next.prev = t
	} else {
		s.back = t
	}
	node.next = t
	s.size++
}

// Remove unlinks t from the stream. t must belong to s.
func (s *TokenStream) Remove(t *Token) {
	if t.prev != nil {
		t.prev.next = t.next
	} else {
		s.front = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	} else {
		s.back = t.prev
	}
	t.prev, t.next, t.owner = nil, nil, nil
	s.size--
}

// Slice detaches the contiguous run [first,last] (inclusive) from s and
// returns it as a new, independent TokenStream. s is re-linked across
// the gap so the token preceding first becomes adjacent to the token
// following last.
func (s *TokenStream) Slice(first, last *Token) *TokenStream {
	before := first.prev
	after := last.next

	if before != nil {
		before.next = after
	} else {
		s.front = after
	}
	if after != nil {
		after.prev = before
	} else {
		s.back = before
	}

	first.prev = nil
	last.next = nil

	out := New()
	out.front, out.back = first, last
	n := 0
	for t := first; t != nil; t = t.next {
		t.owner = out
		n++
		if t == last {
			break
		}
	}
	out.size = n
	s.size -= n
	return out
}

// Free detaches all tokens from the stream without following nested
// sub-streams or owned payloads (see FreeDeep for the recursive form).
func (s *TokenStream) Free() {
	s.front, s.back, s.size = nil, nil, 0
}

// FreeDeep recursively frees nested token payloads: sub-streams inside
// Group/Atomic/Lookahead/NLookahead tokens are freed depth-first before
// the stream itself is cleared. CharClasses, literal codepoints, and
// string bytes are owned by their token and released with it (Go's
// garbage collector reclaims them once unreferenced; FreeDeep exists to
// mirror the explicit-ownership lifecycle spec.md §3 describes).
func (s *TokenStream) FreeDeep() {
	for t := s.front; t != nil; t = t.next {
		if t.Sub != nil {
			t.Sub.FreeDeep()
			t.Sub = nil
		}
		t.Class = nil
		t.Bytes = nil
	}
	s.Free()
}

// Each calls f for every token in the stream, front to back.
func (s *TokenStream) Each(f func(*Token)) {
	for t := s.front; t != nil; t = t.next {
		f(t)
	}
}
