package token

import "testing"

func collect(s *TokenStream) []Kind {
	var out []Kind
	s.Each(func(t *Token) { out = append(out, t.Kind) })
	return out
}

func TestPushBackOrder(t *testing.T) {
	s := New()
	s.PushBack(NewLiteral('a'))
	s.PushBack(NewSimple(Alternator))
	s.PushBack(NewLiteral('b'))

	got := collect(s)
	want := []Kind{Literal, Alternator, Literal}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if s.Front().Kind != Literal || s.Back().Kind != Literal {
		t.Error("front/back mismatch")
	}
}

func TestPopFront(t *testing.T) {
	s := New()
	s.PushBack(NewLiteral('a'))
	s.PushBack(NewLiteral('b'))

	first := s.PopFront()
	if first.Codepoint != 'a' {
		t.Errorf("PopFront = %c, want a", first.Codepoint)
	}
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1", s.Size())
	}
	if s.Front().Codepoint != 'b' {
		t.Error("front should now be 'b'")
	}
}

func TestInsertAfter(t *testing.T) {
	s := New()
	a := NewLiteral('a')
	c := NewLiteral('c')
	s.PushBack(a)
	s.PushBack(c)

	b := NewLiteral('b')
	s.InsertAfter(a, b)

	got := collect(s)
	if len(got) != 3 {
		t.Fatalf("Size() = %d, want 3", s.Size())
	}
	if s.Front().Next().Codepoint != 'b' {
		t.Error("insert-after placement wrong")
	}
	if b.Next() != c || c.Prev() != b {
		t.Error("linkage broken after InsertAfter")
	}
}

func TestInsertAfterNilInsertsFront(t *testing.T) {
	s := New()
	s.PushBack(NewLiteral('b'))
	s.InsertAfter(nil, NewLiteral('a'))
	if s.Front().Codepoint != 'a' {
		t.Error("InsertAfter(nil, ...) should insert at front")
	}
}

func TestSliceDetachesAndRelinks(t *testing.T) {
	s := New()
	toks := []*Token{NewLiteral('a'), NewLiteral('b'), NewLiteral('c'), NewLiteral('d')}
	for _, tok := range toks {
		s.PushBack(tok)
	}

	mid := s.Slice(toks[1], toks[2]) // detach b,c
	if mid.Size() != 2 {
		t.Fatalf("sliced stream size = %d, want 2", mid.Size())
	}
	if s.Size() != 2 {
		t.Fatalf("remaining stream size = %d, want 2", s.Size())
	}
	if s.Front().Codepoint != 'a' || s.Back().Codepoint != 'd' {
		t.Error("remaining stream not correctly re-linked")
	}
	if s.Front().Next() != s.Back() {
		t.Error("gap not closed after slice")
	}
}

func TestFreeDeepClearsNestedSubStream(t *testing.T) {
	inner := New()
	inner.PushBack(NewLiteral('x'))
	outer := New()
	outer.PushBack(NewGroupLike(Group, inner, 1))

	outer.FreeDeep()
	if !outer.Empty() {
		t.Error("FreeDeep should clear the outer stream")
	}
	if !inner.Empty() {
		t.Error("FreeDeep should clear the nested sub-stream")
	}
}
