package engine

import (
	"sync"

	"github.com/coregx/backre/backtrack"
)

// searchState is the mutable, per-search scratch an Engine needs: a
// capture-slot slice sized for the pattern's group count. Pooling it
// lets concurrent searches on one Engine avoid a fresh allocation per
// call, mirroring the teacher's sync.Pool-backed per-search state.
type searchState struct {
	groups []backtrack.Capture
}

type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool(m *backtrack.Matcher) *searchStatePool {
	p := &searchStatePool{}
	p.pool.New = func() any {
		return &searchState{groups: m.NewCaptures()}
	}
	return p
}

func (p *searchStatePool) get() *searchState {
	return p.pool.Get().(*searchState)
}

func (p *searchStatePool) put(s *searchState) {
	p.pool.Put(s)
}
