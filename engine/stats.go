package engine

import "sync/atomic"

// Stats tracks execution counters for one compiled Engine, useful for
// performance analysis and for diagnosing pathological patterns.
// Fields are updated with atomic operations so concurrent searches on
// the same Engine never race; read them with Snapshot, not directly.
type Stats struct {
	Searches        uint64
	Matches         uint64
	PrefilterHits   uint64
	PrefilterMisses uint64
	BacktrackSteps  uint64
	BacktrackAborts uint64
}

func (s *Stats) addSearch()        { atomic.AddUint64(&s.Searches, 1) }
func (s *Stats) addMatch()         { atomic.AddUint64(&s.Matches, 1) }
func (s *Stats) addPrefilterHit()  { atomic.AddUint64(&s.PrefilterHits, 1) }
func (s *Stats) addPrefilterMiss() { atomic.AddUint64(&s.PrefilterMisses, 1) }
func (s *Stats) addSteps(n int)    { atomic.AddUint64(&s.BacktrackSteps, uint64(n)) }
func (s *Stats) addAbort()         { atomic.AddUint64(&s.BacktrackAborts, 1) }

// Snapshot returns a point-in-time copy of s, safe to read without
// racing against concurrent searches still updating the live Stats.
func (s *Stats) Snapshot() Stats {
	return Stats{
		Searches:        atomic.LoadUint64(&s.Searches),
		Matches:         atomic.LoadUint64(&s.Matches),
		PrefilterHits:   atomic.LoadUint64(&s.PrefilterHits),
		PrefilterMisses: atomic.LoadUint64(&s.PrefilterMisses),
		BacktrackSteps:  atomic.LoadUint64(&s.BacktrackSteps),
		BacktrackAborts: atomic.LoadUint64(&s.BacktrackAborts),
	}
}

// Reset zeroes every counter in place.
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.Searches, 0)
	atomic.StoreUint64(&s.Matches, 0)
	atomic.StoreUint64(&s.PrefilterHits, 0)
	atomic.StoreUint64(&s.PrefilterMisses, 0)
	atomic.StoreUint64(&s.BacktrackSteps, 0)
	atomic.StoreUint64(&s.BacktrackAborts, 0)
}
