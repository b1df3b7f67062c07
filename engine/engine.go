package engine

import (
	"github.com/coregx/backre/backtrack"
	"github.com/coregx/backre/internal/codec"
	"github.com/coregx/backre/internal/cpufeature"
	"github.com/coregx/backre/matcher"
	"github.com/coregx/backre/parser"
)

// Engine orchestrates one compiled pattern: the backtracking matcher
// graph, an optional literal prefilter, and pooled per-search state.
//
// Thread safety: an Engine is immutable after Compile; concurrent
// goroutines may call Find/FindAt/IsMatch/FindSubmatch on the same
// Engine, each search borrowing its own pooled capture slice.
type Engine struct {
	stats Stats

	matcher     *backtrack.Matcher
	prefilter   *literalPrefilter
	statePool   *searchStatePool
	config      Config
	names       map[string]int
	subexpNames []string

	isStartAnchored bool
}

// Compile compiles pattern with DefaultConfig.
//
// Example:
//
//	e, err := engine.Compile(`(\w+)@(\w+)\.com`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with a caller-supplied Config.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	stream, names, numGroups, err := parser.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	root, err := matcher.Build(stream)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	m := backtrack.New(root, numGroups)
	m.Limits = backtrack.Limits{
		MaxBacktrackSteps: config.MaxBacktrackSteps,
		MaxRecursionDepth: config.MaxRecursionDepth,
	}

	e := &Engine{
		matcher:         m,
		config:          config,
		names:           names,
		subexpNames:     subexpNamesFrom(names, numGroups),
		isStartAnchored: isAnchoredStart(root),
	}
	e.statePool = newSearchStatePool(m)

	if config.EnablePrefilter {
		e.prefilter = buildPrefilter(root, config.MinLiteralLen)
	}

	return e, nil
}

// subexpNamesFrom inverts the parser's name->index table into the
// index->name slice regexp.SubexpNames callers expect: slot 0 (the
// whole match) is always "".
func subexpNamesFrom(names map[string]int, numGroups int) []string {
	out := make([]string, numGroups)
	for name, idx := range names {
		if idx >= 0 && idx < numGroups {
			out[idx] = name
		}
	}
	return out
}

func isAnchoredStart(root *matcher.Core) bool {
	if root == nil || root.Branches == nil {
		return false
	}
	for b := root.Branches; b != nil; b = b.Next {
		if len(b.Atoms) == 0 {
			return false
		}
		a := b.Atoms[0]
		if a.Kind != matcher.EdgeAnchorAtom || !a.Invert {
			return false
		}
	}
	return true
}

// NumCaptures returns the number of capture slots, including slot 0
// (the whole match).
func (e *Engine) NumCaptures() int {
	return e.matcher.NumGroups
}

// SubexpNames returns one entry per capture slot; unnamed groups (and
// slot 0) are "".
func (e *Engine) SubexpNames() []string {
	return e.subexpNames
}

// SubexpIndex returns the capture slot for a named group, or -1 if no
// group by that name exists.
func (e *Engine) SubexpIndex(name string) int {
	if idx, ok := e.names[name]; ok {
		return idx
	}
	return -1
}

// Stats returns a snapshot of e's execution counters.
func (e *Engine) Stats() Stats {
	return e.stats.Snapshot()
}

// ResetStats zeroes e's execution counters.
func (e *Engine) ResetStats() {
	e.stats.Reset()
}

// IsMatch reports whether pattern matches anywhere in haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, ok := e.Find(haystack)
	return ok
}

// Find returns the leftmost match's [start, end) in haystack, or
// ok=false if pattern does not occur.
func (e *Engine) Find(haystack []byte) (start, end int, ok bool) {
	return e.FindAt(haystack, 0)
}

// FindAt finds the leftmost match starting the scan at byte offset at,
// preserving absolute positions so ^ and \b still check against the
// true start of haystack (not a resliced view).
func (e *Engine) FindAt(haystack []byte, at int) (start, end int, ok bool) {
	groups, matched := e.findAt(haystack, at)
	if !matched {
		return 0, 0, false
	}
	return groups[0].Begin, groups[0].End, true
}

// FindSubmatch is Find plus capture positions, flattened the way
// stdlib regexp's FindSubmatchIndex is: 2*NumCaptures ints, pairs
// (begin, end) per slot in group-index order, slot 0 first. A group
// that never participated gets (-1, -1).
func (e *Engine) FindSubmatch(haystack []byte) ([]int, bool) {
	return e.FindSubmatchAt(haystack, 0)
}

// FindSubmatchAt is FindAt plus capture positions; see FindSubmatch.
func (e *Engine) FindSubmatchAt(haystack []byte, at int) ([]int, bool) {
	groups, matched := e.findAt(haystack, at)
	if !matched {
		return nil, false
	}
	out := make([]int, 2*len(groups))
	for i, g := range groups {
		out[2*i] = g.Begin
		out[2*i+1] = g.End
	}
	return out, true
}

// findAt runs the leftmost scan shared by FindAt and FindSubmatchAt. On
// success the returned slice is a fresh copy of the pooled capture
// state, owned by the caller; the pooled state itself is returned to
// e's pool before findAt returns.
func (e *Engine) findAt(haystack []byte, at int) ([]backtrack.Capture, bool) {
	if at > len(haystack) || (at > 0 && e.isStartAnchored) {
		return nil, false
	}

	state := e.statePool.get()
	e.stats.addSearch()

	asciiFast := e.config.EnableASCIIFastPath && cpufeature.ASCIIFastPath() && isASCII(haystack[at:])

	for pos := at; pos <= len(haystack); {
		if e.prefilter != nil {
			cand, found := e.prefilter.candidateAt(haystack, pos)
			if !found {
				e.stats.addPrefilterMiss()
				e.statePool.put(state)
				return nil, false
			}
			e.stats.addPrefilterHit()
			pos = cand
		}

		matched, steps := e.matcher.MatchAtInto(haystack, pos, state.groups)
		e.stats.addSteps(steps)
		if matched {
			e.stats.addMatch()
			groups := make([]backtrack.Capture, len(state.groups))
			copy(groups, state.groups)
			e.statePool.put(state)
			return groups, true
		}
		if e.isStartAnchored {
			break
		}
		pos = scanAdvance(haystack, pos, asciiFast)
	}
	e.statePool.put(state)
	return nil, false
}

// isASCII reports whether every byte in b is < 0x80. Used once per
// search (not per position) to decide whether the scan cursor can
// advance a byte at a time without ever landing mid-codepoint.
func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// scanAdvance moves the leftmost-scan cursor past one candidate start
// position: a single byte when the remaining haystack is known ASCII,
// or one decoded codepoint otherwise, so the scan never retries inside
// a multi-byte UTF-8 sequence.
func scanAdvance(haystack []byte, pos int, asciiFast bool) int {
	if asciiFast {
		return pos + 1
	}
	_, n := codec.Decode(haystack[pos:])
	if n <= 0 {
		n = 1
	}
	return pos + n
}

// CompileError reports a failure to parse or lower a pattern.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return "backre: error parsing pattern `" + e.Pattern + "`: " + e.Err.Error()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
