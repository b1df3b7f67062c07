// Package backre provides a backtracking regular expression engine for
// Go: subroutine calls, possessive and atomic quantifiers, Unicode
// character-class set algebra (union/intersection/difference), and a
// bounded backtracker that trades raw throughput for these extended
// Perl-ish features while still guaranteeing forward progress on
// adversarial input.
//
// The public API mirrors stdlib regexp where the semantics coincide
// (leftmost-first matching, []byte/string method pairs, Submatch/Index
// naming) so existing code can often switch packages with only an
// import change.
//
// Basic usage:
//
//	re, err := backre.Compile(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("age 42") {
//	    fmt.Println(re.FindString("age 42")) // "42"
//	}
//
// Extended syntax beyond stdlib regexp:
//
//	backre.MustCompile(`(?<word>\w+)\k<word>`)  // named backreference
//	backre.MustCompile(`(?>a+)+b`)              // atomic group
//	backre.MustCompile(`a++`)                   // possessive quantifier
//	backre.MustCompile(`(a)(?1)`)               // subroutine call
//	backre.MustCompile(`[a-z&&[^aeiou]]+`)      // class intersection
//
// Limitations: no lookbehind, no multiline (?m) mode, no case-folding
// flags; leftmost-first (Perl) semantics only, never leftmost-longest.
package backre

import "github.com/coregx/backre/engine"

// Regex represents a compiled regular expression.
//
// A Regex is immutable after Compile and safe for concurrent use,
// except for ResetStats.
//
// Example:
//
//	re := backre.MustCompile(`hello`)
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
type Regex struct {
	eng     *engine.Engine
	pattern string
}

// Compile compiles pattern into a Regex using DefaultConfig.
//
// Example:
//
//	re, err := backre.Compile(`\d{3}-\d{4}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	e, err := engine.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{eng: e, pattern: pattern}, nil
}

// MustCompile is like Compile but panics if pattern fails to compile.
// Intended for patterns known valid at init time.
//
// Example:
//
//	var emailPattern = backre.MustCompile(`[a-z]+@[a-z]+\.[a-z]+`)
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("backre: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied Config,
// overriding backtracking limits or prefilter behavior.
//
// Example:
//
//	config := backre.DefaultConfig()
//	config.MaxBacktrackSteps = 10_000
//	re, err := backre.CompileWithConfig(`(a*)*b`, config)
func CompileWithConfig(pattern string, config engine.Config) (*Regex, error) {
	e, err := engine.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{eng: e, pattern: pattern}, nil
}

// DefaultConfig returns the engine configuration Compile uses.
func DefaultConfig() engine.Config {
	return engine.DefaultConfig()
}

// String returns the source text re was compiled from.
func (re *Regex) String() string {
	return re.pattern
}

// NumSubexp returns the number of capturing groups, not counting group
// 0 (the entire match).
//
// Example:
//
//	re := backre.MustCompile(`(\w+)@(\w+)\.(\w+)`)
//	re.NumSubexp() // 3
func (re *Regex) NumSubexp() int {
	return re.eng.NumCaptures() - 1
}

// SubexpNames returns the names of re's capturing groups, group 0
// first (always ""). Unnamed groups are also "".
func (re *Regex) SubexpNames() []string {
	return re.eng.SubexpNames()
}

// SubexpIndex returns the capture slot for a named group, or -1 if no
// group by that name exists.
func (re *Regex) SubexpIndex(name string) int {
	return re.eng.SubexpIndex(name)
}

// Stats returns a snapshot of re's execution counters.
func (re *Regex) Stats() engine.Stats {
	return re.eng.Stats()
}

// ResetStats zeroes re's execution counters.
func (re *Regex) ResetStats() {
	re.eng.ResetStats()
}

// Match reports whether b contains any match of re.
func (re *Regex) Match(b []byte) bool {
	return re.eng.IsMatch(b)
}

// MatchString reports whether s contains any match of re.
func (re *Regex) MatchString(s string) bool {
	return re.eng.IsMatch([]byte(s))
}

// Find returns the leftmost match in b, or nil if there is none.
func (re *Regex) Find(b []byte) []byte {
	start, end, ok := re.eng.Find(b)
	if !ok {
		return nil
	}
	return b[start:end]
}

// FindString returns the leftmost match in s, or "" if there is none.
// Use FindStringIndex to distinguish "no match" from "matched empty
// string".
func (re *Regex) FindString(s string) string {
	start, end, ok := re.eng.Find([]byte(s))
	if !ok {
		return ""
	}
	return s[start:end]
}

// FindIndex returns the [start, end) byte offsets of the leftmost
// match in b, or nil if there is none.
func (re *Regex) FindIndex(b []byte) []int {
	start, end, ok := re.eng.Find(b)
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is FindIndex for a string argument.
func (re *Regex) FindStringIndex(s string) []int {
	return re.FindIndex([]byte(s))
}

// FindMatch returns the leftmost match as a *Match carrying full
// capture data, or nil if there is none (spec's Match object: get(),
// num_groups(), offset(), group(i), named_group(name)).
func (re *Regex) FindMatch(b []byte) *Match {
	idx, ok := re.eng.FindSubmatch(b)
	if !ok {
		return nil
	}
	return newMatch(re, b, idx)
}

// FindSubmatch returns the leftmost match and its capture groups.
// Result[0] is the whole match, result[i] the i-th group; an
// unmatched group is nil.
func (re *Regex) FindSubmatch(b []byte) [][]byte {
	m := re.FindMatch(b)
	if m == nil {
		return nil
	}
	return m.groupBytes()
}

// FindStringSubmatch is FindSubmatch for a string argument, returning
// strings instead of byte slices.
func (re *Regex) FindStringSubmatch(s string) []string {
	m := re.FindMatch([]byte(s))
	if m == nil {
		return nil
	}
	return m.groupStrings()
}

// FindSubmatchIndex returns index pairs for the whole match and every
// capture group, flattened: result[2*i:2*i+2] is group i's [start,
// end). An unmatched group is [-1, -1]. Returns nil if there is no
// match.
func (re *Regex) FindSubmatchIndex(b []byte) []int {
	idx, ok := re.eng.FindSubmatch(b)
	if !ok {
		return nil
	}
	return idx
}

// FindStringSubmatchIndex is FindSubmatchIndex for a string argument.
func (re *Regex) FindStringSubmatchIndex(s string) []int {
	return re.FindSubmatchIndex([]byte(s))
}

// FindAll returns all successive non-overlapping matches in b. n < 0
// returns every match; n >= 0 caps the result at n matches. Returns
// nil if there are no matches.
func (re *Regex) FindAll(b []byte, n int) [][]byte {
	locs := re.FindAllIndex(b, n)
	if locs == nil {
		return nil
	}
	out := make([][]byte, len(locs))
	for i, loc := range locs {
		out[i] = b[loc[0]:loc[1]]
	}
	return out
}

// FindAllString is FindAll for a string argument.
func (re *Regex) FindAllString(s string, n int) []string {
	locs := re.FindAllIndex([]byte(s), n)
	if locs == nil {
		return nil
	}
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = s[loc[0]:loc[1]]
	}
	return out
}

// FindAllIndex returns the [start, end) offsets of all successive
// non-overlapping matches in b. An empty match immediately following
// the previous match is skipped rather than reported twice at the same
// boundary (stdlib regexp's FindAll rule); every other zero-length
// match still advances the scan by one byte so it always terminates.
func (re *Regex) FindAllIndex(b []byte, n int) [][]int {
	if n == 0 {
		return nil
	}
	var out [][]int
	pos, prevEnd := 0, -1
	for pos <= len(b) {
		start, end, ok := re.eng.FindAt(b, pos)
		if !ok {
			break
		}

		empty := end == start
		adjacent := empty && start == prevEnd
		if !adjacent {
			out = append(out, []int{start, end})
			if n > 0 && len(out) >= n {
				break
			}
		}
		prevEnd = end

		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
	return out
}

// FindAllStringIndex is FindAllIndex for a string argument.
func (re *Regex) FindAllStringIndex(s string, n int) [][]int {
	return re.FindAllIndex([]byte(s), n)
}
