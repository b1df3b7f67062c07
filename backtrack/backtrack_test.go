package backtrack_test

import (
	"testing"

	"github.com/coregx/backre/backtrack"
	"github.com/coregx/backre/matcher"
	"github.com/coregx/backre/parser"
)

func compile(t *testing.T, pattern string) *backtrack.Matcher {
	t.Helper()
	stream, _, n, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	core, err := matcher.Build(stream)
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", pattern, err)
	}
	return backtrack.New(core, n)
}

// search tries MatchAt at every start position, the same leftmost
// scan the engine package performs, and returns the first hit.
func search(m *backtrack.Matcher, input string) ([]backtrack.Capture, int, bool) {
	b := []byte(input)
	for start := 0; start <= len(b); start++ {
		if groups, _, ok := m.MatchAt(b, start); ok {
			return groups, start, true
		}
	}
	return nil, 0, false
}

func TestLiteralMatch(t *testing.T) {
	m := compile(t, "abc")
	groups, _, ok := search(m, "xxabcyy")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].Begin != 2 || groups[0].End != 5 {
		t.Fatalf("whole match = %+v, want {2,5}", groups[0])
	}
}

func TestGreedyVsLazyQuantifier(t *testing.T) {
	greedy := compile(t, "a.*b")
	groups, _, ok := search(greedy, "axbxb")
	if !ok || groups[0].End != 5 {
		t.Fatalf("greedy match = %+v, want full-length match", groups)
	}

	lazy := compile(t, "a.*?b")
	groups, _, ok = search(lazy, "axbxb")
	if !ok || groups[0].End != 3 {
		t.Fatalf("lazy match = %+v, want shortest match ending at 3", groups)
	}
}

func TestAlternationBacktracksIntoGroup(t *testing.T) {
	// (b|c)* must consume "bcbc" then let 'd' match; requires
	// repeatedly re-entering the nested core across repeats.
	m := compile(t, "a(b|c)*d")
	groups, _, ok := search(m, "abcbcd")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].Begin != 0 || groups[0].End != 6 {
		t.Fatalf("whole match = %+v, want {0,6}", groups[0])
	}
	if groups[1].Begin != 4 || groups[1].End != 5 {
		t.Fatalf("group 1 (last repeat) = %+v, want {4,5} (\"c\")", groups[1])
	}
}

func TestBackreference(t *testing.T) {
	m := compile(t, `(\w+) \1`)
	groups, _, ok := search(m, "hello hello world")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].End != 11 {
		t.Fatalf("whole match end = %d, want 11", groups[0].End)
	}
}

func TestUnsetBackreferenceFails(t *testing.T) {
	m := compile(t, `(a)?\1b`)
	_, _, ok := search(m, "b")
	if ok {
		t.Fatal("expected no match: \\1 refers to a group that never participated")
	}
}

func TestAtomicGroupPreventsCatastrophicBacktracking(t *testing.T) {
	// (?>a+)+b against a run of a's with no trailing b must fail fast
	// instead of exploring every split of the outer a+ against the
	// atomic inner a+ (the classic catastrophic-backtracking shape).
	m := compile(t, `(?>a+)+b`)
	_, _, ok := search(m, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac")
	if ok {
		t.Fatal("expected no match")
	}
}

func TestPossessiveQuantifierRejectsBacktrack(t *testing.T) {
	m := compile(t, `a++a`)
	_, _, ok := search(m, "aaa")
	if ok {
		t.Fatal("possessive a++ should consume all a's leaving none for the trailing literal a")
	}
}

func TestSubroutineCall(t *testing.T) {
	m := compile(t, `(a)(?1)(?1)`)
	groups, _, ok := search(m, "aaa")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].End != 3 {
		t.Fatalf("whole match end = %d, want 3", groups[0].End)
	}
}

func TestRecursivePattern(t *testing.T) {
	// a(?R)?b matches an 'a', optionally recurses into the whole
	// pattern, then matches a 'b': balanced a^n b^n via self-recursion.
	m := compile(t, `a(?R)?b`)
	groups, _, ok := search(m, "aaabbb")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].Begin != 0 || groups[0].End != 6 {
		t.Fatalf("whole match = %+v, want {0,6}", groups[0])
	}
}

func TestWordBoundaryScanning(t *testing.T) {
	m := compile(t, `\bcat\b`)
	cases := []struct {
		input string
		want  bool
	}{
		{"a cat sat", true},
		{"concatenate", false},
		{"cat", true},
	}
	for _, c := range cases {
		_, _, ok := search(m, c.input)
		if ok != c.want {
			t.Errorf("search(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestNestedClassIntersection(t *testing.T) {
	m := compile(t, `[a-z&&[^aeiou]]+`)
	groups, _, ok := search(m, "rhythm")
	if !ok {
		t.Fatal("expected match")
	}
	if groups[0].Begin != 0 || groups[0].End != len("rhythm") {
		t.Fatalf("whole match = %+v, want full consonant run", groups[0])
	}
}

func TestAnchors(t *testing.T) {
	m := compile(t, `^abc$`)
	if _, _, ok := search(m, "abc"); !ok {
		t.Error("^abc$ should match exactly \"abc\"")
	}
	if _, _, ok := search(m, "xabc"); ok {
		t.Error("^ should not match mid-string")
	}
	if _, _, ok := search(m, "abcx"); ok {
		t.Error("$ should not match mid-string")
	}
}

func TestLookaround(t *testing.T) {
	pos := compile(t, `a(?=b)`)
	groups, _, ok := search(pos, "ab")
	if !ok || groups[0].End != 1 {
		t.Fatalf("positive lookahead should not consume 'b': groups=%+v", groups)
	}
	if _, _, ok := search(pos, "ac"); ok {
		t.Error("a(?=b) should not match \"ac\"")
	}

	neg := compile(t, `a(?!b)`)
	if _, _, ok := search(neg, "ab"); ok {
		t.Error("a(?!b) should not match \"ab\"")
	}
	if _, _, ok := search(neg, "ac"); !ok {
		t.Error("a(?!b) should match \"ac\"")
	}
}

func TestBacktrackStepLimit(t *testing.T) {
	m := compile(t, `(a*)*b`)
	m.Limits.MaxBacktrackSteps = 50
	_, _, ok := m.MatchAt([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac"), 0)
	if ok {
		t.Fatal("expected the step budget to abort this pathological match")
	}
}
