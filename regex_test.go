package backre_test

import (
	"testing"

	"github.com/coregx/backre"
)

func TestMatchString(t *testing.T) {
	re := backre.MustCompile(`colou?r`)
	if !re.MatchString("favorite color") {
		t.Error("expected match for \"color\"")
	}
	if re.MatchString("no hit here") {
		t.Error("expected no match")
	}
}

func TestFindAndFindString(t *testing.T) {
	re := backre.MustCompile(`\d+`)
	if got := string(re.Find([]byte("age: 42 years"))); got != "42" {
		t.Errorf("Find = %q, want %q", got, "42")
	}
	if got := re.FindString("age: 42 years"); got != "42" {
		t.Errorf("FindString = %q, want %q", got, "42")
	}
	if got := re.Find([]byte("no digits")); got != nil {
		t.Errorf("Find = %q, want nil", got)
	}
}

func TestFindAllIndex(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		n       int
		want    [][]int
	}{
		{`\d+`, "1 2 3", -1, [][]int{{0, 1}, {2, 3}, {4, 5}}},
		{`\d+`, "1 2 3", 2, [][]int{{0, 1}, {2, 3}}},
		{`\d+`, "1 2 3", 0, nil},
		{`\d+`, "abc", -1, nil},
		{`a`, "aaa", -1, [][]int{{0, 1}, {1, 2}, {2, 3}}},
		{`a*`, "aaa", -1, [][]int{{0, 3}}},
	}

	for _, tt := range tests {
		re := backre.MustCompile(tt.pattern)
		got := re.FindAllIndex([]byte(tt.input), tt.n)
		if !equalIntSlices(got, tt.want) {
			t.Errorf("FindAllIndex(%q, %q, %d) = %v, want %v",
				tt.pattern, tt.input, tt.n, got, tt.want)
		}
	}
}

func TestFindSubmatch(t *testing.T) {
	re := backre.MustCompile(`(\w+)@(\w+)\.(\w+)`)
	got := re.FindStringSubmatch("user@example.com")
	want := []string{"user@example.com", "user", "example", "com"}
	if len(got) != len(want) {
		t.Fatalf("FindStringSubmatch = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFindSubmatchUnmatchedGroupIsNil(t *testing.T) {
	re := backre.MustCompile(`(a)?b`)
	got := re.FindSubmatch([]byte("b"))
	if got[1] != nil {
		t.Errorf("group 1 = %q, want nil (optional group never participated)", got[1])
	}
}

func TestNumSubexpAndSubexpNames(t *testing.T) {
	re := backre.MustCompile(`(?<year>\d{4})-(?<month>\d{2})-(\d{2})`)
	if re.NumSubexp() != 3 {
		t.Fatalf("NumSubexp = %d, want 3", re.NumSubexp())
	}
	names := re.SubexpNames()
	if names[0] != "" || names[1] != "year" || names[2] != "month" || names[3] != "" {
		t.Fatalf("SubexpNames = %v", names)
	}
}

func TestFindMatchAccessors(t *testing.T) {
	re := backre.MustCompile(`(?<name>\w+)=(\d+)`)
	m := re.FindMatch([]byte("count=42"))
	if m == nil {
		t.Fatal("expected a match")
	}
	if m.String() != "count=42" {
		t.Errorf("Get() = %q, want %q", m.String(), "count=42")
	}
	if m.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", m.Offset())
	}
	if m.NumGroups() != 3 {
		t.Fatalf("NumGroups() = %d, want 3", m.NumGroups())
	}
	if got := m.GroupString(2); got != "42" {
		t.Errorf("Group(2) = %q, want %q", got, "42")
	}
	if got := m.NamedGroupString("name"); got != "count" {
		t.Errorf("NamedGroup(name) = %q, want %q", got, "count")
	}
	if m.NamedGroup("missing") != nil {
		t.Error("NamedGroup(missing) should be nil")
	}
}

func TestAtomicGroupNoCatastrophicBacktracking(t *testing.T) {
	re := backre.MustCompile(`(?>(a+)+)b`)
	if re.MatchString("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaX") {
		t.Fatal("expected no match")
	}
}

func TestWordBoundaryScan(t *testing.T) {
	re := backre.MustCompile(`\b\w+\b`)
	sc := re.Scan([]byte("hello world"))

	m1, ok := sc.Next()
	if !ok || m1.String() != "hello" || m1.Offset() != 0 {
		t.Fatalf("first match = %+v, want \"hello\" at 0", m1)
	}
	m2, ok := sc.Next()
	if !ok || m2.String() != "world" || m2.Offset() != 6 {
		t.Fatalf("second match = %+v, want \"world\" at 6", m2)
	}
	if _, ok := sc.Next(); ok {
		t.Fatal("expected scan to be exhausted")
	}
}

func TestSelfRecursion(t *testing.T) {
	re := backre.MustCompile(`(?R)?a`)
	m := re.FindMatch([]byte("aaa"))
	if m == nil || m.Offset() != 0 || m.String() != "aaa" {
		t.Fatalf("match = %+v, want \"aaa\" at 0", m)
	}
}

func TestClassIntersection(t *testing.T) {
	re := backre.MustCompile(`[a-z&&[^aeiou]]+`)
	if got := re.FindString("rhythm"); got != "rhythm" {
		t.Fatalf("FindString = %q, want %q", got, "rhythm")
	}
}

func TestNamedBackreference(t *testing.T) {
	re := backre.MustCompile(`(?<name>123)\k<name>`)
	m := re.FindMatch([]byte("123123"))
	if m == nil {
		t.Fatal("expected a match")
	}
	if got := m.NamedGroupString("name"); got != "123" {
		t.Fatalf("NamedGroup(name) = %q, want %q", got, "123")
	}
}

func TestNamedBackreferenceGSpelling(t *testing.T) {
	re := backre.MustCompile(`(?<name>123)\g<name>`)
	m := re.FindMatch([]byte("123123"))
	if m == nil || m.String() != "123123" {
		t.Fatalf("match = %+v, want \"123123\"", m)
	}
	if got := m.NamedGroupString("name"); got != "123" {
		t.Fatalf("NamedGroup(name) = %q, want %q", got, "123")
	}
}

func equalIntSlices(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
