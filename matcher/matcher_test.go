package matcher_test

import (
	"testing"

	"github.com/coregx/backre/matcher"
	"github.com/coregx/backre/parser"
	"github.com/coregx/backre/token"
)

func build(t *testing.T, pattern string) *matcher.Core {
	t.Helper()
	stream, _, _, err := parser.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	core, err := matcher.Build(stream)
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", pattern, err)
	}
	return core
}

func TestBuildSingleBranch(t *testing.T) {
	core := build(t, "abc")
	if core.Branches == nil || core.Branches.Next != nil {
		t.Fatalf("expected exactly one branch, got chain %+v", core.Branches)
	}
	if len(core.Branches.Atoms) != 1 || core.Branches.Atoms[0].Kind != matcher.StringAtom {
		t.Fatalf("atoms = %+v, want single StringAtom", core.Branches.Atoms)
	}
}

func TestBuildAlternationProducesBranchChain(t *testing.T) {
	core := build(t, "a|b|c")
	var n int
	for b := core.Branches; b != nil; b = b.Next {
		n++
		if len(b.Atoms) != 1 || b.Atoms[0].Kind != matcher.StringAtom {
			t.Fatalf("branch %d atoms = %+v", n, b.Atoms)
		}
	}
	if n != 3 {
		t.Fatalf("branch count = %d, want 3", n)
	}
}

func TestBuildQuantifierSetsMinMax(t *testing.T) {
	core := build(t, "a{2,4}")
	atom := core.Branches.Atoms[0]
	if atom.Min != 2 || atom.Max != 4 {
		t.Fatalf("atom min/max = %d/%d, want 2/4", atom.Min, atom.Max)
	}
}

func TestBuildLazyClearsGreedy(t *testing.T) {
	core := build(t, "a*?")
	atom := core.Branches.Atoms[0]
	if atom.Greedy {
		t.Fatal("expected Greedy=false after lazy suffix")
	}
}

func TestBuildGroupNestsCore(t *testing.T) {
	core := build(t, "(ab)")
	atom := core.Branches.Atoms[0]
	if atom.Kind != matcher.GroupAtom {
		t.Fatalf("kind = %v, want GroupAtom", atom.Kind)
	}
	if atom.Group == nil || atom.Group.GroupIndex != 1 {
		t.Fatalf("nested core = %+v, want GroupIndex 1", atom.Group)
	}
}

func TestBuildPossessiveRewrittenToAtomicIsPreserved(t *testing.T) {
	core := build(t, "a++")
	atom := core.Branches.Atoms[0]
	if atom.Kind != matcher.AtomicAtom {
		t.Fatalf("kind = %v, want AtomicAtom", atom.Kind)
	}
	inner := atom.Group.Branches.Atoms[0]
	if inner.Kind != matcher.ClassAtom {
		t.Fatalf("inner kind = %v, want ClassAtom", inner.Kind)
	}
	if inner.Min != 1 || inner.Max != token.Unbounded {
		t.Fatalf("inner min/max = %d/%d, want 1/%d", inner.Min, inner.Max, token.Unbounded)
	}
}

func TestBuildSubroutineResolvesToTargetGroup(t *testing.T) {
	core := build(t, `(a)(?1)`)
	// branch atoms: [GroupAtom(1), SubroutineAtom]
	atoms := core.Branches.Atoms
	if len(atoms) != 2 {
		t.Fatalf("atoms = %+v, want 2", atoms)
	}
	group, sub := atoms[0], atoms[1]
	if group.Kind != matcher.GroupAtom || sub.Kind != matcher.SubroutineAtom {
		t.Fatalf("kinds = %v, %v", group.Kind, sub.Kind)
	}
	if sub.Target == nil {
		t.Fatal("subroutine Target unresolved")
	}
	if sub.Target != group.Group {
		t.Fatal("subroutine Target does not point at the referenced group's Core")
	}
}

func TestFindCoreLocatesNestedGroup(t *testing.T) {
	core := build(t, `(a(b))`)
	inner := matcher.FindCore(core, 2)
	if inner == nil || inner.GroupIndex != 2 {
		t.Fatalf("FindCore(2) = %+v", inner)
	}
}

func TestFindCoreAfterForwardSubroutine(t *testing.T) {
	// A subroutine call appearing before its target still resolves via
	// the Factory's two-pass build, and FindCore still locates the
	// target group afterwards without following the resolved Target
	// edge.
	core := build(t, `(?1)(a)`)
	inner := matcher.FindCore(core, 1)
	if inner == nil || inner.GroupIndex != 1 {
		t.Fatalf("FindCore(1) = %+v", inner)
	}
}
