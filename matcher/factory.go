package matcher

import (
	"fmt"

	"github.com/coregx/backre/token"
)

// pendingSubroutine records a SubroutineAtom whose Target back-reference
// could not be filled in during the single front-to-back walk that
// builds the graph, because the Core it targets may not exist yet
// (spec.md §4.5, §9 "Subroutine back-edges form cycles").
type pendingSubroutine struct {
	atom   *Atom
	target int
}

// Factory lowers a token.TokenStream into a Core/Branch/Atom matcher
// graph (spec.md §4.5).
type Factory struct {
	pending []pendingSubroutine
}

// Build lowers stream (the parser's top-level output) into a root Core
// and resolves every Subroutine atom's back-reference against it.
func Build(stream *token.TokenStream) (*Core, error) {
	f := &Factory{}
	root := f.buildCore(stream, 0)

	for _, ps := range f.pending {
		resolved := FindCore(root, ps.target)
		if resolved == nil {
			return nil, fmt.Errorf("matcher: unresolved subroutine target %d", ps.target)
		}
		ps.atom.Target = resolved
	}

	return root, nil
}

// buildCore lowers one token.TokenStream (the root stream, or a
// Group/Atomic/LookAhead token's Sub) into a Core named groupIndex,
// walking front-to-back and starting a new Branch at each ALTERNATOR.
func (f *Factory) buildCore(stream *token.TokenStream, groupIndex int) *Core {
	core := &Core{GroupIndex: groupIndex}
	branch := &Branch{}
	core.Branches = branch

	for t := stream.Front(); t != nil; t = t.Next() {
		switch t.Kind {
		case token.Alternator:
			next := &Branch{}
			branch.Next = next
			branch = next

		case token.RangeQuant:
			last := lastAtom(branch)
			last.Min, last.Max = t.Min, t.Max

		case token.Lazy:
			lastAtom(branch).Greedy = false

		case token.Possessive:
			panic("matcher: unresolved POSSESSIVE token reached Factory (weedeat should have rewritten it)")

		default:
			branch.Atoms = append(branch.Atoms, f.buildAtom(t))
		}
	}

	return core
}

// lastAtom returns the most recently appended atom on b, the target a
// following RANGE/LAZY token mutates in place (spec.md §4.5).
func lastAtom(b *Branch) *Atom {
	return b.Atoms[len(b.Atoms)-1]
}

// buildAtom lowers a single non-quantifier token into its Atom form.
func (f *Factory) buildAtom(t *token.Token) *Atom {
	switch t.Kind {
	case token.String:
		a := newAtom(StringAtom)
		a.Bytes = t.Bytes
		return a

	case token.Class:
		a := newAtom(ClassAtom)
		a.Class = t.Class
		a.Invert = t.Negated
		return a

	case token.Group:
		a := newAtom(GroupAtom)
		a.Group = f.buildCore(t.Sub, t.GroupNumber)
		return a

	case token.Atomic:
		a := newAtom(AtomicAtom)
		a.Group = f.buildCore(t.Sub, t.GroupNumber)
		return a

	case token.Lookahead:
		a := newAtom(LookAheadAtom)
		a.Group = f.buildCore(t.Sub, t.GroupNumber)
		return a

	case token.NLookahead:
		a := newAtom(LookAheadAtom)
		a.Invert = true
		a.Group = f.buildCore(t.Sub, t.GroupNumber)
		return a

	case token.Reference:
		a := newAtom(BackreferenceAtom)
		a.RefIndex = t.RefIndex
		return a

	case token.Subroutine:
		a := newAtom(SubroutineAtom)
		a.RefIndex = t.RefIndex
		f.pending = append(f.pending, pendingSubroutine{atom: a, target: t.RefIndex})
		return a

	case token.WordAnch:
		return newAtom(WordAnchorAtom)

	case token.NWordAnch:
		a := newAtom(WordAnchorAtom)
		a.Invert = true
		return a

	case token.StAnch:
		a := newAtom(EdgeAnchorAtom)
		a.Invert = true
		return a

	case token.EdgeAnch:
		return newAtom(EdgeAnchorAtom)

	case token.Empty:
		return newAtom(StringAtom) // zero-width, always matches

	default:
		panic(fmt.Sprintf("matcher: unexpected token kind %v reached Factory", t.Kind))
	}
}
