package parser

import "github.com/coregx/backre/token"

// badrefCheck recursively walks stream, resolving NAME tokens to a
// group number via names (BADREF if the name is undefined) and
// verifying every REFERENCE/SUBROUTINE group-number is within range.
//
// A resolved Name falls through into the same bounds check a literal
// Reference/Subroutine token gets, so the range rule is expressed
// once. Diagnostic positions for BADREF are approximate (0): tokens
// don't carry their originating byte offset, a tradeoff against the
// added bookkeeping every constructor would otherwise need.
func badrefCheck(s *token.TokenStream, names map[string]int, totalGroups int, pattern string) error {
	for t := s.Front(); t != nil; t = t.Next() {
		if t.Sub != nil {
			if err := badrefCheck(t.Sub, names, totalGroups, pattern); err != nil {
				return err
			}
		}

		switch t.Kind {
		case token.Name:
			groupNum, ok := names[t.Name]
			if !ok {
				return &SyntaxError{Code: BADREF, Pos: 0, Pattern: pattern}
			}
			t.Kind = t.NameKind
			t.RefIndex = groupNum
			t.Name = ""
			fallthrough

		case token.Reference, token.Subroutine:
			if t.RefIndex < 0 || t.RefIndex >= totalGroups {
				return &SyntaxError{Code: BADREF, Pos: 0, Pattern: pattern}
			}
		}
	}
	return nil
}
