package backre

// ReplaceAll returns a copy of src with each non-overlapping match of
// re replaced by the expansion of template. Inside template, $name and
// ${name} expand to the named or numbered capture group, $$ is a
// literal $, and \g<n>/\g<name>/\k<n>/\k<name> are accepted as
// equivalent spellings (see expandTemplate).
func (re *Regex) ReplaceAll(src, template []byte) []byte {
	return re.replace(src, func(dst []byte, m *Match) []byte {
		return re.expandTemplate(dst, template, m)
	})
}

// ReplaceAllString is ReplaceAll for string arguments.
func (re *Regex) ReplaceAllString(src, template string) string {
	return string(re.ReplaceAll([]byte(src), []byte(template)))
}

// ReplaceAllLiteral returns a copy of src with each non-overlapping
// match of re replaced by repl verbatim, with no template expansion.
func (re *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	return re.replace(src, func(dst []byte, _ *Match) []byte {
		return append(dst, repl...)
	})
}

// ReplaceAllLiteralString is ReplaceAllLiteral for string arguments.
func (re *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(re.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src with each non-overlapping match
// of re replaced by the return value of fn, called with the matched
// bytes.
func (re *Regex) ReplaceAllFunc(src []byte, fn func([]byte) []byte) []byte {
	return re.replace(src, func(dst []byte, m *Match) []byte {
		return append(dst, fn(m.Get())...)
	})
}

// ReplaceAllStringFunc is ReplaceAllFunc for a string argument and a
// string-returning function.
func (re *Regex) ReplaceAllStringFunc(src string, fn func(string) string) string {
	b := re.ReplaceAllFunc([]byte(src), func(m []byte) []byte {
		return []byte(fn(string(m)))
	})
	return string(b)
}

// replace walks src's non-overlapping matches, copying the unmatched
// stretches through unchanged and calling emit for each match's
// replacement text; emit appends to and returns dst.
func (re *Regex) replace(src []byte, emit func(dst []byte, m *Match) []byte) []byte {
	var out []byte
	pos := 0
	for pos <= len(src) {
		idx, ok := re.eng.FindSubmatchAt(src, pos)
		if !ok {
			break
		}
		start, end := idx[0], idx[1]
		out = append(out, src[pos:start]...)
		out = emit(out, newMatch(re, src, idx))

		if end > start {
			pos = end
		} else {
			if end < len(src) {
				out = append(out, src[end])
			}
			pos = end + 1
		}
	}
	out = append(out, src[min(pos, len(src)):]...)
	return out
}
