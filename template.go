package backre

import "strconv"

// expandTemplate appends template to dst, expanding group references
// and returning the result. Two reference syntaxes are recognized,
// mirroring stdlib regexp's Expand plus the spec's replace-template
// grammar:
//
//	$$        literal '$'
//	$1, $12   group by number
//	$name     group by name (the longest run of letters, digits and '_')
//	${name}   group by number or name, braces required when the
//	          following byte could otherwise extend the name/number
//	\g<n>     group n (spec syntax)
//	\g<name>  named group (spec syntax)
//	\k<n>     group n (spec syntax, \k is stdlib regexp's backreference
//	          spelling carried into templates for symmetry)
//	\k<name>  named group (spec syntax)
//
// An out-of-range or unmatched group reference expands to nothing,
// matching stdlib regexp's Expand behavior for unmatched groups.
func (re *Regex) expandTemplate(dst []byte, template []byte, m *Match) []byte {
	for len(template) > 0 {
		i := indexAny(template, '$', '\\')
		if i < 0 {
			return append(dst, template...)
		}
		dst = append(dst, template[:i]...)
		template = template[i:]

		if template[0] == '$' {
			dst, template = expandDollar(dst, template, m)
		} else {
			dst, template = expandBackslash(dst, template, m)
		}
	}
	return dst
}

func indexAny(b []byte, chars ...byte) int {
	for i, c := range b {
		for _, want := range chars {
			if c == want {
				return i
			}
		}
	}
	return -1
}

// expandDollar consumes a '$'-led reference from the front of s and
// appends its expansion to dst, returning both and the unconsumed
// remainder of s.
func expandDollar(dst []byte, s []byte, m *Match) ([]byte, []byte) {
	if len(s) < 2 {
		return append(dst, s...), nil
	}
	if s[1] == '$' {
		return append(dst, '$'), s[2:]
	}
	if s[1] == '{' {
		end := indexAny(s[2:], '}')
		if end < 0 {
			return append(dst, s...), nil
		}
		name := string(s[2 : 2+end])
		dst = appendGroupRef(dst, name, m)
		return dst, s[2+end+1:]
	}

	j := 1
	for j < len(s) && (isDigit(s[j]) || s[j] == '_' || (s[j]|0x20 >= 'a' && s[j]|0x20 <= 'z')) {
		j++
	}
	if j == 1 {
		return append(dst, s[0]), s[1:]
	}
	dst = appendGroupRef(dst, string(s[1:j]), m)
	return dst, s[j:]
}

// expandBackslash consumes a '\g<...>' or '\k<...>' reference from the
// front of s. Any other backslash escape is copied through literally
// (templates are not patterns; a lone backslash has no other meaning).
func expandBackslash(dst []byte, s []byte, m *Match) ([]byte, []byte) {
	if len(s) < 4 || (s[1] != 'g' && s[1] != 'k') || s[2] != '<' {
		return append(dst, s[0]), s[1:]
	}
	end := indexAny(s[3:], '>')
	if end < 0 {
		return append(dst, s[0]), s[1:]
	}
	name := string(s[3 : 3+end])
	dst = appendGroupRef(dst, name, m)
	return dst, s[3+end+1:]
}

func appendGroupRef(dst []byte, ref string, m *Match) []byte {
	if n, err := strconv.Atoi(ref); err == nil {
		return append(dst, m.Group(n)...)
	}
	return append(dst, m.NamedGroup(ref)...)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
