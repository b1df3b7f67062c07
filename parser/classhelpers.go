package parser

import "github.com/coregx/backre/charclass"

// digitClass returns a fresh [0-9] CharClass for \d (the returned
// class is always a private copy, safe for the caller to mutate).
func digitClass() *charclass.CharClass {
	return charclass.NewRange('0', '9')
}

// spaceClass returns a fresh CharClass for \s: the common ASCII
// whitespace set.
func spaceClass() *charclass.CharClass {
	cls := charclass.New()
	cls.InsertCodepoint(' ')
	cls.InsertCodepoint('\t')
	cls.InsertCodepoint('\n')
	cls.InsertCodepoint('\r')
	cls.InsertCodepoint('\f')
	cls.InsertCodepoint('\v')
	return cls
}

// hspaceClass returns a fresh CharClass for \h: horizontal whitespace
// only (space and tab), excluding the line terminators spaceClass
// includes.
func hspaceClass() *charclass.CharClass {
	cls := charclass.New()
	cls.InsertCodepoint(' ')
	cls.InsertCodepoint('\t')
	return cls
}

// lineTerminatorClass returns a fresh CharClass containing the line
// terminators `\0 \r \n \f \v`, the basis of both '.' and `\N`.
func lineTerminatorClass() *charclass.CharClass {
	cls := charclass.New()
	cls.InsertCodepoint(0)
	cls.InsertCodepoint('\r')
	cls.InsertCodepoint('\n')
	cls.InsertCodepoint('\f')
	cls.InsertCodepoint('\v')
	return cls
}

// dotClass returns the basis class for '.': matched with Negated=true
// so it accepts any codepoint except the ones it contains.
func dotClass() *charclass.CharClass {
	return lineTerminatorClass()
}

// wordClassCopy returns an independent copy of the shared word-class
// singleton, safe to attach to a Token or mutate further (e.g. via
// InsertCodepoint(0) for \W's NUL handling during weedeat).
func wordClassCopy() *charclass.CharClass {
	return charclass.WordClass().Copy()
}

// negatedCopy returns an independent copy of cls together with the
// negated flag it was given, unchanged; it does not flip the flag or
// complement the class.
func negatedCopy(cls *charclass.CharClass, negated bool) (*charclass.CharClass, bool) {
	return cls.Copy(), negated
}
