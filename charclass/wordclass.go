package charclass

import "sync"

var (
	wordOnce  sync.Once
	wordClass *CharClass
	wordMu    sync.RWMutex
)

// InitWordClass builds the package-level word-characters singleton
// (`[A-Za-z0-9_]`) used by the \w/\W token classes and the WordAnchor
// primitive. Safe to call more than once; subsequent calls are no-ops
// until TeardownWordClass is called.
//
// spec.md §9 notes the word_characters singleton as global state needing
// an explicit init/teardown lifecycle rather than a hidden package
// init(); this is that lifecycle.
func InitWordClass() {
	wordOnce.Do(func() {
		c := New()
		c.InsertRange('0', '9')
		c.InsertRange('A', 'Z')
		c.InsertRange('a', 'z')
		c.InsertCodepoint('_')
		wordMu.Lock()
		wordClass = c
		wordMu.Unlock()
	})
}

// TeardownWordClass releases the word-characters singleton, allowing a
// subsequent InitWordClass call to rebuild it.
func TeardownWordClass() {
	wordMu.Lock()
	wordClass = nil
	wordMu.Unlock()
	wordOnce = sync.Once{}
}

// WordClass returns the word-characters singleton, initializing it on
// first use if InitWordClass was never called explicitly.
func WordClass() *CharClass {
	InitWordClass()
	wordMu.RLock()
	defer wordMu.RUnlock()
	return wordClass
}

// IsWordChar reports whether cp is a member of the word-characters
// class. Convenience wrapper around WordClass().Search used by the
// WordAnchor primitive and the parser's \w/\W class construction.
func IsWordChar(cp uint32) bool {
	return WordClass().Search(cp)
}
