// Package engine orchestrates one compiled pattern: parsing, lowering,
// the leftmost search loop over backtrack.Matcher, an optional literal
// prefilter, and pooled per-search capture storage.
package engine

import "fmt"

// Config controls engine behavior: how much backtracking work a single
// search may do before giving up, whether a literal prefilter is built,
// and the ASCII fast-path gate. Mirrors the shape of a multi-strategy
// meta-engine's Config, trimmed to the one execution strategy this
// engine has (the backtracker).
//
// Example:
//
//	config := engine.DefaultConfig()
//	config.EnablePrefilter = false // always run the backtracker directly
//	e, err := engine.CompileWithConfig("(foo|bar)\\d+", config)
type Config struct {
	// MaxBacktrackSteps caps backtracking work per MatchAt call.
	// 0 means unlimited. Default: 1,000,000.
	MaxBacktrackSteps int

	// MaxRecursionDepth caps nested-atom depth per MatchAt call.
	// 0 means unlimited. Default: 10,000.
	MaxRecursionDepth int

	// EnablePrefilter builds an Aho-Corasick literal prefilter for
	// patterns shaped as a pure alternation of literals, and uses it to
	// skip haystack regions that cannot start a match. Default: true.
	EnablePrefilter bool

	// MinLiteralLen is the minimum literal length the prefilter will
	// index; shorter literals have too many false positives to be
	// worth the automaton. Default: 2.
	MinLiteralLen int

	// EnableASCIIFastPath lets the leftmost scan advance its cursor one
	// byte at a time (instead of one decoded codepoint) when the
	// searched haystack is all ASCII and CPU feature detection allows
	// it. The prefilter and word-boundary checks do not consult it.
	// Default: true.
	EnableASCIIFastPath bool
}

// DefaultConfig returns a configuration with sensible defaults: a
// generous but finite backtracking budget, prefiltering on, and the
// ASCII fast path enabled where the host CPU supports it.
func DefaultConfig() Config {
	return Config{
		MaxBacktrackSteps:   1_000_000,
		MaxRecursionDepth:   10_000,
		EnablePrefilter:     true,
		MinLiteralLen:       2,
		EnableASCIIFastPath: true,
	}
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: invalid config: %s: %s", e.Field, e.Message)
}

// Validate checks c's fields are in range, returning a *ConfigError
// naming the first offending field.
func (c Config) Validate() error {
	if c.MaxBacktrackSteps < 0 {
		return &ConfigError{Field: "MaxBacktrackSteps", Message: "must be >= 0"}
	}
	if c.MaxRecursionDepth < 0 {
		return &ConfigError{Field: "MaxRecursionDepth", Message: "must be >= 0"}
	}
	if c.EnablePrefilter && (c.MinLiteralLen < 1 || c.MinLiteralLen > 64) {
		return &ConfigError{Field: "MinLiteralLen", Message: "must be between 1 and 64"}
	}
	return nil
}
