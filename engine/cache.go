package engine

import "sync"

// pattern cache: keyed by source string, storing engines compiled with
// DefaultConfig. Given explicit Init/Teardown rather than a hidden
// package-level init(), so the public API can take an engine handle and
// avoid surprising global state for callers who never call Compile.
var (
	cacheMu      sync.RWMutex
	cacheEnabled bool
	cacheEntries map[string]*Engine
)

// InitCache enables the global pattern cache. Compiling the same
// pattern string twice with CompileCached after this call reuses the
// already-compiled Engine instead of parsing and lowering again.
func InitCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheEnabled = true
	if cacheEntries == nil {
		cacheEntries = make(map[string]*Engine)
	}
}

// TeardownCache disables and empties the global pattern cache.
// CompileCached falls back to compiling fresh on every call until
// InitCache is called again.
func TeardownCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cacheEnabled = false
	cacheEntries = nil
}

// CompileCached compiles pattern with DefaultConfig, returning a cached
// Engine if the cache is enabled and pattern was compiled before.
// Custom configurations always bypass the cache (CompileWithConfig),
// since two callers using the same pattern with different limits must
// not share one compiled Engine's Config.
func CompileCached(pattern string) (*Engine, error) {
	cacheMu.RLock()
	if cacheEnabled {
		if e, ok := cacheEntries[pattern]; ok {
			cacheMu.RUnlock()
			return e, nil
		}
	}
	cacheMu.RUnlock()

	e, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if cacheEnabled {
		if existing, ok := cacheEntries[pattern]; ok {
			return existing, nil
		}
		cacheEntries[pattern] = e
	}
	return e, nil
}
