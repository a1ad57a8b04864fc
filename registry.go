package stringozzi

import (
	"sync"

	"github.com/cnf/structhash"
)

// Registry replaces mutable package-level rule singletons with a lazily
// initialized, build-on-first-use cache. Instead of a package-level var
// per derived rule, callers hand the registry a build function; the
// first call constructs the rule graph and every later call with the
// same key returns the same Rule handle, so cyclic/shared subgraphs are
// built exactly once per key.
//
// Keys are hashed with structhash (github.com/cnf/structhash) to derive
// a stable string key for the memoization map from a small identity
// struct rather than composing a key by hand.
type Registry struct {
	mu    sync.Mutex
	once  map[string]*sync.Once
	rules map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		once:  make(map[string]*sync.Once),
		rules: make(map[string]Rule),
	}
}

// Get returns the Rule registered for key, building it via build on the
// first call for that key. Concurrent calls for the same key block on
// the same sync.Once, so a shared rule graph is constructed exactly once
// even under concurrent first use by contexts running on distinct
// goroutines.
func (r *Registry) Get(key string, build func() Rule) Rule {
	r.mu.Lock()
	once, ok := r.once[key]
	if !ok {
		once = &sync.Once{}
		r.once[key] = once
	}
	r.mu.Unlock()

	once.Do(func() {
		rule := build()
		r.mu.Lock()
		r.rules[key] = rule
		r.mu.Unlock()
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rules[key]
}

// DigestKey hashes an arbitrary identity value (typically the derived
// constructor's name plus its parameters) into a stable registry key.
func DigestKey(identity interface{}) string {
	hash, err := structhash.Hash(identity, 1)
	if err != nil {
		// structhash only fails on unhashable types (channels, funcs);
		// identity values here are always plain structs/strings, but
		// degrade to a fixed key rather than propagate a construction
		// panic.
		return "digest-error"
	}
	return hash
}

// defaultRegistry is the process-wide registry used by derived.*
// functions' memoizing wrappers (see derived/registry.go), so repeated
// calls to e.g. derived.IPv4() share one compiled graph without
// reintroducing a package-level mutable var.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the shared process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
