package derived

import "github.com/stringozzi-go/stringozzi"

// ruleIdentity is the small identity value hashed into a registry key by
// stringozzi.DigestKey, rather than hand-composing the key string here.
type ruleIdentity struct {
	Name string
}

// cached routes a derived-rule constructor through the shared registry
// (stringozzi.DefaultRegistry, registry.go) so repeated calls to e.g.
// IPv4() return the same compiled Rule graph instead of rebuilding it,
// without resorting to a mutable package-level singleton var. name
// identifies the constructor (e.g. "derived.IPv4"); the actual map key
// is derived from it with stringozzi.DigestKey.
func cached(name string, build func() stringozzi.Rule) stringozzi.Rule {
	key := stringozzi.DigestKey(ruleIdentity{Name: name})
	return stringozzi.DefaultRegistry().Get(key, build)
}
