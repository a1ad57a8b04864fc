package stringozzi

import "fmt"

// Reserved capture keys.
const (
	// UnnamedKey collects every primitive-success span when collect-unnamed
	// is enabled.
	UnnamedKey = "<MATCHES>"

	// ExtractDefaultKey is used by Extract when no explicit key is given.
	ExtractDefaultKey = "<UNNAMED>"
)

// span is a half-open [start, end) byte range into the matched text.
type span struct {
	start, end int
}

// Captures is the capture collector: an ordered mapping from key to the
// spans recorded under it, plus a lazily materialized substring cache.
// Spans are appended in the order they are produced.
type Captures struct {
	text  string
	spans map[string][]span
	cache map[string][]string
}

func newCaptures(text string) *Captures {
	return &Captures{text: text}
}

// addUnnamed records an unnamed span, but only a non-empty one: spec
// §4.1 gives add_match(start) the `end > start` qualifier.
func (c *Captures) addUnnamed(key string, start, end int) {
	if end <= start {
		return
	}
	c.add(key, start, end)
}

// addNamed records a named span unconditionally, including zero-width
// ones: spec §4.1 gives add_match(key, start) no length qualifier, and
// original_source/include/Stringozzi.h's AddMatch(key, start) confirms
// the split against its unnamed sibling.
func (c *Captures) addNamed(key string, start, end int) {
	c.add(key, start, end)
}

func (c *Captures) add(key string, start, end int) {
	if c.spans == nil {
		c.spans = make(map[string][]span)
	}
	c.spans[key] = append(c.spans[key], span{start, end})
	if c.cache != nil {
		delete(c.cache, key)
	}
}

// captureMark is a snapshot of every key's span count, taken before
// entering a matcher so its captures can be rolled back if it ultimately
// fails: a capture produced by a matcher that later fails must never
// survive in the collector. Collecting eagerly and truncating on failure
// avoids deferring every write until the whole match is known to succeed.
type captureMark map[string]int

func (c *Captures) mark() captureMark {
	if len(c.spans) == 0 {
		return nil
	}
	m := make(captureMark, len(c.spans))
	for k, v := range c.spans {
		m[k] = len(v)
	}
	return m
}

// truncate discards every span appended to any key since m was taken.
func (c *Captures) truncate(m captureMark) {
	if len(c.spans) == 0 {
		return
	}
	for k, v := range c.spans {
		want := m[k]
		if len(v) > want {
			if want == 0 {
				delete(c.spans, k)
			} else {
				c.spans[k] = v[:want]
			}
			if c.cache != nil {
				delete(c.cache, k)
			}
		}
	}
}

// Count returns the number of distinct keys with at least one capture.
func (c *Captures) Count() int {
	return len(c.spans)
}

// CountKey returns the number of spans recorded under key.
func (c *Captures) CountKey(key string) int {
	return len(c.spans[key])
}

// Get returns the index-th captured substring under key, lazily
// materialized from the source text, or ("", false) if absent.
func (c *Captures) Get(key string, index int) (string, bool) {
	spans, ok := c.spans[key]
	if !ok || index < 0 || index >= len(spans) {
		return "", false
	}

	if c.cache == nil {
		c.cache = make(map[string][]string)
	}
	strs, ok := c.cache[key]
	if !ok {
		strs = make([]string, len(spans))
		for i, s := range spans {
			strs[i] = c.text[s.start:s.end]
		}
		c.cache[key] = strs
	}
	return strs[index], true
}

// Keys returns the distinct capture keys, in no particular order.
func (c *Captures) Keys() []string {
	keys := make([]string, 0, len(c.spans))
	for k := range c.spans {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all captures.
func (c *Captures) Clear() {
	c.spans = nil
	c.cache = nil
}

type extractNode struct {
	a   Matcher
	key string
}

// Extract runs a; on success, records the span it consumed under the
// given key (ExtractDefaultKey if key is omitted), independent of
// FlagCollectUnnamed: extraction is always recorded when the subordinate
// match succeeds, gated only by FlagCollectNamed.
func Extract(a Rule, key ...string) Rule {
	k := ExtractDefaultKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}
	return wrap(extractNode{a: a.m, key: k})
}

func (p extractNode) check(ctx *Context) bool {
	start := ctx.Position()
	if !ctx.call(p.a) {
		ctx.SetPosition(start)
		return false
	}
	ctx.AddNamedMatch(p.key, start)
	return true
}

func (p extractNode) String() string {
	return fmt.Sprintf("Extract(%s, %q)", Rule{p.a}, p.key)
}
