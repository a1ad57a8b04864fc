package stringozzi

import "github.com/coregx/ahocorasick"

// TextSet is a phrase-set leaf primitive: it matches the phrase the
// automaton reports starting at the cursor (the longest of any phrases
// sharing a common prefix, mirroring the trie's deepest-node output).
// This generalizes In(set)'s single-rune set to multi-rune alternatives
// without paying a linear/binary-search cost on every check — the
// automaton is built once, at construction, and reused on every match.
type TextSet struct {
	phrases []string
	auto    *ahocorasick.Automaton
}

// NewTextSet compiles phrases into a reusable Aho-Corasick automaton. A
// nil or empty phrase is dropped defensively: malformed construction
// input degrades to an always-failing alternative rather than panicking.
func NewTextSet(phrases ...string) *TextSet {
	ts := &TextSet{}
	builder := ahocorasick.NewBuilder()
	any := false
	for _, p := range phrases {
		if p == "" {
			continue
		}
		ts.phrases = append(ts.phrases, p)
		builder.AddPattern([]byte(p))
		any = true
	}
	if !any {
		return ts
	}
	auto, err := builder.Build()
	if err != nil {
		// Construction-time failure degrades to an always-failing set
		// rather than propagating a panic.
		return ts
	}
	ts.auto = auto
	return ts
}

// Rule wraps the set as a matching Rule.
func (ts *TextSet) Rule() Rule {
	return wrap(textSetNode{ts: ts})
}

type textSetNode struct {
	ts *TextSet
}

func (p textSetNode) check(ctx *Context) bool {
	if p.ts == nil || p.ts.auto == nil {
		return false
	}
	ctx.AdjustPosition()
	start := ctx.Position()
	haystack := ctx.TextBytes()
	if start >= len(haystack) {
		return false
	}
	// Find reports the automaton's next match at or after start, the same
	// anchored-search shape coregx-coregex's literal-engine bypass uses
	// (meta/find.go's findAhoCorasickAt); we only accept it if it begins
	// exactly at the cursor.
	m := p.ts.auto.Find(haystack, start)
	if m == nil || m.Start != start {
		return false
	}
	ctx.SetPosition(m.End)
	ctx.AddMatch(start)
	return true
}

func (p textSetNode) String() string {
	if p.ts == nil {
		return "TextSet()"
	}
	return "TextSet(" + joinQuoted(p.ts.phrases) + ")"
}

func joinQuoted(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += "\"" + s + "\""
	}
	return out
}
