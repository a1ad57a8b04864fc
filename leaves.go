package stringozzi

import (
	"fmt"
)

// Leaf primitives (spec §4.3). Is, IsText, In, Between and Any apply
// AdjustPosition before testing and, on success, record an unnamed
// capture of the exact span they consumed. InChain records its span
// without adjusting first; the zero-width Beginning, True and False do
// neither.

type isRune struct {
	c rune
}

// Is matches exactly one code point equal to c.
func Is(c rune) Rule {
	return wrap(isRune{c: c})
}

func (p isRune) check(ctx *Context) bool {
	ctx.AdjustPosition()
	start := ctx.Position()
	if ctx.Compare(p.c) != 0 {
		return false
	}
	ctx.Forward()
	ctx.AddMatch(start)
	return true
}

func (p isRune) String() string {
	return fmt.Sprintf("Is(%q)", p.c)
}

type isText struct {
	phrase []rune
}

// IsText matches the exact phrase, code point by code point.
func IsText(phrase string) Rule {
	return wrap(isText{phrase: []rune(phrase)})
}

func (p isText) check(ctx *Context) bool {
	ctx.AdjustPosition()
	start := ctx.Position()
	for _, c := range p.phrase {
		if ctx.Compare(c) != 0 {
			ctx.SetPosition(start)
			return false
		}
		ctx.Forward()
	}
	ctx.AddMatch(start)
	return true
}

func (p isText) String() string {
	return fmt.Sprintf("IsText(%q)", string(p.phrase))
}

type inSet struct {
	runes []rune
}

// In matches one code point if it appears in set.
func In(set string) Rule {
	return wrap(inSet{runes: []rune(set)})
}

func (p inSet) check(ctx *Context) bool {
	if len(p.runes) == 0 {
		// Defensive per spec §7: a malformed In("") degrades to an
		// always-failing rule instead of panicking.
		ctx.lastErr = errEmptyRuneSet
		return false
	}
	ctx.AdjustPosition()
	start := ctx.Position()
	r, ok := ctx.Get()
	if !ok {
		return false
	}
	for _, c := range p.runes {
		if r == ctx.fold(c) {
			ctx.Forward()
			ctx.AddMatch(start)
			return true
		}
	}
	return false
}

func (p inSet) String() string {
	return fmt.Sprintf("In(%q)", string(p.runes))
}

type betweenRange struct {
	lo, hi rune
}

// Between matches one code point c with lo <= c <= hi (under case-fold).
func Between(lo, hi rune) Rule {
	if hi < lo {
		lo, hi = hi, lo
	}
	return wrap(betweenRange{lo: lo, hi: hi})
}

func (p betweenRange) check(ctx *Context) bool {
	ctx.AdjustPosition()
	start := ctx.Position()
	if p.lo < 0x80 && p.hi < 0x80 && !ctx.flags.Has(FlagCaseInsensitive) &&
		start < len(ctx.text) && ctx.text[start] < 0x80 {
		// Single-byte ASCII range: the fast path coregx-coregex's own
		// prefilters widen first on SSE4.2-capable hosts (cpufeatures.go).
		if !asciiRangeFast(ctx.text[start], byte(p.lo), byte(p.hi)) {
			return false
		}
		ctx.Forward()
		ctx.AddMatch(start)
		return true
	}
	r, ok := ctx.Get()
	if !ok {
		return false
	}
	if r < p.lo || r > p.hi {
		return false
	}
	ctx.Forward()
	ctx.AddMatch(start)
	return true
}

func (p betweenRange) String() string {
	return fmt.Sprintf("Between(%q,%q)", p.lo, p.hi)
}

type anyRune struct{}

// Any matches one code point; it fails at end of text.
var Any = wrap(anyRune{})

func (anyRune) check(ctx *Context) bool {
	ctx.AdjustPosition()
	start := ctx.Position()
	if !ctx.Forward() {
		return false
	}
	ctx.AddMatch(start)
	return true
}

func (anyRune) String() string {
	return "Any"
}

type beginningOfText struct{}

// Beginning succeeds iff the cursor sits at the context's origin; it
// never consumes.
var Beginning = wrap(beginningOfText{})

func (beginningOfText) check(ctx *Context) bool {
	return ctx.AtBeginning()
}

func (beginningOfText) String() string {
	return "Beginning"
}

type trueNode struct{}

// True always succeeds without consuming; the identity element for Seq.
var True = wrap(trueNode{})

func (trueNode) check(ctx *Context) bool { return true }

func (trueNode) String() string { return "True" }

type falseNode struct{}

// False always fails without consuming; the identity element for Alt.
var False = wrap(falseNode{})

func (falseNode) check(ctx *Context) bool { return false }

func (falseNode) String() string { return "False" }

type inChain struct{}

// InChain consumes one code point c iff the preceding code point equals
// c - 1 (spec §4.3): a run-building primitive used to recognize
// consecutive/ascending sequences such as "ABC".
var InChain = wrap(inChain{})

func (inChain) check(ctx *Context) bool {
	c, ok := ctx.Get()
	if !ok {
		return false
	}
	if !ctx.Backward() {
		return false
	}
	p, ok := ctx.Get()
	ctx.Forward()
	if !ok {
		return false
	}
	if p+1 != c {
		return false
	}
	start := ctx.Position()
	ctx.Forward()
	ctx.AddMatch(start)
	return true
}

func (inChain) String() string {
	return "InChain"
}
