package stringozzi

import "unicode/utf8"

// Flags is the stable wire-value bitset controlling match-time behavior.
// Bit values are part of the public contract and must not be renumbered.
type Flags uint8

const (
	// FlagCaseInsensitive folds ASCII letters in every comparison.
	FlagCaseInsensitive Flags = 0x01

	// FlagCollectNamed enables Extract(..., key) recording.
	FlagCollectNamed Flags = 0x02

	// FlagCollectUnnamed records every primitive success under UnnamedKey.
	FlagCollectUnnamed Flags = 0x04

	// FlagSkipSpaces makes AdjustPosition skip literal U+0020 before every
	// primitive.
	FlagSkipSpaces Flags = 0x08
)

// Has reports whether every bit in mask is set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Context is the per-match mutable state threaded through a rule graph
// traversal: cursor, flags, the named-variable store and the capture
// collector. A Context is never shared between concurrent matches; the
// rule graph it traverses may be.
type Context struct {
	text   string
	cursor int
	origin int

	flags Flags
	vars  map[string]string

	matches *Captures
	limits  Limits
	depth   int
	trace   *frameTrace
	lastErr error

	pcalc     *positionCalculator
	textBytes []byte
}

// NewContext builds a Context over text starting at position 0, with the
// given flags and default Limits.
func NewContext(text string, flags Flags) *Context {
	return NewContextWithLimits(text, flags, DefaultLimits())
}

// NewContextWithLimits is NewContext with explicit recursion/loop guards.
func NewContextWithLimits(text string, flags Flags, limits Limits) *Context {
	ctx := &Context{
		text:    text,
		cursor:  0,
		origin:  0,
		flags:   flags,
		matches: newCaptures(text),
		limits:  limits,
	}
	if limits.Trace {
		ctx.trace = newFrameTrace()
	}
	return ctx
}

// Text returns the full input text the context was constructed over.
func (ctx *Context) Text() string {
	return ctx.text
}

// Position returns the current cursor, a byte offset into Text().
func (ctx *Context) Position() int {
	return ctx.cursor
}

// SetPosition moves the cursor directly. Used by combinators to restore
// the cursor on backtrack.
func (ctx *Context) SetPosition(p int) {
	ctx.cursor = p
}

// AtBeginning reports whether the cursor sits at the context's origin,
// the original start of the match, not just the start of the text.
func (ctx *Context) AtBeginning() bool {
	return ctx.cursor == ctx.origin
}

// Forward advances the cursor by one code point. For 8-bit text this is
// UTF-8 aware; malformed bytes decode to the replacement rune and advance
// by one byte, guaranteeing forward progress. Returns false at end of
// text, leaving the cursor unchanged.
func (ctx *Context) Forward() bool {
	if ctx.cursor >= len(ctx.text) {
		return false
	}
	_, n := utf8.DecodeRuneInString(ctx.text[ctx.cursor:])
	if n == 0 {
		n = 1
	}
	ctx.cursor += n
	return true
}

// Backward moves the cursor back by one code point. Returns false at
// origin, leaving the cursor unchanged.
func (ctx *Context) Backward() bool {
	if ctx.cursor <= ctx.origin {
		return false
	}
	_, n := utf8.DecodeLastRuneInString(ctx.text[ctx.origin:ctx.cursor])
	if n == 0 {
		n = 1
	}
	ctx.cursor -= n
	return true
}

// Get returns the code point under the cursor, case-folded if
// FlagCaseInsensitive is set, or (0, false) at end of text.
func (ctx *Context) Get() (rune, bool) {
	if ctx.cursor >= len(ctx.text) {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(ctx.text[ctx.cursor:])
	if n == 0 {
		r = utf8.RuneError
	}
	return ctx.fold(r), true
}

// Compare compares Get() to c under the current case-fold rule, returning
// -1/0/+1. End of text compares less than any c.
func (ctx *Context) Compare(c rune) int {
	r, ok := ctx.Get()
	if !ok {
		return -1
	}
	c = ctx.fold(c)
	switch {
	case r < c:
		return -1
	case r > c:
		return 1
	default:
		return 0
	}
}

// fold applies an ASCII-only case fold: 'A'..'Z' maps to 'a'..'z',
// everything else is unchanged. Unicode casing is intentionally not
// supported.
func (ctx *Context) fold(r rune) rune {
	if !ctx.flags.Has(FlagCaseInsensitive) {
		return r
	}
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// AdjustPosition skips literal U+0020 (only the space character, not
// tabs or newlines) while FlagSkipSpaces is set, and returns the
// resulting position.
func (ctx *Context) AdjustPosition() int {
	if ctx.flags.Has(FlagSkipSpaces) {
		for ctx.cursor < len(ctx.text) && ctx.text[ctx.cursor] == ' ' {
			ctx.cursor++
		}
	}
	return ctx.cursor
}

// AddMatch records an unnamed capture [start, Position()) if
// FlagCollectUnnamed is set and the span is non-empty.
func (ctx *Context) AddMatch(start int) {
	if !ctx.flags.Has(FlagCollectUnnamed) {
		return
	}
	ctx.matches.addUnnamed(UnnamedKey, start, ctx.cursor)
}

// AddNamedMatch records a capture under key, [start, Position()), if
// FlagCollectNamed is set. Unlike AddMatch, a zero-width span is still
// recorded: spec §4.1 only qualifies the unnamed add_match with
// `end > start`.
func (ctx *Context) AddNamedMatch(key string, start int) {
	if !ctx.flags.Has(FlagCollectNamed) {
		return
	}
	ctx.matches.addNamed(key, start, ctx.cursor)
}

// Matches returns the context's capture collector.
func (ctx *Context) Matches() *Captures {
	return ctx.matches
}

// SetVar sets a named variable's value, visible for the lifetime of the
// context.
func (ctx *Context) SetVar(name, value string) {
	if ctx.vars == nil {
		ctx.vars = make(map[string]string)
	}
	ctx.vars[name] = value
}

// GetVar returns a named variable's value.
func (ctx *Context) GetVar(name string) (string, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// DelVar removes a named variable.
func (ctx *Context) DelVar(name string) {
	delete(ctx.vars, name)
}

// Flags returns the context's current flag set.
func (ctx *Context) Flags() Flags {
	return ctx.flags
}

// SetFlags replaces the context's flag set. Used by CaseModifier.
func (ctx *Context) SetFlags(f Flags) {
	ctx.flags = f
}

// TextBytes returns the input text as a byte slice, computed once per
// context and reused by matchers (such as TextSet) that need a []byte
// view for a third-party automaton API.
func (ctx *Context) TextBytes() []byte {
	if ctx.textBytes == nil {
		ctx.textBytes = []byte(ctx.text)
	}
	return ctx.textBytes
}

// Tell returns the line/column Position of the current cursor.
func (ctx *Context) Tell() Position {
	if ctx.pcalc == nil {
		ctx.pcalc = newPositionCalculator(ctx.text)
	}
	return ctx.pcalc.calculate(ctx.cursor)
}

// call invokes a child matcher, enforcing the recursion-depth guard. A
// depth overrun is reported as an ordinary matcher failure (false), not a
// panic or error, keeping failure-as-value consistent throughout; the
// overrun is additionally recorded as ctx.lastErr (with the active frame
// trace, if enabled) for callers that want to distinguish "genuinely
// rejected" from "gave up".
func (ctx *Context) call(m Matcher) bool {
	if ctx.limits.MaxDepth > 0 && ctx.depth >= ctx.limits.MaxDepth {
		if ctx.trace != nil {
			ctx.lastErr = errorf("%s: %v", errMaxDepthExceeded, ctx.trace.snapshot())
		} else {
			ctx.lastErr = errMaxDepthExceeded
		}
		return false
	}
	ctx.depth++
	if ctx.trace != nil {
		ctx.trace.push(m.String())
	}
	mark := ctx.matches.mark()
	entry := ctx.cursor
	ok := m.check(ctx)
	if !ok {
		// Captures produced by a matcher that later fails must not survive,
		// and the cursor goes back to where m found it (a primitive may
		// already have skipped spaces before failing). Every check() runs
		// through call(), so rolling back here covers every combinator
		// uniformly instead of requiring each one to undo its own
		// children's captures and cursor moves by hand.
		ctx.matches.truncate(mark)
		ctx.cursor = entry
	}
	if ctx.trace != nil {
		ctx.trace.pop()
	}
	ctx.depth--
	return ok
}

// LastError returns the most recently recorded construction/limit error
// for this context, if any. Matching itself never raises an error; this
// surfaces the one case — MaxDepth/MaxSteps overrun — where a match
// gives up rather than genuinely rejecting.
func (ctx *Context) LastError() error {
	return ctx.lastErr
}
