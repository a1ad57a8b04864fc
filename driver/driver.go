// Package driver implements thin, self-contained action entry points
// over the core combinator engine (github.com/stringozzi-go/stringozzi).
// None of this package touches the rule graph or Context internals
// directly; it only composes the public Rule/Context/Captures surface.
package driver

import (
	"unicode/utf8"

	"github.com/stringozzi-go/stringozzi"
)

// Test runs rule once at the start of s and reports whether it matched.
func Test(rule stringozzi.Rule, s string, flags stringozzi.Flags) bool {
	ctx := stringozzi.NewContext(s, flags)
	return rule.Check(ctx)
}

// Search is equivalent to Test(Until(rule) > rule, s): it reports whether
// rule matches anywhere in s.
func Search(rule stringozzi.Rule, s string, flags stringozzi.Flags) bool {
	combined := stringozzi.Sequence(stringozzi.Until(rule), rule)
	ctx := stringozzi.NewContext(s, flags)
	return combined.Check(ctx)
}

// NoMatch is the sentinel index SearchAndGetIndex returns on failure.
const NoMatch = -1

// SearchAndGetIndex is Search, but returns the byte offset where the
// match started, or NoMatch. Until(rule) alone already leaves the cursor
// at that position without consuming rule, which is exactly the
// position this entry point reports.
func SearchAndGetIndex(rule stringozzi.Rule, s string, flags stringozzi.Flags) int {
	ctx := stringozzi.NewContext(s, flags)
	if !stringozzi.Until(rule).Check(ctx) {
		return NoMatch
	}
	return ctx.Position()
}

// SearchAndGetPtr is Search, but returns the context positioned at the
// match's start rather than past its end, or (nil, false).
func SearchAndGetPtr(rule stringozzi.Rule, s string, flags stringozzi.Flags) (*stringozzi.Context, bool) {
	ctx := stringozzi.NewContext(s, flags)
	if !stringozzi.Until(rule).Check(ctx) {
		return nil, false
	}
	return ctx, true
}

// Match forces collect-named and collect-unnamed on, searches for rule,
// then re-runs it at the match point so matches is populated with every
// capture the match produced.
func Match(rule stringozzi.Rule, s string, flags stringozzi.Flags) (matches *stringozzi.Captures, ok bool) {
	flags |= stringozzi.FlagCollectNamed | stringozzi.FlagCollectUnnamed

	probe := stringozzi.NewContext(s, flags)
	if !stringozzi.Until(rule).Check(probe) {
		return nil, false
	}
	start := probe.Position()

	ctx := stringozzi.NewContext(s[start:], flags)
	if !rule.Check(ctx) {
		return nil, false
	}
	return ctx.Matches(), true
}

// Replace repeatedly searches for rule; on each hit it appends the
// pre-hit slice plus rep, stopping after count hits (count <= 0 means
// unbounded) or when no more matches remain, then appends the tail.
func Replace(rule stringozzi.Rule, s, rep string, flags stringozzi.Flags, count int) string {
	var out []byte
	pos := 0
	hits := 0
	for pos <= len(s) {
		if count > 0 && hits >= count {
			break
		}
		ctx := stringozzi.NewContext(s[pos:], flags)
		if !stringozzi.Until(rule).Check(ctx) {
			break
		}
		hitStart := pos + ctx.Position()

		matchCtx := stringozzi.NewContext(s[hitStart:], flags)
		if !rule.Check(matchCtx) {
			break
		}
		hitEnd := hitStart + matchCtx.Position()

		out = append(out, s[pos:hitStart]...)
		out = append(out, rep...)
		hits++

		if hitEnd == hitStart {
			// Zero-width match: force forward progress (mirrors
			// Repeat's no-progress guard, composites.go).
			if hitEnd >= len(s) {
				pos = hitEnd
				break
			}
			_, n := decodeRuneLen(s[hitEnd:])
			out = append(out, s[hitEnd:hitEnd+n]...)
			pos = hitEnd + n
			continue
		}
		pos = hitEnd
	}
	out = append(out, s[pos:]...)
	return string(out)
}

// Split is like Replace, but returns the slices between matches instead
// of joining them with a replacement. When dropEmpty is set, empty
// slices are omitted from the result.
func Split(rule stringozzi.Rule, s string, flags stringozzi.Flags, dropEmpty bool, count int) []string {
	var out []string
	pos := 0
	hits := 0
	for pos <= len(s) {
		if count > 0 && hits >= count {
			break
		}
		ctx := stringozzi.NewContext(s[pos:], flags)
		if !stringozzi.Until(rule).Check(ctx) {
			break
		}
		hitStart := pos + ctx.Position()

		matchCtx := stringozzi.NewContext(s[hitStart:], flags)
		if !rule.Check(matchCtx) {
			break
		}
		hitEnd := hitStart + matchCtx.Position()

		piece := s[pos:hitStart]
		if !dropEmpty || piece != "" {
			out = append(out, piece)
		}
		hits++

		if hitEnd == hitStart {
			if hitEnd >= len(s) {
				pos = hitEnd
				break
			}
			_, n := decodeRuneLen(s[hitEnd:])
			pos = hitEnd + n
			continue
		}
		pos = hitEnd
	}
	tail := s[pos:]
	if !dropEmpty || tail != "" {
		out = append(out, tail)
	}
	return out
}

func decodeRuneLen(s string) (rune, int) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		n = 1
	}
	return r, n
}
