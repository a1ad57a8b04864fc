package stringozzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturesReservedKeys(t *testing.T) {
	ctx := NewContext("abcdef", FlagCollectUnnamed|FlagCollectNamed)
	require.True(t, Extract(IsText("abc"), "prefix").Check(ctx))
	require.True(t, IsText("def").Check(ctx))

	assert.Equal(t, 2, ctx.Matches().Count())
	s, ok := ctx.Matches().Get("prefix", 0)
	require.True(t, ok)
	assert.Equal(t, "abc", s)

	// IsText("abc") inside Extract records the first <MATCHES> span, so
	// IsText("def") holds index 1.
	unnamed, ok := ctx.Matches().Get(UnnamedKey, 1)
	require.True(t, ok)
	assert.Equal(t, "def", unnamed)
}

func TestExtractDefaultKey(t *testing.T) {
	ctx := NewContext("xyz", FlagCollectNamed)
	require.True(t, Extract(IsText("xyz")).Check(ctx))
	s, ok := ctx.Matches().Get(ExtractDefaultKey, 0)
	require.True(t, ok)
	assert.Equal(t, "xyz", s)
}

func TestCapturesClear(t *testing.T) {
	ctx := NewContext("a", FlagCollectUnnamed)
	require.True(t, Is('a').Check(ctx))
	require.Equal(t, 1, ctx.Matches().Count())
	ctx.Matches().Clear()
	assert.Equal(t, 0, ctx.Matches().Count())
}

func TestCapturesEmptySpanNotRecorded(t *testing.T) {
	ctx := NewContext("a", FlagCollectUnnamed|FlagCollectNamed)
	require.True(t, Beginning.Check(ctx))
	assert.Equal(t, 0, ctx.Matches().CountKey(UnnamedKey))
}

func TestExtractZeroWidthNamedCaptureIsRecorded(t *testing.T) {
	// spec §4.1 qualifies add_match(start) (unnamed) with `end > start`
	// but gives add_match(key, start) (named) no such qualifier: a
	// zero-width Extract must still be recorded under its key.
	ctx := NewContext("x", FlagCollectNamed)
	require.True(t, Extract(Beginning, "pos").Check(ctx))
	assert.Equal(t, 1, ctx.Matches().CountKey("pos"))
	assert.True(t, IfMatched("pos", 1, 1).Check(ctx))
}

func TestDiscardedOnFailure(t *testing.T) {
	// A capture produced by a sub-match that is part of an ultimately
	// failing Sequence must not survive (spec §3 invariant 2).
	ctx := NewContext("ax", FlagCollectUnnamed|FlagCollectNamed)
	rule := Sequence(Extract(IsText("a"), "first"), IsText("b"))
	ok := rule.Check(ctx)
	require.False(t, ok)
	assert.Equal(t, 0, ctx.Position())
	assert.Equal(t, 0, ctx.Matches().CountKey("first"))
}
