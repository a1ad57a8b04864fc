package stringozzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseModifierTogglesMidMatch(t *testing.T) {
	rule := Seq(CaseModifier(true), IsText("HELLO"))
	ctx := NewContext("hello", 0)
	require.True(t, rule.Check(ctx))
}

func TestSetVarGetVarDelVar(t *testing.T) {
	rule := Seq(SetVar("k", "v"), If("k", "v"))
	ctx := NewContext("", 0)
	require.True(t, rule.Check(ctx))

	rule2 := Seq(SetVar("k", "v"), DelVar("k"), If("k", "v"))
	ctx2 := NewContext("", 0)
	assert.False(t, rule2.Check(ctx2))
}

func TestIfDefaultValue(t *testing.T) {
	ctx := NewContext("", 0)
	ctx.SetVar("flag", "1")
	assert.True(t, If("flag").Check(ctx))
}

func TestIfUnsetVariableFails(t *testing.T) {
	ctx := NewContext("", 0)
	assert.False(t, If("missing").Check(ctx))
}

func TestIfMatchedRange(t *testing.T) {
	ctx := NewContext("aaa", FlagCollectNamed)
	require.True(t, Repeat(Extract(Is('a'), "a"), 3, 3).Check(ctx))
	assert.True(t, IfMatched("a", 2, 3).Check(ctx))
	assert.False(t, IfMatched("a", 4, Unbounded).Check(ctx))
}
