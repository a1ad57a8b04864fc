package stringozzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameTraceSnapshotOrder(t *testing.T) {
	tr := newFrameTrace()
	tr.push("a")
	tr.push("b")
	tr.push("c")
	assert.Equal(t, []string{"a", "b", "c"}, tr.snapshot())
	tr.pop()
	assert.Equal(t, []string{"a", "b"}, tr.snapshot())
}

func TestFrameTraceNilIsSafe(t *testing.T) {
	var tr *frameTrace
	tr.push("x")
	tr.pop()
	assert.Nil(t, tr.snapshot())
}

func TestMaxDepthTraceReported(t *testing.T) {
	group, bind := NewRef("g")
	bind(Sequence(Is('a'), group))

	ctx := NewContextWithLimits("aaaaaaaaaa", 0, Limits{MaxDepth: 4, Trace: true})
	ok := group.Check(ctx)
	assert.False(t, ok)
	if assert.Error(t, ctx.LastError()) {
		assert.Contains(t, ctx.LastError().Error(), "maximum recursion depth")
	}
}
