package stringozzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsciiRangeFastMatchesPlainCompare(t *testing.T) {
	for b := byte('0'); b <= '9'+2; b++ {
		want := b >= '0' && b <= '9'
		assert.Equalf(t, want, asciiRangeFast(b, '0', '9'), "byte %q", b)
	}
}

func TestBetweenFastPathCaseInsensitiveFallsBackToSlowPath(t *testing.T) {
	// FlagCaseInsensitive must bypass the raw-byte fast path so fold()
	// still applies (cpufeatures.go/leaves.go wiring).
	ctx := NewContext("A", FlagCaseInsensitive)
	assert.True(t, Between('a', 'z').Check(ctx))
}
