package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stringozzi-go/stringozzi"
)

// S11: replace(Is("Osama"), "1234567OsamaOsamadddd", "lol", count=2) ==
// "1234567lolloldddd".
func TestScenarioS11(t *testing.T) {
	rule := stringozzi.IsText("Osama")
	got := Replace(rule, "1234567OsamaOsamadddd", "lol", 0, 2)
	assert.Equal(t, "1234567lolloldddd", got)
}

func TestReplaceUnboundedCount(t *testing.T) {
	rule := stringozzi.IsText("a")
	got := Replace(rule, "banana", "o", 0, 0)
	assert.Equal(t, "bonono", got)
}

func TestTest(t *testing.T) {
	require.True(t, Test(stringozzi.IsText("abc"), "abc", 0))
	require.False(t, Test(stringozzi.IsText("abc"), "xabc", 0))
}

func TestSearch(t *testing.T) {
	rule := stringozzi.IsText("cd")
	assert.True(t, Search(rule, "abcdef", 0))
	assert.False(t, Search(rule, "abxyz", 0))
}

func TestSearchAndGetIndex(t *testing.T) {
	rule := stringozzi.IsText("cd")
	idx := SearchAndGetIndex(rule, "abcdef", 0)
	assert.Equal(t, 2, idx)

	idx2 := SearchAndGetIndex(rule, "xyz", 0)
	assert.Equal(t, NoMatch, idx2)
}

func TestMatch(t *testing.T) {
	rule := stringozzi.Extract(stringozzi.OneOrMore(stringozzi.Between('0', '9')), "num")
	matches, ok := Match(rule, "abc123def", 0)
	require.True(t, ok)
	s, ok := matches.Get("num", 0)
	require.True(t, ok)
	assert.Equal(t, "123", s)
}

func TestSplit(t *testing.T) {
	rule := stringozzi.In(",")
	got := Split(rule, "a,,b,c", 0, false, 0)
	assert.Equal(t, []string{"a", "", "b", "c"}, got)

	gotDrop := Split(rule, "a,,b,c", 0, true, 0)
	assert.Equal(t, []string{"a", "b", "c"}, gotDrop)
}

func TestSplitCount(t *testing.T) {
	rule := stringozzi.In(",")
	got := Split(rule, "a,b,c,d", 0, false, 2)
	assert.Equal(t, []string{"a", "b", "c,d"}, got)
}
