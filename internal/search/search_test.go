package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Finance", "finance"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Greater(t, Similarity("Finance", "Financ"), 0.8)
	assert.Less(t, Similarity("Finance", "zzzzzzz"), 0.2)
}

func TestRankEmptyQuery(t *testing.T) {
	got := Rank("", []string{"a", "b", "c"})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestRankSubstringFirst(t *testing.T) {
	candidates := []string{"Health care", "Finance", "Healthy living", "Sport"}
	got := Rank("health", candidates)

	// Both substring matches, original order, no unrelated entries.
	assert.Equal(t, []int{0, 2}, got[:2])
	assert.NotContains(t, got, 1)
	assert.NotContains(t, got, 3)
}

func TestRankFuzzyFallback(t *testing.T) {
	candidates := []string{"Finance", "Sport"}
	got := Rank("Finnace", candidates)

	// Transposition still finds Finance, drops Sport.
	assert.Equal(t, []int{0}, got)
}

func TestRankNoMatches(t *testing.T) {
	got := Rank("xyzzy", []string{"Finance", "Sport"})
	assert.Empty(t, got)
}
