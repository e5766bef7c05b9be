// Package search ranks topic and document labels against a user query
// for the TUI's filter mode.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// minSimilarity is the score below which a fuzzy match is discarded.
const minSimilarity = 0.4

// Similarity scores how alike two strings are in [0, 1], case-insensitive.
func Similarity(a, b string) float64 {
	a = strings.ToUpper(a)
	b = strings.ToUpper(b)
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Rank returns the indices of candidates matching query, best first.
// Substring matches come first in their original order; remaining
// candidates are ordered by fuzzy similarity, dropping poor matches.
// An empty query matches everything in the original order.
func Rank(query string, candidates []string) []int {
	if query == "" {
		all := make([]int, len(candidates))
		for i := range candidates {
			all[i] = i
		}
		return all
	}

	q := strings.ToLower(query)

	var exact []int
	type scored struct {
		index int
		score float64
	}
	var fuzzy []scored

	for i, c := range candidates {
		if strings.Contains(strings.ToLower(c), q) {
			exact = append(exact, i)
			continue
		}
		if s := Similarity(query, c); s >= minSimilarity {
			fuzzy = append(fuzzy, scored{index: i, score: s})
		}
	}

	sort.SliceStable(fuzzy, func(a, b int) bool { return fuzzy[a].score > fuzzy[b].score })

	result := exact
	for _, f := range fuzzy {
		result = append(result, f.index)
	}
	return result
}
