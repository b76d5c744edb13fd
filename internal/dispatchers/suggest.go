package dispatchers

import (
	"sort"
	"strings"
)

const maxSuggestDistance = 3

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

type suggestion struct {
	name     string
	distance int
}

// FindSimilar returns up to maxResults candidates within a small edit
// distance of input, closest first and alphabetically among ties.
func FindSimilar(input string, candidates []string, maxResults int) []string {
	var found []suggestion

	for _, name := range candidates {
		dist := levenshtein(input, name)
		if dist <= maxSuggestDistance && dist > 0 {
			found = append(found, suggestion{name: name, distance: dist})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})

	if len(found) > maxResults {
		found = found[:maxResults]
	}

	result := make([]string, len(found))
	for i, s := range found {
		result[i] = s.name
	}
	return result
}

// Suggest returns registered command names similar to name.
func (c *Commander) Suggest(name string, maxResults int) []string {
	return FindSimilar(name, c.Commands(), maxResults)
}
