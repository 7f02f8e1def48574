// Package fuzzy finds close matches for mistyped argument and subcommand
// names, backing the engine's did-you-mean suggestions.
package fuzzy

import "strings"

// minInputLength guards against suggesting for inputs too short to carry
// signal.
const minInputLength = 2

// Closest returns the candidate with the smallest edit distance to input,
// or "" when nothing is within maxDistance. Comparison is case-insensitive;
// ties keep the earlier candidate.
func Closest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDist := maxDistance + 1
	for _, cand := range candidates {
		lc := strings.ToLower(cand)
		if lc == input {
			continue
		}
		if d := distance(input, lc, maxDistance); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

// distance is a two-row Levenshtein with early exit once every cell of a row
// exceeds maxDistance.
func distance(a, b string, maxDistance int) int {
	if abs(len(a)-len(b)) > maxDistance {
		return maxDistance + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	cur := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(b); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(a)]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
