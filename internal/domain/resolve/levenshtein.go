package resolve

// levenshtein computes the edit distance between two strings with unit
// cost for insert, delete, and substitute. Inputs are normalized keys,
// which are ASCII, so byte indexing is safe. Two-row DP keeps the
// allocation at O(min(len)).
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// editRatio is the normalized edit distance: distance divided by the
// length of the longer key. 0 means identical, 1 means nothing shared.
// Two empty keys are treated as maximally distant — empty keys never match.
func editRatio(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return float64(levenshtein(a, b)) / float64(longest)
}
