package searchiq

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, and substitutions needed to transform a into b.
// Distances are computed over Unicode code points, case-sensitively;
// callers normalize case beforehand.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two-row DP: prev is the row for rb[:i], curr for rb[:i+1].
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(rb); i++ {
		curr[0] = i
		for j := 1; j <= len(ra); j++ {
			if rb[i-1] == ra[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(prev[j-1], curr[j-1], prev[j]) + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity returns a similarity ratio in [0, 1] between two strings:
// 1 - editDistance/len(longer), measured in runes. Two empty strings are
// fully similar (1.0). The ratio is symmetric in its arguments.
func Similarity(a, b string) float64 {
	longer, shorter := a, b
	if len([]rune(a)) < len([]rune(b)) {
		longer, shorter = b, a
	}

	longerLen := len([]rune(longer))
	if longerLen == 0 {
		return 1.0
	}

	dist := Levenshtein(longer, shorter)
	return float64(longerLen-dist) / float64(longerLen)
}
