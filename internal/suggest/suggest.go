package suggest

// MinSimilarity is the score a candidate needs to be suggested.
const MinSimilarity = 0.6

// Closest returns the candidate most similar to name. Ties go to the
// earliest candidate. Exact matches are never suggested since the caller
// only asks after a lookup has failed.
func Closest(name string, candidates []string) (string, bool) {
	target := Normalize(name)

	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(target, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats the "did you mean" suffix for name, or returns "" when no
// candidate is close enough.
func Hint(name string, candidates []string) string {
	if c, ok := Closest(name, candidates); ok {
		return Format(c)
	}

	return ""
}

// Format renders the hint suffix for a known suggestion.
func Format(suggestion string) string {
	return " (did you mean " + suggestion + "?)"
}
