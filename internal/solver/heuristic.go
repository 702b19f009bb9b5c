// internal/solver/heuristic.go
//
// Letter-frequency fallback ranking, used when the remaining pool is
// too large for exact entropy ranking to stay responsive.
// Scores a candidate by summing, over its unique letters, the fraction
// of pool words containing that letter at least once. A cheap proxy
// for "which guess splits the pool most evenly" that avoids the
// O(n^2) pattern simulation.
//
// The score is carried in the Suggestion.Entropy field for output
// shape compatibility. It is NOT in bits; results are tagged
// ModeHeuristic so callers never compare the two scales.

package solver

import "sort"

// RankByLetterFrequency ranks candidates by aggregate letter frequency
// against the pool. Sorted descending, ties broken by input order,
// truncated to the top 20.
func RankByLetterFrequency(candidates, pool []string) []Suggestion {
	// Fraction of pool words containing each letter at least once.
	// Duplicate letters within one word count once.
	var freq [26]float64
	if len(pool) > 0 {
		for _, w := range pool {
			var seen [26]bool
			for i := 0; i < len(w); i++ {
				j := int(w[i] - 'a')
				if j >= 0 && j < 26 && !seen[j] {
					seen[j] = true
					freq[j]++
				}
			}
		}
		n := float64(len(pool))
		for i := range freq {
			freq[i] /= n
		}
	}

	scored := make([]Suggestion, len(candidates))
	for i, w := range candidates {
		scored[i] = Suggestion{Word: w, Entropy: letterScore(w, &freq)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Entropy > scored[j].Entropy
	})
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}
	return scored
}

// letterScore sums the pool frequencies of the word's unique letters.
func letterScore(word string, freq *[26]float64) float64 {
	var seen [26]bool
	score := 0.0
	for i := 0; i < len(word); i++ {
		j := int(word[i] - 'a')
		if j >= 0 && j < 26 && !seen[j] {
			seen[j] = true
			score += freq[j]
		}
	}
	return score
}
