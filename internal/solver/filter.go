// internal/solver/filter.go
//
// Applies a constraint set as a predicate over candidate words.
// Checks run cheapest-first and bail on the first violation; the order
// only affects early-exit cost, never the outcome.

package solver

import "strings"

// Matches reports whether word is consistent with the constraints.
func (c Constraints) Matches(word string) bool {
	// Green positions.
	for pos, letter := range c.CorrectPositions {
		if pos >= len(word) || word[pos] != letter {
			return false
		}
	}

	// Every known-present letter must occur.
	for letter := range c.PresentLetters {
		if strings.IndexByte(word, letter) < 0 {
			return false
		}
	}

	// No globally absent letter may occur. Letters with an exact count
	// are judged by that count instead.
	for letter := range c.AbsentLetters {
		if _, exact := c.ExactLetterCounts[letter]; exact {
			continue
		}
		if strings.IndexByte(word, letter) >= 0 {
			return false
		}
	}

	// Yellow letters may not sit at a ruled-out position.
	for letter, positions := range c.WrongPositions {
		for pos := range positions {
			if pos < len(word) && word[pos] == letter {
				return false
			}
		}
	}

	// Per-letter minimum occurrence counts.
	for letter, min := range c.MinLetterCount {
		if _, exact := c.ExactLetterCounts[letter]; exact {
			continue
		}
		if strings.Count(word, string(letter)) < min {
			return false
		}
	}

	// Exact counts override everything above for their letter.
	for letter, exact := range c.ExactLetterCounts {
		if strings.Count(word, string(letter)) != exact {
			return false
		}
	}

	return true
}

// Filter returns the words consistent with the constraints, in input
// order.
func Filter(words []string, c Constraints) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if c.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}
