// internal/solver/constraints.go
//
// Accumulated letter knowledge derived from a guess history.
// Responsibilities:
//   - Fold every accepted guess into a single normalized Constraints
//     value: green positions, known-present letters, fully absent
//     letters, ruled-out positions, and per-letter occurrence bounds.
//   - Resolve the duplicate-letter rule: a letter scored both
//     correct/present and absent within one guess has an exact count.
//
// Constraints are rebuilt from the full history on every filtering
// pass. The merge is order-insensitive (max over counts, union over
// sets), so replaying guesses in any order yields the same value.

package solver

import "github.com/robalobadob/wordle-solver/internal/pattern"

// Constraints is the normalized knowledge extracted from all guesses
// so far. A letter present in ExactLetterCounts is authoritative and
// overrides the AbsentLetters and MinLetterCount checks for that
// letter.
type Constraints struct {
	// CorrectPositions maps position -> letter confirmed there (green).
	CorrectPositions map[int]byte

	// PresentLetters are letters known to occur somewhere in the word.
	PresentLetters map[byte]struct{}

	// AbsentLetters are letters confirmed entirely absent.
	AbsentLetters map[byte]struct{}

	// WrongPositions maps letter -> positions it is confirmed NOT to
	// occupy (from yellow clues).
	WrongPositions map[byte]map[int]struct{}

	// MinLetterCount maps letter -> minimum required occurrences: the
	// max, across guesses, of correct+present marks for that letter
	// within a single guess.
	MinLetterCount map[byte]int

	// ExactLetterCounts maps letter -> exact required occurrences.
	// Populated when one guess scores a letter both correct/present
	// and absent: the word holds exactly as many instances as were
	// matched.
	ExactLetterCounts map[byte]int
}

// NewConstraints returns an empty constraint set.
func NewConstraints() Constraints {
	return Constraints{
		CorrectPositions:  make(map[int]byte),
		PresentLetters:    make(map[byte]struct{}),
		AbsentLetters:     make(map[byte]struct{}),
		WrongPositions:    make(map[byte]map[int]struct{}),
		MinLetterCount:    make(map[byte]int),
		ExactLetterCounts: make(map[byte]int),
	}
}

// BuildConstraints folds a guess history into one constraint set.
// Each guess is processed independently and merged:
//   - correct clue: record the green position.
//   - present clue: letter is in the word, but not at this position.
//   - per guess, count correct+present marks per letter; the
//     cross-guess minimum count is the max of these (each guess is an
//     independent lower bound, so max, not sum).
//   - a letter marked absent in a guess where it also scored
//     correct/present fixes that letter's exact count; a letter
//     marked absent with zero matches in the same guess is globally
//     absent.
func BuildConstraints(guesses []pattern.GuessResult) Constraints {
	c := NewConstraints()

	for _, g := range guesses {
		letterCounts := make(map[byte]int)
		absentLetters := make(map[byte]struct{})

		for _, lc := range g.Clues {
			switch lc.Clue {
			case pattern.ClueCorrect:
				c.CorrectPositions[lc.Position] = lc.Letter
				c.PresentLetters[lc.Letter] = struct{}{}
				letterCounts[lc.Letter]++
			case pattern.CluePresent:
				c.PresentLetters[lc.Letter] = struct{}{}
				if c.WrongPositions[lc.Letter] == nil {
					c.WrongPositions[lc.Letter] = make(map[int]struct{})
				}
				c.WrongPositions[lc.Letter][lc.Position] = struct{}{}
				letterCounts[lc.Letter]++
			case pattern.ClueAbsent:
				absentLetters[lc.Letter] = struct{}{}
			}
		}

		for letter, n := range letterCounts {
			if n > c.MinLetterCount[letter] {
				c.MinLetterCount[letter] = n
			}
		}

		for letter := range absentLetters {
			if n, matched := letterCounts[letter]; matched {
				// Same guess matched some instances and grayed the
				// rest: the count is exact. Last exact wins across
				// guesses.
				c.ExactLetterCounts[letter] = n
			} else {
				c.AbsentLetters[letter] = struct{}{}
			}
		}
	}

	return c
}
