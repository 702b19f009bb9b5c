// internal/pattern/pattern.go
//
// Feedback pattern codec for 5-letter guesses.
// Responsibilities:
//   - Score a guess against an answer with the classic two-pass Wordle
//     algorithm (duplicate-letter safe).
//   - Encode the 5 per-position clues into a single base-3 integer in
//     [0,242], least-significant digit = position 0.
//   - Decode patterns back into clue digits, detect winning patterns,
//     count correct positions.
//
// Notes:
//   - This package is the pure core shared by the interactive surface
//     and the background ranking worker. It depends on nothing but the
//     standard library and performs no I/O and no logging.
//   - Encode validates its inputs; Score is the unchecked fast path for
//     hot loops over pre-normalized word lists.

package pattern

import (
	"fmt"
	"strings"
)

const (
	// WordLen is the fixed word length for the puzzle.
	WordLen = 5

	// NumPatterns is 3^WordLen, the size of the pattern space.
	NumPatterns = 243
)

// Pattern is a base-3 encoding of the 5 per-position clues.
// Digit i (least significant first) is the clue for position i.
type Pattern uint8

// AllCorrect is the winning pattern: every position scored correct.
const AllCorrect Pattern = NumPatterns - 1

// Clue classifies a single letter of a guess.
type Clue uint8

const (
	ClueAbsent  Clue = 0 // letter not in the answer (gray)
	CluePresent Clue = 1 // letter in the answer, wrong position (yellow)
	ClueCorrect Clue = 2 // letter in the correct position (green)
)

// LetterClue is one position's feedback within a guess.
type LetterClue struct {
	Letter   byte `json:"letter"`
	Position int  `json:"position"`
	Clue     Clue `json:"clue"`
}

// GuessResult is an accepted guess with its 5 per-position clues.
// Invariant: Clues[i].Position == i. Never mutated after creation.
type GuessResult struct {
	Word  string              `json:"word"`
	Clues [WordLen]LetterClue `json:"clues"`
}

// Encode scores guess against answer and returns the resulting pattern.
// Inputs are case-insensitive; both must be exactly 5 letters a-z.
func Encode(guess, answer string) (Pattern, error) {
	guess = strings.ToLower(guess)
	answer = strings.ToLower(answer)
	if !isWord(guess) {
		return 0, fmt.Errorf("pattern: guess %q is not %d letters a-z", guess, WordLen)
	}
	if !isWord(answer) {
		return 0, fmt.Errorf("pattern: answer %q is not %d letters a-z", answer, WordLen)
	}
	return Score(guess, answer), nil
}

// isWord reports whether s is exactly WordLen lowercase ASCII letters.
func isWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Score is the unchecked scoring path. Assumes both words are exactly
// 5 lowercase ASCII letters, validated by the caller.
//
// Pass 1: mark exact matches as correct and count the remaining
// (unmatched) answer letters, so each answer letter can be claimed at
// most once.
// Pass 2: for each non-correct position, mark present if an unmatched
// instance of that letter remains, consuming it; otherwise absent.
//
// Guessing "sassy" against "lasso" therefore marks only as many S's
// present as remain unmatched in "lasso", never more.
func Score(guess, answer string) Pattern {
	var digits [WordLen]Clue

	// Letter frequency for the non-correct answer positions (a-z).
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			digits[i] = ClueCorrect
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if digits[i] == ClueCorrect {
			continue
		}
		j := int(guess[i] - 'a')
		if j >= 0 && j < 26 && counts[j] > 0 {
			digits[i] = CluePresent
			counts[j]--
		}
	}

	return FromDigits(digits)
}

// FromDigits packs 5 clue digits into a pattern, position 0 least
// significant.
func FromDigits(digits [WordLen]Clue) Pattern {
	var p, pow Pattern = 0, 1
	for i := 0; i < WordLen; i++ {
		p += Pattern(digits[i]) * pow
		pow *= 3
	}
	return p
}

// Decode expands a pattern into its 5 clue digits, the inverse of
// FromDigits.
func Decode(p Pattern) [WordLen]Clue {
	var digits [WordLen]Clue
	for i := 0; i < WordLen; i++ {
		digits[i] = Clue(p % 3)
		p /= 3
	}
	return digits
}

// FromClues packs the clues of a guess result into a pattern.
// Returns an error if the clue sequence is not positionally ordered.
func FromClues(clues [WordLen]LetterClue) (Pattern, error) {
	var digits [WordLen]Clue
	for i, c := range clues {
		if c.Position != i {
			return 0, fmt.Errorf("pattern: clue %d has position %d", i, c.Position)
		}
		digits[i] = c.Clue
	}
	return FromDigits(digits), nil
}

// NewGuessResult builds a GuessResult from a word and its 5 clue
// digits. The word must be exactly 5 lowercase letters.
func NewGuessResult(word string, digits [WordLen]Clue) (GuessResult, error) {
	word = strings.ToLower(word)
	if len(word) != WordLen {
		return GuessResult{}, fmt.Errorf("pattern: word %q is not %d letters", word, WordLen)
	}
	gr := GuessResult{Word: word}
	for i := 0; i < WordLen; i++ {
		gr.Clues[i] = LetterClue{Letter: word[i], Position: i, Clue: digits[i]}
	}
	return gr, nil
}

// ScoreWords scores a guess against a known answer and returns the
// full GuessResult, clues included.
func ScoreWords(guess, answer string) (GuessResult, error) {
	p, err := Encode(guess, answer)
	if err != nil {
		return GuessResult{}, err
	}
	return NewGuessResult(strings.ToLower(guess), Decode(p))
}

// IsWinning reports whether p marks every position correct.
func IsWinning(p Pattern) bool { return p == AllCorrect }

// CountCorrect returns the number of correct positions in p.
func CountCorrect(p Pattern) int {
	n := 0
	for _, d := range Decode(p) {
		if d == ClueCorrect {
			n++
		}
	}
	return n
}

// String renders the pattern as five characters: '-' absent,
// 'y' present, 'g' correct, position 0 first.
func (p Pattern) String() string {
	var b [WordLen]byte
	for i, d := range Decode(p) {
		switch d {
		case ClueCorrect:
			b[i] = 'g'
		case CluePresent:
			b[i] = 'y'
		default:
			b[i] = '-'
		}
	}
	return string(b[:])
}
