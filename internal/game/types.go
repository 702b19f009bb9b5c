// internal/game/types.go
//
// Core type definitions for a solver session.
// Defines:
//   - Status: session lifecycle state (in progress, won, two distinct
//     loss states).
//   - Session: guess history, remaining candidate pool, completion.
//   - Typed validation errors returned by AddGuess.

package game

import (
	"errors"

	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Status is the session lifecycle state.
// LostNoCandidates is distinct from LostNoAttempts: it signals that
// the accumulated clues eliminated every known word (contradictory
// input, or an answer outside all dictionaries), not that attempts ran
// out.
type Status string

const (
	StatusInProgress       Status = "in_progress"
	StatusWon              Status = "won"
	StatusLostNoAttempts   Status = "lost_no_attempts"
	StatusLostNoCandidates Status = "lost_no_candidates"
)

// Terminal reports whether the status accepts no further guesses.
func (s Status) Terminal() bool { return s != StatusInProgress }

// Validation failures reported by AddGuess. The session state is left
// unchanged when any of these is returned.
var (
	ErrGameOver       = errors.New("game is already over")
	ErrInvalidWord    = errors.New("guess must be exactly 5 letters a-z")
	ErrNotInWordList  = errors.New("guess is not in the word list")
	ErrAlreadyGuessed = errors.New("word was already guessed this session")
)

// Session holds the state of a single solver session.
// Remaining is recomputed from the full guess history on every
// accepted guess, never patched incrementally.
type Session struct {
	ID        string                // unique session identifier (random hex string)
	Guesses   []pattern.GuessResult // accepted guesses, in order
	Remaining []string              // candidate pool consistent with all clues
	Status    Status
	Solution  string // set once the answer is confirmed (won, or pool of one)
	MaxRows   int    // maximum number of guesses (typically 6)

	dicts   solver.Dictionaries // word lists the session filters against
	allowed map[string]struct{} // lookup set over dicts.Allowed
}
