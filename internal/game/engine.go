// internal/game/engine.go
//
// Session engine for the solver.
// Responsibilities:
//   - Create new sessions seeded with the full curated answer pool.
//   - Validate and apply guesses (length, alphabetic, allowed list,
//     no repeats, no guesses after a terminal state).
//   - Recompute the remaining pool from the complete guess history and
//     drive the state machine: in_progress -> won / lost_no_attempts /
//     lost_no_candidates.
//
// Notes:
//   - Clues are supplied by the caller (the board the player is
//     solving reports the colors); the engine does not know the
//     answer.
//   - Completion is driven by actual candidate availability: the
//     strict pool is broadened to the full dictionary before the
//     session is declared out of candidates.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

const defaultRows = 6

// New constructs a fresh session over the given dictionaries.
// The initial remaining pool is the curated answers list.
func New(dicts solver.Dictionaries) *Session {
	s := &Session{
		ID:      randomID(),
		MaxRows: defaultRows,
	}
	s.dicts = dicts
	s.allowed = toSet(dicts.Allowed)
	s.reset()
	return s
}

// AddGuess validates and applies a guess with its 5 clue digits.
// On success the guess joins the history, the remaining pool is
// rebuilt from scratch, and the status is re-derived. On any
// validation error the session is unchanged.
//
// State transitions:
//   - all clues correct               -> won
//   - pool empty even after broadening -> lost_no_candidates
//   - guess count reaches MaxRows      -> lost_no_attempts
//
// Terminal sessions reject further guesses with ErrGameOver.
func (s *Session) AddGuess(word string, digits [pattern.WordLen]pattern.Clue) (pattern.GuessResult, error) {
	if s.Status.Terminal() {
		return pattern.GuessResult{}, ErrGameOver
	}

	word = strings.ToLower(strings.TrimSpace(word))
	if len(word) != pattern.WordLen || !isAlpha(word) {
		return pattern.GuessResult{}, ErrInvalidWord
	}
	if _, ok := s.allowed[word]; !ok {
		return pattern.GuessResult{}, ErrNotInWordList
	}
	for _, g := range s.Guesses {
		if g.Word == word {
			return pattern.GuessResult{}, ErrAlreadyGuessed
		}
	}

	gr, err := pattern.NewGuessResult(word, digits)
	if err != nil {
		return pattern.GuessResult{}, ErrInvalidWord
	}

	history := append(append([]pattern.GuessResult(nil), s.Guesses...), gr)

	p, err := pattern.FromClues(gr.Clues)
	if err != nil {
		return pattern.GuessResult{}, ErrInvalidWord
	}
	if pattern.IsWinning(p) {
		s.Guesses = history
		s.Remaining = []string{word}
		s.Status = StatusWon
		s.Solution = word
		return gr, nil
	}

	// Rebuild the pool from the full history; broaden to the allowed
	// dictionary before concluding nothing matches.
	c := solver.BuildConstraints(history)
	remaining := solver.Filter(s.dicts.Answers, c)
	if len(remaining) == 0 {
		remaining = solver.Filter(s.dicts.Allowed, c)
	}

	s.Guesses = history
	s.Remaining = remaining

	switch {
	case len(remaining) == 0:
		s.Status = StatusLostNoCandidates
	case len(s.Guesses) >= s.MaxRows:
		s.Status = StatusLostNoAttempts
	default:
		s.Status = StatusInProgress
		if len(remaining) == 1 {
			s.Solution = remaining[0]
		}
	}
	return gr, nil
}

// Reset returns the session to a fresh in-progress state with the full
// initial pool. Valid from any state.
func (s *Session) Reset() { s.reset() }

func (s *Session) reset() {
	s.Guesses = nil
	s.Remaining = append([]string(nil), s.dicts.Answers...)
	s.Status = StatusInProgress
	s.Solution = ""
}

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
