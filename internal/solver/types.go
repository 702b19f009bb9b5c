// internal/solver/types.go
//
// Shared types for the suggestion engine.
// Defines:
//   - Suggestion: one ranked candidate guess.
//   - Mode: which scoring scale produced a suggestion list.
//   - Dictionaries: the two word lists the engine consumes.
//   - Result: the orchestrator's answer to "what should I guess next".

package solver

import "time"

// Mode identifies the scoring scale of a suggestion list. Entropy
// scores are Shannon bits; heuristic scores are letter-frequency sums.
// The two scales are not comparable, so every Result carries its mode.
type Mode string

const (
	ModeEntropy   Mode = "entropy"
	ModeHeuristic Mode = "heuristic"
)

// Suggestion is one ranked candidate guess.
// Entropy holds bits under ModeEntropy and the letter-frequency score
// under ModeHeuristic. RemainingWords is the expected (or, for a
// solved pool, actual) candidate count after playing the word.
type Suggestion struct {
	Word           string  `json:"word"`
	Entropy        float64 `json:"entropy"`
	RemainingWords float64 `json:"remainingWords,omitempty"`
}

// Dictionaries holds the two word lists the engine consumes:
// the curated answers set (initial remaining pool) and the full
// allowed-guess set (a superset of answers).
type Dictionaries struct {
	Answers []string
	Allowed []string
}

// Result is the orchestrator output for one guess history.
type Result struct {
	Suggestions  []Suggestion  `json:"suggestions"`
	Mode         Mode          `json:"mode"`
	Openers      bool          `json:"openers"`      // precomputed opening list, no computation ran
	Solved       bool          `json:"solved"`       // exactly one candidate remains
	NoCandidates bool          `json:"noCandidates"` // empty even after broadening to the full dictionary
	Remaining    []string      `json:"-"`            // pool after filtering (broadened if needed)
	Elapsed      time.Duration `json:"-"`
}
