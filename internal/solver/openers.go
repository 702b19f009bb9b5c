// internal/solver/openers.go
//
// Precomputed opening-guess table. The first suggestion request of a
// session has no clues to work from, so its entropy ranking depends
// only on the initial pool and is computed once, offline, by
// cmd/precompute running the exact ranker over the answers list
// against itself. The table ships as a versioned JSON asset and is
// loaded at startup; it is never recomputed or mutated at runtime.

package solver

import (
	"encoding/json"
	"fmt"
)

// OpenerTable is the on-disk shape of the precomputed opener list.
type OpenerTable struct {
	Version int          `json:"version"`
	Source  string       `json:"source"`  // answers list the table was computed against
	Openers []Suggestion `json:"openers"` // ranked by entropy descending
}

// LoadOpeners parses a precomputed opener table.
// An empty or unversioned table is a load error: the orchestrator
// must never silently fall back to an empty first suggestion.
func LoadOpeners(data []byte) ([]Suggestion, error) {
	var t OpenerTable
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("openers: parse table: %w", err)
	}
	if t.Version < 1 {
		return nil, fmt.Errorf("openers: missing table version")
	}
	if len(t.Openers) == 0 {
		return nil, fmt.Errorf("openers: table %q is empty", t.Source)
	}
	return t.Openers, nil
}
