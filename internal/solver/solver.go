// internal/solver/solver.go
//
// Suggestion orchestrator. Drives the pipeline for one guess history:
// build constraints -> filter the curated pool -> pick a ranker ->
// ranked suggestions plus wall-clock timing.
//
// Behavior:
//   - Empty history returns the precomputed opener table; no runtime
//     computation.
//   - A single surviving candidate short-circuits ranking.
//   - An empty strict pool is re-filtered against the full allowed
//     dictionary before giving up: a curated answers list can miss the
//     true answer, and a broadened pool keeps the session alive. Only
//     when the broadened pool is also empty does the result flag
//     no-candidates.
//   - Pools above the heuristic threshold use the letter-frequency
//     ranker over the pool itself; otherwise the exact entropy ranker
//     runs over the pool expanded with top dictionary words.

package solver

import (
	"context"
	"time"

	"github.com/robalobadob/wordle-solver/internal/pattern"
)

// Defaults for Options fields left zero.
const (
	DefaultHeuristicThreshold = 2000
	DefaultMaxCandidates      = 2000
	DefaultExtraCandidates    = 100
)

// Options tune the orchestrator's latency/quality trade-offs.
type Options struct {
	// HeuristicThreshold is the pool size above which exact entropy
	// ranking is skipped in favor of the letter-frequency heuristic.
	HeuristicThreshold int

	// MaxCandidates caps the total candidate list passed to the
	// entropy ranker.
	MaxCandidates int

	// ExtraCandidates is how many dictionary words beyond the
	// remaining pool are considered as guesses (good eliminators are
	// often not possible answers).
	ExtraCandidates int
}

func (o Options) withDefaults() Options {
	if o.HeuristicThreshold <= 0 {
		o.HeuristicThreshold = DefaultHeuristicThreshold
	}
	if o.MaxCandidates <= 0 {
		o.MaxCandidates = DefaultMaxCandidates
	}
	if o.ExtraCandidates <= 0 {
		o.ExtraCandidates = DefaultExtraCandidates
	}
	return o
}

// Solver composes the constraint builder, filter, and rankers over a
// fixed pair of dictionaries and a precomputed opener table.
// The value is immutable after construction and safe for concurrent
// use.
type Solver struct {
	dicts   Dictionaries
	opts    Options
	openers []Suggestion
}

// New constructs a Solver. openers may be nil, in which case the first
// request falls back to ranking the answers list directly.
func New(dicts Dictionaries, openers []Suggestion, opts Options) *Solver {
	return &Solver{dicts: dicts, opts: opts.withDefaults(), openers: openers}
}

// Dictionaries returns the solver's word lists.
func (s *Solver) Dictionaries() Dictionaries { return s.dicts }

// Remaining recomputes the candidate pool for a guess history:
// the curated answers filtered by the accumulated constraints, with
// the broadened-dictionary fallback applied when the strict pool is
// empty.
func (s *Solver) Remaining(history []pattern.GuessResult) []string {
	if len(history) == 0 {
		return append([]string(nil), s.dicts.Answers...)
	}
	c := BuildConstraints(history)
	remaining := Filter(s.dicts.Answers, c)
	if len(remaining) == 0 {
		remaining = Filter(s.dicts.Allowed, c)
	}
	return remaining
}

// Suggest runs the full pipeline for a guess history and returns
// ranked suggestions with diagnostic timing. progress may be nil.
func (s *Solver) Suggest(ctx context.Context, history []pattern.GuessResult, progress ProgressFunc) (*Result, error) {
	start := time.Now()

	if len(history) == 0 {
		if len(s.openers) > 0 {
			return &Result{
				Suggestions: s.openers,
				Mode:        ModeEntropy,
				Openers:     true,
				Remaining:   append([]string(nil), s.dicts.Answers...),
				Elapsed:     time.Since(start),
			}, nil
		}
		// No table shipped: rank the initial pool against itself.
		sugs, err := RankByEntropy(ctx, s.dicts.Answers, s.dicts.Answers, progress)
		if err != nil {
			return nil, err
		}
		return &Result{
			Suggestions: sugs,
			Mode:        ModeEntropy,
			Remaining:   append([]string(nil), s.dicts.Answers...),
			Elapsed:     time.Since(start),
		}, nil
	}

	remaining := s.Remaining(history)

	switch {
	case len(remaining) == 0:
		return &Result{
			Suggestions:  []Suggestion{},
			Mode:         ModeEntropy,
			NoCandidates: true,
			Remaining:    remaining,
			Elapsed:      time.Since(start),
		}, nil

	case len(remaining) == 1:
		return &Result{
			Suggestions: []Suggestion{{Word: remaining[0], Entropy: 0, RemainingWords: 1}},
			Mode:        ModeEntropy,
			Solved:      true,
			Remaining:   remaining,
			Elapsed:     time.Since(start),
		}, nil

	case len(remaining) > s.opts.HeuristicThreshold:
		// The pool itself dominates the cost; skip candidate
		// expansion and use the cheap ranker over the pool only.
		return &Result{
			Suggestions: RankByLetterFrequency(remaining, remaining),
			Mode:        ModeHeuristic,
			Remaining:   remaining,
			Elapsed:     time.Since(start),
		}, nil
	}

	candidates := s.expandCandidates(remaining)
	sugs, err := RankByEntropy(ctx, candidates, remaining, progress)
	if err != nil {
		return nil, err
	}
	return &Result{
		Suggestions: sugs,
		Mode:        ModeEntropy,
		Remaining:   remaining,
		Elapsed:     time.Since(start),
	}, nil
}

// expandCandidates unions the remaining pool with up to
// ExtraCandidates leading dictionary words not already present,
// capped at MaxCandidates total.
func (s *Solver) expandCandidates(remaining []string) []string {
	candidates := append([]string(nil), remaining...)
	if len(candidates) >= s.opts.MaxCandidates {
		return candidates[:s.opts.MaxCandidates]
	}

	in := make(map[string]struct{}, len(remaining))
	for _, w := range remaining {
		in[w] = struct{}{}
	}

	added := 0
	for _, w := range s.dicts.Allowed {
		if added >= s.opts.ExtraCandidates || len(candidates) >= s.opts.MaxCandidates {
			break
		}
		if _, ok := in[w]; ok {
			continue
		}
		candidates = append(candidates, w)
		in[w] = struct{}{}
		added++
	}
	return candidates
}
