// internal/solver/entropy.go
//
// Exact expected-information ranking of candidate guesses.
// Responsibilities:
//   - For each candidate, bucket the remaining pool by the feedback
//     pattern the candidate would produce, and compute the Shannon
//     entropy (bits) of that distribution plus the expected size of
//     the next pool.
//   - Rank candidates by entropy, descending, stable on input order,
//     capped at the top 20.
//
// Cost is O(|candidates| x |pool|); candidates are scored in parallel
// chunks (errgroup) and progress is reported at least every 100
// candidates. Cancellation is observed only between chunks: the
// per-word scoring itself never suspends.

package solver

import (
	"context"
	"math"
	"runtime"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/pattern"
)

// maxSuggestions caps ranked output. A presentation limit, kept here
// so both rankers agree on it.
const maxSuggestions = 20

// progressChunk is the candidate batch size between progress reports.
const progressChunk = 100

// ProgressFunc receives ranking progress: candidates processed so far
// and the total. Called at least every 100 candidates and once on
// completion; may be called from multiple goroutines.
type ProgressFunc func(done, total int)

// RankByEntropy ranks candidates by expected information gain against
// the remaining pool. Suggestions are sorted by entropy descending,
// ties broken by candidate input order, truncated to the top 20.
//
// An empty pool yields an empty list. A pool of exactly one word
// yields that word alone with zero entropy, bypassing computation.
func RankByEntropy(ctx context.Context, candidates, pool []string, progress ProgressFunc) ([]Suggestion, error) {
	total := len(candidates)
	if len(pool) == 0 {
		reportDone(progress, total)
		return []Suggestion{}, nil
	}
	if len(pool) == 1 {
		reportDone(progress, total)
		return []Suggestion{{Word: pool[0], Entropy: 0, RemainingWords: 1}}, nil
	}

	scored := make([]Suggestion, total)
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for start := 0; start < total; start += progressChunk {
		start := start
		end := start + progressChunk
		if end > total {
			end = total
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				bits, expected := scoreCandidate(candidates[i], pool)
				scored[i] = Suggestion{Word: candidates[i], Entropy: bits, RemainingWords: expected}
			}
			n := int(done.Add(int64(end - start)))
			if progress != nil && n < total {
				progress(n, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	reportDone(progress, total)

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Entropy > scored[j].Entropy
	})
	if len(scored) > maxSuggestions {
		scored = scored[:maxSuggestions]
	}
	return scored, nil
}

// scoreCandidate buckets the pool by feedback pattern and returns the
// entropy in bits and the expected remaining-pool size.
func scoreCandidate(word string, pool []string) (bits, expected float64) {
	var counts [pattern.NumPatterns]int
	for _, answer := range pool {
		counts[pattern.Score(word, answer)]++
	}

	n := float64(len(pool))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		bits += p * math.Log2(n/float64(c))
		expected += p * float64(c)
	}
	return bits, expected
}

func reportDone(progress ProgressFunc, total int) {
	if progress != nil {
		progress(total, total)
	}
}
