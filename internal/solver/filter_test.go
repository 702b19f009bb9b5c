package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle-solver/internal/pattern"
)

func TestFilterWorkedExample(t *testing.T) {
	// After guessing "crate" against "trace", only "trace" survives:
	// "crate" itself puts c back at a ruled-out position, "irate" has
	// no c, "slate" has no c either.
	c := BuildConstraints([]pattern.GuessResult{mustScore(t, "crate", "trace")})
	got := Filter([]string{"crate", "trace", "irate", "slate"}, c)
	assert.Equal(t, []string{"trace"}, got)
}

func TestFilterExactCount(t *testing.T) {
	// "sassy" vs "raise" fixes s at exactly one occurrence: "lasso"
	// (two s) is rejected even though it satisfies both greens, and the
	// exact count overrides the gray s check for "raise" itself.
	c := BuildConstraints([]pattern.GuessResult{mustScore(t, "sassy", "raise")})
	got := Filter([]string{"raise", "sassy", "lasso", "gassy"}, c)
	assert.Equal(t, []string{"raise"}, got)
}

func TestFilterIdempotent(t *testing.T) {
	words := []string{"crate", "trace", "irate", "slate", "grate", "stale"}
	c := BuildConstraints([]pattern.GuessResult{mustScore(t, "slate", "trace")})

	once := Filter(words, c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterMonotonicOverHistory(t *testing.T) {
	words := []string{"crate", "trace", "irate", "slate", "grate", "stale", "raise"}
	answer := "trace"

	var history []pattern.GuessResult
	prev := len(words)
	for _, guess := range []string{"raise", "slate", "crate"} {
		history = append(history, mustScore(t, guess, answer))
		pool := Filter(words, BuildConstraints(history))

		assert.LessOrEqual(t, len(pool), prev, "pool never grows as clues accumulate")
		assert.Contains(t, pool, answer, "the true answer always survives its own clues")
		prev = len(pool)
	}
}
