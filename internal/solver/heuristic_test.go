package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankByLetterFrequency(t *testing.T) {
	// Pool frequencies: t, r, a, e in every word (1.0 each), c in two
	// of three, s in one of three. crate and trace tie at 4+2/3 and
	// keep input order; stare trails at 4+1/3.
	pool := []string{"crate", "trace", "stare"}
	sugs := RankByLetterFrequency(pool, pool)
	require.Len(t, sugs, 3)

	assert.Equal(t, "crate", sugs[0].Word)
	assert.Equal(t, "trace", sugs[1].Word)
	assert.Equal(t, "stare", sugs[2].Word)
	assert.InDelta(t, 4.0+2.0/3.0, sugs[0].Entropy, 1e-9)
	assert.InDelta(t, sugs[0].Entropy, sugs[1].Entropy, 1e-9)
	assert.InDelta(t, 4.0+1.0/3.0, sugs[2].Entropy, 1e-9)
}

func TestRankByLetterFrequencyDuplicatesCountOnce(t *testing.T) {
	// "sassy" has three s but only three unique letters; each occurs in
	// the whole (single-word) pool, so the score is exactly 3.
	sugs := RankByLetterFrequency([]string{"sassy"}, []string{"sassy"})
	require.Len(t, sugs, 1)
	assert.InDelta(t, 3.0, sugs[0].Entropy, 1e-9)
}

func TestRankByLetterFrequencyEmptyPool(t *testing.T) {
	sugs := RankByLetterFrequency([]string{"crate", "trace"}, nil)
	require.Len(t, sugs, 2)
	for _, s := range sugs {
		assert.Zero(t, s.Entropy)
	}
}

func TestRankByLetterFrequencyTruncatesToTwenty(t *testing.T) {
	candidates := syntheticWords(30)
	sugs := RankByLetterFrequency(candidates, candidates)
	assert.Len(t, sugs, maxSuggestions)
}
