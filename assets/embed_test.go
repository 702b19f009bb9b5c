package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

func TestWordListsAreValid(t *testing.T) {
	answers, err := AnswersList()
	require.NoError(t, err)
	allowed, err := AllowedList()
	require.NoError(t, err)

	require.NotEmpty(t, answers)
	seen := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		assert.Len(t, w, 5)
		_, dup := seen[w]
		assert.False(t, dup, "duplicate answer %q", w)
		seen[w] = struct{}{}
	}
	for _, w := range allowed {
		assert.Len(t, w, 5)
	}
}

func TestOpenerTableMatchesAnswersList(t *testing.T) {
	// The shipped table must be regenerable by cmd/precompute from the
	// repo alone: every opener ranks the embedded answers against
	// themselves, so every word has to come from that list.
	answers, err := AnswersList()
	require.NoError(t, err)
	inAnswers := make(map[string]struct{}, len(answers))
	for _, w := range answers {
		inAnswers[w] = struct{}{}
	}

	data, err := OpenerTable()
	require.NoError(t, err)
	openers, err := solver.LoadOpeners(data)
	require.NoError(t, err)
	require.NotEmpty(t, openers)

	for i, o := range openers {
		assert.Contains(t, inAnswers, o.Word)
		assert.Greater(t, o.Entropy, 0.0, o.Word)
		assert.GreaterOrEqual(t, o.RemainingWords, 1.0, o.Word)
		if i > 0 {
			assert.LessOrEqual(t, o.Entropy, openers[i-1].Entropy, "table is ranked descending")
		}
	}
}
