package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoadListFiltersInvalidEntries(t *testing.T) {
	path := writeList(t, "crate\nTRACE\n  slate  \ntoolong\ncat\ncr4te\n\nirate\n")

	got, err := LoadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"crate", "trace", "slate", "irate"}, got)
}

func TestLoadListMissingFile(t *testing.T) {
	_, err := LoadList(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestSetListsDedupsAndOrdersAnswersFirst(t *testing.T) {
	setLists(
		[]string{"crate", "trace", "crate"},
		[]string{"soare", "trace", "roate", "soare"},
	)

	assert.Equal(t, []string{"crate", "trace"}, Answers())
	assert.Equal(t, []string{"crate", "trace", "soare", "roate"}, Allowed())

	assert.True(t, IsAnswer("crate"))
	assert.True(t, IsAnswer("CRATE"))
	assert.False(t, IsAnswer("soare"))
	assert.True(t, IsAllowed("soare"))
	assert.False(t, IsAllowed("pious"))

	a, g := Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 4, g)
}

func TestLoadAnswersFileOnly(t *testing.T) {
	path := writeList(t, "crate\ntrace\n")
	t.Setenv("WORDS_ANSWERS_FILE", path)
	t.Setenv("WORDS_ALLOWED_FILE", "")
	t.Setenv("WORDS_DB_FILE", "")

	require.NoError(t, load())
	assert.Equal(t, []string{"crate", "trace"}, Answers())
	assert.Equal(t, Answers(), Allowed(), "a lone answers file serves both lists")
}

func TestLoadAllowedFileOnly(t *testing.T) {
	path := writeList(t, "crate\ntrace\nsoare\n")
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", path)
	t.Setenv("WORDS_DB_FILE", "")

	require.NoError(t, load())
	assert.Equal(t, []string{"crate", "trace", "soare"}, Answers())
	assert.Equal(t, Answers(), Allowed())
}

func TestInitUsesEmbeddedDefaults(t *testing.T) {
	// No env overrides: Init falls back to the embedded lists.
	t.Setenv("WORDS_ANSWERS_FILE", "")
	t.Setenv("WORDS_ALLOWED_FILE", "")
	t.Setenv("WORDS_DB_FILE", "")
	require.NoError(t, Init())

	a, g := Stats()
	assert.Greater(t, a, 0)
	assert.GreaterOrEqual(t, g, a, "allowed is a superset of answers")
	for _, w := range Answers() {
		assert.Len(t, w, 5)
		assert.True(t, IsAllowed(w), w)
	}
}
