// internal/words/words.go
//
// Word list provider for the solver.
//
// Responsibilities:
//   - Load the curated answers list and the larger allowed-guess list
//     from environment-provided files, a SQLite database, or embedded
//     defaults.
//   - Maintain sets for quick lookups (answers only, answers∪guesses).
//   - Supply Answers, Allowed, IsAllowed, IsAnswer, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions, the initial remaining pool.
//   - "allowed": valid guesses (always includes answers).
//
// Initialization behavior (Init):
//   1. If WORDS_ANSWERS_FILE and WORDS_ALLOWED_FILE are both set,
//      load answers from the first and allowed guesses from the second.
//   2. If only one of the two files is set, load it and use it for
//      both answers and allowed guesses.
//   3. If WORDS_DB_FILE is set, load both lists from that SQLite
//      database (see sqlite.go for the schema).
//   4. Otherwise fall back to the embedded defaults in assets/.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a-z).
//   • Lists are normalized to lowercase and deduplicated.
//   • Initialization is run once (sync.Once); an empty answers list
//     is a fatal load error, never silently accepted.

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/wordle-solver/assets"
)

var (
	initOnce   sync.Once
	answers    []string            // canonical answers, initial pool order
	allowed    []string            // answers ∪ guesses, answers first
	allowedSet map[string]struct{} // lookup over allowed
	answersSet map[string]struct{} // lookup over answers
	initialErr error
)

// Init loads word lists exactly once.
// Returns an error if the answers list ends up empty.
func Init() error {
	initOnce.Do(func() { initialErr = load() })
	return initialErr
}

func load() error {
	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")
	dbPath := os.Getenv("WORDS_DB_FILE")

	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided as files
	case answersPath != "" && allowedPath != "":
		if ansList, err = LoadList(answersPath); err != nil {
			return err
		}
		if allowList, err = LoadList(allowedPath); err != nil {
			return err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		if allowList, err = LoadList(allowedPath); err != nil {
			return err
		}
		ansList = allowList

	// Case 3: only answers file provided → answers double as the
	// allowed list
	case answersPath != "" && allowedPath == "":
		if ansList, err = LoadList(answersPath); err != nil {
			return err
		}
		allowList = ansList

	// Case 4: SQLite-backed lists
	case dbPath != "":
		if ansList, allowList, err = loadFromSQLite(dbPath); err != nil {
			return err
		}

	// Case 5: embedded defaults
	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return err
		}
	}

	setLists(ansList, allowList)
	if len(answers) == 0 {
		return errors.New("words: answers list is empty")
	}
	return nil
}

// setLists installs the loaded lists, deduplicated, with the allowed
// union ordered answers-first for deterministic candidate expansion.
func setLists(ansList, allowList []string) {
	answersSet = make(map[string]struct{}, len(ansList))
	answers = nil
	for _, w := range ansList {
		if _, dup := answersSet[w]; dup {
			continue
		}
		answersSet[w] = struct{}{}
		answers = append(answers, w)
	}

	allowedSet = make(map[string]struct{}, len(ansList)+len(allowList))
	allowed = append([]string(nil), answers...)
	for _, w := range answers {
		allowedSet[w] = struct{}{}
	}
	for _, w := range allowList {
		if _, dup := allowedSet[w]; dup {
			continue
		}
		allowedSet[w] = struct{}{}
		allowed = append(allowed, w)
	}
}

// LoadList loads one word per line from a file, lowercases, trims,
// and keeps only valid 5-letter alphabetic words.
func LoadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Answers returns the canonical answers list (all lowercase).
func Answers() []string { return answers }

// Allowed returns the full guess dictionary: answers ∪ guesses,
// answers first, deduplicated.
func Allowed() []string { return allowed }

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func IsAllowed(w string) bool {
	_, ok := allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func IsAnswer(w string) bool {
	_, ok := answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func Stats() (answersCount int, allowedCount int) {
	return len(answers), len(allowed)
}
