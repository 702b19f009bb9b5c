// assets/embed.go
//
// Embedded default word lists and the precomputed opener table.
// The word lists are a trimmed development set; production deployments
// point WORDS_ANSWERS_FILE/WORDS_ALLOWED_FILE (or WORDS_DB_FILE) at
// the full lists and regenerate openers.json with cmd/precompute.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed allowed.txt answers.txt openers.json
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}

func AllowedList() ([]string, error) {
	return readLines("allowed.txt")
}

// OpenerTable returns the raw precomputed opener table JSON.
func OpenerTable() ([]byte, error) {
	return FS.ReadFile("openers.json")
}
