// internal/words/sqlite.go
//
// SQLite-backed word list source, selected via WORDS_DB_FILE.
// Useful when the lists are curated in a database alongside other
// tooling rather than flat files.
//
// Expected schema:
//   CREATE TABLE answers (word TEXT PRIMARY KEY);
//   CREATE TABLE allowed (word TEXT PRIMARY KEY);
//
// Rows are normalized and validated the same way as file sources;
// invalid rows are skipped, not fatal.

package words

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// loadFromSQLite reads both word lists from the database at path.
func loadFromSQLite(path string) (ansList, allowList []string, err error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&mode=ro")
	if err != nil {
		return nil, nil, fmt.Errorf("words: open db %s: %w", path, err)
	}
	defer db.Close()

	if ansList, err = queryWords(db, `SELECT word FROM answers ORDER BY rowid`); err != nil {
		return nil, nil, fmt.Errorf("words: load answers: %w", err)
	}
	if allowList, err = queryWords(db, `SELECT word FROM allowed ORDER BY rowid`); err != nil {
		return nil, nil, fmt.Errorf("words: load allowed: %w", err)
	}
	return ansList, allowList, nil
}

// queryWords runs a single-column word query, keeping only valid
// 5-letter lowercase words.
func queryWords(db *sql.DB, query string) ([]string, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		w = strings.TrimSpace(strings.ToLower(w))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, rows.Err()
}
