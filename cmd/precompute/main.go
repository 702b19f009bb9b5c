// cmd/precompute/main.go
//
// Offline opener-table generator. Runs the exact entropy ranker over
// the answers list against itself — the one computation the service
// never performs at runtime — and writes the versioned openers.json
// consumed by the server at startup.
//
// Usage:
//   precompute -answers path/to/answers.txt -out assets/openers.json -top 10
//
// With no -answers flag the embedded development list is used, which
// keeps the shipped table reproducible from the repo alone.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	answersPath := flag.String("answers", "", "answers list file (default: embedded list)")
	outPath := flag.String("out", "assets/openers.json", "output table path")
	top := flag.Int("top", 10, "number of openers to keep")
	flag.Parse()

	answers, source, err := loadAnswers(*answersPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "precompute:", err)
		os.Exit(1)
	}
	fmt.Printf("ranking %d answers against themselves\n", len(answers))

	bar := progressbar.Default(int64(len(answers)))
	openers, err := solver.RankByEntropy(context.Background(), answers, answers, func(done, total int) {
		// done is cumulative; reports can arrive out of order from
		// the parallel chunks, Set keeps the bar monotone enough.
		_ = bar.Set(done)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "precompute:", err)
		os.Exit(1)
	}
	if len(openers) > *top {
		openers = openers[:*top]
	}

	table := solver.OpenerTable{Version: 1, Source: source, Openers: openers}
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "precompute:", err)
		os.Exit(1)
	}
	data = append(data, '\n')
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "precompute:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d openers to %s (best: %s, %.4f bits)\n",
		len(openers), *outPath, openers[0].Word, openers[0].Entropy)
}

// loadAnswers reads the answers list from a file or the embedded
// default, returning the list plus a source label for the table.
func loadAnswers(path string) ([]string, string, error) {
	if path == "" {
		list, err := assets.AnswersList()
		return list, "embedded-dev-answers", err
	}
	list, err := words.LoadList(path)
	return list, filepath.Base(path), err
}
