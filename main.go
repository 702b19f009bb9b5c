package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	answersCount, allowedCount := words.Stats()
	log.Info().Int("answers", answersCount).Int("allowed", allowedCount).Msg("word lists loaded")

	openers := loadOpeners()

	sv := solver.New(
		solver.Dictionaries{Answers: words.Answers(), Allowed: words.Allowed()},
		openers,
		solver.Options{
			HeuristicThreshold: getEnvInt("SOLVER_HEURISTIC_THRESHOLD", 0),
			MaxCandidates:      getEnvInt("SOLVER_MAX_CANDIDATES", 0),
			ExtraCandidates:    getEnvInt("SOLVER_EXTRA_CANDIDATES", 0),
		},
	)

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, sv)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wordle-solver")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// loadOpeners reads the embedded precomputed opener table. A missing
// or invalid table is not fatal: the solver falls back to ranking the
// initial pool on the first request.
func loadOpeners() []solver.Suggestion {
	data, err := assets.OpenerTable()
	if err != nil {
		log.Warn().Err(err).Msg("no embedded opener table")
		return nil
	}
	openers, err := solver.LoadOpeners(data)
	if err != nil {
		log.Warn().Err(err).Msg("invalid opener table, first request will compute")
		return nil
	}
	return openers
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
