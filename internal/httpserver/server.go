// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solver endpoints: POST /solver/new, POST /solver/guess,
//     GET /solver/suggestions, POST /solver/reset.
//   - Anonymous session cookie for correlating a browser with its
//     sessions (no accounts, no auth).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Guess submission is synchronous validation + state update; the
//     expensive suggestion ranking is dispatched to the background
//     worker and polled via /solver/suggestions.

package httpserver

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Server bundles router, session store, solver, and per-session
// compute coordinators.
type Server struct {
	r        *chi.Mux
	store    store.Store
	solver   *solver.Solver
	computes *computeRegistry
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, sv *solver.Solver) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		store:    st,
		solver:   sv,
		computes: newComputeRegistry(sv),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solver/new","POST /solver/guess","GET /solver/suggestions","POST /solver/reset"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Solver endpoints
	s.r.Post("/solver/new", s.handleNewSession)
	s.r.Post("/solver/guess", s.handleGuess)
	s.r.Get("/solver/suggestions", s.handleSuggestions)
	s.r.Post("/solver/reset", s.handleReset)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	// Debug: word list counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := words.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- SESSIONS ------------------------------------

// newSessionRes is the payload for POST /solver/new.
type newSessionRes struct {
	SessionID string `json:"sessionId"`
	Answers   int    `json:"answers"` // initial pool size
}

// handleNewSession creates a fresh session seeded with the full
// curated pool and ties it to the caller's anonymous cookie.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	sess := game.New(s.solver.Dictionaries())
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.ensureAnonID(w, r)
	_ = json.NewEncoder(w).Encode(newSessionRes{SessionID: sess.ID, Answers: len(sess.Remaining)})
}

// guessReq/Res payloads for POST /solver/guess. Marks are the clue
// colors reported by the board being solved: 0=absent, 1=present,
// 2=correct, one per position.
type guessReq struct {
	SessionID string                 `json:"sessionId"`
	Word      string                 `json:"word"`
	Marks     [pattern.WordLen]uint8 `json:"marks"`
}
type guessRes struct {
	Pattern   string `json:"pattern"` // e.g. "gy--g"
	Status    string `json:"status"`
	Remaining int    `json:"remaining"`
	Solution  string `json:"solution,omitempty"`
}

// handleGuess validates and applies a guess, then dispatches a fresh
// suggestion ranking for the updated history, superseding any ranking
// still running for the previous state.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	var digits [pattern.WordLen]pattern.Clue
	for i, m := range req.Marks {
		if m > uint8(pattern.ClueCorrect) {
			http.Error(w, `{"error":"invalid_marks"}`, http.StatusBadRequest)
			return
		}
		digits[i] = pattern.Clue(m)
	}

	gr, err := sess.AddGuess(req.Word, digits)
	if err != nil {
		writeGuessError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Kick off ranking for the new state; a stale in-flight ranking
	// for the prior state is canceled, not awaited.
	if !sess.Status.Terminal() {
		s.computes.dispatch(sess.ID, sess.Guesses)
	}

	p, _ := pattern.FromClues(gr.Clues)
	_ = json.NewEncoder(w).Encode(guessRes{
		Pattern:   p.String(),
		Status:    string(sess.Status),
		Remaining: len(sess.Remaining),
		Solution:  sess.Solution,
	})
}

// writeGuessError maps the engine's typed validation failures onto
// HTTP statuses. All leave the session unchanged.
func writeGuessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameOver):
		http.Error(w, `{"error":"game_over"}`, http.StatusConflict)
	case errors.Is(err, game.ErrAlreadyGuessed):
		http.Error(w, `{"error":"already_guessed"}`, http.StatusConflict)
	case errors.Is(err, game.ErrNotInWordList):
		http.Error(w, `{"error":"not_in_word_list"}`, http.StatusBadRequest)
	default:
		http.Error(w, `{"error":"invalid_guess"}`, http.StatusBadRequest)
	}
}

// resetReq is the payload for POST /solver/reset.
type resetReq struct {
	SessionID string `json:"sessionId"`
}

// handleReset returns a session to a fresh in-progress state with the
// full initial pool and drops any in-flight ranking for it.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, err := s.store.Get(r.Context(), req.SessionID)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}
	sess.Reset()
	s.computes.drop(sess.ID)
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "remaining": len(sess.Remaining)})
}

// --------------------------- anon session cookie ---------------------------

const anonCookieName = "solver_anon"

// ensureAnonID returns an existing anon cookie or sets a new one.
// Used to associate a browser with its solver sessions.
func (s *Server) ensureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(anonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     anonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   os.Getenv("NODE_ENV") == "production",
		SameSite: func() http.SameSite {
			if os.Getenv("NODE_ENV") == "production" {
				return http.SameSiteNoneMode
			}
			return http.SameSiteLaxMode
		}(),
		Expires: time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(b[:])
	if len(s) > 22 {
		return s[:22]
	}
	return s
}
