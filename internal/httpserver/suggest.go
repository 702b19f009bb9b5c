// internal/httpserver/suggest.go
//
// Suggestion compute coordination for the solver endpoints.
// One background worker per session, at most one ranking in flight:
//   - a new guess supersedes (cancels) any stale in-flight ranking,
//   - progress messages are folded into a percent for polling,
//   - completed results are cached until the next dispatch.
//
// GET /solver/suggestions never blocks on the computation; it reports
// idle-with-results or computing-with-progress and lets the client
// poll.

package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/pattern"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/worker"
)

// computeRegistry lazily creates one computeState per session.
type computeRegistry struct {
	sv     *solver.Solver
	mu     sync.Mutex
	states map[string]*computeState
}

func newComputeRegistry(sv *solver.Solver) *computeRegistry {
	return &computeRegistry{sv: sv, states: make(map[string]*computeState)}
}

// get returns the session's compute state, creating it (and starting
// its message consumer) on first use.
func (r *computeRegistry) get(sessionID string) *computeState {
	r.mu.Lock()
	defer r.mu.Unlock()
	cs, ok := r.states[sessionID]
	if !ok {
		cs = &computeState{w: worker.New()}
		r.states[sessionID] = cs
		go cs.consume()
	}
	return cs
}

// dispatch starts a ranking for the given history snapshot,
// superseding any ranking still in flight for this session.
func (r *computeRegistry) dispatch(sessionID string, history []pattern.GuessResult) {
	cs := r.get(sessionID)
	snapshot := append([]pattern.GuessResult(nil), history...)
	cs.start(r.sv, fmt.Sprintf("%s#%d", sessionID, len(snapshot)), snapshot)
}

// drop cancels and forgets any computation state for the session.
func (r *computeRegistry) drop(sessionID string) {
	r.mu.Lock()
	cs, ok := r.states[sessionID]
	r.mu.Unlock()
	if ok {
		cs.clear()
	}
}

// computeState tracks one session's ranking lifecycle.
type computeState struct {
	w *worker.Worker

	mu        sync.Mutex
	computing bool
	percent   float64
	result    *solver.Result
	err       error
}

// start cancels any stale run and submits a new one.
func (cs *computeState) start(sv *solver.Solver, id string, history []pattern.GuessResult) {
	cs.w.Cancel()

	cs.mu.Lock()
	cs.computing = true
	cs.percent = 0
	cs.result = nil
	cs.err = nil
	cs.mu.Unlock()

	err := cs.w.Submit(worker.Request{
		ID: id,
		Run: func(ctx context.Context, progress solver.ProgressFunc) (*solver.Result, error) {
			return sv.Suggest(ctx, history, progress)
		},
	})
	if err != nil {
		// Cancel freed the worker, so only a racing dispatch can land
		// here; that dispatch owns the in-flight state.
		log.Debug().Str("request", id).Err(err).Msg("suggestion dispatch superseded")
	}
}

// clear cancels any in-flight run and resets to idle with no results.
func (cs *computeState) clear() {
	cs.w.Cancel()
	cs.mu.Lock()
	cs.computing = false
	cs.percent = 0
	cs.result = nil
	cs.err = nil
	cs.mu.Unlock()
}

// consume folds the worker's progress and result messages into the
// polled snapshot. Runs for the life of the session.
func (cs *computeState) consume() {
	for {
		select {
		case p := <-cs.w.Progress():
			cs.mu.Lock()
			if cs.computing {
				cs.percent = p.Percent()
			}
			cs.mu.Unlock()
		case res := <-cs.w.Results():
			cs.mu.Lock()
			cs.computing = false
			cs.percent = 100
			cs.result = res.Result
			cs.err = res.Err
			cs.mu.Unlock()
			if res.Err != nil {
				log.Warn().Str("request", res.ID).Err(res.Err).Msg("suggestion computation failed")
			} else if res.Result != nil {
				log.Debug().
					Str("request", res.ID).
					Str("mode", string(res.Result.Mode)).
					Dur("elapsed", res.Result.Elapsed).
					Int("suggestions", len(res.Result.Suggestions)).
					Msg("suggestion computation done")
			}
		}
	}
}

// snapshot returns the current lifecycle view.
func (cs *computeState) snapshot() (computing bool, percent float64, result *solver.Result, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.computing, cs.percent, cs.result, cs.err
}

// ------------------------------ HTTP handler -------------------------------

// suggestionsRes is the payload for GET /solver/suggestions.
type suggestionsRes struct {
	SessionID    string              `json:"sessionId"`
	GameStatus   string              `json:"gameStatus"`
	Status       string              `json:"status"`   // idle | computing
	Progress     float64             `json:"progress"` // percent, 0-100
	Openers      bool                `json:"openers"`
	Mode         string              `json:"mode,omitempty"`
	Solved       bool                `json:"solved,omitempty"`
	NoCandidates bool                `json:"noCandidates,omitempty"`
	Suggestions  []solver.Suggestion `json:"suggestions"`
	Remaining    int                 `json:"remaining"`
	ElapsedMs    int64               `json:"elapsedMs,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// handleSuggestions reports the ranked suggestion list for a session.
// With no guesses yet it answers instantly from the precomputed opener
// table; otherwise it reports the background computation's state.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), r.URL.Query().Get("sessionId"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	res := suggestionsRes{
		SessionID:   sess.ID,
		GameStatus:  string(sess.Status),
		Status:      "idle",
		Progress:    100,
		Suggestions: []solver.Suggestion{},
		Remaining:   len(sess.Remaining),
	}

	if len(sess.Guesses) == 0 {
		// Opener table lookup; no computation involved.
		result, err := s.solver.Suggest(r.Context(), nil, nil)
		if err != nil {
			http.Error(w, `{"error":"suggest_failed"}`, http.StatusInternalServerError)
			return
		}
		res.Openers = result.Openers
		res.Mode = string(result.Mode)
		res.Suggestions = result.Suggestions
		_ = json.NewEncoder(w).Encode(res)
		return
	}

	cs := s.computes.get(sess.ID)
	computing, percent, result, cerr := cs.snapshot()

	switch {
	case computing:
		res.Status = "computing"
		res.Progress = percent
	case cerr != nil:
		// Worker fault: session state is unaffected, caller may retry
		// by re-submitting a guess or polling after a redispatch.
		res.Error = cerr.Error()
	case result != nil:
		res.Mode = string(result.Mode)
		res.Solved = result.Solved
		res.NoCandidates = result.NoCandidates
		res.Suggestions = result.Suggestions
		res.ElapsedMs = result.Elapsed.Milliseconds()
	default:
		// No computation ran for this state yet (e.g. process restart
		// with a restored session): dispatch one now.
		s.computes.dispatch(sess.ID, sess.Guesses)
		res.Status = "computing"
		res.Progress = 0
	}
	_ = json.NewEncoder(w).Encode(res)
}
