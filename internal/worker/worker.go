// internal/worker/worker.go
//
// Background ranking worker: keeps O(n^2) suggestion computation off
// the request path. Single producer, single consumer, request /
// response / progress message protocol.
//
// Discipline:
//   - At most one computation in flight. Submit while busy returns
//     ErrBusy; requests are never queued. Callers retry after the
//     in-flight computation resolves or is canceled.
//   - Progress messages are best-effort and non-blocking: a slow
//     consumer drops updates, never stalls the computation.
//   - Cancel is destructive. The in-flight run's output is discarded
//     entirely (no partial results) and the worker is immediately
//     ready for a new request; the superseded goroutine winds down on
//     its own once it observes its canceled context.
//   - A panic inside the compute function surfaces as a response
//     wrapping ErrComputeFailed; session state is never touched by
//     this package.

package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

var (
	// ErrBusy reports that a computation is already in flight.
	// An expected, recoverable condition, not an error to log.
	ErrBusy = errors.New("worker: computation already in progress")

	// ErrComputeFailed wraps an unexpected compute-side fault.
	ErrComputeFailed = errors.New("worker: computation failed")
)

// Task is the unit of work a request runs. It receives a context that
// is canceled when the request is superseded, and a progress callback
// to forward to the ranker.
type Task func(ctx context.Context, progress solver.ProgressFunc) (*solver.Result, error)

// Request asks the worker to run one ranking computation.
type Request struct {
	ID  string // correlates progress and response messages
	Run Task
}

// Progress is one incremental progress message.
type Progress struct {
	ID    string
	Done  int
	Total int
}

// Percent is Done/Total scaled to [0,100]; 100 when Total is zero.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 100
	}
	return 100 * float64(p.Done) / float64(p.Total)
}

// Response is the terminal message for a request: a result or an
// error, never both.
type Response struct {
	ID     string
	Result *solver.Result
	Err    error
}

// Worker owns the compute goroutine lifecycle. Safe for concurrent
// use; the zero value is not usable, construct with New.
type Worker struct {
	mu     sync.Mutex
	busy   bool
	gen    uint64 // generation of the current run; bumped to orphan it
	cancel context.CancelFunc

	results  chan Response
	progress chan Progress
}

// New constructs an idle Worker.
func New() *Worker {
	return &Worker{
		results:  make(chan Response, 1),
		progress: make(chan Progress, 16),
	}
}

// Results delivers one Response per non-canceled request. A response
// left unread when the next one lands is replaced, never queued.
func (w *Worker) Results() <-chan Response { return w.results }

// Progress delivers best-effort incremental updates.
func (w *Worker) Progress() <-chan Progress { return w.progress }

// Busy reports whether a computation is in flight.
func (w *Worker) Busy() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.busy
}

// Submit starts a computation. Returns ErrBusy if one is in flight.
func (w *Worker) Submit(req Request) error {
	if req.Run == nil {
		return fmt.Errorf("worker: request %q has no task", req.ID)
	}

	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return ErrBusy
	}
	w.busy = true
	w.gen++
	gen := w.gen
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.mu.Unlock()

	go w.run(ctx, cancel, gen, req)
	return nil
}

// Cancel discards the in-flight computation, if any. The worker is
// ready for a new request immediately; nothing is delivered for the
// canceled run. A finished-but-unread response is discarded too: after
// Cancel the results channel carries nothing from before it.
func (w *Worker) Cancel() {
	w.mu.Lock()
	// Bump even when idle: a run that already cleared busy but has not
	// delivered yet is orphaned by the generation change.
	w.gen++
	w.busy = false
	cancel := w.cancel
	w.cancel = nil
	select {
	case <-w.results: // drop a delivered-but-unread response
	default:
	}
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// run executes one request and delivers its response unless the run
// was orphaned by Cancel in the meantime.
func (w *Worker) run(ctx context.Context, cancel context.CancelFunc, gen uint64, req Request) {
	defer cancel()

	var (
		res *solver.Result
		err error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				res, err = nil, fmt.Errorf("%w: panic: %v", ErrComputeFailed, r)
			}
		}()
		res, err = req.Run(ctx, func(done, total int) {
			select {
			case w.progress <- Progress{ID: req.ID, Done: done, Total: total}:
			default:
			}
		})
	}()

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return
	}
	w.busy = false
	w.cancel = nil
	if errors.Is(err, context.Canceled) {
		return
	}
	// Delivery happens under the lock so Cancel can never race between
	// the generation check and the send. The send cannot block: only
	// one non-orphaned run exists at a time and any unread predecessor
	// is drained first.
	select {
	case <-w.results:
	default:
	}
	w.results <- Response{ID: req.ID, Result: res, Err: err}
}
