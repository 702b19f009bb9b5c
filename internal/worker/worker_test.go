package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/wordle-solver/internal/solver"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blockingTask returns a task that waits on release (or cancellation)
// before returning the given result.
func blockingTask(release <-chan struct{}, res *solver.Result) Task {
	return func(ctx context.Context, progress solver.ProgressFunc) (*solver.Result, error) {
		select {
		case <-release:
			return res, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func waitResponse(t *testing.T, w *Worker) Response {
	t.Helper()
	select {
	case res := <-w.Results():
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for worker response")
		return Response{}
	}
}

func TestSubmitAndReceive(t *testing.T) {
	w := New()
	want := &solver.Result{Mode: solver.ModeEntropy}
	release := make(chan struct{})

	require.NoError(t, w.Submit(Request{ID: "r1", Run: blockingTask(release, want)}))
	assert.True(t, w.Busy())

	close(release)
	res := waitResponse(t, w)
	assert.Equal(t, "r1", res.ID)
	assert.Same(t, want, res.Result)
	assert.NoError(t, res.Err)
	assert.False(t, w.Busy())
}

func TestSubmitWhileBusy(t *testing.T) {
	w := New()
	release := make(chan struct{})
	require.NoError(t, w.Submit(Request{ID: "r1", Run: blockingTask(release, nil)}))

	err := w.Submit(Request{ID: "r2", Run: blockingTask(nil, nil)})
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	res := waitResponse(t, w)
	assert.Equal(t, "r1", res.ID, "only the accepted request runs")
}

func TestSubmitRequiresTask(t *testing.T) {
	w := New()
	assert.Error(t, w.Submit(Request{ID: "r1"}))
	assert.False(t, w.Busy())
}

func TestCancelDiscardsInFlightRun(t *testing.T) {
	w := New()
	stale := &solver.Result{Mode: solver.ModeEntropy}
	require.NoError(t, w.Submit(Request{ID: "stale", Run: blockingTask(nil, stale)}))

	w.Cancel()
	assert.False(t, w.Busy(), "worker is free immediately, not when the goroutine exits")

	// The next request is accepted right away and its response is the
	// only one ever delivered.
	fresh := &solver.Result{Mode: solver.ModeHeuristic}
	release := make(chan struct{})
	require.NoError(t, w.Submit(Request{ID: "fresh", Run: blockingTask(release, fresh)}))
	close(release)

	res := waitResponse(t, w)
	assert.Equal(t, "fresh", res.ID)
	assert.Same(t, fresh, res.Result)

	select {
	case res := <-w.Results():
		t.Fatalf("canceled run leaked a response: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelDiscardsUnreadResponse(t *testing.T) {
	// The run may finish and free the worker before Cancel lands; the
	// already-delivered response must still be suppressed.
	w := New()
	stale := &solver.Result{Mode: solver.ModeEntropy}
	require.NoError(t, w.Submit(Request{ID: "stale", Run: blockingTask(closedChan(), stale)}))

	deadline := time.Now().Add(5 * time.Second)
	for w.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("worker never went idle")
		}
		time.Sleep(time.Millisecond)
	}

	w.Cancel()
	select {
	case res := <-w.Results():
		t.Fatalf("canceled worker delivered a stale response: %+v", res)
	case <-time.After(50 * time.Millisecond):
	}

	// A fresh request still works.
	fresh := &solver.Result{Mode: solver.ModeHeuristic}
	require.NoError(t, w.Submit(Request{ID: "fresh", Run: blockingTask(closedChan(), fresh)}))
	res := waitResponse(t, w)
	assert.Equal(t, "fresh", res.ID)
	assert.Same(t, fresh, res.Result)
}

func TestCancelWhenIdle(t *testing.T) {
	w := New()
	w.Cancel()
	assert.False(t, w.Busy())
	require.NoError(t, w.Submit(Request{ID: "r1", Run: blockingTask(closedChan(), nil)}))
	waitResponse(t, w)
}

func TestCancelOrphansSlowTask(t *testing.T) {
	// A task that ignores its context for a while still may not
	// deliver once canceled.
	w := New()
	started := make(chan struct{})
	release := make(chan struct{})
	require.NoError(t, w.Submit(Request{ID: "slow", Run: func(ctx context.Context, _ solver.ProgressFunc) (*solver.Result, error) {
		close(started)
		<-release
		return &solver.Result{}, nil
	}}))

	<-started
	w.Cancel()
	close(release)

	select {
	case res := <-w.Results():
		t.Fatalf("orphaned run leaked a response: %+v", res)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestProgressForwarding(t *testing.T) {
	w := New()
	require.NoError(t, w.Submit(Request{ID: "r1", Run: func(ctx context.Context, progress solver.ProgressFunc) (*solver.Result, error) {
		progress(100, 250)
		progress(250, 250)
		return &solver.Result{}, nil
	}}))

	waitResponse(t, w)

	var got []Progress
	for {
		select {
		case p := <-w.Progress():
			got = append(got, p)
			continue
		default:
		}
		break
	}
	require.Len(t, got, 2)
	assert.Equal(t, Progress{ID: "r1", Done: 100, Total: 250}, got[0])
	assert.InDelta(t, 40.0, got[0].Percent(), 1e-9)
	assert.InDelta(t, 100.0, got[1].Percent(), 1e-9)
}

func TestProgressNeverBlocks(t *testing.T) {
	// Nobody drains the progress channel; the task must still finish.
	w := New()
	require.NoError(t, w.Submit(Request{ID: "r1", Run: func(ctx context.Context, progress solver.ProgressFunc) (*solver.Result, error) {
		for i := 0; i < 1000; i++ {
			progress(i, 1000)
		}
		return &solver.Result{}, nil
	}}))
	waitResponse(t, w)
}

func TestPanicBecomesComputeFailed(t *testing.T) {
	w := New()
	require.NoError(t, w.Submit(Request{ID: "r1", Run: func(ctx context.Context, _ solver.ProgressFunc) (*solver.Result, error) {
		panic("boom")
	}}))

	res := waitResponse(t, w)
	assert.Nil(t, res.Result)
	assert.ErrorIs(t, res.Err, ErrComputeFailed)
	assert.Contains(t, res.Err.Error(), "boom")
	assert.False(t, w.Busy(), "a panicked worker accepts new requests")
}

func TestPercentZeroTotal(t *testing.T) {
	assert.Equal(t, 100.0, Progress{}.Percent())
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
