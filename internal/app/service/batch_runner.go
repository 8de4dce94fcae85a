package service

import (
	"context"
	"strings"
	"sync/atomic"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"
)

// CheckFunc resolves one address into one record. It must not fail: errors belong inside the record.
type CheckFunc[R any] func(ctx context.Context, address string) R

// BatchResult is what a run accumulated, in input order.
type BatchResult[R any] struct {
	Records     []R
	Interrupted bool
	Processed   int
	Total       int
	// OutputPath is the file the records were written to, set by the checkers.
	OutputPath string
}

// BatchRunner walks an address list sequentially. It is single-use:
// Idle -> Running -> Completed | Interrupted.
type BatchRunner[R any] struct {
	check    CheckFunc[R]
	progress port.ProgressFunc

	state atomic.Int32
	stop  atomic.Bool
}

// NewBatchRunner creates a runner. progress may be nil.
func NewBatchRunner[R any](check CheckFunc[R], progress port.ProgressFunc) *BatchRunner[R] {
	return &BatchRunner[R]{check: check, progress: progress}
}

// State returns the current lifecycle state.
func (r *BatchRunner[R]) State() entity.RunState {
	return entity.RunState(r.state.Load())
}

// Stop asks the runner to exit before the next address. The address in flight always finishes.
// Safe to call from any goroutine, any number of times.
func (r *BatchRunner[R]) Stop() {
	r.stop.Store(true)
}

// Run processes every non-blank address in order and reports progress after each one.
// ctx is handed to every check unchanged; the runner never cancels it.
func (r *BatchRunner[R]) Run(ctx context.Context, addresses []string) (BatchResult[R], error) {
	if err := r.startable(); err != nil {
		return BatchResult[R]{}, err
	}
	addrs := NormalizeAddresses(addresses)
	if len(addrs) == 0 {
		return BatchResult[R]{}, entity.ErrNoAddresses
	}
	if !r.state.CompareAndSwap(int32(entity.RunStateIdle), int32(entity.RunStateRunning)) {
		if err := r.startable(); err != nil {
			return BatchResult[R]{}, err
		}
		return BatchResult[R]{}, entity.ErrRunnerBusy
	}

	result := BatchResult[R]{
		Records: make([]R, 0, len(addrs)),
		Total:   len(addrs),
	}
	for _, address := range addrs {
		if r.stop.Load() {
			result.Interrupted = true
			break
		}
		result.Records = append(result.Records, r.check(ctx, address))
		result.Processed++
		if r.progress != nil {
			r.progress(result.Processed * 100 / result.Total)
		}
	}

	if result.Interrupted {
		r.state.Store(int32(entity.RunStateInterrupted))
	} else {
		r.state.Store(int32(entity.RunStateCompleted))
	}
	return result, nil
}

func (r *BatchRunner[R]) startable() error {
	switch s := r.State(); {
	case s == entity.RunStateRunning:
		return entity.ErrRunnerBusy
	case s.Terminal():
		return entity.ErrRunnerFinished
	}
	return nil
}

// NormalizeAddresses trims every line and drops blank ones, keeping input order.
func NormalizeAddresses(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
