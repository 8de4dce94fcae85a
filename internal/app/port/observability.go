package port

import (
	"time"

	"multichain_balance_checker/internal/domain/entity"
)

// Logger defines a common logging interface for the application.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Lookup outcomes reported to MetricsRecorder.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDisabled = "disabled"
)

// MetricsRecorder receives counters about lookups and runs.
type MetricsRecorder interface {
	// ObserveLookup counts one network lookup for one address.
	ObserveLookup(checker, network, outcome string)
	// ObserveAddress counts one processed address; degraded marks a failed record.
	ObserveAddress(checker string, degraded bool)
	// ObserveRun records the end of a batch.
	ObserveRun(checker string, state entity.RunState, duration time.Duration)
}

// ProgressFunc receives the completed share of a batch, 0..100.
type ProgressFunc func(percent int)
