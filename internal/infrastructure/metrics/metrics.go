package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"multichain_balance_checker/internal/app/port"
	"multichain_balance_checker/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "balance_checker"

// Recorder implements port.MetricsRecorder with Prometheus collectors.
type Recorder struct {
	gatherer prometheus.Gatherer

	lookups     *prometheus.CounterVec
	addresses   *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.GaugeVec
}

var _ port.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r, err := NewRecorderWithRegistry(reg, reg)
	if err != nil {
		// a fresh registry cannot hold conflicting collectors
		panic(err)
	}
	return r
}

// NewRecorderWithRegistry registers the collectors on reg; gatherer is what WriteTextfile exports.
func NewRecorderWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Recorder, error) {
	r := &Recorder{
		gatherer: gatherer,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Balance lookups by checker, network and outcome.",
		}, []string{"checker", "network", "outcome"}),
		addresses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "addresses_total",
			Help:      "Processed addresses by checker and record status.",
		}, []string{"checker", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished batches by checker and final state.",
		}, []string{"checker", "state"}),
		runDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last batch per checker.",
		}, []string{"checker"}),
	}
	for _, c := range []prometheus.Collector{r.lookups, r.addresses, r.runs, r.runDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}
	return r, nil
}

// ObserveLookup implements port.MetricsRecorder.
func (r *Recorder) ObserveLookup(checker, network, outcome string) {
	r.lookups.WithLabelValues(checker, network, outcome).Inc()
}

// ObserveAddress implements port.MetricsRecorder.
func (r *Recorder) ObserveAddress(checker string, degraded bool) {
	status := "ok"
	if degraded {
		status = "degraded"
	}
	r.addresses.WithLabelValues(checker, status).Inc()
}

// ObserveRun implements port.MetricsRecorder.
func (r *Recorder) ObserveRun(checker string, state entity.RunState, duration time.Duration) {
	r.runs.WithLabelValues(checker, state.String()).Inc()
	r.runDuration.WithLabelValues(checker).Set(duration.Seconds())
}

// WriteTextfile exports every gathered metric in the text exposition format,
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create metrics directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, r.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveLookup(string, string, string) {}

func (Nop) ObserveAddress(string, bool) {}

func (Nop) ObserveRun(string, entity.RunState, time.Duration) {}
