package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	reg                *prom.Registry
	buildDuration      *prom.HistogramVec
	buildOutcome       *prom.CounterVec
	parseResults       *prom.CounterVec
	validationFailures *prom.CounterVec
	storeOperations    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.buildDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sansstate",
			Name:      "build_duration_seconds",
			Help:      "Duration of state builds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"model", "instrument"})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sansstate",
			Name:      "build_outcomes_total",
			Help:      "State build outcomes by final status",
		}, []string{"model", "instrument", "outcome"})
		pr.parseResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sansstate",
			Name:      "parse_results_total",
			Help:      "Range string parse results by grammar",
		}, []string{"grammar", "result"})
		pr.validationFailures = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sansstate",
			Name:      "validation_failures_total",
			Help:      "Cross-field validation failures by model",
		}, []string{"model"})
		pr.storeOperations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sansstate",
			Name:      "store_operations_total",
			Help:      "Snapshot store operations by result",
		}, []string{"op", "result"})
		reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.parseResults, pr.validationFailures, pr.storeOperations)
	})
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.reg
}

// WriteTextfile writes every registered metric in the text exposition
// format, for collection by the node exporter textfile collector.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if p == nil || p.reg == nil {
		return nil
	}
	return prom.WriteToTextfile(path, p.reg)
}

func (p *PrometheusRecorder) ObserveBuildDuration(model, instrument string, d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.WithLabelValues(model, instrument).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(model, instrument string, outcome BuildOutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(model, instrument, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncParseResult(grammar string, result ResultLabel) {
	if p == nil || p.parseResults == nil {
		return
	}
	p.parseResults.WithLabelValues(grammar, string(result)).Inc()
}

func (p *PrometheusRecorder) IncValidationFailure(model string) {
	if p == nil || p.validationFailures == nil {
		return
	}
	p.validationFailures.WithLabelValues(model).Inc()
}

func (p *PrometheusRecorder) IncStoreOperation(op string, result ResultLabel) {
	if p == nil || p.storeOperations == nil {
		return
	}
	p.storeOperations.WithLabelValues(op, string(result)).Inc()
}
