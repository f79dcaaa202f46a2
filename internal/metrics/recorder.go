package metrics

import "time"

// ResultLabel enumerates result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailure ResultLabel = "failure"
)

// BuildOutcomeLabel is the final status of a state build.
type BuildOutcomeLabel string

const (
	BuildOutcomeSuccess     BuildOutcomeLabel = "success"
	BuildOutcomeInvalid     BuildOutcomeLabel = "invalid"
	BuildOutcomeUnsupported BuildOutcomeLabel = "unsupported"
	BuildOutcomeFailed      BuildOutcomeLabel = "failed"
)

// Recorder defines observability hooks for state builds, range parsing and
// snapshot storage. Implementations may forward to Prometheus. All methods
// must be safe for nil receivers when using the NoopRecorder (allowing
// optional injection).
type Recorder interface {
	ObserveBuildDuration(model, instrument string, d time.Duration)
	IncBuildOutcome(model, instrument string, outcome BuildOutcomeLabel)
	IncParseResult(grammar string, result ResultLabel)
	IncValidationFailure(model string)
	IncStoreOperation(op string, result ResultLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(string, string, time.Duration)  {}
func (NoopRecorder) IncBuildOutcome(string, string, BuildOutcomeLabel)   {}
func (NoopRecorder) IncParseResult(string, ResultLabel)                  {}
func (NoopRecorder) IncValidationFailure(string)                         {}
func (NoopRecorder) IncStoreOperation(string, ResultLabel)               {}

// Result maps an error to a ResultLabel.
func Result(err error) ResultLabel {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
