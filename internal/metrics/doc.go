// Package metrics provides observability hooks for state builds.
//
// The package uses the Null Object pattern: components hold a Recorder and
// default to NoopRecorder, so no nil checks are needed at call sites.
//
//	type Director struct {
//	    recorder metrics.Recorder
//	}
//
// When metrics are enabled the CLI injects a PrometheusRecorder bound to its
// own registry and writes the registry to a node-exporter textfile when the
// command finishes.
package metrics
