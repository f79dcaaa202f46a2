package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveBuildDuration("move", "SANS2D", 150*time.Microsecond)
	pr.IncBuildOutcome("move", "SANS2D", BuildOutcomeSuccess)
	pr.IncParseResult("event_slices", ResultSuccess)
	pr.IncValidationFailure("move")
	pr.IncStoreOperation("save", ResultSuccess)
	// Basic scrape to ensure metrics encode without panic
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(mfs))
	}
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveBuildDuration("move", "LOQ", time.Second)
	pr.IncBuildOutcome("move", "LOQ", BuildOutcomeFailed)
	pr.IncParseResult("rebin", ResultFailure)
	pr.IncValidationFailure("move")
	pr.IncStoreOperation("get", ResultFailure)
	if err := pr.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")); err != nil {
		t.Fatalf("nil recorder should not fail: %v", err)
	}
	if pr.Registry() != nil {
		t.Fatal("nil recorder has no registry")
	}
}

func TestPrometheusRecorderWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncBuildOutcome("move", "LOQ", BuildOutcomeSuccess)

	path := filepath.Join(t.TempDir(), "sansstate.prom")
	if err := pr.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), `sansstate_build_outcomes_total{instrument="LOQ",model="move",outcome="success"} 1`) {
		t.Fatalf("unexpected textfile content:\n%s", data)
	}
}
