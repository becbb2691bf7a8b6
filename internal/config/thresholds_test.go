package config

import (
	"runtime"
	"testing"

	"github.com/agbru/polyint/internal/integral"
)

// TestEstimateOptimalQuadratureThreshold stays within the static default and
// matches the tier for the host CPU count.
func TestEstimateOptimalQuadratureThreshold(t *testing.T) {
	got := EstimateOptimalQuadratureThreshold()

	if got > integral.DefaultParallelQuadratureThreshold {
		t.Errorf("threshold %d exceeds the static default %d", got, integral.DefaultParallelQuadratureThreshold)
	}

	numCPU := runtime.NumCPU()
	want := integral.DefaultParallelQuadratureThreshold
	switch {
	case numCPU == 1:
		want = 0
	case numCPU <= 4:
		// static default
	case numCPU <= 16:
		want = integral.DefaultParallelQuadratureThreshold / 2
	default:
		want = integral.DefaultParallelQuadratureThreshold / 4
	}
	if got != want {
		t.Errorf("threshold = %d, want %d for %d CPUs", got, want, numCPU)
	}
}

// TestApplyAdaptiveThresholds only fills in the zero default.
func TestApplyAdaptiveThresholds(t *testing.T) {
	explicit := ApplyAdaptiveThresholds(AppConfig{ParallelThreshold: 123})
	if explicit.ParallelThreshold != 123 {
		t.Errorf("explicit threshold overwritten: %d", explicit.ParallelThreshold)
	}

	adaptive := ApplyAdaptiveThresholds(AppConfig{})
	if adaptive.ParallelThreshold != EstimateOptimalQuadratureThreshold() {
		t.Errorf("zero threshold not filled adaptively: %d", adaptive.ParallelThreshold)
	}
}
