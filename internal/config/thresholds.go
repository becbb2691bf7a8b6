package config

import (
	"runtime"

	"github.com/agbru/polyint/internal/integral"
)

// Threshold resolution chain (highest priority first):
//  1. CLI flag (--parallel-threshold)
//  2. Environment variable (POLYINT_PARALLEL_THRESHOLD)
//  3. Adaptive hardware estimation (this file)
//  4. Static default in integral/constants.go

// ApplyAdaptiveThresholds fills in the parallel quadrature threshold based on
// hardware characteristics when no explicit value was configured. Only the
// zero default is replaced, preserving user overrides.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = EstimateOptimalQuadratureThreshold()
	}
	return cfg
}

// EstimateOptimalQuadratureThreshold provides a heuristic estimate of the
// interval count at which chunking the trapezoid sum across goroutines pays
// for the goroutine startup cost, without running benchmarks.
func EstimateOptimalQuadratureThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 0 // No parallelism
	case numCPU <= 4:
		return integral.DefaultParallelQuadratureThreshold
	case numCPU <= 16:
		return integral.DefaultParallelQuadratureThreshold / 2
	default:
		return integral.DefaultParallelQuadratureThreshold / 4
	}
}
