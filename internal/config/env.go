// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "POLYINT_"

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the POLYINT_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped as numeric, duration, string, and boolean.
var envOverrides = []envOverride{
	// Numeric overrides
	{"A", []string{"a"}, func(c *AppConfig, v string) { applyUint64(&c.A, v) }},
	{"B", []string{"b"}, func(c *AppConfig, v string) { applyUint64(&c.B, v) }},
	{"C", []string{"c"}, func(c *AppConfig, v string) { applyUint64(&c.C, v) }},
	{"D", []string{"d"}, func(c *AppConfig, v string) { applyUint64(&c.D, v) }},
	{"E", []string{"e"}, func(c *AppConfig, v string) { applyUint64(&c.E, v) }},
	{"FROM", []string{"from"}, func(c *AppConfig, v string) { applyUint64(&c.XStart, v) }},
	{"TO", []string{"to"}, func(c *AppConfig, v string) { applyUint64(&c.XEnd, v) }},
	{"INTERVALS", []string{"intervals"}, func(c *AppConfig, v string) { applyInt(&c.Intervals, v) }},
	{"PARALLEL_THRESHOLD", []string{"parallel-threshold"}, func(c *AppConfig, v string) { applyInt(&c.ParallelThreshold, v) }},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	// String overrides
	{"ALGO", []string{"algo"}, func(c *AppConfig, v string) { c.Algo = v }},
	{"COMBINE", []string{"combine"}, func(c *AppConfig, v string) { c.Combine = v }},
	{"OUTPUT", []string{"output", "o"}, func(c *AppConfig, v string) { c.OutputFile = v }},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) { c.MetricsAddr = v }},

	// Boolean overrides
	{"UNSAFE_XOR", []string{"unsafe-xor"}, func(c *AppConfig, v string) { c.UnsafeXor = parseBoolEnv(v, c.UnsafeXor) }},
	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) { c.Verbose = parseBoolEnv(v, c.Verbose) }},
	{"DETAILS", []string{"details"}, func(c *AppConfig, v string) { c.Details = parseBoolEnv(v, c.Details) }},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) { c.Quiet = parseBoolEnv(v, c.Quiet) }},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) { c.NoColor = parseBoolEnv(v, c.NoColor) }},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) { c.TUI = parseBoolEnv(v, c.TUI) }},
}

// applyUint64 parses v as uint64 into dst, ignoring malformed values.
func applyUint64(dst *uint64, v string) {
	if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
		*dst = parsed
	}
}

// applyInt parses v as int into dst, ignoring malformed values.
func applyInt(dst *int, v string) {
	if parsed, err := strconv.Atoi(v); err == nil {
		*dst = parsed
	}
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive). Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
