// Package server exposes a small HTTP endpoint publishing Prometheus
// metrics about integral calculations. It is enabled with the
// --metrics-addr flag and runs alongside the CLI calculation, not as a
// standalone service.
package server
