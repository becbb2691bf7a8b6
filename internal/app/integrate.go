package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/polyint/internal/cli"
	apperrors "github.com/agbru/polyint/internal/errors"
	"github.com/agbru/polyint/internal/logging"
	"github.com/agbru/polyint/internal/orchestration"
	"github.com/agbru/polyint/internal/server"
	"github.com/agbru/polyint/internal/ui"
)

// runIntegrate orchestrates the execution of the CLI calculation command.
func (a *Application) runIntegrate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	// Optional metrics endpoint
	var metricsSrv *server.Server
	if a.Config.MetricsAddr != "" {
		metricsSrv = server.New(a.Config.MetricsAddr, server.NewMetrics(),
			logging.NewLogger(a.ErrWriter, "metrics"))
		metricsSrv.Start(ctx)
	}

	// Get calculators to run
	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	// Execute calculations
	req := a.Config.ToRequest()
	opts := a.Config.ToOptions()
	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, req, opts, progressReporter, progressOut)

	if metricsSrv != nil {
		for _, res := range results {
			status := "success"
			if res.Err != nil {
				status = "failure"
			}
			metricsSrv.Metrics().ObserveIntegration(res.Name, status, res.Duration)
		}
	}

	// Build output config for the CLI options
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	return a.analyzeResultsWithOutput(results, outputCfg, out)
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Handle quiet mode for single result. Save before printing so a failed
	// save never pairs a value on stdout with a failing exit code.
	if outputCfg.Quiet && bestResult != nil {
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		cli.DisplayQuietResult(out, bestResult.Result)
		return apperrors.ExitSuccess
	}

	// Use standard analysis for non-quiet mode
	presOpts := orchestration.PresentationOptions{
		Req:     a.Config.ToRequest(),
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	// Handle file output for non-quiet mode
	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

// findBestResult returns the most precise successful result: exact results
// win over approximate ones, then smaller tolerances, then shorter runs.
// Quiet mode and file output report this value, so it must match what the
// consistency analysis would present as the reference.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var bestResult *orchestration.CalculationResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if bestResult == nil || betterResult(results[i], *bestResult) {
			bestResult = &results[i]
		}
	}
	return bestResult
}

func betterResult(a, b orchestration.CalculationResult) bool {
	if a.Result.Exact != b.Result.Exact {
		return a.Result.Exact
	}
	if a.Result.Tolerance != b.Result.Tolerance {
		return a.Result.Tolerance < b.Result.Tolerance
	}
	return a.Duration < b.Duration
}

func (a *Application) saveResultIfNeeded(res *orchestration.CalculationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Result, a.Config.ToRequest(), res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
