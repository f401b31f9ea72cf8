package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ChristianF88/radixsort/bench"
	"github.com/ChristianF88/radixsort/config"
	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/tui"
)

// stdout receives every report and sorted file written to standard output
var stdout io.Writer = os.Stdout

// OutputConfig contains output formatting options
type OutputConfig struct {
	Compact bool
	Plain   bool
	TUI     bool
}

// BenchFromConfig runs every suite of a loaded configuration
func BenchFromConfig(ctx context.Context, cfg *config.Config, outputConfig OutputConfig) error {
	var suites []bench.Suite
	for _, name := range cfg.SuiteNames() {
		s := cfg.Suites[name]
		suites = append(suites, bench.Suite{
			Name:         name,
			Types:        s.Types,
			Sizes:        s.Sizes,
			Distribution: s.Distribution,
			Max:          s.Max,
		})
	}
	opts := bench.Options{
		Seed:     cfg.Global.Seed,
		Repeats:  cfg.Global.Repeats,
		Baseline: cfg.Global.Baseline,
	}
	return Bench(ctx, suites, opts, *cfg.Output, outputConfig)
}

// Bench runs the harness over suites and writes the report in the requested form.
// It returns an error if the run failed or any case failed verification.
func Bench(ctx context.Context, suites []bench.Suite, opts bench.Options, paths config.OutputConfig, outputConfig OutputConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if outputConfig.TUI {
		return executeTUI(ctx, suites, opts, paths)
	}

	start := time.Now()
	report := output.NewJSONOutput("bench", start)
	runErr := bench.Run(ctx, suites, opts, report)
	if runErr != nil {
		report.AddError("run", runErr.Error(), 1)
	}
	report.UpdateDuration(start)

	if runErr == nil {
		finishReport(report, paths)
	}
	outputResult(report, outputConfig)

	if runErr != nil {
		return runErr
	}
	return failure(report)
}

// executeTUI runs the harness in the background and shows its progress in the TUI
func executeTUI(ctx context.Context, suites []bench.Suite, opts bench.Options, paths config.OutputConfig) error {
	app := tui.NewApp("radixsort benchmark")
	opts.Progress = app.AddCase

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		start := time.Now()
		report := output.NewJSONOutput("bench", start)
		if err := bench.Run(ctx, suites, opts, report); err != nil {
			app.ShowError(fmt.Sprintf("Benchmark failed: %v", err))
			return
		}
		report.UpdateDuration(start)
		finishReport(report, paths)
		app.SetReport(report)
	}()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// finishReport writes the optional chart and JSON file, noting the outcome in the report
func finishReport(report *output.JSONOutput, paths config.OutputConfig) {
	if paths.PlotPath != "" {
		plotStart := time.Now()
		if err := output.PlotTimings(report, paths.PlotPath); err != nil {
			report.AddError("plot", err.Error(), 1)
		} else {
			report.AddWarning("info", fmt.Sprintf("Chart generated in %v at %s", time.Since(plotStart), paths.PlotPath), 0)
		}
	}
	if paths.ReportPath != "" {
		data, err := report.ToJSON()
		if err == nil {
			err = os.WriteFile(paths.ReportPath, data, 0o644)
		}
		if err != nil {
			report.AddError("report", err.Error(), 1)
		}
	}
}

func failure(report *output.JSONOutput) error {
	if !report.Failed() {
		return nil
	}
	failed := 0
	for _, s := range report.Suites {
		for _, c := range s.Cases {
			if !c.Verified {
				failed++
			}
		}
	}
	return fmt.Errorf("%d case(s) failed verification, %d error(s) recorded", failed, len(report.Errors))
}

func outputResult(jsonOutput *output.JSONOutput, outputConfig OutputConfig) {
	if outputConfig.Plain {
		outputPlain(stdout, jsonOutput)
		return
	}

	var jsonBytes []byte
	var err error

	if outputConfig.Compact {
		jsonBytes, err = jsonOutput.ToCompactJSON()
	} else {
		jsonBytes, err = jsonOutput.ToJSON()
	}

	if err != nil {
		fmt.Fprintf(stdout, `{"error": "failed to marshal JSON output: %v"}`+"\n", err)
		return
	}
	fmt.Fprintln(stdout, string(jsonBytes))
}

const (
	heavyRule = "═══════════════════════════════════════════════════════════════════════════════"
	lightRule = "───────────────────────────────────────────────────────────────────────────────"
)

func outputPlain(w io.Writer, jsonOutput *output.JSONOutput) {
	m := jsonOutput.Metadata
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "                          radixsort Benchmark Results")
	fmt.Fprintf(w, "%s\n\n", heavyRule)

	fmt.Fprintln(w, "RUN OVERVIEW")
	fmt.Fprintln(w, lightRule)
	fmt.Fprintf(w, "CPU:             %s (%d physical / %d logical cores)\n", m.Host.CPU, m.Host.PhysicalCores, m.Host.LogicalCores)
	fmt.Fprintf(w, "Runtime:         %s %s/%s\n", m.Host.GoVersion, m.Host.GOOS, m.Host.GOARCH)
	fmt.Fprintf(w, "Generated:       %s\n", m.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Duration:        %d ms\n", m.DurationMS)
	fmt.Fprintf(w, "Baseline:        %s\n", m.Baseline)
	fmt.Fprintf(w, "Seed / Repeats:  %d / %d\n\n", m.Seed, m.Repeats)

	for i, suite := range jsonOutput.Suites {
		fmt.Fprintf(w, "SUITE: %s (%s)\n", suite.Name, suite.Distribution)
		fmt.Fprintln(w, lightRule)
		fmt.Fprintf(w, "  %-8s %12s %10s %10s %9s %8s %6s  %s\n",
			"type", "size", "radix", m.Baseline, "ns/elem", "speedup", "passes", "status")
		for _, c := range suite.Cases {
			status := "ok"
			if !c.Verified {
				status = "FAILED"
			} else if c.AlreadySorted {
				status = "ok (presorted)"
			}
			fmt.Fprintf(w, "  %-8s %12s %10s %10s %9.2f %7.2fx %6d  %s\n",
				c.Type, output.FormatNumber(c.Size), output.FormatNS(c.Radix.MeanNS),
				output.FormatNS(c.Baseline.MeanNS), c.Radix.NSPerElement, c.Speedup, c.Passes, status)
		}
		fmt.Fprintln(w)

		if i < len(jsonOutput.Suites)-1 {
			fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", len([]rune(lightRule))))
		}
	}

	if len(jsonOutput.Warnings) > 0 || len(jsonOutput.Errors) > 0 {
		fmt.Fprintln(w, "DIAGNOSTICS")
		fmt.Fprintln(w, lightRule)
		if len(jsonOutput.Warnings) > 0 {
			fmt.Fprintln(w, "Warnings:")
			for _, warning := range jsonOutput.Warnings {
				fmt.Fprintf(w, "  • %s\n", warning.Message)
			}
		}
		if len(jsonOutput.Errors) > 0 {
			fmt.Fprintln(w, "Errors:")
			for _, e := range jsonOutput.Errors {
				fmt.Fprintf(w, "  • %s\n", e.Message)
			}
		}
		fmt.Fprintln(w)
	}
}
