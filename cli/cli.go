package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ChristianF88/radixsort/bench"
	"github.com/ChristianF88/radixsort/config"
	"github.com/ChristianF88/radixsort/generator"
	"github.com/ChristianF88/radixsort/numfile"
	"github.com/ChristianF88/radixsort/version"
	cli "github.com/urfave/cli/v2"
)

// parseDate attempts to parse the build date
func parseDate(d string) time.Time {
	t, err := time.Parse(time.RFC3339, d)
	if err != nil {
		return time.Now()
	}
	return t
}

// Shared flag definitions
var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to configuration file (mutually exclusive with suite flags)",
	}

	// Suite flags
	typesFlag = &cli.StringSliceFlag{
		Name:  "types",
		Usage: "Element types to benchmark (e.g., 'int32,float64'). Defaults to all types.",
	}
	sizesFlag = &cli.IntSliceFlag{
		Name:  "sizes",
		Usage: "Input sizes to benchmark (e.g., '1000,100000')",
		Value: cli.NewIntSlice(1000, 100000),
	}
	repeatsFlag = &cli.IntFlag{
		Name:  "repeats",
		Usage: "Timed repetitions per case",
		Value: config.DefaultRepeats,
	}
	seedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed for the input generators",
		Value: config.DefaultSeed,
	}
	distributionFlag = &cli.StringFlag{
		Name:  "distribution",
		Usage: fmt.Sprintf("Input distribution, one of %v", generator.Names()),
		Value: config.DefaultDistribution,
	}
	maxFlag = &cli.Float64Flag{
		Name:  "max",
		Usage: "Exclusive upper bound for the uniform and gaussian distributions",
		Value: generator.DefaultMax,
	}
	baselineFlag = &cli.StringFlag{
		Name:  "baseline",
		Usage: fmt.Sprintf("Comparison sort, one of %v", bench.Baselines()),
		Value: config.DefaultBaseline,
	}

	// Output flags
	plotPathFlag = &cli.StringFlag{
		Name:  "plotPath",
		Usage: "Path where to save the HTML chart (e.g., '/path/to/bench.html'). If not provided, no chart will be generated.",
	}
	reportPathFlag = &cli.StringFlag{
		Name:  "reportPath",
		Usage: "Path where to save the JSON report in addition to printing it",
	}
	compactFlag = &cli.BoolFlag{
		Name:  "compact",
		Usage: "Output compact JSON (no pretty printing)",
		Value: false,
	}
	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Output plain text format for easy readability",
		Value: false,
	}
	tuiFlag = &cli.BoolFlag{
		Name:  "tui",
		Usage: "Launch TUI (Terminal User Interface) mode",
		Value: false,
	}

	// Sort flags
	typeFlag = &cli.StringFlag{
		Name:     "type",
		Usage:    fmt.Sprintf("Element type of the file, one of %v", numfile.TypeNames()),
		Required: true,
	}
	inFlag = &cli.StringFlag{
		Name:     "in",
		Usage:    "Input file ('-' for stdin, text format only)",
		Required: true,
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Output file (defaults to stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "File format: 'text' (one number per line) or 'binary' (packed little-endian)",
		Value: numfile.FormatText,
	}
)

// Shared validation functions
func validateConfigModeFlags(c *cli.Context, allowedFlags []string) error {
	allowed := make(map[string]bool)
	for _, flag := range allowedFlags {
		allowed[flag] = true
	}

	flagsToCheck := []string{
		"types", "sizes", "repeats", "seed", "distribution", "max", "baseline",
		"plotPath", "reportPath", "tui", "compact", "plain",
	}

	for _, flag := range flagsToCheck {
		if c.IsSet(flag) && !allowed[flag] {
			return fmt.Errorf("when using --config, only %v flags are allowed", allowedFlags)
		}
	}
	return nil
}

func validateTypes(types []string) error {
	for _, name := range types {
		if _, err := numfile.Width(name); err != nil {
			return err
		}
	}
	return nil
}

func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}
	for _, size := range sizes {
		if size < 0 {
			return fmt.Errorf("invalid size %d: sizes must not be negative", size)
		}
	}
	return nil
}

func validateDistribution(name string) error {
	if !generator.Valid(name) {
		return fmt.Errorf("%w: %q (choose from %v)", generator.ErrUnknownDistribution, name, generator.Names())
	}
	return nil
}

func validateBaseline(name string) error {
	if !bench.ValidBaseline(name) {
		return fmt.Errorf("%w: %q (choose from %v)", bench.ErrUnknownBaseline, name, bench.Baselines())
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case numfile.FormatText, numfile.FormatBinary:
		return nil
	}
	return fmt.Errorf("invalid format %q: use %q or %q", format, numfile.FormatText, numfile.FormatBinary)
}

func validatePlotPath(plotPath string) error {
	if plotPath != "" {
		plotDir := filepath.Dir(plotPath)
		if plotDir == "." {
			plotDir, _ = os.Getwd()
		}
		if _, err := os.Stat(plotDir); os.IsNotExist(err) {
			return fmt.Errorf("plot directory does not exist: %s", plotDir)
		}
	}
	return nil
}

func validateInputFile(path string) error {
	if path == "-" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	return nil
}

// handleBenchCommand processes the bench command
func handleBenchCommand(c *cli.Context) error {
	configPath := c.String("config")
	if configPath != "" {
		return handleBenchConfigMode(c, configPath)
	}
	return handleBenchFlagsMode(c)
}

// handleBenchConfigMode handles the bench command when using a config file
func handleBenchConfigMode(c *cli.Context, configPath string) error {
	if err := validateConfigModeFlags(c, []string{"tui", "compact", "plain"}); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateBaseline(cfg.Global.Baseline); err != nil {
		return err
	}
	if err := validatePlotPath(cfg.Output.PlotPath); err != nil {
		return err
	}

	return BenchFromConfig(c.Context, cfg, outputConfigFrom(c))
}

// handleBenchFlagsMode handles the bench command when using CLI flags only
func handleBenchFlagsMode(c *cli.Context) error {
	types := c.StringSlice("types")
	if len(types) == 0 {
		types = numfile.TypeNames()
	}
	if err := validateTypes(types); err != nil {
		return err
	}

	sizes := c.IntSlice("sizes")
	if err := validateSizes(sizes); err != nil {
		return err
	}
	if c.Int("repeats") < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", c.Int("repeats"))
	}
	if err := validateDistribution(c.String("distribution")); err != nil {
		return err
	}
	if c.Float64("max") <= 0 {
		return fmt.Errorf("max must be positive, got %v", c.Float64("max"))
	}
	if err := validateBaseline(c.String("baseline")); err != nil {
		return err
	}
	if err := validatePlotPath(c.String("plotPath")); err != nil {
		return err
	}

	suite := bench.Suite{
		Name:         "cli",
		Types:        types,
		Sizes:        sizes,
		Distribution: c.String("distribution"),
		Max:          c.Float64("max"),
	}
	opts := bench.Options{
		Seed:     c.Uint64("seed"),
		Repeats:  c.Int("repeats"),
		Baseline: c.String("baseline"),
	}
	paths := config.OutputConfig{
		ReportPath: c.String("reportPath"),
		PlotPath:   c.String("plotPath"),
	}

	return Bench(c.Context, []bench.Suite{suite}, opts, paths, outputConfigFrom(c))
}

func outputConfigFrom(c *cli.Context) OutputConfig {
	return OutputConfig{
		Compact: c.Bool("compact"),
		Plain:   c.Bool("plain"),
		TUI:     c.Bool("tui"),
	}
}

// handleSortCommand processes the sort command
func handleSortCommand(c *cli.Context) error {
	typeName := c.String("type")
	if err := validateTypes([]string{typeName}); err != nil {
		return err
	}
	format := c.String("format")
	if err := validateFormat(format); err != nil {
		return err
	}
	in := c.String("in")
	if in == "-" && format == numfile.FormatBinary {
		return fmt.Errorf("binary input must be a file, not stdin")
	}
	if err := validateInputFile(in); err != nil {
		return err
	}

	return SortFile(typeName, in, c.String("out"), format)
}

var App = &cli.App{
	Name:     "radixsort",
	Usage:    "LSD radix sort for fixed-width numbers, with a benchmark harness",
	Version:  version.Version,
	Compiled: parseDate(version.Date),
	Commands: []*cli.Command{
		{
			Name:  "bench",
			Usage: "Time radix sort against a comparison sort and verify the results",
			Flags: []cli.Flag{
				// Configuration
				configFlag,
				// Suite flags
				typesFlag,
				sizesFlag,
				repeatsFlag,
				seedFlag,
				distributionFlag,
				maxFlag,
				baselineFlag,
				// Output flags
				plotPathFlag,
				reportPathFlag,
				compactFlag,
				plainFlag,
				tuiFlag,
			},
			Action: handleBenchCommand,
		},
		{
			Name:  "check",
			Usage: "Sort fixed vectors of every element type and report any unsorted result",
			Action: func(c *cli.Context) error {
				return Check()
			},
		},
		{
			Name:  "sort",
			Usage: "Sort a file of numbers",
			Flags: []cli.Flag{
				typeFlag,
				inFlag,
				outFlag,
				formatFlag,
			},
			Action: handleSortCommand,
		},
	},
}
