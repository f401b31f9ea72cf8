package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/ChristianF88/radixsort/generator"
	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/radix"
	"github.com/ChristianF88/radixsort/verify"
	"golang.org/x/sync/errgroup"
)

// ErrMismatch is returned when the radix result differs from the baseline result.
var ErrMismatch = errors.New("radix result differs from baseline")

// insertionLimit is the size above which the insertion baseline draws a warning.
const insertionLimit = 1 << 15

// Suite is a set of element types timed at a set of sizes on one distribution.
type Suite struct {
	Name         string
	Types        []string
	Sizes        []int
	Distribution string
	Max          float64
}

// Options control a benchmark run.
type Options struct {
	Seed     uint64
	Repeats  int
	Baseline string
	// Progress is called after every finished case, in order.
	Progress func(suite string, done, total int, c output.CaseResult)
}

// Verify checks a radix result against its input and the baseline result.
func Verify[T radix.Number](sorter string, input, got, want []T) error {
	if err := verify.CheckSorted(sorter, got); err != nil {
		return err
	}
	if i := verify.Mismatch(got, want); i >= 0 {
		return fmt.Errorf("%w at index %d", ErrMismatch, i)
	}
	if !verify.SameMultiset(input, got) {
		return fmt.Errorf("%w: %s changed the multiset of values", ErrMismatch, sorter)
	}
	return nil
}

// Run times every suite and appends the results to report.
// Verification failures mark the case unverified and are recorded as report
// errors; they do not stop the run.
func Run(ctx context.Context, suites []Suite, opts Options, report *output.JSONOutput) error {
	if opts.Repeats < 1 {
		opts.Repeats = 1
	}
	if !ValidBaseline(opts.Baseline) {
		return fmt.Errorf("%w: %q (choose from %v)", ErrUnknownBaseline, opts.Baseline, Baselines())
	}
	report.Metadata.Seed = opts.Seed
	report.Metadata.Repeats = opts.Repeats
	report.Metadata.Baseline = opts.Baseline

	total := 0
	for _, s := range suites {
		total += len(s.Types) * len(s.Sizes)
	}

	done := 0
	for _, s := range suites {
		result, err := runSuite(ctx, s, opts, report, &done, total)
		if err != nil {
			return fmt.Errorf("suite %q: %w", s.Name, err)
		}
		report.AddSuite(result)
	}
	return nil
}

func runSuite(ctx context.Context, s Suite, opts Options, report *output.JSONOutput, done *int, total int) (output.SuiteResult, error) {
	result := output.SuiteResult{Name: s.Name, Distribution: s.Distribution}
	genOpts := generator.Options{Seed: opts.Seed, Max: s.Max}

	var jobs []job
	for _, typeName := range s.Types {
		for _, size := range s.Sizes {
			j, err := newJob(typeName, size, s.Distribution, genOpts)
			if err != nil {
				return result, err
			}
			jobs = append(jobs, j)
			if opts.Baseline == BaselineInsertion && size > insertionLimit {
				report.AddWarning("slow_baseline",
					fmt.Sprintf("insertion baseline on %s/%d is quadratic", typeName, size), 1)
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return j.generate()
		})
	}
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("generating inputs: %w", err)
	}

	for _, j := range jobs {
		c, err := j.run(ctx, opts.Repeats, opts.Baseline)
		switch {
		case err == nil:
		case errors.Is(err, ErrMismatch) || isNotSorted(err):
			report.AddError("verification", err.Error(), 1)
		default:
			return result, err
		}
		result.Cases = append(result.Cases, c)
		*done++
		if opts.Progress != nil {
			opts.Progress(s.Name, *done, total, c)
		}
	}
	return result, nil
}

func isNotSorted(err error) bool {
	var notSorted *verify.NotSortedError
	return errors.As(err, &notSorted)
}
