package bench

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ChristianF88/radixsort/generator"
	"github.com/ChristianF88/radixsort/numfile"
	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/verify"
)

func TestRun(t *testing.T) {
	suites := []Suite{
		{
			Name:         "mixed",
			Types:        []string{"int8", "uint32", "float64"},
			Sizes:        []int{0, 1, 500},
			Distribution: generator.Normal,
		},
		{
			Name:         "sorted",
			Types:        []string{"int64"},
			Sizes:        []int{100},
			Distribution: generator.Ascending,
		},
	}

	var progress []int
	opts := Options{
		Seed:     42,
		Repeats:  2,
		Baseline: BaselineHeap,
		Progress: func(suite string, done, total int, c output.CaseResult) {
			if total != 10 {
				t.Errorf("total = %d, want 10", total)
			}
			progress = append(progress, done)
		},
	}

	report := output.NewJSONOutput("bench", time.Now())
	if err := Run(context.Background(), suites, opts, report); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.Suites) != 2 {
		t.Fatalf("expected 2 suites, got %d", len(report.Suites))
	}
	if len(report.Suites[0].Cases) != 9 {
		t.Errorf("expected 9 cases, got %d", len(report.Suites[0].Cases))
	}
	if len(progress) != 10 || progress[9] != 10 {
		t.Errorf("progress calls = %v", progress)
	}
	if report.Failed() {
		t.Errorf("report failed: %+v", report.Errors)
	}
	if report.Metadata.Seed != 42 || report.Metadata.Repeats != 2 || report.Metadata.Baseline != BaselineHeap {
		t.Errorf("metadata not filled: %+v", report.Metadata)
	}

	for _, c := range report.Suites[0].Cases {
		if !c.Verified {
			t.Errorf("%s/%d not verified", c.Type, c.Size)
		}
		if c.Baseline.Sorter != BaselineHeap || c.Radix.Sorter != "radix" {
			t.Errorf("sorter names %q/%q", c.Radix.Sorter, c.Baseline.Sorter)
		}
		if c.Size == 500 && c.Passes == 0 {
			t.Errorf("%s/500 reported no passes", c.Type)
		}
	}

	sorted := report.Suites[1].Cases[0]
	if !sorted.AlreadySorted || sorted.Passes != 0 {
		t.Errorf("ascending input should take the early exit: %+v", sorted)
	}
}

func TestRun_Errors(t *testing.T) {
	report := output.NewJSONOutput("bench", time.Now())

	err := Run(context.Background(), nil, Options{Baseline: "bogo"}, report)
	if !errors.Is(err, ErrUnknownBaseline) {
		t.Errorf("expected ErrUnknownBaseline, got %v", err)
	}

	bad := []Suite{{Name: "x", Types: []string{"complex64"}, Sizes: []int{1}, Distribution: generator.Normal}}
	err = Run(context.Background(), bad, Options{Baseline: BaselineStd}, report)
	if !errors.Is(err, numfile.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}

	bad = []Suite{{Name: "x", Types: []string{"int32"}, Sizes: []int{1}, Distribution: "zipf"}}
	err = Run(context.Background(), bad, Options{Baseline: BaselineStd}, report)
	if !errors.Is(err, generator.ErrUnknownDistribution) {
		t.Errorf("expected ErrUnknownDistribution, got %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suites := []Suite{{Name: "x", Types: []string{"int32"}, Sizes: []int{10}, Distribution: generator.Uniform}}
	err := Run(ctx, suites, Options{Baseline: BaselineStd, Repeats: 1}, output.NewJSONOutput("bench", time.Now()))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InsertionWarning(t *testing.T) {
	report := output.NewJSONOutput("bench", time.Now())
	suites := []Suite{{Name: "x", Types: []string{"uint8"}, Sizes: []int{insertionLimit + 1}, Distribution: generator.Equal}}
	if err := Run(context.Background(), suites, Options{Baseline: BaselineInsertion, Repeats: 1}, report); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Type != "slow_baseline" {
		t.Errorf("expected one slow_baseline warning, got %+v", report.Warnings)
	}
}

func TestVerify(t *testing.T) {
	input := []int32{3, 1, 2}

	if err := Verify("radix", input, []int32{1, 2, 3}, []int32{1, 2, 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	var notSorted *verify.NotSortedError
	err := Verify("radix", input, []int32{1, 3, 2}, []int32{1, 2, 3})
	if !errors.As(err, &notSorted) || notSorted.At != 2 {
		t.Errorf("expected NotSortedError at 2, got %v", err)
	}

	err = Verify("radix", input, []int32{1, 2, 4}, []int32{1, 2, 3})
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch, got %v", err)
	}

	// Sorted and equal to the baseline but not a permutation of the input.
	err = Verify("radix", input, []int32{1, 2, 2}, []int32{1, 2, 2})
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch for a changed multiset, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	timing := summarize("radix", []float64{300, 100, 200}, 10)
	if timing.MeanNS != 200 || timing.MedianNS != 200 || timing.MinNS != 100 {
		t.Errorf("unexpected summary %+v", timing)
	}
	if timing.StdDevNS != 100 {
		t.Errorf("StdDevNS = %v, want 100", timing.StdDevNS)
	}
	if timing.NSPerElement != 20 {
		t.Errorf("NSPerElement = %v, want 20", timing.NSPerElement)
	}

	single := summarize("radix", []float64{50}, 0)
	if single.StdDevNS != 0 || single.NSPerElement != 0 {
		t.Errorf("single sample summary %+v", single)
	}
	if empty := summarize("radix", nil, 5); empty.MeanNS != 0 {
		t.Errorf("empty summary %+v", empty)
	}
}

func TestSpeedup(t *testing.T) {
	if got := speedup(output.Timing{MeanNS: 10}, output.Timing{MeanNS: 40}); got != 4 {
		t.Errorf("speedup = %v, want 4", got)
	}
	if got := speedup(output.Timing{}, output.Timing{MeanNS: 40}); got != 0 {
		t.Errorf("speedup with zero radix time = %v, want 0", got)
	}
}

func BenchmarkRunSuite(b *testing.B) {
	suites := []Suite{{Name: "b", Types: []string{"int32", "float64"}, Sizes: []int{10000}, Distribution: generator.Normal}}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		report := output.NewJSONOutput("bench", time.Now())
		if err := Run(context.Background(), suites, Options{Seed: 42, Repeats: 1, Baseline: BaselineStd}, report); err != nil {
			b.Fatal(err)
		}
	}
}
