package bench

import (
	"math"

	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/radix"
	"gonum.org/v1/gonum/stat"
)

// summarize reduces per-repeat durations in nanoseconds to a Timing.
// samples is sorted in place.
func summarize(sorter string, samples []float64, size int) output.Timing {
	t := output.Timing{Sorter: sorter}
	if len(samples) == 0 {
		return t
	}
	radix.Sort(samples)

	t.MeanNS = stat.Mean(samples, nil)
	t.MedianNS = stat.Quantile(0.5, stat.Empirical, samples, nil)
	t.MinNS = samples[0]
	if len(samples) > 1 {
		t.StdDevNS = stat.StdDev(samples, nil)
	}
	if math.IsNaN(t.StdDevNS) {
		t.StdDevNS = 0
	}
	if size > 0 {
		t.NSPerElement = t.MeanNS / float64(size)
	}
	return t
}

func speedup(radixTiming, baseline output.Timing) float64 {
	if radixTiming.MeanNS == 0 {
		return 0
	}
	return baseline.MeanNS / radixTiming.MeanNS
}
