package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/ChristianF88/radixsort/generator"
	"github.com/ChristianF88/radixsort/numfile"
	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/pools"
	"github.com/ChristianF88/radixsort/radix"
	"github.com/ChristianF88/radixsort/verify"
)

// job is one element type at one size.
type job interface {
	generate() error
	run(ctx context.Context, repeats int, baseline string) (output.CaseResult, error)
}

type typedJob[T radix.Number] struct {
	typeName     string
	size         int
	distribution string
	genOpts      generator.Options
	input        []T
	pool         *pools.SlicePool[T]
}

func newJob(typeName string, size int, distribution string, genOpts generator.Options) (job, error) {
	switch typeName {
	case "uint8":
		return newTypedJob[uint8](typeName, size, distribution, genOpts), nil
	case "uint16":
		return newTypedJob[uint16](typeName, size, distribution, genOpts), nil
	case "uint32":
		return newTypedJob[uint32](typeName, size, distribution, genOpts), nil
	case "uint64":
		return newTypedJob[uint64](typeName, size, distribution, genOpts), nil
	case "int8":
		return newTypedJob[int8](typeName, size, distribution, genOpts), nil
	case "int16":
		return newTypedJob[int16](typeName, size, distribution, genOpts), nil
	case "int32":
		return newTypedJob[int32](typeName, size, distribution, genOpts), nil
	case "int64":
		return newTypedJob[int64](typeName, size, distribution, genOpts), nil
	case "float32":
		return newTypedJob[float32](typeName, size, distribution, genOpts), nil
	case "float64":
		return newTypedJob[float64](typeName, size, distribution, genOpts), nil
	}
	return nil, fmt.Errorf("%w: %q", numfile.ErrUnknownType, typeName)
}

func newTypedJob[T radix.Number](typeName string, size int, distribution string, genOpts generator.Options) *typedJob[T] {
	return &typedJob[T]{
		typeName:     typeName,
		size:         size,
		distribution: distribution,
		genOpts:      genOpts,
		pool:         pools.NewSlicePool[T](0),
	}
}

func (j *typedJob[T]) generate() error {
	input, err := generator.Generate[T](j.distribution, j.size, j.genOpts)
	if err != nil {
		return err
	}
	j.input = input
	return nil
}

func (j *typedJob[T]) run(ctx context.Context, repeats int, baseline string) (output.CaseResult, error) {
	result := output.CaseResult{
		Type:         j.typeName,
		Size:         j.size,
		Distribution: j.distribution,
		Fingerprint:  verify.Fingerprint(j.input),
	}

	baseSort, err := BaselineFor[T](baseline)
	if err != nil {
		return result, err
	}

	radixTimes := make([]float64, 0, repeats)
	baseTimes := make([]float64, 0, repeats)
	for r := 0; r < repeats; r++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		got := j.pool.Clone(j.input)
		want := j.pool.Clone(j.input)

		start := time.Now()
		stats := radix.SortStats(got)
		radixTimes = append(radixTimes, float64(time.Since(start).Nanoseconds()))

		start = time.Now()
		baseSort(want)
		baseTimes = append(baseTimes, float64(time.Since(start).Nanoseconds()))

		if r == 0 {
			result.Digits = stats.Digits
			result.Passes = stats.Passes
			result.AlreadySorted = stats.AlreadySorted
			if err := Verify("radix", j.input, got, want); err != nil {
				j.pool.Put(got)
				j.pool.Put(want)
				return result, fmt.Errorf("%s/%d: %w", j.typeName, j.size, err)
			}
		} else if i := verify.Mismatch(got, want); i >= 0 {
			j.pool.Put(got)
			j.pool.Put(want)
			return result, fmt.Errorf("%s/%d repeat %d: %w at index %d", j.typeName, j.size, r, ErrMismatch, i)
		}

		j.pool.Put(got)
		j.pool.Put(want)
	}

	result.Verified = true
	result.Radix = summarize("radix", radixTimes, j.size)
	result.Baseline = summarize(baseline, baseTimes, j.size)
	result.Speedup = speedup(result.Radix, result.Baseline)
	return result, nil
}
