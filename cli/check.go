package cli

import (
	"fmt"
	"io"

	"github.com/ChristianF88/radixsort/radix"
	"github.com/ChristianF88/radixsort/verify"
)

var (
	positiveVector = []int{541, 212, 5125, 6342, 61, 243, 15, 99, 1234, 123, 1524}
	negativeVector = []int{541, -212, 5125, 6342, -61, -243, 15, -99, 1234, -123, 1524}
)

type checkResult struct {
	name   string
	err    error
	values string
}

// Check sorts fixed vectors cast to every element type and prints the ones
// that do not come out sorted.
func Check() error {
	return runChecks(stdout)
}

func runChecks(w io.Writer) error {
	results := []checkResult{
		checkVector("int8/empty", []int8{}),
		checkVector("int8/single", []int8{0}),

		checkVector("uint16/positive", castVector[uint16](positiveVector)),
		checkVector("int16/positive", castVector[int16](positiveVector)),
		checkVector("uint32/positive", castVector[uint32](positiveVector)),
		checkVector("int32/positive", castVector[int32](positiveVector)),
		checkVector("uint64/positive", castVector[uint64](positiveVector)),
		checkVector("int64/positive", castVector[int64](positiveVector)),
		checkVector("float32/positive", castVector[float32](positiveVector)),
		checkVector("float64/positive", castVector[float64](positiveVector)),

		checkVector("int16/negative", castVector[int16](negativeVector)),
		checkVector("int32/negative", castVector[int32](negativeVector)),
		checkVector("int64/negative", castVector[int64](negativeVector)),
		checkVector("float32/negative", castVector[float32](negativeVector)),
		checkVector("float64/negative", castVector[float64](negativeVector)),

		checkVector("uint8/wrapped", castVector[uint8](negativeVector)),
		checkVector("int8/wrapped", castVector[int8](negativeVector)),
	}

	failed := 0
	for _, r := range results {
		if r.err == nil {
			continue
		}
		failed++
		fmt.Fprintf(w, "%s: %v\n  %s\n", r.name, r.err, r.values)
	}
	fmt.Fprintf(w, "Radix sort check done: %d/%d sorted.\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d check(s) not sorted", failed)
	}
	return nil
}

func castVector[T radix.Number](src []int) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = T(v)
	}
	return out
}

func checkVector[T radix.Number](name string, data []T) checkResult {
	radix.Sort(data)
	r := checkResult{name: name, err: verify.CheckSorted(name, data)}
	if r.err != nil {
		r.values = fmt.Sprint(data)
	}
	return r
}
