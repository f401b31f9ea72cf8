package generator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ChristianF88/radixsort/radix"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrUnknownDistribution is returned for a distribution name that has no generator.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Distribution names accepted by Generate.
const (
	Normal     = "normal"
	Uniform    = "uniform"
	Gaussian   = "gaussian"
	Ascending  = "ascending"
	Descending = "descending"
	Equal      = "equal"
	Median3    = "median3"
)

// DefaultMax is the exclusive upper bound of the uniform and gaussian generators.
const DefaultMax = (1 << 14) - 1

// normalSpread is the range of the normal generator's mean and its standard deviation.
const normalSpread = 31337

// Options tune the generators. The zero value uses seed 0 and DefaultMax.
type Options struct {
	Seed uint64
	Max  float64
}

func (o Options) max() float64 {
	if o.Max <= 0 {
		return DefaultMax
	}
	return o.Max
}

// Names lists every distribution, sorted.
func Names() []string {
	names := []string{Normal, Uniform, Gaussian, Ascending, Descending, Equal, Median3}
	sort.Strings(names)
	return names
}

// Valid reports whether name is a known distribution.
func Valid(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Generate returns n values of type T drawn from the named distribution.
// The same name, n and options always produce the same values.
func Generate[T radix.Number](name string, n int, opts Options) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative count %d", n)
	}
	switch name {
	case Normal:
		return NormalValues[T](n, opts.Seed), nil
	case Uniform:
		return UniformValues[T](n, opts.Seed, opts.max()), nil
	case Gaussian:
		return GaussianValues[T](n, opts.Seed, opts.max()), nil
	case Ascending:
		return AscendingValues[T](n), nil
	case Descending:
		return DescendingValues[T](n), nil
	case Equal:
		return EqualValues[T](n), nil
	case Median3:
		return Median3Values[T](n), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// NormalValues draws a mean uniformly from [0, 31337) and then n values from
// a normal distribution around it with standard deviation 31337.
func NormalValues[T radix.Number](n int, seed uint64) []T {
	src := rand.NewSource(seed)
	mean := distuv.Uniform{Min: 0, Max: normalSpread, Src: src}.Rand()
	normal := distuv.Normal{Mu: mean, Sigma: normalSpread, Src: src}

	out := make([]T, n)
	for i := range out {
		out[i] = fromFloat[T](normal.Rand())
	}
	return out
}

// UniformValues returns n whole numbers drawn uniformly from [0, max).
func UniformValues[T radix.Number](n int, seed uint64, max float64) []T {
	uniform := distuv.Uniform{Min: 0, Max: max, Src: rand.NewSource(seed)}

	out := make([]T, n)
	for i := range out {
		out[i] = fromFloat[T](math.Floor(uniform.Rand()))
	}
	return out
}

// GaussianValues returns n whole numbers from a normal distribution centred
// on max/2 with a standard deviation of max/8.
func GaussianValues[T radix.Number](n int, seed uint64, max float64) []T {
	mean := max / 2
	normal := distuv.Normal{Mu: mean, Sigma: mean / 4, Src: rand.NewSource(seed)}

	out := make([]T, n)
	for i := range out {
		out[i] = fromFloat[T](math.Round(normal.Rand()))
	}
	return out
}

// AscendingValues returns 1..n.
func AscendingValues[T radix.Number](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fromFloat[T](float64(i + 1))
	}
	return out
}

// DescendingValues returns n..1.
func DescendingValues[T radix.Number](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fromFloat[T](float64(n - i))
	}
	return out
}

// EqualValues returns n copies of 42.
func EqualValues[T radix.Number](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = 42
	}
	return out
}

// Median3Values builds the median-of-3 pattern: every range gets its low,
// middle and high slot set to the recursion depth before it is halved.
func Median3Values[T radix.Number](n int) []T {
	depth := make([]int, n)
	median3(depth, 0, n-1, 1)

	out := make([]T, n)
	for i, d := range depth {
		out[i] = fromFloat[T](float64(d))
	}
	return out
}

func median3(depth []int, lo, hi, num int) {
	if lo >= hi {
		return
	}
	mi := lo + (hi-lo)/2
	for _, i := range []int{lo, mi, hi} {
		if depth[i] == 0 {
			depth[i] = num
		}
	}
	median3(depth, lo, mi, num+1)
	median3(depth, mi+1, hi, num+1)
}

// fromFloat converts f to T. Integer types truncate towards zero and wrap
// like a two's complement cast.
func fromFloat[T radix.Number](f float64) T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(f)
	}
	return T(int64(f))
}
