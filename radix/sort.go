// Package radix sorts slices of fixed-width numbers in place with a least
// significant digit radix sort.
//
// Signed integers and floats are mapped into an unsigned key domain whose
// natural order matches their numeric order, so negative values come first
// and -0.0 sorts directly before +0.0. The order of NaNs is undefined: they
// are neither the minimum nor the maximum, they go wherever their bit
// pattern happens to put them.
//
// Sorting is single threaded. Every call allocates its own histograms and
// buffers and keeps nothing once it returns.
package radix

import "fmt"

// Stats describes the work a sort performed.
type Stats struct {
	Digits        int  // digit positions of the element type
	Passes        int  // scatter passes executed
	AlreadySorted bool // input was non-decreasing and left untouched
	CopiedBack    bool // result was written back from a work buffer
}

// Sort sorts data in ascending order.
func Sort[T Number](data []T) {
	SortStats(data)
}

// SortStats sorts data in ascending order and reports what it did.
func SortStats[T Number](data []T) Stats {
	switch d := any(data).(type) {
	case []uint8:
		return sortWith(d, uint8Codec)
	case []uint16:
		return sortWith(d, uint16Codec)
	case []uint32:
		return sortWith(d, uint32Codec)
	case []uint64:
		return sortWith(d, uint64Codec)
	case []int8:
		return sortWith(d, int8Codec)
	case []int16:
		return sortWith(d, int16Codec)
	case []int32:
		return sortWith(d, int32Codec)
	case []int64:
		return sortWith(d, int64Codec)
	case []float32:
		return sortWith(d, float32Codec)
	case []float64:
		return sortWith(d, float64Codec)
	}
	panic(fmt.Sprintf("radix: unsupported element type %T", data))
}

func sortWith[T Number, K Unsigned](data []T, c codec[T, K]) Stats {
	stats := Stats{Digits: c.scheme.Digits}
	if len(data) < 2 {
		return stats
	}

	hist, sorted := buildHistograms(data, c)
	if sorted {
		stats.AlreadySorted = true
		return stats
	}

	w := newWorkspace(data, c)
	scatterFirst(data, w.bufs[0], hist.cursors(0), c)
	w.run(c.scheme, hist)
	stats.Passes = c.scheme.Digits
	stats.CopiedBack = writeBack(data, w, c)
	return stats
}
