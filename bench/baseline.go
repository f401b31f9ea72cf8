package bench

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownBaseline is returned for a baseline name with no sorter.
var ErrUnknownBaseline = errors.New("unknown baseline sorter")

// Baseline names accepted by the harness.
const (
	BaselineStd       = "std"
	BaselineHeap      = "heap"
	BaselineInsertion = "insertion"
)

// Baselines lists the baseline names, sorted.
func Baselines() []string {
	return []string{BaselineHeap, BaselineInsertion, BaselineStd}
}

// ValidBaseline reports whether name is a known baseline.
func ValidBaseline(name string) bool {
	return slices.Contains(Baselines(), name)
}

// BaselineFor returns the comparison sort registered under name.
func BaselineFor[T cmp.Ordered](name string) (func([]T), error) {
	switch name {
	case BaselineStd:
		return func(data []T) { slices.Sort(data) }, nil
	case BaselineHeap:
		return HeapSort[T], nil
	case BaselineInsertion:
		return InsertionSort[T], nil
	}
	return nil, fmt.Errorf("%w: %q (choose from %v)", ErrUnknownBaseline, name, Baselines())
}

// HeapSort sorts data ascending in place.
func HeapSort[T cmp.Ordered](data []T) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n)
	}
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end)
	}
}

func siftDown[T cmp.Ordered](data []T, root, n int) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && data[child] < data[child+1] {
			child++
		}
		if !(data[root] < data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}

// InsertionSort sorts data ascending in place. Quadratic; meant for small inputs.
func InsertionSort[T cmp.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i - 1
		for j >= 0 && v < data[j] {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = v
	}
}
