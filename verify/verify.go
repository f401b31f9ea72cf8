package verify

import (
	"encoding/binary"
	"fmt"

	"github.com/ChristianF88/radixsort/radix"
	"github.com/alphadose/haxmap"
	"github.com/cespare/xxhash/v2"
)

// NotSortedError reports that a sorter produced output that is not in
// ascending order.
type NotSortedError struct {
	Sorter string
	At     int // index of the first element smaller than its predecessor, -1 if unknown
}

func (e *NotSortedError) Error() string {
	msg := fmt.Sprintf("the result of %s is not correctly sorted", e.Sorter)
	if e.At >= 0 {
		msg += fmt.Sprintf(", the first violation is at index %d", e.At)
	}
	return msg
}

// FirstViolation returns the first index whose element is smaller than the
// one before it, or -1 if data is non-decreasing.
func FirstViolation[T radix.Number](data []T) int {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return i
		}
	}
	return -1
}

// IsSorted reports whether data is non-decreasing.
func IsSorted[T radix.Number](data []T) bool {
	return FirstViolation(data) < 0
}

// CheckSorted returns a *NotSortedError naming sorter if data is not sorted.
func CheckSorted[T radix.Number](sorter string, data []T) error {
	if at := FirstViolation(data); at >= 0 {
		return &NotSortedError{Sorter: sorter, At: at}
	}
	return nil
}

// Mismatch returns the first index at which a and b hold different values,
// len of the shorter slice if one is a prefix of the other, or -1 if they
// are equal. Values are compared with ==, so -0 and +0 match.
func Mismatch[T radix.Number](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// SameMultiset reports whether a and b hold the same bit patterns the same
// number of times, regardless of order.
func SameMultiset[T radix.Number](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	counts := haxmap.New[uint64, int](uintptr(max(len(a), 8)))
	for _, v := range a {
		k := radix.Key(v)
		c, _ := counts.Get(k)
		counts.Set(k, c+1)
	}
	for _, v := range b {
		k := radix.Key(v)
		c, ok := counts.Get(k)
		if !ok || c == 0 {
			return false
		}
		counts.Set(k, c-1)
	}

	balanced := true
	counts.ForEach(func(_ uint64, c int) bool {
		if c != 0 {
			balanced = false
			return false
		}
		return true
	})
	return balanced
}

// Fingerprint hashes the multiset of values in data. Permutations of the
// same values share a fingerprint.
func Fingerprint[T radix.Number](data []T) uint64 {
	var sum uint64
	var buf [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(buf[:], radix.Key(v))
		sum += xxhash.Sum64(buf[:])
	}
	return sum
}
