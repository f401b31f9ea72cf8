package radix

import (
	"encoding/binary"
	"math"
	"slices"
	"testing"
)

func FuzzSortInt32(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{1, 0, 0, 0})
	f.Add([]byte{5, 0, 0, 0, 0xFD, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x7F, 0, 0, 0, 0x80})

	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]int32, len(raw)/4)
		for i := range data {
			data[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
		}
		want := slices.Clone(data)
		slices.Sort(want)

		Sort(data)
		if !slices.Equal(data, want) {
			t.Fatalf("radix=%v std=%v", data, want)
		}
	})
}

func FuzzSortFloat64(f *testing.F) {
	f.Add([]byte{})
	f.Add(binary.LittleEndian.AppendUint64(nil, math.Float64bits(-1.5)))
	f.Add(binary.LittleEndian.AppendUint64(
		binary.LittleEndian.AppendUint64(nil, math.Float64bits(math.Copysign(0, -1))),
		math.Float64bits(0)))

	f.Fuzz(func(t *testing.T, raw []byte) {
		var data []float64
		for i := 0; i+8 <= len(raw); i += 8 {
			v := math.Float64frombits(binary.LittleEndian.Uint64(raw[i:]))
			if math.IsNaN(v) {
				continue
			}
			data = append(data, v)
		}
		input := slices.Clone(data)

		Sort(data)
		if !isNonDecreasing(data) {
			t.Fatalf("not sorted: %v", data)
		}

		// Same multiset of bit patterns.
		got := make([]uint64, len(data))
		want := make([]uint64, len(input))
		for i := range data {
			got[i] = math.Float64bits(data[i])
			want[i] = math.Float64bits(input[i])
		}
		slices.Sort(got)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Fatal("sorted output is not a permutation of the input")
		}
	})
}
