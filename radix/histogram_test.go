package radix

import "testing"

func TestBuildHistograms_Cursors(t *testing.T) {
	data := []uint16{0x0102, 0x0001, 0x0101, 0x0002, 0x0102}
	h, sorted := buildHistograms(data, uint16Codec)
	if sorted {
		t.Fatal("input reported as sorted")
	}

	// Low byte: 0x02 x3, 0x01 x2.
	low := h.cursors(0)
	if low[0] != -1 || low[1] != -1 || low[2] != 1 || low[3] != 4 {
		t.Errorf("low byte cursors = %v", low[:4])
	}
	// High byte: 0x00 x2, 0x01 x3.
	high := h.cursors(1)
	if high[0] != -1 || high[1] != 1 || high[2] != 4 {
		t.Errorf("high byte cursors = %v", high[:3])
	}
	// Every trailing bucket starts after the last element.
	if low[255] != len(data)-1 || high[255] != len(data)-1 {
		t.Errorf("last cursors = %d, %d, want %d", low[255], high[255], len(data)-1)
	}
}

func TestBuildHistograms_CountsSumToN(t *testing.T) {
	data := []int32{9, -4, 1 << 20, -(1 << 25), 0, 3, 3}
	h, sorted := buildHistograms(data, int32Codec)
	if sorted {
		t.Fatal("input reported as sorted")
	}

	for pos := 0; pos < h.scheme.Digits; pos++ {
		cur := h.cursors(pos)
		for b := 1; b < len(cur); b++ {
			if cur[b] < cur[b-1] {
				t.Fatalf("digit %d: cursors decrease at bucket %d", pos, b)
			}
		}
		last := cur[len(cur)-1]
		if last < -1 || last > len(data)-1 {
			t.Errorf("digit %d: last cursor %d out of range", pos, last)
		}
	}
}

func TestBuildHistograms_DetectsSorted(t *testing.T) {
	tests := []struct {
		name   string
		data   []int64
		sorted bool
	}{
		{"ascending", []int64{-5, -1, 0, 0, 7}, true},
		{"equal", []int64{4, 4, 4}, true},
		{"one inversion at end", []int64{1, 2, 3, 2}, false},
		{"descending", []int64{3, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sorted := buildHistograms(tt.data, int64Codec)
			if sorted != tt.sorted {
				t.Errorf("sorted = %v, want %v", sorted, tt.sorted)
			}
			if sorted && h != nil {
				t.Error("histograms should be discarded for sorted input")
			}
		})
	}
}

func TestScatter_Stable(t *testing.T) {
	// Keys that share digit 0 must keep their input order.
	s := SchemeFor(16)
	src := []uint16{0x0301, 0x0101, 0x0200, 0x0201}
	cur := make([]int, s.Buckets)
	for _, k := range src {
		cur[k&0xFF]++
	}
	next := -1
	for b, count := range cur {
		cur[b] = next
		next += count
	}

	dst := make([]uint16, len(src))
	scatter(src, dst, cur, s, 0)
	expected := []uint16{0x0200, 0x0301, 0x0101, 0x0201}
	for i, v := range dst {
		if v != expected[i] {
			t.Errorf("index %d: expected %#x, got %#x", i, expected[i], v)
		}
	}
}
