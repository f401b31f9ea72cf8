package pools

import "testing"

func TestSlicePool_GetLength(t *testing.T) {
	p := NewSlicePool[int32](0)
	for _, n := range []int{0, 1, 10, 1000} {
		s := p.Get(n)
		if len(s) != n {
			t.Errorf("Get(%d) returned length %d", n, len(s))
		}
		p.Put(s)
	}
}

func TestSlicePool_Clone(t *testing.T) {
	p := NewSlicePool[float64](0)
	src := []float64{3, 1, 2}
	dst := p.Clone(src)
	dst[0] = 99
	if src[0] != 3 {
		t.Error("Clone shares memory with its source")
	}
	if dst[1] != 1 || dst[2] != 2 {
		t.Errorf("Clone copied %v", dst)
	}
}

func TestSlicePool_MaxCapDropsLargeSlices(t *testing.T) {
	p := NewSlicePool[byte](16)
	// Must not panic and must not pool the oversized slice.
	p.Put(make([]byte, 32))
	p.Put(nil)
	if s := p.Get(8); len(s) != 8 {
		t.Errorf("Get(8) returned length %d", len(s))
	}
}

func TestBuilderPool(t *testing.T) {
	pool := NewBuilderPool(32)
	b := GetBuilderFromPool(pool)
	b.WriteString("stale")
	ReturnBuilderToPool(pool, b)

	b = GetBuilderFromPool(pool)
	if b.Len() != 0 {
		t.Errorf("builder not reset, holds %q", b.String())
	}
}

func BenchmarkSlicePool(b *testing.B) {
	p := NewSlicePool[uint64](0)
	src := make([]uint64, 1<<16)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Put(p.Clone(src))
	}
}
