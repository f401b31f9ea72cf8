package generator

import (
	"errors"
	"math"
	"testing"
)

func TestGenerate_Reproducible(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a, err := Generate[float64](name, 500, Options{Seed: 42})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			b, err := Generate[float64](name, 500, Options{Seed: 42})
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(a) != 500 || len(b) != 500 {
				t.Fatalf("expected 500 values, got %d and %d", len(a), len(b))
			}
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("index %d differs between runs: %v vs %v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestGenerate_SeedChangesOutput(t *testing.T) {
	a := NormalValues[int32](100, 1)
	b := NormalValues[int32](100, 2)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical data")
	}
}

func TestGenerate_UnknownDistribution(t *testing.T) {
	_, err := Generate[int32]("zipf", 10, Options{})
	if !errors.Is(err, ErrUnknownDistribution) {
		t.Errorf("expected ErrUnknownDistribution, got %v", err)
	}
	if _, err := Generate[int32](Normal, -1, Options{}); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestNormalValues_Spread(t *testing.T) {
	data := NormalValues[float64](20000, 42)
	var sum float64
	negatives := 0
	for _, v := range data {
		sum += v
		if v < 0 {
			negatives++
		}
	}
	mean := sum / float64(len(data))
	// The mean is drawn from [0, 31337) and the spread is 31337.
	if mean < -2000 || mean > 33337 {
		t.Errorf("mean %v outside the expected range", mean)
	}
	if negatives == 0 {
		t.Error("a spread of 31337 should produce negative values")
	}
}

func TestUniformValues_Bounds(t *testing.T) {
	data := UniformValues[uint16](10000, 7, 100)
	for i, v := range data {
		if v >= 100 {
			t.Fatalf("index %d: %d not below max 100", i, v)
		}
	}
}

func TestGaussianValues_AreWholeNumbers(t *testing.T) {
	for i, v := range GaussianValues[float32](1000, 3, DefaultMax) {
		if float64(v) != math.Round(float64(v)) {
			t.Fatalf("index %d: %v is not a whole number", i, v)
		}
	}
}

func TestDeterministicPatterns(t *testing.T) {
	asc := AscendingValues[int8](5)
	desc := DescendingValues[int8](5)
	eq := EqualValues[uint64](3)
	for i := 0; i < 5; i++ {
		if asc[i] != int8(i+1) {
			t.Errorf("ascending[%d] = %d", i, asc[i])
		}
		if desc[i] != int8(5-i) {
			t.Errorf("descending[%d] = %d", i, desc[i])
		}
	}
	for _, v := range eq {
		if v != 42 {
			t.Errorf("equal value %d, want 42", v)
		}
	}
}

func TestMedian3Values(t *testing.T) {
	got := Median3Values[int32](7)
	want := []int32{1, 2, 3, 1, 2, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Median3Values(7) = %v, want %v", got, want)
		}
	}
	if len(Median3Values[int32](0)) != 0 {
		t.Error("zero length should give an empty slice")
	}
}

func TestFromFloatWraps(t *testing.T) {
	if v := fromFloat[uint8](-1); v != 255 {
		t.Errorf("fromFloat[uint8](-1) = %d, want 255", v)
	}
	if v := fromFloat[int32](-2.9); v != -2 {
		t.Errorf("fromFloat[int32](-2.9) = %d, want -2", v)
	}
	if v := fromFloat[float32](1.5); v != 1.5 {
		t.Errorf("fromFloat[float32](1.5) = %v", v)
	}
}

func TestValid(t *testing.T) {
	if !Valid("median3") || Valid("bogus") {
		t.Error("Valid gave the wrong answer")
	}
}
