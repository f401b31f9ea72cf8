package radix

// Scheme describes how a key of a given width is cut into digits.
type Scheme struct {
	Bits    int // key width in bits
	Radix   int // bits per digit
	Digits  int // digit positions covering Bits
	Buckets int // 1 << Radix
}

// SchemeFor returns the digit layout used for keys that are bits wide.
// Every width is sorted byte by byte except 32-bit keys, which use three
// 11-bit digits: one pass less at the cost of 2048-entry histograms.
func SchemeFor(bits int) Scheme {
	r := 8
	if bits == 32 {
		r = 11
	}
	return Scheme{
		Bits:    bits,
		Radix:   r,
		Digits:  (bits + r - 1) / r,
		Buckets: 1 << r,
	}
}

// SchemeOf returns the digit layout for the element type T.
func SchemeOf[T Number]() Scheme {
	var zero T
	switch any(zero).(type) {
	case uint8, int8:
		return SchemeFor(8)
	case uint16, int16:
		return SchemeFor(16)
	case uint32, int32, float32:
		return SchemeFor(32)
	default:
		return SchemeFor(64)
	}
}

// Digit extracts digit pos of key, position 0 being the least significant.
func (s Scheme) Digit(key uint64, pos int) int {
	return int((key >> uint(pos*s.Radix)) & s.mask())
}

func (s Scheme) mask() uint64 {
	return uint64(s.Buckets - 1)
}
