package radix

import (
	"fmt"
	"math"
)

// Unsigned lists the unsigned element types. They double as key types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Signed lists the two's complement element types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Float lists the IEEE-754 element types.
type Float interface {
	float32 | float64
}

// Number is every element type the sorter accepts. The set is closed and
// uses exact types, so anything else is rejected by the compiler.
type Number interface {
	Unsigned | Signed | Float
}

// codec is the capability set for one element type: its digit layout and
// the order-preserving map into the unsigned key domain of equal width.
type codec[T Number, K Unsigned] struct {
	scheme Scheme
	encode func(T) K
	decode func(K) T
	// inverse is false when encode is the identity and the write-back can
	// be skipped or done with a plain copy.
	inverse bool
}

func unsignedCodec[T Unsigned](bits int) codec[T, T] {
	identity := func(v T) T { return v }
	return codec[T, T]{
		scheme:  SchemeFor(bits),
		encode:  identity,
		decode:  identity,
		inverse: false,
	}
}

// signedCodec flips the sign bit, which is its own inverse.
func signedCodec[T Signed, K Unsigned](bits int) codec[T, K] {
	sign := K(1) << (bits - 1)
	return codec[T, K]{
		scheme:  SchemeFor(bits),
		encode:  func(v T) K { return K(v) ^ sign },
		decode:  func(k K) T { return T(k ^ sign) },
		inverse: true,
	}
}

// float32Key complements negative values and sets the sign bit of positive
// ones, so unsigned order of the result matches numeric order.
func float32Key(f float32) uint32 {
	b := math.Float32bits(f)
	mask := -(b >> 31) | 0x80000000
	return b ^ mask
}

// float32Value reads the sign bit of the key, which is set for values that
// were positive, and undoes float32Key.
func float32Value(k uint32) float32 {
	mask := ((k >> 31) - 1) | 0x80000000
	return math.Float32frombits(k ^ mask)
}

func float64Key(f float64) uint64 {
	b := math.Float64bits(f)
	mask := -(b >> 63) | 0x8000000000000000
	return b ^ mask
}

func float64Value(k uint64) float64 {
	mask := ((k >> 63) - 1) | 0x8000000000000000
	return math.Float64frombits(k ^ mask)
}

var (
	uint8Codec  = unsignedCodec[uint8](8)
	uint16Codec = unsignedCodec[uint16](16)
	uint32Codec = unsignedCodec[uint32](32)
	uint64Codec = unsignedCodec[uint64](64)

	int8Codec  = signedCodec[int8, uint8](8)
	int16Codec = signedCodec[int16, uint16](16)
	int32Codec = signedCodec[int32, uint32](32)
	int64Codec = signedCodec[int64, uint64](64)

	float32Codec = codec[float32, uint32]{
		scheme:  SchemeFor(32),
		encode:  float32Key,
		decode:  float32Value,
		inverse: true,
	}
	float64Codec = codec[float64, uint64]{
		scheme:  SchemeFor(64),
		encode:  float64Key,
		decode:  float64Value,
		inverse: true,
	}
)

// Key maps v into the unsigned key domain, widened to 64 bits. Keys compare
// in the same order as the values they came from; NaNs land wherever their
// bit pattern puts them.
func Key[T Number](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(uint8Codec.encode(x))
	case uint16:
		return uint64(uint16Codec.encode(x))
	case uint32:
		return uint64(uint32Codec.encode(x))
	case uint64:
		return uint64Codec.encode(x)
	case int8:
		return uint64(int8Codec.encode(x))
	case int16:
		return uint64(int16Codec.encode(x))
	case int32:
		return uint64(int32Codec.encode(x))
	case int64:
		return int64Codec.encode(x)
	case float32:
		return uint64(float32Codec.encode(x))
	case float64:
		return float64Codec.encode(x)
	}
	panic(fmt.Sprintf("radix: unsupported element type %T", v))
}

// Value is the inverse of Key. Bits above the width of T are ignored.
func Value[T Number](k uint64) T {
	var zero T
	var v any
	switch any(zero).(type) {
	case uint8:
		v = uint8Codec.decode(uint8(k))
	case uint16:
		v = uint16Codec.decode(uint16(k))
	case uint32:
		v = uint32Codec.decode(uint32(k))
	case uint64:
		v = uint64Codec.decode(k)
	case int8:
		v = int8Codec.decode(uint8(k))
	case int16:
		v = int16Codec.decode(uint16(k))
	case int32:
		v = int32Codec.decode(uint32(k))
	case int64:
		v = int64Codec.decode(k)
	case float32:
		v = float32Codec.decode(uint32(k))
	case float64:
		v = float64Codec.decode(k)
	}
	return v.(T)
}
