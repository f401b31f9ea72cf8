package numfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ChristianF88/radixsort/radix"
	"github.com/edsrzf/mmap-go"
)

// ReadBinary memory-maps path and decodes it as packed little-endian values of T.
func ReadBinary[T radix.Number](path string) ([]T, error) {
	width := radix.SchemeOf[T]().Bits / 8

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return []T{}, nil
	}
	if size%int64(width) != 0 {
		return nil, fmt.Errorf("%s: %d bytes for width %d: %w", path, size, width, ErrMisaligned)
	}

	fadviseSequential(int(f.Fd()), size)

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer mm.Unmap()

	return DecodeBinary[T](mm)
}

// DecodeBinary decodes packed little-endian values of T from b.
func DecodeBinary[T radix.Number](b []byte) ([]T, error) {
	width := radix.SchemeOf[T]().Bits / 8
	if len(b)%width != 0 {
		return nil, fmt.Errorf("%d bytes for width %d: %w", len(b), width, ErrMisaligned)
	}
	out := make([]T, len(b)/width)
	for i := range out {
		out[i] = fromBits[T](readWord(b[i*width:], width))
	}
	return out, nil
}

// WriteBinary writes data as packed little-endian values.
func WriteBinary[T radix.Number](w io.Writer, data []T) error {
	width := radix.SchemeOf[T]().Bits / 8
	bw := bufio.NewWriter(w)
	var word [8]byte
	for _, v := range data {
		binary.LittleEndian.PutUint64(word[:], toBits(v))
		if _, err := bw.Write(word[:width]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readWord(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	}
	return binary.LittleEndian.Uint64(b)
}

// toBits returns the raw two's complement or IEEE-754 bits of v, zero extended.
func toBits[T radix.Number](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case int8:
		return uint64(uint8(x))
	case int16:
		return uint64(uint16(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	}
	return 0
}

func fromBits[T radix.Number](u uint64) T {
	var zero T
	var v any
	switch any(zero).(type) {
	case uint8:
		v = uint8(u)
	case uint16:
		v = uint16(u)
	case uint32:
		v = uint32(u)
	case uint64:
		v = u
	case int8:
		v = int8(u)
	case int16:
		v = int16(u)
	case int32:
		v = int32(u)
	case int64:
		v = int64(u)
	case float32:
		v = math.Float32frombits(uint32(u))
	case float64:
		v = math.Float64frombits(u)
	}
	return v.(T)
}
