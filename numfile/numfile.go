package numfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ChristianF88/radixsort/radix"
)

var (
	// ErrUnknownType is returned for an element type name that is not sortable.
	ErrUnknownType = errors.New("unknown element type")
	// ErrMisaligned is returned when a binary file's size is not a multiple of the element width.
	ErrMisaligned = errors.New("file size is not a multiple of the element width")
)

// Formats understood by the sort command.
const (
	FormatText   = "text"
	FormatBinary = "binary"
)

var widths = map[string]int{
	"uint8": 1, "int8": 1,
	"uint16": 2, "int16": 2,
	"uint32": 4, "int32": 4, "float32": 4,
	"uint64": 8, "int64": 8, "float64": 8,
}

// TypeNames lists every supported element type, narrowest first.
func TypeNames() []string {
	names := make([]string, 0, len(widths))
	for name := range widths {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if widths[names[i]] != widths[names[j]] {
			return widths[names[i]] < widths[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Width returns the size in bytes of the named element type.
func Width(name string) (int, error) {
	w, ok := widths[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return w, nil
}

// ParseText reads one number per line. Blank lines and lines starting with # are skipped.
func ParseText[T radix.Number](r io.Reader) ([]T, error) {
	var out []T
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parse[T](line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteText writes one number per line. Floats use the shortest form that round trips.
func WriteText[T radix.Number](w io.Writer, data []T) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, v := range data {
		buf = format(buf[:0], v)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parse[T radix.Number](s string) (T, error) {
	var zero T
	var v any
	var err error
	switch any(zero).(type) {
	case uint8:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 8)
		v = uint8(u)
	case uint16:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 16)
		v = uint16(u)
	case uint32:
		var u uint64
		u, err = strconv.ParseUint(s, 10, 32)
		v = uint32(u)
	case uint64:
		v, err = strconv.ParseUint(s, 10, 64)
	case int8:
		var i int64
		i, err = strconv.ParseInt(s, 10, 8)
		v = int8(i)
	case int16:
		var i int64
		i, err = strconv.ParseInt(s, 10, 16)
		v = int16(i)
	case int32:
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		v = int32(i)
	case int64:
		v, err = strconv.ParseInt(s, 10, 64)
	case float32:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case float64:
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func format[T radix.Number](buf []byte, v T) []byte {
	switch x := any(v).(type) {
	case uint8:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(buf, x, 10)
	case int8:
		return strconv.AppendInt(buf, int64(x), 10)
	case int16:
		return strconv.AppendInt(buf, int64(x), 10)
	case int32:
		return strconv.AppendInt(buf, int64(x), 10)
	case int64:
		return strconv.AppendInt(buf, x, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, x, 'g', -1, 64)
	}
	return buf
}
