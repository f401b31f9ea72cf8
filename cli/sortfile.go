package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ChristianF88/radixsort/numfile"
	"github.com/ChristianF88/radixsort/radix"
)

// SortFile sorts the numbers in inPath and writes them to outPath, or to
// standard output when outPath is empty.
func SortFile(typeName, inPath, outPath, format string) error {
	switch typeName {
	case "uint8":
		return sortFile[uint8](inPath, outPath, format)
	case "uint16":
		return sortFile[uint16](inPath, outPath, format)
	case "uint32":
		return sortFile[uint32](inPath, outPath, format)
	case "uint64":
		return sortFile[uint64](inPath, outPath, format)
	case "int8":
		return sortFile[int8](inPath, outPath, format)
	case "int16":
		return sortFile[int16](inPath, outPath, format)
	case "int32":
		return sortFile[int32](inPath, outPath, format)
	case "int64":
		return sortFile[int64](inPath, outPath, format)
	case "float32":
		return sortFile[float32](inPath, outPath, format)
	case "float64":
		return sortFile[float64](inPath, outPath, format)
	}
	return fmt.Errorf("%w: %q", numfile.ErrUnknownType, typeName)
}

func sortFile[T radix.Number](inPath, outPath, format string) error {
	data, err := readNumbers[T](inPath, format)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	radix.Sort(data)

	if outPath == "" {
		return writeNumbers(stdout, data, format)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := writeNumbers(f, data, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeNumbers[T radix.Number](w io.Writer, data []T, format string) error {
	var err error
	if format == numfile.FormatBinary {
		err = numfile.WriteBinary(w, data)
	} else {
		err = numfile.WriteText(w, data)
	}
	if err != nil {
		return fmt.Errorf("writing sorted values: %w", err)
	}
	return nil
}

func readNumbers[T radix.Number](path, format string) ([]T, error) {
	if format == numfile.FormatBinary {
		return numfile.ReadBinary[T](path)
	}
	if path == "-" {
		return numfile.ParseText[T](os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return numfile.ParseText[T](f)
}
