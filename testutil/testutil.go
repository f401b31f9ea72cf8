package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteNumberFile writes one value per line into a temporary file
// and returns its path. The file is removed when the test ends.
func WriteNumberFile(t testing.TB, lines []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "numbers.txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write number file: %v", err)
	}
	return path
}

// WriteFile writes raw bytes into a temporary file named name and returns its path.
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TempFilePath returns a cross-platform temporary file path
// with the given pattern. Does not create the file.
func TempFilePath(t testing.TB, pattern string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	path := tmpFile.Name()
	tmpFile.Close()
	os.Remove(path)

	return path
}

// TempDirPath returns a cross-platform temporary directory path
func TempDirPath(t testing.TB) string {
	t.Helper()
	return t.TempDir()
}
