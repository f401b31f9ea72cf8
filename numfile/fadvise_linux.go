//go:build linux

package numfile

import "golang.org/x/sys/unix"

// fadviseSequential hints that the whole file is about to be read front to back.
// Errors are ignored.
func fadviseSequential(fd int, length int64) {
	_ = unix.Fadvise(fd, 0, length, unix.FADV_SEQUENTIAL)
}
