//go:build !linux

package numfile

func fadviseSequential(fd int, length int64) {}
