//go:build linux

package log

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TCGETS

func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlGetTermios)
	return err == nil
}
