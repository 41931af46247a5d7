//go:build darwin

package log

import "golang.org/x/sys/unix"

const ioctlGetTermios = unix.TIOCGETA

func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlGetTermios)
	return err == nil
}
