//go:build !linux && !darwin

package log

// Colors stay off where termios is not available.
func isTerminal(fd uintptr) bool {
	return false
}
