package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"tedjust-go/pkg/errors"
)

// OutputPath names the rewritten file: suffix goes between the stem and
// the extension, so part.gcode becomes part.ted.gcode.
func OutputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// writeAtomic runs write against a temporary file next to path and renames
// it into place only if write succeeds. On failure nothing is left behind.
func writeAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return errors.IOError("create output", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return errors.IOError("chmod output", err)
	}
	if err = tmp.Close(); err != nil {
		return errors.IOError("close output", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.IOError("rename output", err)
	}
	return nil
}
