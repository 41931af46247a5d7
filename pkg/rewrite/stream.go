package rewrite

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tedjust-go/pkg/errors"
)

// maxLineLength bounds a single G-code line. Slicers embed base64
// thumbnails as comment blocks, so the scanner default is too small.
const maxLineLength = 1 << 20

// WriteHeader writes the comment block that identifies a rewritten file.
func WriteHeader(w io.Writer, params []string) error {
	_, err := fmt.Fprintf(w, "; extruding modified by tedjust\n; parameters: %s\n;\n", strings.Join(params, " "))
	if err != nil {
		return errors.IOError("write header", err)
	}
	return nil
}

// Rewrite streams in through the rewriter into out. Lines are written as
// they are produced; nothing is buffered beyond the writer.
func (r *Rewriter) Rewrite(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	bw := bufio.NewWriter(out)

	for scanner.Scan() {
		// Scanner drops the newline but keeps a CR.
		line := strings.TrimSuffix(scanner.Text(), "\r")
		for _, l := range r.Process(line) {
			if _, err := bw.WriteString(l); err != nil {
				return errors.IOError("write", err).SetLine(r.lineNo)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return errors.IOError("write", err).SetLine(r.lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.IOError("read", err).SetLine(r.lineNo + 1)
	}
	if err := bw.Flush(); err != nil {
		return errors.IOError("flush", err)
	}
	return nil
}
