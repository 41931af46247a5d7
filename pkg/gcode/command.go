// Package gcode tokenizes slicer G-code lines and tracks the printer's
// position and extrusion state across them.
package gcode

import (
	"regexp"
	"strconv"
	"strings"

	"tedjust-go/pkg/pool"
)

// Opcodes understood by the tracker. Everything else is opaque.
const (
	OpMove        = "G1"
	OpSetPosition = "G92"
)

// Command is one tokenized G-code line.
type Command struct {
	Name string            // normalized opcode, e.g. "G1"
	Args map[string]string // upper-cased letter -> raw value text
	Raw  string
}

// Status tags the outcome of looking up a numeric word.
type Status int

const (
	// Absent means the line does not carry the word.
	Absent Status = iota
	// Parsed means the word carried a valid number.
	Parsed
	// Malformed means the word was present but its value is not a number.
	Malformed
)

var reParenComment = regexp.MustCompile(`\([^)]*\)`)

// ParseLine tokenizes a G-code line. It returns nil for blank lines and
// lines holding only a comment.
func ParseLine(line string) *Command {
	ln := strings.TrimSpace(line)
	if idx := strings.IndexByte(ln, ';'); idx >= 0 {
		ln = ln[:idx]
	}
	ln = strings.TrimSpace(reParenComment.ReplaceAllString(ln, " "))
	if ln == "" {
		return nil
	}

	fields := strings.Fields(ln)
	args := pool.GetArgsMap()
	for _, f := range fields[1:] {
		// Later words win, as on the printer.
		args[strings.ToUpper(f[:1])] = f[1:]
	}
	return &Command{Name: normalizeOpcode(fields[0]), Args: args, Raw: line}
}

// normalizeOpcode upper-cases the opcode and drops leading zeros from
// its number so "g01" and "G1" compare equal.
func normalizeOpcode(op string) string {
	op = strings.ToUpper(op)
	if len(op) < 2 {
		return op
	}
	n, err := strconv.Atoi(op[1:])
	if err != nil || n < 0 {
		return op
	}
	return op[:1] + strconv.Itoa(n)
}

// Release returns the word map for reuse. The command must not be used
// afterwards.
func (c *Command) Release() {
	if c == nil {
		return
	}
	pool.PutArgsMap(c.Args)
	c.Args = nil
}

// Is reports whether the command has the given opcode.
func (c *Command) Is(op string) bool {
	return c != nil && c.Name == op
}

// Float looks up a numeric word.
func (c *Command) Float(key string) (float64, Status) {
	raw, ok := c.Args[key]
	if !ok {
		return 0, Absent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, Malformed
	}
	return v, Parsed
}
