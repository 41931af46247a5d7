package layers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tedjust-go/pkg/errors"
)

// Builder turns tweak tokens into a Table. Tokens are consumed left to
// right:
//
//	L3.5      layer at 3.5
//	L3.5-5    layers from 3.5 to 5, inclusive
//	L3.5+     layer 3.5 and everything above
//	F1.1      flow multiplier for the current layer selector
//	S30       extruding speed in units per second for the current selector
//
// An L token closes the rule being built; it is kept if it sets a flow or
// a speed. A selector that fails to parse leaves the previous bounds in
// place. Bad F and S values are ignored.
type Builder struct {
	cur      Rule
	rules    []Rule
	tokens   []string
	warnings []error
}

// NewBuilder returns a builder whose bounds, before any L token, cover
// every height from -1 up.
func NewBuilder() *Builder {
	return &Builder{cur: Rule{Start: -1, End: -1, Open: true}}
}

// Token consumes one token.
func (b *Builder) Token(tok string) {
	b.tokens = append(b.tokens, tok)
	if tok == "" {
		b.warn(errors.TweakValueError(tok, fmt.Errorf("empty token")))
		return
	}

	val := tok[1:]
	switch tok[0] {
	case 'L':
		b.flush()
		b.cur.Flow = 0
		b.cur.Speed = 0
		b.selector(tok, val)
	case 'F':
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			b.warn(errors.TweakValueError(tok, err))
			return
		}
		b.cur.Flow = f
	case 'S':
		s, err := strconv.ParseFloat(val, 64)
		if err != nil {
			b.warn(errors.TweakValueError(tok, err))
			return
		}
		b.cur.Speed = int(math.Trunc(s * 60))
	default:
		b.warn(errors.TweakValueError(tok, fmt.Errorf("unknown token")))
	}
}

// selector updates the current bounds. The start is committed before the
// end is parsed, so a bad end leaves a new start with the old end.
func (b *Builder) selector(tok, sel string) {
	var ss, se string
	open := false
	switch {
	case strings.Contains(sel, "-"):
		parts := strings.Split(sel, "-")
		if len(parts) != 2 {
			b.warn(errors.LayerSpecError(tok, fmt.Errorf("expected start-end")))
			return
		}
		ss, se = parts[0], parts[1]
	case strings.Contains(sel, "+"):
		ss = sel[:len(sel)-1]
		open = true
	default:
		ss, se = sel, sel
	}

	start, err := strconv.ParseFloat(ss, 64)
	if err != nil {
		b.warn(errors.LayerSpecError(tok, err))
		return
	}
	b.cur.Start = start

	if open {
		b.cur.Open = true
		return
	}
	end, err := strconv.ParseFloat(se, 64)
	if err != nil {
		b.warn(errors.LayerSpecError(tok, err))
		return
	}
	b.cur.End = end
	b.cur.Open = false
}

func (b *Builder) flush() {
	if b.cur.HasOverride() {
		b.rules = append(b.rules, b.cur)
	}
}

func (b *Builder) warn(err error) {
	b.warnings = append(b.warnings, err)
}

// Build closes the trailing rule and returns the table together with
// every recoverable problem met on the way.
func (b *Builder) Build() (*Table, []error) {
	b.flush()
	b.cur = Rule{}
	return NewTable(b.rules...), b.warnings
}

// Tokens returns every token consumed, in order.
func (b *Builder) Tokens() []string {
	return append([]string(nil), b.tokens...)
}

// ParseArgs builds a table from command line tokens.
func ParseArgs(args []string) (*Table, []error) {
	b := NewBuilder()
	for _, a := range args {
		b.Token(a)
	}
	return b.Build()
}
