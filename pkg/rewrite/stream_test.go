package rewrite

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tjerrors "tedjust-go/pkg/errors"
	"tedjust-go/pkg/layers"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, []string{"L0", "F1.1", "L20+", "S200"}))
	assert.Equal(t, "; extruding modified by tedjust\n; parameters: L0 F1.1 L20+ S200\n;\n", buf.String())
}

func TestRewriteStream(t *testing.T) {
	table, _ := layers.ParseArgs([]string{"L0+", "F2"})
	in := strings.NewReader("; start\r\nG1 Z0.2 F1200\r\nG1 X1 E1\nM84")

	var out bytes.Buffer
	r := New(table)
	require.NoError(t, r.Rewrite(in, &out))

	assert.Equal(t, "; start\nG1 Z0.2 F1200\nG1 X1 E2\nM84\n", out.String())
	assert.Equal(t, 4, r.Stats().LinesRead)
	assert.Equal(t, 4, r.Stats().LinesWritten)
}

func TestRewriteLongLine(t *testing.T) {
	thumb := "; " + strings.Repeat("A", 200*1024)
	var out bytes.Buffer
	require.NoError(t, New(nil).Rewrite(strings.NewReader(thumb+"\n"), &out))
	assert.Equal(t, thumb+"\n", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRewriteIOErrors(t *testing.T) {
	err := New(nil).Rewrite(strings.NewReader("G1 X1\n"), failingWriter{})
	require.Error(t, err)
	assert.True(t, tjerrors.Is(err, tjerrors.ErrIO), "expected IO error, got %v", err)
	assert.Contains(t, err.Error(), "disk full")

	err = New(nil).Rewrite(failingReader{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, tjerrors.ErrIO, tjerrors.CodeOf(err))

	err = WriteHeader(failingWriter{}, nil)
	assert.Equal(t, tjerrors.ErrIO, tjerrors.CodeOf(err))
}
