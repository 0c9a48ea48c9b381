package telemetry

import (
	"bytes"
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestEmit(t *testing.T) {
	c := qt.New(t)
	var buf bytes.Buffer
	w := New(&buf)
	c.Assert(w.Emit(17.150000000000002), qt.IsNil)
	c.Assert(w.Emit(0), qt.IsNil)
	c.Assert(w.Emit(102.9), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "17.15\r\n0.00\r\n102.90\r\n")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("uart gone") }

func TestEmitError(t *testing.T) {
	c := qt.New(t)
	err := New(brokenWriter{}).Emit(1)
	c.Assert(err, qt.ErrorMatches, "telemetry: uart gone")
}
