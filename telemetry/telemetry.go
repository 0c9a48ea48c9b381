// Package telemetry prints one line per cycle: the distance in centimeters
// as decimal text, CR LF terminated.  On the boards the writer is the
// serial port at 9600 baud.
package telemetry

import (
	"fmt"
	"io"
)

type Writer struct {
	w io.Writer
}

func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (t *Writer) Emit(cm float64) error {
	if _, err := fmt.Fprintf(t.w, "%.2f\r\n", cm); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	return nil
}
