// Package indicator blinks a binary output line.
package indicator

import (
	"math"
	"time"

	"github.com/merliot/ranger/hal"
)

type Indicator struct {
	Line  hal.Output
	Clock hal.Clock
}

func New(line hal.Output, clock hal.Clock) *Indicator {
	return &Indicator{Line: line, Clock: clock}
}

// Pulse runs one on/off blink: low, high, hold, low, hold.  It blocks for
// twice the half period.
func (i *Indicator) Pulse(halfPeriod time.Duration) {
	i.Line.Low()
	i.Line.High()
	i.Clock.Sleep(halfPeriod)
	i.Line.Low()
	i.Clock.Sleep(halfPeriod)
}

// Milliseconds converts a possibly fractional millisecond count, rounded to
// the nanosecond.  Negative counts are 0.
func Milliseconds(ms float64) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}
