// Package pulse triggers an ultrasonic ranging module and times its echo.
package pulse

import (
	"time"

	"github.com/merliot/ranger/hal"
)

// EchoDuration is the width of the echo pulse in microseconds.  Zero means
// no echo arrived before the timeout.
type EchoDuration uint32

// Detected reports whether an echo was received
func (e EchoDuration) Detected() bool {
	return e != 0
}

func (e EchoDuration) Duration() time.Duration {
	return time.Duration(e) * time.Microsecond
}

// Measurer is anything that can fire one ranging burst
type Measurer interface {
	MeasureEchoDuration() EchoDuration
}

const (
	// DefaultTimeout bounds each of the two echo waits
	DefaultTimeout = time.Second

	settleHold  = 2 * time.Microsecond
	triggerHold = 10 * time.Microsecond
)

// Timer measures echo pulse width on plain digital lines
type Timer struct {
	Trigger hal.Output
	Echo    hal.Input
	Clock   hal.Clock
	Timeout time.Duration
}

func New(trigger hal.Output, echo hal.Input, clock hal.Clock) *Timer {
	return &Timer{Trigger: trigger, Echo: echo, Clock: clock, Timeout: DefaultTimeout}
}

// MeasureEchoDuration sends the trigger burst (low, hold, high, hold, low),
// waits for the echo line to rise and times how long it stays high.  It
// returns 0 if either wait runs past the timeout.
func (t *Timer) MeasureEchoDuration() EchoDuration {
	timeout := t.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	t.Trigger.Low()
	t.Clock.Sleep(settleHold)
	t.Trigger.High()
	t.Clock.Sleep(triggerHold)
	t.Trigger.Low()

	start := t.Clock.Now()
	for !t.Echo.Get() {
		if t.Clock.Now().Sub(start) > timeout {
			return 0
		}
	}

	rise := t.Clock.Now()
	for t.Echo.Get() {
		if t.Clock.Now().Sub(rise) > timeout {
			return 0
		}
	}

	return EchoDuration(t.Clock.Now().Sub(rise).Microseconds())
}
