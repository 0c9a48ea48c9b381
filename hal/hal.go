// Package hal is the hardware seam between the ranger and the board.  A
// machine.Pin satisfies Output and Input as-is, so tinygo builds pass pins
// straight through.  Linux builds use hal/periph, tests use hal/sim.
package hal

import "time"

// Output is a digital output line
type Output interface {
	High()
	Low()
}

// Input is a digital input line
type Input interface {
	Get() bool
}

// Clock is the time source for every blocking hold and wait
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock
var SystemClock Clock = systemClock{}
