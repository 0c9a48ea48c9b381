// Package ranger measures distance with an ultrasonic module, shows it on a
// 16x1 display, prints it as a telemetry line, and blinks an indicator when
// something is closer than Threshold.
package ranger

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/merliot/ranger/display"
	"github.com/merliot/ranger/distance"
	"github.com/merliot/ranger/hal"
	"github.com/merliot/ranger/indicator"
	"github.com/merliot/ranger/pulse"
	"github.com/merliot/ranger/telemetry"
)

// Hardware is everything the ranger drives.  The board mains wire real
// pins, tests and the demo wire hal/sim.
type Hardware struct {
	Sensor    pulse.Measurer
	Display   display.Device
	Indicator hal.Output
	Telemetry io.Writer
	Clock     hal.Clock
}

// Reading is the result of one cycle
type Reading struct {
	Echo     pulse.EchoDuration
	Distance distance.Distance
	Near     bool
}

func (r Reading) String() string {
	if !r.Echo.Detected() {
		return "no echo"
	}
	return fmt.Sprintf("%dus %s near=%t", r.Echo, r.Distance, r.Near)
}

type Ranger struct {
	Thing
	clock     hal.Clock
	sensor    pulse.Measurer
	display   *display.Adapter
	indicator *indicator.Indicator
	telemetry *telemetry.Writer
}

func New(id, model, name string, hw Hardware) *Ranger {
	if hw.Sensor == nil || hw.Display == nil || hw.Indicator == nil ||
		hw.Telemetry == nil || hw.Clock == nil {
		panic("ranger " + id + ": missing hardware")
	}
	return &Ranger{
		Thing:     NewThing(id, model, name),
		clock:     hw.Clock,
		sensor:    hw.Sensor,
		display:   display.New(hw.Display),
		indicator: indicator.New(hw.Indicator, hw.Clock),
		telemetry: telemetry.New(hw.Telemetry),
	}
}

// Near is the threshold policy.  The comparison is strict: exactly
// Threshold is not near.
func Near(d distance.Distance) bool {
	return d.Value < Threshold
}

// blinkHalfPeriod reuses the centimeter value as milliseconds, so closer
// objects blink faster.  A missing echo reads as 0 cm and blinks with a
// zero half period.
func blinkHalfPeriod(d distance.Distance) time.Duration {
	return indicator.Milliseconds(d.Value)
}

// Cycle runs one measure, show, report, indicate pass.  The cycle always
// runs to the end; display and telemetry failures are returned together.
func (r *Ranger) Cycle() (Reading, error) {
	var errs []error

	echo := r.sensor.MeasureEchoDuration()
	d := distance.ToCentimeters(echo)
	reading := Reading{Echo: echo, Distance: d, Near: Near(d)}

	if err := r.display.ShowValue(d.Value); err != nil {
		errs = append(errs, err)
	}
	if err := r.telemetry.Emit(d.Value); err != nil {
		errs = append(errs, err)
	}
	if reading.Near {
		r.indicator.Pulse(blinkHalfPeriod(d))
	}

	r.clock.Sleep(CycleDelay)

	if err := r.display.Clear(); err != nil {
		errs = append(errs, err)
	}

	return reading, errors.Join(errs...)
}

// Run cycles forever
func (r *Ranger) Run() {
	println("Ranger starts", r.String())
	for {
		if _, err := r.Cycle(); err != nil {
			fmt.Printf("cycle: %s\r\n", err.Error())
		}
	}
}
