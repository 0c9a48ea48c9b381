// Ranger demo: no hardware.  A simulated HC-SR04 sees an object walk in
// from 2 meters and back out, the display row is drawn on the console and
// telemetry goes to stdout.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/merliot/ranger"
	"github.com/merliot/ranger/display/console"
	"github.com/merliot/ranger/distance"
	"github.com/merliot/ranger/hal"
	"github.com/merliot/ranger/hal/sim"
	"github.com/merliot/ranger/pulse"
)

// walker is a simulated sensor whose target moves a few centimeters every
// measurement.  Sleeps are real so the console updates at device pace.
type walker struct {
	sensor *sim.Sensor
	timer  *pulse.Timer
	cm     float64
	step   float64
}

func newWalker() *walker {
	clock := sim.NewClock(time.Microsecond)
	sensor := sim.NewSensor(clock, 0)
	return &walker{
		sensor: sensor,
		timer:  pulse.New(sensor, sensor.Echo(), clock),
		cm:     200,
		step:   -7,
	}
}

func (w *walker) MeasureEchoDuration() pulse.EchoDuration {
	w.cm += w.step
	if w.cm < 5 || w.cm > 200 {
		w.step = -w.step
	}
	// round trip at CentimetersPerMicrosecond
	us := 2 * w.cm / distance.CentimetersPerMicrosecond
	w.sensor.Width = time.Duration(us) * time.Microsecond
	return w.timer.MeasureEchoDuration()
}

// led prints each time it lights
type led struct{}

func (led) High() { fmt.Fprint(os.Stderr, "*\r\n") }
func (led) Low()  {}

func main() {
	r := ranger.New("ranger-demo", "ranger", "demo", ranger.Hardware{
		Sensor:    newWalker(),
		Display:   console.New(os.Stderr),
		Indicator: led{},
		Telemetry: os.Stdout,
		Clock:     hal.SystemClock,
	})
	r.Run()
}
