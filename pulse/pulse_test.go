package pulse

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/merliot/ranger/hal/sim"
)

func newTimer(width time.Duration) (*Timer, *sim.Sensor, *sim.Clock) {
	clock := sim.NewClock(time.Microsecond)
	sensor := sim.NewSensor(clock, width)
	return New(sensor, sensor.Echo(), clock), sensor, clock
}

func TestMeasureEcho(t *testing.T) {
	c := qt.New(t)
	for _, width := range []time.Duration{
		100 * time.Microsecond,
		1000 * time.Microsecond,
		6000 * time.Microsecond,
		23 * time.Millisecond,
	} {
		timer, sensor, _ := newTimer(width)
		echo := timer.MeasureEchoDuration()
		c.Check(echo, qt.Equals, EchoDuration(width.Microseconds()), qt.Commentf("width %s", width))
		c.Check(echo.Detected(), qt.IsTrue)
		c.Check(sensor.Triggers, qt.Equals, 1)
	}
}

func TestNoEcho(t *testing.T) {
	c := qt.New(t)
	timer, _, clock := newTimer(0)
	timer.Timeout = 30 * time.Millisecond
	echo := timer.MeasureEchoDuration()
	c.Assert(echo, qt.Equals, EchoDuration(0))
	c.Assert(echo.Detected(), qt.IsFalse)
	c.Assert(clock.Elapsed() > 30*time.Millisecond, qt.IsTrue)
}

func TestEchoStuckHigh(t *testing.T) {
	c := qt.New(t)
	timer, _, _ := newTimer(50 * time.Millisecond)
	timer.Timeout = 20 * time.Millisecond
	c.Assert(timer.MeasureEchoDuration(), qt.Equals, EchoDuration(0))
}

func TestZeroTimeoutUsesDefault(t *testing.T) {
	c := qt.New(t)
	timer, _, clock := newTimer(0)
	timer.Timeout = 0
	c.Assert(timer.MeasureEchoDuration(), qt.Equals, EchoDuration(0))
	c.Assert(clock.Elapsed() > DefaultTimeout, qt.IsTrue)
}

func TestTriggerSequence(t *testing.T) {
	c := qt.New(t)
	// echo never rises; a coarse step lets the wait time out quickly
	clock := sim.NewClock(time.Millisecond)
	trigger := sim.NewLine(clock)
	timer := New(trigger, sim.NewLine(nil), clock)
	c.Assert(timer.MeasureEchoDuration(), qt.Equals, EchoDuration(0))

	c.Assert(trigger.Edges, qt.DeepEquals, []sim.Edge{
		{At: 0, High: false},
		{At: 2 * time.Microsecond, High: true},
		{At: 12 * time.Microsecond, High: false},
	})
	c.Assert(clock.Slept[:2], qt.DeepEquals, []time.Duration{2 * time.Microsecond, 10 * time.Microsecond})
}

func TestEchoDuration(t *testing.T) {
	c := qt.New(t)
	c.Assert(EchoDuration(1500).Duration(), qt.Equals, 1500*time.Microsecond)
	c.Assert(EchoDuration(0).Duration(), qt.Equals, time.Duration(0))
}
