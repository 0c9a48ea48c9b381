// Package sim is simulated hardware for tests and the demo binary: a
// virtual clock, recording output lines and an HC-SR04 that answers a
// trigger burst with an echo pulse of a chosen width.
package sim

import (
	"time"

	"github.com/merliot/ranger/hal"
)

// Clock is a virtual clock.  Sleep advances it by the slept duration and
// every Now call advances it by Step, so busy-wait loops make progress.
type Clock struct {
	Step  time.Duration
	Slept []time.Duration
	now   time.Time
}

func NewClock(step time.Duration) *Clock {
	return &Clock{Step: step, now: time.Unix(0, 0)}
}

func (c *Clock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}

func (c *Clock) Sleep(d time.Duration) {
	c.Slept = append(c.Slept, d)
	c.now = c.now.Add(d)
}

// Elapsed is virtual time since the clock was made
func (c *Clock) Elapsed() time.Duration {
	return c.now.Sub(time.Unix(0, 0))
}

// peek reads the clock without advancing it
func (c *Clock) peek() time.Time {
	return c.now
}

// Edge is a level change on a Line
type Edge struct {
	At   time.Duration
	High bool
}

// Line is an output line that records every write
type Line struct {
	Clock *Clock
	Edges []Edge
	level bool
}

func NewLine(clock *Clock) *Line {
	return &Line{Clock: clock}
}

func (l *Line) High() { l.set(true) }
func (l *Line) Low()  { l.set(false) }
func (l *Line) Get() bool {
	return l.level
}

func (l *Line) set(level bool) {
	var at time.Duration
	if l.Clock != nil {
		at = l.Clock.peek().Sub(time.Unix(0, 0))
	}
	l.level = level
	l.Edges = append(l.Edges, Edge{At: at, High: level})
}

// Sensor is a simulated HC-SR04.  The sensor itself is the trigger line;
// Echo returns the echo line.  A falling trigger edge schedules an echo
// that rises Lead later and stays high for Width.  A zero Width sends no
// echo at all.
type Sensor struct {
	Clock    *Clock
	Lead     time.Duration
	Width    time.Duration
	Triggers int
	high     bool
	armed    bool
	rise     time.Time
	fall     time.Time
}

// DefaultLead is the burst time between trigger and echo on real modules
const DefaultLead = 460 * time.Microsecond

func NewSensor(clock *Clock, width time.Duration) *Sensor {
	return &Sensor{Clock: clock, Lead: DefaultLead, Width: width}
}

func (s *Sensor) High() {
	s.high = true
}

func (s *Sensor) Low() {
	if s.high {
		s.Triggers++
		s.armed = s.Width > 0
		if s.armed {
			s.rise = s.Clock.Now().Add(s.Lead)
			s.fall = s.rise.Add(s.Width)
		}
	}
	s.high = false
}

func (s *Sensor) Echo() hal.Input {
	return echo{s}
}

type echo struct {
	s *Sensor
}

func (e echo) Get() bool {
	if !e.s.armed {
		return false
	}
	now := e.s.Clock.peek()
	return !now.Before(e.s.rise) && now.Before(e.s.fall)
}

var (
	_ hal.Clock  = (*Clock)(nil)
	_ hal.Output = (*Line)(nil)
	_ hal.Input  = (*Line)(nil)
	_ hal.Output = (*Sensor)(nil)
)
