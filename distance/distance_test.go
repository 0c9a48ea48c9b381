package distance

import (
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/merliot/ranger/pulse"
)

var echoes = []pulse.EchoDuration{0, 1, 58, 148, 1000, 6000, 23324, 1000000, math.MaxUint32}

func TestFormulas(t *testing.T) {
	c := qt.New(t)
	for _, e := range echoes {
		T := float64(e)
		c.Check(ToCentimeters(e).Value, qt.Equals, (T*0.0343)/2)
		c.Check(ToFeet(e).Value, qt.Equals, (T*0.0343/30.48)/2)
	}
}

func TestZero(t *testing.T) {
	c := qt.New(t)
	c.Assert(ToCentimeters(0), qt.Equals, Distance{0, Centimeters})
	c.Assert(ToFeet(0), qt.Equals, Distance{0, Feet})
}

func TestMonotonic(t *testing.T) {
	c := qt.New(t)
	for i := 1; i < len(echoes); i++ {
		lo, hi := ToCentimeters(echoes[i-1]), ToCentimeters(echoes[i])
		c.Check(lo.Value < hi.Value, qt.IsTrue, qt.Commentf("%d < %d", echoes[i-1], echoes[i]))
	}
}

func TestUnitRatio(t *testing.T) {
	c := qt.New(t)
	for _, e := range echoes[1:] {
		ratio := ToCentimeters(e).Value / ToFeet(e).Value
		c.Check(math.Abs(ratio-CentimetersPerFoot) < 1e-9, qt.IsTrue, qt.Commentf("echo %d ratio %v", e, ratio))
	}
}

func TestKnownDistances(t *testing.T) {
	c := qt.New(t)
	c.Assert(math.Abs(ToCentimeters(1000).Value-17.15) < 1e-9, qt.IsTrue)
	c.Assert(math.Abs(ToCentimeters(6000).Value-102.9) < 1e-9, qt.IsTrue)
}

func TestConvert(t *testing.T) {
	c := qt.New(t)
	c.Assert(Convert(1000, Centimeters), qt.Equals, ToCentimeters(1000))
	c.Assert(Convert(1000, Feet), qt.Equals, ToFeet(1000))
	c.Assert(Convert(1000, Unit(7)), qt.Equals, ToCentimeters(1000))
}

func TestString(t *testing.T) {
	c := qt.New(t)
	c.Assert(ToCentimeters(1000).String(), qt.Equals, "17.15cm")
	c.Assert(ToFeet(6000).String(), qt.Equals, "3.38ft")
	c.Assert(Unit(7).Suffix(), qt.Equals, "?")
}
