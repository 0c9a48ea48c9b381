// Package distance converts echo pulse width into distance.
//
// Sound covers the path to the object and back, so the one-way distance is
// half of elapsed time times the speed of sound.  The speed is fixed at
// 343 m/s (dry air, 20 C).
package distance

import (
	"fmt"

	"github.com/merliot/ranger/pulse"
)

const (
	SpeedOfSound              = 343.0  // m/s
	CentimetersPerMicrosecond = 0.0343 // SpeedOfSound in cm/us
	CentimetersPerFoot        = 30.48
)

type Unit uint8

const (
	Centimeters Unit = iota
	Feet
)

func (u Unit) Suffix() string {
	switch u {
	case Centimeters:
		return "cm"
	case Feet:
		return "ft"
	}
	return "?"
}

func (u Unit) String() string {
	return u.Suffix()
}

// Distance is a unit-tagged non-negative length
type Distance struct {
	Value float64
	Unit  Unit
}

func (d Distance) String() string {
	return fmt.Sprintf("%.2f%s", d.Value, d.Unit.Suffix())
}

func ToCentimeters(echo pulse.EchoDuration) Distance {
	return Distance{Value: (float64(echo) * CentimetersPerMicrosecond) / 2, Unit: Centimeters}
}

func ToFeet(echo pulse.EchoDuration) Distance {
	return Distance{Value: (float64(echo) * CentimetersPerMicrosecond / CentimetersPerFoot) / 2, Unit: Feet}
}

// Convert converts the echo to the given unit; unknown units get centimeters
func Convert(echo pulse.EchoDuration, unit Unit) Distance {
	if unit == Feet {
		return ToFeet(echo)
	}
	return ToCentimeters(echo)
}
