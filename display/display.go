// Package display puts the measured distance on a 16x1 character display.
package display

import (
	"fmt"
	"strconv"
)

const (
	Columns = 16
	Rows    = 1

	DefaultSuffix = "cm"
)

// Device is a character display with a home position
type Device interface {
	// Clear blanks the display and homes the cursor
	Clear() error
	// Print writes text starting at the home position
	Print(text string) error
}

// Adapter appends the unit suffix and writes to the device.  Text wider
// than the display is written as-is; what the device does with the
// overflow is up to the device.
type Adapter struct {
	Device Device
	Suffix string
}

func New(dev Device) *Adapter {
	return &Adapter{Device: dev, Suffix: DefaultSuffix}
}

// Show writes text followed by the unit suffix.  The display is not
// cleared first; call Clear between writes.
func (a *Adapter) Show(text string) error {
	if err := a.Device.Print(text + a.Suffix); err != nil {
		return fmt.Errorf("display show: %w", err)
	}
	return nil
}

func (a *Adapter) ShowValue(v float64) error {
	return a.Show(Format(v))
}

func (a *Adapter) Clear() error {
	if err := a.Device.Clear(); err != nil {
		return fmt.Errorf("display clear: %w", err)
	}
	return nil
}

// Format renders v with two decimals
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
