// Package periph drives ranger lines from linux GPIO through periph.io.
// Pins are named the way gpioreg names them; on a Raspberry Pi that is the
// BCM number, "GPIO4" or just "4".
package periph

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Init loads the host drivers.  Call once before Output or Input.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	return nil
}

// Line adapts a periph pin to hal.Output and hal.Input
type Line struct {
	pin gpio.PinIO
}

// Wrap adapts an already configured pin
func Wrap(pin gpio.PinIO) *Line {
	return &Line{pin: pin}
}

// Output looks up the named pin and drives it low
func Output(name string) (*Line, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named: %s", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("pin %s output: %w", name, err)
	}
	return Wrap(pin), nil
}

// Input looks up the named pin and makes it a pulled-down input
func Input(name string) (*Line, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named: %s", name)
	}
	if err := pin.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("pin %s input: %w", name, err)
	}
	return Wrap(pin), nil
}

func (l *Line) High() { l.out(gpio.High) }
func (l *Line) Low()  { l.out(gpio.Low) }

func (l *Line) Get() bool {
	return l.pin.Read() == gpio.High
}

func (l *Line) String() string {
	return l.pin.Name()
}

func (l *Line) out(level gpio.Level) {
	if err := l.pin.Out(level); err != nil {
		fmt.Printf("pin %s: %s\r\n", l.pin.Name(), err.Error())
	}
}
