// Ranger on a Raspberry Pi: HC-SR04 and indicator on GPIO through periph,
// the display row drawn on the console, telemetry on stdout.
package main

import (
	"os"

	"github.com/merliot/ranger"
	"github.com/merliot/ranger/display/console"
	"github.com/merliot/ranger/hal"
	"github.com/merliot/ranger/hal/periph"
	"github.com/merliot/ranger/pulse"
)

// BCM numbering
const (
	pinTrigger   = "GPIO23"
	pinEcho      = "GPIO24"
	pinIndicator = "GPIO18"
)

func main() {
	if err := periph.Init(); err != nil {
		panic(err.Error())
	}

	trigger, err := periph.Output(pinTrigger)
	if err != nil {
		panic(err.Error())
	}
	echo, err := periph.Input(pinEcho)
	if err != nil {
		panic(err.Error())
	}
	led, err := periph.Output(pinIndicator)
	if err != nil {
		panic(err.Error())
	}

	r := ranger.New("ranger-rpi", "ranger", "rpi", ranger.Hardware{
		Sensor:    pulse.New(trigger, echo, hal.SystemClock),
		Display:   console.New(os.Stderr),
		Indicator: led,
		Telemetry: os.Stdout,
		Clock:     hal.SystemClock,
	})
	r.Run()
}
