//go:build tinygo

// Ranger firmware for the Wio Terminal: the distance row is drawn on the
// built-in ILI9341 screen instead of a character LCD.
package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ili9341"

	"github.com/merliot/ranger"
	"github.com/merliot/ranger/display/pixel"
	"github.com/merliot/ranger/hal"
	"github.com/merliot/ranger/pulse"
)

const (
	pinTrigger   = machine.D0
	pinEcho      = machine.D1
	pinIndicator = machine.LED
)

func screen() *ili9341.Device {
	machine.SPI3.Configure(machine.SPIConfig{
		SCK:       machine.LCD_SCK_PIN,
		SDO:       machine.LCD_SDO_PIN,
		SDI:       machine.LCD_SDI_PIN,
		Frequency: 40000000,
	})
	d := ili9341.NewSPI(machine.SPI3, machine.LCD_DC, machine.LCD_SS_PIN, machine.LCD_RESET)
	d.Configure(ili9341.Config{})
	d.SetRotation(ili9341.Rotation270)
	d.FillScreen(color.RGBA{0, 0, 0, 255})

	machine.LCD_BACKLIGHT.Configure(machine.PinConfig{Mode: machine.PinOutput})
	machine.LCD_BACKLIGHT.High()
	return d
}

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: ranger.TelemetryBaud})

	pinIndicator.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinIndicator.Low()

	r := ranger.New("ranger-wio", "ranger", "wio", ranger.Hardware{
		Sensor:    pulse.NewHCSR04(pinTrigger, pinEcho),
		Display:   pixel.New(screen(), pixel.DefaultConfig),
		Indicator: pinIndicator,
		Telemetry: machine.Serial,
		Clock:     hal.SystemClock,
	})
	r.Run()
}
