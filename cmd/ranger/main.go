//go:build tinygo

// Ranger firmware for Arduino-style boards: HC-SR04 on D9/D10, HD44780
// 16x1 LCD on four data lines, indicator on the board LED, telemetry on
// the USB serial port.
package main

import (
	"machine"

	"github.com/merliot/ranger"
	"github.com/merliot/ranger/display"
	"github.com/merliot/ranger/hal"
	"github.com/merliot/ranger/pulse"
)

const (
	pinTrigger   = machine.D9
	pinEcho      = machine.D10
	pinIndicator = machine.LED

	pinLcdRS = machine.D12
	pinLcdE  = machine.D11
	pinLcdD4 = machine.D5
	pinLcdD5 = machine.D4
	pinLcdD6 = machine.D3
	pinLcdD7 = machine.D2
)

func main() {
	machine.Serial.Configure(machine.UARTConfig{BaudRate: ranger.TelemetryBaud})

	pinIndicator.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinIndicator.Low()

	lcd, err := display.NewHD44780([4]machine.Pin{pinLcdD4, pinLcdD5, pinLcdD6, pinLcdD7}, pinLcdRS, pinLcdE)
	if err != nil {
		panic(err.Error())
	}
	lcd.Clear()

	r := ranger.New("ranger", "ranger", "ranger", ranger.Hardware{
		Sensor:    pulse.NewHCSR04(pinTrigger, pinEcho),
		Display:   lcd,
		Indicator: pinIndicator,
		Telemetry: machine.Serial,
		Clock:     hal.SystemClock,
	})
	r.Run()
}
