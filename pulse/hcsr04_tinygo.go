//go:build tinygo

package pulse

import (
	"machine"

	"tinygo.org/x/drivers/hcsr04"
)

// HCSR04 measures with the tinygo HC-SR04 driver, which busy-waits on the
// echo pin itself and returns 0 when the echo times out
type HCSR04 struct {
	dev hcsr04.Device
}

func NewHCSR04(trigger, echo machine.Pin) *HCSR04 {
	dev := hcsr04.New(trigger, echo)
	dev.Configure()
	return &HCSR04{dev: dev}
}

func (h *HCSR04) MeasureEchoDuration() EchoDuration {
	us := h.dev.ReadPulse()
	if us < 0 {
		return 0
	}
	return EchoDuration(us)
}
