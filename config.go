package ranger

import "time"

const (
	// Distances below Threshold (centimeters) blink the indicator
	Threshold = 50.0

	// Pause at the end of every cycle, before the display is cleared
	CycleDelay = 200 * time.Millisecond

	// Telemetry serial rate, symbols/sec
	TelemetryBaud = 9600
)
