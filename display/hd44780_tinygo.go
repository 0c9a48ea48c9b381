//go:build tinygo

package display

import (
	"machine"

	"tinygo.org/x/drivers/hd44780"
)

// HD44780 is a character LCD on four data lines plus RS and E.  RW is tied
// low on the board.
type HD44780 struct {
	dev hd44780.Device
}

func NewHD44780(data [4]machine.Pin, rs, e machine.Pin) (*HD44780, error) {
	dev, err := hd44780.NewGPIO4Bit(data[:], e, rs, machine.NoPin)
	if err != nil {
		return nil, err
	}
	err = dev.Configure(hd44780.Config{
		Width:  Columns,
		Height: Rows,
	})
	if err != nil {
		return nil, err
	}
	return &HD44780{dev: dev}, nil
}

func (h *HD44780) Clear() error {
	h.dev.ClearDisplay()
	return nil
}

func (h *HD44780) Print(text string) error {
	h.dev.SetCursor(0, 0)
	if _, err := h.dev.Write([]byte(text)); err != nil {
		return err
	}
	return h.dev.Display()
}
