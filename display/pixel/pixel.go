// Package pixel emulates the 16x1 character display on a pixel screen,
// for boards that carry a TFT instead of an HD44780.
package pixel

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

type Config struct {
	// Top-left corner of the text row
	X, Y int16
	// Row height in pixels; the font baseline sits Baseline below Y
	Height   int16
	Baseline int16
	Font     tinyfont.Fonter
	Fg, Bg   color.RGBA
}

var DefaultConfig = Config{
	X:        4,
	Y:        4,
	Height:   16,
	Baseline: 12,
	Font:     &proggy.TinySZ8pt7b,
	Fg:       color.RGBA{0x00, 0xff, 0x41, 0xff},
	Bg:       color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// Row is one text row on a pixel display
type Row struct {
	screen drivers.Displayer
	cfg    Config
}

func New(screen drivers.Displayer, cfg Config) *Row {
	if cfg.Font == nil {
		cfg.Font = DefaultConfig.Font
	}
	if cfg.Height == 0 {
		cfg.Height, cfg.Baseline = DefaultConfig.Height, DefaultConfig.Baseline
	}
	return &Row{screen: screen, cfg: cfg}
}

// Clear paints the row with the background color
func (r *Row) Clear() error {
	width, height := r.screen.Size()
	for y := r.cfg.Y; y < r.cfg.Y+r.cfg.Height && y < height; y++ {
		for x := r.cfg.X; x < width; x++ {
			r.screen.SetPixel(x, y, r.cfg.Bg)
		}
	}
	return r.screen.Display()
}

func (r *Row) Print(text string) error {
	tinyfont.WriteLine(r.screen, r.cfg.Font, r.cfg.X, r.cfg.Y+r.cfg.Baseline, text, r.cfg.Fg)
	return r.screen.Display()
}
