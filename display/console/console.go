// Package console emulates the 16x1 character display in a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/merliot/ranger/display"
)

var lcdGreen = lipgloss.Color("#00FF41")

// Console draws each write as a bordered 16 column row
type Console struct {
	w     io.Writer
	style lipgloss.Style
	text  string
}

func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w: w,
		style: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lcdGreen).
			Foreground(lcdGreen).
			Width(display.Columns),
	}
}

// Text is what the row currently shows
func (c *Console) Text() string {
	return c.text
}

func (c *Console) Clear() error {
	c.text = ""
	return c.draw()
}

func (c *Console) Print(text string) error {
	c.text += text
	return c.draw()
}

func (c *Console) draw() error {
	_, err := fmt.Fprintln(c.w, c.style.Render(c.text))
	return err
}
