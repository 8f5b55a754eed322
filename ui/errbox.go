package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var errStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#de613e"))

// ErrBox is a single-line error readout at the bottom of the screen. The app
// sets an error and clears it a few seconds later.
type ErrBox struct {
	err   error
	width int
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

func (e *ErrBox) SetSize(width int) {
	e.width = width
}

func (e *ErrBox) String() string {
	if e.err == nil {
		return ""
	}
	return errStyle.Render(runewidth.Truncate(e.err.Error(), e.width, "…"))
}
