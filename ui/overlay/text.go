package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var textBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

// TextOverlay displays a block of preformatted text until dismissed.
type TextOverlay struct {
	content string
	width   int

	// Dismissed is set once any key closes the overlay.
	Dismissed bool

	// OnDismiss runs when the overlay closes, if set.
	OnDismiss func()
}

func NewTextOverlay(content string) *TextOverlay {
	return &TextOverlay{content: content}
}

func (t *TextOverlay) SetWidth(width int) {
	t.width = width
}

// HandleKeyPress processes a key press. Returns true when the overlay should
// close.
func (t *TextOverlay) HandleKeyPress(_ tea.KeyMsg) bool {
	t.Dismissed = true
	if t.OnDismiss != nil {
		t.OnDismiss()
	}
	return true
}

// Render renders the overlay box.
func (t *TextOverlay) Render() string {
	style := textBoxStyle
	if t.width > 0 {
		style = style.Width(t.width - 2)
	}
	return style.Render(t.content)
}
