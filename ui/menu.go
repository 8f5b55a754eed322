package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showcase/keys"
)

type MenuState int

const (
	StateDefault MenuState = iota
	// StateFilter is the menu state when the user is typing a filter query.
	StateFilter
	// StateOverlay is the menu state when an overlay covers the screen.
	StateOverlay
)

var (
	menuStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

	menuKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffaa00")).
			Bold(true)

	menuDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#9a9a9a"})

	menuSepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#4a4a4a"})

	keydownStyle = lipgloss.NewStyle().Underline(true)

	menuSeparator = "  •  "
)

// defaultMenuOptions is the option order in the default state.
var defaultMenuOptions = []keys.KeyName{
	keys.KeyUp,
	keys.KeyDown,
	keys.KeyFilter,
	keys.KeySort,
	keys.KeyFav,
	keys.KeyEnter,
	keys.KeyNaive,
	keys.KeyHelp,
	keys.KeyQuit,
}

// filterMenuOptions is the option order while the filter input is active.
var filterMenuOptions = []keys.KeyName{
	keys.KeyEnter,
	keys.KeyEsc,
}

// overlayMenuOptions is the option order while an overlay is shown.
var overlayMenuOptions = []keys.KeyName{
	keys.KeyEsc,
}

// Menu is the bottom bar that shows the active keybindings.
type Menu struct {
	options []keys.KeyName
	state   MenuState
	width   int
	height  int

	// keyDown is the key being pressed, used to highlight its menu entry.
	// nil when no key is down.
	keyDown *keys.KeyName
}

func NewMenu() *Menu {
	return &Menu{
		options: defaultMenuOptions,
		state:   StateDefault,
	}
}

// SetState updates the menu options to match the application state.
func (m *Menu) SetState(state MenuState) {
	m.state = state
	switch state {
	case StateFilter:
		m.options = filterMenuOptions
	case StateOverlay:
		m.options = overlayMenuOptions
	default:
		m.options = defaultMenuOptions
	}
}

func (m *Menu) GetState() MenuState {
	return m.state
}

// Keydown underlines the menu entry for the pressed key.
func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = &name
}

// ClearKeydown removes the underline set by Keydown.
func (m *Menu) ClearKeydown() {
	m.keyDown = nil
}

func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var parts []string
	for _, name := range m.options {
		binding, ok := keys.GlobalkeyBindings[name]
		if !ok {
			continue
		}
		help := binding.Help()

		keyText := menuKeyStyle.Render(help.Key)
		descText := menuDescStyle.Render(" " + help.Desc)
		entry := keyText + descText
		if m.keyDown != nil && *m.keyDown == name {
			entry = keydownStyle.Render(entry)
		}
		parts = append(parts, entry)
	}

	bar := strings.Join(parts, menuSepStyle.Render(menuSeparator))
	return menuStyle.Width(m.width).Align(lipgloss.Center).Render(bar)
}
