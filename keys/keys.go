package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd

	KeyEnter // Open the detail overlay for the selected item
	KeySort  // Cycle the sort key
	KeyFav   // Toggle favorite on the selected item
	KeyYank  // Copy the selected item to the clipboard
	KeyNaive // Switch between optimized and naive rendering

	KeyFilter // Enter filter input mode
	KeyHelp   // Key for showing help screen
	KeyEsc    // Escape key for cancelling operations
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":     KeyUp,
	"k":      KeyUp,
	"down":   KeyDown,
	"j":      KeyDown,
	"pgup":   KeyPageUp,
	"ctrl+u": KeyPageUp,
	"pgdown": KeyPageDown,
	"ctrl+d": KeyPageDown,
	"home":   KeyHome,
	"g":      KeyHome,
	"end":    KeyEnd,
	"G":      KeyEnd,
	"enter":  KeyEnter,
	"s":      KeySort,
	"f":      KeyFav,
	" ":      KeyFav,
	"space":  KeyFav,
	"y":      KeyYank,
	"v":      KeyNaive,
	"/":      KeyFilter,
	"?":      KeyHelp,
	"esc":    KeyEsc,
	"q":      KeyQuit,
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup/^u", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn/^d", "page down"),
	),
	KeyHome: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first row"),
	),
	KeyEnd: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last row"),
	),
	KeyEnter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("↵", "detail"),
	),
	KeySort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	KeyFav: key.NewBinding(
		key.WithKeys("f", " ", "space"),
		key.WithHelp("f/space", "favorite"),
	),
	KeyYank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy item"),
	),
	KeyNaive: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "naive mode"),
	),
	KeyFilter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),

	// General keybinding
	KeyEsc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}
