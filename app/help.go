package app

import (
	"sort"

	"showcase/keys"
	"showcase/log"
	"showcase/ui"
	"showcase/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type helpText interface {
	// toContent returns the help UI content.
	toContent() string
	// mask returns the bit mask for this help text. These are used to track which help screens
	// have been seen in the app state.
	mask() uint32
}

type helpTypeGeneral struct{}

// helpTypeNaiveMode explains the contrast pane the first time it's entered.
type helpTypeNaiveMode struct{}

func (h helpTypeGeneral) toContent() string {
	// Get all categories
	allCategories := keys.GetAllCategories()

	// Sort categories in a specific order
	sort.Slice(allCategories, func(i, j int) bool {
		// Define category order for display
		order := map[keys.HelpCategory]int{
			keys.HelpCategoryNavigation: 1,
			keys.HelpCategoryCatalog:    2,
			keys.HelpCategoryView:       3,
			keys.HelpCategoryOther:      4,
			keys.HelpCategoryUncategory: 5, // Always last if present
		}
		return order[allCategories[i]] < order[allCategories[j]]
	})

	// Start with title and description
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Showcase"),
		"",
		"A list-rendering demo: 10,000 catalog rows, one small window of real work.",
		"Watch the counters while you type, sort and scroll.",
		"",
	)

	// Add sections for each category
	for _, category := range allCategories {
		// Get keys in this category
		categoryKeys := keys.GetKeysInCategory(category)

		// Skip empty categories
		if len(categoryKeys) == 0 {
			continue
		}

		// Sort within the category so the listing is stable across runs
		sort.Slice(categoryKeys, func(i, j int) bool {
			return categoryKeys[i] < categoryKeys[j]
		})

		// Add category header
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			headerStyle.Render(string(category)+":"),
		)

		// Add each key binding in this category
		for _, keyName := range categoryKeys {
			// Get the key binding
			keyBinding := keys.GlobalkeyBindings[keyName]

			// Get help info
			helpInfo := keys.GetKeyHelp(keyName)

			// Format and add the key help
			keyText := keyBinding.Help().Key
			descText := helpInfo.Description

			// Calculate padding (to align descriptions)
			padding := ""
			padLen := 12 - len(keyText) // Assuming max key length of 12
			if padLen > 0 {
				for i := 0; i < padLen; i++ {
					padding += " "
				}
			}

			keyLine := keyStyle.Render(keyText) + padding + descStyle.Render("- "+descText)
			content = lipgloss.JoinVertical(lipgloss.Left, content, keyLine)
		}

		// Add spacing between categories
		content = lipgloss.JoinVertical(lipgloss.Left, content, "")
	}

	return content
}

func (h helpTypeNaiveMode) toContent() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Naive Mode"),
		"",
		"You're now rendering the slow way:",
		descStyle.Render("• every interaction refilters and resorts the full collection"),
		descStyle.Render("• every row is materialized each frame, not just the visible window"),
		descStyle.Render("• price profiles are recomputed instead of read from the cache"),
		"",
		"Watch the recompute and materialized counters climb in the status bar,",
		"then press "+keyStyle.Render("v")+" again to switch back and watch them stop.",
	)
	return content
}

func (h helpTypeGeneral) mask() uint32 {
	return 1
}

func (h helpTypeNaiveMode) mask() uint32 {
	return 1 << 1
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7D56F4"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFCC00"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
)

// showHelpScreen displays the help screen overlay if it hasn't been shown before
func (m *home) showHelpScreen(helpType helpText, onDismiss func()) (tea.Model, tea.Cmd) {
	// Get the flag for this help type
	var alwaysShow bool
	switch helpType.(type) {
	case helpTypeGeneral:
		alwaysShow = true
	}

	flag := helpType.mask()

	// Check if this help screen has been seen before
	// Only show if we're showing the general help screen or the corresponding flag is not set
	// in the seen bitmask.
	if alwaysShow || (m.appState.GetHelpScreensSeen()&flag) == 0 {
		// Mark this help screen as seen and save state
		if err := m.appState.SetHelpScreensSeen(m.appState.GetHelpScreensSeen() | flag); err != nil {
			log.WarningLog.Printf("Failed to save help screen state: %v", err)
		}

		content := helpType.toContent()

		m.textOverlay = overlay.NewTextOverlay(content)
		m.textOverlay.SetWidth(int(float32(m.width) * 0.6))
		m.textOverlay.OnDismiss = onDismiss
		m.state = stateHelp
		m.menu.SetState(ui.StateOverlay)
		return m, nil
	}

	// Skip displaying the help screen
	if onDismiss != nil {
		onDismiss()
	}
	return m, nil
}

// handleHelpState handles key events when in help state
func (m *home) handleHelpState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key press will close the help overlay
	shouldClose := m.textOverlay.HandleKeyPress(msg)
	if shouldClose {
		m.state = stateDefault
		m.textOverlay = nil
		m.menu.SetState(ui.StateDefault)
	}

	return m, nil
}
