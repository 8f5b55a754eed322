package app

import (
	"context"
	"fmt"
	"time"

	"showcase/catalog"
	"showcase/catalog/derive"
	"showcase/config"
	"showcase/keys"
	"showcase/log"
	"showcase/ui"
	"showcase/ui/gen"
	"showcase/ui/overlay"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sortApplyDelay is how long a sort change waits before applying. The delay
// keeps the reorder off the keypress path, so the pending indicator paints
// first and a quick second press supersedes the first.
const sortApplyDelay = 50 * time.Millisecond

// Run is the main entrypoint into the application.
func Run(ctx context.Context, appConfig *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, appConfig),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse scroll
	)
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateFilter is the state when the user is editing the filter query.
	stateFilter
	// stateDetail is the state when the item detail overlay is displayed.
	stateDetail
	// stateHelp is the state when a help screen is displayed.
	stateHelp
)

// pane is the navigation surface shared by the optimized window and the
// naive full-render pane.
type pane interface {
	SetRows(rows []catalog.Item)
	SetFavorites(favs *catalog.FavoriteSet)
	Selected() (catalog.Item, bool)
	SelectedIndex() int
	Select(idx int)
	Up()
	Down()
	PageUp()
	PageDown()
	Home()
	End()
	Materialized() int
	String() string
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like seen help screens
	appState *config.State

	// -- Catalog --

	// items is the immutable base collection. Derived rows are always fresh
	// slices; this one is generated once and never reordered.
	items []catalog.Item
	// favs is the current favorite set version
	favs *catalog.FavoriteSet
	// engine computes the filtered, sorted rows and the price total
	engine *derive.Engine
	// loader fetches item details asynchronously
	loader catalog.DetailLoader

	// rows and total are the output of the last engine call
	rows  []catalog.Item
	total float64

	// -- State --

	// state is the current discrete state of the application
	state state

	// filterText is the applied (settled) filter query. While the user is
	// typing, the text input echoes ahead of it.
	filterText string
	// lastEcho is the input text of the previous keystroke, used to tell
	// text edits apart from cursor movement.
	lastEcho string
	// typingPending is true between an echoed keystroke and its settle.
	typingPending bool

	// sortKey is the applied sort order.
	sortKey derive.SortKey
	// pendingSort is the sort order the next apply will install.
	pendingSort derive.SortKey
	// sortPending is true between a sort keypress and its deferred apply.
	sortPending bool

	// naive switches to the full-render contrast pane.
	naive bool

	// settleGate, sortGate and detailGate stamp async work so stale results
	// can be recognized and dropped.
	settleGate gen.Gate
	sortGate   gen.Gate
	detailGate gen.Gate

	// detailCancel cancels the in-flight detail load, if any.
	detailCancel context.CancelFunc

	// flash is a transient confirmation shown in the status bar.
	flash string

	// keySent is used to manage underlining menu items
	keySent bool

	width  int
	height int

	// -- UI Components --

	// window renders only the visible slice of the rows
	window *ui.Window
	// naivePane renders every row each frame, for contrast
	naivePane *ui.NaivePane
	// renderer draws rows and owns the price profile cache
	renderer *ui.RowRenderer
	// statusBar shows the counters that tell the two modes apart
	statusBar *ui.StatusBar
	// filterInput is the query box above the list
	filterInput textinput.Model
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	// detailOverlay shows the expanded record for one item
	detailOverlay *overlay.DetailOverlay
	// textOverlay displays text information
	textOverlay *overlay.TextOverlay
}

func newHome(ctx context.Context, appConfig *config.Config) *home {
	// Load application state with built-in locking
	appState := config.LoadState()

	items := catalog.Generate(appConfig.ItemCount, appConfig.Seed)
	loader := catalog.NewStoreLoader(items, appConfig.Seed,
		time.Duration(appConfig.DetailLatencyMS)*time.Millisecond)

	renderer := ui.NewRowRenderer()

	filterInput := textinput.New()
	filterInput.Prompt = "/ "
	filterInput.Placeholder = "filter by name"
	filterInput.CharLimit = 64

	h := &home{
		ctx:         ctx,
		appConfig:   appConfig,
		appState:    appState,
		items:       items,
		favs:        catalog.NewFavoriteSet(),
		engine:      derive.NewEngine(),
		loader:      loader,
		renderer:    renderer,
		window:      ui.NewWindow(renderer, appConfig.RowHeight, appConfig.ViewportHeight, appConfig.Overscan),
		naivePane:   ui.NewNaivePane(renderer, appConfig.RowHeight, appConfig.ViewportHeight),
		statusBar:   ui.NewStatusBar(),
		filterInput: filterInput,
		menu:        ui.NewMenu(),
		errBox:      ui.NewErrBox(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		state:       stateDefault,
		naive:       appConfig.NaiveDefault,
		sortKey:     parseSortKey(appConfig.DefaultSortKey),
	}

	h.window.SetFavorites(h.favs)
	h.naivePane.SetFavorites(h.favs)
	h.lastEcho = ""
	h.pendingSort = h.sortKey

	h.recomputeView()

	return h
}

func parseSortKey(s string) derive.SortKey {
	if s == "price" {
		return derive.SortByPrice
	}
	return derive.SortByName
}

// recomputeView runs the derived-view engine and hands the rows to both
// panes. In optimized mode this is a memo hit unless an input changed; in
// naive mode it redoes the work every time, which is the point.
func (m *home) recomputeView() {
	if m.naive {
		m.rows, m.total = m.engine.ComputeFresh(m.items, m.filterText, m.sortKey)
	} else {
		m.rows, m.total = m.engine.Compute(m.items, m.filterText, m.sortKey)
	}
	m.window.SetRows(m.rows)
	m.naivePane.SetRows(m.rows)
}

func (m *home) activePane() pane {
	if m.naive {
		return m.naivePane
	}
	return m.window
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	m.statusBar.SetSize(msg.Width)
	m.window.SetSize(msg.Width)
	m.errBox.SetSize(msg.Width)
	m.menu.SetSize(msg.Width, 1)
	m.filterInput.Width = msg.Width - 6

	if m.detailOverlay != nil {
		m.detailOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
}

func (m *home) Init() tea.Cmd {
	// Upon starting, we want to start the spinner. Whenever we get a spinner.TickMsg, we
	// update the spinner, which sends a new spinner.TickMsg. I think this lasts forever lol.
	return tea.Batch(
		m.spinner.Tick,
		textinput.Blink,
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filterSettledMsg:
		// A newer keystroke supersedes this settle; drop it.
		if !m.settleGate.Current(msg.token) {
			return m, nil
		}
		m.typingPending = false
		m.filterText = msg.query
		m.recomputeView()
		return m, nil
	case sortAppliedMsg:
		// A newer sort press supersedes this apply; drop it.
		if !m.sortGate.Current(msg.token) {
			return m, nil
		}
		m.sortPending = false
		m.sortKey = msg.key
		m.recomputeView()
		return m, nil
	case detailLoadedMsg:
		// Results from a closed or superseded detail view are stale.
		if !m.detailGate.Current(msg.token) {
			return m, nil
		}
		if m.detailOverlay == nil || m.detailOverlay.ItemID() != msg.itemID {
			return m, nil
		}
		if msg.err != nil {
			log.WarningLog.Printf("detail load for item %d failed: %v", msg.itemID, msg.err)
			m.detailOverlay.SetError(msg.err)
			return m, nil
		}
		m.detailOverlay.SetDetail(msg.detail)
		return m, nil
	case hideErrMsg:
		m.errBox.Clear()
	case hideFlashMsg:
		m.flash = ""
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case tea.MouseMsg:
		// Mouse wheel scrolls the window without touching the selection
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				if m.naive {
					m.naivePane.Up()
				} else {
					m.window.ScrollBy(-2 * m.appConfig.RowHeight)
				}
				m.recomputeView()
			case tea.MouseButtonWheelDown:
				if m.naive {
					m.naivePane.Down()
				} else {
					m.window.ScrollBy(2 * m.appConfig.RowHeight)
				}
				m.recomputeView()
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case error:
		return m, m.handleError(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	// Release any locks held by the state manager
	if err := m.appState.Close(); err != nil {
		log.WarningLog.Printf("Failed to close state manager: %v", err)
		// Continue with quit anyway
	}

	return m, tea.Quit
}

func (m *home) handleMenuHighlighting(msg tea.KeyMsg) (cmd tea.Cmd, returnEarly bool) {
	// Handle menu highlighting when you press a button. We intercept it here and immediately return to
	// update the ui while re-sending the keypress. Then, on the next call to this, we actually handle the keypress.
	if m.keySent {
		m.keySent = false
		return nil, false
	}
	if m.state != stateDefault {
		return nil, false
	}
	// If it's in the global keymap, we should try to highlight it.
	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return nil, false
	}
	// Skip the paging keys; they repeat while held and the re-send churn isn't worth it.
	if name == keys.KeyPageUp || name == keys.KeyPageDown {
		return nil, false
	}

	m.keySent = true
	return tea.Batch(
		func() tea.Msg { return msg },
		m.keydownCallback(name)), true
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (mod tea.Model, cmd tea.Cmd) {
	cmd, returnEarly := m.handleMenuHighlighting(msg)
	if returnEarly {
		return m, cmd
	}

	if m.state == stateHelp {
		return m.handleHelpState(msg)
	}

	if m.state == stateDetail {
		return m.handleDetailState(msg)
	}

	if m.state == stateFilter {
		return m.handleFilterState(msg)
	}

	// Handle quit commands first
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		return m.handleQuit()
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}

	switch name {
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	case keys.KeyEsc:
		// Esc with an active filter clears it immediately
		if m.filterText != "" || m.filterInput.Value() != "" {
			m.settleGate.Invalidate()
			m.typingPending = false
			m.filterText = ""
			m.filterInput.SetValue("")
			m.lastEcho = ""
			m.recomputeView()
		}
		return m, nil
	case keys.KeyFilter:
		m.state = stateFilter
		m.menu.SetState(ui.StateFilter)
		m.filterInput.Focus()
		return m, textinput.Blink
	case keys.KeySort:
		// Toggle from the pending target so rapid presses chain, then defer
		// the reorder. Last press wins.
		if m.pendingSort == derive.SortByName {
			m.pendingSort = derive.SortByPrice
		} else {
			m.pendingSort = derive.SortByName
		}
		m.sortPending = true
		token := m.sortGate.Stamp()
		key := m.pendingSort
		return m, tea.Tick(sortApplyDelay, func(time.Time) tea.Msg {
			return sortAppliedMsg{key: key, token: token}
		})
	case keys.KeyFav:
		item, ok := m.activePane().Selected()
		if !ok {
			return m, nil
		}
		// Synchronous: the marker must be correct on the very next frame
		m.favs = m.favs.Toggle(item.ID)
		m.window.SetFavorites(m.favs)
		m.naivePane.SetFavorites(m.favs)
		m.recomputeView()
		return m, nil
	case keys.KeyYank:
		item, ok := m.activePane().Selected()
		if !ok {
			return m, nil
		}
		text := fmt.Sprintf("%s  $%.2f  %s", item.Name, item.Price, item.Category)
		if err := clipboard.WriteAll(text); err != nil {
			return m, m.handleError(fmt.Errorf("could not copy to clipboard: %w", err))
		}
		m.flash = fmt.Sprintf("copied %q", item.Name)
		return m, m.clearFlashCmd()
	case keys.KeyNaive:
		m.naive = !m.naive
		// Carry the selection over to the other pane
		if m.naive {
			m.naivePane.Select(m.window.SelectedIndex())
		} else {
			m.window.Select(m.naivePane.SelectedIndex())
		}
		m.recomputeView()
		if m.naive {
			return m.showHelpScreen(helpTypeNaiveMode{}, nil)
		}
		return m, nil
	case keys.KeyEnter:
		item, ok := m.activePane().Selected()
		if !ok {
			return m, nil
		}
		token := m.detailGate.Stamp()
		m.detailOverlay = overlay.NewDetailOverlay(item.ID, &m.spinner)
		m.detailOverlay.SetWidth(int(float32(m.width) * 0.6))
		m.state = stateDetail
		m.menu.SetState(ui.StateOverlay)
		return m, m.loadDetailCmd(item.ID, token)
	case keys.KeyUp:
		m.activePane().Up()
		m.recomputeView()
		return m, nil
	case keys.KeyDown:
		m.activePane().Down()
		m.recomputeView()
		return m, nil
	case keys.KeyPageUp:
		m.activePane().PageUp()
		m.recomputeView()
		return m, nil
	case keys.KeyPageDown:
		m.activePane().PageDown()
		m.recomputeView()
		return m, nil
	case keys.KeyHome:
		m.activePane().Home()
		m.recomputeView()
		return m, nil
	case keys.KeyEnd:
		m.activePane().End()
		m.recomputeView()
		return m, nil
	default:
		return m, nil
	}
}

// handleFilterState routes key events to the filter input. Every text change
// echoes immediately and schedules a settle; only the last one lands.
func (m *home) handleFilterState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Apply right away instead of waiting out the settle delay
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		m.filterInput.Blur()
		m.settleGate.Invalidate()
		m.typingPending = false
		m.filterText = m.filterInput.Value()
		m.recomputeView()
		return m, nil
	case "esc":
		// Revert the echo to the applied query
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		m.filterInput.Blur()
		m.filterInput.SetValue(m.filterText)
		m.lastEcho = m.filterText
		m.settleGate.Invalidate()
		m.typingPending = false
		return m, nil
	case "ctrl+c":
		return m.handleQuit()
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	if echo := m.filterInput.Value(); echo != m.lastEcho {
		m.lastEcho = echo
		m.typingPending = true
		token := m.settleGate.Stamp()
		settle := tea.Tick(m.settleDelay(), func(time.Time) tea.Msg {
			return filterSettledMsg{query: echo, token: token}
		})
		return m, tea.Batch(cmd, settle)
	}
	return m, cmd
}

// handleDetailState processes key events while the detail overlay is open
func (m *home) handleDetailState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detailOverlay == nil {
		m.state = stateDefault
		m.menu.SetState(ui.StateDefault)
		return m, nil
	}

	shouldClose := m.detailOverlay.HandleKeyPress(msg)
	if shouldClose {
		m.closeDetail()
	}
	return m, nil
}

// closeDetail tears down the detail overlay and cancels its load. The gate
// invalidation means a load that still completes gets dropped as stale.
func (m *home) closeDetail() {
	if m.detailCancel != nil {
		m.detailCancel()
		m.detailCancel = nil
	}
	m.detailGate.Invalidate()
	m.detailOverlay = nil
	m.state = stateDefault
	m.menu.SetState(ui.StateDefault)
}

// loadDetailCmd starts the async detail load for one item.
func (m *home) loadDetailCmd(itemID int, token uint64) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.detailCancel = cancel
	return func() tea.Msg {
		detail, err := m.loader.Load(ctx, itemID)
		return detailLoadedMsg{itemID: itemID, detail: detail, err: err, token: token}
	}
}

func (m *home) settleDelay() time.Duration {
	return time.Duration(m.appConfig.SettleDelayMS) * time.Millisecond
}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{}
	}
}

// clearFlashCmd clears the status flash after 2 seconds.
func (m *home) clearFlashCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(2 * time.Second):
		}

		return hideFlashMsg{}
	}
}

// statusStats gathers the frame's counters for the status bar. Call after
// rendering the list so the materialized count is current.
func (m *home) statusStats() ui.StatusStats {
	stats := ui.StatusStats{
		Naive:         m.naive,
		RowCount:      len(m.rows),
		Total:         m.total,
		SortKey:       m.sortKey.String(),
		Filter:        m.filterText,
		Recomputes:    m.engine.Recomputes(),
		CacheHits:     m.renderer.Prices().Hits(),
		CacheMisses:   m.renderer.Prices().Misses(),
		Favorites:     m.favs.Len(),
		TypingPending: m.typingPending,
		SortPending:   m.sortPending,
		DetailLoading: m.detailOverlay != nil && m.detailOverlay.Loading(),
		Flash:         m.flash,
	}
	if m.naive {
		stats.WindowStart = 0
		stats.WindowEnd = len(m.rows)
		stats.Materialized = m.naivePane.Materialized()
	} else {
		stats.WindowStart, stats.WindowEnd = m.window.Range()
		stats.Materialized = m.window.Materialized()
	}
	return stats
}

func (m *home) View() string {
	// Render the list first; it updates the materialized count the status bar shows.
	listView := m.activePane().String()
	m.statusBar.SetStats(m.statusStats())

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.statusBar.String(),
		filterLineStyle.Render(m.filterInput.View()),
		listView,
		m.menu.String(),
		m.errBox.String(),
	)

	if m.state == stateDetail {
		if m.detailOverlay == nil {
			log.ErrorLog.Printf("detail overlay is nil")
			return mainView
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detailOverlay.Render())
	} else if m.state == stateHelp {
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.textOverlay.Render())
	}

	return mainView
}

var filterLineStyle = lipgloss.NewStyle().Padding(0, 1)

type keyupMsg struct{}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// hideFlashMsg clears the status bar flash.
type hideFlashMsg struct{}

// filterSettledMsg lands a settled filter query. Stale tokens are dropped.
type filterSettledMsg struct {
	query string
	token uint64
}

// sortAppliedMsg lands a deferred sort change. Stale tokens are dropped.
type sortAppliedMsg struct {
	key   derive.SortKey
	token uint64
}

// detailLoadedMsg carries the result of an async detail load.
type detailLoadedMsg struct {
	itemID int
	detail catalog.Detail
	err    error
	token  uint64
}
