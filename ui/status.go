package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var statusTitleStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("62")).
	Foreground(lipgloss.Color("230")).
	Padding(0, 1)

var statusModeOptimized = lipgloss.NewStyle().
	Background(lipgloss.Color("#51bd73")).
	Foreground(lipgloss.Color("#1a1a1a")).
	Padding(0, 1)

var statusModeNaive = lipgloss.NewStyle().
	Background(lipgloss.Color("#de613e")).
	Foreground(lipgloss.Color("#1a1a1a")).
	Padding(0, 1)

var statusCounterStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#999999"})

var statusPendingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffaa00"))

var statusFlashStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5f87de"))

// StatusStats is everything the status bar prints. The app fills it in each
// frame from the engine, window and caches; the bar itself holds no logic.
type StatusStats struct {
	Naive bool

	RowCount int
	Total    float64
	SortKey  string
	Filter   string

	WindowStart  int
	WindowEnd    int
	Materialized int

	Recomputes  uint64
	CacheHits   uint64
	CacheMisses uint64
	Favorites   int

	TypingPending bool
	SortPending   bool
	DetailLoading bool

	Flash string
}

// StatusBar is the teaching surface: two lines of counters under the list
// that make the naive/optimized difference visible while you interact.
type StatusBar struct {
	width int
	stats StatusStats
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) SetStats(stats StatusStats) {
	s.stats = stats
}

func (s *StatusBar) String() string {
	st := s.stats

	mode := statusModeOptimized.Render("optimized")
	if st.Naive {
		mode = statusModeNaive.Render("naive")
	}

	left := fmt.Sprintf(" %d rows  total $%.2f  sort:%s", st.RowCount, st.Total, st.SortKey)
	if st.Filter != "" {
		left += fmt.Sprintf("  filter:%q", st.Filter)
	}

	var pending []string
	if st.TypingPending {
		pending = append(pending, "filtering…")
	}
	if st.SortPending {
		pending = append(pending, "sorting…")
	}
	if st.DetailLoading {
		pending = append(pending, "loading detail…")
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		statusTitleStyle.Render("showcase"),
		mode,
		statusTitleStyle.Render(left),
	)
	if len(pending) > 0 {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, " ", statusPendingStyle.Render(strings.Join(pending, " ")))
	}

	counters := fmt.Sprintf(" window [%d,%d)  materialized %d  recomputes %d  cache %d/%d  favorites %d",
		st.WindowStart, st.WindowEnd, st.Materialized, st.Recomputes,
		st.CacheHits, st.CacheHits+st.CacheMisses, st.Favorites)
	bottom := statusCounterStyle.Render(counters)
	if st.Flash != "" {
		bottom = lipgloss.JoinHorizontal(lipgloss.Top, bottom, "  ", statusFlashStyle.Render(st.Flash))
	}

	return top + "\n" + bottom
}
