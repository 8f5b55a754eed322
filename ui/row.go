package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"showcase/catalog"
)

const favoriteIcon = "★"
const plainIcon = "·"

var favoriteStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffaa00"))

var rowNameStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"})

var rowPriceStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#51bd73", Dark: "#51bd73"})

var rowCategoryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var rowProfileStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5f87de"))

var selectedRowStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#dde4f0")).
	Foreground(lipgloss.Color("#1a1a1a"))

// RowRenderer turns an item into its one-line visual. The expensive part of
// the visual (the price profile) goes through PriceCache; everything else is
// cheap formatting. Render counts are kept so the status bar can show how
// much row work each frame did.
type RowRenderer struct {
	prices *PriceCache
	width  int

	renders uint64
}

func NewRowRenderer() *RowRenderer {
	return &RowRenderer{prices: NewPriceCache()}
}

func (r *RowRenderer) setWidth(width int) {
	r.width = width
}

// Prices exposes the profile cache for counters and tests.
func (r *RowRenderer) Prices() *PriceCache {
	return r.prices
}

// Renders returns the total number of rows rendered so far.
func (r *RowRenderer) Renders() uint64 {
	return r.renders
}

// Render produces the row line using the cached price profile.
func (r *RowRenderer) Render(item catalog.Item, favorite, selected bool) string {
	return r.row(item, favorite, selected, r.prices.Profile(item.Price))
}

// RenderUncached produces the same line but recomputes the price profile from
// scratch. The naive pane renders every row this way on every frame.
func (r *RowRenderer) RenderUncached(item catalog.Item, favorite, selected bool) string {
	return r.row(item, favorite, selected, priceProfile(item.Price))
}

func (r *RowRenderer) row(item catalog.Item, favorite, selected bool, profile string) string {
	r.renders++

	marker := plainIcon
	if favorite {
		marker = favoriteIcon
	}

	// Fixed columns: marker (2) + profile (9) + price (10) + category (13)
	// plus separators; the name gets the rest.
	nameWidth := r.width - 40
	if nameWidth < 8 {
		nameWidth = 8
	}
	name := runewidth.FillRight(runewidth.Truncate(item.Name, nameWidth, "…"), nameWidth)

	if selected {
		line := fmt.Sprintf(" %s %s  %s  $%7.2f  %-11s", marker, name, profile, item.Price, item.Category)
		return selectedRowStyle.Render(line)
	}

	markerPart := marker
	if favorite {
		markerPart = favoriteStyle.Render(marker)
	}
	return fmt.Sprintf(" %s %s  %s  %s  %s",
		markerPart,
		rowNameStyle.Render(name),
		rowProfileStyle.Render(profile),
		rowPriceStyle.Render(fmt.Sprintf("$%7.2f", item.Price)),
		rowCategoryStyle.Render(fmt.Sprintf("%-11s", item.Category)),
	)
}
