package ui

import (
	"strings"

	"showcase/catalog"
)

// NaivePane is the contrast baseline: it materializes every derived row on
// every frame and recomputes the price profile uncached each time. Only a
// viewport's worth of lines reaches the terminal, but the work has already
// been done for all of them, which is exactly what the demo is showing off.
type NaivePane struct {
	rows     []catalog.Item
	favs     *catalog.FavoriteSet
	renderer *RowRenderer

	rowHeight      int
	viewportHeight int

	selectedIdx  int
	materialized int
}

func NewNaivePane(renderer *RowRenderer, rowHeight, viewportHeight int) *NaivePane {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if viewportHeight <= 0 {
		viewportHeight = DefaultViewportHeight
	}
	return &NaivePane{
		renderer:       renderer,
		favs:           catalog.NewFavoriteSet(),
		rowHeight:      rowHeight,
		viewportHeight: viewportHeight,
	}
}

// SetSize sets the terminal width available to the pane.
func (n *NaivePane) SetSize(width int) {
	n.renderer.setWidth(width)
}

// SetRows swaps in a new derived row slice, clamping the selection.
func (n *NaivePane) SetRows(rows []catalog.Item) {
	n.rows = rows
	if n.selectedIdx >= len(rows) {
		n.selectedIdx = len(rows) - 1
	}
	if n.selectedIdx < 0 {
		n.selectedIdx = 0
	}
}

// SetFavorites swaps in the current favorite set version.
func (n *NaivePane) SetFavorites(favs *catalog.FavoriteSet) {
	n.favs = favs
}

// Selected returns the selected item, if any rows exist.
func (n *NaivePane) Selected() (catalog.Item, bool) {
	if n.selectedIdx < 0 || n.selectedIdx >= len(n.rows) {
		return catalog.Item{}, false
	}
	return n.rows[n.selectedIdx], true
}

// SelectedIndex returns the selected row index.
func (n *NaivePane) SelectedIndex() int {
	return n.selectedIdx
}

// Select moves the selection to idx, clamped into range.
func (n *NaivePane) Select(idx int) {
	n.move(idx)
}

// Up moves the selection one row up.
func (n *NaivePane) Up() { n.move(n.selectedIdx - 1) }

// Down moves the selection one row down.
func (n *NaivePane) Down() { n.move(n.selectedIdx + 1) }

// PageUp moves the selection one viewport up.
func (n *NaivePane) PageUp() { n.move(n.selectedIdx - n.pageRows()) }

// PageDown moves the selection one viewport down.
func (n *NaivePane) PageDown() { n.move(n.selectedIdx + n.pageRows()) }

// Home moves the selection to the first row.
func (n *NaivePane) Home() { n.move(0) }

// End moves the selection to the last row.
func (n *NaivePane) End() { n.move(len(n.rows) - 1) }

func (n *NaivePane) move(idx int) {
	if len(n.rows) == 0 {
		n.selectedIdx = 0
		return
	}
	n.selectedIdx = clamp(idx, 0, len(n.rows)-1)
}

func (n *NaivePane) pageRows() int {
	rows := n.viewportHeight / n.rowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Materialized returns how many rows the last render built: all of them.
func (n *NaivePane) Materialized() int {
	return n.materialized
}

// String renders the pane. Every row is built from scratch; the displayed
// slice is centered on the selection afterwards.
func (n *NaivePane) String() string {
	if len(n.rows) == 0 {
		n.materialized = 0
		return listFrameStyle.Render(listDescStyle.Render("no rows match"))
	}

	lines := make([]string, len(n.rows))
	for i, item := range n.rows {
		lines[i] = n.renderer.RenderUncached(item, n.favs.Has(item.ID), i == n.selectedIdx)
	}
	n.materialized = len(lines)

	visible := n.pageRows()
	start := clamp(n.selectedIdx-visible/2, 0, maxInt(0, len(lines)-visible))
	end := clamp(start+visible, 0, len(lines))
	return listFrameStyle.Render(strings.Join(lines[start:end], "\n"))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
