package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showcase/catalog"
)

// Geometry of the demo layout. The window math runs on pixel geometry the way
// the original page does: rows are 44px tall inside a 320px viewport, so
// seven-to-eight rows are visible and the overscan adds one more on each side.
const (
	DefaultRowHeight      = 44
	DefaultViewportHeight = 320
	DefaultOverscan       = 1
)

var listFrameStyle = lipgloss.NewStyle().
	Padding(0, 1)

// Window materializes only the visible slice of the derived rows. Scroll
// position is tracked in pixels; the visible index range comes out of the
// row height and viewport height, clamped to the row count. Rendering cost
// tracks the window size, never the total row count.
type Window struct {
	rows     []catalog.Item
	favs     *catalog.FavoriteSet
	renderer *RowRenderer

	rowHeight      int
	viewportHeight int
	overscan       int

	// scrollOffset is the pixel offset of the viewport top into the content.
	scrollOffset int
	selectedIdx  int

	width int

	// materialized is how many rows the last String() call actually built.
	materialized int
}

// NewWindow builds a window over an empty row set. Non-positive geometry
// falls back to the defaults.
func NewWindow(renderer *RowRenderer, rowHeight, viewportHeight, overscan int) *Window {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}
	if viewportHeight <= 0 {
		viewportHeight = DefaultViewportHeight
	}
	if overscan < 0 {
		overscan = DefaultOverscan
	}
	return &Window{
		renderer:       renderer,
		favs:           catalog.NewFavoriteSet(),
		rowHeight:      rowHeight,
		viewportHeight: viewportHeight,
		overscan:       overscan,
	}
}

// SetSize sets the terminal width available to the window.
func (w *Window) SetSize(width int) {
	w.width = width
	w.renderer.setWidth(width)
}

// SetRows swaps in a new derived row slice. When the content shrinks below
// the current scroll position, the scroll and selection clamp back into
// range rather than erroring.
func (w *Window) SetRows(rows []catalog.Item) {
	w.rows = rows
	w.scrollOffset = clamp(w.scrollOffset, 0, w.maxScroll())
	if w.selectedIdx >= len(rows) {
		w.selectedIdx = len(rows) - 1
	}
	if w.selectedIdx < 0 {
		w.selectedIdx = 0
	}
}

// SetFavorites swaps in the current favorite set version.
func (w *Window) SetFavorites(favs *catalog.FavoriteSet) {
	w.favs = favs
}

// Rows returns the derived rows currently backing the window.
func (w *Window) Rows() []catalog.Item {
	return w.rows
}

// Range returns the materialized index range [start, end) into the rows:
// the rows intersecting the viewport plus the overscan margin, clamped to
// the row count.
func (w *Window) Range() (start, end int) {
	if len(w.rows) == 0 {
		return 0, 0
	}
	first := w.scrollOffset / w.rowHeight
	last := (w.scrollOffset + w.viewportHeight + w.rowHeight - 1) / w.rowHeight

	start = clamp(first-w.overscan, 0, len(w.rows))
	end = clamp(last+w.overscan, 0, len(w.rows))
	return start, end
}

// maxScroll is the largest valid pixel offset: content height minus one
// viewport, floored at zero.
func (w *Window) maxScroll() int {
	max := len(w.rows)*w.rowHeight - w.viewportHeight
	if max < 0 {
		return 0
	}
	return max
}

// ScrollTo jumps the viewport to the given pixel offset, clamped into range.
func (w *Window) ScrollTo(offset int) {
	w.scrollOffset = clamp(offset, 0, w.maxScroll())
}

// ScrollBy moves the viewport by a pixel delta, clamped into range.
func (w *Window) ScrollBy(delta int) {
	w.ScrollTo(w.scrollOffset + delta)
}

// ScrollOffset returns the current pixel offset.
func (w *Window) ScrollOffset() int {
	return w.scrollOffset
}

// Selected returns the selected item, if any rows exist.
func (w *Window) Selected() (catalog.Item, bool) {
	if w.selectedIdx < 0 || w.selectedIdx >= len(w.rows) {
		return catalog.Item{}, false
	}
	return w.rows[w.selectedIdx], true
}

// SelectedIndex returns the selected row index.
func (w *Window) SelectedIndex() int {
	return w.selectedIdx
}

// Select moves the selection to idx, clamped into range, scrolling to keep
// it visible.
func (w *Window) Select(idx int) {
	w.moveSelection(idx)
}

// Up moves the selection one row up.
func (w *Window) Up() {
	w.moveSelection(w.selectedIdx - 1)
}

// Down moves the selection one row down.
func (w *Window) Down() {
	w.moveSelection(w.selectedIdx + 1)
}

// PageUp moves the selection one viewport up.
func (w *Window) PageUp() {
	w.moveSelection(w.selectedIdx - w.pageRows())
}

// PageDown moves the selection one viewport down.
func (w *Window) PageDown() {
	w.moveSelection(w.selectedIdx + w.pageRows())
}

// Home moves the selection to the first row.
func (w *Window) Home() {
	w.moveSelection(0)
}

// End moves the selection to the last row.
func (w *Window) End() {
	w.moveSelection(len(w.rows) - 1)
}

func (w *Window) pageRows() int {
	rows := w.viewportHeight / w.rowHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (w *Window) moveSelection(idx int) {
	if len(w.rows) == 0 {
		w.selectedIdx = 0
		return
	}
	w.selectedIdx = clamp(idx, 0, len(w.rows)-1)
	w.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls just enough to keep the selected row fully
// inside the viewport.
func (w *Window) ensureSelectedVisible() {
	top := w.selectedIdx * w.rowHeight
	bottom := top + w.rowHeight

	if top < w.scrollOffset {
		w.ScrollTo(top)
		return
	}
	if bottom > w.scrollOffset+w.viewportHeight {
		w.ScrollTo(bottom - w.viewportHeight)
	}
}

// Materialized returns how many rows the last render built.
func (w *Window) Materialized() int {
	return w.materialized
}

// String renders the window: only the rows in Range() are materialized.
func (w *Window) String() string {
	start, end := w.Range()
	w.materialized = end - start

	var b strings.Builder
	for i := start; i < end; i++ {
		item := w.rows[i]
		b.WriteString(w.renderer.Render(item, w.favs.Has(item.ID), i == w.selectedIdx))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if w.materialized == 0 {
		b.WriteString(listDescStyle.Render("no rows match"))
	}
	return listFrameStyle.Render(b.String())
}

var listDescStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
