package ui

import (
	"testing"

	"showcase/catalog"
	"showcase/ui"
	"showcase/ui/overlay"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowRendersOnlyTheVisibleSlice(t *testing.T) {
	// Build a window over a thousand-row collection
	items := catalog.Generate(1000, 3)
	window := ui.NewWindow(ui.NewRowRenderer(), 0, 0, 0)
	window.SetSize(100)
	window.SetRows(items)

	// Create a test renderer
	renderer := NewTestRenderer().DisableColors()

	// Render and verify only the top of the list appears
	output, err := renderer.RenderComponent(window)
	require.NoError(t, err)
	assert.Contains(t, output, items[0].Name)
	assert.NotContains(t, output, items[500].Name)

	// The window stays a handful of rows no matter the collection size
	assert.GreaterOrEqual(t, window.Materialized(), 8)
	assert.LessOrEqual(t, window.Materialized(), 10)
}

func TestWindowFollowsScrollToTheEnd(t *testing.T) {
	items := catalog.Generate(1000, 3)
	window := ui.NewWindow(ui.NewRowRenderer(), 0, 0, 0)
	window.SetSize(100)
	window.SetRows(items)

	// Jump to the last row
	window.End()

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(window)
	require.NoError(t, err)
	assert.Contains(t, output, items[999].Name)
	assert.NotContains(t, output, items[0].Name)
}

func TestNaivePaneRendersTheWholeCollection(t *testing.T) {
	// Sixty rows is far more than fit in the viewport
	items := catalog.Generate(60, 3)
	pane := ui.NewNaivePane(ui.NewRowRenderer(), 0, 0)
	pane.SetSize(100)
	pane.SetRows(items)

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(pane)
	require.NoError(t, err)

	// Every row was built even though the display clips to the viewport
	assert.Equal(t, 60, pane.Materialized())
	assert.Contains(t, output, items[0].Name)

	// Moving to the end still rebuilds all sixty rows
	pane.End()
	output, err = renderer.RenderComponent(pane)
	require.NoError(t, err)
	assert.Equal(t, 60, pane.Materialized())
	assert.Contains(t, output, items[59].Name)
	assert.NotContains(t, output, items[0].Name)
}

func TestMenuSwitchesOptionsWithState(t *testing.T) {
	menu := ui.NewMenu()
	menu.SetSize(150, 1)

	renderer := NewTestRenderer().DisableColors()

	// Default state advertises the catalog actions
	output, err := renderer.RenderComponent(menu)
	require.NoError(t, err)
	assert.Contains(t, output, "filter")
	assert.Contains(t, output, "favorite")
	assert.Contains(t, output, "naive mode")

	// Filter state narrows to confirm/cancel
	menu.SetState(ui.StateFilter)
	output, err = renderer.RenderComponent(menu)
	require.NoError(t, err)
	assert.Contains(t, output, "cancel")
	assert.NotContains(t, output, "naive mode")

	// Overlay state leaves only cancel
	menu.SetState(ui.StateOverlay)
	output, err = renderer.RenderComponent(menu)
	require.NoError(t, err)
	assert.Contains(t, output, "cancel")
	assert.NotContains(t, output, "favorite")
}

func TestStatusBarShowsCountersAndMode(t *testing.T) {
	bar := ui.NewStatusBar()
	bar.SetSize(150)
	bar.SetStats(ui.StatusStats{
		RowCount:     3,
		Total:        70,
		SortKey:      "name",
		WindowStart:  0,
		WindowEnd:    3,
		Materialized: 3,
		Recomputes:   1,
	})

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(bar)
	require.NoError(t, err)
	assert.Contains(t, output, "optimized")
	assert.Contains(t, output, "3 rows")
	assert.Contains(t, output, "total $70.00")
	assert.Contains(t, output, "sort:name")
	assert.Contains(t, output, "window [0,3)")

	// Naive mode flips the badge and shows the pending markers
	bar.SetStats(ui.StatusStats{Naive: true, SortPending: true})
	output, err = renderer.RenderComponent(bar)
	require.NoError(t, err)
	assert.Contains(t, output, "naive")
	assert.Contains(t, output, "sorting…")
}

func TestDetailOverlayLoadingThenLoaded(t *testing.T) {
	// Create a detail overlay in its loading state
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	detailOverlay := overlay.NewDetailOverlay(7, &spin)
	detailOverlay.SetWidth(60)

	renderer := NewTestRenderer().DisableColors()
	output, err := renderer.RenderComponent(detailOverlay)
	require.NoError(t, err)
	assert.Contains(t, output, "loading")

	// Feed it a loaded record
	detailOverlay.SetDetail(catalog.Detail{
		Item:        catalog.Item{ID: 7, Name: "Woven Basket QXYZ", Price: 34.5, Category: catalog.CategoryOutdoors},
		SKU:         "Out-000007",
		Description: "A basket.",
		Stock:       12,
		Rating:      4.2,
	})
	output, err = renderer.RenderComponent(detailOverlay)
	require.NoError(t, err)
	assert.Contains(t, output, "Woven Basket QXYZ")
	assert.Contains(t, output, "Out-000007")
	assert.Contains(t, output, "$34.50")
	assert.NotContains(t, output, "loading")
}
