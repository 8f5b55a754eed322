package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"showcase/catalog"
)

var detailBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1, 2)

var detailTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("62")).
	Bold(true).
	MarginBottom(1)

var detailLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

var detailErrStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#de613e"))

// DetailOverlay shows the expanded record for one item. The record arrives
// asynchronously; a spinner line holds its place until then. The overlay only
// displays what it is given; loading, supersession and cancellation all live
// with the caller.
type DetailOverlay struct {
	itemID  int
	loading bool
	detail  catalog.Detail
	err     error

	spinner *spinner.Model
	width   int
}

// NewDetailOverlay creates the overlay for one item id, in loading state.
func NewDetailOverlay(itemID int, spin *spinner.Model) *DetailOverlay {
	return &DetailOverlay{
		itemID:  itemID,
		loading: true,
		spinner: spin,
	}
}

func (d *DetailOverlay) SetWidth(width int) {
	d.width = width
}

// ItemID returns the id this overlay was opened for.
func (d *DetailOverlay) ItemID() int {
	return d.itemID
}

// Loading reports whether the record is still in flight.
func (d *DetailOverlay) Loading() bool {
	return d.loading
}

// SetDetail installs the loaded record.
func (d *DetailOverlay) SetDetail(detail catalog.Detail) {
	d.detail = detail
	d.err = nil
	d.loading = false
}

// SetError installs a load failure in place of the record.
func (d *DetailOverlay) SetError(err error) {
	d.err = err
	d.loading = false
}

// HandleKeyPress processes a key press. Returns true when the overlay should
// close.
func (d *DetailOverlay) HandleKeyPress(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "q", "enter":
		return true
	}
	return false
}

// Render renders the overlay box.
func (d *DetailOverlay) Render() string {
	innerWidth := d.width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	var content string
	switch {
	case d.loading:
		content = detailTitleStyle.Render(fmt.Sprintf("Item %d", d.itemID)) + "\n" +
			d.spinner.View() + " loading…"
	case d.err != nil:
		content = detailTitleStyle.Render(fmt.Sprintf("Item %d", d.itemID)) + "\n" +
			detailErrStyle.Render(d.err.Error())
	default:
		item := d.detail.Item
		content = detailTitleStyle.Render(item.Name) + "\n" +
			fmt.Sprintf("%s %s\n", detailLabelStyle.Render("sku"), d.detail.SKU) +
			fmt.Sprintf("%s %s\n", detailLabelStyle.Render("category"), item.Category) +
			fmt.Sprintf("%s $%.2f\n", detailLabelStyle.Render("price"), item.Price) +
			fmt.Sprintf("%s %.1f / 5  %s %d\n\n", detailLabelStyle.Render("rating"), d.detail.Rating,
				detailLabelStyle.Render("stock"), d.detail.Stock) +
			wordwrap.String(d.detail.Description, innerWidth)
	}

	return detailBoxStyle.Width(d.width - 2).Render(content)
}
