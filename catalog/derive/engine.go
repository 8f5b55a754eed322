// Package derive computes the filtered, sorted view of the catalog and its
// price aggregate. The engine memoizes on its three inputs (collection
// identity, filter text, sort key) and hands back the previous result
// untouched when nothing changed, so downstream consumers can detect "no
// change" with a pointer comparison instead of diffing rows.
package derive

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"showcase/catalog"
)

// SortKey selects the row ordering.
type SortKey int

const (
	SortByName SortKey = iota
	SortByPrice
)

func (k SortKey) String() string {
	if k == SortByPrice {
		return "price"
	}
	return "name"
}

// Engine owns the derived view. Not safe for concurrent use; the update loop
// is the only caller.
type Engine struct {
	collator *collate.Collator

	haveMemo   bool
	memoItems  []catalog.Item
	memoFilter string
	memoKey    SortKey
	memoRows   []catalog.Item
	memoTotal  float64

	recomputes uint64
}

// NewEngine returns an engine sorting names with English collation rules.
func NewEngine() *Engine {
	return &Engine{collator: collate.New(language.English)}
}

// Compute returns the ordered rows matching filterText plus the sum of their
// prices. The filter is a case-insensitive substring match on the name; an
// empty filter keeps every item. Sorting is stable, so ties keep the order
// the filter produced. When (items identity, filterText, sortKey) all match
// the previous call, the memoized rows and total are returned with no
// filtering or sorting work done.
func (e *Engine) Compute(items []catalog.Item, filterText string, key SortKey) ([]catalog.Item, float64) {
	if e.haveMemo && sameCollection(e.memoItems, items) && e.memoFilter == filterText && e.memoKey == key {
		return e.memoRows, e.memoTotal
	}

	rows, total := e.compute(items, filterText, key)

	e.haveMemo = true
	e.memoItems = items
	e.memoFilter = filterText
	e.memoKey = key
	e.memoRows = rows
	e.memoTotal = total
	return rows, total
}

// ComputeFresh is the naive path: it never reads or writes the memo, so every
// call redoes the filter, the sort and the sum. Naive mode uses it to show
// what the memo saves.
func (e *Engine) ComputeFresh(items []catalog.Item, filterText string, key SortKey) ([]catalog.Item, float64) {
	return e.compute(items, filterText, key)
}

func (e *Engine) compute(items []catalog.Item, filterText string, key SortKey) ([]catalog.Item, float64) {
	e.recomputes++
	rows := filterRows(items, filterText)
	switch key {
	case SortByPrice:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Price < rows[j].Price
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return e.collator.CompareString(rows[i].Name, rows[j].Name) < 0
		})
	}

	var total float64
	for _, item := range rows {
		total += item.Price
	}
	return rows, total
}

// Recomputes returns how many times Compute did real work. Memo hits do not
// count; the demo's status bar and the tests both watch this.
func (e *Engine) Recomputes() uint64 {
	return e.recomputes
}

// filterRows copies the matching items into a fresh slice. The copy matters:
// sorting must never reorder the shared base collection.
func filterRows(items []catalog.Item, filterText string) []catalog.Item {
	if filterText == "" {
		rows := make([]catalog.Item, len(items))
		copy(rows, items)
		return rows
	}
	needle := strings.ToLower(filterText)
	rows := make([]catalog.Item, 0, len(items)/4)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			rows = append(rows, item)
		}
	}
	return rows
}

// sameCollection reports whether two slices are the same collection, by
// identity of the backing array rather than element equality.
func sameCollection(a, b []catalog.Item) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
