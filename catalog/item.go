// Package catalog owns the base collection of the demo: generated items,
// the favorite membership set, and the detail loader backing the detail panel.
package catalog

// Category labels a product group. The catalog uses a fixed set of four.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryGrocery     Category = "Grocery"
	CategoryOutdoors    Category = "Outdoors"
	CategoryToys        Category = "Toys"
)

// Categories is the fixed category list in assignment order.
var Categories = []Category{
	CategoryElectronics,
	CategoryGrocery,
	CategoryOutdoors,
	CategoryToys,
}

// Item is a single catalog record. Items are created once by Generate and
// never mutated afterwards; every consumer shares the same backing slice.
type Item struct {
	ID       int
	Name     string
	Price    float64
	Category Category
}
