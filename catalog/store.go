package catalog

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultItemCount is the dataset size the demo is built around.
const DefaultItemCount = 10000

// Generate builds the base collection: n items with ids 1..n, a generated
// name with a pseudo-random suffix, a price in [5, 500] and the category
// assigned round-robin over Categories. The same (n, seed) pair always
// produces the same collection. A non-positive n yields an empty collection.
func Generate(n int, seed int64) []Item {
	if n < 0 {
		n = 0
	}
	faker := gofakeit.New(seed)
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:       i + 1,
			Name:     productName(faker),
			Price:    faker.Price(5, 500),
			Category: Categories[i%len(Categories)],
		}
	}
	return items
}

// productName builds names like "Sturdy Lantern QKVW". The trailing suffix
// keeps names distinct enough that substring filters cut the set down.
func productName(faker *gofakeit.Faker) string {
	adj := upperFirst(faker.AdjectiveDescriptive())
	noun := upperFirst(faker.NounConcrete())
	suffix := strings.ToUpper(faker.LetterN(4))
	return fmt.Sprintf("%s %s %s", adj, noun, suffix)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
