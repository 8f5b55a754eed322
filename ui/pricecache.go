package ui

import (
	"fmt"
	"math"
)

// profileRounds sets how much work the synthetic price computation burns.
// High enough that recomputing it for thousands of rows per frame is
// noticeable, low enough that a handful per frame is free.
const profileRounds = 4096

var profileBars = []string{"▁▁▁▁▁", "▂▂▁▁▁", "▄▄▄▁▁", "▆▆▆▆▁", "█████"}

// priceProfile derives the display profile for a price: a tier bar plus a
// two-digit demand score. The score comes out of a long mixing loop, standing
// in for any expensive derived display value. Pure: same price, same result.
func priceProfile(price float64) string {
	cents := uint64(math.Round(price * 100))
	mix := cents | 1
	for i := 0; i < profileRounds; i++ {
		mix ^= mix << 13
		mix ^= mix >> 7
		mix ^= mix << 17
		mix += cents
	}
	tier := int((price - 5) / 495 * float64(len(profileBars)))
	if tier < 0 {
		tier = 0
	}
	if tier >= len(profileBars) {
		tier = len(profileBars) - 1
	}
	return fmt.Sprintf("%s %02d", profileBars[tier], mix%100)
}

// PriceCache memoizes priceProfile per distinct price. Keyed on the price in
// cents, not the item, so two items at the same price share one entry and a
// favorite toggle elsewhere never invalidates anything here.
type PriceCache struct {
	profiles map[uint64]string
	hits     uint64
	misses   uint64
}

func NewPriceCache() *PriceCache {
	return &PriceCache{profiles: make(map[uint64]string)}
}

// Profile returns the cached profile for price, computing it on first sight.
func (c *PriceCache) Profile(price float64) string {
	key := uint64(math.Round(price * 100))
	if p, ok := c.profiles[key]; ok {
		c.hits++
		return p
	}
	c.misses++
	p := priceProfile(price)
	c.profiles[key] = p
	return p
}

// Hits returns how many lookups were served from the cache.
func (c *PriceCache) Hits() uint64 {
	return c.hits
}

// Misses returns how many lookups had to compute.
func (c *PriceCache) Misses() uint64 {
	return c.misses
}

// Size returns the number of distinct prices cached.
func (c *PriceCache) Size() int {
	return len(c.profiles)
}
