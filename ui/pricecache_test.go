package ui

import "testing"

func TestPriceProfileIsDeterministic(t *testing.T) {
	a := priceProfile(129.99)
	b := priceProfile(129.99)
	if a != b {
		t.Fatalf("priceProfile(129.99) = %q then %q, want identical", a, b)
	}
	if a == priceProfile(480.00) {
		t.Error("prices in different tiers produced identical profiles")
	}
}

func TestPriceCacheComputesOncePerPrice(t *testing.T) {
	c := NewPriceCache()

	first := c.Profile(42.50)
	for i := 0; i < 4; i++ {
		if got := c.Profile(42.50); got != first {
			t.Fatalf("Profile(42.50) = %q, want %q", got, first)
		}
	}

	if c.Misses() != 1 {
		t.Errorf("misses = %d, want 1", c.Misses())
	}
	if c.Hits() != 4 {
		t.Errorf("hits = %d, want 4", c.Hits())
	}
	if c.Size() != 1 {
		t.Errorf("size = %d, want 1", c.Size())
	}
}

func TestPriceCacheSharesEntriesAcrossEqualPrices(t *testing.T) {
	c := NewPriceCache()
	c.Profile(99.95)
	c.Profile(99.95)
	c.Profile(100.05)

	if c.Misses() != 2 {
		t.Errorf("misses = %d, want 2 (one per distinct price)", c.Misses())
	}
	if c.Size() != 2 {
		t.Errorf("size = %d, want 2", c.Size())
	}
}
