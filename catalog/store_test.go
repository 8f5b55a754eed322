package catalog

import (
	"testing"
)

func TestGenerateAssignsIDsPricesCategories(t *testing.T) {
	items := Generate(50, 7)
	if len(items) != 50 {
		t.Fatalf("len(items) = %d, want 50", len(items))
	}
	for i, item := range items {
		if item.ID != i+1 {
			t.Errorf("items[%d].ID = %d, want %d", i, item.ID, i+1)
		}
		if item.Price < 5 || item.Price > 500 {
			t.Errorf("items[%d].Price = %v, want within [5, 500]", i, item.Price)
		}
		if item.Category != Categories[i%4] {
			t.Errorf("items[%d].Category = %q, want %q", i, item.Category, Categories[i%4])
		}
		if item.Name == "" {
			t.Errorf("items[%d].Name is empty", i)
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := Generate(20, 42)
	b := Generate(20, 42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("items[%d] differs across runs with same seed: %#v vs %#v", i, a[i], b[i])
		}
	}

	c := Generate(20, 43)
	same := true
	for i := range a {
		if a[i].Name != c[i].Name {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical names")
	}
}

func TestGenerateClampsNonPositiveCount(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if items := Generate(n, 1); len(items) != 0 {
			t.Errorf("Generate(%d) returned %d items, want 0", n, len(items))
		}
	}
}

func TestFavoriteToggleReturnsNewVersion(t *testing.T) {
	base := NewFavoriteSet()
	with3 := base.Toggle(3)

	if with3 == base {
		t.Fatal("Toggle returned the same set pointer")
	}
	if base.Has(3) {
		t.Error("Toggle mutated the original set")
	}
	if !with3.Has(3) {
		t.Error("new set is missing the toggled id")
	}
	if with3.Len() != 1 {
		t.Errorf("Len() = %d, want 1", with3.Len())
	}
}

func TestFavoriteToggleTwiceRemoves(t *testing.T) {
	s := NewFavoriteSet().Toggle(9).Toggle(9)
	if s.Has(9) {
		t.Error("id still present after double toggle")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestFavoriteToggleLeavesOthersAlone(t *testing.T) {
	s := NewFavoriteSet().Toggle(1).Toggle(2)
	next := s.Toggle(1)
	if !next.Has(2) {
		t.Error("untoggled id dropped from the new version")
	}
	if !s.Has(1) || !s.Has(2) {
		t.Error("prior version changed under a later toggle")
	}
}
