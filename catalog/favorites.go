package catalog

// FavoriteSet is a membership set over item ids. Sets are never mutated in
// place: Toggle returns a fresh set, so holders can detect change by
// comparing pointers instead of walking the contents.
type FavoriteSet struct {
	ids map[int]struct{}
}

// NewFavoriteSet returns an empty favorite set.
func NewFavoriteSet() *FavoriteSet {
	return &FavoriteSet{ids: make(map[int]struct{})}
}

// Toggle returns a new set with id added if absent or removed if present.
// The receiver is left untouched.
func (s *FavoriteSet) Toggle(id int) *FavoriteSet {
	next := make(map[int]struct{}, len(s.ids)+1)
	for k := range s.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return &FavoriteSet{ids: next}
}

// Has reports whether id is in the set.
func (s *FavoriteSet) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of favorites.
func (s *FavoriteSet) Len() int {
	return len(s.ids)
}
