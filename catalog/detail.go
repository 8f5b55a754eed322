package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Detail is the expanded record shown in the detail panel.
type Detail struct {
	Item        Item
	SKU         string
	Description string
	Stock       int
	Rating      float64
}

// DetailLoader fetches the expanded record for one item. Loads may be slow;
// implementations must honor ctx cancellation.
type DetailLoader interface {
	Load(ctx context.Context, id int) (Detail, error)
}

// StoreLoader serves details straight from the generated collection,
// synthesizing the descriptive copy on demand. Each load carries a small
// deterministic delay so superseding an in-flight load is observable when
// running interactively.
type StoreLoader struct {
	items []Item
	seed  int64
	delay time.Duration
}

// NewStoreLoader builds a loader over the generated collection. delay is the
// base per-load latency; zero disables the artificial wait.
func NewStoreLoader(items []Item, seed int64, delay time.Duration) *StoreLoader {
	return &StoreLoader{items: items, seed: seed, delay: delay}
}

// Load implements DetailLoader. Ids are dense (1..n) so the lookup is a
// bounds check, not a scan.
func (l *StoreLoader) Load(ctx context.Context, id int) (Detail, error) {
	if id < 1 || id > len(l.items) {
		return Detail{}, fmt.Errorf("load detail: no item with id %d", id)
	}
	if d := l.loadDelay(id); d > 0 {
		select {
		case <-ctx.Done():
			return Detail{}, ctx.Err()
		case <-time.After(d):
		}
	}
	item := l.items[id-1]

	// Seed per id so the copy is stable across opens.
	faker := gofakeit.New(l.seed + int64(id))
	return Detail{
		Item:        item,
		SKU:         fmt.Sprintf("%s-%06d", item.Category[:3], item.ID),
		Description: faker.Paragraph(1, 3, 12, " "),
		Stock:       faker.Number(0, 400),
		Rating:      float64(faker.Number(10, 50)) / 10,
	}, nil
}

// loadDelay staggers latency by id so some loads are visibly slower.
func (l *StoreLoader) loadDelay(id int) time.Duration {
	if l.delay <= 0 {
		return 0
	}
	return l.delay + time.Duration(id%5)*(l.delay/4)
}
