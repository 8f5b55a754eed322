package catalog

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStoreLoaderLoadsItemFields(t *testing.T) {
	items := Generate(10, 3)
	loader := NewStoreLoader(items, 3, 0)

	detail, err := loader.Load(context.Background(), 4)
	if err != nil {
		t.Fatalf("Load(4) error: %v", err)
	}
	if detail.Item != items[3] {
		t.Errorf("detail.Item = %#v, want %#v", detail.Item, items[3])
	}
	if detail.Description == "" {
		t.Error("detail.Description is empty")
	}
	if detail.SKU == "" {
		t.Error("detail.SKU is empty")
	}

	again, err := loader.Load(context.Background(), 4)
	if err != nil {
		t.Fatalf("second Load(4) error: %v", err)
	}
	if again.Description != detail.Description {
		t.Error("Load is not deterministic per id")
	}
}

func TestStoreLoaderRejectsUnknownID(t *testing.T) {
	loader := NewStoreLoader(Generate(5, 1), 1, 0)
	for _, id := range []int{0, -1, 6} {
		if _, err := loader.Load(context.Background(), id); err == nil {
			t.Errorf("Load(%d) returned nil error, want not-found", id)
		}
	}
}

func TestStoreLoaderHonorsCancellation(t *testing.T) {
	loader := NewStoreLoader(Generate(5, 1), 1, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := loader.Load(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Load error = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Errorf("cancelled Load took %v, want immediate return", elapsed)
	}
}
