package app

import (
	"context"
	"fmt"
	"testing"

	"showcase/config"

	tea "github.com/charmbracelet/bubbletea"
)

var benchItemCounts = []int{1000, 5000, 10000}

func setupBenchmarkHome(b *testing.B, itemCount int, naive bool) *home {
	b.Helper()
	b.Setenv("HOME", b.TempDir())

	cfg := config.DefaultConfig()
	cfg.ItemCount = itemCount
	cfg.Seed = 7

	h := newHome(context.Background(), cfg)
	h.updateHandleWindowSizeEvent(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.naive = naive
	h.recomputeView()
	return h
}

// BenchmarkOptimizedFrame measures one interaction frame on the optimized
// path: the recompute is a memo hit and only the window renders.
func BenchmarkOptimizedFrame(b *testing.B) {
	for _, count := range benchItemCounts {
		b.Run(fmt.Sprintf("items_%d", count), func(b *testing.B) {
			h := setupBenchmarkHome(b, count, false)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.recomputeView()
				_ = h.View()
			}
		})
	}
}

// BenchmarkNaiveFrame measures the same frame on the naive path: every
// iteration refilters, resorts and renders the whole list.
func BenchmarkNaiveFrame(b *testing.B) {
	for _, count := range benchItemCounts {
		b.Run(fmt.Sprintf("items_%d", count), func(b *testing.B) {
			h := setupBenchmarkHome(b, count, true)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.recomputeView()
				_ = h.View()
			}
		})
	}
}

// BenchmarkOptimizedScrolling moves the selection through the list the way
// held-down arrow keys would.
func BenchmarkOptimizedScrolling(b *testing.B) {
	for _, count := range benchItemCounts {
		b.Run(fmt.Sprintf("items_%d", count), func(b *testing.B) {
			h := setupBenchmarkHome(b, count, false)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					h.activePane().Down()
				} else {
					h.activePane().Up()
				}
				h.recomputeView()
				_ = h.View()
			}
		})
	}
}

func BenchmarkNaiveScrolling(b *testing.B) {
	for _, count := range benchItemCounts {
		b.Run(fmt.Sprintf("items_%d", count), func(b *testing.B) {
			h := setupBenchmarkHome(b, count, true)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if i%2 == 0 {
					h.activePane().Down()
				} else {
					h.activePane().Up()
				}
				h.recomputeView()
				_ = h.View()
			}
		})
	}
}

// BenchmarkFilterRetype measures the settle path: each iteration changes the
// filter text, so the memo never hits and the recompute cost is real.
func BenchmarkFilterRetype(b *testing.B) {
	queries := []string{"a", "e", "o", "s"}
	for _, count := range benchItemCounts {
		b.Run(fmt.Sprintf("items_%d", count), func(b *testing.B) {
			h := setupBenchmarkHome(b, count, false)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h.filterText = queries[i%len(queries)]
				h.recomputeView()
				_ = h.View()
			}
		})
	}
}
