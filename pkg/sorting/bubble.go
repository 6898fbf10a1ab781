// Package sorting implements bubble sort with an early exit.
//
// Each pass bubbles the largest remaining element to the end of the unsorted prefix by swapping adjacent pairs that
// compare strictly greater. A pass without swaps proves the slice is sorted and ends the sort.
//
// Properties
// - Worst / average time complexity: O(n^2); best case (already sorted): O(n), a single pass.
// - Space complexity: O(1); sorts in place.
// - Stable: equal elements are never swapped.
package sorting

import (
	"cmp"

	"github.com/nobletooth/primer/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var passesMetric = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "bubble_sort_passes",
	Help:    "The number of passes each bubble sort needed before finishing.",
	Buckets: prometheus.ExponentialBuckets(1, 2, 12),
})

// Stats describes the work done by one sort.
type Stats struct {
	Passes int // Number of passes over the unsorted prefix, including the final swap-free one.
	Swaps  int // Number of adjacent swaps.
}

// Bubble sorts `s` ascending in place and returns it.
func Bubble[S ~[]E, E cmp.Ordered](s S) S {
	BubbleWithStats(s, cmp.Compare[E])
	return s
}

// BubbleFunc sorts `s` in place by `compare` and returns it.
func BubbleFunc[S ~[]E, E any](s S, compare utils.CompareFn[E]) S {
	BubbleWithStats(s, compare)
	return s
}

// BubbleWithStats sorts `s` in place by `compare` and reports how many passes and swaps it took.
func BubbleWithStats[S ~[]E, E any](s S, compare utils.CompareFn[E]) Stats {
	var stats Stats
	n := len(s)
	for pass := 0; pass < n; pass++ {
		stats.Passes++
		swapped := false
		// The last `pass` elements are already in place.
		for i := 0; i < n-pass-1; i++ {
			if compare(s[i], s[i+1]) > 0 {
				s[i], s[i+1] = s[i+1], s[i]
				stats.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	passesMetric.Observe(float64(stats.Passes))
	return stats
}
