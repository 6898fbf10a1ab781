package sorting

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	promclient "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBubble(t *testing.T) {
	for _, testCase := range []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "empty", input: []int{}, expected: []int{}},
		{name: "single", input: []int{1}, expected: []int{1}},
		{name: "unsorted", input: []int{5, 3, 1, 4, 2}, expected: []int{1, 2, 3, 4, 5}},
		{name: "reversed", input: []int{6, 5, 4, 3, 2, 1}, expected: []int{1, 2, 3, 4, 5, 6}},
		{name: "duplicates", input: []int{3, 1, 3, 2, 1}, expected: []int{1, 1, 2, 3, 3}},
		{name: "negatives", input: []int{0, -5, 7, -1}, expected: []int{-5, -1, 0, 7}},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			got := Bubble(testCase.input)
			assert.Equal(t, testCase.expected, got)
			// Sorting happens in place.
			assert.Equal(t, testCase.expected, testCase.input)
		})
	}
}

func TestBubble_Strings(t *testing.T) {
	assert.Equal(t, []string{"apple", "fig", "kiwi"}, Bubble([]string{"kiwi", "apple", "fig"}))
}

func TestBubbleFunc_Descending(t *testing.T) {
	got := BubbleFunc([]int{2, 9, 4}, func(x, y int) int { return cmp.Compare(y, x) })
	assert.Equal(t, []int{9, 4, 2}, got)
}

func TestBubbleFunc_Stable(t *testing.T) {
	type record struct {
		key  int
		name string
	}
	records := []record{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	BubbleFunc(records, func(x, y record) int { return cmp.Compare(x.key, y.key) })
	assert.Equal(t, []record{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, records)
}

func TestBubbleWithStats_EarlyExit(t *testing.T) {
	stats := BubbleWithStats([]int{1, 2, 3, 4, 5}, cmp.Compare[int])
	assert.Equal(t, Stats{Passes: 1, Swaps: 0}, stats)

	stats = BubbleWithStats([]int{2, 1, 3, 4, 5}, cmp.Compare[int])
	assert.Equal(t, Stats{Passes: 2, Swaps: 1}, stats)

	assert.Equal(t, Stats{}, BubbleWithStats([]int{}, cmp.Compare[int]))
}

func TestBubble_Idempotent(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	for round := 0; round < 50; round++ {
		input := make([]int, rnd.IntN(30))
		for i := range input {
			input[i] = rnd.IntN(100) - 50
		}
		expected := slices.Clone(input)
		slices.Sort(expected)

		once := Bubble(slices.Clone(input))
		require.Equal(t, expected, once, "Output should be the sorted permutation of the input")
		twice := slices.Clone(once)
		stats := BubbleWithStats(twice, cmp.Compare[int])
		assert.Equal(t, once, twice)
		assert.Zero(t, stats.Swaps, "Sorting a sorted slice should not swap")
	}
}

func TestBubble_NamedSliceType(t *testing.T) {
	type words []string
	got := Bubble(words(strings.Fields("c b a")))
	assert.Equal(t, words{"a", "b", "c"}, got)
}

func TestBubble_RecordsPasses(t *testing.T) {
	sampleCount := func() uint64 {
		metric := &promclient.Metric{}
		require.NoError(t, passesMetric.Write(metric))
		return metric.GetHistogram().GetSampleCount()
	}
	before := sampleCount()
	Bubble([]int{3, 2, 1})
	assert.Equal(t, before+1, sampleCount())
}
