package list

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindMiddle(t *testing.T) {
	for _, testCase := range []struct {
		values   []int
		expected int
	}{
		{values: []int{1}, expected: 1},
		{values: []int{1, 2}, expected: 2},
		{values: []int{1, 2, 3}, expected: 2},
		{values: []int{1, 2, 3, 4}, expected: 3},
		{values: []int{1, 2, 3, 4, 5}, expected: 3},
		{values: []int{1, 2, 3, 4, 5, 6}, expected: 4},
	} {
		t.Run(fmt.Sprintf("length_%d", len(testCase.values)), func(t *testing.T) {
			list := FromSlice(testCase.values...)
			gotTwoPointers, ok := list.FindMiddleTwoPointers()
			assert.True(t, ok)
			assert.Equal(t, testCase.expected, gotTwoPointers)
			gotByLength, ok := list.FindMiddleByLength()
			assert.True(t, ok)
			assert.Equal(t, testCase.expected, gotByLength)
		})
	}
}

func TestFindMiddle_Empty(t *testing.T) {
	list := New[string]()
	_, ok := list.FindMiddleTwoPointers()
	assert.False(t, ok)
	_, ok = list.FindMiddleByLength()
	assert.False(t, ok)
}

// Both middle finders must agree on every length, pointing at index length/2.
func TestFindMiddle_Equivalence(t *testing.T) {
	for length := 0; length <= 20; length++ {
		values := make([]string, length)
		for i := range values {
			values[i] = fmt.Sprintf("v%d", i*7%11)
		}
		list := FromSlice(values...)

		twoPointers, okTwoPointers := list.FindMiddleTwoPointers()
		byLength, okByLength := list.FindMiddleByLength()
		assert.Equalf(t, okByLength, okTwoPointers, "length %d", length)
		assert.Equalf(t, byLength, twoPointers, "length %d", length)
		if length > 0 {
			assert.Equalf(t, values[length/2], twoPointers, "length %d", length)
		}
	}
}
