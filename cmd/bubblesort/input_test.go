package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	for _, testCase := range []struct {
		name             string
		input            string
		expectedOriginal string
		expectedSorted   string
	}{
		{name: "ints", input: "[5, 3, 1, 4, 2]", expectedOriginal: "[5, 3, 1, 4, 2]", expectedSorted: "[1, 2, 3, 4, 5]"},
		{name: "no spaces", input: "[3,-1,2]", expectedOriginal: "[3, -1, 2]", expectedSorted: "[-1, 2, 3]"},
		{name: "empty", input: "[]", expectedOriginal: "[]", expectedSorted: "[]"},
		{name: "single", input: "[1]", expectedOriginal: "[1]", expectedSorted: "[1]"},
		{name: "floats", input: "[2.5, 1, 0.25]", expectedOriginal: "[2.5, 1, 0.25]", expectedSorted: "[0.25, 1, 2.5]"},
		{name: "strings", input: `['pear', "apple", fig]`, expectedOriginal: `["pear", "apple", "fig"]`,
			expectedSorted: `["apple", "fig", "pear"]`},
		{name: "block style", input: "- 2\n- 1\n", expectedOriginal: "[2, 1]", expectedSorted: "[1, 2]"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			seq, err := parseSequence(testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedOriginal, seq.String())
			seq.sort(false /*descending*/)
			assert.Equal(t, testCase.expectedSorted, seq.String())
		})
	}
}

func TestParseSequence_Descending(t *testing.T) {
	seq, err := parseSequence("[1, 3, 2]")
	require.NoError(t, err)
	seq.sort(true /*descending*/)
	assert.Equal(t, "[3, 2, 1]", seq.String())
}

func TestParseSequence_Errors(t *testing.T) {
	for _, testCase := range []struct {
		name  string
		input string
	}{
		{name: "blank", input: ""},
		{name: "scalar", input: "42"},
		{name: "mapping", input: "{a: 1}"},
		{name: "unterminated", input: "[1, 2"},
		{name: "nested", input: "[1, [2]]"},
		{name: "mixed kinds", input: "[1, 'a']"},
		{name: "bools", input: "[true, false]"},
		{name: "nulls", input: "[1, null]"},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			seq, err := parseSequence(testCase.input)
			assert.Error(t, err)
			assert.Nil(t, seq)
		})
	}
}
