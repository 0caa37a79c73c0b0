package visitor

import (
	"github.com/stretchr/testify/assert"
	"iter"
	"slices"
	"testing"
)

func TestSeqVisitorOf(t *testing.T) {
	var anySeq iter.Seq[any] = func(yield func(any) bool) {
		for _, v := range []any{"x", 1} {
			if !yield(v) {
				return
			}
		}
	}
	var testCases = []struct {
		description string
		input       interface{}
		expect      []interface{}
		expectOK    bool
	}{
		{description: "any seq", input: anySeq, expect: []interface{}{"x", 1}, expectOK: true},
		{description: "typed seq", input: slices.Values([]int{3, 2, 1}), expect: []interface{}{3, 2, 1}, expectOK: true},
		{description: "plain func", input: func(yield func(string) bool) { yield("a") }, expect: []interface{}{"a"}, expectOK: true},
		{description: "not a sequence", input: func() {}, expectOK: false},
		{description: "slice is not a sequence", input: []int{1}, expectOK: false},
		{description: "int is not a sequence", input: 3, expectOK: false},
	}
	for _, testCase := range testCases {
		visit, ok := SeqVisitorOf(testCase.input)
		assert.Equal(t, testCase.expectOK, ok, testCase.description)
		if !ok {
			continue
		}
		actual, err := Collect(visit)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestSeqVisitorOf_Stop(t *testing.T) {
	visit, ok := SeqVisitorOf(slices.Values([]string{"a", "b", "c"}))
	assert.True(t, ok)
	var visited []interface{}
	err := visit(func(key int, element any) (bool, error) {
		visited = append(visited, element)
		return false, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{"a"}, visited)
}
