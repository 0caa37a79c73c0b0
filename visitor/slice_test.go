package visitor

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAnySliceVisitorOf(t *testing.T) {
	var testCases = []struct {
		description string
		input       interface{}
		expect      []interface{}
		expectErr   bool
	}{
		{description: "string slice", input: []string{"a", "b"}, expect: []interface{}{"a", "b"}},
		{description: "int slice", input: []int{1, 2, 3}, expect: []interface{}{1, 2, 3}},
		{description: "fixed array", input: [3]int16{4, 5, 6}, expect: []interface{}{int16(4), int16(5), int16(6)}},
		{description: "named slice", input: labels{"x"}, expect: []interface{}{"x"}},
		{description: "float32 slice", input: []float32{1.5, -2}, expect: []interface{}{float32(1.5), float32(-2)}},
		{description: "not a slice", input: 12, expectErr: true},
	}
	for _, testCase := range testCases {
		visit, err := AnySliceVisitorOf(testCase.input)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		actual, err := Collect(visit)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestAnySliceVisitorOf_Empty(t *testing.T) {
	visit, err := AnySliceVisitorOf(labels{})
	assert.Nil(t, err)
	actual, err := Collect(visit)
	assert.Nil(t, err)
	assert.Empty(t, actual)
}

func TestAnySliceVisitor_Stop(t *testing.T) {
	visit, err := AnySliceVisitorOf([]float32{1, 2, 3, 4})
	assert.Nil(t, err)
	count := 0
	err = visit(func(index int, element any) (bool, error) {
		count++
		return index < 1, nil
	})
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
}

type labels []string
