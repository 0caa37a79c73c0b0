package csv

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSplitter_Split(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		options     []Option
		expect      []string
	}{
		{description: "empty", input: "", expect: []string{}},
		{description: "single", input: "abc", expect: []string{"abc"}},
		{description: "numbers", input: "1,2,3", expect: []string{"1", "2", "3"}},
		{description: "no trimming", input: " 1, 2 ", expect: []string{" 1", " 2 "}},
		{description: "leading empty", input: ",a", expect: []string{"", "a"}},
		{description: "trailing empty", input: "a,", expect: []string{"a", ""}},
		{description: "only delimiter", input: ",", expect: []string{"", ""}},
		{description: "inner empty", input: "a,,b", expect: []string{"a", "", "b"}},
		{description: "quoted with delimiter", input: `"a,b",c`, expect: []string{"a,b", "c"}},
		{description: "quoted last", input: `a,"b,c"`, expect: []string{"a", "b,c"}},
		{description: "escaped quote", input: `"say ""hi""",x`, expect: []string{`say "hi"`, "x"}},
		{description: "quoted trailing delimiter", input: `"a",`, expect: []string{"a", ""}},
		{description: "empty quoted", input: `"",b`, expect: []string{"", "b"}},
		{description: "unclosed quote", input: `"a,b`, expect: []string{"a,b"}},
		{description: "inner quote is literal", input: `a"b,c`, expect: []string{`a"b`, "c"}},
		{description: "custom delimiter", input: "1;2;3", options: []Option{WithDelimiter(';')}, expect: []string{"1", "2", "3"}},
		{description: "comma kept with custom delimiter", input: "1,5|2", options: []Option{WithDelimiter('|')}, expect: []string{"1,5", "2"}},
		{description: "custom quote", input: "'a,b',c", options: []Option{WithQuote('\'')}, expect: []string{"a,b", "c"}},
	}
	for _, testCase := range testCases {
		splitter := New(testCase.options...)
		actual := splitter.Split(testCase.input)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestToStrings(t *testing.T) {
	assert.EqualValues(t, []string{"x", "y"}, ToStrings("x,y"))
	assert.NotNil(t, ToStrings(""))
	assert.Len(t, ToStrings(""), 0)
	assert.Equal(t, byte(','), New().Delimiter())
}
