package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	at := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
	var testCases = []struct {
		description string
		items       []interface{}
		expect      string
	}{
		{description: "empty", items: nil, expect: `[]`},
		{description: "strings", items: []interface{}{"a", `b"c`}, expect: `["a","b\"c"]`},
		{description: "mixed numbers", items: []interface{}{int8(-1), uint16(2), int64(3), 1.25}, expect: `[-1,2,3,1.25]`},
		{description: "bools", items: []interface{}{true, false}, expect: `[true,false]`},
		{description: "time", items: []interface{}{at}, expect: `["2024-03-04 05:06:07"]`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := encodeJSON(testCase.items, "2006-01-02 15:04:05")
			require.Nil(t, err)
			assert.EqualValues(t, testCase.expect, string(actual))
		})
	}
}
