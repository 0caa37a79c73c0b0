package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCmd(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      string
		expectErr   bool
	}{
		{
			description: "text to int",
			args:        []string{"convert", "--type", "int", "1,2,3"},
			expect:      "[1,2,3]\n",
		},
		{
			description: "arguments to float64",
			args:        []string{"convert", "--type", "float64", "1.5", "2", "3e2"},
			expect:      "[1.5,2,300]\n",
		},
		{
			description: "text to bool",
			args:        []string{"convert", "-t", "bool", "true,no,1"},
			expect:      "[true,false,true]\n",
		},
		{
			description: "default string type",
			args:        []string{"convert", "a,b"},
			expect:      `["a","b"]` + "\n",
		},
		{
			description: "custom delimiter",
			args:        []string{"--delimiter", "|", "convert", "--type", "uint8", "1|2"},
			expect:      "[1,2]\n",
		},
		{
			description: "text to time",
			args:        []string{"convert", "--type", "time", "2024-01-02 10:30:00"},
			expect:      `["2024-01-02 10:30:00"]` + "\n",
		},
		{
			description: "invalid element",
			args:        []string{"convert", "--type", "int", "1,x"},
			expectErr:   true,
		},
		{
			description: "int8 overflow",
			args:        []string{"convert", "--type", "int8", "300"},
			expectErr:   true,
		},
		{
			description: "unsupported type",
			args:        []string{"convert", "--type", "complex128", "1"},
			expectErr:   true,
		},
		{
			description: "missing value",
			args:        []string{"convert", "--type", "int"},
			expectErr:   true,
		},
		{
			description: "invalid delimiter",
			args:        []string{"--delimiter", "||", "convert", "1"},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := execute(testCase.args...)
			if testCase.expectErr {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.EqualValues(t, testCase.expect, actual)
		})
	}
}

func TestKindsCmd(t *testing.T) {
	actual, err := execute("kinds")
	require.Nil(t, err)
	assert.Contains(t, actual, "float64\n")
	assert.Contains(t, actual, "time\n")
	assert.Equal(t, len(targetTypes), bytes.Count([]byte(actual), []byte("\n")))
}
