package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/typeconv/conv"
	"go.uber.org/zap"
)

func TestLoadConfig(t *testing.T) {
	var testCases = []struct {
		description  string
		content      string
		expectLayout string
		expectDelim  byte
		expectQuote  byte
		expectErr    bool
	}{
		{
			description:  "defaults",
			content:      "",
			expectLayout: "2006-01-02 15:04:05",
			expectDelim:  ',',
			expectQuote:  '"',
		},
		{
			description:  "java date format",
			content:      "dateFormat: yyyy/MM/dd\ndelimiter: ';'\nquote: \"'\"\n",
			expectLayout: "2006/01/02",
			expectDelim:  ';',
			expectQuote:  '\'',
		},
		{
			description:  "time format wins over date format",
			content:      "dateFormat: yyyy/MM/dd\ntimeFormat: YYYY-MM-DD\n",
			expectLayout: "2006-01-02",
			expectDelim:  ',',
			expectQuote:  '"',
		},
		{
			description:  "go layout",
			content:      "dateLayout: '2006-01-02T15:04:05Z07:00'\n",
			expectLayout: "2006-01-02T15:04:05Z07:00",
			expectDelim:  ',',
			expectQuote:  '"',
		},
		{
			description: "invalid delimiter",
			content:     "delimiter: ab\n",
			expectErr:   true,
		},
		{
			description: "invalid yaml",
			content:     "delimiter: [\n",
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			location := filepath.Join(t.TempDir(), "typeconv.yaml")
			require.Nil(t, os.WriteFile(location, []byte(testCase.content), 0o644))
			config, err := LoadConfig(location)
			var options conv.Options
			if err == nil {
				options, err = config.Options(zap.NewNop())
			}
			if testCase.expectErr {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.EqualValues(t, testCase.expectLayout, options.Layout())
			assert.EqualValues(t, testCase.expectDelim, options.Delimiter)
			assert.EqualValues(t, testCase.expectQuote, options.Quote)
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	config, err := LoadConfig("")
	require.Nil(t, err)
	assert.EqualValues(t, &Config{}, config)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
