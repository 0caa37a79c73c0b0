package csv

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	delimiterToken = iota
)

func newDelimiterMatcher(delimiter byte) *parsly.Token {
	return parsly.NewToken(delimiterToken, "delimiter", matcher.NewTerminator(delimiter, true))
}
