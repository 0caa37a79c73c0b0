package csv

import (
	"strings"

	"github.com/viant/parsly"
)

// Splitter splits delimited text into fields
type Splitter struct {
	delimiter byte
	quote     byte
	token     *parsly.Token
	escaped   string
}

var defaultSplitter = New()

// ToStrings splits text with the default comma delimiter
func ToStrings(text string) []string {
	return defaultSplitter.Split(text)
}

// Delimiter returns field delimiter
func (s *Splitter) Delimiter() byte {
	return s.delimiter
}

// Split splits text into fields, an empty text returns an empty slice
func (s *Splitter) Split(text string) []string {
	fields := make([]string, 0)
	if text == "" {
		return fields
	}
	cursor := parsly.NewCursor("", []byte(text), 0)
	size := len(cursor.Input)
	for cursor.Pos < size {
		if cursor.Input[cursor.Pos] == s.quote {
			field, more := s.matchQuoted(cursor)
			fields = append(fields, field)
			if more && cursor.Pos == size {
				fields = append(fields, "")
			}
			if !more {
				break
			}
			continue
		}
		match := cursor.MatchAny(s.token)
		switch match.Code {
		case delimiterToken:
			value := match.Text(cursor)
			fields = append(fields, value[:len(value)-1]) //exclude delimiter
			if cursor.Pos == size {
				fields = append(fields, "")
			}
		default:
			fields = append(fields, string(cursor.Input[cursor.Pos:]))
			cursor.Pos = size
		}
	}
	return fields
}

// matchQuoted matches quoted field starting at cursor position, it returns
// the field and whether the closing quote was followed by a delimiter
func (s *Splitter) matchQuoted(cursor *parsly.Cursor) (string, bool) {
	input := cursor.Input
	start := cursor.Pos + 1
	for i := start; i < len(input); i++ {
		if input[i] != s.quote {
			continue
		}
		if i+1 == len(input) {
			cursor.Pos = len(input)
			return s.unescape(input[start:i]), false
		}
		if input[i+1] == s.delimiter {
			cursor.Pos = i + 2
			return s.unescape(input[start:i]), true
		}
	}
	cursor.Pos = len(input)
	return s.unescape(input[start:]), false
}

func (s *Splitter) unescape(field []byte) string {
	return strings.ReplaceAll(string(field), s.escaped, string(s.quote))
}

// New creates a splitter
func New(opts ...Option) *Splitter {
	ret := &Splitter{delimiter: DefaultDelimiter, quote: DefaultQuote}
	for _, opt := range opts {
		opt(ret)
	}
	ret.token = newDelimiterMatcher(ret.delimiter)
	ret.escaped = string([]byte{ret.quote, ret.quote})
	return ret
}
