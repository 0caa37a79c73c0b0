package csv

const (
	//DefaultDelimiter default field delimiter
	DefaultDelimiter = ','
	//DefaultQuote default field quote
	DefaultQuote = '"'
)

// Option represents splitter option
type Option func(s *Splitter)

// WithDelimiter sets field delimiter
func WithDelimiter(delimiter byte) Option {
	return func(s *Splitter) {
		s.delimiter = delimiter
	}
}

// WithQuote sets field quote
func WithQuote(quote byte) Option {
	return func(s *Splitter) {
		s.quote = quote
	}
}
