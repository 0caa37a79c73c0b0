package conv

import (
	"github.com/viant/typeconv/csv"
	ftime "github.com/viant/typeconv/format/time"
	"go.uber.org/zap"
)

// DefaultDateLayout is the default layout used for time parsing when no layout or format is specified
const DefaultDateLayout = "2006-01-02 15:04:05.000"

// Options contains configuration for the registry
type Options struct {
	// DateLayout specifies go layout for time parsing and formatting, it takes precedence over TimeFormat
	DateLayout string
	// TimeFormat specifies date time format (yyyy-MM-dd HH:mm:ss or YYYY-MM-DD hh:mm:ss)
	TimeFormat string
	// Delimiter separates fields when text is converted to a slice
	Delimiter byte
	// Quote encloses text fields containing the delimiter
	Quote byte
	// Logger logs failed conversions at debug level
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		TimeFormat: ftime.DefaultTimeFormat,
		Delimiter:  csv.DefaultDelimiter,
		Quote:      csv.DefaultQuote,
	}
}

// Layout returns effective time layout
func (o *Options) Layout() string {
	if o.DateLayout != "" {
		return o.DateLayout
	}
	if layout := ftime.DateFormatToTimeLayout(o.TimeFormat); layout != "" {
		return layout
	}
	return DefaultDateLayout
}

func (o *Options) splitter() *csv.Splitter {
	var opts []csv.Option
	if o.Delimiter != 0 {
		opts = append(opts, csv.WithDelimiter(o.Delimiter))
	}
	if o.Quote != 0 {
		opts = append(opts, csv.WithQuote(o.Quote))
	}
	return csv.New(opts...)
}
