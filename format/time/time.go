package time

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/toolbox"
)

const (
	//DefaultDateFormat default date format
	DefaultDateFormat = "yyyy-MM-dd"
	//DefaultTimeFormat default date time format
	DefaultTimeFormat = "yyyy-MM-dd HH:mm:ss"
)

var iso20220715DateFormatToRfc3339TimeLayoutReplacer = strings.NewReplacer(
	"YYYY", "2006",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"+hh:mm", "Z07:00",
	"+hhmm", "Z0700",
	"+hh", "Z07",
	"-hh:mm", "Z07:00",
	"-hhmm", "Z0700",
	"hh", "15",
	"mm", "04",
	"m", "4",
	"ss", "05",
	".SSS", ".999",
	".SS", ".99",
	".S", ".9",
	"-hh", "Z07",
	"Z", "Z07:00",
)

var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateFormatToTimeLayout converts date format to go time layout.
// Java style formats (yyyy-MM-dd HH:mm:ss) and ISO 2022-07-15 formats (YYYY-MM-DD hh:mm:ss)
// are supported, a go layout is returned unchanged.
func DateFormatToTimeLayout(dateFormat string) string {
	switch {
	case dateFormat == "":
		return ""
	case strings.Contains(dateFormat, "2006"):
		return dateFormat
	case strings.Contains(dateFormat, "yy"):
		return toolbox.DateFormatToLayout(dateFormat)
	}
	return iso20220715DateFormatToRfc3339TimeLayoutReplacer.Replace(dateFormat)
}

// Parse parses value with layout, it adjusts T fragment and value length mismatches
// and tries common layouts before failing
func Parse(layout, value string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	t, err := parse(layout, value)
	if err == nil {
		return t, nil
	}
	for _, candidate := range fallbackLayouts {
		if candidate == layout {
			continue
		}
		if t, fErr := time.Parse(candidate, value); fErr == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("cannot parse time '%s': %w", value, err)
}

func parse(layout, value string) (time.Time, error) {
	//adjust T fragment
	if strings.Contains(value, "T") != strings.Contains(layout, "T") {
		layout = strings.Replace(layout, "T", " ", 1)
		value = strings.Replace(value, "T", " ", 1)
	}
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		if len(value) > len(layout) {
			value = value[:len(layout)]
			t, err = time.Parse(layout, value)
		} else {
			layout = layout[:len(value)]
			t, err = time.Parse(layout, value)
		}
	}
	return t, err
}
