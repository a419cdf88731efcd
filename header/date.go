package header

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// TimeFormat is the layout of an HTTP date, the IMF-fixdate of RFC 7231.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// timeLayouts are the shapes ParseTime accepts. The day of the month may have
// one or two digits and the weekday and month may be abbreviated or spelled
// out in full.
var timeLayouts = []string{
	TimeFormat,
	"Mon, 2 Jan 2006 15:04:05 GMT",
	"Monday, 2 Jan 2006 15:04:05 GMT",
	"Mon, 2 January 2006 15:04:05 GMT",
	"Monday, 2 January 2006 15:04:05 GMT",
}

// ParseTime parses an HTTP date in TimeFormat. The result is in UTC.
//
// The day of the month may be written without a leading zero, and the weekday
// and month names may be written in full, so "Wednesday, 1 October 2015
// 07:28:00 GMT" is accepted as well.
func ParseTime(body string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, body); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, body)
}

// ParseTimeLenient tries ParseTime first and falls back to guessing the
// format of the date. This accepts the obsolete RFC 850 and asctime forms as
// well as most other dates seen in the wild.
func ParseTimeLenient(body string) (time.Time, error) {
	t, err := ParseTime(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseIn(body, time.UTC)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, body)
}

// FormatTime formats the time as an HTTP date.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}
