package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

const Day = 24 * time.Hour

// timestampFormats are the date-time layouts found in daily price exports,
// tried in order after the plain date formats.
var timestampFormats = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the UTC calendar day of t.
func Of(t time.Time) Date { return New(t.UTC().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int {
	switch {
	case d.y != x.y:
		return cmp(d.y, x.y)
	case d.m != x.m:
		return cmp(int(d.m), int(x.m))
	default:
		return cmp(d.d, x.d)
	}
}

func cmp(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// AddMonths returns the same day of month i months later.
//
// Unlike time.AddDate, a day that does not exist in the target month is
// clamped to that month's last day: Jan 31 + 1 month is Feb 28 (or 29).
func (d Date) AddMonths(i int) Date {
	first := New(d.y, d.m+time.Month(i), 1)
	last := first.EndOfMonth()
	if d.d > last.d {
		return last
	}
	return New(first.y, first.m, d.d)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date { return New(d.y, d.m, 1) }

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date { return New(d.y, d.m+1, 0) }

// IsStartOfMonth reports whether d is the first day of its month.
func (d Date) IsStartOfMonth() bool { return d.d == 1 }

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	// We use a slightly more permisive format for read, to support 2025-7-1 instead of 2025-07-01
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return New(on.Date()), nil
}

// ParseTimestamp parses a date that may carry a time and a timezone, as
// found in exported price histories ("2024-03-01 00:00:00-05:00").
//
// The instant is converted to UTC before the day is taken, so the result
// is always the UTC calendar day of that instant.
func ParseTimestamp(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if d, err := Parse(str); err == nil {
		return d, nil
	}
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return Of(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: not a date nor a timestamp", str)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// UnmarshalText lets a Date be decoded from text based formats (yaml, flags).
func (j *Date) UnmarshalText(text []byte) error {
	d, err := Parse(string(text))
	if err != nil {
		return err
	}
	*j = d
	return nil
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
