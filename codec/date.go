// Package codec converts the textual scalar forms used by citation files
// (calendar dates, URLs, persistent identifiers) to and from Go values.
package codec

import (
	"errors"
	"regexp"
	"time"
)

// DateLayout is the only date form citation files accept.
const DateLayout = "2006-01-02"

var (
	// ErrDatePattern reports text that is not four digits, two digits and
	// two digits separated by dashes.
	ErrDatePattern = errors.New("date must match YYYY-MM-DD")
	// ErrCalendarDate reports a well-formed date that does not exist, such
	// as February 30.
	ErrCalendarDate = errors.New("not a real calendar date")
)

var datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ParseDate decodes YYYY-MM-DD into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, ErrDatePattern
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrCalendarDate
	}
	return t, nil
}

// FormatDate renders t in the citation file date form.
func FormatDate(t time.Time) string { return t.UTC().Format(DateLayout) }

// IsCalendarDate reports whether the triple names an existing day.
func IsCalendarDate(year int, month time.Month, day int) bool {
	if year < 0 || year > 9999 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}
