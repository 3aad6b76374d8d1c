// Package calendar provides an immutable calendar-day value type.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain"
)

// ISOLayout is the YYYY-MM-DD layout used for every date crossing a boundary
const ISOLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or location.
// The zero value means "no date".
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the date for year/month/day, normalizing overflow the same way time.Date does
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime truncates t to its UTC calendar day
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{year: y, month: m, day: d}
}

// Parse reads a YYYY-MM-DD string
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// MustParse is Parse for literals known to be valid
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Year() int         { return d.year }
func (d Date) Month() time.Month { return d.month }
func (d Date) Day() int          { return d.day }

func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns UTC midnight of the day
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// ISOWeekday returns 1 (Monday) through 7 (Sunday)
func (d Date) ISOWeekday() int {
	return domain.ISOWeekday(d.Weekday())
}

// NextDay returns the following calendar day; d is left untouched
func (d Date) NextDay() Date {
	return d.AddDays(1)
}

func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(int(d.month), int(other.month))
	default:
		return cmpInt(d.day, other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d == other }

// String formats the date as YYYY-MM-DD, or "" for the zero date
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(ISOLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Strings formats each date as YYYY-MM-DD
func Strings(dates []Date) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
