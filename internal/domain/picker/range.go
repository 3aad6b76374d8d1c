// Package picker holds the selection rules of the weekday range picker:
// weekend exclusion, bound validation and predefined ranges.
//
// Everything here is pure. Callers own the State value and replace it with
// whatever the transition functions return.
package picker

import (
	"time"

	"github.com/diegoclair/weekday-range-picker/internal/domain/calendar"
)

// Range is an inclusive pair of calendar days
type Range struct {
	Start calendar.Date
	End   calendar.Date
}

// Days is the number of calendar days covered, or 0 for an invalid range
func (r Range) Days() int {
	if r.Start.IsZero() || r.End.IsZero() || r.Start.After(r.End) {
		return 0
	}
	return int(unixDay(r.End)-unixDay(r.Start)) + 1
}

// unixDay counts days since 1970-01-01; dates are UTC midnights so the division is exact
func unixDay(d calendar.Date) int64 {
	return d.Time().Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

// Classified splits a range into weekdays and weekends, both in chronological order
type Classified struct {
	Weekdays []calendar.Date
	Weekends []calendar.Date
}

// IsWeekend reports whether d falls on a Saturday or Sunday
func IsWeekend(d calendar.Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// Classify walks every day of r and sorts it into weekdays or weekends
func Classify(r Range) (Classified, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return Classified{}, ErrInvalidDate
	}
	if r.Start.After(r.End) {
		return Classified{}, ErrStartAfterEnd
	}

	c := Classified{
		Weekdays: make([]calendar.Date, 0, r.Days()),
		Weekends: make([]calendar.Date, 0, 2*(r.Days()/7+1)),
	}
	for d := r.Start; !d.After(r.End); d = d.NextDay() {
		if IsWeekend(d) {
			c.Weekends = append(c.Weekends, d)
		} else {
			c.Weekdays = append(c.Weekdays, d)
		}
	}
	return c, nil
}

// ValidateStart checks a new start bound against the current end, which may be zero
func ValidateStart(candidate, currentEnd calendar.Date) (Range, error) {
	if candidate.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if IsWeekend(candidate) {
		return Range{}, ErrStartIsWeekend
	}
	if !currentEnd.IsZero() && candidate.After(currentEnd) {
		return Range{}, ErrStartAfterEnd
	}

	end := currentEnd
	if end.IsZero() {
		end = candidate
	}
	return Range{Start: candidate, End: end}, nil
}

// ValidateEnd checks a new end bound against the current start, which may be zero
func ValidateEnd(candidate, currentStart calendar.Date) (Range, error) {
	if candidate.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if IsWeekend(candidate) {
		return Range{}, ErrEndIsWeekend
	}
	if !currentStart.IsZero() && candidate.Before(currentStart) {
		return Range{}, ErrEndBeforeStart
	}

	start := currentStart
	if start.IsZero() {
		start = candidate
	}
	return Range{Start: start, End: candidate}, nil
}

// ApplyPredefined accepts a predefined range as-is. Its bounds may fall on a
// weekend; only a missing bound is rejected.
func ApplyPredefined(r Range) (Range, error) {
	if r.Start.IsZero() || r.End.IsZero() {
		return Range{}, ErrInvalidDate
	}
	return r, nil
}

// Notification is what the consumer receives after every successful selection
type Notification struct {
	Range    [2]string `json:"range"`
	Weekdays []string  `json:"weekdays"`
	Weekends []string  `json:"weekends"`
}

func NewNotification(r Range, c Classified) Notification {
	return Notification{
		Range:    [2]string{r.Start.String(), r.End.String()},
		Weekdays: calendar.Strings(c.Weekdays),
		Weekends: calendar.Strings(c.Weekends),
	}
}
