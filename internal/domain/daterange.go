package domain

import (
	"time"
)

// DateLayout is the calendar-date format accepted in filters and forms.
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of calendar dates. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange builds a range from two optional YYYY-MM-DD strings.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	var r DateRange

	if from != "" {
		t, err := time.ParseInLocation(DateLayout, from, loc)
		if err != nil {
			return DateRange{}, errorf(ErrInvalidDateRange, "from: %q", from)
		}
		r.From = &t
	}

	if to != "" {
		t, err := time.ParseInLocation(DateLayout, to, loc)
		if err != nil {
			return DateRange{}, errorf(ErrInvalidDateRange, "to: %q", to)
		}
		r.To = &t
	}

	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return DateRange{}, errorf(ErrInvalidDateRange, "to is before from")
	}

	return r, nil
}

// IsOpen reports whether the range has no bounds.
func (r DateRange) IsOpen() bool {
	return r.From == nil && r.To == nil
}

// Bounds returns the half-open instant interval [start, end) covering the
// range in loc. Open ends are returned as nil.
func (r DateRange) Bounds(loc *time.Location) (start, end *time.Time) {
	if r.From != nil {
		s := startOfDay(*r.From, loc)
		start = &s
	}
	if r.To != nil {
		e := startOfDay(*r.To, loc).AddDate(0, 0, 1)
		end = &e
	}
	return start, end
}

// Contains reports whether t's calendar date in loc lies inside the range.
func (r DateRange) Contains(t time.Time, loc *time.Location) bool {
	start, end := r.Bounds(loc)
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && !t.Before(*end) {
		return false
	}
	return true
}

// Today returns the single-day range containing now in loc.
func Today(now time.Time, loc *time.Location) DateRange {
	d := startOfDay(now, loc)
	return DateRange{From: &d, To: &d}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
