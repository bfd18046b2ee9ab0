package calendar

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("start date must not be after end date")

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() Date {
	return r.start
}

func (r DateRange) End() Date {
	return r.end
}

func (r DateRange) Equal(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// Overlaps reports whether the two spans share at least one calendar date.
// A shared endpoint counts as overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !other.start.After(r.end)
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Dates enumerates every date in the span, inclusive of both endpoints.
func (r DateRange) Dates() []Date {
	days := r.start.DaysUntil(r.end) + 1
	dates := make([]Date, 0, days)
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// Nights is the end-exclusive day count, matching check-in/check-out stay
// semantics: [Jan 10, Jan 12] is a two-night stay.
func (r DateRange) Nights() int {
	return r.start.DaysUntil(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.start, r.end)
}
