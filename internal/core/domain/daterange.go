package domain

import (
	"fmt"
	"time"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
)

// DateRange is an inclusive [start, end] interval used to filter operations.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange builds a range; start must not be after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("start date must be before end date: %w", apperrors.ErrValidation)
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }

func (r DateRange) End() time.Time { return r.end }

// Contains reports whether t falls within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.start) && !t.After(r.end)
}

// Overlaps reports whether the two ranges share at least one instant.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Today is the range covering the calendar day of now.
func Today(now time.Time) DateRange {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
	return DateRange{start: start, end: end}
}

// ThisMonth is the range covering the calendar month of now.
func ThisMonth(now time.Time) DateRange {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(y, m+1, 0, 23, 59, 59, 0, now.Location())
	return DateRange{start: start, end: end}
}

// ThisYear is the range covering the calendar year of now.
func ThisYear(now time.Time) DateRange {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), time.December, 31, 23, 59, 59, 0, now.Location())
	return DateRange{start: start, end: end}
}
