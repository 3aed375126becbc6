package timeline

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonth is returned for months outside 1-12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// Month is the visible window of the timeline: one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth validates and builds a Month.
func NewMonth(year int, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("month %d: %w", month, ErrInvalidMonth)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Next returns the following month, rolling into the next year after December.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev returns the preceding month, rolling into the previous year before January.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Start is midnight of the first day of the month, local time.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// End is midnight of the last day of the month, local time.
func (m Month) End() time.Time {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.End().Day()
}

// Day returns midnight of the given day of the month.
func (m Month) Day(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
}

// Label formats the month like "October 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Span returns the 1-based first and last visible day a task covers in this month.
// ok is false when the task lies entirely outside the month.
func (m Month) Span(t Task) (first, last int, ok bool) {
	start, end := m.Start(), m.End()
	ts := dateOnly(t.StartDate)
	te := dateOnly(t.EndDate)
	if te.Before(start) || ts.After(end) {
		return 0, 0, false
	}
	first, last = 1, m.Days()
	if ts.After(start) {
		first = ts.Day()
	}
	if te.Before(end) {
		last = te.Day()
	}
	return first, last, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
