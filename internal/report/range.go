// Package report turns flat order, staff and attendance records into the
// derived summaries the dashboard and report views consume. Every function is
// pure: same input slices, same output, no I/O and no shared state, so
// concurrent calls from multiple views are safe without locking.
//
// All calendar-date grouping uses UTC. Grouping by the server's local time
// zone silently shifts orders across day boundaries near midnight; pinning
// UTC makes grouping deterministic regardless of where the backend runs.
package report

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day format used for grouping keys and
// attendance dates.
const DateLayout = "2006-01-02"

// ErrInvalidRange is returned when a range's end date precedes its start date.
var ErrInvalidRange = errors.New("report: range end precedes start")

// Range is an inclusive [From, To] timestamp window. Construct it with
// NewRange so that To is normalized and the ordering invariant holds.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange builds an inclusive range. A zero `to` means "the single day of
// `from`". To is normalized to end-of-day (23:59:59.999999999 UTC) so that a
// range of whole days matches the user expectation of "inclusive day": an
// order at 23:59 on the end date is in range, one at 00:01 the next day is not.
func NewRange(from, to time.Time) (Range, error) {
	from = from.UTC()
	if to.IsZero() {
		to = from
	}
	to = endOfDay(to.UTC())
	if to.Before(from) {
		return Range{}, ErrInvalidRange
	}
	return Range{From: from, To: to}, nil
}

// Contains reports whether t falls inside the range. Comparison is on full
// timestamp instants, not calendar dates.
func (r Range) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(r.From) && !t.After(r.To)
}

// Days returns the number of calendar days the range spans, inclusive on both
// ends. Always >= 1 for a range built by NewRange.
func (r Range) Days() int {
	from := startOfDay(r.From)
	to := startOfDay(r.To)
	return int(to.Sub(from).Hours()/24) + 1
}

// ContainsDay reports whether a YYYY-MM-DD day string falls inside the
// range's calendar days. ISO date strings compare correctly as plain strings.
func (r Range) ContainsDay(day string) bool {
	return day >= r.From.Format(DateLayout) && day <= r.To.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999999999, time.UTC)
}
