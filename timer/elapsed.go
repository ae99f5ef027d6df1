package timer

import (
	"fmt"
	"strings"
	"time"
)

// NoIncidentStatement is rendered when there is no timer to measure from.
const NoIncidentStatement = "no incident started"

// ElapsedBreakdown is the calendar-correct decomposition of the time since a
// reset instant. All fields are non-negative; Months < 12, Weeks < 5,
// Days < 7, Hours < 24, Minutes < 60 and Seconds < 60.
type ElapsedBreakdown struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// BreakdownBetween decomposes now - reset by borrowing through the calendar
// instead of dividing by a fixed day length, so month lengths and leap years
// are honored. If now is not after reset, the zero breakdown is returned.
func BreakdownBetween(reset, now time.Time) ElapsedBreakdown {
	if !now.After(reset) {
		return ElapsedBreakdown{}
	}

	r := reset.UTC()
	n := now.UTC()

	years := n.Year() - r.Year()
	months := int(n.Month()) - int(r.Month())
	days := n.Day() - r.Day()
	hours := n.Hour() - r.Hour()
	minutes := n.Minute() - r.Minute()
	seconds := n.Second() - r.Second()

	if seconds < 0 {
		seconds += 60
		minutes--
	}

	if minutes < 0 {
		minutes += 60
		hours--
	}

	if hours < 0 {
		hours += 24
		days--
	}

	// borrow whole months walking back from the month preceding now; a
	// single borrow is not enough when that month is shorter than the
	// deficit (reset on the 31st, now early March).
	last := time.Date(n.Year(), n.Month(), 0, 0, 0, 0, 0, time.UTC)
	for days < 0 {
		days += last.Day()
		months--
		last = time.Date(last.Year(), last.Month(), 0, 0, 0, 0, 0, time.UTC)
	}

	if months < 0 {
		months += 12
		years--
	}

	return ElapsedBreakdown{
		Years:   years,
		Months:  months,
		Weeks:   days / 7,
		Days:    days % 7,
		Hours:   hours,
		Minutes: minutes,
		Seconds: seconds,
	}
}

func (eb ElapsedBreakdown) IsZero() bool {
	return eb == ElapsedBreakdown{}
}

// Verbose renders the non-zero units in descending order, comma-separated
// and pluralized; "0 seconds" only when nothing else rendered.
func (eb ElapsedBreakdown) Verbose() string {
	parts := make([]string, 0, 7)

	for _, u := range []struct {
		n    int
		name string
	}{
		{eb.Years, "year"},
		{eb.Months, "month"},
		{eb.Weeks, "week"},
		{eb.Days, "day"},
		{eb.Hours, "hour"},
		{eb.Minutes, "minute"},
	} {
		if u.n == 0 {
			continue
		}

		parts = append(parts, pluralize(u.n, u.name))
	}

	if eb.Seconds > 0 || len(parts) < 1 {
		parts = append(parts, pluralize(eb.Seconds, "second"))
	}

	return strings.Join(parts, ", ")
}

func (eb ElapsedBreakdown) String() string {
	return eb.Verbose()
}

// CompactBetween renders the whole seconds since reset as a zero-padded
// HH:MM:SS total-seconds clock; hours are not wrapped at 24. Negative
// differences clamp to "00:00:00".
func CompactBetween(reset, now time.Time) string {
	total := int64(now.Sub(reset) / time.Second)
	if total < 0 {
		total = 0
	}

	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
