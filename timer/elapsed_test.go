package timer

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type testElapsedBreakdown struct {
	suite.Suite
}

func (t *testElapsedBreakdown) TestSecondsOnly() {
	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := reset.Add(time.Second * 5)

	eb := BreakdownBetween(reset, now)

	t.Equal(ElapsedBreakdown{Seconds: 5}, eb)
	t.Equal("5 seconds", eb.Verbose())
	t.Equal("00:00:05", CompactBetween(reset, now))
}

func (t *testElapsedBreakdown) TestCalendarBorrow() {
	reset := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 8, 20, 12, 30, 45, 0, time.UTC)

	eb := BreakdownBetween(reset, now)

	t.Equal(ElapsedBreakdown{
		Years:   1,
		Months:  2,
		Weeks:   0,
		Days:    5,
		Hours:   2,
		Minutes: 30,
		Seconds: 45,
	}, eb)
}

func (t *testElapsedBreakdown) TestShortMonthBorrow() {
	// the deficit spans february, so one month borrow is not enough
	reset := time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	eb := BreakdownBetween(reset, now)

	t.Equal(ElapsedBreakdown{Weeks: 4, Days: 1}, eb)
}

func (t *testElapsedBreakdown) TestTimeOfDayBorrowIntoDate() {
	// hour borrow pushes the day difference negative again
	reset := time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
	now := time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC)

	eb := BreakdownBetween(reset, now)

	t.Equal(ElapsedBreakdown{Seconds: 2}, eb)
}

func (t *testElapsedBreakdown) TestFutureReset() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	reset := now.Add(time.Hour)

	t.True(BreakdownBetween(reset, now).IsZero())
}

func (t *testElapsedBreakdown) TestSameInstant() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	eb := BreakdownBetween(now, now)

	t.True(eb.IsZero())
	t.Equal("0 seconds", eb.Verbose())
}

func (t *testElapsedBreakdown) TestIdempotent() {
	reset := time.Date(2022, 3, 31, 13, 45, 1, 0, time.UTC)
	now := time.Date(2024, 8, 20, 12, 30, 45, 0, time.UTC)

	t.Equal(BreakdownBetween(reset, now), BreakdownBetween(reset, now))
}

func (t *testElapsedBreakdown) TestUnitBounds() {
	reset := time.Date(2020, 12, 31, 23, 59, 59, 0, time.UTC)

	for _, d := range []time.Duration{
		time.Second,
		time.Second * 61,
		time.Minute * 61,
		time.Hour * 25,
		time.Hour * 24 * 31,
		time.Hour * 24 * 365,
		time.Hour*24*400 + time.Hour*3 + time.Minute*7 + time.Second*11,
	} {
		eb := BreakdownBetween(reset, reset.Add(d))

		t.True(eb.Months >= 0 && eb.Months < 12, "months: %v", eb.Months)
		t.True(eb.Weeks >= 0 && eb.Weeks < 5, "weeks: %v", eb.Weeks)
		t.True(eb.Days >= 0 && eb.Days < 7, "days: %v", eb.Days)
		t.True(eb.Hours >= 0 && eb.Hours < 24, "hours: %v", eb.Hours)
		t.True(eb.Minutes >= 0 && eb.Minutes < 60, "minutes: %v", eb.Minutes)
		t.True(eb.Seconds >= 0 && eb.Seconds < 60, "seconds: %v", eb.Seconds)
	}
}

func (t *testElapsedBreakdown) TestVerboseOmitsZeroSeconds() {
	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Equal("1 hour", BreakdownBetween(reset, reset.Add(time.Hour)).Verbose())
	t.Equal("1 hour, 5 seconds", BreakdownBetween(reset, reset.Add(time.Hour+time.Second*5)).Verbose())
}

func (t *testElapsedBreakdown) TestVerbosePluralize() {
	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Equal("1 day", BreakdownBetween(reset, reset.Add(time.Hour*24)).Verbose())
	t.Equal("2 days", BreakdownBetween(reset, reset.Add(time.Hour*48)).Verbose())
	t.Equal(
		"1 week, 1 day, 1 hour, 1 minute, 1 second",
		BreakdownBetween(reset, reset.Add(time.Hour*24*8+time.Hour+time.Minute+time.Second)).Verbose(),
	)
}

func (t *testElapsedBreakdown) TestCompactUnboundedHours() {
	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := reset.Add(time.Hour*100 + time.Minute*2 + time.Second*3)

	t.Equal("100:02:03", CompactBetween(reset, now))
}

func (t *testElapsedBreakdown) TestCompactClampsFuture() {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Equal("00:00:00", CompactBetween(now.Add(time.Hour), now))
}

func (t *testElapsedBreakdown) TestCompactMonotonic() {
	reset := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var last int64 = -1
	for _, d := range []time.Duration{
		0,
		time.Second,
		time.Second * 59,
		time.Minute,
		time.Hour,
		time.Hour * 23,
		time.Hour * 24,
		time.Hour * 1000,
	} {
		var h, m, s int64
		_, err := fmt.Sscanf(CompactBetween(reset, reset.Add(d)), "%d:%d:%d", &h, &m, &s)
		t.NoError(err)

		total := h*3600 + m*60 + s
		t.True(total >= last, "total: %v < last: %v", total, last)
		last = total
	}
}

func TestElapsedBreakdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	suite.Run(t, new(testElapsedBreakdown))
}
