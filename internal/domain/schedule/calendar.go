package schedule

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWallTime = errors.New("invalid wall time")

// DayHours holds open/close as 24h wall times ("07:00").
type DayHours struct {
	Open  string
	Close string
}

// WeeklyHours maps weekday to business hours. A missing weekday means closed.
type WeeklyHours map[time.Weekday]DayHours

// BusinessWindow is a day's hours anchored to concrete instants.
type BusinessWindow struct {
	open  time.Time
	close time.Time
}

func (w BusinessWindow) Open() time.Time  { return w.open }
func (w BusinessWindow) Close() time.Time { return w.close }

// Contains checks the service interval against the window. Only the service
// end must fit before close; the cleanup buffer may spill past closing.
func (w BusinessWindow) Contains(ival Interval) bool {
	return !ival.Start().Before(w.open) && !ival.End().After(w.close)
}

type Calendar struct {
	hours  WeeklyHours
	loc    *time.Location
	cutoff time.Duration
}

func NewCalendar(hours WeeklyHours, loc *time.Location, cutoff time.Duration) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{hours: hours, loc: loc, cutoff: cutoff}
}

func (c *Calendar) Location() *time.Location { return c.loc }

// WindowFor resolves the business window for the calendar day containing t,
// in the studio timezone. The second return is false on closed days.
func (c *Calendar) WindowFor(t time.Time) (BusinessWindow, bool) {
	local := t.In(c.loc)
	hours, ok := c.hours[local.Weekday()]
	if !ok {
		return BusinessWindow{}, false
	}

	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
	open, err := anchorWallTime(midnight, hours.Open)
	if err != nil {
		return BusinessWindow{}, false
	}
	close, err := anchorWallTime(midnight, hours.Close)
	if err != nil || !open.Before(close) {
		return BusinessWindow{}, false
	}
	return BusinessWindow{open: open, close: close}, true
}

// TooSoon reports whether a same-day start falls inside the cutoff window.
// A cutoff of zero disables the rule entirely.
func (c *Calendar) TooSoon(start, now time.Time) bool {
	if c.cutoff <= 0 {
		return false
	}
	localStart := start.In(c.loc)
	localNow := now.In(c.loc)
	if localStart.Year() != localNow.Year() || localStart.YearDay() != localNow.YearDay() {
		return false
	}
	return localStart.Sub(localNow) < c.cutoff
}

func anchorWallTime(midnight time.Time, wall string) (time.Time, error) {
	var h, m int
	if _, err := fmt.Sscanf(wall, "%d:%d", &h, &m); err != nil {
		return time.Time{}, ErrInvalidWallTime
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, ErrInvalidWallTime
	}
	return midnight.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), nil
}
