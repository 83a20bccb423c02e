//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHours() schedule.WeeklyHours {
	return schedule.WeeklyHours{
		time.Monday:   {Open: "07:00", Close: "21:00"},
		time.Saturday: {Open: "09:00", Close: "17:00"},
	}
}

func TestCalendarWindowFor(t *testing.T) {
	cal := schedule.NewCalendar(testHours(), time.UTC, 0)

	t.Run("open day resolves to anchored instants", func(t *testing.T) {
		monday := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
		window, open := cal.WindowFor(monday)
		require.True(t, open)

		assert.Equal(t, time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC), window.Open())
		assert.Equal(t, time.Date(2025, 3, 3, 21, 0, 0, 0, time.UTC), window.Close())
	})

	t.Run("closed day", func(t *testing.T) {
		sunday := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
		_, open := cal.WindowFor(sunday)
		assert.False(t, open)
	})

	t.Run("nil location falls back to UTC", func(t *testing.T) {
		cal := schedule.NewCalendar(testHours(), nil, 0)
		assert.Equal(t, time.UTC, cal.Location())
	})
}

func TestBusinessWindowContains(t *testing.T) {
	cal := schedule.NewCalendar(testHours(), time.UTC, 0)
	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	window, open := cal.WindowFor(saturday)
	require.True(t, open)

	cases := []struct {
		name     string
		start    time.Time
		duration time.Duration
		buffer   time.Duration
		want     bool
	}{
		{
			name:     "fits comfortably",
			start:    saturday.Add(10 * time.Hour),
			duration: time.Hour,
			want:     true,
		},
		{
			name:     "starts before open",
			start:    saturday.Add(8 * time.Hour),
			duration: time.Hour,
			want:     false,
		},
		{
			name:     "service end exactly at close",
			start:    saturday.Add(16 * time.Hour),
			duration: time.Hour,
			want:     true,
		},
		{
			name:     "service end past close",
			start:    saturday.Add(16*time.Hour + 30*time.Minute),
			duration: time.Hour,
			want:     false,
		},
		{
			name:     "buffer may spill past close",
			start:    saturday.Add(16 * time.Hour),
			duration: time.Hour,
			buffer:   30 * time.Minute,
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ival, err := schedule.NewInterval(tc.start, tc.duration, tc.buffer)
			require.NoError(t, err)
			assert.Equal(t, tc.want, window.Contains(ival))
		})
	}
}

func TestCalendarTooSoon(t *testing.T) {
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	t.Run("zero cutoff disables the rule", func(t *testing.T) {
		cal := schedule.NewCalendar(testHours(), time.UTC, 0)
		assert.False(t, cal.TooSoon(now.Add(time.Minute), now))
	})

	t.Run("same-day start inside cutoff", func(t *testing.T) {
		cal := schedule.NewCalendar(testHours(), time.UTC, 2*time.Hour)
		assert.True(t, cal.TooSoon(now.Add(time.Hour), now))
	})

	t.Run("same-day start at exactly the cutoff", func(t *testing.T) {
		cal := schedule.NewCalendar(testHours(), time.UTC, 2*time.Hour)
		assert.False(t, cal.TooSoon(now.Add(2*time.Hour), now))
	})

	t.Run("next-day start is never too soon", func(t *testing.T) {
		cal := schedule.NewCalendar(testHours(), time.UTC, 12*time.Hour)
		assert.False(t, cal.TooSoon(now.Add(24*time.Hour), now))
	})
}
