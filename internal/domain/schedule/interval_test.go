//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"studio-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

func mustInterval(t *testing.T, start time.Time, duration, buffer time.Duration) schedule.Interval {
	t.Helper()
	ival, err := schedule.NewInterval(start, duration, buffer)
	require.NoError(t, err)
	return ival
}

func TestNewInterval(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		ival, err := schedule.NewInterval(base, 60*time.Minute, 30*time.Minute)
		require.NoError(t, err)

		assert.Equal(t, base, ival.Start())
		assert.Equal(t, base.Add(60*time.Minute), ival.End())
		assert.Equal(t, base.Add(90*time.Minute), ival.PaddedEnd())
		assert.Equal(t, 60*time.Minute, ival.Duration())
	})

	t.Run("zero buffer keeps end and padded end equal", func(t *testing.T) {
		ival := mustInterval(t, base, 45*time.Minute, 0)
		assert.Equal(t, ival.End(), ival.PaddedEnd())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name     string
			duration time.Duration
			buffer   time.Duration
			errIs    error
		}{
			{name: "zero duration", duration: 0, buffer: 0, errIs: schedule.ErrNonPositiveDuration},
			{name: "negative duration", duration: -time.Minute, buffer: 0, errIs: schedule.ErrNonPositiveDuration},
			{name: "negative buffer", duration: time.Hour, buffer: -time.Minute, errIs: schedule.ErrNegativeBuffer},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := schedule.NewInterval(base, tc.duration, tc.buffer)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     schedule.Interval
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        mustInterval(t, base, time.Hour, 0),
			b:        mustInterval(t, base, time.Hour, 0),
			overlaps: true,
		},
		{
			name:     "clearly disjoint",
			a:        mustInterval(t, base, time.Hour, 0),
			b:        mustInterval(t, base.Add(3*time.Hour), time.Hour, 0),
			overlaps: false,
		},
		{
			name:     "partial overlap",
			a:        mustInterval(t, base, time.Hour, 0),
			b:        mustInterval(t, base.Add(30*time.Minute), time.Hour, 0),
			overlaps: true,
		},
		{
			name:     "start exactly at padded end still conflicts",
			a:        mustInterval(t, base, time.Hour, 30*time.Minute),
			b:        mustInterval(t, base.Add(90*time.Minute), time.Hour, 0),
			overlaps: true,
		},
		{
			name:     "start one minute after padded end is free",
			a:        mustInterval(t, base, time.Hour, 30*time.Minute),
			b:        mustInterval(t, base.Add(91*time.Minute), time.Hour, 0),
			overlaps: false,
		},
		{
			name:     "buffer of earlier interval reaches into later start",
			a:        mustInterval(t, base, time.Hour, 30*time.Minute),
			b:        mustInterval(t, base.Add(75*time.Minute), time.Hour, 0),
			overlaps: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}
