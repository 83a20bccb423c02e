//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra/memstore"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-03-03, hours 07:00-21:00 in the default catalog.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

type availabilityFixture struct {
	store *memstore.Store
	clk   *clock.MockClock
	q     queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	cat := catalog.Default()
	clk := clock.NewMockClock(monday.Add(6 * time.Hour))
	cal := schedule.NewCalendar(cat.Hours(), time.UTC, 0)
	store := memstore.New()
	cfg := config.NewTestConfig()

	return &availabilityFixture{
		store: store,
		clk:   clk,
		q:     queries.NewAvailabilityQueries(cat, cal, shared.NewConflictChecker(clk), store, cfg),
	}
}

func slotStarts(slots []queries.SlotView) []time.Time {
	starts := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	return starts
}

func mustInterval(t *testing.T, start time.Time, duration, buffer time.Duration) schedule.Interval {
	t.Helper()
	ival, err := schedule.NewInterval(start, duration, buffer)
	require.NoError(t, err)
	return ival
}

func TestSlotsFor(t *testing.T) {
	t.Run("open day yields every step whose service end fits", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		slots, err := f.q.SlotsFor(context.Background(), "sauna", "2025-03-03")
		require.NoError(t, err)

		// 07:00 through 20:00 at 15-minute steps; a 60-minute sauna starting
		// 20:00 ends exactly at close.
		require.Len(t, slots, 53)
		want := make([]time.Time, 0, 53)
		for at := monday.Add(7 * time.Hour); !at.After(monday.Add(20 * time.Hour)); at = at.Add(15 * time.Minute) {
			want = append(want, at)
		}
		assert.Empty(t, cmp.Diff(want, slotStarts(slots)))
		assert.Equal(t, monday.Add(21*time.Hour), slots[len(slots)-1].End)
	})

	t.Run("closed day is empty, not an error", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		slots, err := f.q.SlotsFor(context.Background(), "sauna", "2025-03-02")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("booked slot blocks every padded neighbour", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		h, err := hold.NewSingle("sauna", mustInterval(t, monday.Add(10*time.Hour), time.Hour, 30*time.Minute), nil, 2500, f.clk.Now(), 12*time.Minute)
		require.NoError(t, err)
		b, err := booking.FromHold(h, "pay_123", nil, f.clk.Now())
		require.NoError(t, err)
		f.store.AddBooking(b)

		slots, err := f.q.SlotsFor(context.Background(), "sauna", "2025-03-03")
		require.NoError(t, err)

		starts := slotStarts(slots)
		assert.Contains(t, starts, monday.Add(8*time.Hour+15*time.Minute))
		// 08:30 touches the booking at exactly 10:00 through its own buffer.
		assert.NotContains(t, starts, monday.Add(8*time.Hour+30*time.Minute))
		assert.NotContains(t, starts, monday.Add(10*time.Hour))
		// 11:30 starts exactly at the booking's padded end.
		assert.NotContains(t, starts, monday.Add(11*time.Hour+30*time.Minute))
		assert.Contains(t, starts, monday.Add(11*time.Hour+45*time.Minute))
	})

	t.Run("live hold blocks, expired hold does not", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		h, err := hold.NewSingle("sauna", mustInterval(t, monday.Add(10*time.Hour), time.Hour, 30*time.Minute), nil, 2500, f.clk.Now(), 12*time.Minute)
		require.NoError(t, err)
		f.store.AddHold(h)

		slots, err := f.q.SlotsFor(context.Background(), "sauna", "2025-03-03")
		require.NoError(t, err)
		assert.NotContains(t, slotStarts(slots), monday.Add(10*time.Hour))

		// Past the TTL the row may still exist; the slot is free regardless.
		f.clk.Add(13 * time.Minute)
		slots, err = f.q.SlotsFor(context.Background(), "sauna", "2025-03-03")
		require.NoError(t, err)
		assert.Contains(t, slotStarts(slots), monday.Add(10*time.Hour))
	})

	t.Run("occupancy is per service", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		h, err := hold.NewSingle("sauna", mustInterval(t, monday.Add(10*time.Hour), time.Hour, 30*time.Minute), nil, 2500, f.clk.Now(), 12*time.Minute)
		require.NoError(t, err)
		f.store.AddHold(h)

		slots, err := f.q.SlotsFor(context.Background(), "massage", "2025-03-03")
		require.NoError(t, err)
		assert.Contains(t, slotStarts(slots), monday.Add(10*time.Hour))
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		_, err := f.q.SlotsFor(context.Background(), "yoga", "2025-03-03")
		assert.ErrorIs(t, err, queries.ErrUnknownService)
	})

	t.Run("malformed day", func(t *testing.T) {
		f := newAvailabilityFixture(t)
		_, err := f.q.SlotsFor(context.Background(), "sauna", "03/02/2025")
		assert.ErrorIs(t, err, queries.ErrInvalidDay)
	})
}
