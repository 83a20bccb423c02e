//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra/memstore"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type confirmFixture struct {
	store *memstore.Store
	clk   *clock.MockClock
	cat   *catalog.Catalog
	cmds  commands.ConfirmCommands
}

func newConfirmFixture(t *testing.T) *confirmFixture {
	t.Helper()

	cat := catalog.Default()
	clk := clock.NewMockClock(openDay.Add(7 * time.Hour))
	store := memstore.New()
	return &confirmFixture{
		store: store,
		clk:   clk,
		cat:   cat,
		cmds:  commands.NewConfirmCommands(store, cat, clk),
	}
}

func (f *confirmFixture) seedCustomer(t *testing.T, credits int) uuid.UUID {
	t.Helper()
	c := customer.Reconstruct(uuid.New(), "member@example.com", "Member", credits, f.clk.Now())
	f.store.AddCustomer(c, "hash")
	return c.ID()
}

func (f *confirmFixture) seedSingleHold(t *testing.T, serviceID string, start time.Time, chargeCents int64, customerID *uuid.UUID) *hold.Hold {
	t.Helper()

	svc, ok := f.cat.Service(serviceID)
	require.True(t, ok)
	ival, err := schedule.NewInterval(start, svc.Duration, svc.Buffer)
	require.NoError(t, err)
	h, err := hold.NewSingle(serviceID, ival, customerID, chargeCents, f.clk.Now(), 12*time.Minute)
	require.NoError(t, err)
	f.store.AddHold(h)
	return h
}

func (f *confirmFixture) seedGroup(t *testing.T, customerID *uuid.UUID) []*hold.Hold {
	t.Helper()

	sauna := mustIval(t, openDay.Add(10*time.Hour), time.Hour, 30*time.Minute)
	massage := mustIval(t, openDay.Add(13*time.Hour), 45*time.Minute, 15*time.Minute)
	holds, err := hold.NewGroup("revive-ritual", []hold.Member{
		{ServiceID: "sauna", Interval: sauna, ChargeCents: 5800},
		{ServiceID: "massage", Interval: massage},
	}, customerID, f.clk.Now(), 12*time.Minute)
	require.NoError(t, err)
	for _, h := range holds {
		f.store.AddHold(h)
	}
	return holds
}

func mustIval(t *testing.T, start time.Time, duration, buffer time.Duration) schedule.Interval {
	t.Helper()
	ival, err := schedule.NewInterval(start, duration, buffer)
	require.NoError(t, err)
	return ival
}

func TestConfirmSingle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		f := newConfirmFixture(t)
		custID := f.seedCustomer(t, 3)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2000, &custID)

		b, err := f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", nil)
		require.NoError(t, err)

		assert.Equal(t, "sauna", b.ServiceID())
		assert.Equal(t, int64(2000), b.ChargeCents())
		assert.Equal(t, "cs_test_1", b.PaymentRef())

		// The hold is gone, the booking is visible, a notification is queued.
		_, err = f.store.LiveByID(context.Background(), h.ID(), f.clk.Now())
		assert.Error(t, err)
		mine, err := f.store.FindByCustomer(context.Background(), custID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)
		assert.Equal(t, []string{"booking_confirmed"}, f.store.Jobs())

		// Confirming at the credit rate consumed one credit.
		c, err := f.store.FindByID(context.Background(), custID)
		require.NoError(t, err)
		assert.Equal(t, 2, c.CreditBalance())
	})

	t.Run("full-rate confirmation leaves the balance alone", func(t *testing.T) {
		f := newConfirmFixture(t)
		custID := f.seedCustomer(t, 3)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2500, &custID)

		_, err := f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", nil)
		require.NoError(t, err)

		c, err := f.store.FindByID(context.Background(), custID)
		require.NoError(t, err)
		assert.Equal(t, 3, c.CreditBalance())
	})

	t.Run("fallback customer fills anonymous holds", func(t *testing.T) {
		f := newConfirmFixture(t)
		custID := f.seedCustomer(t, 0)
		h := f.seedSingleHold(t, "massage", openDay.Add(13*time.Hour), 4000, nil)

		b, err := f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", &custID)
		require.NoError(t, err)
		require.NotNil(t, b.CustomerID())
		assert.Equal(t, custID, *b.CustomerID())
	})

	t.Run("expired hold", func(t *testing.T) {
		f := newConfirmFixture(t)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2500, nil)

		f.clk.Add(13 * time.Minute)
		_, err := f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrHoldExpired)
	})

	t.Run("a hold converts at most once", func(t *testing.T) {
		f := newConfirmFixture(t)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2500, nil)

		_, err := f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", nil)
		require.NoError(t, err)
		_, err = f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_2", nil)
		assert.ErrorIs(t, err, commands.ErrHoldExpired)
	})

	t.Run("bundle member rejected", func(t *testing.T) {
		f := newConfirmFixture(t)
		holds := f.seedGroup(t, nil)

		_, err := f.cmds.ConfirmSingle(context.Background(), holds[0].ID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrWrongKind)
	})

	t.Run("racing booking at the same start reads as expiry", func(t *testing.T) {
		f := newConfirmFixture(t)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2500, nil)

		other, err := hold.NewSingle("sauna", h.Interval(), nil, 2500, f.clk.Now(), 12*time.Minute)
		require.NoError(t, err)
		taken, err := booking.FromHold(other, "pay_rival", nil, f.clk.Now())
		require.NoError(t, err)
		f.store.AddBooking(taken)

		_, err = f.cmds.ConfirmSingle(context.Background(), h.ID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrHoldExpired)

		// The failing transaction rolled back; the hold itself survived.
		_, err = f.store.LiveByID(context.Background(), h.ID(), f.clk.Now())
		assert.NoError(t, err)
	})

	t.Run("empty payment ref", func(t *testing.T) {
		f := newConfirmFixture(t)
		_, err := f.cmds.ConfirmSingle(context.Background(), uuid.New(), "", nil)
		assert.ErrorIs(t, err, commands.ErrInvalidInput)
	})
}

func TestConfirmBundle(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		f := newConfirmFixture(t)
		custID := f.seedCustomer(t, 0)
		holds := f.seedGroup(t, &custID)

		booked, err := f.cmds.ConfirmBundle(context.Background(), holds[0].GroupID(), "cs_test_1", nil)
		require.NoError(t, err)
		require.Len(t, booked, 2)

		// Members come back ordered by start.
		assert.Equal(t, "sauna", booked[0].ServiceID())
		assert.Equal(t, "massage", booked[1].ServiceID())
		assert.Equal(t, int64(5800), booked[0].ChargeCents()+booked[1].ChargeCents())

		for _, h := range holds {
			_, err := f.store.LiveByID(context.Background(), h.ID(), f.clk.Now())
			assert.Error(t, err)
		}
		assert.Equal(t, []string{"booking_confirmed"}, f.store.Jobs())
	})

	t.Run("expired group", func(t *testing.T) {
		f := newConfirmFixture(t)
		holds := f.seedGroup(t, nil)

		f.clk.Add(13 * time.Minute)
		_, err := f.cmds.ConfirmBundle(context.Background(), holds[0].GroupID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrHoldExpired)
	})

	t.Run("partial survival expires the whole group", func(t *testing.T) {
		f := newConfirmFixture(t)
		holds := f.seedGroup(t, nil)

		// Simulate the sweep removing one member mid-flight.
		ctx := context.Background()
		require.NoError(t, f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Holds().Delete(ctx, holds[1].ID())
		}))

		_, err := f.cmds.ConfirmBundle(ctx, holds[0].GroupID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrHoldExpired)

		// The survivor was deleted with the group; nothing was booked.
		_, err = f.store.LiveByID(ctx, holds[0].ID(), f.clk.Now())
		assert.Error(t, err)
		assert.Empty(t, f.store.Jobs())
	})

	t.Run("wrong kind", func(t *testing.T) {
		f := newConfirmFixture(t)
		h := f.seedSingleHold(t, "sauna", openDay.Add(10*time.Hour), 2500, nil)

		// A single hold is its own group; confirming it as a bundle must fail.
		_, err := f.cmds.ConfirmBundle(context.Background(), h.GroupID(), "cs_test_1", nil)
		assert.ErrorIs(t, err, commands.ErrWrongKind)
	})

	t.Run("empty payment ref", func(t *testing.T) {
		f := newConfirmFixture(t)
		_, err := f.cmds.ConfirmBundle(context.Background(), uuid.New(), "", nil)
		assert.ErrorIs(t, err, commands.ErrInvalidInput)
	})
}
