package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrHoldExpired  = errs.New("hold expired")
	ErrWrongKind    = errs.New("wrong hold kind for this confirmation")
	ErrInvalidInput = errs.New("invalid confirmation input")
)

type ConfirmCommands interface {
	// ConfirmSingle converts a live single hold into a booking. A hold
	// converts at most once: a second confirmation, or one after expiry,
	// fails with ErrHoldExpired.
	ConfirmSingle(ctx context.Context, holdID uuid.UUID, paymentRef string, fallbackCustomer *uuid.UUID) (*booking.Booking, error)
	// ConfirmBundle converts every live member of a group atomically. A group
	// with fewer live members than its recorded size is treated as expired
	// as a whole: survivors are deleted and nothing is booked.
	ConfirmBundle(ctx context.Context, groupID uuid.UUID, paymentRef string, fallbackCustomer *uuid.UUID) ([]*booking.Booking, error)
}

type confirmCommandsImpl struct {
	uow   shared.UnitOfWork
	cat   *catalog.Catalog
	clock clock.Clock
}

func NewConfirmCommands(uow shared.UnitOfWork, cat *catalog.Catalog, clk clock.Clock) ConfirmCommands {
	return &confirmCommandsImpl{uow: uow, cat: cat, clock: clk}
}

func (c *confirmCommandsImpl) ConfirmSingle(ctx context.Context, holdID uuid.UUID, paymentRef string, fallbackCustomer *uuid.UUID) (*booking.Booking, error) {
	if paymentRef == "" {
		return nil, ErrInvalidInput
	}

	var booked *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		h, err := tx.Holds().LiveByID(ctx, holdID, now)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHoldExpired
			}
			return errs.Mark(err, ErrStoreFailure)
		}
		if h.Kind() != hold.KindSingle {
			return ErrWrongKind
		}

		booked, err = booking.FromHold(h, paymentRef, fallbackCustomer, now)
		if err != nil {
			return err
		}
		if err := c.persistBookings(ctx, tx, []*booking.Booking{booked}); err != nil {
			return err
		}
		if err := tx.Holds().Delete(ctx, h.ID()); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		c.settleCredit(ctx, tx, h, booked)
		return c.queueConfirmationJob(ctx, tx, []*booking.Booking{booked})
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

func (c *confirmCommandsImpl) ConfirmBundle(ctx context.Context, groupID uuid.UUID, paymentRef string, fallbackCustomer *uuid.UUID) ([]*booking.Booking, error) {
	if paymentRef == "" {
		return nil, ErrInvalidInput
	}

	var booked []*booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		holds, err := tx.Holds().LiveByGroup(ctx, groupID, now)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if len(holds) == 0 {
			return ErrHoldExpired
		}
		if holds[0].Kind() != hold.KindBundleMember {
			return ErrWrongKind
		}
		if len(holds) < holds[0].GroupSize() {
			// Partial survival counts as whole-group expiry.
			ids := holdIDs(holds)
			if err := tx.Holds().Delete(ctx, ids...); err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			return ErrHoldExpired
		}

		sort.Slice(holds, func(i, j int) bool {
			return holds[i].Interval().Start().Before(holds[j].Interval().Start())
		})

		booked = make([]*booking.Booking, 0, len(holds))
		for _, h := range holds {
			b, err := booking.FromHold(h, paymentRef, fallbackCustomer, now)
			if err != nil {
				return err
			}
			booked = append(booked, b)
		}
		if err := c.persistBookings(ctx, tx, booked); err != nil {
			return err
		}
		if err := tx.Holds().Delete(ctx, holdIDs(holds)...); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		return c.queueConfirmationJob(ctx, tx, booked)
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

func (c *confirmCommandsImpl) persistBookings(ctx context.Context, tx shared.Tx, bs []*booking.Booking) error {
	if err := tx.Bookings().InsertMany(ctx, bs); err != nil {
		// A duplicate start here means a racing confirmation already took
		// the slot; for the caller that is indistinguishable from expiry.
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindConflict) {
			return ErrHoldExpired
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

// settleCredit consumes one prepaid credit when the hold was priced at the
// credit rate for the credit-eligible service. The charge stays as held even
// if the balance raced to zero in the meantime.
func (c *confirmCommandsImpl) settleCredit(ctx context.Context, tx shared.Tx, h *hold.Hold, b *booking.Booking) {
	credit := c.cat.Credit()
	if credit.ServiceID == "" || h.ServiceID() != credit.ServiceID {
		return
	}
	if h.ChargeCents() != credit.DiscountCents || b.CustomerID() == nil {
		return
	}

	consumed, err := tx.Customers().ConsumeCredit(ctx, *b.CustomerID())
	if err != nil {
		slog.Warn("credit consumption failed", "customer_id", b.CustomerID(), "error", err.Error())
		return
	}
	if !consumed {
		slog.Warn("credit balance exhausted between hold and confirmation", "customer_id", b.CustomerID())
	}
}

func (c *confirmCommandsImpl) queueConfirmationJob(ctx context.Context, tx shared.Tx, bs []*booking.Booking) error {
	ids := make([]uuid.UUID, 0, len(bs))
	for _, b := range bs {
		ids = append(ids, b.ID())
	}
	payload, err := json.Marshal(map[string]any{
		"booking_ids": ids,
		"type":        "booking_confirmed",
	})
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	if err := tx.Notifications().CreateJob(ctx, "email", "booking_confirmed", payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func holdIDs(holds []*hold.Hold) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(holds))
	for _, h := range holds {
		ids = append(ids, h.ID())
	}
	return ids
}
