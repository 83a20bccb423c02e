package commands

import (
	"context"
	"time"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnknownService          = errs.New("unknown service")
	ErrUnknownBundle           = errs.New("unknown bundle")
	ErrUnknownCustomer         = errs.New("unknown customer")
	ErrOutsideHours            = errs.New("outside business hours")
	ErrPastCutoff              = errs.New("past same-day cutoff")
	ErrSlotUnavailable         = errs.New("slot unavailable")
	ErrBundleSelectionMismatch = errs.New("bundle selections do not match bundle services")
	ErrStoreFailure            = errs.New("store operation failed")
)

type CreateSingleParams struct {
	ServiceID  string
	Start      time.Time
	CustomerID *uuid.UUID
}

type Selection struct {
	ServiceID string
	Start     time.Time
}

type CreateBundleParams struct {
	BundleID   string
	Selections []Selection
	CustomerID *uuid.UUID
}

type HoldCommands interface {
	CreateSingle(ctx context.Context, p CreateSingleParams) (*hold.Hold, error)
	// CreateBundle is all-or-nothing: one failing member rejects the whole
	// request with that member's reason and nothing persists.
	CreateBundle(ctx context.Context, p CreateBundleParams) ([]*hold.Hold, error)
}

type holdCommandsImpl struct {
	uow       shared.UnitOfWork
	checker   *shared.ConflictChecker
	cat       *catalog.Catalog
	cal       *schedule.Calendar
	quoter    *pricing.Quoter
	customers shared.CustomerReads
	clock     clock.Clock
	ttl       time.Duration
}

func NewHoldCommands(
	uow shared.UnitOfWork,
	checker *shared.ConflictChecker,
	cat *catalog.Catalog,
	cal *schedule.Calendar,
	quoter *pricing.Quoter,
	customers shared.CustomerReads,
	clk clock.Clock,
	cfg config.Config,
) HoldCommands {
	return &holdCommandsImpl{
		uow:       uow,
		checker:   checker,
		cat:       cat,
		cal:       cal,
		quoter:    quoter,
		customers: customers,
		clock:     clk,
		ttl:       cfg.Studio.HoldTTL,
	}
}

func (h *holdCommandsImpl) CreateSingle(ctx context.Context, p CreateSingleParams) (*hold.Hold, error) {
	svc, ok := h.cat.Service(p.ServiceID)
	if !ok {
		return nil, ErrUnknownService
	}

	ival, err := h.validateSlot(svc, p.Start)
	if err != nil {
		return nil, err
	}

	cust, err := h.resolveCustomer(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}
	quote := h.quoter.ServiceQuote(svc, cust)

	var created *hold.Hold
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		keys := []shared.SlotKey{shared.NewSlotKey(svc.ID, ival.Start(), h.cal.Location())}
		if err := tx.LockSlots(ctx, keys); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}

		conflict, err := h.checker.Overlaps(ctx, tx, svc.ID, ival)
		if err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		if conflict {
			return ErrSlotUnavailable
		}

		created, err = hold.NewSingle(svc.ID, ival, p.CustomerID, quote.ChargeCents, h.clock.Now(), h.ttl)
		if err != nil {
			return err
		}
		return h.insertHolds(ctx, tx, []*hold.Hold{created})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (h *holdCommandsImpl) CreateBundle(ctx context.Context, p CreateBundleParams) ([]*hold.Hold, error) {
	b, ok := h.cat.Bundle(p.BundleID)
	if !ok {
		return nil, ErrUnknownBundle
	}
	if len(p.Selections) != len(b.ServiceIDs) {
		return nil, ErrBundleSelectionMismatch
	}

	cust, err := h.resolveCustomer(ctx, p.CustomerID)
	if err != nil {
		return nil, err
	}
	_ = cust // bundle price is fixed; member rates and credits do not apply

	// Selections bind positionally to the bundle's member services.
	members := make([]hold.Member, 0, len(p.Selections))
	for i, sel := range p.Selections {
		if sel.ServiceID != b.ServiceIDs[i] {
			return nil, ErrBundleSelectionMismatch
		}
		svc, ok := h.cat.Service(sel.ServiceID)
		if !ok {
			return nil, ErrUnknownService
		}
		ival, err := h.validateSlot(svc, sel.Start)
		if err != nil {
			return nil, err
		}
		members = append(members, hold.Member{ServiceID: svc.ID, Interval: ival})
	}

	// The fixed bundle price rides on the first member so per-hold charges
	// stay additive and the group total is authoritative.
	members[0].ChargeCents = h.quoter.BundleQuote(b)

	// Members of the same service must not collide with each other; the
	// store check below only sees rows that already exist.
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			if members[i].ServiceID == members[j].ServiceID &&
				members[i].Interval.Overlaps(members[j].Interval) {
				return nil, ErrSlotUnavailable
			}
		}
	}

	var created []*hold.Hold
	err = h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		keys := make([]shared.SlotKey, 0, len(members))
		seen := map[shared.SlotKey]struct{}{}
		for _, m := range members {
			k := shared.NewSlotKey(m.ServiceID, m.Interval.Start(), h.cal.Location())
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
		if err := tx.LockSlots(ctx, shared.SortSlotKeys(keys)); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}

		for _, m := range members {
			conflict, err := h.checker.Overlaps(ctx, tx, m.ServiceID, m.Interval)
			if err != nil {
				return errs.Mark(err, ErrStoreFailure)
			}
			if conflict {
				return ErrSlotUnavailable
			}
		}

		var err error
		created, err = hold.NewGroup(b.ID, members, p.CustomerID, h.clock.Now(), h.ttl)
		if err != nil {
			return err
		}
		return h.insertHolds(ctx, tx, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (h *holdCommandsImpl) validateSlot(svc catalog.Service, start time.Time) (schedule.Interval, error) {
	ival, err := schedule.NewInterval(start, svc.Duration, svc.Buffer)
	if err != nil {
		return schedule.Interval{}, err
	}

	window, open := h.cal.WindowFor(start)
	if !open || !window.Contains(ival) {
		return schedule.Interval{}, ErrOutsideHours
	}
	if h.cal.TooSoon(start, h.clock.Now()) {
		return schedule.Interval{}, ErrPastCutoff
	}
	return ival, nil
}

func (h *holdCommandsImpl) resolveCustomer(ctx context.Context, id *uuid.UUID) (*customer.Customer, error) {
	if id == nil {
		return nil, nil
	}
	cust, err := h.customers.FindByID(ctx, *id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownCustomer
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return cust, nil
}

func (h *holdCommandsImpl) insertHolds(ctx context.Context, tx shared.Tx, holds []*hold.Hold) error {
	if err := tx.Holds().InsertGroup(ctx, holds); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) || infra.IsKind(err, infra.KindConflict) {
			return ErrSlotUnavailable
		}
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}
