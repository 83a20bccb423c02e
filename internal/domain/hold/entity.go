package hold

import (
	"errors"
	"time"

	"studio-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTTL       = errors.New("hold ttl must be positive")
	ErrNegativeCharge   = errors.New("hold charge cannot be negative")
	ErrEmptyGroup       = errors.New("hold group must have at least one member")
	ErrMissingServiceID = errors.New("hold requires a service id")
)

type Kind string

const (
	KindSingle       Kind = "single"
	KindBundleMember Kind = "bundle_member"
)

// Hold is a short-lived claim on a slot. It blocks competing holds and
// bookings while live and evaporates by predicate: expiry is decided by
// comparing expires_at against the current time, never by a timer.
type Hold struct {
	id          uuid.UUID
	groupID     uuid.UUID
	groupSize   int
	kind        Kind
	bundleID    *string
	serviceID   string
	interval    schedule.Interval
	customerID  *uuid.UUID
	chargeCents int64
	createdAt   time.Time
	expiresAt   time.Time
}

// Member describes one slot of a group before the group identity exists.
type Member struct {
	ServiceID   string
	Interval    schedule.Interval
	ChargeCents int64
}

func NewSingle(serviceID string, ival schedule.Interval, customerID *uuid.UUID, chargeCents int64, now time.Time, ttl time.Duration) (*Hold, error) {
	if serviceID == "" {
		return nil, ErrMissingServiceID
	}
	if chargeCents < 0 {
		return nil, ErrNegativeCharge
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	id := uuid.New()
	return &Hold{
		id:          id,
		groupID:     id, // a single hold is its own group
		groupSize:   1,
		kind:        KindSingle,
		serviceID:   serviceID,
		interval:    ival,
		customerID:  customerID,
		chargeCents: chargeCents,
		createdAt:   now,
		expiresAt:   now.Add(ttl),
	}, nil
}

// NewGroup builds the member holds of one bundle reservation. All members
// share a group id, a group size and a single expiry instant.
func NewGroup(bundleID string, members []Member, customerID *uuid.UUID, now time.Time, ttl time.Duration) ([]*Hold, error) {
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	groupID := uuid.New()
	expiresAt := now.Add(ttl)
	holds := make([]*Hold, 0, len(members))
	for _, m := range members {
		if m.ServiceID == "" {
			return nil, ErrMissingServiceID
		}
		if m.ChargeCents < 0 {
			return nil, ErrNegativeCharge
		}
		bid := bundleID
		holds = append(holds, &Hold{
			id:          uuid.New(),
			groupID:     groupID,
			groupSize:   len(members),
			kind:        KindBundleMember,
			bundleID:    &bid,
			serviceID:   m.ServiceID,
			interval:    m.Interval,
			customerID:  customerID,
			chargeCents: m.ChargeCents,
			createdAt:   now,
			expiresAt:   expiresAt,
		})
	}
	return holds, nil
}

func Reconstruct(
	id, groupID uuid.UUID,
	groupSize int,
	kind Kind,
	bundleID *string,
	serviceID string,
	ival schedule.Interval,
	customerID *uuid.UUID,
	chargeCents int64,
	createdAt, expiresAt time.Time,
) *Hold {
	return &Hold{
		id:          id,
		groupID:     groupID,
		groupSize:   groupSize,
		kind:        kind,
		bundleID:    bundleID,
		serviceID:   serviceID,
		interval:    ival,
		customerID:  customerID,
		chargeCents: chargeCents,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
	}
}

// IsLive reports whether the hold still blocks its slot. A hold whose expiry
// instant has arrived is dead even if the row still exists.
func (h *Hold) IsLive(now time.Time) bool {
	return now.Before(h.expiresAt)
}

func (h *Hold) ID() uuid.UUID               { return h.id }
func (h *Hold) GroupID() uuid.UUID          { return h.groupID }
func (h *Hold) GroupSize() int              { return h.groupSize }
func (h *Hold) Kind() Kind                  { return h.kind }
func (h *Hold) BundleID() *string           { return h.bundleID }
func (h *Hold) ServiceID() string           { return h.serviceID }
func (h *Hold) Interval() schedule.Interval { return h.interval }
func (h *Hold) CustomerID() *uuid.UUID      { return h.customerID }
func (h *Hold) ChargeCents() int64          { return h.chargeCents }
func (h *Hold) CreatedAt() time.Time        { return h.createdAt }
func (h *Hold) ExpiresAt() time.Time        { return h.expiresAt }
