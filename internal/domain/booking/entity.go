package booking

import (
	"errors"
	"time"

	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrEmptyPaymentRef = errors.New("payment reference cannot be empty")

// Booking is the permanent record a live hold converts into. It copies the
// hold's slot and charge verbatim; nothing is re-priced at confirmation.
type Booking struct {
	id          uuid.UUID
	groupID     *uuid.UUID
	serviceID   string
	interval    schedule.Interval
	customerID  *uuid.UUID
	chargeCents int64
	paymentRef  string
	createdAt   time.Time
}

// FromHold converts one hold. fallbackCustomer supplies the identity when the
// hold was placed anonymously; the hold's own customer always wins.
func FromHold(h *hold.Hold, paymentRef string, fallbackCustomer *uuid.UUID, now time.Time) (*Booking, error) {
	if paymentRef == "" {
		return nil, ErrEmptyPaymentRef
	}

	customerID := h.CustomerID()
	if customerID == nil {
		customerID = fallbackCustomer
	}

	var groupID *uuid.UUID
	if h.Kind() == hold.KindBundleMember {
		gid := h.GroupID()
		groupID = &gid
	}

	return &Booking{
		id:          uuid.New(),
		groupID:     groupID,
		serviceID:   h.ServiceID(),
		interval:    h.Interval(),
		customerID:  customerID,
		chargeCents: h.ChargeCents(),
		paymentRef:  paymentRef,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	groupID *uuid.UUID,
	serviceID string,
	ival schedule.Interval,
	customerID *uuid.UUID,
	chargeCents int64,
	paymentRef string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		groupID:     groupID,
		serviceID:   serviceID,
		interval:    ival,
		customerID:  customerID,
		chargeCents: chargeCents,
		paymentRef:  paymentRef,
		createdAt:   createdAt,
	}
}

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) GroupID() *uuid.UUID         { return b.groupID }
func (b *Booking) ServiceID() string           { return b.serviceID }
func (b *Booking) Interval() schedule.Interval { return b.interval }
func (b *Booking) CustomerID() *uuid.UUID      { return b.customerID }
func (b *Booking) ChargeCents() int64          { return b.chargeCents }
func (b *Booking) PaymentRef() string          { return b.paymentRef }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }
