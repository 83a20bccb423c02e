// Package memstore is an in-memory implementation of the storage ports. It
// backs unit tests and local runs without PostgreSQL; semantics mirror the
// pgx repositories, including the unique service/start constraint on
// bookings.
package memstore

import (
	"context"
	"sync"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/hold"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type job struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type state struct {
	holds        map[uuid.UUID]*hold.Hold
	bookings     map[uuid.UUID]*booking.Booking
	customers    map[uuid.UUID]*customer.Customer
	passwords    map[uuid.UUID]string
	emailIndex   map[string]uuid.UUID
	bookedStarts map[string]struct{}
	jobs         []job
}

func newState() *state {
	return &state{
		holds:        map[uuid.UUID]*hold.Hold{},
		bookings:     map[uuid.UUID]*booking.Booking{},
		customers:    map[uuid.UUID]*customer.Customer{},
		passwords:    map[uuid.UUID]string{},
		emailIndex:   map[string]uuid.UUID{},
		bookedStarts: map[string]struct{}{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.holds {
		c.holds[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.passwords {
		c.passwords[k] = v
	}
	for k, v := range s.emailIndex {
		c.emailIndex[k] = v
	}
	for k := range s.bookedStarts {
		c.bookedStarts[k] = struct{}{}
	}
	c.jobs = append(c.jobs, s.jobs...)
	return c
}

// Store implements every storage port over process memory. One mutex covers
// the whole store; Within holds it for the duration of the transaction, which
// gives the same serialization the advisory locks give PostgreSQL.
type Store struct {
	mu sync.Mutex
	st *state
}

func New() *Store {
	return &Store{st: newState()}
}

func startKey(serviceID string, start time.Time) string {
	return serviceID + "@" + start.UTC().Format(time.RFC3339)
}

// Within runs fn against a transactional view. The state is snapshotted on
// entry and restored on error, so a failing command leaves nothing behind.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(ctx, &memTx{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

type memTx struct {
	st *state
}

func (t *memTx) Holds() shared.HoldRepository                 { return (*holdOps)(t) }
func (t *memTx) Bookings() shared.BookingRepository           { return (*bookingOps)(t) }
func (t *memTx) Customers() shared.CustomerRepository         { return (*customerOps)(t) }
func (t *memTx) Notifications() shared.NotificationRepository { return (*notificationOps)(t) }

// LockSlots is a no-op: the store mutex already serializes transactions.
func (t *memTx) LockSlots(ctx context.Context, keys []shared.SlotKey) error {
	return nil
}

func (t *memTx) CountOverlappingBookings(ctx context.Context, serviceID string, from, to time.Time) (int64, error) {
	return countOverlappingBookings(t.st, serviceID, from, to), nil
}

func (t *memTx) CountOverlappingLiveHolds(ctx context.Context, serviceID string, from, to time.Time, now time.Time) (int64, error) {
	return countOverlappingLiveHolds(t.st, serviceID, from, to, now), nil
}

func overlapsRange(start, paddedEnd, from, to time.Time) bool {
	return !start.After(to) && !paddedEnd.Before(from)
}

func countOverlappingBookings(st *state, serviceID string, from, to time.Time) int64 {
	var n int64
	for _, b := range st.bookings {
		if b.ServiceID() == serviceID && overlapsRange(b.Interval().Start(), b.Interval().PaddedEnd(), from, to) {
			n++
		}
	}
	return n
}

func countOverlappingLiveHolds(st *state, serviceID string, from, to time.Time, now time.Time) int64 {
	var n int64
	for _, h := range st.holds {
		if h.ServiceID() == serviceID && h.IsLive(now) && overlapsRange(h.Interval().Start(), h.Interval().PaddedEnd(), from, to) {
			n++
		}
	}
	return n
}

type holdOps memTx

func (o *holdOps) InsertGroup(ctx context.Context, holds []*hold.Hold) error {
	for _, h := range holds {
		if _, exists := o.st.holds[h.ID()]; exists {
			return infra.WrapRepoErr("hold already exists", nil, infra.KindDuplicateKey)
		}
	}
	for _, h := range holds {
		o.st.holds[h.ID()] = h
	}
	return nil
}

func (o *holdOps) LiveByID(ctx context.Context, id uuid.UUID, now time.Time) (*hold.Hold, error) {
	h, ok := o.st.holds[id]
	if !ok || !h.IsLive(now) {
		return nil, infra.WrapRepoErr("live hold not found", nil, infra.KindNotFound)
	}
	return h, nil
}

func (o *holdOps) LiveByGroup(ctx context.Context, groupID uuid.UUID, now time.Time) ([]*hold.Hold, error) {
	var out []*hold.Hold
	for _, h := range o.st.holds {
		if h.GroupID() == groupID && h.IsLive(now) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (o *holdOps) Delete(ctx context.Context, ids ...uuid.UUID) error {
	for _, id := range ids {
		delete(o.st.holds, id)
	}
	return nil
}

type bookingOps memTx

func (o *bookingOps) InsertMany(ctx context.Context, bookings []*booking.Booking) error {
	for _, b := range bookings {
		if _, taken := o.st.bookedStarts[startKey(b.ServiceID(), b.Interval().Start())]; taken {
			return infra.WrapRepoErr("slot start already booked", nil, infra.KindDuplicateKey)
		}
	}
	for _, b := range bookings {
		o.st.bookings[b.ID()] = b
		o.st.bookedStarts[startKey(b.ServiceID(), b.Interval().Start())] = struct{}{}
	}
	return nil
}

type customerOps memTx

func (o *customerOps) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := o.st.customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (o *customerOps) ConsumeCredit(ctx context.Context, id uuid.UUID) (bool, error) {
	c, ok := o.st.customers[id]
	if !ok {
		return false, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	if c.CreditBalance() <= 0 {
		return false, nil
	}
	o.st.customers[id] = customer.Reconstruct(c.ID(), c.Email(), c.DisplayName(), c.CreditBalance()-1, c.CreatedAt())
	return true, nil
}

type notificationOps memTx

func (o *notificationOps) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	o.st.jobs = append(o.st.jobs, job{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

// Read ports served directly by the store, outside any transaction.

func (s *Store) CountOverlappingBookings(ctx context.Context, serviceID string, from, to time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOverlappingBookings(s.st, serviceID, from, to), nil
}

func (s *Store) CountOverlappingLiveHolds(ctx context.Context, serviceID string, from, to time.Time, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOverlappingLiveHolds(s.st, serviceID, from, to, now), nil
}

func (s *Store) LiveByID(ctx context.Context, id uuid.UUID, now time.Time) (*hold.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&holdOps{st: s.st}).LiveByID(ctx, id, now)
}

func (s *Store) LiveByGroup(ctx context.Context, groupID uuid.UUID, now time.Time) ([]*hold.Hold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&holdOps{st: s.st}).LiveByGroup(ctx, groupID, now)
}

func (s *Store) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*booking.Booking
	for _, b := range s.st.bookings {
		if b.CustomerID() != nil && *b.CustomerID() == customerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&customerOps{st: s.st}).FindByID(ctx, id)
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*customer.Customer, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.st.emailIndex[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return s.st.customers[id], s.st.passwords[id], nil
}

func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, h := range s.st.holds {
		if !h.IsLive(now) {
			delete(s.st.holds, id)
			removed++
		}
	}
	return removed, nil
}

// Seed helpers for tests and local runs.

func (s *Store) AddCustomer(c *customer.Customer, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.customers[c.ID()] = c
	s.st.passwords[c.ID()] = passwordHash
	s.st.emailIndex[c.Email()] = c.ID()
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID()] = b
	s.st.bookedStarts[startKey(b.ServiceID(), b.Interval().Start())] = struct{}{}
}

func (s *Store) AddHold(h *hold.Hold) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.holds[h.ID()] = h
}

// Jobs returns queued notification topics in insertion order.
func (s *Store) Jobs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	topics := make([]string, 0, len(s.st.jobs))
	for _, j := range s.st.jobs {
		topics = append(topics, j.topic)
	}
	return topics
}
