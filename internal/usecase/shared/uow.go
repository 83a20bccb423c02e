package shared

import (
	"context"
	"sort"
	"time"
)

// SlotKey is the lock granularity for hold creation: one service on one
// calendar day in the studio timezone.
type SlotKey struct {
	ServiceID string
	Day       string
}

func NewSlotKey(serviceID string, start time.Time, loc *time.Location) SlotKey {
	return SlotKey{ServiceID: serviceID, Day: start.In(loc).Format("2006-01-02")}
}

func (k SlotKey) String() string {
	return k.ServiceID + "@" + k.Day
}

// SortSlotKeys orders lock keys deterministically so concurrent bundle holds
// acquire them in the same order and cannot deadlock.
func SortSlotKeys(keys []SlotKey) []SlotKey {
	sorted := make([]SlotKey, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].String() < sorted[j].String() })
	return sorted
}

// Tx is the transactional view a command works through. LockSlots must be
// called before the conflict re-check so the validate+insert sequence is
// serialized per slot key.
type Tx interface {
	SlotReads
	Holds() HoldRepository
	Bookings() BookingRepository
	Customers() CustomerRepository
	Notifications() NotificationRepository
	LockSlots(ctx context.Context, keys []SlotKey) error
}

// UnitOfWork runs fn atomically: commit on nil, roll back otherwise.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
