package shared

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/customer"
	"studio-booking/internal/domain/hold"

	"github.com/google/uuid"
)

// One repository interface per entity. Implementations exist for PostgreSQL
// (internal/infra/repository) and in-memory (internal/infra/memstore); the
// usecase layer never knows which one it got.

// SlotReads answers occupancy questions for the conflict checker. The range
// arguments are the candidate's start and padded end; implementations match
// rows whose own padded interval touches that range, bounds inclusive.
type SlotReads interface {
	CountOverlappingBookings(ctx context.Context, serviceID string, from, to time.Time) (int64, error)
	CountOverlappingLiveHolds(ctx context.Context, serviceID string, from, to time.Time, now time.Time) (int64, error)
}

type HoldRepository interface {
	InsertGroup(ctx context.Context, holds []*hold.Hold) error
	LiveByID(ctx context.Context, id uuid.UUID, now time.Time) (*hold.Hold, error)
	LiveByGroup(ctx context.Context, groupID uuid.UUID, now time.Time) ([]*hold.Hold, error)
	Delete(ctx context.Context, ids ...uuid.UUID) error
}

type BookingRepository interface {
	InsertMany(ctx context.Context, bookings []*booking.Booking) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	// ConsumeCredit decrements the balance by one if it is positive and
	// reports whether a credit was actually consumed.
	ConsumeCredit(ctx context.Context, id uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// Read ports for the query side and for collaborators that work outside a
// transaction.

type HoldReads interface {
	LiveByID(ctx context.Context, id uuid.UUID, now time.Time) (*hold.Hold, error)
	LiveByGroup(ctx context.Context, groupID uuid.UUID, now time.Time) ([]*hold.Hold, error)
}

type BookingReads interface {
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error)
}

type CustomerReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*customer.Customer, string, error)
}

// HoldSweeper is the hygiene port: physically removes holds whose expiry has
// passed. Correctness never depends on it running.
type HoldSweeper interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
