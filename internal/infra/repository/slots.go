package repository

import (
	"context"
	"time"
)

// SlotReadStore answers occupancy counts for the conflict checker. The range
// comparison is inclusive on both bounds to match the back-to-back rule.
type SlotReadStore struct {
	db DBTX
}

func NewSlotReadStore(db DBTX) *SlotReadStore {
	return &SlotReadStore{db: db}
}

func (s *SlotReadStore) CountOverlappingBookings(ctx context.Context, serviceID string, from, to time.Time) (int64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM bookings
		WHERE service_id = $1 AND start_at <= $3 AND padded_end_at >= $2`,
		serviceID, from, to,
	)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, wrapPgErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

func (s *SlotReadStore) CountOverlappingLiveHolds(ctx context.Context, serviceID string, from, to time.Time, now time.Time) (int64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM holds
		WHERE service_id = $1 AND expires_at > $4
		  AND start_at <= $3 AND padded_end_at >= $2`,
		serviceID, from, to, now,
	)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, wrapPgErr("failed to count overlapping live holds", err)
	}
	return count, nil
}
