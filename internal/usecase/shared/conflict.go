package shared

import (
	"context"

	"studio-booking/internal/domain/schedule"
	"studio-booking/internal/pkg/clock"
)

// ConflictChecker decides whether a candidate interval collides with existing
// occupancy for a service. Bookings and live holds block; expired holds never
// do, whether or not the sweep has removed them yet.
type ConflictChecker struct {
	clock clock.Clock
}

func NewConflictChecker(clk clock.Clock) *ConflictChecker {
	return &ConflictChecker{clock: clk}
}

func (c *ConflictChecker) Overlaps(ctx context.Context, reads SlotReads, serviceID string, ival schedule.Interval) (bool, error) {
	n, err := reads.CountOverlappingBookings(ctx, serviceID, ival.Start(), ival.PaddedEnd())
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}

	n, err = reads.CountOverlappingLiveHolds(ctx, serviceID, ival.Start(), ival.PaddedEnd(), c.clock.Now())
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
