package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/booking"
	"studio-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, group_id, service_id, start_at, end_at, padded_end_at,
	customer_id, charge_cents, payment_ref, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *BookingRepository) InsertMany(ctx context.Context, bookings []*booking.Booking) error {
	for _, b := range bookings {
		_, err := r.db.Exec(ctx, insertBookingSQL,
			b.ID(), b.GroupID(), b.ServiceID(),
			b.Interval().Start(), b.Interval().End(), b.Interval().PaddedEnd(),
			b.CustomerID(), b.ChargeCents(), b.PaymentRef(), b.CreatedAt(),
		)
		if err != nil {
			return wrapPgErr("failed to insert booking", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, group_id, service_id, start_at, end_at, padded_end_at,
		       customer_id, charge_cents, payment_ref, created_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY start_at`,
		customerID,
	)
	if err != nil {
		return nil, wrapPgErr("failed to query bookings by customer", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		var (
			id                          uuid.UUID
			groupID                     *uuid.UUID
			serviceID                   string
			startAt, endAt, paddedEndAt time.Time
			custID                      *uuid.UUID
			chargeCents                 int64
			paymentRef                  string
			createdAt                   time.Time
		)
		if err := rows.Scan(&id, &groupID, &serviceID, &startAt, &endAt, &paddedEndAt,
			&custID, &chargeCents, &paymentRef, &createdAt); err != nil {
			return nil, wrapPgErr("failed to scan booking", err)
		}
		bookings = append(bookings, booking.Reconstruct(
			id, groupID, serviceID,
			schedule.ReconstructInterval(startAt, endAt, paddedEndAt),
			custID, chargeCents, paymentRef, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate bookings", err)
	}
	return bookings, nil
}
