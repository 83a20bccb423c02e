package repository

import (
	"context"
	"time"

	"studio-booking/internal/domain/hold"
	"studio-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HoldRepository struct {
	db DBTX
}

func NewHoldRepository(db DBTX) *HoldRepository {
	return &HoldRepository{db: db}
}

const insertHoldSQL = `
INSERT INTO holds (
	id, group_id, group_size, kind, bundle_id, service_id,
	start_at, end_at, padded_end_at, customer_id, charge_cents,
	created_at, expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (r *HoldRepository) InsertGroup(ctx context.Context, holds []*hold.Hold) error {
	for _, h := range holds {
		_, err := r.db.Exec(ctx, insertHoldSQL,
			h.ID(), h.GroupID(), h.GroupSize(), string(h.Kind()), h.BundleID(), h.ServiceID(),
			h.Interval().Start(), h.Interval().End(), h.Interval().PaddedEnd(),
			h.CustomerID(), h.ChargeCents(), h.CreatedAt(), h.ExpiresAt(),
		)
		if err != nil {
			return wrapPgErr("failed to insert hold", err)
		}
	}
	return nil
}

const selectHoldColumns = `
	id, group_id, group_size, kind, bundle_id, service_id,
	start_at, end_at, padded_end_at, customer_id, charge_cents,
	created_at, expires_at`

func (r *HoldRepository) LiveByID(ctx context.Context, id uuid.UUID, now time.Time) (*hold.Hold, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+selectHoldColumns+`
		FROM holds
		WHERE id = $1 AND expires_at > $2`,
		id, now,
	)
	h, err := scanHold(row)
	if err != nil {
		return nil, wrapPgErr("failed to find live hold", err)
	}
	return h, nil
}

func (r *HoldRepository) LiveByGroup(ctx context.Context, groupID uuid.UUID, now time.Time) ([]*hold.Hold, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectHoldColumns+`
		FROM holds
		WHERE group_id = $1 AND expires_at > $2
		ORDER BY start_at`,
		groupID, now,
	)
	if err != nil {
		return nil, wrapPgErr("failed to query live holds by group", err)
	}
	defer rows.Close()

	var holds []*hold.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, wrapPgErr("failed to scan hold", err)
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to iterate holds", err)
	}
	return holds, nil
}

func (r *HoldRepository) Delete(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM holds WHERE id = ANY($1)`, ids); err != nil {
		return wrapPgErr("failed to delete holds", err)
	}
	return nil
}

// DeleteExpired removes dead rows. Liveness predicates already ignore them,
// so this only keeps the table small.
func (r *HoldRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM holds WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, wrapPgErr("failed to delete expired holds", err)
	}
	return tag.RowsAffected(), nil
}

func scanHold(row pgx.Row) (*hold.Hold, error) {
	var (
		id, groupID          uuid.UUID
		groupSize            int
		kind                 string
		bundleID             *string
		serviceID            string
		startAt, endAt       time.Time
		paddedEndAt          time.Time
		customerID           *uuid.UUID
		chargeCents          int64
		createdAt, expiresAt time.Time
	)
	err := row.Scan(
		&id, &groupID, &groupSize, &kind, &bundleID, &serviceID,
		&startAt, &endAt, &paddedEndAt, &customerID, &chargeCents,
		&createdAt, &expiresAt,
	)
	if err != nil {
		return nil, err
	}
	return hold.Reconstruct(
		id, groupID, groupSize, hold.Kind(kind), bundleID, serviceID,
		schedule.ReconstructInterval(startAt, endAt, paddedEndAt),
		customerID, chargeCents, createdAt, expiresAt,
	), nil
}
