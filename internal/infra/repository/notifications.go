package repository

import (
	"context"
	"time"
)

// NotificationRepository queues jobs in the same transaction as the state
// change they announce, so a rolled back confirmation never emails anyone.
type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, 'pending')`,
		kind, topic, payload, runAt,
	)
	if err != nil {
		return wrapPgErr("failed to create notification job", err)
	}
	return nil
}
