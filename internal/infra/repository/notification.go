package repository

import (
	"context"
	"time"

	"relove/internal/infra"
	"relove/internal/infra/db"

	"github.com/google/uuid"
)

// NotificationRepository persists outbox jobs picked up by a delivery
// worker outside the request path. Writing the job in the same
// transaction as the triggering change keeps the two consistent.
type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (id, kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
