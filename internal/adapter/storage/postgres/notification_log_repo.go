package postgres

import (
	"context"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
)

// NotificationLogRepo implements ports.NotificationLogRepository.
type NotificationLogRepo struct {
	pool Pool
}

// NewNotificationLogRepo creates a new NotificationLogRepo.
func NewNotificationLogRepo(pool Pool) *NotificationLogRepo {
	return &NotificationLogRepo{pool: pool}
}

// Create inserts a notification log entry.
func (r *NotificationLogRepo) Create(ctx context.Context, e *domain.NotificationLogEntry) error {
	query := `INSERT INTO notification_logs (id, code, event_code, event, psp_reference, merchant_reference,
		command, outcome, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		e.ID, e.Code, e.EventCode, e.Event, e.PSPReference, e.MerchantReference,
		e.Command, e.Outcome, e.Error, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}
	return nil
}
