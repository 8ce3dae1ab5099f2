package postgres

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByID fetches an order by UUID.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, number, total, currency, payment_state, created_at, updated_at
		FROM orders WHERE id = $1`

	var rec domain.OrderRecord
	err := conn(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Number, &rec.Total, &rec.Currency, &rec.PaymentState, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return domain.OrderFromRecord(rec), nil
}

// Save upserts an order.
func (r *OrderRepo) Save(ctx context.Context, order *domain.Order) error {
	rec := order.Record()
	query := `INSERT INTO orders (id, number, total, currency, payment_state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET payment_state = EXCLUDED.payment_state, updated_at = EXCLUDED.updated_at`

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		rec.ID, rec.Number, rec.Total, rec.Currency, rec.PaymentState, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}
