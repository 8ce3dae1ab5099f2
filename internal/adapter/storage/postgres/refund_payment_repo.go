package postgres

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const refundPaymentColumns = `id, payment_id, order_id, amount, currency, state, created_at, updated_at`

// RefundPaymentRepo implements ports.RefundPaymentRepository.
type RefundPaymentRepo struct {
	pool Pool
}

// NewRefundPaymentRepo creates a new RefundPaymentRepo.
func NewRefundPaymentRepo(pool Pool) *RefundPaymentRepo {
	return &RefundPaymentRepo{pool: pool}
}

// GetByID fetches a refund payment by UUID.
func (r *RefundPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RefundPayment, error) {
	query := `SELECT ` + refundPaymentColumns + ` FROM refund_payments WHERE id = $1`

	refund, err := scanRefundPayment(conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refund payment: %w", err)
	}
	return refund, nil
}

// ListByPaymentID fetches the refund payments of a payment, oldest first.
func (r *RefundPaymentRepo) ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*domain.RefundPayment, error) {
	query := `SELECT ` + refundPaymentColumns + ` FROM refund_payments WHERE payment_id = $1 ORDER BY created_at ASC`

	rows, err := conn(ctx, r.pool).Query(ctx, query, paymentID)
	if err != nil {
		return nil, fmt.Errorf("list refund payments: %w", err)
	}
	defer rows.Close()

	var refunds []*domain.RefundPayment
	for rows.Next() {
		refund, err := scanRefundPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan refund payment row: %w", err)
		}
		refunds = append(refunds, refund)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refund payment rows: %w", err)
	}
	return refunds, nil
}

// Save upserts a refund payment.
func (r *RefundPaymentRepo) Save(ctx context.Context, refund *domain.RefundPayment) error {
	rec := refund.Record()
	query := `INSERT INTO refund_payments (` + refundPaymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`

	_, err := conn(ctx, r.pool).Exec(ctx, query,
		rec.ID, rec.PaymentID, rec.OrderID, rec.Amount, rec.Currency, rec.State, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save refund payment: %w", err)
	}
	return nil
}

func scanRefundPayment(row pgx.Row) (*domain.RefundPayment, error) {
	var rec domain.RefundPaymentRecord
	err := row.Scan(
		&rec.ID, &rec.PaymentID, &rec.OrderID, &rec.Amount, &rec.Currency, &rec.State, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return domain.RefundPaymentFromRecord(rec), nil
}
