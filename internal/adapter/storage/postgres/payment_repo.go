package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, order_id, method_code, gateway_name, external_reference, amount, currency,
		capture_mode, capture_requested, rescue_scheduled, state, details, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// GetByID fetches a payment by UUID.
func (r *PaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(conn(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListByOrderID fetches the payments of an order, oldest first.
func (r *PaymentRepo) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1 ORDER BY created_at ASC`

	rows, err := conn(ctx, r.pool).Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}
	return payments, nil
}

// Save upserts a payment.
func (r *PaymentRepo) Save(ctx context.Context, payment *domain.Payment) error {
	rec := payment.Record()
	details, err := json.Marshal(rec.Details)
	if err != nil {
		return fmt.Errorf("encode payment details: %w", err)
	}

	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			external_reference = EXCLUDED.external_reference,
			capture_requested = EXCLUDED.capture_requested,
			rescue_scheduled = EXCLUDED.rescue_scheduled,
			state = EXCLUDED.state,
			details = EXCLUDED.details,
			updated_at = EXCLUDED.updated_at`

	_, err = conn(ctx, r.pool).Exec(ctx, query,
		rec.ID, rec.OrderID, rec.MethodCode, rec.GatewayName, rec.ExternalReference,
		rec.Amount, rec.Currency, rec.CaptureMode, rec.CaptureRequested, rec.RescueScheduled,
		rec.State, details, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var rec domain.PaymentRecord
	var details []byte
	err := row.Scan(
		&rec.ID, &rec.OrderID, &rec.MethodCode, &rec.GatewayName, &rec.ExternalReference,
		&rec.Amount, &rec.Currency, &rec.CaptureMode, &rec.CaptureRequested, &rec.RescueScheduled,
		&rec.State, &details, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &rec.Details); err != nil {
			return nil, fmt.Errorf("decode payment details: %w", err)
		}
	}
	return domain.PaymentFromRecord(rec), nil
}
