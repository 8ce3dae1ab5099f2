package postgres

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ReferenceRepo implements ports.ReferenceRepository.
type ReferenceRepo struct {
	pool Pool
}

// NewReferenceRepo creates a new ReferenceRepo.
func NewReferenceRepo(pool Pool) *ReferenceRepo {
	return &ReferenceRepo{pool: pool}
}

// Create inserts ref. An existing (code, psp_reference) row wins and yields
// domain.ErrReferenceExists.
func (r *ReferenceRepo) Create(ctx context.Context, ref *domain.Reference) error {
	query := `INSERT INTO adyen_references (id, code, psp_reference, payment_id, refund_payment_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code, psp_reference) DO NOTHING`

	var refundID *uuid.UUID
	if t, ok := ref.Target.(domain.RefundTarget); ok {
		refundID = &t.RefundPaymentID
	}

	tag, err := conn(ctx, r.pool).Exec(ctx, query,
		ref.ID, ref.Code, ref.PSPReference, ref.Target.OwningPaymentID(), refundID, ref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reference: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrReferenceExists, ref.Code, ref.PSPReference)
	}
	return nil
}

// GetByCode fetches the reference of a gateway pspReference.
func (r *ReferenceRepo) GetByCode(ctx context.Context, code, pspReference string) (*domain.Reference, error) {
	query := `SELECT id, code, psp_reference, payment_id, refund_payment_id, created_at
		FROM adyen_references WHERE code = $1 AND psp_reference = $2`

	ref := &domain.Reference{}
	var paymentID uuid.UUID
	var refundID *uuid.UUID
	err := conn(ctx, r.pool).QueryRow(ctx, query, code, pspReference).Scan(
		&ref.ID, &ref.Code, &ref.PSPReference, &paymentID, &refundID, &ref.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reference: %w", err)
	}

	if refundID != nil {
		ref.Target = domain.RefundTarget{PaymentID: paymentID, RefundPaymentID: *refundID}
	} else {
		ref.Target = domain.PaymentTarget{PaymentID: paymentID}
	}
	return ref, nil
}
