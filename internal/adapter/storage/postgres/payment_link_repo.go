package postgres

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentLinkRepo implements ports.PaymentLinkRepository.
type PaymentLinkRepo struct {
	pool Pool
}

// NewPaymentLinkRepo creates a new PaymentLinkRepo.
func NewPaymentLinkRepo(pool Pool) *PaymentLinkRepo {
	return &PaymentLinkRepo{pool: pool}
}

// Create inserts a payment link.
func (r *PaymentLinkRepo) Create(ctx context.Context, link *domain.PaymentLink) error {
	query := `INSERT INTO payment_links (link_id, payment_id, created_at) VALUES ($1, $2, $3)`

	_, err := conn(ctx, r.pool).Exec(ctx, query, link.LinkID, link.PaymentID, link.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment link: %w", err)
	}
	return nil
}

// GetByLinkID fetches a payment link by its gateway identifier.
func (r *PaymentLinkRepo) GetByLinkID(ctx context.Context, linkID string) (*domain.PaymentLink, error) {
	query := `SELECT link_id, payment_id, created_at FROM payment_links WHERE link_id = $1`

	link := &domain.PaymentLink{}
	err := conn(ctx, r.pool).QueryRow(ctx, query, linkID).Scan(&link.LinkID, &link.PaymentID, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment link: %w", err)
	}
	return link, nil
}
