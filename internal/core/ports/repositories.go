package ports

import (
	"context"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// Repositories return nil, nil when the requested row does not exist.

// ReferenceRepository persists gateway references.
type ReferenceRepository interface {
	// Create stores ref. An existing (code, pspReference) pair is left
	// untouched and reported as domain.ErrReferenceExists.
	Create(ctx context.Context, ref *domain.Reference) error
	GetByCode(ctx context.Context, code, pspReference string) (*domain.Reference, error)
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	// ListByOrderID returns the payments of an order, oldest first.
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) error
}

// RefundPaymentRepository defines persistence operations for refund payments.
type RefundPaymentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RefundPayment, error)
	ListByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*domain.RefundPayment, error)
	Save(ctx context.Context, refund *domain.RefundPayment) error
}

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
}

// PaymentLinkRepository resolves pay-by-link identifiers.
type PaymentLinkRepository interface {
	Create(ctx context.Context, link *domain.PaymentLink) error
	GetByLinkID(ctx context.Context, linkID string) (*domain.PaymentLink, error)
}

// NotificationLogRepository stores the protocol of processed notification items.
type NotificationLogRepository interface {
	Create(ctx context.Context, entry *domain.NotificationLogEntry) error
}

// Transactor runs fn in one storage transaction carried by ctx. Repositories
// called with that ctx take part in it; nested calls join the outer one.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
