package ports

import (
	"context"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// ReferenceStore maps gateway references to payments and refund payments.
// Lookup misses return domain.ErrReferenceNotFound.
type ReferenceStore interface {
	FindByCode(ctx context.Context, code, reference string) (*domain.Payment, error)
	FindRefundByCode(ctx context.Context, code, reference string) (*domain.RefundPayment, error)
	// Create and CreateForRefund are idempotent for the same target and fail
	// with domain.ErrReferenceConflict when the reference points elsewhere.
	Create(ctx context.Context, code string, payment *domain.Payment, reference string) error
	CreateForRefund(ctx context.Context, code, reference string, payment *domain.Payment, refund *domain.RefundPayment) error
}

// SignatureService computes and verifies notification HMAC signatures.
type SignatureService interface {
	// Sign returns the base64 HMAC-SHA256 of payload under the hex encoded key.
	Sign(hexKey string, payload string) (string, error)
	Verify(hexKey string, payload string, signature string) bool
	BuildCanonicalString(item domain.NotificationItem) string
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// MerchantConfigProvider resolves merchant account configuration by payment
// method code. Unknown codes return domain.ErrMerchantNotFound.
type MerchantConfigProvider interface {
	Get(code string) (*domain.MerchantAccount, error)
}

// MerchantAuthenticator checks the Basic auth credentials sent with a notification.
type MerchantAuthenticator interface {
	Authenticate(ctx context.Context, code, username, password string) error
}

// NotificationParser turns a raw webhook body into validated items.
type NotificationParser interface {
	Parse(ctx context.Context, code string, body []byte) ([]domain.NotificationItem, int, error)
}

// EventNormalizer maps vendor event codes to canonical events.
type EventNormalizer interface {
	Normalize(item domain.NotificationItem) domain.Event
}

// CommandResolver resolves a notification item to a command, or declines.
type CommandResolver interface {
	Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error)
}

// CommandFactory is the authoritative event to command mapping.
type CommandFactory interface {
	Create(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Command, error)
}

// CommandDispatcher delivers commands to their handlers.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd domain.Command) error
}

// CommandHandler applies one command type.
type CommandHandler interface {
	Handle(ctx context.Context, cmd domain.Command) error
}

// ModificationQueue carries outbound modification requests to the gateway client.
type ModificationQueue interface {
	Enqueue(ctx context.Context, req *domain.ModificationRequest) error
	// Dequeue returns nil, nil when the queue is empty.
	Dequeue(ctx context.Context) (*domain.ModificationRequest, error)
	Len(ctx context.Context) (int64, error)
}

// OrderPaymentStateResolver recomputes the payment state of an order.
type OrderPaymentStateResolver interface {
	Resolve(ctx context.Context, orderID uuid.UUID) error
}

// NotificationLogService records the protocol entry of a processed item.
type NotificationLogService interface {
	Record(ctx context.Context, entry *domain.NotificationLogEntry)
}

// NotificationService processes a notification request end to end.
type NotificationService interface {
	Process(ctx context.Context, code string, body []byte) (*domain.BatchResult, error)
}
