package memory

import "context"

// Store bundles the in-memory repositories behind one value.
type Store struct {
	References       *ReferenceRepo
	Payments         *PaymentRepo
	Refunds          *RefundPaymentRepo
	Orders           *OrderRepo
	PaymentLinks     *PaymentLinkRepo
	NotificationLogs *NotificationLogRepo
	Transactor       *Transactor
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		References:       NewReferenceRepo(),
		Payments:         NewPaymentRepo(),
		Refunds:          NewRefundPaymentRepo(),
		Orders:           NewOrderRepo(),
		PaymentLinks:     NewPaymentLinkRepo(),
		NotificationLogs: NewNotificationLogRepo(),
		Transactor:       NewTransactor(),
	}
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(_ context.Context) error { return nil }

// Name returns the dependency name.
func (s *Store) Name() string { return "memory" }
