package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefundState represents the lifecycle state of a refund payment.
type RefundState string

const (
	RefundStateNew       RefundState = "new"
	RefundStateCompleted RefundState = "completed"
	RefundStateFailed    RefundState = "failed"
)

// RefundPayment is a refund issued against a payment.
type RefundPayment struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	Amount    int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time

	state RefundState
}

// NewRefundPayment creates a refund in state new.
func NewRefundPayment(payment *Payment, amount int64, currency string) *RefundPayment {
	now := time.Now().UTC()
	return &RefundPayment{
		ID:        uuid.New(),
		PaymentID: payment.ID,
		OrderID:   payment.OrderID,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
		state:     RefundStateNew,
	}
}

// State returns the current state.
func (r *RefundPayment) State() RefundState {
	return r.state
}

func (r *RefundPayment) stateIn(g Graph) (string, bool) {
	if g != GraphRefundPayment {
		return "", false
	}
	return string(r.state), true
}

func (r *RefundPayment) setStateIn(_ Graph, state string) {
	r.state = RefundState(state)
	r.UpdatedAt = time.Now().UTC()
}

// RefundPaymentRecord is the persistence snapshot of a RefundPayment.
type RefundPaymentRecord struct {
	ID        uuid.UUID
	PaymentID uuid.UUID
	OrderID   uuid.UUID
	Amount    int64
	Currency  string
	State     RefundState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record snapshots the refund for persistence.
func (r *RefundPayment) Record() RefundPaymentRecord {
	return RefundPaymentRecord{
		ID:        r.ID,
		PaymentID: r.PaymentID,
		OrderID:   r.OrderID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		State:     r.state,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// RefundPaymentFromRecord rebuilds a refund from its persisted snapshot.
func RefundPaymentFromRecord(r RefundPaymentRecord) *RefundPayment {
	return &RefundPayment{
		ID:        r.ID,
		PaymentID: r.PaymentID,
		OrderID:   r.OrderID,
		Amount:    r.Amount,
		Currency:  r.Currency,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		state:     r.State,
	}
}
