package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReferenceTarget is the aggregate a Reference points to: exactly one of
// PaymentTarget or RefundTarget.
type ReferenceTarget interface {
	// OwningPaymentID is the payment the target belongs to.
	OwningPaymentID() uuid.UUID
	isReferenceTarget()
}

// PaymentTarget links a reference to a payment.
type PaymentTarget struct {
	PaymentID uuid.UUID
}

func (t PaymentTarget) OwningPaymentID() uuid.UUID { return t.PaymentID }
func (PaymentTarget) isReferenceTarget()           {}

// RefundTarget links a reference to a refund payment of a payment.
type RefundTarget struct {
	PaymentID       uuid.UUID
	RefundPaymentID uuid.UUID
}

func (t RefundTarget) OwningPaymentID() uuid.UUID { return t.PaymentID }
func (RefundTarget) isReferenceTarget()           {}

// Reference maps a gateway reference, scoped by payment method code, to a
// payment or a refund payment.
type Reference struct {
	ID           uuid.UUID
	Code         string
	PSPReference string
	Target       ReferenceTarget
	CreatedAt    time.Time
}

// NewPaymentReference creates a reference pointing to a payment.
func NewPaymentReference(code, pspReference string, payment *Payment) *Reference {
	return &Reference{
		ID:           uuid.New(),
		Code:         code,
		PSPReference: pspReference,
		Target:       PaymentTarget{PaymentID: payment.ID},
		CreatedAt:    time.Now().UTC(),
	}
}

// NewRefundReference creates a reference pointing to a refund payment.
func NewRefundReference(code, pspReference string, payment *Payment, refund *RefundPayment) *Reference {
	return &Reference{
		ID:           uuid.New(),
		Code:         code,
		PSPReference: pspReference,
		Target:       RefundTarget{PaymentID: payment.ID, RefundPaymentID: refund.ID},
		CreatedAt:    time.Now().UTC(),
	}
}

// IsRefund reports whether the reference points to a refund payment.
func (r *Reference) IsRefund() bool {
	_, ok := r.Target.(RefundTarget)
	return ok
}
