package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderPaymentState is the payment-side state of an order.
type OrderPaymentState string

const (
	OrderPaymentAwaitingPayment OrderPaymentState = "awaiting_payment"
	OrderPaymentAuthorized      OrderPaymentState = "authorized"
	OrderPaymentPaid            OrderPaymentState = "paid"
	OrderPaymentCancelled       OrderPaymentState = "cancelled"
	OrderPaymentRefunded        OrderPaymentState = "refunded"
)

// Order owns the payments and refunds made for it.
type Order struct {
	ID        uuid.UUID
	Number    string
	Total     int64
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time

	paymentState OrderPaymentState
}

// NewOrder creates an order awaiting payment.
func NewOrder(number string, total int64, currency string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:           uuid.New(),
		Number:       number,
		Total:        total,
		Currency:     currency,
		CreatedAt:    now,
		UpdatedAt:    now,
		paymentState: OrderPaymentAwaitingPayment,
	}
}

// PaymentState returns the order payment state.
func (o *Order) PaymentState() OrderPaymentState {
	return o.paymentState
}

func (o *Order) stateIn(g Graph) (string, bool) {
	if g != GraphOrderPayment {
		return "", false
	}
	return string(o.paymentState), true
}

func (o *Order) setStateIn(_ Graph, state string) {
	o.paymentState = OrderPaymentState(state)
	o.UpdatedAt = time.Now().UTC()
}

// OrderRecord is the persistence snapshot of an Order.
type OrderRecord struct {
	ID           uuid.UUID
	Number       string
	Total        int64
	Currency     string
	PaymentState OrderPaymentState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record snapshots the order for persistence.
func (o *Order) Record() OrderRecord {
	return OrderRecord{
		ID:           o.ID,
		Number:       o.Number,
		Total:        o.Total,
		Currency:     o.Currency,
		PaymentState: o.paymentState,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// OrderFromRecord rebuilds an order from its persisted snapshot.
func OrderFromRecord(r OrderRecord) *Order {
	return &Order{
		ID:           r.ID,
		Number:       r.Number,
		Total:        r.Total,
		Currency:     r.Currency,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
		paymentState: r.PaymentState,
	}
}
