package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentLink is a pay-by-link identifier issued for a payment.
type PaymentLink struct {
	LinkID    string
	PaymentID uuid.UUID
	CreatedAt time.Time
}
