package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModificationKind is the kind of modification requested from the gateway.
type ModificationKind string

const ModificationCapture ModificationKind = "capture"

var modificationNamespace = uuid.MustParse("6f1c2a4e-3b7d-4c59-9e2a-8d0f5b1c7a93")

// ModificationRequest is an outbound request for the gateway client.
type ModificationRequest struct {
	ID           uuid.UUID        `json:"id"`
	Kind         ModificationKind `json:"kind"`
	PaymentID    uuid.UUID        `json:"payment_id"`
	Code         string           `json:"code"`
	PSPReference string           `json:"psp_reference"`
	Amount       int64            `json:"amount"`
	Currency     string           `json:"currency"`
	RequestedAt  time.Time        `json:"requested_at"`
}

// NewCaptureRequest builds a capture request for the full payment amount.
// The ID is derived from the payment, so a redelivered request can be
// deduplicated by the consumer.
func NewCaptureRequest(p *Payment) *ModificationRequest {
	return &ModificationRequest{
		ID:           uuid.NewSHA1(modificationNamespace, []byte(string(ModificationCapture)+":"+p.ID.String())),
		Kind:         ModificationCapture,
		PaymentID:    p.ID,
		Code:         p.MethodCode,
		PSPReference: p.ExternalReference,
		Amount:       p.Amount,
		Currency:     p.Currency,
		RequestedAt:  time.Now().UTC(),
	}
}
