package domain

import (
	"strings"
	"time"
)

// Success is the tri-state outcome flag carried by a notification item.
type Success int8

const (
	SuccessUnknown Success = iota
	SuccessTrue
	SuccessFalse
)

// ParseSuccess converts the vendor "true"/"false" string into a Success.
// Anything else is SuccessUnknown.
func ParseSuccess(raw string) Success {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true":
		return SuccessTrue
	case "false":
		return SuccessFalse
	default:
		return SuccessUnknown
	}
}

// IsTrue reports whether the gateway explicitly flagged the event as successful.
func (s Success) IsTrue() bool {
	return s == SuccessTrue
}

// SignatureValue returns the literal used in the HMAC digest.
// Unknown is signed as "false".
func (s Success) SignatureValue() string {
	if s == SuccessTrue {
		return "true"
	}
	return "false"
}

func (s Success) String() string {
	switch s {
	case SuccessTrue:
		return "true"
	case SuccessFalse:
		return "false"
	default:
		return "unknown"
	}
}

// Amount is a monetary value in minor units.
type Amount struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Well-known additionalData keys.
const (
	AdditionalDataHMACSignature      = "hmacSignature"
	AdditionalDataModificationAction = "modification.action"
	AdditionalDataPaymentLinkID      = "paymentLinkId"
	AdditionalDataRescueScheduled    = "retry.rescueScheduled"
	AdditionalDataRescueReference    = "retry.rescueReference"
	// AdditionalDataRawRescueFlag marks an item that was already flagged for rescue.
	AdditionalDataRawRescueFlag = "rescueScheduled"
)

// NotificationItem is one validated unit of a webhook payload.
type NotificationItem struct {
	EventCode           string
	PSPReference        string
	OriginalReference   string
	MerchantReference   string
	MerchantAccountCode string
	Amount              Amount
	Success             Success
	Reason              string
	EventDate           *time.Time
	AdditionalData      AdditionalData
	PaymentMethodCode   string
}

// LookupReference returns the reference that identifies the aggregate the
// item refers to: originalReference for follow-up events, pspReference otherwise.
func (n NotificationItem) LookupReference() string {
	if n.OriginalReference != "" {
		return n.OriginalReference
	}
	return n.PSPReference
}
