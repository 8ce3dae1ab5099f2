package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// PaymentState represents the lifecycle state of a payment.
type PaymentState string

const (
	PaymentStateNew                PaymentState = "new"
	PaymentStateProcessing         PaymentState = "processing"
	PaymentStateAuthorized         PaymentState = "authorized"
	PaymentStateCompleted          PaymentState = "completed"
	PaymentStateFailed             PaymentState = "failed"
	PaymentStateCancelled          PaymentState = "cancelled"
	PaymentStateProcessingReversal PaymentState = "processing_reversal"
	PaymentStateRefunded           PaymentState = "refunded"
)

// CaptureMode tells whether capture follows authorization automatically.
type CaptureMode string

const (
	CaptureModeAutomatic CaptureMode = "automatic"
	CaptureModeManual    CaptureMode = "manual"
)

// Payment detail keys.
const (
	DetailPSPReference      = "pspReference"
	DetailMerchantReference = "merchantReference"
	DetailResultCode        = "resultCode"
	DetailRefusalReason     = "refusalReason"
	DetailRescueReference   = "rescueReference"
)

// Payment is a single payment attempt for an order.
type Payment struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	MethodCode        string
	GatewayName       string
	ExternalReference string
	Amount            int64
	Currency          string
	CaptureMode       CaptureMode
	CaptureRequested  bool
	RescueScheduled   bool
	Details           map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	state PaymentState
}

// NewPayment creates a payment in state new.
func NewPayment(orderID uuid.UUID, methodCode, gatewayName string, amount int64, currency string, mode CaptureMode) *Payment {
	now := time.Now().UTC()
	return &Payment{
		ID:          uuid.New(),
		OrderID:     orderID,
		MethodCode:  methodCode,
		GatewayName: gatewayName,
		Amount:      amount,
		Currency:    currency,
		CaptureMode: mode,
		Details:     make(map[string]string),
		CreatedAt:   now,
		UpdatedAt:   now,
		state:       PaymentStateNew,
	}
}

// State returns the current state.
func (p *Payment) State() PaymentState {
	return p.state
}

// HasExternalReference reports whether the gateway already assigned a reference.
func (p *Payment) HasExternalReference() bool {
	return p.ExternalReference != ""
}

// EffectiveCaptureMode returns the payment's capture mode, falling back to
// def and then to manual capture.
func (p *Payment) EffectiveCaptureMode(def CaptureMode) CaptureMode {
	switch {
	case p.CaptureMode != "":
		return p.CaptureMode
	case def != "":
		return def
	default:
		return CaptureModeManual
	}
}

// CanBeCancelled is the cancellation-eligibility predicate: money has not been
// captured and no capture is on its way.
func (p *Payment) CanBeCancelled() bool {
	switch p.state {
	case PaymentStateCompleted, PaymentStateRefunded:
		return false
	}
	return !p.CaptureRequested
}

// SetDetail records a gateway detail on the payment.
func (p *Payment) SetDetail(key, value string) {
	if p.Details == nil {
		p.Details = make(map[string]string)
	}
	p.Details[key] = value
}

func (p *Payment) stateIn(g Graph) (string, bool) {
	if g != GraphPayment {
		return "", false
	}
	return string(p.state), true
}

func (p *Payment) setStateIn(_ Graph, state string) {
	p.state = PaymentState(state)
	p.UpdatedAt = time.Now().UTC()
}

// PaymentRecord is the persistence snapshot of a Payment.
type PaymentRecord struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	MethodCode        string
	GatewayName       string
	ExternalReference string
	Amount            int64
	Currency          string
	CaptureMode       CaptureMode
	CaptureRequested  bool
	RescueScheduled   bool
	State             PaymentState
	Details           map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Record snapshots the payment for persistence.
func (p *Payment) Record() PaymentRecord {
	return PaymentRecord{
		ID:                p.ID,
		OrderID:           p.OrderID,
		MethodCode:        p.MethodCode,
		GatewayName:       p.GatewayName,
		ExternalReference: p.ExternalReference,
		Amount:            p.Amount,
		Currency:          p.Currency,
		CaptureMode:       p.CaptureMode,
		CaptureRequested:  p.CaptureRequested,
		RescueScheduled:   p.RescueScheduled,
		State:             p.state,
		Details:           maps.Clone(p.Details),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// PaymentFromRecord rebuilds a payment from its persisted snapshot.
func PaymentFromRecord(r PaymentRecord) *Payment {
	details := maps.Clone(r.Details)
	if details == nil {
		details = make(map[string]string)
	}
	return &Payment{
		ID:                r.ID,
		OrderID:           r.OrderID,
		MethodCode:        r.MethodCode,
		GatewayName:       r.GatewayName,
		ExternalReference: r.ExternalReference,
		Amount:            r.Amount,
		Currency:          r.Currency,
		CaptureMode:       r.CaptureMode,
		CaptureRequested:  r.CaptureRequested,
		RescueScheduled:   r.RescueScheduled,
		Details:           details,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		state:             r.State,
	}
}
