package domain

// Event is a canonical, normalized notification event name.
type Event string

const (
	EventAuthorisation          Event = "authorisation"
	EventPayByLinkAuthorisation Event = "pay-by-link-authorisation"
	EventCapture                Event = "capture"
	EventCaptureFailed          Event = "capture_failed"
	EventCancellation           Event = "cancellation"
	EventCancelOrRefund         Event = "cancel_or_refund"
	EventRefund                 Event = "refund"
	EventRefundFailed           Event = "refund_failed"
	EventRefundReversed         Event = "refund_reversed"
	EventOfferClosed            Event = "offer_closed"
	EventAutoRescue             Event = "autorescue"
)

// Values of additionalData["modification.action"] on cancel_or_refund items.
const (
	ModificationActionCancel = "cancel"
	ModificationActionRefund = "refund"
)

// IsRefundFamily reports whether the event describes the outcome of a refund.
func (e Event) IsRefundFamily() bool {
	return e == EventRefund || e == EventRefundFailed || e == EventRefundReversed
}
