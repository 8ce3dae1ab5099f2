package service

import "adyen-notification-reconciler/internal/core/domain"

// EventNormalizerService implements ports.EventNormalizer.
type EventNormalizerService struct{}

// NewEventNormalizer creates a new EventNormalizerService.
func NewEventNormalizer() *EventNormalizerService {
	return &EventNormalizerService{}
}

// Normalize maps the raw event code and its side channels to a canonical event.
// Unknown codes pass through unchanged.
func (n *EventNormalizerService) Normalize(item domain.NotificationItem) domain.Event {
	raw := domain.Event(item.EventCode)

	switch raw {
	case domain.EventCancelOrRefund:
		switch item.AdditionalData.Value(domain.AdditionalDataModificationAction) {
		case domain.ModificationActionCancel:
			return domain.EventCancellation
		case domain.ModificationActionRefund:
			return domain.EventRefund
		}
		return raw
	case domain.EventAuthorisation:
		if item.AdditionalData.Has(domain.AdditionalDataPaymentLinkID) {
			return domain.EventPayByLinkAuthorisation
		}
		return raw
	default:
		return raw
	}
}
