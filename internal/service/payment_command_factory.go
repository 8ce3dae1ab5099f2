package service

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
)

type commandBuilder func(payment *domain.Payment, item domain.NotificationItem) domain.Command

// PaymentCommandFactory implements ports.CommandFactory: the event to
// command mapping for items the resolver chain could not place.
type PaymentCommandFactory struct {
	refs     ports.ReferenceStore
	builders map[domain.Event]commandBuilder
}

// NewPaymentCommandFactory creates a new PaymentCommandFactory.
func NewPaymentCommandFactory(refs ports.ReferenceStore) *PaymentCommandFactory {
	fail := func(p *domain.Payment, item domain.NotificationItem) domain.Command {
		return domain.FailPayment{Payment: p, Notification: item}
	}
	return &PaymentCommandFactory{
		refs: refs,
		builders: map[domain.Event]commandBuilder{
			domain.EventAuthorisation: authorizationCommand,
			domain.EventCapture: func(p *domain.Payment, item domain.NotificationItem) domain.Command {
				if item.Success.IsTrue() {
					return domain.CapturePayment{Payment: p, Notification: item}
				}
				return fail(p, item)
			},
			domain.EventCaptureFailed: fail,
			domain.EventCancellation: func(p *domain.Payment, item domain.NotificationItem) domain.Command {
				return domain.CancelPayment{Payment: p, Notification: item}
			},
			domain.EventRefund: func(p *domain.Payment, item domain.NotificationItem) domain.Command {
				return domain.CreateRefund{Payment: p, Notification: item}
			},
			domain.EventOfferClosed: fail,
		},
	}
}

// Create returns domain.ErrUnmappedAction for events without a mapping and
// domain.ErrNoCommandResolved when the owning payment is unknown.
func (f *PaymentCommandFactory) Create(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Command, error) {
	build, ok := f.builders[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnmappedAction, event)
	}

	payment, err := f.refs.FindByCode(ctx, code, item.LookupReference())
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoCommandResolved, err)
	}
	if err != nil {
		return nil, err
	}
	cmd := build(payment, item)
	if refund, ok := cmd.(domain.CreateRefund); ok {
		refund.Code = code
		cmd = refund
	}
	return cmd, nil
}
