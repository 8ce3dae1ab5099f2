package service

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
)

// PaymentLinkCommandResolver resolves pay-by-link authorisations. Those
// payments were never initiated merchant side, so the reference for the
// authorisation pspReference is created here.
type PaymentLinkCommandResolver struct {
	links    ports.PaymentLinkRepository
	payments ports.PaymentRepository
	refs     ports.ReferenceStore
}

// NewPaymentLinkCommandResolver creates a new PaymentLinkCommandResolver.
func NewPaymentLinkCommandResolver(links ports.PaymentLinkRepository, payments ports.PaymentRepository, refs ports.ReferenceStore) *PaymentLinkCommandResolver {
	return &PaymentLinkCommandResolver{links: links, payments: payments, refs: refs}
}

func (r *PaymentLinkCommandResolver) Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error) {
	if event != domain.EventPayByLinkAuthorisation {
		return domain.Declined(), nil
	}

	link, err := r.links.GetByLinkID(ctx, item.AdditionalData.Value(domain.AdditionalDataPaymentLinkID))
	if err != nil {
		return domain.Declined(), fmt.Errorf("load payment link: %w", err)
	}
	if link == nil {
		return domain.Declined(), nil
	}

	payment, err := r.payments.GetByID(ctx, link.PaymentID)
	if err != nil {
		return domain.Declined(), fmt.Errorf("load payment: %w", err)
	}
	if payment == nil {
		return domain.Declined(), nil
	}

	if err := r.refs.Create(ctx, code, payment, item.PSPReference); err != nil {
		return domain.Declined(), err
	}
	return domain.Resolved(authorizationCommand(payment, item)), nil
}

// AutoRescueCommandResolver resolves the outcome of automatic retries of
// failed payments.
type AutoRescueCommandResolver struct {
	refs ports.ReferenceStore
}

// NewAutoRescueCommandResolver creates a new AutoRescueCommandResolver.
func NewAutoRescueCommandResolver(refs ports.ReferenceStore) *AutoRescueCommandResolver {
	return &AutoRescueCommandResolver{refs: refs}
}

func (r *AutoRescueCommandResolver) Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error) {
	data := item.AdditionalData
	if data.Has(domain.AdditionalDataRawRescueFlag) {
		return domain.Declined(), nil
	}
	if !data.Has(domain.AdditionalDataRescueScheduled) && event != domain.EventAutoRescue {
		return domain.Declined(), nil
	}

	success := item.Success.IsTrue()
	rescueScheduled := data.Bool(domain.AdditionalDataRescueScheduled)
	if success == rescueScheduled {
		return domain.Declined(), fmt.Errorf("%w: success=%t rescueScheduled=%t, psp reference %s",
			domain.ErrAmbiguousRescue, success, rescueScheduled, item.PSPReference)
	}

	payment, err := r.refs.FindByCode(ctx, code, item.LookupReference())
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.Declined(), nil
	}
	if err != nil {
		return domain.Declined(), err
	}

	if rescueScheduled {
		return domain.Resolved(domain.FlagRescueScheduled{
			Payment:           payment,
			MerchantReference: item.MerchantReference,
			PSPReference:      item.PSPReference,
			RescueReference:   data.Value(domain.AdditionalDataRescueReference),
		}), nil
	}
	return domain.Resolved(domain.AutoRescueSuccess{
		Payment:           payment,
		MerchantReference: item.MerchantReference,
		PSPReference:      item.PSPReference,
	}), nil
}

// AuthorizationCommandResolver resolves plain authorisations. Once selected
// it never declines.
type AuthorizationCommandResolver struct {
	refs ports.ReferenceStore
}

// NewAuthorizationCommandResolver creates a new AuthorizationCommandResolver.
func NewAuthorizationCommandResolver(refs ports.ReferenceStore) *AuthorizationCommandResolver {
	return &AuthorizationCommandResolver{refs: refs}
}

func (r *AuthorizationCommandResolver) Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error) {
	if event != domain.EventAuthorisation {
		return domain.Declined(), nil
	}

	payment, err := r.refs.FindByCode(ctx, code, item.LookupReference())
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.Declined(), fmt.Errorf("%w: %v", domain.ErrNoCommandResolved, err)
	}
	if err != nil {
		return domain.Declined(), err
	}
	return domain.Resolved(authorizationCommand(payment, item)), nil
}

// RefundCommandResolver resolves the outcome of refunds requested merchant
// side. An unknown refund reference declines: the gateway redelivers once
// the reference exists.
type RefundCommandResolver struct {
	refs ports.ReferenceStore
}

// NewRefundCommandResolver creates a new RefundCommandResolver.
func NewRefundCommandResolver(refs ports.ReferenceStore) *RefundCommandResolver {
	return &RefundCommandResolver{refs: refs}
}

func (r *RefundCommandResolver) Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error) {
	if !event.IsRefundFamily() {
		return domain.Declined(), nil
	}

	refund, err := r.refs.FindRefundByCode(ctx, code, item.PSPReference)
	if errors.Is(err, domain.ErrReferenceNotFound) {
		return domain.Declined(), nil
	}
	if err != nil {
		return domain.Declined(), err
	}

	payment, err := r.refs.FindByCode(ctx, code, item.PSPReference)
	if err != nil {
		return domain.Declined(), err
	}

	return domain.Resolved(domain.Refund{
		RefundPayment: refund,
		Payment:       payment,
		Succeeded:     event == domain.EventRefund && item.Success.IsTrue(),
		Notification:  item,
	}), nil
}

func authorizationCommand(payment *domain.Payment, item domain.NotificationItem) domain.Command {
	if item.Success.IsTrue() {
		return domain.AuthorizePayment{Payment: payment, Notification: item}
	}
	return domain.FailPayment{Payment: payment, Notification: item}
}
