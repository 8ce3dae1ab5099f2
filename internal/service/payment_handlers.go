package service

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// HandlerFunc adapts a typed function to ports.CommandHandler.
type HandlerFunc[C domain.Command] func(ctx context.Context, cmd C) error

func (f HandlerFunc[C]) Handle(ctx context.Context, cmd domain.Command) error {
	typed, ok := cmd.(C)
	if !ok {
		return fmt.Errorf("unexpected command %T", cmd)
	}
	return f(ctx, typed)
}

// PaymentCommandHandlers applies payment commands through the state machine
// and persists the result.
type PaymentCommandHandlers struct {
	sm        *domain.StateMachine
	payments  ports.PaymentRepository
	refunds   ports.RefundPaymentRepository
	refs      ports.ReferenceStore
	queue     ports.ModificationQueue
	orders    ports.OrderPaymentStateResolver
	merchants ports.MerchantConfigProvider
	tx        ports.Transactor
	log       zerolog.Logger
}

// NewPaymentCommandHandlers creates the payment command handlers.
func NewPaymentCommandHandlers(
	sm *domain.StateMachine,
	payments ports.PaymentRepository,
	refunds ports.RefundPaymentRepository,
	refs ports.ReferenceStore,
	queue ports.ModificationQueue,
	orders ports.OrderPaymentStateResolver,
	merchants ports.MerchantConfigProvider,
	tx ports.Transactor,
	log zerolog.Logger,
) *PaymentCommandHandlers {
	return &PaymentCommandHandlers{
		sm:        sm,
		payments:  payments,
		refunds:   refunds,
		refs:      refs,
		queue:     queue,
		orders:    orders,
		merchants: merchants,
		tx:        tx,
		log:       log,
	}
}

// Register binds every payment command to its handler.
func (h *PaymentCommandHandlers) Register(d *CommandDispatcherService) {
	d.Register(domain.CommandAuthorizePayment, HandlerFunc[domain.AuthorizePayment](h.authorize))
	d.Register(domain.CommandFailPayment, HandlerFunc[domain.FailPayment](h.fail))
	d.Register(domain.CommandCapturePayment, HandlerFunc[domain.CapturePayment](h.capture))
	d.Register(domain.CommandCancelPayment, HandlerFunc[domain.CancelPayment](h.cancel))
	d.Register(domain.CommandRefund, HandlerFunc[domain.Refund](h.refund))
	d.Register(domain.CommandCreateRefund, HandlerFunc[domain.CreateRefund](h.createRefund))
	d.Register(domain.CommandFlagRescueScheduled, HandlerFunc[domain.FlagRescueScheduled](h.flagRescueScheduled))
	d.Register(domain.CommandAutoRescueSuccess, HandlerFunc[domain.AutoRescueSuccess](h.autoRescueSuccess))
	d.Register(domain.CommandRequestCapture, HandlerFunc[domain.RequestCapture](h.requestCapture))
}

// authorize completes automatically captured payments, which the complete
// interceptor reroutes to a capture request, and authorizes the others.
func (h *PaymentCommandHandlers) authorize(ctx context.Context, cmd domain.AuthorizePayment) error {
	p := cmd.Payment
	recordNotification(p, cmd.Notification)
	if !p.HasExternalReference() {
		p.ExternalReference = cmd.Notification.PSPReference
	}

	t := domain.TransitionAuthorize
	if captureMode(h.merchants, p) == domain.CaptureModeAutomatic {
		t = domain.TransitionComplete
	}
	return h.transition(ctx, p, t)
}

func (h *PaymentCommandHandlers) fail(ctx context.Context, cmd domain.FailPayment) error {
	p := cmd.Payment
	recordNotification(p, cmd.Notification)
	if cmd.Notification.Reason != "" {
		p.SetDetail(domain.DetailRefusalReason, cmd.Notification.Reason)
	}
	return h.transition(ctx, p, domain.TransitionFail)
}

func (h *PaymentCommandHandlers) capture(ctx context.Context, cmd domain.CapturePayment) error {
	return h.transition(ctx, cmd.Payment, domain.TransitionCapture)
}

func (h *PaymentCommandHandlers) cancel(ctx context.Context, cmd domain.CancelPayment) error {
	return h.transition(ctx, cmd.Payment, domain.TransitionCancel)
}

// refund settles a merchant requested refund and refunds the payment once
// its completed refunds cover the payment amount.
func (h *PaymentCommandHandlers) refund(ctx context.Context, cmd domain.Refund) error {
	t := domain.TransitionFail
	if cmd.Succeeded {
		t = domain.TransitionComplete
	}

	var paymentChanged bool
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		applied, err := h.sm.Apply(ctx, cmd.RefundPayment, domain.GraphRefundPayment, t)
		if err != nil {
			return err
		}
		if !applied {
			h.skipped(cmd.RefundPayment, cmd.RefundPayment.ID.String(), domain.GraphRefundPayment, t)
			return nil
		}
		if err := h.refunds.Save(ctx, cmd.RefundPayment); err != nil {
			return fmt.Errorf("save refund payment: %w", err)
		}
		if !cmd.Succeeded {
			return nil
		}
		paymentChanged, err = h.refundIfCovered(ctx, cmd.Payment)
		return err
	})
	if err != nil {
		return err
	}
	if paymentChanged {
		h.resolveOrder(ctx, cmd.Payment)
	}
	return nil
}

// createRefund settles a refund notification whose refund reference is not
// stored yet. A pending merchant refund of the same amount is adopted and
// bound to the reference; otherwise the refund was issued gateway side and a
// completed refund payment is recorded for it. The writes share one
// transaction.
func (h *PaymentCommandHandlers) createRefund(ctx context.Context, cmd domain.CreateRefund) error {
	item, p := cmd.Notification, cmd.Payment
	code := cmd.Code
	if code == "" {
		code = p.MethodCode
	}

	var paymentChanged bool
	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := h.refs.FindRefundByCode(ctx, code, item.PSPReference)
		switch {
		case err == nil:
			h.log.Debug().Str("psp_reference", item.PSPReference).Msg("refund already recorded")
			return nil
		case !errors.Is(err, domain.ErrReferenceNotFound):
			return err
		}

		amount, currency := item.Amount.Value, item.Amount.Currency
		if currency == "" {
			amount, currency = p.Amount, p.Currency
		}

		refund, err := h.pendingRefund(ctx, p, amount, currency)
		if err != nil {
			return err
		}
		adopted := refund != nil
		if !adopted {
			if !item.Success.IsTrue() {
				h.log.Info().
					Str("psp_reference", item.PSPReference).
					Msg("unsuccessful gateway refund ignored")
				return nil
			}
			refund = domain.NewRefundPayment(p, amount, currency)
		}

		t := domain.TransitionFail
		if item.Success.IsTrue() {
			t = domain.TransitionComplete
		}
		if _, err := h.sm.Apply(ctx, refund, domain.GraphRefundPayment, t); err != nil {
			return err
		}
		if err := h.refunds.Save(ctx, refund); err != nil {
			return fmt.Errorf("save refund payment: %w", err)
		}
		if err := h.refs.CreateForRefund(ctx, code, item.PSPReference, p, refund); err != nil {
			return err
		}

		h.log.Info().
			Str("payment_id", p.ID.String()).
			Str("refund_payment_id", refund.ID.String()).
			Str("psp_reference", item.PSPReference).
			Bool("adopted", adopted).
			Str("state", string(refund.State())).
			Msg("refund recorded")

		if refund.State() != domain.RefundStateCompleted {
			return nil
		}
		paymentChanged, err = h.refundIfCovered(ctx, p)
		return err
	})
	if err != nil {
		return err
	}
	if paymentChanged {
		h.resolveOrder(ctx, p)
	}
	return nil
}

// pendingRefund returns the oldest refund of p still in state new for
// amount, or nil.
func (h *PaymentCommandHandlers) pendingRefund(ctx context.Context, p *domain.Payment, amount int64, currency string) (*domain.RefundPayment, error) {
	refunds, err := h.refunds.ListByPaymentID(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list refund payments: %w", err)
	}
	for _, r := range refunds {
		if r.State() == domain.RefundStateNew && r.Amount == amount && r.Currency == currency {
			return r, nil
		}
	}
	return nil, nil
}

func (h *PaymentCommandHandlers) flagRescueScheduled(ctx context.Context, cmd domain.FlagRescueScheduled) error {
	p := cmd.Payment
	p.RescueScheduled = true
	p.SetDetail(domain.DetailRescueReference, cmd.RescueReference)
	p.SetDetail(domain.DetailMerchantReference, cmd.MerchantReference)
	if err := h.payments.Save(ctx, p); err != nil {
		return fmt.Errorf("save payment: %w", err)
	}

	h.log.Info().
		Str("payment_id", p.ID.String()).
		Str("psp_reference", cmd.PSPReference).
		Str("rescue_reference", cmd.RescueReference).
		Msg("auto rescue scheduled")
	return nil
}

func (h *PaymentCommandHandlers) autoRescueSuccess(ctx context.Context, cmd domain.AutoRescueSuccess) error {
	p := cmd.Payment
	p.RescueScheduled = false
	p.SetDetail(domain.DetailPSPReference, cmd.PSPReference)
	p.SetDetail(domain.DetailMerchantReference, cmd.MerchantReference)
	if !p.HasExternalReference() {
		p.ExternalReference = cmd.PSPReference
	}
	return h.transition(ctx, p, domain.TransitionComplete)
}

// requestCapture enqueues a capture of the full amount, once per payment.
// The flag is saved in the same transaction as the push, so a failed push
// leaves the payment unflagged for the next delivery.
func (h *PaymentCommandHandlers) requestCapture(ctx context.Context, cmd domain.RequestCapture) error {
	p := cmd.Payment
	if p.CaptureRequested {
		return nil
	}

	err := h.tx.WithinTx(ctx, func(ctx context.Context) error {
		p.CaptureRequested = true
		if err := h.payments.Save(ctx, p); err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		if err := h.queue.Enqueue(ctx, domain.NewCaptureRequest(p)); err != nil {
			return fmt.Errorf("enqueue capture: %w", err)
		}
		return nil
	})
	if err != nil {
		p.CaptureRequested = false
		return err
	}

	h.log.Info().
		Str("payment_id", p.ID.String()).
		Str("psp_reference", p.ExternalReference).
		Msg("capture requested")
	return nil
}

// transition applies t to p, saves p and refreshes the order payment state.
func (h *PaymentCommandHandlers) transition(ctx context.Context, p *domain.Payment, t domain.Transition) error {
	changed, err := h.applyAndSave(ctx, p, t)
	if err != nil || !changed {
		return err
	}
	h.resolveOrder(ctx, p)
	return nil
}

// applyAndSave applies t to p and saves it. A transition that cannot fire is
// a no-op; the payment is saved even then when an interceptor changed it.
func (h *PaymentCommandHandlers) applyAndSave(ctx context.Context, p *domain.Payment, t domain.Transition) (bool, error) {
	before := p.State()
	applied, err := h.sm.Apply(ctx, p, domain.GraphPayment, t)
	if err != nil {
		return false, err
	}
	if !applied && p.State() == before {
		h.skipped(p, p.ID.String(), domain.GraphPayment, t)
		return false, nil
	}

	if err := h.payments.Save(ctx, p); err != nil {
		return false, fmt.Errorf("save payment: %w", err)
	}
	return true, nil
}

// refundIfCovered moves p to refunded once its completed refunds cover the
// payment amount.
func (h *PaymentCommandHandlers) refundIfCovered(ctx context.Context, p *domain.Payment) (bool, error) {
	refunds, err := h.refunds.ListByPaymentID(ctx, p.ID)
	if err != nil {
		return false, fmt.Errorf("list refund payments: %w", err)
	}

	var refunded int64
	for _, r := range refunds {
		if r.State() == domain.RefundStateCompleted {
			refunded += r.Amount
		}
	}
	if refunded < p.Amount {
		return false, nil
	}
	return h.applyAndSave(ctx, p, domain.TransitionRefund)
}

// resolveOrder is best effort: the payment change is already durable.
func (h *PaymentCommandHandlers) resolveOrder(ctx context.Context, p *domain.Payment) {
	if err := h.orders.Resolve(ctx, p.OrderID); err != nil {
		h.log.Warn().
			Err(err).
			Str("order_id", p.OrderID.String()).
			Msg("order payment state resolution failed")
	}
}

func (h *PaymentCommandHandlers) skipped(subject domain.Stateful, id string, g domain.Graph, t domain.Transition) {
	h.log.Debug().
		Str("id", id).
		Str("graph", string(g)).
		Str("transition", string(t)).
		Interface("available", h.sm.AvailableTransitions(subject, g)).
		Msg("transition not applicable, skipped")
}

func recordNotification(p *domain.Payment, item domain.NotificationItem) {
	p.SetDetail(domain.DetailPSPReference, item.PSPReference)
	p.SetDetail(domain.DetailMerchantReference, item.MerchantReference)
	if v := item.AdditionalData.Value("resultCode"); v != "" {
		p.SetDetail(domain.DetailResultCode, v)
	}
}
