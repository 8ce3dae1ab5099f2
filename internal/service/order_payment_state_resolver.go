package service

import (
	"context"
	"fmt"
	"slices"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderPaymentStateResolverService implements ports.OrderPaymentStateResolver.
type OrderPaymentStateResolverService struct {
	sm       *domain.StateMachine
	orders   ports.OrderRepository
	payments ports.PaymentRepository
	log      zerolog.Logger
}

// NewOrderPaymentStateResolver creates a new OrderPaymentStateResolverService.
func NewOrderPaymentStateResolver(sm *domain.StateMachine, orders ports.OrderRepository, payments ports.PaymentRepository, log zerolog.Logger) *OrderPaymentStateResolverService {
	return &OrderPaymentStateResolverService{sm: sm, orders: orders, payments: payments, log: log}
}

// Resolve derives the order payment state from the order's payments and
// applies the matching transition when it can fire. Unknown orders are ignored.
func (r *OrderPaymentStateResolverService) Resolve(ctx context.Context, orderID uuid.UUID) error {
	order, err := r.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil
	}

	payments, err := r.payments.ListByOrderID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("list payments: %w", err)
	}

	t, ok := orderTransition(payments)
	if !ok {
		return nil
	}

	applied, err := r.sm.Apply(ctx, order, domain.GraphOrderPayment, t)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	if err := r.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	r.log.Info().
		Str("order_id", order.ID.String()).
		Str("transition", string(t)).
		Str("payment_state", string(order.PaymentState())).
		Msg("order payment state updated")
	return nil
}

// orderTransition picks the order transition implied by payments, oldest first.
func orderTransition(payments []*domain.Payment) (domain.Transition, bool) {
	if len(payments) == 0 {
		return "", false
	}

	last := payments[len(payments)-1]
	switch last.State() {
	case domain.PaymentStateCompleted:
		return domain.TransitionPay, true
	case domain.PaymentStateAuthorized:
		return domain.TransitionAuthorize, true
	}

	if allIn(payments, domain.PaymentStateRefunded) {
		return domain.TransitionRefund, true
	}

	if last.State() == domain.PaymentStateNew || last.State() == domain.PaymentStateProcessing {
		if anyIn(payments[:len(payments)-1], domain.PaymentStateFailed, domain.PaymentStateCancelled) {
			return domain.TransitionRequestPayment, true
		}
		return "", false
	}

	if allIn(payments, domain.PaymentStateFailed, domain.PaymentStateCancelled) {
		return domain.TransitionCancel, true
	}
	return "", false
}

func allIn(payments []*domain.Payment, states ...domain.PaymentState) bool {
	return !slices.ContainsFunc(payments, func(p *domain.Payment) bool {
		return !slices.Contains(states, p.State())
	})
}

func anyIn(payments []*domain.Payment, states ...domain.PaymentState) bool {
	return slices.ContainsFunc(payments, func(p *domain.Payment) bool {
		return slices.Contains(states, p.State())
	})
}
