package service

import (
	"context"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// NewCancelGuard blocks cancel on payments that were captured or have a
// capture on its way.
func NewCancelGuard() domain.Guard {
	return domain.GuardFunc(func(_ context.Context, subject domain.Stateful, _ domain.Transition) (bool, error) {
		p, ok := subject.(*domain.Payment)
		if !ok {
			return true, nil
		}
		return p.CanBeCancelled(), nil
	})
}

// CompleteInterceptor turns the completion of an automatically captured
// payment of this gateway into a capture request. The payment is moved to
// processing and completes once the capture notification arrives.
type CompleteInterceptor struct {
	gateway    string
	merchants  ports.MerchantConfigProvider
	dispatcher ports.CommandDispatcher
	sm         *domain.StateMachine
	log        zerolog.Logger
}

// NewCompleteInterceptor creates a new CompleteInterceptor for gateway.
func NewCompleteInterceptor(gateway string, merchants ports.MerchantConfigProvider, dispatcher ports.CommandDispatcher, sm *domain.StateMachine, log zerolog.Logger) *CompleteInterceptor {
	return &CompleteInterceptor{gateway: gateway, merchants: merchants, dispatcher: dispatcher, sm: sm, log: log}
}

// Intercept implements domain.Interceptor.
func (i *CompleteInterceptor) Intercept(ctx context.Context, subject domain.Stateful, _ domain.Transition) (bool, error) {
	p, ok := subject.(*domain.Payment)
	if !ok || !i.applies(p) {
		return true, nil
	}

	if !p.CaptureRequested {
		if err := i.dispatcher.Dispatch(ctx, domain.RequestCapture{Payment: p}); err != nil {
			return false, err
		}
	}

	if _, err := i.sm.Apply(ctx, p, domain.GraphPayment, domain.TransitionProcess); err != nil {
		return false, err
	}

	i.log.Debug().
		Str("payment_id", p.ID.String()).
		Str("state", string(p.State())).
		Msg("completion deferred until capture")
	return false, nil
}

func (i *CompleteInterceptor) applies(p *domain.Payment) bool {
	return p.GatewayName == i.gateway &&
		p.HasExternalReference() &&
		captureMode(i.merchants, p) == domain.CaptureModeAutomatic
}

// captureMode is the capture mode of p, defaulting to the one configured for
// the merchant account of its payment method code.
func captureMode(merchants ports.MerchantConfigProvider, p *domain.Payment) domain.CaptureMode {
	var def domain.CaptureMode
	if merchants != nil {
		if account, err := merchants.Get(p.MethodCode); err == nil {
			def = account.CaptureMode
		}
	}
	return p.EffectiveCaptureMode(def)
}
