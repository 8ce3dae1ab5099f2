package service

import (
	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/logger"

	"github.com/rs/zerolog"
)

// PipelineDeps are the stores and settings the notification pipeline runs on.
type PipelineDeps struct {
	// Gateway is the gateway name payments are created with; the complete
	// interceptor only reroutes payments of this gateway.
	Gateway          string
	Merchants        ports.MerchantConfigProvider
	References       ports.ReferenceRepository
	Payments         ports.PaymentRepository
	Refunds          ports.RefundPaymentRepository
	Orders           ports.OrderRepository
	PaymentLinks     ports.PaymentLinkRepository
	NotificationLogs ports.NotificationLogRepository
	Queue            ports.ModificationQueue
	Transactor       ports.Transactor
	Logger           zerolog.Logger
}

// Pipeline is the wired notification processing stack.
type Pipeline struct {
	StateMachine  *domain.StateMachine
	Dispatcher    *CommandDispatcherService
	Resolver      *ChainCommandResolver
	Processor     *NotificationProcessor
	Authenticator *MerchantAuthService
	Protocol      *NotificationLogRecorder
}

// NewPipeline wires the state machine, command handlers, resolver chain and
// processor. Resolvers run in the order PaymentLink, AutoRescue,
// Authorization, Refund.
func NewPipeline(deps PipelineDeps) *Pipeline {
	log := deps.Logger

	sm := domain.NewStateMachine()
	dispatcher := NewCommandDispatcher(logger.Component(log, "dispatcher"))
	handlersLog := logger.Component(log, "payment_handlers")

	sm.AddGuard(domain.GraphPayment, domain.TransitionCancel, NewCancelGuard())
	sm.AddInterceptor(domain.GraphPayment, domain.TransitionComplete,
		NewCompleteInterceptor(deps.Gateway, deps.Merchants, dispatcher, sm, handlersLog))

	refs := NewReferenceStore(deps.References, deps.Payments, deps.Refunds)
	orders := NewOrderPaymentStateResolver(sm, deps.Orders, deps.Payments, logger.Component(log, "order_state"))
	NewPaymentCommandHandlers(sm, deps.Payments, deps.Refunds, refs, deps.Queue, orders,
		deps.Merchants, deps.Transactor, handlersLog).Register(dispatcher)

	resolver := NewChainCommandResolver(
		NewPaymentLinkCommandResolver(deps.PaymentLinks, deps.Payments, refs),
		NewAutoRescueCommandResolver(refs),
		NewAuthorizationCommandResolver(refs),
		NewRefundCommandResolver(refs),
	)

	protocol := NewNotificationLogService(deps.NotificationLogs, logger.Component(log, "notification_log"))
	processor := NewNotificationProcessor(
		NewNotificationParser(deps.Merchants, NewHMACSignatureService(), logger.Component(log, "parser")),
		NewEventNormalizer(),
		resolver,
		NewPaymentCommandFactory(refs),
		dispatcher,
		protocol,
		logger.Component(log, "processor"),
	)

	return &Pipeline{
		StateMachine:  sm,
		Dispatcher:    dispatcher,
		Resolver:      resolver,
		Processor:     processor,
		Authenticator: NewMerchantAuthService(deps.Merchants, NewArgon2HashService(), logger.Component(log, "merchant_auth")),
		Protocol:      protocol,
	}
}
