package service

import (
	"context"
	"time"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// NotificationProcessor implements ports.NotificationService.
type NotificationProcessor struct {
	parser     ports.NotificationParser
	normalizer ports.EventNormalizer
	resolver   ports.CommandResolver
	factory    ports.CommandFactory
	dispatcher ports.CommandDispatcher
	protocol   ports.NotificationLogService
	log        zerolog.Logger
}

// NewNotificationProcessor creates a new NotificationProcessor.
func NewNotificationProcessor(
	parser ports.NotificationParser,
	normalizer ports.EventNormalizer,
	resolver ports.CommandResolver,
	factory ports.CommandFactory,
	dispatcher ports.CommandDispatcher,
	protocol ports.NotificationLogService,
	log zerolog.Logger,
) *NotificationProcessor {
	return &NotificationProcessor{
		parser:     parser,
		normalizer: normalizer,
		resolver:   resolver,
		factory:    factory,
		dispatcher: dispatcher,
		protocol:   protocol,
		log:        log,
	}
}

// Process parses body and applies its items one after the other. Item
// failures are collected in the result and never abort the batch; only an
// unreadable body is returned as an error.
func (s *NotificationProcessor) Process(ctx context.Context, code string, body []byte) (*domain.BatchResult, error) {
	items, dropped, err := s.parser.Parse(ctx, code, body)
	if err != nil {
		return nil, err
	}

	result := &domain.BatchResult{Received: len(items) + dropped, Dropped: dropped}
	for _, item := range items {
		event := s.normalizer.Normalize(item)
		cmd, err := s.processItem(ctx, code, item, event)

		entry := &domain.NotificationLogEntry{
			ID:                uuid.New(),
			Code:              code,
			EventCode:         item.EventCode,
			Event:             event,
			PSPReference:      item.PSPReference,
			MerchantReference: item.MerchantReference,
			Outcome:           domain.OutcomeProcessed,
			CreatedAt:         time.Now().UTC(),
		}
		if cmd != nil {
			entry.Command = cmd.Name()
		}

		if err != nil {
			msg := err.Error()
			entry.Outcome = domain.OutcomeFailed
			entry.Error = &msg
			result.Fail(item, err)

			s.log.Warn().
				Err(err).
				Str("code", code).
				Str("event", string(event)).
				Str("psp_reference", item.PSPReference).
				Str("kind", string(domain.ClassifyFailure(err))).
				Msg("notification item failed")
		} else {
			result.Succeeded++
		}
		s.protocol.Record(ctx, entry)
	}

	s.log.Info().
		Str("code", code).
		Int("received", result.Received).
		Int("dropped", result.Dropped).
		Int("succeeded", result.Succeeded).
		Int("failed", len(result.Failures)).
		Msg("notification batch processed")
	return result, nil
}

// processItem resolves item through the chain, falling back to the factory
// when no resolver places it, and dispatches the command.
func (s *NotificationProcessor) processItem(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Command, error) {
	cmd, err := s.resolve(ctx, code, item, event)
	if err != nil {
		return nil, err
	}
	return cmd, s.dispatcher.Dispatch(ctx, cmd)
}

func (s *NotificationProcessor) resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Command, error) {
	res, err := s.resolver.Resolve(ctx, code, item, event)
	if err != nil {
		return nil, err
	}
	if cmd, ok := res.Command(); ok {
		return cmd, nil
	}
	return s.factory.Create(ctx, code, item, event)
}
