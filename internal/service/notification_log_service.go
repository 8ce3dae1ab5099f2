package service

import (
	"context"
	"sync"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// NotificationLogRecorder implements ports.NotificationLogService.
type NotificationLogRecorder struct {
	repo ports.NotificationLogRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewNotificationLogService creates a new notification log service.
// If repo is nil, entries are only written to the logger.
func NewNotificationLogService(repo ports.NotificationLogRepository, log zerolog.Logger) *NotificationLogRecorder {
	return &NotificationLogRecorder{repo: repo, log: log}
}

// Record writes an entry asynchronously (fire-and-forget).
func (s *NotificationLogRecorder) Record(ctx context.Context, entry *domain.NotificationLogEntry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ev := s.log.Info()
		if entry.Outcome == domain.OutcomeFailed {
			ev = s.log.Warn()
		}
		if entry.Error != nil {
			ev = ev.Str("error", *entry.Error)
		}
		ev.Str("code", entry.Code).
			Str("event", string(entry.Event)).
			Str("psp_reference", entry.PSPReference).
			Str("merchant_reference", entry.MerchantReference).
			Str("command", string(entry.Command)).
			Str("outcome", string(entry.Outcome)).
			Msg("notification")

		if s.repo != nil {
			if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
				s.log.Warn().Err(err).Str("psp_reference", entry.PSPReference).Msg("failed to persist notification log")
			}
		}
	}()
}

// Wait blocks until every pending entry was written.
func (s *NotificationLogRecorder) Wait() {
	s.wg.Wait()
}
