package handler

import (
	"errors"
	"io"
	"net/http"

	"adyen-notification-reconciler/internal/adapter/http/middleware"
	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/apperror"
	"adyen-notification-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NotificationHandler receives gateway webhook notifications.
type NotificationHandler struct {
	svc ports.NotificationService
	log zerolog.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc ports.NotificationService, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: log}
}

// Receive handles POST /api/v1/notifications/:code.
//
// The gateway retries anything but 200 [accepted], so the status tells it
// whether to redeliver: 422 when no item could be resolved to a command,
// 500 when items failed for other reasons.
func (h *NotificationHandler) Receive(c *gin.Context) {
	code := c.Param(middleware.ParamCode)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(err))
			return
		}
		response.Error(c, apperror.ErrMalformedNotification(err))
		return
	}

	result, err := h.svc.Process(c.Request.Context(), code, body)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			response.Error(c, apperror.ErrInvalidCredentials())
			return
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr)
			return
		}
		h.log.Error().Err(err).Str("code", code).Msg("notification request failed")
		response.Error(c, apperror.ErrProcessingFailed(err))
		return
	}

	outcome, kind := result.Outcome()
	switch outcome {
	case domain.BatchAccepted:
		response.Accepted(c)
	case domain.BatchUnresolved:
		cause := lastFailure(result, kind)
		if kind == domain.FailureUnmappedAction {
			response.Error(c, apperror.ErrUnmappedAction(cause))
			return
		}
		response.Error(c, apperror.ErrNoCommandResolved(cause))
	default:
		response.Error(c, apperror.ErrProcessingFailed(lastFailure(result, domain.FailureInternal)))
	}
}

func lastFailure(result *domain.BatchResult, kind domain.FailureKind) error {
	for i := len(result.Failures) - 1; i >= 0; i-- {
		if result.Failures[i].Kind == kind {
			return result.Failures[i].Err
		}
	}
	return nil
}
