package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// MerchantAuthService implements ports.MerchantAuthenticator: it checks the
// Basic auth credentials the gateway sends with every notification request.
type MerchantAuthService struct {
	merchants ports.MerchantConfigProvider
	hashSvc   ports.HashService
	log       zerolog.Logger
}

// NewMerchantAuthService creates a new MerchantAuthService.
func NewMerchantAuthService(merchants ports.MerchantConfigProvider, hashSvc ports.HashService, log zerolog.Logger) *MerchantAuthService {
	return &MerchantAuthService{merchants: merchants, hashSvc: hashSvc, log: log}
}

// Authenticate returns apperror.ErrInvalidCredentials unless username and
// password match the account configured for code.
func (s *MerchantAuthService) Authenticate(_ context.Context, code, username, password string) error {
	account, err := s.merchants.Get(code)
	if err != nil {
		if errors.Is(err, domain.ErrMerchantNotFound) {
			s.log.Warn().Str("code", code).Msg("notification for unconfigured payment method")
			return apperror.ErrInvalidCredentials()
		}
		return apperror.InternalError(err)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(account.BasicAuthUsername)) == 1

	match, err := s.hashSvc.Verify(password, account.BasicAuthPasswordHash)
	if err != nil {
		s.log.Error().Err(err).Str("code", code).Msg("stored notification password hash is unreadable")
		return apperror.ErrInvalidCredentials()
	}

	if !userOK || !match {
		s.log.Warn().Str("code", code).Msg("notification credentials rejected")
		return apperror.ErrInvalidCredentials()
	}
	return nil
}
