package service

import (
	"context"
	"errors"
	"testing"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports/mocks"
	"adyen-notification-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testMerchantProvider(t *testing.T) (*StaticMerchantConfigProvider, string) {
	t.Helper()
	hash, err := NewArgon2HashServiceWithParams(fastHashParams).Hash("s3cret")
	require.NoError(t, err)
	return NewStaticMerchantConfigProvider(domain.MerchantAccount{
		Code:                  "adyen_card",
		MerchantAccount:       "ShopECOM",
		HMACKey:               testHMACKey,
		BasicAuthUsername:     "adyen",
		BasicAuthPasswordHash: hash,
		CaptureMode:           domain.CaptureModeAutomatic,
	}), hash
}

func TestStaticMerchantConfigProvider_Get(t *testing.T) {
	p, _ := testMerchantProvider(t)

	account, err := p.Get("adyen_card")
	require.NoError(t, err)
	assert.Equal(t, "ShopECOM", account.MerchantAccount)
	assert.True(t, account.VerifiesSignatures())

	_, err = p.Get("unknown")
	assert.ErrorIs(t, err, domain.ErrMerchantNotFound)
}

func TestMerchantAuthService_Authenticate(t *testing.T) {
	p, _ := testMerchantProvider(t)
	svc := NewMerchantAuthService(p, NewArgon2HashService(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name     string
		code     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "adyen_card", "adyen", "s3cret", false},
		{"wrong password", "adyen_card", "adyen", "nope", true},
		{"wrong username", "adyen_card", "other", "s3cret", true},
		{"unknown code", "paypal", "adyen", "s3cret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authenticate(ctx, tt.code, tt.username, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "SEC_001", appErr.Code)
		})
	}
}

func TestMerchantAuthService_UnreadableHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, hash := testMerchantProvider(t)
	hashSvc := mocks.NewMockHashService(ctrl)
	hashSvc.EXPECT().Verify("s3cret", hash).Return(false, errors.New("invalid hash format"))

	svc := NewMerchantAuthService(p, hashSvc, zerolog.Nop())
	err := svc.Authenticate(context.Background(), "adyen_card", "adyen", "s3cret")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_001", appErr.Code)
}
