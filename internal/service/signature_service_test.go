package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHMACKey = "44782DEF547AAA06C910C43932B1EB0C71FC68D9D0C057550C48EC2ACF6BA056"

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := "7914073381342284::TestMerchant:TestPayment-1407325143704:1130:EUR:AUTHORISATION:true"

	signature, err := svc.Sign(testHMACKey, payload)
	require.NoError(t, err)

	key, _ := hex.DecodeString(testHMACKey)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	assert.Equal(t, base64.StdEncoding.EncodeToString(mac.Sum(nil)), signature)

	assert.True(t, svc.Verify(testHMACKey, payload, signature))
}

func TestHMACSignatureService_VerifyFails_WrongKey(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := "test payload"

	signature, err := svc.Sign(testHMACKey, payload)
	require.NoError(t, err)
	assert.False(t, svc.Verify("00"+testHMACKey[2:], payload, signature))
}

func TestHMACSignatureService_VerifyFails_WrongPayload(t *testing.T) {
	svc := NewHMACSignatureService()

	signature, err := svc.Sign(testHMACKey, "original payload")
	require.NoError(t, err)
	assert.False(t, svc.Verify(testHMACKey, "tampered payload", signature))
}

func TestHMACSignatureService_InvalidHexKey(t *testing.T) {
	svc := NewHMACSignatureService()

	_, err := svc.Sign("not-hex", "payload")
	assert.Error(t, err)
	assert.False(t, svc.Verify("not-hex", "payload", "sig"))
}

func TestHMACSignatureService_BuildCanonicalString(t *testing.T) {
	svc := NewHMACSignatureService()
	item := domain.NotificationItem{
		EventCode:           "AUTHORISATION",
		PSPReference:        "7914073381342284",
		MerchantAccountCode: "TestMerchant",
		MerchantReference:   "TestPayment-1407325143704",
		Amount:              domain.Amount{Value: 1130, Currency: "EUR"},
		Success:             domain.SuccessTrue,
	}

	assert.Equal(t, "7914073381342284::TestMerchant:TestPayment-1407325143704:1130:EUR:AUTHORISATION:true",
		svc.BuildCanonicalString(item))

	item.Success = domain.SuccessUnknown
	item.OriginalReference = "ORIG"
	assert.Equal(t, "7914073381342284:ORIG:TestMerchant:TestPayment-1407325143704:1130:EUR:AUTHORISATION:false",
		svc.BuildCanonicalString(item))
}
