package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"adyen-notification-reconciler/internal/core/domain"
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using the hex encoded key.
// Returns the standard base64 encoded signature.
func (s *HMACSignatureService) Sign(hexKey string, payload string) (string, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return "", fmt.Errorf("decoding hmac key: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks if signature matches HMAC-SHA256(key, payload).
// Uses constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(hexKey string, payload string, signature string) bool {
	expected, err := s.Sign(hexKey, payload)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildCanonicalString constructs the signed payload of a notification item.
// Format: PSP:ORIGINAL:MERCHANT_ACCOUNT:MERCHANT_REF:VALUE:CURRENCY:EVENT:SUCCESS
func (s *HMACSignatureService) BuildCanonicalString(item domain.NotificationItem) string {
	return strings.Join([]string{
		item.PSPReference,
		item.OriginalReference,
		item.MerchantAccountCode,
		item.MerchantReference,
		strconv.FormatInt(item.Amount.Value, 10),
		item.Amount.Currency,
		item.EventCode,
		item.Success.SignatureValue(),
	}, ":")
}
