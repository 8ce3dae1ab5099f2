package domain

// MerchantAccount is the gateway account configuration bound to a payment
// method code.
type MerchantAccount struct {
	Code                  string
	MerchantAccount       string
	HMACKey               string // hex encoded, empty disables signature checks
	BasicAuthUsername     string
	BasicAuthPasswordHash string // argon2id
	CaptureMode           CaptureMode
}

// VerifiesSignatures reports whether notifications must carry a valid HMAC.
func (m *MerchantAccount) VerifiesSignatures() bool {
	return m.HMACKey != ""
}
