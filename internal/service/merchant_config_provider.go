package service

import (
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
)

// StaticMerchantConfigProvider implements ports.MerchantConfigProvider over
// accounts loaded at startup.
type StaticMerchantConfigProvider struct {
	accounts map[string]domain.MerchantAccount
}

// NewStaticMerchantConfigProvider indexes accounts by payment method code.
func NewStaticMerchantConfigProvider(accounts ...domain.MerchantAccount) *StaticMerchantConfigProvider {
	p := &StaticMerchantConfigProvider{accounts: make(map[string]domain.MerchantAccount, len(accounts))}
	for _, a := range accounts {
		p.accounts[a.Code] = a
	}
	return p
}

// Get returns a copy of the account configured for code.
func (p *StaticMerchantConfigProvider) Get(code string) (*domain.MerchantAccount, error) {
	a, ok := p.accounts[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMerchantNotFound, code)
	}
	return &a, nil
}
