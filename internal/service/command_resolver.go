package service

import (
	"context"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
)

// ChainCommandResolver tries its resolvers in order and returns the first
// resolved command. Declines move on to the next resolver; errors stop the chain.
type ChainCommandResolver struct {
	resolvers []ports.CommandResolver
}

// NewChainCommandResolver creates a chain over resolvers, tried in the given order.
func NewChainCommandResolver(resolvers ...ports.CommandResolver) *ChainCommandResolver {
	return &ChainCommandResolver{resolvers: resolvers}
}

// Resolve declines without error when every resolver declines.
func (c *ChainCommandResolver) Resolve(ctx context.Context, code string, item domain.NotificationItem, event domain.Event) (domain.Resolution, error) {
	for _, r := range c.resolvers {
		res, err := r.Resolve(ctx, code, item, event)
		if err != nil {
			return domain.Declined(), err
		}
		if !res.IsDeclined() {
			return res, nil
		}
	}
	return domain.Declined(), nil
}
