package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck pings Redis and checks that the modification queue key, when
// present, still holds a list.
type HealthCheck struct {
	client   *goredis.Client
	queueKey string
}

func NewHealthCheck(client *goredis.Client, queueKey string) *HealthCheck {
	return &HealthCheck{client: client, queueKey: queueKey}
}

func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Ping(ctx).Err(); err != nil {
		return err
	}
	if h.queueKey == "" {
		return nil
	}
	kind, err := h.client.Type(ctx, h.queueKey).Result()
	if err != nil {
		return err
	}
	if kind != "list" && kind != "none" {
		return fmt.Errorf("modification queue %q holds a %s", h.queueKey, kind)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
