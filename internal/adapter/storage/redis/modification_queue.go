package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ModificationQueue implements ports.ModificationQueue as a Redis list.
// Requests are pushed on the left and popped from the right, oldest first.
type ModificationQueue struct {
	client *goredis.Client
	key    string
}

// NewModificationQueue creates a queue stored under key.
func NewModificationQueue(client *goredis.Client, key string) *ModificationQueue {
	return &ModificationQueue{client: client, key: key}
}

// Enqueue pushes a modification request.
func (q *ModificationQueue) Enqueue(ctx context.Context, req *domain.ModificationRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal modification request: %w", err)
	}
	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("redis modification enqueue: %w", err)
	}
	return nil
}

// Dequeue pops the oldest request. Returns nil, nil when the queue is empty.
func (q *ModificationQueue) Dequeue(ctx context.Context) (*domain.ModificationRequest, error) {
	data, err := q.client.RPop(ctx, q.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis modification dequeue: %w", err)
	}

	var req domain.ModificationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal modification request: %w", err)
	}
	return &req, nil
}

// Len returns the number of pending requests.
func (q *ModificationQueue) Len(ctx context.Context) (int64, error) {
	n, err := q.client.LLen(ctx, q.key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis modification len: %w", err)
	}
	return n, nil
}
