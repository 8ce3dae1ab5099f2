package memory

import (
	"context"
	"sync"

	"adyen-notification-reconciler/internal/core/domain"
)

// ModificationQueue implements ports.ModificationQueue as a FIFO slice.
type ModificationQueue struct {
	mu    sync.Mutex
	items []domain.ModificationRequest
}

func NewModificationQueue() *ModificationQueue {
	return &ModificationQueue{}
}

func (q *ModificationQueue) Enqueue(_ context.Context, req *domain.ModificationRequest) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, *req)
	return nil
}

func (q *ModificationQueue) Dequeue(_ context.Context) (*domain.ModificationRequest, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil, nil
	}
	req := q.items[0]
	q.items = q.items[1:]
	return &req, nil
}

func (q *ModificationQueue) Len(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.items)), nil
}
