// Package memory holds map-backed repositories for local runs and tests.
// Aggregates are stored as records so callers never share state with the store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
)

// --- References ---

type referenceKey struct {
	code         string
	pspReference string
}

// ReferenceRepo implements ports.ReferenceRepository.
type ReferenceRepo struct {
	mu   sync.RWMutex
	refs map[referenceKey]domain.Reference
}

func NewReferenceRepo() *ReferenceRepo {
	return &ReferenceRepo{refs: make(map[referenceKey]domain.Reference)}
}

// Create stores ref unless the (code, pspReference) pair is already known,
// which yields domain.ErrReferenceExists.
func (r *ReferenceRepo) Create(ctx context.Context, ref *domain.Reference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := referenceKey{ref.Code, ref.PSPReference}
	if _, exists := r.refs[k]; exists {
		return fmt.Errorf("%w: %s/%s", domain.ErrReferenceExists, ref.Code, ref.PSPReference)
	}
	r.refs[k] = *ref
	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.refs, k)
	})
	return nil
}

func (r *ReferenceRepo) GetByCode(_ context.Context, code, pspReference string) (*domain.Reference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ref, ok := r.refs[referenceKey{code, pspReference}]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

// --- Payments ---

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]domain.PaymentRecord
}

func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{payments: make(map[uuid.UUID]domain.PaymentRecord)}
}

func (r *PaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	return domain.PaymentFromRecord(rec), nil
}

// ListByOrderID returns the payments of an order, oldest first.
func (r *PaymentRepo) ListByOrderID(_ context.Context, orderID uuid.UUID) ([]*domain.Payment, error) {
	r.mu.RLock()
	var recs []domain.PaymentRecord
	for _, rec := range r.payments {
		if rec.OrderID == orderID {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(recs, func(a, b domain.PaymentRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	out := make([]*domain.Payment, len(recs))
	for i, rec := range recs {
		out[i] = domain.PaymentFromRecord(rec)
	}
	return out, nil
}

func (r *PaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, existed := r.payments[p.ID]
	r.payments[p.ID] = p.Record()
	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existed {
			r.payments[prev.ID] = prev
		} else {
			delete(r.payments, p.ID)
		}
	})
	return nil
}

// --- Refund payments ---

// RefundPaymentRepo implements ports.RefundPaymentRepository.
type RefundPaymentRepo struct {
	mu      sync.RWMutex
	refunds map[uuid.UUID]domain.RefundPaymentRecord
}

func NewRefundPaymentRepo() *RefundPaymentRepo {
	return &RefundPaymentRepo{refunds: make(map[uuid.UUID]domain.RefundPaymentRecord)}
}

func (r *RefundPaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.RefundPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.refunds[id]
	if !ok {
		return nil, nil
	}
	return domain.RefundPaymentFromRecord(rec), nil
}

func (r *RefundPaymentRepo) ListByPaymentID(_ context.Context, paymentID uuid.UUID) ([]*domain.RefundPayment, error) {
	r.mu.RLock()
	var recs []domain.RefundPaymentRecord
	for _, rec := range r.refunds {
		if rec.PaymentID == paymentID {
			recs = append(recs, rec)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(recs, func(a, b domain.RefundPaymentRecord) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	out := make([]*domain.RefundPayment, len(recs))
	for i, rec := range recs {
		out[i] = domain.RefundPaymentFromRecord(rec)
	}
	return out, nil
}

func (r *RefundPaymentRepo) Save(ctx context.Context, refund *domain.RefundPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, existed := r.refunds[refund.ID]
	r.refunds[refund.ID] = refund.Record()
	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existed {
			r.refunds[prev.ID] = prev
		} else {
			delete(r.refunds, refund.ID)
		}
	})
	return nil
}

// --- Orders ---

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.OrderRecord
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[uuid.UUID]domain.OrderRecord)}
}

func (r *OrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return domain.OrderFromRecord(rec), nil
}

func (r *OrderRepo) Save(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, existed := r.orders[o.ID]
	r.orders[o.ID] = o.Record()
	recordUndo(ctx, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if existed {
			r.orders[prev.ID] = prev
		} else {
			delete(r.orders, o.ID)
		}
	})
	return nil
}

// --- Payment links ---

// PaymentLinkRepo implements ports.PaymentLinkRepository.
type PaymentLinkRepo struct {
	mu    sync.RWMutex
	links map[string]domain.PaymentLink
}

func NewPaymentLinkRepo() *PaymentLinkRepo {
	return &PaymentLinkRepo{links: make(map[string]domain.PaymentLink)}
}

func (r *PaymentLinkRepo) Create(_ context.Context, link *domain.PaymentLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[link.LinkID] = *link
	return nil
}

func (r *PaymentLinkRepo) GetByLinkID(_ context.Context, linkID string) (*domain.PaymentLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	link, ok := r.links[linkID]
	if !ok {
		return nil, nil
	}
	return &link, nil
}

// --- Notification log ---

// NotificationLogRepo implements ports.NotificationLogRepository.
type NotificationLogRepo struct {
	mu      sync.RWMutex
	entries []domain.NotificationLogEntry
}

func NewNotificationLogRepo() *NotificationLogRepo {
	return &NotificationLogRepo{}
}

func (r *NotificationLogRepo) Create(_ context.Context, entry *domain.NotificationLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns the recorded entries in write order.
func (r *NotificationLogRepo) Entries() []domain.NotificationLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}
