package service

import (
	"context"
	"errors"
	"fmt"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
)

// ReferenceStoreService implements ports.ReferenceStore on top of the
// reference, payment and refund payment repositories.
type ReferenceStoreService struct {
	refs     ports.ReferenceRepository
	payments ports.PaymentRepository
	refunds  ports.RefundPaymentRepository
}

// NewReferenceStore creates a new ReferenceStoreService.
func NewReferenceStore(refs ports.ReferenceRepository, payments ports.PaymentRepository, refunds ports.RefundPaymentRepository) *ReferenceStoreService {
	return &ReferenceStoreService{refs: refs, payments: payments, refunds: refunds}
}

// FindByCode returns the payment a reference points to. A refund reference
// yields the payment the refund belongs to.
func (s *ReferenceStoreService) FindByCode(ctx context.Context, code, reference string) (*domain.Payment, error) {
	ref, err := s.lookup(ctx, code, reference)
	if err != nil {
		return nil, err
	}

	payment, err := s.payments.GetByID(ctx, ref.Target.OwningPaymentID())
	if err != nil {
		return nil, fmt.Errorf("load payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("%w: payment %s of %s/%s", domain.ErrReferenceNotFound, ref.Target.OwningPaymentID(), code, reference)
	}
	return payment, nil
}

// FindRefundByCode returns the refund payment a refund reference points to.
func (s *ReferenceStoreService) FindRefundByCode(ctx context.Context, code, reference string) (*domain.RefundPayment, error) {
	ref, err := s.lookup(ctx, code, reference)
	if err != nil {
		return nil, err
	}

	target, ok := ref.Target.(domain.RefundTarget)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s is not a refund reference", domain.ErrReferenceNotFound, code, reference)
	}

	refund, err := s.refunds.GetByID(ctx, target.RefundPaymentID)
	if err != nil {
		return nil, fmt.Errorf("load refund payment: %w", err)
	}
	if refund == nil {
		return nil, fmt.Errorf("%w: refund payment %s of %s/%s", domain.ErrReferenceNotFound, target.RefundPaymentID, code, reference)
	}
	return refund, nil
}

// Create links reference under code to payment.
func (s *ReferenceStoreService) Create(ctx context.Context, code string, payment *domain.Payment, reference string) error {
	if err := s.create(ctx, domain.NewPaymentReference(code, reference, payment)); err != nil {
		return fmt.Errorf("create reference: %w", err)
	}
	return nil
}

// CreateForRefund links reference under code to refund.
func (s *ReferenceStoreService) CreateForRefund(ctx context.Context, code, reference string, payment *domain.Payment, refund *domain.RefundPayment) error {
	if err := s.create(ctx, domain.NewRefundReference(code, reference, payment, refund)); err != nil {
		return fmt.Errorf("create refund reference: %w", err)
	}
	return nil
}

// create stores ref. An existing reference with the same target is
// accepted, one with a different target is a conflict.
func (s *ReferenceStoreService) create(ctx context.Context, ref *domain.Reference) error {
	err := s.refs.Create(ctx, ref)
	if !errors.Is(err, domain.ErrReferenceExists) {
		return err
	}

	existing, err := s.lookup(ctx, ref.Code, ref.PSPReference)
	if err != nil {
		return err
	}
	if existing.Target != ref.Target {
		return fmt.Errorf("%w: %s/%s", domain.ErrReferenceConflict, ref.Code, ref.PSPReference)
	}
	return nil
}

func (s *ReferenceStoreService) lookup(ctx context.Context, code, reference string) (*domain.Reference, error) {
	ref, err := s.refs.GetByCode(ctx, code, reference)
	if err != nil {
		return nil, fmt.Errorf("lookup reference: %w", err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%w: %s/%s", domain.ErrReferenceNotFound, code, reference)
	}
	return ref, nil
}
