package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"adyen-notification-reconciler/internal/adapter/storage/memory"
	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type handlerTestDeps struct {
	dispatcher *CommandDispatcherService
	sm         *domain.StateMachine
	payments   *mocks.MockPaymentRepository
	refunds    *mocks.MockRefundPaymentRepository
	refs       *mocks.MockReferenceStore
	queue      *mocks.MockModificationQueue
	orders     *mocks.MockOrderPaymentStateResolver
	tx         *mocks.MockTransactor
	ctrl       *gomock.Controller
}

func setupPaymentHandlers(t *testing.T) *handlerTestDeps {
	ctrl := gomock.NewController(t)
	d := &handlerTestDeps{
		dispatcher: NewCommandDispatcher(zerolog.Nop()),
		sm:         domain.NewStateMachine(),
		payments:   mocks.NewMockPaymentRepository(ctrl),
		refunds:    mocks.NewMockRefundPaymentRepository(ctrl),
		refs:       mocks.NewMockReferenceStore(ctrl),
		queue:      mocks.NewMockModificationQueue(ctrl),
		orders:     mocks.NewMockOrderPaymentStateResolver(ctrl),
		tx:         mocks.NewMockTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}).AnyTimes()

	merchants := NewStaticMerchantConfigProvider(
		domain.MerchantAccount{Code: "adyen_card", CaptureMode: domain.CaptureModeManual},
		domain.MerchantAccount{Code: "adyen_auto", CaptureMode: domain.CaptureModeAutomatic},
	)
	NewPaymentCommandHandlers(d.sm, d.payments, d.refunds, d.refs, d.queue, d.orders, merchants, d.tx, zerolog.Nop()).Register(d.dispatcher)
	d.sm.AddGuard(domain.GraphPayment, domain.TransitionCancel, NewCancelGuard())
	d.sm.AddInterceptor(domain.GraphPayment, domain.TransitionComplete, NewCompleteInterceptor("adyen", merchants, d.dispatcher, d.sm, zerolog.Nop()))
	return d
}

// ==================== Authorisation ====================

func TestPaymentHandlers_Authorize_AutomaticCaptureRequestsCapture(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)

	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req *domain.ModificationRequest) error {
		assert.Equal(t, domain.ModificationCapture, req.Kind)
		assert.Equal(t, payment.ID, req.PaymentID)
		assert.Equal(t, "PSP1", req.PSPReference)
		assert.Equal(t, int64(1130), req.Amount)
		return nil
	}).Times(1)
	d.payments.EXPECT().Save(ctx, payment).Return(nil).Times(2)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	err := d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStateProcessing, payment.State())
	assert.True(t, payment.CaptureRequested)
	assert.Equal(t, "PSP1", payment.ExternalReference)
	assert.Equal(t, "PSP1", payment.Details[domain.DetailPSPReference])
}

func TestPaymentHandlers_Authorize_ReplayEnqueuesOnce(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)
	cmd := domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}

	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil).Times(1)
	d.payments.EXPECT().Save(ctx, payment).Return(nil).Times(2)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil).Times(1)

	require.NoError(t, d.dispatcher.Dispatch(ctx, cmd))
	require.NoError(t, d.dispatcher.Dispatch(ctx, cmd))
	assert.Equal(t, domain.PaymentStateProcessing, payment.State())
}

func TestPaymentHandlers_Authorize_ManualCapture(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)
	payment.CaptureMode = domain.CaptureModeManual

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}))
	assert.Equal(t, domain.PaymentStateAuthorized, payment.State())
	assert.False(t, payment.CaptureRequested)
}

func TestPaymentHandlers_Authorize_MerchantDefaultCaptureMode(t *testing.T) {
	t.Run("automatic", func(t *testing.T) {
		d := setupPaymentHandlers(t)
		defer d.ctrl.Finish()

		ctx := context.Background()
		payment := testPayment(domain.PaymentStateNew)
		payment.CaptureMode = ""
		payment.MethodCode = "adyen_auto"

		d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil)
		d.payments.EXPECT().Save(ctx, payment).Return(nil).Times(2)
		d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

		require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}))
		assert.Equal(t, domain.PaymentStateProcessing, payment.State())
		assert.True(t, payment.CaptureRequested)
	})

	t.Run("manual", func(t *testing.T) {
		d := setupPaymentHandlers(t)
		defer d.ctrl.Finish()

		ctx := context.Background()
		payment := testPayment(domain.PaymentStateNew)
		payment.CaptureMode = ""

		d.payments.EXPECT().Save(ctx, payment).Return(nil)
		d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

		require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}))
		assert.Equal(t, domain.PaymentStateAuthorized, payment.State())
	})

	t.Run("unknown merchant", func(t *testing.T) {
		d := setupPaymentHandlers(t)
		defer d.ctrl.Finish()

		ctx := context.Background()
		payment := testPayment(domain.PaymentStateNew)
		payment.CaptureMode = ""
		payment.MethodCode = "adyen_unknown"

		d.payments.EXPECT().Save(ctx, payment).Return(nil)
		d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

		require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}))
		assert.Equal(t, domain.PaymentStateAuthorized, payment.State())
	})
}

func TestPaymentHandlers_Authorize_OtherGatewayCompletes(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)
	payment.GatewayName = "stripe"

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")}))
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_CompleteInterception_FromProcessing(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateProcessing)
	payment.ExternalReference = "PSP1"

	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(nil).Times(1)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)

	applied, err := d.sm.Apply(ctx, payment, domain.GraphPayment, domain.TransitionComplete)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.PaymentStateProcessing, payment.State())

	applied, err = d.sm.Apply(ctx, payment, domain.GraphPayment, domain.TransitionComplete)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, domain.PaymentStateProcessing, payment.State())
}

func TestPaymentHandlers_CompleteInterception_CanDoesNotEnqueue(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	payment := testPayment(domain.PaymentStateProcessing)
	payment.ExternalReference = "PSP1"

	ok, err := d.sm.Can(context.Background(), payment, domain.GraphPayment, domain.TransitionComplete)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPaymentHandlers_CompleteInterception_EnqueueError(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)
	d.payments.EXPECT().Save(ctx, payment).DoAndReturn(func(_ context.Context, p *domain.Payment) error {
		assert.True(t, p.CaptureRequested, "flag is written before the push")
		return nil
	})
	d.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(errors.New("redis down"))

	err := d.dispatcher.Dispatch(ctx, domain.AuthorizePayment{Payment: payment, Notification: testItem("authorisation", "PSP1")})
	require.Error(t, err)
	assert.Equal(t, domain.PaymentStateNew, payment.State())
	assert.False(t, payment.CaptureRequested)
}

// ==================== Fail / Capture / Cancel ====================

func TestPaymentHandlers_Fail(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateNew)
	item := testItem("authorisation", "PSP1")
	item.Success = domain.SuccessFalse
	item.Reason = "Refused"

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.FailPayment{Payment: payment, Notification: item}))
	assert.Equal(t, domain.PaymentStateFailed, payment.State())
	assert.Equal(t, "Refused", payment.Details[domain.DetailRefusalReason])
}

func TestPaymentHandlers_Capture(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateProcessing)

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CapturePayment{Payment: payment}))
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_Capture_ReplayIsNoop(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	payment := testPayment(domain.PaymentStateCompleted)

	require.NoError(t, d.dispatcher.Dispatch(context.Background(), domain.CapturePayment{Payment: payment}))
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_SkippedTransitionLogsAvailable(t *testing.T) {
	var buf bytes.Buffer
	h := NewPaymentCommandHandlers(domain.NewStateMachine(), nil, nil, nil, nil, nil, nil, nil, zerolog.New(&buf))

	require.NoError(t, h.capture(context.Background(), domain.CapturePayment{Payment: testPayment(domain.PaymentStateCompleted)}))
	assert.Contains(t, buf.String(), `"transition":"capture"`)
	assert.Contains(t, buf.String(), `"available":["refund","reverse"]`)
}

func TestPaymentHandlers_Cancel(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateAuthorized)

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CancelPayment{Payment: payment}))
	assert.Equal(t, domain.PaymentStateCancelled, payment.State())
}

func TestPaymentHandlers_Cancel_BlockedOnceCaptureRequested(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	payment := testPayment(domain.PaymentStateProcessing)
	payment.CaptureRequested = true

	require.NoError(t, d.dispatcher.Dispatch(context.Background(), domain.CancelPayment{Payment: payment}))
	assert.Equal(t, domain.PaymentStateProcessing, payment.State())
}

func TestPaymentHandlers_SaveError(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateProcessing)
	d.payments.EXPECT().Save(ctx, payment).Return(errors.New("db down"))

	assert.Error(t, d.dispatcher.Dispatch(ctx, domain.CapturePayment{Payment: payment}))
}

func TestPaymentHandlers_OrderResolutionIsBestEffort(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateProcessing)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(errors.New("order locked"))

	assert.NoError(t, d.dispatcher.Dispatch(ctx, domain.CapturePayment{Payment: payment}))
}

// ==================== Refunds ====================

func TestPaymentHandlers_Refund_CompletesAndRefundsPayment(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	refund := domain.NewRefundPayment(payment, payment.Amount, payment.Currency)

	d.refunds.EXPECT().Save(ctx, refund).Return(nil)
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return([]*domain.RefundPayment{refund}, nil)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.Refund{RefundPayment: refund, Payment: payment, Succeeded: true}))
	assert.Equal(t, domain.RefundStateCompleted, refund.State())
	assert.Equal(t, domain.PaymentStateRefunded, payment.State())
}

func TestPaymentHandlers_Refund_PartialKeepsPaymentCompleted(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	refund := domain.NewRefundPayment(payment, 100, payment.Currency)

	d.refunds.EXPECT().Save(ctx, refund).Return(nil)
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return([]*domain.RefundPayment{refund}, nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.Refund{RefundPayment: refund, Payment: payment, Succeeded: true}))
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_Refund_Failed(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	refund := domain.NewRefundPayment(payment, payment.Amount, payment.Currency)

	d.refunds.EXPECT().Save(ctx, refund).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.Refund{RefundPayment: refund, Payment: payment}))
	assert.Equal(t, domain.RefundStateFailed, refund.State())
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_Refund_ReplayIsNoop(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	payment := testPayment(domain.PaymentStateRefunded)
	refund := domain.RefundPaymentFromRecord(domain.RefundPaymentRecord{ID: payment.ID, PaymentID: payment.ID, State: domain.RefundStateCompleted})

	require.NoError(t, d.dispatcher.Dispatch(context.Background(), domain.Refund{RefundPayment: refund, Payment: payment, Succeeded: true}))
}

func TestPaymentHandlers_CreateRefund(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	item := testItem("refund", "PSPR")
	item.OriginalReference = "PSP1"

	var created *domain.RefundPayment
	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "PSPR").Return(nil, notFound("PSPR"))
	d.refunds.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.RefundPayment) error {
		created = r
		return nil
	})
	d.refs.EXPECT().CreateForRefund(ctx, "adyen_card", "PSPR", payment, gomock.Any()).Return(nil)
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).DoAndReturn(func(context.Context, uuid.UUID) ([]*domain.RefundPayment, error) {
		if created == nil {
			return nil, nil
		}
		return []*domain.RefundPayment{created}, nil
	}).Times(2)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item, Code: "adyen_card"}))
	require.NotNil(t, created)
	assert.Equal(t, domain.RefundStateCompleted, created.State())
	assert.Equal(t, int64(1130), created.Amount)
	assert.Equal(t, domain.PaymentStateRefunded, payment.State())
}

func TestPaymentHandlers_CreateRefund_AlreadyRecorded(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateRefunded)
	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "PSPR").Return(domain.NewRefundPayment(payment, 1130, "EUR"), nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: testItem("refund", "PSPR")}))
}

func TestPaymentHandlers_CreateRefund_UnsuccessfulIgnored(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	item := testItem("refund", "PSPR")
	item.Success = domain.SuccessFalse

	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "PSPR").Return(nil, notFound("PSPR"))
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return(nil, nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item}))
}

func TestPaymentHandlers_CreateRefund_AdoptsPendingMerchantRefund(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	other := domain.NewRefundPayment(payment, 500, "EUR")
	pending := domain.NewRefundPayment(payment, 1130, "EUR")
	item := testItem("refund", "REF1")
	item.OriginalReference = "PSP1"

	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "REF1").Return(nil, notFound("REF1"))
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return([]*domain.RefundPayment{other, pending}, nil).Times(2)
	d.refunds.EXPECT().Save(ctx, pending).Return(nil)
	d.refs.EXPECT().CreateForRefund(ctx, "adyen_card", "REF1", payment, pending).Return(nil)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item, Code: "adyen_card"}))
	assert.Equal(t, domain.RefundStateCompleted, pending.State())
	assert.Equal(t, domain.RefundStateNew, other.State())
	assert.Equal(t, domain.PaymentStateRefunded, payment.State())
}

func TestPaymentHandlers_CreateRefund_AdoptedRefundFails(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	pending := domain.NewRefundPayment(payment, 1130, "EUR")
	item := testItem("refund", "REF1")
	item.Success = domain.SuccessFalse

	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "REF1").Return(nil, notFound("REF1"))
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return([]*domain.RefundPayment{pending}, nil)
	d.refunds.EXPECT().Save(ctx, pending).Return(nil)
	d.refs.EXPECT().CreateForRefund(ctx, "adyen_card", "REF1", payment, pending).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item}))
	assert.Equal(t, domain.RefundStateFailed, pending.State())
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_CreateRefund_UsesNotificationCode(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	item := testItem("refund", "REF1")
	item.Amount = domain.Amount{Value: 100, Currency: "EUR"}

	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_giro", "REF1").Return(nil, notFound("REF1"))
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return(nil, nil).Times(2)
	d.refunds.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	d.refs.EXPECT().CreateForRefund(ctx, "adyen_giro", "REF1", payment, gomock.Any()).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item, Code: "adyen_giro"}))
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_CreateRefund_ReferenceConflictFails(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateCompleted)
	item := testItem("refund", "REF1")

	d.refs.EXPECT().FindRefundByCode(ctx, "adyen_card", "REF1").Return(nil, notFound("REF1"))
	d.refunds.EXPECT().ListByPaymentID(ctx, payment.ID).Return(nil, nil)
	d.refunds.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	d.refs.EXPECT().CreateForRefund(ctx, "adyen_card", "REF1", payment, gomock.Any()).Return(domain.ErrReferenceConflict)

	err := d.dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: item})
	assert.ErrorIs(t, err, domain.ErrReferenceConflict)
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

func TestPaymentHandlers_CreateRefund_ReferenceFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	sm := domain.NewStateMachine()
	dispatcher := NewCommandDispatcher(zerolog.Nop())
	refs := NewReferenceStore(store.References, store.Payments, store.Refunds)
	orders := NewOrderPaymentStateResolver(sm, store.Orders, store.Payments, zerolog.Nop())
	NewPaymentCommandHandlers(sm, store.Payments, store.Refunds, refs, memory.NewModificationQueue(), orders,
		NewStaticMerchantConfigProvider(), store.Transactor, zerolog.Nop()).Register(dispatcher)

	payment := testPayment(domain.PaymentStateCompleted)
	require.NoError(t, store.Payments.Save(ctx, payment))
	// REF1 already names the payment itself.
	require.NoError(t, store.References.Create(ctx, domain.NewPaymentReference("adyen_card", "REF1", payment)))

	err := dispatcher.Dispatch(ctx, domain.CreateRefund{Payment: payment, Notification: testItem("refund", "REF1"), Code: "adyen_card"})
	require.ErrorIs(t, err, domain.ErrReferenceConflict)

	refunds, err := store.Refunds.ListByPaymentID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Empty(t, refunds)

	stored, err := store.Payments.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateCompleted, stored.State())
}

// ==================== Auto rescue ====================

func TestPaymentHandlers_FlagRescueScheduled(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateFailed)
	d.payments.EXPECT().Save(ctx, payment).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.FlagRescueScheduled{
		Payment:           payment,
		MerchantReference: "order-1",
		PSPReference:      "PSP2",
		RescueReference:   "RESCUE-42",
	}))
	assert.True(t, payment.RescueScheduled)
	assert.Equal(t, "RESCUE-42", payment.Details[domain.DetailRescueReference])
	assert.Equal(t, domain.PaymentStateFailed, payment.State())
}

func TestPaymentHandlers_AutoRescueSuccess(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payment := testPayment(domain.PaymentStateProcessing)
	payment.RescueScheduled = true
	payment.CaptureMode = domain.CaptureModeManual

	d.payments.EXPECT().Save(ctx, payment).Return(nil)
	d.orders.EXPECT().Resolve(ctx, payment.OrderID).Return(nil)

	require.NoError(t, d.dispatcher.Dispatch(ctx, domain.AutoRescueSuccess{Payment: payment, PSPReference: "PSP2"}))
	assert.False(t, payment.RescueScheduled)
	assert.Equal(t, domain.PaymentStateCompleted, payment.State())
}

// ==================== Request capture ====================

func TestPaymentHandlers_RequestCapture_AlreadyRequested(t *testing.T) {
	d := setupPaymentHandlers(t)
	defer d.ctrl.Finish()

	payment := testPayment(domain.PaymentStateProcessing)
	payment.CaptureRequested = true

	require.NoError(t, d.dispatcher.Dispatch(context.Background(), domain.RequestCapture{Payment: payment}))
}
