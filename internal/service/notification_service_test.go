package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports/mocks"
	"adyen-notification-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type processorTestDeps struct {
	svc        *NotificationProcessor
	parser     *mocks.MockNotificationParser
	resolver   *mocks.MockCommandResolver
	factory    *mocks.MockCommandFactory
	dispatcher *mocks.MockCommandDispatcher
	protocol   *mocks.MockNotificationLogService
	ctrl       *gomock.Controller
}

func setupNotificationProcessor(t *testing.T) *processorTestDeps {
	ctrl := gomock.NewController(t)
	d := &processorTestDeps{
		parser:     mocks.NewMockNotificationParser(ctrl),
		resolver:   mocks.NewMockCommandResolver(ctrl),
		factory:    mocks.NewMockCommandFactory(ctrl),
		dispatcher: mocks.NewMockCommandDispatcher(ctrl),
		protocol:   mocks.NewMockNotificationLogService(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewNotificationProcessor(d.parser, NewEventNormalizer(), d.resolver, d.factory, d.dispatcher, d.protocol, zerolog.Nop())
	return d
}

func TestNotificationProcessor_Process_ResolvedByChain(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	body := []byte(`{}`)
	item := testItem("authorisation", "PSP1")
	cmd := domain.AuthorizePayment{Payment: testPayment(domain.PaymentStateNew), Notification: item}

	d.parser.EXPECT().Parse(ctx, "adyen_card", body).Return([]domain.NotificationItem{item}, 1, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", item, domain.EventAuthorisation).Return(domain.Resolved(cmd), nil)
	d.dispatcher.EXPECT().Dispatch(ctx, cmd).Return(nil)
	d.protocol.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.NotificationLogEntry) {
		assert.Equal(t, domain.OutcomeProcessed, e.Outcome)
		assert.Equal(t, domain.CommandAuthorizePayment, e.Command)
		assert.Equal(t, "PSP1", e.PSPReference)
		assert.Nil(t, e.Error)
	})

	result, err := d.svc.Process(ctx, "adyen_card", body)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Received)
	assert.Equal(t, 1, result.Dropped)
	assert.Equal(t, 1, result.Succeeded)
	outcome, _ := result.Outcome()
	assert.Equal(t, domain.BatchAccepted, outcome)
}

func TestNotificationProcessor_Process_FallsBackToFactory(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	item := testItem("capture", "PSP2")
	cmd := domain.CapturePayment{Payment: testPayment(domain.PaymentStateProcessing), Notification: item}

	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return([]domain.NotificationItem{item}, 0, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", item, domain.EventCapture).Return(domain.Declined(), nil)
	d.factory.EXPECT().Create(ctx, "adyen_card", item, domain.EventCapture).Return(cmd, nil)
	d.dispatcher.EXPECT().Dispatch(ctx, cmd).Return(nil)
	d.protocol.EXPECT().Record(ctx, gomock.Any())

	result, err := d.svc.Process(ctx, "adyen_card", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
}

func TestNotificationProcessor_Process_ChainErrorSkipsFactory(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	item := rescueItem(domain.SuccessTrue, "true")

	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return([]domain.NotificationItem{item}, 0, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", item, domain.EventAuthorisation).Return(domain.Declined(), domain.ErrAmbiguousRescue)
	d.protocol.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.NotificationLogEntry) {
		assert.Equal(t, domain.OutcomeFailed, e.Outcome)
		require.NotNil(t, e.Error)
	})

	result, err := d.svc.Process(ctx, "adyen_card", nil)
	require.NoError(t, err)
	outcome, kind := result.Outcome()
	assert.Equal(t, domain.BatchUnresolved, outcome)
	assert.Equal(t, domain.FailureNoCommandResolved, kind)
}

func TestNotificationProcessor_Process_UnknownAuthorisationSkipsFactory(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	item := testItem("authorisation", "PSP9")
	unresolved := fmt.Errorf("%w: adyen_card/PSP9", domain.ErrNoCommandResolved)

	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return([]domain.NotificationItem{item}, 0, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", item, domain.EventAuthorisation).Return(domain.Declined(), unresolved)
	d.factory.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	d.protocol.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.NotificationLogEntry) {
		assert.Equal(t, domain.OutcomeFailed, e.Outcome)
	})

	result, err := d.svc.Process(ctx, "adyen_card", nil)
	require.NoError(t, err)
	outcome, kind := result.Outcome()
	assert.Equal(t, domain.BatchUnresolved, outcome)
	assert.Equal(t, domain.FailureNoCommandResolved, kind)
}

func TestNotificationProcessor_Process_PartialSuccess(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	first := testItem("report_available", "PSP1")
	second := testItem("capture", "PSP2")
	cmd := domain.CapturePayment{Payment: testPayment(domain.PaymentStateProcessing), Notification: second}

	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return([]domain.NotificationItem{first, second}, 0, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", gomock.Any(), gomock.Any()).Return(domain.Declined(), nil).Times(2)
	d.factory.EXPECT().Create(ctx, "adyen_card", first, domain.Event("report_available")).Return(nil, domain.ErrUnmappedAction)
	d.factory.EXPECT().Create(ctx, "adyen_card", second, domain.EventCapture).Return(cmd, nil)
	d.dispatcher.EXPECT().Dispatch(ctx, cmd).Return(nil)
	d.protocol.EXPECT().Record(ctx, gomock.Any()).Times(2)

	result, err := d.svc.Process(ctx, "adyen_card", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, domain.FailureUnmappedAction, result.Failures[0].Kind)
	outcome, _ := result.Outcome()
	assert.Equal(t, domain.BatchAccepted, outcome)
}

func TestNotificationProcessor_Process_DispatchFailure(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	item := testItem("capture", "PSP2")
	cmd := domain.CapturePayment{Payment: testPayment(domain.PaymentStateProcessing), Notification: item}

	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return([]domain.NotificationItem{item}, 0, nil)
	d.resolver.EXPECT().Resolve(ctx, "adyen_card", item, domain.EventCapture).Return(domain.Resolved(cmd), nil)
	d.dispatcher.EXPECT().Dispatch(ctx, cmd).Return(errors.New("db down"))
	d.protocol.EXPECT().Record(ctx, gomock.Any()).Do(func(_ context.Context, e *domain.NotificationLogEntry) {
		assert.Equal(t, domain.CommandCapturePayment, e.Command)
		assert.Equal(t, domain.OutcomeFailed, e.Outcome)
	})

	result, err := d.svc.Process(ctx, "adyen_card", nil)
	require.NoError(t, err)
	outcome, kind := result.Outcome()
	assert.Equal(t, domain.BatchFailed, outcome)
	assert.Equal(t, domain.FailureInternal, kind)
}

func TestNotificationProcessor_Process_ParseError(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.parser.EXPECT().Parse(ctx, "adyen_card", gomock.Any()).Return(nil, 0, apperror.ErrMalformedNotification(errors.New("unexpected EOF")))

	_, err := d.svc.Process(ctx, "adyen_card", []byte(`{`))
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOTIF_001", appErr.Code)
}

func TestNotificationProcessor_Process_AllDropped(t *testing.T) {
	d := setupNotificationProcessor(t)
	defer d.ctrl.Finish()

	d.parser.EXPECT().Parse(gomock.Any(), "adyen_card", gomock.Any()).Return(nil, 3, nil)

	result, err := d.svc.Process(context.Background(), "adyen_card", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Dropped)
	outcome, _ := result.Outcome()
	assert.Equal(t, domain.BatchAccepted, outcome)
}
