package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"adyen-notification-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment() *domain.Payment {
	p := domain.NewPayment(uuid.New(), "adyen_card", "adyen", 1130, "EUR", domain.CaptureModeAutomatic)
	p.CreatedAt = p.CreatedAt.Truncate(time.Microsecond)
	p.UpdatedAt = p.CreatedAt
	return p
}

func paymentRow(p *domain.Payment) *pgxmock.Rows {
	rec := p.Record()
	details, _ := json.Marshal(rec.Details)
	return pgxmock.NewRows([]string{"id", "order_id", "method_code", "gateway_name", "external_reference",
		"amount", "currency", "capture_mode", "capture_requested", "rescue_scheduled", "state", "details",
		"created_at", "updated_at"}).AddRow(
		rec.ID, rec.OrderID, rec.MethodCode, rec.GatewayName, rec.ExternalReference,
		rec.Amount, rec.Currency, rec.CaptureMode, rec.CaptureRequested, rec.RescueScheduled,
		rec.State, details, rec.CreatedAt, rec.UpdatedAt,
	)
}

func TestPaymentRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()
	p.ExternalReference = "PSP1"
	p.SetDetail(domain.DetailPSPReference, "PSP1")
	details, _ := json.Marshal(p.Details)

	mock.ExpectExec("INSERT INTO payments .* ON CONFLICT \\(id\\) DO UPDATE").
		WithArgs(
			p.ID, p.OrderID, "adyen_card", "adyen", "PSP1",
			int64(1130), "EUR", domain.CaptureModeAutomatic, false, false,
			domain.PaymentStateNew, details, p.CreatedAt, p.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Save(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment()
	p.SetDetail(domain.DetailResultCode, "Authorised")

	mock.ExpectQuery("SELECT .+ FROM payments WHERE id").
		WithArgs(p.ID).
		WillReturnRows(paymentRow(p))

	got, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, domain.PaymentStateNew, got.State())
	assert.Equal(t, "Authorised", got.Details[domain.DetailResultCode])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM payments WHERE id").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPaymentRepo_GetByID_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM payments WHERE id").
		WithArgs(id).
		WillReturnError(errors.New("connection refused"))

	_, err = repo.GetByID(context.Background(), id)
	assert.Error(t, err)
}

func TestPaymentRepo_ListByOrderID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	first, second := newTestPayment(), newTestPayment()
	second.OrderID = first.OrderID

	rows := paymentRow(first)
	rec := second.Record()
	details, _ := json.Marshal(rec.Details)
	rows.AddRow(rec.ID, rec.OrderID, rec.MethodCode, rec.GatewayName, rec.ExternalReference,
		rec.Amount, rec.Currency, rec.CaptureMode, rec.CaptureRequested, rec.RescueScheduled,
		rec.State, details, rec.CreatedAt, rec.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM payments WHERE order_id = \\$1 ORDER BY created_at ASC").
		WithArgs(first.OrderID).
		WillReturnRows(rows)

	got, err := repo.ListByOrderID(context.Background(), first.OrderID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
