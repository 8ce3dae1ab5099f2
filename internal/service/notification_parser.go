package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"adyen-notification-reconciler/internal/core/domain"
	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var referenceRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

type notificationRequest struct {
	Live              string                 `json:"live"`
	NotificationItems []notificationEnvelope `json:"notificationItems"`
}

type notificationEnvelope struct {
	Item json.RawMessage `json:"NotificationRequestItem"`
}

type notificationRequestItem struct {
	EventCode           string                `json:"eventCode" validate:"required"`
	PSPReference        string                `json:"pspReference" validate:"required,reference"`
	OriginalReference   string                `json:"originalReference" validate:"omitempty,reference"`
	MerchantReference   string                `json:"merchantReference" validate:"required"`
	MerchantAccountCode string                `json:"merchantAccountCode"`
	Amount              amountPayload         `json:"amount"`
	Success             scalar                `json:"success"`
	Reason              string                `json:"reason"`
	EventDate           string                `json:"eventDate" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	AdditionalData      domain.AdditionalData `json:"additionalData"`
}

type amountPayload struct {
	Value    int64  `json:"value" validate:"gte=0"`
	Currency string `json:"currency" validate:"omitempty,len=3,uppercase"`
}

// scalar accepts a JSON string, boolean or null and keeps its text form.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*s = ""
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*s = scalar(trimmed)
	default:
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return fmt.Errorf("success: %w", err)
		}
		*s = scalar(str)
	}
	return nil
}

// NotificationParserService implements ports.NotificationParser: it decodes,
// schema-validates and signature-checks every notification item, dropping
// the items that fail.
type NotificationParserService struct {
	merchants ports.MerchantConfigProvider
	sigSvc    ports.SignatureService
	validate  *validator.Validate
	log       zerolog.Logger
}

// NewNotificationParser creates a new NotificationParserService.
func NewNotificationParser(merchants ports.MerchantConfigProvider, sigSvc ports.SignatureService, log zerolog.Logger) *NotificationParserService {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("reference", func(fl validator.FieldLevel) bool {
		return referenceRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register reference validation: %v", err))
	}
	return &NotificationParserService{merchants: merchants, sigSvc: sigSvc, validate: v, log: log}
}

// Parse returns the valid items of body and the number of dropped items.
// Only an unreadable body or an unknown code fail the whole request.
func (p *NotificationParserService) Parse(_ context.Context, code string, body []byte) ([]domain.NotificationItem, int, error) {
	var req notificationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, 0, apperror.ErrMalformedNotification(err)
	}

	account, err := p.merchants.Get(code)
	if err != nil {
		return nil, 0, err
	}

	items := make([]domain.NotificationItem, 0, len(req.NotificationItems))
	dropped := 0
	for i, env := range req.NotificationItems {
		item, err := p.parseItem(code, account, env.Item)
		if err != nil {
			dropped++
			p.log.Warn().
				Err(err).
				Str("code", code).
				Int("index", i).
				Msg("notification item dropped")
			continue
		}
		items = append(items, item)
	}
	return items, dropped, nil
}

func (p *NotificationParserService) parseItem(code string, account *domain.MerchantAccount, raw json.RawMessage) (domain.NotificationItem, error) {
	if len(raw) == 0 {
		return domain.NotificationItem{}, fmt.Errorf("%w: missing NotificationRequestItem", domain.ErrInvalidNotification)
	}

	var in notificationRequestItem
	if err := json.Unmarshal(raw, &in); err != nil {
		return domain.NotificationItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidNotification, err)
	}
	if err := p.validate.Struct(in); err != nil {
		return domain.NotificationItem{}, fmt.Errorf("%w: %v", domain.ErrInvalidNotification, err)
	}

	item := domain.NotificationItem{
		EventCode:           in.EventCode,
		PSPReference:        in.PSPReference,
		OriginalReference:   in.OriginalReference,
		MerchantReference:   in.MerchantReference,
		MerchantAccountCode: in.MerchantAccountCode,
		Amount:              domain.Amount{Value: in.Amount.Value, Currency: in.Amount.Currency},
		Success:             domain.ParseSuccess(string(in.Success)),
		Reason:              in.Reason,
		AdditionalData:      in.AdditionalData,
		PaymentMethodCode:   code,
	}
	if in.EventDate != "" {
		if t, err := time.Parse(time.RFC3339, in.EventDate); err == nil {
			item.EventDate = &t
		}
	}

	if account.MerchantAccount != "" && item.MerchantAccountCode != "" && item.MerchantAccountCode != account.MerchantAccount {
		return domain.NotificationItem{}, fmt.Errorf("%w: merchant account %q", domain.ErrInvalidNotification, item.MerchantAccountCode)
	}

	if account.VerifiesSignatures() {
		signature := item.AdditionalData.Value(domain.AdditionalDataHMACSignature)
		if signature == "" || !p.sigSvc.Verify(account.HMACKey, p.sigSvc.BuildCanonicalString(item), signature) {
			return domain.NotificationItem{}, fmt.Errorf("%w: psp reference %s", domain.ErrInvalidSignature, item.PSPReference)
		}
	} else {
		p.log.Debug().Str("code", code).Str("psp_reference", item.PSPReference).Msg("signature check disabled for payment method")
	}

	// The digest covers the event code as delivered.
	item.EventCode = strings.ToLower(item.EventCode)
	return item, nil
}
