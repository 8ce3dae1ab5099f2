package domain

// CommandName identifies a command type for dispatching.
type CommandName string

const (
	CommandAuthorizePayment    CommandName = "authorize_payment"
	CommandFailPayment         CommandName = "fail_payment"
	CommandCapturePayment      CommandName = "capture_payment"
	CommandCancelPayment       CommandName = "cancel_payment"
	CommandRefund              CommandName = "refund"
	CommandCreateRefund        CommandName = "create_refund"
	CommandFlagRescueScheduled CommandName = "flag_rescue_scheduled"
	CommandAutoRescueSuccess   CommandName = "auto_rescue_success"
	CommandRequestCapture      CommandName = "request_capture"
)

// Command is an instruction resolved from a notification. Every command
// carries the aggregate it applies to.
type Command interface {
	Name() CommandName
}

// AuthorizePayment marks a payment as authorized by the gateway.
type AuthorizePayment struct {
	Payment      *Payment
	Notification NotificationItem
}

func (AuthorizePayment) Name() CommandName { return CommandAuthorizePayment }

// FailPayment marks a payment as refused or failed.
type FailPayment struct {
	Payment      *Payment
	Notification NotificationItem
}

func (FailPayment) Name() CommandName { return CommandFailPayment }

// CapturePayment records a successful capture.
type CapturePayment struct {
	Payment      *Payment
	Notification NotificationItem
}

func (CapturePayment) Name() CommandName { return CommandCapturePayment }

// CancelPayment records a cancellation confirmed by the gateway.
type CancelPayment struct {
	Payment      *Payment
	Notification NotificationItem
}

func (CancelPayment) Name() CommandName { return CommandCancelPayment }

// Refund settles a refund payment the merchant requested earlier.
type Refund struct {
	RefundPayment *RefundPayment
	Payment       *Payment
	Succeeded     bool
	Notification  NotificationItem
}

func (Refund) Name() CommandName { return CommandRefund }

// CreateRefund settles a refund notification no refund reference is known
// for: it adopts a pending merchant refund of the same amount, or records a
// refund initiated on the gateway side.
type CreateRefund struct {
	// Code is the payment method code the notification arrived under.
	Code         string
	Payment      *Payment
	Notification NotificationItem
}

func (CreateRefund) Name() CommandName { return CommandCreateRefund }

// FlagRescueScheduled records that the gateway scheduled an automatic retry
// of a failed payment.
type FlagRescueScheduled struct {
	Payment           *Payment
	MerchantReference string
	PSPReference      string
	RescueReference   string
}

func (FlagRescueScheduled) Name() CommandName { return CommandFlagRescueScheduled }

// AutoRescueSuccess records that an automatic retry succeeded.
type AutoRescueSuccess struct {
	Payment           *Payment
	MerchantReference string
	PSPReference      string
}

func (AutoRescueSuccess) Name() CommandName { return CommandAutoRescueSuccess }

// RequestCapture asks the gateway to capture an authorized payment.
type RequestCapture struct {
	Payment *Payment
}

func (RequestCapture) Name() CommandName { return CommandRequestCapture }
