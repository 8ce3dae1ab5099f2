package domain

import "errors"

var (
	// ErrReferenceNotFound signals an unmapped (merchant code, reference) pair.
	// It is expected and recoverable: the gateway redelivers.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrReferenceExists is returned by reference repositories when the
	// (code, reference) pair is already stored.
	ErrReferenceExists = errors.New("reference already exists")

	// ErrReferenceConflict means the reference is already bound to another target.
	ErrReferenceConflict = errors.New("reference bound to another target")

	// ErrNoCommandResolved means no resolver or factory mapping could place the item.
	ErrNoCommandResolved = errors.New("no command resolved")

	// ErrUnmappedAction means the event name has no handler mapping.
	ErrUnmappedAction = errors.New("unmapped gateway action")

	// ErrAmbiguousRescue flags a success / rescue-scheduled combination that
	// the auto-rescue flow does not define.
	ErrAmbiguousRescue = errors.New("ambiguous auto-rescue notification")

	ErrInvalidNotification = errors.New("invalid notification item")
	ErrInvalidSignature    = errors.New("invalid notification signature")
	ErrMerchantNotFound    = errors.New("merchant account not configured")

	ErrUnknownGraph      = errors.New("unknown state machine graph")
	ErrUnknownTransition = errors.New("unknown transition")
	ErrNoHandler         = errors.New("no handler registered for command")
)
