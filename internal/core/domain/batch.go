package domain

import "errors"

// FailureKind is the machine-readable name of an item failure.
type FailureKind string

const (
	FailureUnmappedAction    FailureKind = "UnmappedAdyenActionException"
	FailureNoCommandResolved FailureKind = "NoCommandResolvedException"
	FailureInternal          FailureKind = "InternalError"
)

// ClassifyFailure maps an item error to its failure kind.
func ClassifyFailure(err error) FailureKind {
	switch {
	case errors.Is(err, ErrUnmappedAction):
		return FailureUnmappedAction
	case errors.Is(err, ErrNoCommandResolved), errors.Is(err, ErrAmbiguousRescue):
		return FailureNoCommandResolved
	default:
		return FailureInternal
	}
}

// IsResolutionFailure reports whether the kind means no command could be placed.
func (k FailureKind) IsResolutionFailure() bool {
	return k == FailureUnmappedAction || k == FailureNoCommandResolved
}

// ItemFailure describes one item that could not be applied.
type ItemFailure struct {
	PSPReference string
	EventCode    string
	Kind         FailureKind
	Err          error
}

// BatchOutcome summarizes what the gateway should be told about a batch.
type BatchOutcome int

const (
	// BatchAccepted means at least one item succeeded or nothing needed acting on.
	BatchAccepted BatchOutcome = iota
	// BatchUnresolved means no item succeeded and a command could not be resolved.
	BatchUnresolved
	// BatchFailed means no item succeeded because of infrastructure failures.
	BatchFailed
)

// BatchResult is the result of processing one notification request.
type BatchResult struct {
	Received  int
	Dropped   int
	Succeeded int
	Failures  []ItemFailure
}

// Fail records a failed item.
func (r *BatchResult) Fail(item NotificationItem, err error) {
	r.Failures = append(r.Failures, ItemFailure{
		PSPReference: item.PSPReference,
		EventCode:    item.EventCode,
		Kind:         ClassifyFailure(err),
		Err:          err,
	})
}

// Outcome returns the batch outcome and, for BatchUnresolved, the kind of the
// last resolution failure.
func (r *BatchResult) Outcome() (BatchOutcome, FailureKind) {
	if r.Succeeded > 0 || len(r.Failures) == 0 {
		return BatchAccepted, ""
	}
	for i := len(r.Failures) - 1; i >= 0; i-- {
		if k := r.Failures[i].Kind; k.IsResolutionFailure() {
			return BatchUnresolved, k
		}
	}
	return BatchFailed, FailureInternal
}
