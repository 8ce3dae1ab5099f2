package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationOutcome is how the processing of one item ended.
type NotificationOutcome string

const (
	OutcomeProcessed NotificationOutcome = "processed"
	OutcomeFailed    NotificationOutcome = "failed"
)

// NotificationLogEntry is the protocol record written for every processed item.
type NotificationLogEntry struct {
	ID                uuid.UUID
	Code              string
	EventCode         string
	Event             Event
	PSPReference      string
	MerchantReference string
	Command           CommandName
	Outcome           NotificationOutcome
	Error             *string
	CreatedAt         time.Time
}
