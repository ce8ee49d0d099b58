package secondary

import (
	"context"
	"time"
)

// Event is a notification published after a committed mutation.
type Event struct {
	ID          string // uuid
	Kind        string // "ElectionCreated" or "CandidateAdded"
	ElectionID  int64
	CandidateID int64 // zero for ElectionCreated
	Actor       string
	OccurredAt  time.Time
}

// EventPublisher delivers notifications to observers.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// EventLogReader reads the durable notification log.
type EventLogReader interface {
	ListEvents(ctx context.Context, filters EventFilters) ([]*Event, error)
}

// EventFilters contains filter options for querying the notification log.
type EventFilters struct {
	Kind       string
	ElectionID int64
	Limit      int
}

// Clock is the current-time source consumed by the ledger services.
type Clock interface {
	Now() time.Time
}
