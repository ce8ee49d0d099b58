package primary

import (
	"context"
	"time"
)

// NotificationService defines the primary port for reading published notifications.
type NotificationService interface {
	// ListNotifications lists notifications, oldest first.
	ListNotifications(ctx context.Context, filters NotificationFilters) ([]*Notification, error)
}

// NotificationFilters contains filter options for listing notifications.
type NotificationFilters struct {
	Kind       string
	ElectionID int64
	Limit      int
}

// Notification is the public view of a published event.
type Notification struct {
	ID          string
	Kind        string
	ElectionID  int64
	CandidateID int64
	Actor       string
	OccurredAt  time.Time
}
