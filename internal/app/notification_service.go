package app

import (
	"context"
	"fmt"

	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ports/primary"
	"github.com/example/electoral/internal/ports/secondary"
)

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	eventLog secondary.EventLogReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(eventLog secondary.EventLogReader) *NotificationServiceImpl {
	return &NotificationServiceImpl{eventLog: eventLog}
}

// ListNotifications lists notifications, oldest first.
func (s *NotificationServiceImpl) ListNotifications(ctx context.Context, filters primary.NotificationFilters) ([]*primary.Notification, error) {
	events, err := s.eventLog.ListEvents(ctx, secondary.EventFilters{
		Kind:       filters.Kind,
		ElectionID: filters.ElectionID,
		Limit:      filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w: %w", coreelection.ErrStorage, err)
	}

	out := make([]*primary.Notification, len(events))
	for i, e := range events {
		out[i] = &primary.Notification{
			ID:          e.ID,
			Kind:        e.Kind,
			ElectionID:  e.ElectionID,
			CandidateID: e.CandidateID,
			Actor:       e.Actor,
			OccurredAt:  e.OccurredAt,
		}
	}
	return out, nil
}

// Ensure NotificationServiceImpl implements the interface
var _ primary.NotificationService = (*NotificationServiceImpl)(nil)
