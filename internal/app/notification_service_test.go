package app

import (
	"context"
	"errors"
	"testing"

	coreelection "github.com/example/electoral/internal/core/election"
	"github.com/example/electoral/internal/ports/primary"
	"github.com/example/electoral/internal/ports/secondary"
)

// Ensure mockEventLog implements the interface
var _ secondary.EventLogReader = (*mockEventLog)(nil)

type mockEventLog struct {
	events      []*secondary.Event
	err         error
	lastFilters secondary.EventFilters
}

func (m *mockEventLog) ListEvents(ctx context.Context, filters secondary.EventFilters) ([]*secondary.Event, error) {
	m.lastFilters = filters
	return m.events, m.err
}

func TestListNotifications(t *testing.T) {
	log := &mockEventLog{events: []*secondary.Event{
		{ID: "a", Kind: coreelection.EventElectionCreated, ElectionID: 1, Actor: "alice", OccurredAt: testStart},
		{ID: "b", Kind: coreelection.EventCandidateAdded, ElectionID: 1, CandidateID: 3, Actor: "alice", OccurredAt: testStart},
	}}
	svc := NewNotificationService(log)

	got, err := svc.ListNotifications(context.Background(), primary.NotificationFilters{ElectionID: 1, Limit: 10})

	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(got) != 2 || got[1].CandidateID != 3 {
		t.Errorf("unexpected notifications %+v", got)
	}
	if log.lastFilters.ElectionID != 1 || log.lastFilters.Limit != 10 {
		t.Errorf("filters not forwarded: %+v", log.lastFilters)
	}
}

func TestListNotifications_StorageError(t *testing.T) {
	svc := NewNotificationService(&mockEventLog{err: errDiskFull})

	_, err := svc.ListNotifications(context.Background(), primary.NotificationFilters{})

	if !errors.Is(err, coreelection.ErrStorage) || !errors.Is(err, errDiskFull) {
		t.Fatalf("expected storage error wrapping cause, got %v", err)
	}
}
