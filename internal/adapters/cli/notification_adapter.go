package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/electoral/internal/ports/primary"
)

// NotificationAdapter translates CLI operations to NotificationService calls.
type NotificationAdapter struct {
	service primary.NotificationService
	out     io.Writer
}

// NewNotificationAdapter creates a new NotificationAdapter with the given service.
func NewNotificationAdapter(service primary.NotificationService, out io.Writer) *NotificationAdapter {
	return &NotificationAdapter{
		service: service,
		out:     out,
	}
}

// List prints notifications, oldest first.
func (a *NotificationAdapter) List(ctx context.Context, kind string, electionID int64, limit int) error {
	notifications, err := a.service.ListNotifications(ctx, primary.NotificationFilters{
		Kind:       kind,
		ElectionID: electionID,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		fmt.Fprintln(a.out, "No notifications found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-16s %-9s %-10s %s\n", "AT", "KIND", "ELECTION", "CANDIDATE", "ACTOR")
	fmt.Fprintln(a.out, rule)
	for _, n := range notifications {
		candidate := "-"
		if n.CandidateID != 0 {
			candidate = fmt.Sprintf("%d", n.CandidateID)
		}
		fmt.Fprintf(a.out, "%-20s %-16s %-9d %-10s %s\n", formatTime(n.OccurredAt), n.Kind, n.ElectionID, candidate, n.Actor)
	}
	fmt.Fprintln(a.out)

	return nil
}
