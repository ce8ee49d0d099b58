package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/electoral/internal/ports/secondary"
)

// EventLog implements secondary.EventPublisher and secondary.EventLogReader
// as an append-only table, so observers in other processes can read notifications.
type EventLog struct {
	db *sql.DB
}

// NewEventLog creates a new SQLite event log.
func NewEventLog(db *sql.DB) *EventLog {
	return &EventLog{db: db}
}

// Publish appends event to the log.
func (l *EventLog) Publish(ctx context.Context, event secondary.Event) error {
	if event.ID == "" {
		return fmt.Errorf("event ID must be pre-populated")
	}

	var candidateID sql.NullInt64
	if event.CandidateID != 0 {
		candidateID = sql.NullInt64{Int64: event.CandidateID, Valid: true}
	}

	_, err := l.db.ExecContext(ctx,
		"INSERT INTO events (id, kind, election_id, candidate_id, actor, occurred_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.ID, event.Kind, event.ElectionID, candidateID, event.Actor, event.OccurredAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}
	return nil
}

// ListEvents retrieves events matching the given filters, oldest first.
// With a limit, the most recent events are kept.
func (l *EventLog) ListEvents(ctx context.Context, filters secondary.EventFilters) ([]*secondary.Event, error) {
	query := "SELECT seq, id, kind, election_id, candidate_id, actor, occurred_at FROM events WHERE 1 = 1"
	args := []any{}

	if filters.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filters.Kind)
	}
	if filters.ElectionID > 0 {
		query += " AND election_id = ?"
		args = append(args, filters.ElectionID)
	}

	query += " ORDER BY seq DESC"
	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}
	query = "SELECT id, kind, election_id, candidate_id, actor, occurred_at FROM (" + query + ") ORDER BY seq ASC"

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*secondary.Event
	for rows.Next() {
		var (
			event       secondary.Event
			candidateID sql.NullInt64
			occurredAt  int64
		)
		if err := rows.Scan(&event.ID, &event.Kind, &event.ElectionID, &candidateID, &event.Actor, &occurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.CandidateID = candidateID.Int64
		event.OccurredAt = time.Unix(occurredAt, 0).UTC()
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

var (
	_ secondary.EventPublisher = (*EventLog)(nil)
	_ secondary.EventLogReader = (*EventLog)(nil)
)
