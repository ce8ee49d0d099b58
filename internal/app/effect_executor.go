// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/electoral/internal/core/effects"
	"github.com/example/electoral/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" for post-commit side effects.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor publishes notifications and writes log effects.
type DefaultEffectExecutor struct {
	publisher secondary.EventPublisher
	logger    *slog.Logger
	newID     func() string
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
// A nil publisher drops notifications.
func NewEffectExecutor(publisher secondary.EventPublisher, logger *slog.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		publisher: publisher,
		logger:    ResolveLogger(logger),
		newID:     uuid.NewString,
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.NotifyEffect:
		return e.executeNotify(ctx, typed)
	case effects.LogEffect:
		e.executeLog(ctx, typed)
		return nil
	case effects.CompositeEffect:
		return e.Execute(ctx, typed.Effects)
	case effects.NoEffect:
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeNotify(ctx context.Context, eff effects.NotifyEffect) error {
	if e.publisher == nil {
		return nil
	}
	return e.publisher.Publish(ctx, secondary.Event{
		ID:          e.newID(),
		Kind:        eff.Kind,
		ElectionID:  eff.ElectionID,
		CandidateID: eff.CandidateID,
		Actor:       eff.Actor,
		OccurredAt:  time.Unix(eff.OccurredAt, 0).UTC(),
	})
}

func (e *DefaultEffectExecutor) executeLog(ctx context.Context, eff effects.LogEffect) {
	attrs := make([]any, 0, 2*len(eff.Fields)+6)
	attrs = append(attrs, "module", "electoral/registry", "layer", "effects")
	for k, v := range eff.Fields {
		attrs = append(attrs, k, v)
	}
	e.logger.Log(ctx, levelFor(eff.Level), eff.Message, attrs...)
}

func levelFor(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Ensure DefaultEffectExecutor implements the interface
var _ EffectExecutor = (*DefaultEffectExecutor)(nil)
