// Package ctxutil carries the caller identity through a context.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"
	"strings"
)

// CallerKey is the context key for the caller identity.
type CallerKey struct{}

// WithCaller returns a context carrying the given caller identity.
// Surrounding whitespace is stripped so "alice" and " alice" dedupe to one voter.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, CallerKey{}, strings.TrimSpace(caller))
}

// CallerFromContext returns the caller identity, or empty string if not set.
func CallerFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CallerKey{}).(string); ok {
		return v
	}
	return ""
}
