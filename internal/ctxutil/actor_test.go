package ctxutil

import (
	"context"
	"testing"
)

func TestCallerFromContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{"unset", context.Background(), ""},
		{"set", WithCaller(context.Background(), "alice"), "alice"},
		{"trimmed", WithCaller(context.Background(), "  alice\n"), "alice"},
		{"innermost wins", WithCaller(WithCaller(context.Background(), "alice"), "bob"), "bob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CallerFromContext(tt.ctx); got != tt.want {
				t.Errorf("CallerFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}
