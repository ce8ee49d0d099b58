package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/electoral/internal/adapters/clock"
	"github.com/example/electoral/internal/adapters/memory"
	"github.com/example/electoral/internal/core/effects"
	"github.com/example/electoral/internal/ctxutil"
	"github.com/example/electoral/internal/ports/secondary"
)

var testStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

const day = 24 * time.Hour

// Ensure mockEffectExecutor implements the interface
var _ EffectExecutor = (*mockEffectExecutor)(nil)

// mockEffectExecutor records every effect it is asked to execute.
type mockEffectExecutor struct {
	mu      sync.Mutex
	effects []effects.Effect
	err     error
}

func (m *mockEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.effects = append(m.effects, effs...)
	return m.err
}

func (m *mockEffectExecutor) notifications() []effects.NotifyEffect {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []effects.NotifyEffect
	for _, eff := range m.effects {
		if n, ok := eff.(effects.NotifyEffect); ok {
			out = append(out, n)
		}
	}
	return out
}

// Ensure failingLedger implements the interface
var _ secondary.Ledger = (*failingLedger)(nil)

// failingLedger fails every unit of work with err.
type failingLedger struct {
	err error
}

func (f *failingLedger) View(ctx context.Context, fn func(tx secondary.LedgerReader) error) error {
	return f.err
}

func (f *failingLedger) Update(ctx context.Context, fn func(tx secondary.LedgerWriter) error) error {
	return f.err
}

// Ensure mockPublisher implements the interface
var _ secondary.EventPublisher = (*mockPublisher)(nil)

type mockPublisher struct {
	events []secondary.Event
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, event secondary.Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

var errDiskFull = errors.New("disk full")

type testRegistry struct {
	service  *ElectionServiceImpl
	clock    *clock.Manual
	executor *mockEffectExecutor
}

func newTestRegistry(t *testing.T) *testRegistry {
	t.Helper()
	manual := clock.NewManual(testStart)
	executor := &mockEffectExecutor{}
	return &testRegistry{
		service:  NewElectionService(memory.NewLedger(), manual, executor, nil),
		clock:    manual,
		executor: executor,
	}
}

func as(caller string) context.Context {
	return ctxutil.WithCaller(context.Background(), caller)
}
