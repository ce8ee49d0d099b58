// Package wire provides dependency injection for the electoral application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/example/electoral/internal/adapters/clock"
	cliadapter "github.com/example/electoral/internal/adapters/cli"
	"github.com/example/electoral/internal/adapters/events"
	"github.com/example/electoral/internal/adapters/memory"
	"github.com/example/electoral/internal/adapters/sqlite"
	"github.com/example/electoral/internal/app"
	"github.com/example/electoral/internal/config"
	"github.com/example/electoral/internal/db"
	"github.com/example/electoral/internal/logging"
	"github.com/example/electoral/internal/ports/primary"
)

var (
	cfg                 *config.Config
	logger              *slog.Logger
	database            *sql.DB
	electionService     primary.ElectionService
	notificationService primary.NotificationService
	initErr             error
	once                sync.Once
)

// Configure sets the configuration used by the singletons.
// It must be called before the first service accessor to take effect.
func Configure(c *config.Config) {
	cfg = c
}

// Logger returns the configured logger, writing to stderr.
func Logger() *slog.Logger {
	if logger == nil {
		if cfg == nil {
			return slog.Default()
		}
		logger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	}
	return logger
}

// ElectionService returns the singleton ElectionService instance.
func ElectionService() (primary.ElectionService, error) {
	once.Do(initServices)
	return electionService, initErr
}

// NotificationService returns the singleton NotificationService instance.
func NotificationService() (primary.NotificationService, error) {
	once.Do(initServices)
	return notificationService, initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		cfg, _, initErr = config.Load()
		if initErr != nil {
			return
		}
	}

	// Get database connection
	database, initErr = db.Open(cfg.DBPath)
	if initErr != nil {
		return
	}

	// Create adapters (secondary ports) with the injected DB
	ledger := sqlite.NewLedger(database)
	eventLog := sqlite.NewEventLog(database)
	bus := events.NewBus(events.DefaultBuffer, eventLog)

	// Create effect executor publishing to the bus
	executor := app.NewEffectExecutor(bus, Logger())

	// Create services (primary ports implementation)
	electionService = app.NewElectionService(ledger, clock.System{}, executor, Logger())
	notificationService = app.NewNotificationService(eventLog)
}

// Close releases the database connection, if one was opened.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// ElectionAdapter returns a new ElectionAdapter writing to stdout.
func ElectionAdapter() (*cliadapter.ElectionAdapter, error) {
	return ElectionAdapterWithOutput(os.Stdout)
}

// ElectionAdapterWithOutput returns a new ElectionAdapter writing to the given output.
func ElectionAdapterWithOutput(out io.Writer) (*cliadapter.ElectionAdapter, error) {
	svc, err := ElectionService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewElectionAdapter(svc, out), nil
}

// NotificationAdapter returns a new NotificationAdapter writing to stdout.
func NotificationAdapter() (*cliadapter.NotificationAdapter, error) {
	svc, err := NotificationService()
	if err != nil {
		return nil, err
	}
	return cliadapter.NewNotificationAdapter(svc, os.Stdout), nil
}

// Sandbox is a self-contained in-memory registry, used for dry runs.
type Sandbox struct {
	Service primary.ElectionService
	Bus     *events.Bus
	Clock   *clock.Manual
}

// NewSandbox builds an in-memory registry driven by a manual clock.
// Nothing it does touches the configured database.
func NewSandbox(start time.Time, log *slog.Logger) *Sandbox {
	manual := clock.NewManual(start)
	bus := events.NewBus(events.DefaultBuffer)
	executor := app.NewEffectExecutor(bus, log)
	return &Sandbox{
		Service: app.NewElectionService(memory.NewLedger(), manual, executor, log),
		Bus:     bus,
		Clock:   manual,
	}
}
