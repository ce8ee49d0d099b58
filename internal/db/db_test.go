package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_SchemaSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "electoral.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := first.Exec("UPDATE counters SET value = 5 WHERE name = 'election'"); err != nil {
		t.Fatalf("failed to bump counter: %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	if err := InitSchema(second); err != nil {
		t.Fatalf("InitSchema is not idempotent: %v", err)
	}

	var value int
	if err := second.QueryRow("SELECT value FROM counters WHERE name = 'election'").Scan(&value); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	if value != 5 {
		t.Errorf("expected counter to survive reopen, got %d", value)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/electoral.db")
	for _, want := range []string{"_txlock=immediate", "_foreign_keys=on", "_busy_timeout="} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q missing %q", dsn, want)
		}
	}
}
