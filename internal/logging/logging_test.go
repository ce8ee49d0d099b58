package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("election created", "election_id", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("expected JSON output, got %q", lines[0])
	}
	if record["msg"] != "election created" || record["election_id"] != float64(1) {
		t.Errorf("unexpected record %v", record)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("operation rejected", "kind", "AlreadyVoted")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered at warn, got %q", out)
	}
	if !strings.Contains(out, "kind=AlreadyVoted") {
		t.Errorf("expected text attrs, got %q", out)
	}
}
