package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewLoggerLevels(t *testing.T) {
	l := New()
	if l == nil {
		t.Fatal("expected logger, got nil")
	}
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info level must be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level must be filtered out")
	}
}

func TestHandlerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newHandler(&buf))

	l.Info("order created", slog.String("order_id", "o-1"))
	l.Debug("should be dropped")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected a single log line, got %d", len(lines))
	}

	var record map[string]any
	if err := json.Unmarshal(lines[0], &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["msg"] != "order created" {
		t.Errorf("unexpected msg %v", record["msg"])
	}
	if record["order_id"] != "o-1" {
		t.Errorf("unexpected order_id %v", record["order_id"])
	}
}
