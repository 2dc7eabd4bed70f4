package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := make(map[string]any)
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("failed to decode log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogger_Fields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, "debug")

	log.With("sessionId", "s1").WithGroup("txn").Info("Transaction scope opened",
		"depth", 2,
		"duration", 5*time.Millisecond,
		"error", errors.New("boom"),
		slog.Group("store", "keys", 3),
	)

	entries := decodeLines(t, buf)
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	entry := entries[0]

	if entry["message"] != "Transaction scope opened" {
		t.Errorf("unexpected message %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("unexpected level %v", entry["level"])
	}
	if entry["sessionId"] != "s1" {
		t.Errorf("expected ungrouped sessionId, got %v", entry)
	}
	if entry["txn.depth"] != float64(2) {
		t.Errorf("expected grouped depth, got %v", entry)
	}
	if entry["txn.error"] != "boom" {
		t.Errorf("expected error text, got %v", entry["txn.error"])
	}
	if entry["txn.store.keys"] != float64(3) {
		t.Errorf("expected nested group key, got %v", entry)
	}
	if _, ok := entry["txn.duration"]; !ok {
		t.Errorf("expected duration field, got %v", entry)
	}
}

func TestLogger_Level(t *testing.T) {
	tests := []struct {
		level   string
		debug   bool
		info    bool
		warn    bool
		errored bool
	}{
		{"debug", true, true, true, true},
		{"info", false, true, true, true},
		{"warn", false, false, true, true},
		{"error", false, false, false, true},
		{"bogus", false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := NewWithWriter(buf, tt.level)
			log.Debug("debug")
			log.Info("info")
			log.Warn("warn")
			log.Error("error")

			seen := make(map[string]bool)
			for _, entry := range decodeLines(t, buf) {
				seen[entry["message"].(string)] = true
			}
			if seen["debug"] != tt.debug || seen["info"] != tt.info || seen["warn"] != tt.warn || seen["error"] != tt.errored {
				t.Errorf("level %q emitted %v", tt.level, seen)
			}
		})
	}
}
