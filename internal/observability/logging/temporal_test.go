package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func captureLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).Level(zerolog.DebugLevel)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	return entry
}

func TestTemporalLogger_PairsKeyvals(t *testing.T) {
	var buf bytes.Buffer
	l := NewTemporalLogger(captureLogger(&buf))

	l.Info("workflow started", "WorkflowID", "video-processing-demo-001-es-abc12345", "Attempt", 1)

	entry := decodeLine(t, &buf)
	if entry["message"] != "workflow started" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["WorkflowID"] != "video-processing-demo-001-es-abc12345" {
		t.Errorf("WorkflowID = %v", entry["WorkflowID"])
	}
	if entry["Attempt"] != float64(1) {
		t.Errorf("Attempt = %v", entry["Attempt"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestTemporalLogger_TrailingUnpairedValue(t *testing.T) {
	var buf bytes.Buffer
	l := NewTemporalLogger(captureLogger(&buf))

	l.Warn("partial fields", "TaskQueue", "video-processing-task-queue", "dangling")

	entry := decodeLine(t, &buf)
	if entry["TaskQueue"] != "video-processing-task-queue" {
		t.Errorf("TaskQueue = %v", entry["TaskQueue"])
	}
	if entry["value"] != "dangling" {
		t.Errorf("trailing value should land under 'value', got %v", entry["value"])
	}
}

func TestTemporalLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		emit func(l *TemporalLogger)
		want string
	}{
		{"debug", func(l *TemporalLogger) { l.Debug("m") }, "debug"},
		{"info", func(l *TemporalLogger) { l.Info("m") }, "info"},
		{"warn", func(l *TemporalLogger) { l.Warn("m") }, "warn"},
		{"error", func(l *TemporalLogger) { l.Error("m") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(NewTemporalLogger(captureLogger(&buf)))

			entry := decodeLine(t, &buf)
			if entry["level"] != tt.want {
				t.Errorf("level = %v, want %s", entry["level"], tt.want)
			}
		})
	}
}
