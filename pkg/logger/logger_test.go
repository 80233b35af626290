package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

type traceKey struct{}

func traceFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "bistro", traceFromCtx)

	ctx := context.WithValue(context.Background(), traceKey{}, "abc123")
	log.Info(ctx, "dish created", "dish_id", "42")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	for k, want := range map[string]string{
		"msg":      "dish created",
		"level":    "info",
		"service":  "bistro",
		"dish_id":  "42",
		"trace_id": "abc123",
	} {
		if entry[k] != want {
			t.Errorf("%s: expected %q, got %v", k, want, entry[k])
		}
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "bistro", nil)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-level entries were written: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn entry missing: %s", out)
	}
	if strings.Contains(out, "trace_id") {
		t.Fatalf("unexpected trace_id without a trace function: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
