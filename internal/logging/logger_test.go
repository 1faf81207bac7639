package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "unknown defaults to info", input: "verbose", want: LevelInfo},
		{name: "empty defaults to info", input: "", want: LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(LevelWarn, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message should be emitted at warn level")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message should be emitted at warn level")
	}
}

func TestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(LevelInfo, &buf)

	logger.Info("fetched", WithFields(map[string]interface{}{
		"source": "weapons",
		"count":  17,
	}))

	out := buf.String()
	if !strings.Contains(out, "source=weapons") {
		t.Errorf("output missing source field: %s", out)
	}
	if !strings.Contains(out, "count=17") {
		t.Errorf("output missing count field: %s", out)
	}
}

func TestWithFieldMerge(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(LevelInfo, &buf)

	logger.Info("spin", WithField("session", "abc"), WithField("pool_size", 3))

	out := buf.String()
	if !strings.Contains(out, "session=abc") || !strings.Contains(out, "pool_size=3") {
		t.Errorf("output missing merged fields: %s", out)
	}
}
