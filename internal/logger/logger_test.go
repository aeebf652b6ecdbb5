package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(WarnLevel, TextFormat, &buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message", nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("low levels leaked through filter: %s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected warn and error in output: %s", out)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(InfoLevel, TextFormat, &buf).WithComponent("renderer")

	l.Info("stage complete", map[string]any{"stage": "grid"})
	out := buf.String()
	if !strings.Contains(out, "[renderer]") {
		t.Errorf("component tag missing: %s", out)
	}
	if !strings.Contains(out, "stage=grid") {
		t.Errorf("field missing: %s", out)
	}
	if !strings.Contains(out, "INFO") {
		t.Errorf("level missing: %s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(InfoLevel, JSONFormat, &buf)

	l.Info("hello", map[string]any{"n": 1})
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if decoded["message"] != "hello" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["level"] != "INFO" {
		t.Errorf("level = %v", decoded["level"])
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(InfoLevel, TextFormat, &buf)
	l.Debugf("hidden %d", 1)
	l.SetLevel(DebugLevel)
	l.Debugf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug leaked before SetLevel: %s", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("debug missing after SetLevel: %s", out)
	}
}
