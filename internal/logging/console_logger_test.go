package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("wrote %d entries", 3)

	if got := buf.String(); got != "wrote 3 entries\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConsoleLogger_VerboseGating(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Verbose("hidden detail")
	if buf.Len() != 0 {
		t.Errorf("verbose output written with verbose disabled: %q", buf.String())
	}

	logger = NewConsoleLoggerTo(&buf, true)
	logger.Verbose("shown detail")
	if got := buf.String(); got != "[VERBOSE] shown detail\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Error("cannot open %s", "/tmp/x")

	if got := buf.String(); !strings.HasPrefix(got, "[ERROR] ") {
		t.Errorf("missing error prefix: %q", got)
	}
}

func TestConsoleLogger_LiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	// Messages without args must not be treated as format strings.
	logger.Info("progress 100%")

	if got := buf.String(); got != "progress 100%\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()
	logger.Verbose("a")
	logger.Info("b")
	logger.Error("c")
}
