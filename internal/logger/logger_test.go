package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

func reset() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("parsed %q", "5x^2")

	if got := buf.String(); got != "[DEBUG] parsed \"5x^2\"\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("test message")
	Info("test message")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("history unavailable: %s", "locked")

	if got := buf.String(); got != "[WARN] history unavailable: locked\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Parse Equation")

	if got := buf.String(); got != "\n=== Parse Equation ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestEnabled(t *testing.T) {
	defer reset()

	tests := []struct {
		verbose bool
		level   Level
		want    bool
	}{
		{false, LevelDebug, false},
		{false, LevelInfo, false},
		{false, LevelWarn, true},
		{true, LevelDebug, true},
		{true, LevelInfo, true},
	}

	for _, tt := range tests {
		SetVerbose(tt.verbose)
		if got := Enabled(tt.level); got != tt.want {
			t.Errorf("Enabled(%s) with verbose=%t = %t, want %t", tt.level, tt.verbose, got, tt.want)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Debug("concurrent %d", n)
			IsVerbose()
		}(i)
	}
	wg.Wait()

	if got := bytes.Count(buf.Bytes(), []byte("\n")); got != 10 {
		t.Errorf("expected 10 lines, got %d", got)
	}
}
