package dioteko

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should discard every level")
	}
}

func TestViolationIsLogged(t *testing.T) {
	buf := captureLogs(t)
	err := violation("Window.BeginDrawing", ErrFrameActive)
	if !errors.Is(err, ErrFrameActive) {
		t.Fatalf("violation does not wrap its cause: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "op=Window.BeginDrawing") {
		t.Errorf("log output = %q", out)
	}
}

func TestHandleLifecycleIsLogged(t *testing.T) {
	buf := captureLogs(t)
	var u unloadCounter
	a := newTestTexture(&u)
	_ = a.Release()
	out := buf.String()
	for _, want := range []string{"resource loaded", "resource unloaded", "rc block freed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	captureLogs(t)
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
