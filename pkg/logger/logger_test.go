package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs redirects the global logger to an in-memory buffer for the
// duration of fn and returns the captured output.
func captureLogs(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	prev := defaultLogger
	SetLogger(slog.New(handler))
	t.Cleanup(func() { SetLogger(prev) })
	fn()
	return buf.String()
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{name: "info", fn: func() { Info("info-msg", "key", "val") }, want: "info-msg"},
		{name: "warn", fn: func() { Warn("warn-msg") }, want: "warn-msg"},
		{name: "error", fn: func() { Error("err-msg", "err", "oops") }, want: "err-msg"},
		{name: "debug", fn: func() { Debug("dbg-msg") }, want: "dbg-msg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := captureLogs(t, tc.fn)
			if !strings.Contains(out, tc.want) {
				t.Errorf("expected %q in output, got: %s", tc.want, out)
			}
		})
	}
}

func TestFormattedLevels(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{name: "infof", fn: func() { Infof("formatted %s %d", "val", 42) }, want: "formatted val 42"},
		{name: "warnf", fn: func() { Warnf("warnf-%d", 7) }, want: "warnf-7"},
		{name: "errorf", fn: func() { Errorf("errorf-%s", "x") }, want: "errorf-x"},
		{name: "debugf", fn: func() { Debugf("debugf-%s", "y") }, want: "debugf-y"},
		{name: "printf", fn: func() { Printf("printf-%s", "z") }, want: "printf-z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := captureLogs(t, tc.fn)
			if !strings.Contains(out, tc.want) {
				t.Errorf("expected %q in output, got: %s", tc.want, out)
			}
		})
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	prev := defaultLogger
	SetLogger(l)
	defer SetLogger(prev)
	Debugf("quiet-%s", "please")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed at info level, got: %s", buf.String())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	prev := defaultLogger
	SetLogger(l)
	defer SetLogger(prev)
	Info("set-logger-test")
	if !strings.Contains(buf.String(), "set-logger-test") {
		t.Errorf("custom logger should capture output: %s", buf.String())
	}
}
