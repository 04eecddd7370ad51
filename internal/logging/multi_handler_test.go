package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("disk full")
}

func TestMultiHandler_FanOut(t *testing.T) {
	var text, js bytes.Buffer
	h := NewMultiHandler(
		NewHandler(&text, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewJSONHandler(&js, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	logger := slog.New(h).With("run", 1).WithGroup("g")

	logger.Debug("only json", "k", "v")
	logger.Warn("both")

	if strings.Contains(text.String(), "only json") {
		t.Errorf("text handler should drop debug records, got: %q", text.String())
	}
	if !strings.Contains(text.String(), "both") {
		t.Errorf("text handler missing warn record, got: %q", text.String())
	}
	if !strings.Contains(js.String(), `"only json"`) || !strings.Contains(js.String(), `"both"`) {
		t.Errorf("json handler missing records, got: %q", js.String())
	}
	if !strings.Contains(js.String(), `"g":{"k":"v"}`) {
		t.Errorf("json handler missing grouped attr, got: %q", js.String())
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	h := NewMultiHandler(
		NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	if !h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info enabled when any handler accepts it")
	}
	if h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug disabled when no handler accepts it")
	}
}

func TestMultiHandler_ReturnsFirstError(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(
		failingHandler{NewHandler(&bytes.Buffer{}, nil)},
		NewHandler(&buf, nil),
	)

	err := slog.New(h).Handler().Handle(t.Context(), slog.NewRecord(time.Time{}, slog.LevelInfo, "still written", 0))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Handle() error = %v, want disk full", err)
	}
	if !strings.Contains(buf.String(), "still written") {
		t.Errorf("second handler should still receive the record, got: %q", buf.String())
	}
}
