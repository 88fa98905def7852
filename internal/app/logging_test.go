package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("exporter down")
}

func TestMultiHandler(t *testing.T) {
	var console, debug bytes.Buffer

	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(&console, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)).With("request_id", "abc").WithGroup("booking")

	logger.Debug("seat lock acquired", "id", 1)
	logger.Info("booking created", "id", 2)

	assert.NotContains(t, console.String(), "seat lock acquired")
	assert.Contains(t, console.String(), "booking created")
	assert.Contains(t, console.String(), "request_id=abc")
	assert.Contains(t, console.String(), "booking.id=2")

	assert.Contains(t, debug.String(), "seat lock acquired")
	assert.Contains(t, debug.String(), "booking.id=1")
}

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	text := slog.NewTextHandler(&buf, nil)

	h := NewMultiHandler(failingHandler{text}, text)

	record := slog.NewRecord(testBookedAt, slog.LevelWarn, "lock timeout", 0)
	err := h.Handle(context.Background(), record)

	assert.EqualError(t, err, "exporter down")
	assert.Contains(t, buf.String(), "lock timeout")
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
