package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	l, buf := newBufLogger()
	ctx := context.Background()

	l.Debug(ctx, "d1")
	l.Info(ctx, "i1")
	l.Warn(ctx, "w1")
	l.Error(ctx, "e1")

	out := buf.String()
	for _, want := range []string{"d1", "i1", "w1", "e1"} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	l, buf := newBufLogger()

	child := l.With("component", "transport")
	require.NotNil(t, child)
	child.Info(context.Background(), "hello")

	assert.True(t, strings.Contains(buf.String(), "component=transport"))
}

func TestNop_DoesNothing(t *testing.T) {
	l := Nop()
	// must not panic
	l.Debug(context.Background(), "x")
	l.Info(context.Background(), "x", "k", "v")
	l.Warn(context.Background(), "x")
	l.Error(context.Background(), "x")
	require.NotNil(t, l.With("a", 1))
}
