package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextAddsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	ctx := WithFields(context.Background(), zap.String("request_id", "abc"))
	ctx = WithFields(ctx, zap.String("caller", "0x1"))

	InfoCtx(ctx, "hello", zap.Int("n", 1))
	Info("plain")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "hello", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "0x1", fields["caller"])
	assert.Equal(t, int64(1), fields["n"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		DebugCtx(context.Background(), "debug")
		ErrorCtx(context.Background(), nil)
	})
}
