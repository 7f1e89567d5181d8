package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDurationCarriesTraceID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	TimerLogger = zap.New(core)
	t.Cleanup(InitNop)

	ctx := WithTraceID(context.Background(), "req-42")
	LogDuration(ctx, "Respond")()
	LogDuration(context.Background(), "Untraced")()

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Respond", fields["func"])
	assert.Equal(t, "req-42", fields["trace_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestInitLoggerCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/logs"
	InitLogger(dir)
	t.Cleanup(InitNop)

	AppLogger.Info("hello")
	Sync()
	assert.DirExists(t, dir)
}
