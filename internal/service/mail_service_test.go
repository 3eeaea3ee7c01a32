package service

import (
	"context"
	"testing"

	"learning_portal_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestLogMailer_KeepsBodyOutOfInfo(t *testing.T) {
	logs := observeLogs(t, zapcore.InfoLevel)
	email := Email{
		To:      "sam@example.com",
		Subject: "Password reset",
		Body:    "Reset here: http://localhost:3000/reset-password/abc123secret",
	}

	require.NoError(t, LogMailer{}.Send(context.Background(), email))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "sam@example.com", fields["to"])
	assert.Equal(t, "Password reset", fields["subject"])
	assert.NotContains(t, fields, "body")
	for _, v := range fields {
		if str, ok := v.(string); ok {
			assert.NotContains(t, str, "abc123secret")
		}
	}
}

func TestLogMailer_BodyAtDebug(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)

	require.NoError(t, LogMailer{}.Send(context.Background(), Email{To: "sam@example.com", Subject: "Hi", Body: "hello"}))

	bodies := logs.FilterField(zap.String("body", "hello"))
	assert.Equal(t, 1, bodies.Len())
	assert.Equal(t, zapcore.DebugLevel, bodies.All()[0].Level)
}
