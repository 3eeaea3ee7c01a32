package logger

import (
	"testing"

	"learning_portal_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		mode  string
		level string
		want  zapcore.Level
	}{
		{"debug mode default", "debug", "", zapcore.DebugLevel},
		{"release mode default", "release", "", zapcore.InfoLevel},
		{"explicit warn", "debug", "warn", zapcore.WarnLevel},
		{"unknown falls back", "release", "loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Mode = tt.mode
			cfg.Log.Level = tt.level
			assert.Equal(t, tt.want, Level(cfg))
		})
	}
}

func TestInitLogger_StdoutOnly(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	cfg := &config.Config{}
	cfg.Server.Mode = "release"
	InitLogger(cfg)

	assert.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Log.Core().Enabled(zapcore.InfoLevel))
}
