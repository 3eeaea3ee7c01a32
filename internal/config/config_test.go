package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
jwt:
  secret: test-secret
storage:
  type: memory
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 168*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, "0 * * * *", cfg.Reminder.Schedule)
	assert.Equal(t, 24, cfg.Reminder.WindowHours)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.False(t, cfg.Policy.RequireCourseMembership)
	assert.False(t, cfg.Policy.EnforceGradeRange)
	assert.Equal(t, float64(100), cfg.Policy.MaxGrade)
	assert.Equal(t, "logs/app.log", cfg.Log.File)
	assert.Equal(t, 20, cfg.RateLimit.AuthMaxRequests)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	assert.Equal(t, "learning-portal", cfg.Tracing.ServiceName)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File())
}

func TestLoadConfig_Overrides(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8081"
jwt:
  secret: test-secret
  expire_hours: 2
storage:
  type: memory
policy:
  enforce_grade_range: true
  min_grade: 0
  max_grade: 10
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	assert.True(t, cfg.Policy.EnforceGradeRange)
	assert.Equal(t, float64(10), cfg.Policy.MaxGrade)
}

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "short secret in release mode",
			body: "server:\n  mode: release\njwt:\n  secret: short\nstorage:\n  type: memory\n",
		},
		{
			name: "inverted grade range",
			body: "jwt:\n  secret: s\nstorage:\n  type: memory\npolicy:\n  enforce_grade_range: true\n  min_grade: 50\n  max_grade: 10\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
