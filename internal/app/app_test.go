package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"learning_portal_backend/internal/config"
	"learning_portal_backend/internal/service"
	"learning_portal_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const watchedConfig = "jwt:\n  secret: app-test-secret\nstorage:\n  type: memory\nreminder:\n  enabled: false\n"

func TestBackgroundTasks_WatchLoadedConfigDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(watchedConfig), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)
	require.Equal(t, file, cfg.File())

	a := &App{Config: cfg}
	s := &services{policy: service.NewPolicy(cfg.Policy)}
	a.services = s
	a.startBackgroundTasks(s)
	t.Cleanup(func() {
		if a.stopWatcher != nil {
			a.stopWatcher()
		}
		<-a.cron.Stop().Done()
	})
	require.NotNil(t, a.stopWatcher)

	time.Sleep(200 * time.Millisecond)
	updated := watchedConfig + "policy:\n  enforce_grade_range: true\n  min_grade: 0\n  max_grade: 10\n"
	require.NoError(t, os.WriteFile(file, []byte(updated), 0o644))

	require.Eventually(t, func() bool {
		return s.policy.Get().EnforceGradeRange
	}, 10*time.Second, 100*time.Millisecond)
	assert.Equal(t, float64(10), s.policy.Get().MaxGrade)
}

func TestBackgroundTasks_NoConfigFile(t *testing.T) {
	cfg := &config.Config{ConfigDir: t.TempDir()}
	a := &App{Config: cfg}
	s := &services{policy: service.NewPolicy(cfg.Policy)}
	a.services = s

	a.startBackgroundTasks(s)
	t.Cleanup(func() { <-a.cron.Stop().Done() })
	assert.Nil(t, a.stopWatcher)
}

func TestCloseClients_LogsRedisCloseFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	require.NoError(t, rdb.Close())

	a := &App{Redis: rdb}
	a.closeClients(context.Background())

	entries := logs.FilterMessage("Failed to close redis client").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "closed")
}
