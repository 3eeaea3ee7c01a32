package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"learning_portal_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = "jwt:\n  secret: watcher-secret\nstorage:\n  type: memory\n"

func TestWatchConfig_ReloadsPolicy(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(baseConfig), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 1)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) {
			select {
			case reloaded <- cfg:
			default:
			}
		})
	}()

	// give the watcher time to register the directory
	time.Sleep(200 * time.Millisecond)
	updated := baseConfig + "policy:\n  require_course_membership: true\n"
	require.NoError(t, os.WriteFile(file, []byte(updated), 0o644))

	select {
	case cfg := <-reloaded:
		assert.True(t, cfg.Policy.RequireCourseMembership)
	case <-time.After(10 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfig_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(baseConfig), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 2500*time.Millisecond)
	defer cancel()

	calls := 0
	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644)
	}()

	require.NoError(t, WatchConfig(ctx, file, func(*config.Config) { calls++ }))
	assert.Zero(t, calls)
}
