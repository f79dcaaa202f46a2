package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reduction: {}\n"), 0o600))

	fw, err := NewFileWatcher(path, 200*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	var reloads atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- fw.Run(ctx, func(context.Context) error {
			reloads.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)

	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o600))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("reduction:\n  mode: HAB\n"), 0o600))
	}

	assert.Eventually(t, func() bool { return reloads.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func startWatcher(t *testing.T, debounce time.Duration, reload ReloadFunc) (path string, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reduction: {}\n"), 0o600))

	fw, err := NewFileWatcher(path, debounce, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	errs := make(chan error, 1)
	go func() { errs <- fw.Run(ctx, reload) }()
	time.Sleep(100 * time.Millisecond)
	return path, cancel, errs
}

func TestFileWatcherSerialisesReloads(t *testing.T) {
	var active, maxActive, completed atomic.Int32
	path, cancel, done := startWatcher(t, 20*time.Millisecond, func(context.Context) error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(200 * time.Millisecond)
		active.Add(-1)
		completed.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("reduction:\n  mode: HAB\n"), 0o600))
	require.Eventually(t, func() bool { return active.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("reduction:\n  mode: LAB\n"), 0o600))

	require.Eventually(t, func() bool { return completed.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), maxActive.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestFileWatcherRunWaitsForReload(t *testing.T) {
	started := make(chan struct{}, 1)
	var finished atomic.Bool
	path, cancel, done := startWatcher(t, 20*time.Millisecond, func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("reduction:\n  mode: HAB\n"), 0o600))
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("reload did not start")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, finished.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
