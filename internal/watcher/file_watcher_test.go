package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the file watcher:
// - NewFileWatcher succeeds for existing files and for files that do not
//   exist yet in an existing directory
// - Writing a watched file delivers one debounced callback naming it
// - Multiple rapid writes collapse into a single callback batch
// - Writes to unrelated files in the same directory are ignored
// - Stop is idempotent and returns cleanly after context cancellation

// changeCollector records callback deliveries for assertions.
type changeCollector struct {
	mu      sync.Mutex
	batches [][]string
	fired   chan struct{}
}

func newChangeCollector() *changeCollector {
	return &changeCollector{fired: make(chan struct{}, 16)}
}

func (c *changeCollector) callback(files []string) {
	c.mu.Lock()
	c.batches = append(c.batches, files)
	c.mu.Unlock()
	c.fired <- struct{}{}
}

func (c *changeCollector) waitForBatch(t *testing.T) []string {
	t.Helper()

	select {
	case <-c.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("no change callback within deadline")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batches[len(c.batches)-1]
}

func TestNewFileWatcher_MissingFileInExistingDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fw, err := NewFileWatcher([]string{filepath.Join(dir, "not-yet-generated.py")})
	require.NoError(t, err)
	require.NotNil(t, fw)
	require.NoError(t, fw.Stop())
}

func TestFileWatcher_WriteTriggersCallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "client.py")
	require.NoError(t, os.WriteFile(target, []byte("def f():\n    pass\n"), 0o644))

	fw, err := NewFileWatcher([]string{target})
	require.NoError(t, err)
	defer fw.Stop()

	collector := newChangeCollector()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx, collector.callback))

	require.NoError(t, os.WriteFile(target, []byte("def g():\n    pass\n"), 0o644))

	batch := collector.waitForBatch(t)
	require.Len(t, batch, 1)
	abs, err := filepath.EvalSymlinks(batch[0])
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(target)
	require.NoError(t, err)
	assert.Equal(t, want, abs)
}

func TestFileWatcher_RapidWritesDebounced(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "index.ts")
	require.NoError(t, os.WriteFile(target, []byte("export {}\n"), 0o644))

	fw, err := NewFileWatcher([]string{target})
	require.NoError(t, err)
	defer fw.Stop()

	collector := newChangeCollector()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx, collector.callback))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("export {}\n"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	collector.waitForBatch(t)

	// The debounce window has passed; no further callbacks should arrive for
	// the already-delivered writes.
	select {
	case <-collector.fired:
		t.Fatal("rapid writes were not debounced into one callback")
	case <-time.After(time.Second):
	}
}

func TestFileWatcher_UnrelatedFilesIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "client.php")
	require.NoError(t, os.WriteFile(target, []byte("<?php\n"), 0o644))

	fw, err := NewFileWatcher([]string{target})
	require.NoError(t, err)
	defer fw.Stop()

	collector := newChangeCollector()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx, collector.callback))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs\n"), 0o644))

	select {
	case <-collector.fired:
		t.Fatal("unrelated file triggered a callback")
	case <-time.After(time.Second):
	}
}

func TestFileWatcher_StopIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "client.rb")
	require.NoError(t, os.WriteFile(target, []byte("def f; end\n"), 0o644))

	fw, err := NewFileWatcher([]string{target})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, fw.Start(ctx, func([]string) {}))
	cancel()

	assert.NoError(t, fw.Stop())
	assert.NoError(t, fw.Stop())
}
