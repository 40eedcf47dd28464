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

func TestSchedulerDelayFor(t *testing.T) {
	s := NewScheduler(100*time.Millisecond, 500*time.Millisecond)

	assert.Equal(t, 100*time.Millisecond, s.DelayFor(0))
	assert.Equal(t, 100*time.Millisecond, s.DelayFor(512))
	assert.Greater(t, s.DelayFor(10*1024), s.DelayFor(1024))
	assert.Equal(t, 500*time.Millisecond, s.DelayFor(1024*1024))
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(0, 0)

	assert.Equal(t, 150*time.Millisecond, s.DelayFor(0))
	assert.Equal(t, 150*time.Millisecond, s.DelayFor(1024*1024)) // max clamped to min
}

func TestSchedulerSupersession(t *testing.T) {
	s := NewScheduler(30*time.Millisecond, 30*time.Millisecond)
	defer s.Stop()

	var firstRuns, secondRuns atomic.Int32
	s.Schedule(0, func() { firstRuns.Add(1) })
	s.Schedule(0, func() { secondRuns.Add(1) })

	time.Sleep(120 * time.Millisecond)

	assert.Equal(t, int32(0), firstRuns.Load(), "superseded run must not fire")
	assert.Equal(t, int32(1), secondRuns.Load())
}

func TestSchedulerStop(t *testing.T) {
	s := NewScheduler(20*time.Millisecond, 20*time.Millisecond)

	var runs atomic.Int32
	s.Schedule(0, func() { runs.Add(1) })
	s.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestWatcherDeliversSettledContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	require.NoError(t, os.WriteFile(path, []byte("v0"), 0644))

	got := make(chan string, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, 50*time.Millisecond, func(_ string, content []byte) {
		got <- string(content)
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	go w.Run(ctx)

	// Burst of writes: only the settled content must arrive.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))

	select {
	case content := <-got:
		assert.Equal(t, "v2", content)
	case <-ctx.Done():
		t.Fatal("no notification before timeout")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.html")
	require.NoError(t, os.WriteFile(path, []byte("v0"), 0644))

	got := make(chan string, 4)
	w, err := NewWatcher(path, 10*time.Millisecond, 20*time.Millisecond, func(_ string, content []byte) {
		got <- string(content)
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)

	select {
	case content := <-got:
		t.Fatalf("unexpected notification: %q", content)
	default:
	}
}

func TestNewWatcherRequiresHandler(t *testing.T) {
	_, err := NewWatcher("x.html", 0, 0, nil)
	assert.Error(t, err)
}
