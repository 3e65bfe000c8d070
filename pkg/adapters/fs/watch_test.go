package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/equality/pkg/core"
)

func nextEvent(t *testing.T, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case e, ok := <-events:
		require.True(t, ok, "events channel closed")
		return e
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for event")
		return core.Event{}
	}
}

func TestWatch_EmitsForDataFiles(t *testing.T) {
	repo, root := setupRepo(t, map[string]string{"a.yml": "[]"}, func(c *Config) {
		c.Debounce = 20 * time.Millisecond
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return repo.State().(RepositoryState).WatcherActive
	}, time.Second, 10*time.Millisecond)

	// Ignored: wrong extension, hidden file, the output.
	writeFile(t, root, "notes.md", "x")
	writeFile(t, root, ".draft.yml", "[]")
	require.NoError(t, repo.Write(ctx, nil))

	writeFile(t, root, "a.yml", "- {type: simple, considerate: x, inconsiderate: y}\n")
	e := nextEvent(t, events)
	assert.Equal(t, "a.yml", e.Path)

	// Files in directories created after the watch started are seen too.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0755))
	time.Sleep(100 * time.Millisecond)
	writeFile(t, root, "nested/b.yml", "[]")
	e = nextEvent(t, events)
	assert.Equal(t, "nested/b.yml", e.Path)

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, repo.State().(RepositoryState).WatcherActive)
}

func TestWatch_Debounce(t *testing.T) {
	repo, root := setupRepo(t, nil, func(c *Config) {
		c.Debounce = 150 * time.Millisecond
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		writeFile(t, root, "burst.yml", "[]")
	}

	nextEvent(t, events)
	select {
	case e := <-events:
		t.Fatalf("Expected a single event for the burst, got extra %v", e)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatch_CancelledContext(t *testing.T) {
	repo, _ := setupRepo(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Watch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMapEventType(t *testing.T) {
	ev := func(op fsnotify.Op) fsnotify.Event { return fsnotify.Event{Name: "a.yml", Op: op} }

	assert.Equal(t, core.EventCreate, mapEventType(ev(fsnotify.Create)))
	assert.Equal(t, core.EventModify, mapEventType(ev(fsnotify.Write)))
	assert.Equal(t, core.EventDelete, mapEventType(ev(fsnotify.Remove)))
	assert.Equal(t, core.EventDelete, mapEventType(ev(fsnotify.Rename)))
	assert.Equal(t, core.EventType(""), mapEventType(ev(fsnotify.Chmod)))
}
