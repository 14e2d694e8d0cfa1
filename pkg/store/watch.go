package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventCollectionChanged indicates the named collection was rewritten.
	EventCollectionChanged EventType = iota

	// EventCollectionsInvalidated signals that a collection appeared or
	// disappeared, or that the watcher lost track; callers should reload
	// everything.
	EventCollectionsInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventCollectionChanged:
		return "changed"
	case EventCollectionsInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type       EventType
	Collection string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.logger.Warn("store watcher close failed", zap.String("path", p.basePath), zap.Error(err))
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; the next event
				// for the same collection carries the change.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.logger.Warn("store watcher error", zap.String("path", p.basePath), zap.Error(err))
				// Unclassified failures become a full refresh.
				throttle.Enqueue(Event{Type: EventCollectionsInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}

				key := collectionForPath(evt.Name)
				if key == "" {
					continue
				}
				if evt.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					throttle.Enqueue(Event{Type: EventCollectionsInvalidated}, send)
				}
				throttle.Enqueue(Event{Type: EventCollectionChanged, Collection: key}, send)
			}
		}
	}()

	return events, nil
}

// collectionForPath derives the collection key from a store file path.
func collectionForPath(path string) string {
	return pathToKeyTransform(&diskv.PathKey{FileName: filepath.Base(path)})
}

// eventThrottle coalesces a burst of notifications. Each flush sends at most
// one invalidation, first, then one change per collection in arrival order.
type eventThrottle struct {
	mu          sync.Mutex
	timer       *time.Timer
	delay       time.Duration
	invalidated bool
	changed     []string
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{delay: delay}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev.Type {
	case EventCollectionsInvalidated:
		t.invalidated = true
	default:
		seen := false
		for _, c := range t.changed {
			if c == ev.Collection {
				seen = true
				break
			}
		}
		if !seen {
			t.changed = append(t.changed, ev.Collection)
		}
	}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	invalidated, changed := t.invalidated, t.changed
	t.invalidated, t.changed = false, nil
	t.timer = nil
	t.mu.Unlock()

	if invalidated {
		send(Event{Type: EventCollectionsInvalidated})
	}
	for _, c := range changed {
		send(Event{Type: EventCollectionChanged, Collection: c})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
