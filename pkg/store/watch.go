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
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventKeyChanged indicates one stored value was rewritten or removed.
	EventKeyChanged EventType = iota

	// EventInvalidated signals that the watcher could not classify a change
	// and callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
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
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads everything on the next event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if key := keyForPath(p.basePath, evt.Name); key != "" {
					throttle.Enqueue(Event{Type: EventKeyChanged, Key: key}, send)
				}
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file inside the base directory back to its key. Temp
// files and anything unknown map to "".
func keyForPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return ""
	}
	switch rel {
	case NotesKey, DarkModeKey:
		return rel
	default:
		return ""
	}
}

// eventThrottle coalesces rapid change notifications so a watcher reports once
// per burst of filesystem activity. An atomic diskv write shows up as several
// fsnotify events for the same key.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush holds the lock while sending so nothing is sent after Stop returns.
// send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil

	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
