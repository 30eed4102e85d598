package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/corkboard/pkg/note"
	"tableflip.dev/corkboard/pkg/store"
)

func newPersistence(t *testing.T) store.Persistence {
	t.Helper()
	p, err := store.Load(store.WithBasePath(nil, t.TempDir()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p
}

func TestListJSON(t *testing.T) {
	p := newPersistence(t)
	saved := []note.Note{{ID: 1, Content: "a", Position: note.Position{X: 2, Y: 1}}}
	if err := p.SaveNotes(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out bytes.Buffer
	l := List{JSON: true, Persistence: p, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []note.Note
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(got) != 1 || got[0] != saved[0] {
		t.Fatalf("unexpected notes %v", got)
	}
}

func TestListNeverWrites(t *testing.T) {
	color.NoColor = true
	p := newPersistence(t)

	var out bytes.Buffer
	l := List{Persistence: p, Out: &out}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "Corkboard - 1 note") {
		t.Fatalf("expected default board listed, got %q", out.String())
	}
	if _, err := p.LoadNotes(); err != store.ErrNoState {
		t.Fatalf("expected nothing saved, got %v", err)
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(b)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestListWatchReprints(t *testing.T) {
	color.NoColor = true
	p := newPersistence(t)
	if err := p.SaveNotes([]note.Note{{ID: 1, Content: "first"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		l := List{Watch: true, Persistence: p, Out: out}
		done <- l.Do(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "first") {
		if time.Now().After(deadline) {
			t.Fatalf("initial listing not printed")
		}
		time.Sleep(10 * time.Millisecond)
	}
	// Give the watcher time to start before writing.
	time.Sleep(100 * time.Millisecond)
	if err := p.SaveNotes([]note.Note{{ID: 1, Content: "first"}, {ID: 2, Content: "second"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	for !strings.Contains(out.String(), "second") {
		if time.Now().After(deadline) {
			t.Fatalf("change not printed; output=%q", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}
