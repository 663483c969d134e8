package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, WritingsDir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, dir, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to start before writing.
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(filepath.Join(dir, ReadsFile), []byte("[]\n"), 0o644); err != nil {
			t.Fatalf("write reads: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, WritingsDir, "01-a.md"), []byte("---\ntitle: A\n---\nbody\n"), 0o644); err != nil {
		t.Fatalf("write writing: %v", err)
	}

	seen := map[string]bool{}
	deadline := time.After(3 * time.Second)
	for !seen[ReadsFile] || !seen["writings/01-a.md"] {
		select {
		case c, ok := <-ch:
			if !ok {
				t.Fatalf("channel closed early")
			}
			if c.Err != nil {
				t.Fatalf("watch error: %v", c.Err)
			}
			for _, f := range c.Files {
				seen[f] = true
			}
		case <-deadline:
			t.Fatalf("timed out, saw %v", seen)
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, t.TempDir(), 0)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			// drain a stray change, then expect close
			if _, ok := <-ch; ok {
				t.Fatalf("channel not closed after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if _, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), 0); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
