package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle is how long Watch waits for a burst of writes to end.
const DefaultSettle = 150 * time.Millisecond

// Change is one settled burst of filesystem activity under a content tree.
type Change struct {
	// Files are the touched paths, relative to the watched root.
	Files []string
	// Err is set when the watcher itself reported a problem.
	Err error
}

// Watch reports changes under dir until ctx is cancelled. Rapid writes are
// coalesced into a single Change once no event arrived for settle. The channel
// is closed when ctx is done or the watcher fails.
func Watch(ctx context.Context, dir string, settle time.Duration) (<-chan Change, error) {
	if settle <= 0 {
		settle = DefaultSettle
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("content: resolve %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: create watcher: %w", err)
	}
	dirs, err := collectDirs(root)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("content: enumerate %s: %w", root, err)
	}
	watched := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("content: watch %s: %w", d, err)
		}
		watched[d] = struct{}{}
	}

	changes := make(chan Change, 8)
	go func() {
		defer close(changes)
		defer watcher.Close()

		batch := newBatch(settle)
		defer batch.stop()

		send := func(c Change) {
			select {
			case changes <- c:
			case <-ctx.Done():
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-batch.ready:
				if files := batch.take(); len(files) > 0 {
					send(Change{Files: files})
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Change{Err: err})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						d := filepath.Clean(evt.Name)
						if _, found := watched[d]; !found && watcher.Add(d) == nil {
							watched[d] = struct{}{}
						}
					}
				}
				rel, err := filepath.Rel(root, evt.Name)
				if err != nil {
					rel = evt.Name
				}
				batch.add(filepath.ToSlash(rel))
			}
		}
	}()
	return changes, nil
}

func collectDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if len(dirs) == 0 && err == nil {
		err = fmt.Errorf("%s: %w", root, fs.ErrNotExist)
	}
	return dirs, err
}

// batch collects paths and signals ready once the burst settles.
type batch struct {
	mu    sync.Mutex
	files map[string]struct{}
	timer *time.Timer
	delay time.Duration
	ready chan struct{}
}

func newBatch(delay time.Duration) *batch {
	return &batch{
		files: make(map[string]struct{}),
		delay: delay,
		ready: make(chan struct{}, 1),
	}
}

func (b *batch) add(file string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.files[file] = struct{}{}
	if b.timer != nil {
		b.timer.Reset(b.delay)
		return
	}
	b.timer = time.AfterFunc(b.delay, func() {
		select {
		case b.ready <- struct{}{}:
		default:
		}
	})
}

func (b *batch) take() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.files))
	for f := range b.files {
		out = append(out, f)
	}
	sort.Strings(out)
	b.files = make(map[string]struct{})
	return out
}

func (b *batch) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
