package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const debounceDelay = 100 * time.Millisecond

// Watcher invokes a callback when one of the watched configuration
// files is written. Events are debounced per file so editors that write
// in several steps trigger a single reload.
type Watcher struct {
	mu     sync.Mutex
	files  map[string]bool
	timers map[string]*time.Timer

	watcher  *fsnotify.Watcher
	onChange func(path string)
	errChan  chan error

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher watches the given files and calls onChange with the path
// of each file that changes. Empty paths are skipped; the parent
// directories are watched so the files may be replaced atomically.
func NewWatcher(onChange func(path string), paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		files:    make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		watcher:  fsw,
		onChange: onChange,
		errChan:  make(chan error, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		if path == "" {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			cancel()
			fsw.Close()
			return nil, fmt.Errorf("config: resolve %s: %w", path, err)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			cancel()
			fsw.Close()
			return nil, fmt.Errorf("config: watch %s: %w", dir, err)
		}
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Errors returns a channel carrying watch errors. The channel is never
// closed and drops errors when full.
func (w *Watcher) Errors() <-chan error {
	return w.errChan
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.cancel()
		w.closeErr = w.watcher.Close()
		w.wg.Wait()

		w.mu.Lock()
		for _, t := range w.timers {
			t.Stop()
		}
		w.mu.Unlock()
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			path := filepath.Clean(event.Name)

			w.mu.Lock()
			watched := w.files[path]
			w.mu.Unlock()
			if !watched {
				continue
			}
			log.WithField("path", path).Debug("config: file changed")
			w.schedule(path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errChan <- err:
			default:
			}
		}
	}
}

// schedule arms the per-file debounce timer, replacing a pending one.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	w.timers[path] = time.AfterFunc(debounceDelay, func() {
		w.onChange(path)
	})
}
