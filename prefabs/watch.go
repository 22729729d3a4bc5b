package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) && !isScriptFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".tengo"
}

// Reloader routes changed asset files to the callbacks registered for
// their kind ("controls", "weapon", "shot", ...). It runs on the tick
// loop, never on the watcher goroutine.
type Reloader struct {
	handlers map[string][]handler
	next     uint64
	log      zerolog.Logger
}

type handler struct {
	id uint64
	fn func() error
}

func NewReloader(log zerolog.Logger) *Reloader {
	return &Reloader{handlers: make(map[string][]handler), log: log}
}

// On registers fn for files whose base name (without extension) is kind.
// The returned func unregisters it again.
func (r *Reloader) On(kind string, fn func() error) (off func()) {
	if fn == nil {
		return func() {}
	}
	kind = strings.ToLower(kind)
	r.next++
	id := r.next
	r.handlers[kind] = append(r.handlers[kind], handler{id: id, fn: fn})
	return func() {
		hs := r.handlers[kind]
		for i, h := range hs {
			if h.id == id {
				r.handlers[kind] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Handle runs every callback registered for name's kind and returns the
// first error. Unknown kinds are ignored.
func (r *Reloader) Handle(name string) error {
	kind := Kind(filepath.Base(name))
	hs := r.handlers[kind]
	if len(hs) == 0 {
		return nil
	}
	var first error
	for _, h := range hs {
		if err := h.fn(); err != nil && first == nil {
			first = fmt.Errorf("prefabs: reload %s: %w", kind, err)
		}
	}
	if first == nil {
		r.log.Info().Str("asset", kind).Msg("reloaded")
	}
	return first
}

// Poll drains pending watcher events without blocking and reports how many
// files were handled. Reload failures are logged and the old data kept.
func (r *Reloader) Poll(w *Watcher) int {
	if w == nil {
		return 0
	}
	n := 0
	for {
		select {
		case name := <-w.Events:
			n++
			if err := r.Handle(name); err != nil {
				r.log.Error().Err(err).Str("file", name).Msg("hot reload failed")
			}
		case err := <-w.Errors:
			r.log.Warn().Err(err).Msg("watcher error")
		default:
			return n
		}
	}
}
