// Package watch provides a file system watcher that re-runs chunk analysis
// whenever a watched plaintext document changes. Every write triggers a full
// recomputation; the newest result simply supersedes the previous one.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig holds the watcher configuration.
type WatchConfig struct {
	Paths      []string `json:"paths"`
	Extensions []string `json:"extensions"` // File extensions to analyze
	Pattern    string   `json:"pattern"`    // Optional glob on the base name
	Recursive  bool     `json:"recursive"`
	Debounce   int      `json:"debounceMs"` // Milliseconds to wait before re-analyzing
}

// Event records one detected change and the outcome of its analysis.
type Event struct {
	Time      time.Time `json:"time"`
	Path      string    `json:"path"`
	Operation string    `json:"operation"` // "create", "modify"
	Status    string    `json:"status"`    // "analyzed", "error", "skipped"
	Error     string    `json:"error,omitempty"`
}

// Handler is called with the path of a changed document.
type Handler func(path string) error

// Watcher monitors paths for document changes and re-analyzes on each write.
type Watcher struct {
	Config  WatchConfig
	Logger  *log.Logger
	Handler Handler

	mu       sync.Mutex
	events   []Event
	watcher  *fsnotify.Watcher
	debounce map[string]*time.Timer
}

// defaultExtensions are the plaintext formats analyzed when none are
// configured.
var defaultExtensions = []string{".txt", ".md", ".markdown", ".rst"}

// New creates a new Watcher with the given configuration.
func New(config WatchConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	if config.Debounce <= 0 {
		config.Debounce = 500
	}
	if len(config.Extensions) == 0 {
		config.Extensions = defaultExtensions
	}

	return &Watcher{
		Config:   config,
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		watcher:  fsw,
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching the configured paths. It blocks until the context is
// cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	for _, p := range w.Config.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("could not resolve %s: %w", p, err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("could not watch %s: %w", abs, err)
		}

		switch {
		case !info.IsDir():
			// Watch the parent so editors that replace the file are caught.
			if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
				return fmt.Errorf("could not watch %s: %w", abs, err)
			}
		case w.Config.Recursive:
			if err := w.addRecursive(abs); err != nil {
				return err
			}
		default:
			if err := w.watcher.Add(abs); err != nil {
				return fmt.Errorf("could not watch %s: %w", abs, err)
			}
		}
	}

	w.Logger.Printf("Watching %d path(s), re-analyzing on change", len(w.Config.Paths))

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Error: %v", err)
		}
	}
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() {
			// Skip hidden directories
			if strings.HasPrefix(filepath.Base(path), ".") && path != dir {
				return filepath.SkipDir
			}
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if !w.matchesPath(path) {
		return
	}

	// Debounce: editors fire several writes per save.
	w.mu.Lock()
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(time.Duration(w.Config.Debounce)*time.Millisecond, func() {
		w.analyze(path, event.Op.String())
	})
	w.mu.Unlock()
}

// matchesPath reports whether a changed file should be re-analyzed: a
// configured plaintext extension, not an editor temp file, and matching the
// optional base-name pattern.
func (w *Watcher) matchesPath(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(path))
	matched := false
	for _, e := range w.Config.Extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.ToLower(e) == ext {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if w.Config.Pattern != "" {
		ok, _ := filepath.Match(w.Config.Pattern, base)
		if !ok {
			return false
		}
	}
	return true
}

func (w *Watcher) analyze(path, operation string) {
	evt := Event{
		Time:      time.Now(),
		Path:      path,
		Operation: strings.ToLower(operation),
	}

	if w.Handler != nil {
		if err := w.Handler(path); err != nil {
			evt.Status = "error"
			evt.Error = err.Error()
			w.Logger.Printf("Error analyzing %s: %v", path, err)
		} else {
			evt.Status = "analyzed"
		}
	} else {
		evt.Status = "skipped"
	}

	w.mu.Lock()
	w.events = append(w.events, evt)
	w.mu.Unlock()
}

// Events returns all recorded events.
func (w *Watcher) Events() []Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	events := make([]Event, len(w.events))
	copy(events, w.events)
	return events
}
