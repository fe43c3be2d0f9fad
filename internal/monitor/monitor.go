// Package monitor watches a directory while a batch runs and reports
// activity the batch did not cause. It observes; it never blocks or
// undoes anything.
package monitor

import (
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is one filesystem notification, reduced to the child name.
type Event struct {
	Name string
	Op   string
}

// Monitor collects fsnotify events for a single directory.
type Monitor struct {
	w      *fsnotify.Watcher
	logger *slog.Logger

	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

// Start begins watching dir (non-recursively) until Stop is called.
func Start(dir string, logger *slog.Logger) (*Monitor, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}
	m := &Monitor{w: w, logger: logger, done: make(chan struct{})}
	go m.loop()
	logger.Debug("monitor: started", slog.String("dir", dir))
	return m, nil
}

func (m *Monitor) loop() {
	defer close(m.done)
	for {
		select {
		case ev, ok := <-m.w.Events:
			if !ok {
				return
			}
			m.mu.Lock()
			m.events = append(m.events, Event{Name: filepath.Base(ev.Name), Op: ev.Op.String()})
			m.mu.Unlock()
		case err, ok := <-m.w.Errors:
			if !ok {
				return
			}
			m.logger.Warn("monitor: error", slog.String("error", err.Error()))
		}
	}
}

// Stop waits settle for in-flight notifications, closes the watcher and
// returns every event seen.
func (m *Monitor) Stop(settle time.Duration) []Event {
	if settle > 0 {
		time.Sleep(settle)
	}
	_ = m.w.Close()
	<-m.done

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Foreign keeps the first event per name for names not in touched,
// sorted by name.
func Foreign(events []Event, touched map[string]bool) []Event {
	seen := make(map[string]bool)
	var out []Event
	for _, ev := range events {
		if touched[ev.Name] || seen[ev.Name] {
			continue
		}
		seen[ev.Name] = true
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
