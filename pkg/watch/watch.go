// Package watch keeps a directory of statute XML files parsed, re-parsing
// files as they change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/coolbeans/jalaw/pkg/law"
	"github.com/coolbeans/jalaw/pkg/parser"
	"go.uber.org/zap"
	"gopkg.in/fsnotify.v1"
)

// Op describes why a file was processed.
type Op string

const (
	OpScan   Op = "scan"
	OpCreate Op = "create"
	OpModify Op = "modify"
	OpRemove Op = "remove"
)

// Event reports the outcome of processing one file. Law is nil when Err is
// set or the file was removed.
type Event struct {
	Path     string
	Op       Op
	Law      *law.Law
	Err      error
	Duration time.Duration
}

// Options configure a Watcher.
type Options struct {
	// Patterns are file name globs; empty means "*.xml".
	Patterns []string
	// Debounce delays parsing until a file has been quiet this long.
	Debounce time.Duration
	// Workers bounds the number of documents parsed at once.
	Workers int
}

// Watcher parses the statute files of one directory. Each document is
// parsed independently, so several are parsed in parallel.
type Watcher struct {
	dir    string
	opts   Options
	parser *parser.Parser
	log    *zap.Logger

	mu   sync.RWMutex
	laws map[string]*law.Law

	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	jobs     chan job
	wg       sync.WaitGroup

	timersMu sync.Mutex
	timers   map[string]pending

	onChange func(Event)
}

type job struct {
	path string
	op   Op
}

type pending struct {
	op    Op
	timer *time.Timer
}

// New creates a Watcher for dir. A nil logger logs nothing.
func New(dir string, p *parser.Parser, opts Options, log *zap.Logger) *Watcher {
	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{"*.xml"}
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	if p == nil {
		p = parser.New(parser.WithLogger(log))
	}
	return &Watcher{
		dir:    dir,
		opts:   opts,
		parser: p,
		log:    log,
		laws:   make(map[string]*law.Law),
		timers: make(map[string]pending),
	}
}

// SetOnChange sets a callback invoked for every processed file. It may be
// called from several goroutines at once.
func (w *Watcher) SetOnChange(fn func(Event)) {
	w.onChange = fn
}

// Matches reports whether the base name of path matches a pattern.
func (w *Watcher) Matches(path string) bool {
	base := filepath.Base(path)
	for _, p := range w.opts.Patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}

// Get returns the last successfully parsed tree of path.
func (w *Watcher) Get(path string) (*law.Law, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	l, ok := w.laws[path]
	return l, ok
}

// Paths lists the files with a parsed tree, sorted.
func (w *Watcher) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]string, 0, len(w.laws))
	for p := range w.laws {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Scan parses every matching file in the directory with a bounded worker
// pool and returns one event per file, sorted by path.
func (w *Watcher) Scan(ctx context.Context) ([]Event, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", w.dir, err)
	}

	jobs := make(chan string)
	results := make(chan Event)
	var wg sync.WaitGroup
	for i := 0; i < w.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- w.process(path, OpScan)
			}
		}()
	}

	go func() {
		defer func() {
			close(jobs)
			wg.Wait()
			close(results)
		}()
		for _, entry := range entries {
			if entry.IsDir() || !w.Matches(entry.Name()) {
				continue
			}
			select {
			case jobs <- filepath.Join(w.dir, entry.Name()):
			case <-ctx.Done():
				return
			}
		}
	}()

	var events []Event
	for ev := range results {
		events = append(events, ev)
	}
	if err := ctx.Err(); err != nil {
		return events, err
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })
	return events, nil
}

// process parses one file, records the tree and notifies the callback.
func (w *Watcher) process(path string, op Op) Event {
	start := time.Now()
	l, err := w.parser.ParseFile(path)
	ev := Event{Path: path, Op: op, Law: l, Err: err, Duration: time.Since(start)}

	if err != nil {
		w.log.Warn("Failed to parse law", zap.String("path", path), zap.Error(err))
	} else {
		w.mu.Lock()
		w.laws[path] = l
		w.mu.Unlock()
		w.log.Info("Parsed law",
			zap.String("path", path),
			zap.String("op", string(op)),
			zap.String("title", l.Title()),
			zap.Duration("duration", ev.Duration))
	}
	w.notify(ev)
	return ev
}

func (w *Watcher) remove(path string) {
	w.mu.Lock()
	delete(w.laws, path)
	w.mu.Unlock()
	w.log.Info("Removed law", zap.String("path", path))
	w.notify(Event{Path: path, Op: OpRemove})
}

func (w *Watcher) notify(ev Event) {
	if w.onChange != nil {
		w.onChange(ev)
	}
}

// Watch starts watching the directory. Changes are debounced per file and
// handed to the worker pool.
func (w *Watcher) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	w.watcher = watcher
	w.stopChan = make(chan struct{})
	w.jobs = make(chan job)

	for i := 0; i < w.opts.Workers; i++ {
		w.wg.Add(1)
		go w.worker()
	}
	w.wg.Add(1)
	go w.watchLoop()

	w.log.Info("Watching directory", zap.String("dir", w.dir), zap.Strings("patterns", w.opts.Patterns))
	return nil
}

func (w *Watcher) worker() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopChan:
			return
		case j := <-w.jobs:
			if j.op == OpRemove {
				w.remove(j.path)
				continue
			}
			w.process(j.path, j.op)
		}
	}
}

// watchLoop handles file system events.
func (w *Watcher) watchLoop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.Matches(event.Name) {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				w.schedule(event.Name, OpCreate)
			case event.Op&fsnotify.Write == fsnotify.Write:
				w.schedule(event.Name, OpModify)
			case event.Op&fsnotify.Remove == fsnotify.Remove,
				event.Op&fsnotify.Rename == fsnotify.Rename:
				w.schedule(event.Name, OpRemove)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("Watcher error", zap.Error(err))
		}
	}
}

// schedule (re)starts the debounce timer of path. A create followed by
// writes is still reported as a create.
func (w *Watcher) schedule(path string, op Op) {
	w.timersMu.Lock()
	defer w.timersMu.Unlock()

	if p, ok := w.timers[path]; ok {
		p.timer.Stop()
		if p.op == OpCreate && op == OpModify {
			op = OpCreate
		}
	}
	jobs, stop := w.jobs, w.stopChan
	w.timers[path] = pending{op: op, timer: time.AfterFunc(w.opts.Debounce, func() {
		w.timersMu.Lock()
		delete(w.timers, path)
		w.timersMu.Unlock()

		select {
		case jobs <- job{path: path, op: op}:
		case <-stop:
		}
	})}
}

// StopWatch stops watching and waits for in-flight parses to finish.
func (w *Watcher) StopWatch() {
	if w.stopChan == nil {
		return
	}
	close(w.stopChan)
	w.watcher.Close()

	w.timersMu.Lock()
	for path, p := range w.timers {
		p.timer.Stop()
		delete(w.timers, path)
	}
	w.timersMu.Unlock()

	w.wg.Wait()
	w.stopChan = nil
}
