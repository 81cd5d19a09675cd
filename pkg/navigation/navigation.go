package navigation

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"superapp/pkg/logger"
)

var (
	ErrNotFound      = errors.New("route not found")
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrInvalidRoute  = errors.New("invalid route")
)

type ViewID string

type LoadStrategy string

const (
	LoadEager LoadStrategy = "eager"
	LoadLazy  LoadStrategy = "lazy"
)

// View is the resolved descriptor handed to the host once a route is usable.
type View struct {
	ID       ViewID   `json:"id"`
	Title    string   `json:"title"`
	Sections []string `json:"sections,omitempty"`
	Stores   []string `json:"stores,omitempty"`
}

func (v View) Clone() View {
	out := v
	if v.Sections != nil {
		out.Sections = append([]string(nil), v.Sections...)
	}
	if v.Stores != nil {
		out.Stores = append([]string(nil), v.Stores...)
	}
	return out
}

// Loader fetches a deferred view. It may block.
type Loader func(ctx context.Context) (View, error)

// Route registers one path. Eager routes carry View, lazy routes carry Load.
type Route struct {
	Path     string
	Name     string
	Strategy LoadStrategy
	Target   ViewID
	View     View
	Load     Loader
}

type Entry struct {
	Path         string       `json:"path"`
	Name         string       `json:"name"`
	LoadStrategy LoadStrategy `json:"load_strategy"`
	Target       ViewID       `json:"target"`
}

// Table is a static path to view lookup. Lazy views are loaded at most once
// concurrently and memoized after the first success; failed loads are
// retried on the next resolution.
type Table struct {
	basePath string
	entries  []Entry
	byPath   map[string]Route
	eager    map[ViewID]struct{}

	group singleflight.Group

	mu     sync.RWMutex
	loaded map[ViewID]View

	log logger.ILogger
}

func NewTable(basePath string, log logger.ILogger, routes ...Route) (*Table, error) {
	t := &Table{
		basePath: cleanPath(basePath),
		byPath:   make(map[string]Route, len(routes)),
		eager:    make(map[ViewID]struct{}),
		loaded:   make(map[ViewID]View),
		log:      log,
	}

	for _, r := range routes {
		if err := validate(r); err != nil {
			return nil, err
		}

		full := path.Join(t.basePath, cleanPath(r.Path))
		if _, exists := t.byPath[full]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, full)
		}

		r.Path = full
		if r.Strategy == LoadEager {
			r.View = r.View.Clone()
			t.eager[r.Target] = struct{}{}
		}
		t.byPath[full] = r
		t.entries = append(t.entries, Entry{
			Path:         full,
			Name:         r.Name,
			LoadStrategy: r.Strategy,
			Target:       r.Target,
		})
	}

	return t, nil
}

func validate(r Route) error {
	if !strings.HasPrefix(r.Path, "/") {
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
	}
	if r.Target == "" {
		return fmt.Errorf("%w: %s has no target", ErrInvalidRoute, r.Path)
	}
	switch r.Strategy {
	case LoadEager:
		if r.View.ID != r.Target {
			return fmt.Errorf("%w: eager route %s needs a view for %s", ErrInvalidRoute, r.Path, r.Target)
		}
	case LoadLazy:
		if r.Load == nil {
			return fmt.Errorf("%w: lazy route %s has no loader", ErrInvalidRoute, r.Path)
		}
	default:
		return fmt.Errorf("%w: %s has unknown strategy %q", ErrInvalidRoute, r.Path, r.Strategy)
	}
	return nil
}

func (t *Table) BasePath() string {
	return t.basePath
}

// Entries returns the registered routes in registration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Lookup(p string) (Entry, bool) {
	r, ok := t.byPath[cleanPath(p)]
	if !ok {
		return Entry{}, false
	}
	return Entry{Path: r.Path, Name: r.Name, LoadStrategy: r.Strategy, Target: r.Target}, true
}

// Loaded reports whether a lazy view is already memoized. Eager views are always loaded.
func (t *Table) Loaded(id ViewID) bool {
	if _, ok := t.eager[id]; ok {
		return true
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.loaded[id]
	return ok
}

// Resolve returns a copy of the view registered for p. Eager views return immediately,
// even on a cancelled context. A lazy view blocks until its loader finishes
// or ctx is done; in the latter case the load keeps running and its result
// is memoized for the next call.
func (t *Table) Resolve(ctx context.Context, p string) (View, error) {
	r, ok := t.byPath[cleanPath(p)]
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrNotFound, p)
	}

	if r.Strategy == LoadEager {
		return r.View.Clone(), nil
	}

	t.mu.RLock()
	v, ok := t.loaded[r.Target]
	t.mu.RUnlock()
	if ok {
		return v.Clone(), nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := t.group.DoChan(string(r.Target), func() (interface{}, error) {
		return t.load(loadCtx, r)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return View{}, res.Err
		}
		return res.Val.(View).Clone(), nil
	case <-ctx.Done():
		return View{}, ctx.Err()
	}
}

func (t *Table) load(ctx context.Context, r Route) (View, error) {
	t.mu.RLock()
	v, ok := t.loaded[r.Target]
	t.mu.RUnlock()
	if ok {
		return v, nil
	}

	start := time.Now()
	v, err := r.Load(ctx)
	if err != nil {
		t.log.Warning("view load failed",
			logger.String("view", string(r.Target)),
			logger.String("path", r.Path),
			logger.Error(err),
		)
		return View{}, fmt.Errorf("load view %s: %w", r.Target, err)
	}

	t.mu.Lock()
	t.loaded[r.Target] = v.Clone()
	t.mu.Unlock()

	t.log.Info("view loaded",
		logger.String("view", string(r.Target)),
		logger.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return v, nil
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
