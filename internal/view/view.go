// Package view holds the ephemeral state of one rendered page: active
// section, gallery and mobile menu. Views live in memory for as long as the
// page is open and are never persisted.
package view

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mhmaidi/folio/internal/gallery"
	"github.com/mhmaidi/folio/internal/tracker"
)

// ErrViewNotFound is returned for unknown or expired view ids.
var ErrViewNotFound = errors.New("view not found")

// View is the state of one page view.
type View struct {
	ID string

	mu       sync.Mutex
	tracker  *tracker.Tracker
	gallery  gallery.Navigator
	menuOpen bool
	lastSeen time.Time
	clock    func() time.Time
	// live counts attached connections; a view with one is never idle.
	live int
}

// State is what a transition callback may read and mutate. It is only
// valid inside Do.
type State struct {
	Tracker  *tracker.Tracker
	Gallery  *gallery.Navigator
	MenuOpen *bool
}

// ToggleMenu flips the mobile menu and returns the new value.
func (s State) ToggleMenu() bool {
	*s.MenuOpen = !*s.MenuOpen
	return *s.MenuOpen
}

// CloseMenu closes the mobile menu.
func (s State) CloseMenu() { *s.MenuOpen = false }

// Do runs fn with exclusive access to the view state and marks the view
// as seen.
func (v *View) Do(fn func(State) error) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lastSeen = v.clock()
	return fn(State{Tracker: v.tracker, Gallery: &v.gallery, MenuOpen: &v.menuOpen})
}

// Options configures new views.
type Options struct {
	Sections     []string
	HeaderOffset float64
	TTL          time.Duration
}

// Registry owns all live views.
type Registry struct {
	opts  Options
	now   func() time.Time
	mu    sync.Mutex
	views map[string]*View
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	return &Registry{
		opts:  opts,
		now:   time.Now,
		views: make(map[string]*View),
	}
}

// Create allocates a view with the first section active, the gallery
// closed and the menu closed.
func (r *Registry) Create() *View {
	v := &View{
		ID:       uuid.New().String(),
		tracker:  tracker.New(r.opts.Sections, r.opts.HeaderOffset),
		lastSeen: r.now(),
		clock:    func() time.Time { return r.now() },
	}
	r.mu.Lock()
	r.views[v.ID] = v
	r.mu.Unlock()
	return v
}

// Get returns the view with the given id and marks it as seen.
func (r *Registry) Get(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	v.mu.Lock()
	v.lastSeen = r.now()
	v.mu.Unlock()
	return v, nil
}

// Release discards a view. Releasing an unknown id is a no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	delete(r.views, id)
	r.mu.Unlock()
}

// Attach marks a live connection on the view. Attached views are skipped
// by Sweep until every connection has detached.
func (r *Registry) Attach(id string) (*View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	v.mu.Lock()
	v.live++
	v.lastSeen = r.now()
	v.mu.Unlock()
	return v, nil
}

// Detach drops one live connection. Once none are left the view is
// released after grace, unless a connection attaches again first. A
// non-positive grace releases immediately.
func (r *Registry) Detach(id string, grace time.Duration) {
	r.mu.Lock()
	if v, ok := r.views[id]; ok {
		v.mu.Lock()
		if v.live > 0 {
			v.live--
		}
		v.lastSeen = r.now()
		v.mu.Unlock()
	}
	r.mu.Unlock()
	if grace <= 0 {
		r.releaseIfDetached(id)
		return
	}
	time.AfterFunc(grace, func() { r.releaseIfDetached(id) })
}

func (r *Registry) releaseIfDetached(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[id]
	if !ok {
		return
	}
	v.mu.Lock()
	live := v.live
	v.mu.Unlock()
	if live == 0 {
		delete(r.views, id)
	}
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep drops views idle for longer than the TTL and returns how many
// were dropped. Views with an attached connection are kept.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	dropped := 0
	for id, v := range r.views {
		v.mu.Lock()
		idle := now.Sub(v.lastSeen)
		attached := v.live > 0
		v.mu.Unlock()
		if !attached && idle > r.opts.TTL {
			delete(r.views, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration, onSweep func(dropped int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
