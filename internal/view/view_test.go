package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/tracker"
)

func TestCreateInitialState(t *testing.T) {
	r := NewRegistry(Options{Sections: tracker.DefaultSections, HeaderOffset: 100})
	v := r.Create()
	if v.ID == "" {
		t.Fatal("view id should not be empty")
	}
	err := v.Do(func(s State) error {
		if s.Tracker.Active() != "hero" {
			t.Errorf("active = %q, want hero", s.Tracker.Active())
		}
		if s.Gallery.IsOpen() {
			t.Error("gallery should start closed")
		}
		if *s.MenuOpen {
			t.Error("menu should start closed")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCreateUniqueIDs(t *testing.T) {
	r := NewRegistry(Options{})
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := r.Create().ID
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
	if r.Len() != 50 {
		t.Errorf("Len = %d, want 50", r.Len())
	}
}

func TestGetAndRelease(t *testing.T) {
	r := NewRegistry(Options{})
	v := r.Create()

	got, err := r.Get(v.ID)
	if err != nil || got != v {
		t.Fatalf("Get = %v, %v", got, err)
	}

	r.Release(v.ID)
	if _, err := r.Get(v.ID); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("after Release: err = %v, want ErrViewNotFound", err)
	}
	r.Release(v.ID)
}

func TestStateIsPerView(t *testing.T) {
	r := NewRegistry(Options{})
	a, b := r.Create(), r.Create()
	proj := &content.Project{Title: "P", Images: []string{"/1.png", "/2.png"}}

	_ = a.Do(func(s State) error {
		s.ToggleMenu()
		return s.Gallery.Open(proj, 1)
	})
	_ = b.Do(func(s State) error {
		if *s.MenuOpen || s.Gallery.IsOpen() {
			t.Error("state leaked between views")
		}
		return nil
	})
}

func TestMenuToggleAndClose(t *testing.T) {
	r := NewRegistry(Options{})
	v := r.Create()
	_ = v.Do(func(s State) error {
		if !s.ToggleMenu() {
			t.Error("first toggle should open")
		}
		if s.ToggleMenu() {
			t.Error("second toggle should close")
		}
		s.ToggleMenu()
		s.CloseMenu()
		if *s.MenuOpen {
			t.Error("CloseMenu should close")
		}
		return nil
	})
}

func TestDoPropagatesError(t *testing.T) {
	v := NewRegistry(Options{}).Create()
	want := errors.New("boom")
	if err := v.Do(func(State) error { return want }); !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestSweepDropsIdleViews(t *testing.T) {
	r := NewRegistry(Options{TTL: time.Minute})
	clock := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	stale := r.Create()
	clock = clock.Add(50 * time.Second)
	fresh := r.Create()

	clock = clock.Add(30 * time.Second)
	if n := r.Sweep(clock); n != 1 {
		t.Errorf("Sweep dropped %d, want 1", n)
	}
	if _, err := r.Get(stale.ID); !errors.Is(err, ErrViewNotFound) {
		t.Error("stale view should be gone")
	}
	if _, err := r.Get(fresh.ID); err != nil {
		t.Errorf("fresh view: %v", err)
	}
}

func TestGetRefreshesIdleClock(t *testing.T) {
	r := NewRegistry(Options{TTL: time.Minute})
	clock := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	v := r.Create()
	clock = clock.Add(50 * time.Second)
	if _, err := r.Get(v.ID); err != nil {
		t.Fatal(err)
	}
	clock = clock.Add(50 * time.Second)
	if n := r.Sweep(clock); n != 0 {
		t.Errorf("Sweep dropped %d, want 0", n)
	}
}

func TestRunStopsWithContext(t *testing.T) {
	r := NewRegistry(Options{TTL: time.Nanosecond})
	r.Create()

	ctx, cancel := context.WithCancel(context.Background())
	swept := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond, func(n int) {
			select {
			case swept <- n:
			default:
			}
		})
		close(done)
	}()

	select {
	case n := <-swept:
		if n != 1 {
			t.Errorf("swept %d, want 1", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("janitor never swept")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestDoRefreshesIdleClock(t *testing.T) {
	r := NewRegistry(Options{TTL: time.Minute})
	clock := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	v := r.Create()
	clock = clock.Add(50 * time.Second)
	_ = v.Do(func(State) error { return nil })
	clock = clock.Add(50 * time.Second)
	if n := r.Sweep(clock); n != 0 {
		t.Errorf("Sweep dropped %d, want 0", n)
	}
}

func TestSweepKeepsAttachedViews(t *testing.T) {
	r := NewRegistry(Options{TTL: time.Minute})
	clock := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	v := r.Create()
	if _, err := r.Attach(v.ID); err != nil {
		t.Fatal(err)
	}
	if n := r.Sweep(clock.Add(31 * time.Minute)); n != 0 {
		t.Errorf("Sweep dropped %d attached views, want 0", n)
	}

	clock = clock.Add(31 * time.Minute)
	r.Detach(v.ID, time.Hour)
	if n := r.Sweep(clock.Add(2 * time.Minute)); n != 1 {
		t.Errorf("Sweep dropped %d after detach, want 1", n)
	}
}

func TestAttachUnknownView(t *testing.T) {
	r := NewRegistry(Options{})
	if _, err := r.Attach("missing"); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("err = %v, want ErrViewNotFound", err)
	}
}

func TestDetachWithoutGraceReleases(t *testing.T) {
	r := NewRegistry(Options{})
	v := r.Create()
	if _, err := r.Attach(v.ID); err != nil {
		t.Fatal(err)
	}
	r.Detach(v.ID, 0)
	if _, err := r.Get(v.ID); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("err = %v, want ErrViewNotFound", err)
	}
}

func TestReattachWithinGraceKeepsView(t *testing.T) {
	r := NewRegistry(Options{})
	v := r.Create()
	if _, err := r.Attach(v.ID); err != nil {
		t.Fatal(err)
	}
	r.Detach(v.ID, 20*time.Millisecond)
	if _, err := r.Attach(v.ID); err != nil {
		t.Fatalf("reattach within grace: %v", err)
	}

	time.Sleep(60 * time.Millisecond)
	if _, err := r.Get(v.ID); err != nil {
		t.Errorf("reattached view released: %v", err)
	}
}

func TestDetachReleasesAfterGrace(t *testing.T) {
	r := NewRegistry(Options{})
	v := r.Create()
	if _, err := r.Attach(v.ID); err != nil {
		t.Fatal(err)
	}
	r.Detach(v.ID, 10*time.Millisecond)
	if r.Len() != 1 {
		t.Fatal("view released before grace elapsed")
	}

	deadline := time.Now().Add(5 * time.Second)
	for r.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("view not released after grace")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
