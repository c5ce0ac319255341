package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mhmaidi/folio/internal/gallery"
	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/tracker"
	"github.com/mhmaidi/folio/internal/view"
	"github.com/mhmaidi/folio/internal/welcome"
)

var (
	errBadRequest     = errors.New("bad request")
	errUnknownProject = errors.New("unknown project")
	errUnknownSection = errors.New("unknown section")
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"views":  s.views.Len(),
	})
}

func (s *Server) handleStatic(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		io.WriteString(w, body)
	}
}

func (s *Server) handleAssets(w http.ResponseWriter, r *http.Request) {
	if s.cfg.AssetsDir == "" {
		http.NotFound(w, r)
		return
	}
	// Re-root the request so the file server only sees the wildcard part.
	r2 := r.Clone(r.Context())
	r2.URL.Path = "/" + chi.URLParam(r, "*")
	r2.URL.RawPath = ""
	http.FileServer(filesOnly{http.Dir(s.cfg.AssetsDir)}).ServeHTTP(w, r2)
}

// filesOnly hides directories so the file server never lists them.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	v := s.views.Create()
	var page render.Page
	_ = v.Do(func(st view.State) error {
		page = render.Page{
			ViewID:   v.ID,
			Active:   st.Tracker.Active(),
			MenuOpen: *st.MenuOpen,
			Gallery:  st.Gallery.State(),
			Phase:    welcome.PhaseVisible,
		}
		return nil
	})
	s.log.Debug().Str("view", v.ID).Int("live", s.views.Len()).Msg("view created")

	s.writeHTML(w, r, func(out io.Writer) error { return s.render.Page(out, page) })
}

// withView resolves {id} and runs fn on the view. Errors are mapped to
// statuses by fail.
func (s *Server) withView(w http.ResponseWriter, r *http.Request, fn func(v *view.View) error) {
	v, err := s.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := fn(v); err != nil {
		s.fail(w, r, err)
	}
}

func (s *Server) handleScroll(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	y, err := strconv.ParseFloat(r.PostForm.Get("y"), 64)
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: y: %v", errBadRequest, err))
		return
	}
	layout, err := tracker.ParseLayout(r.PostForm.Get("layout"))
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	s.withView(w, r, func(v *view.View) error {
		var active string
		_ = v.Do(func(st view.State) error {
			active = st.Tracker.Update(y, layout)
			return nil
		})
		s.writeHTML(w, r, func(out io.Writer) error { return s.render.Nav(out, v.ID, active) })
		return nil
	})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.withView(w, r, func(v *view.View) error {
		var open bool
		_ = v.Do(func(st view.State) error {
			open = st.ToggleMenu()
			return nil
		})
		s.writeHTML(w, r, func(out io.Writer) error { return s.render.Menu(out, v.ID, open) })
		return nil
	})
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")
	s.withView(w, r, func(v *view.View) error {
		err := v.Do(func(st view.State) error {
			if !st.Tracker.Has(section) {
				return fmt.Errorf("%w: %q", errUnknownSection, section)
			}
			st.CloseMenu()
			return nil
		})
		if err != nil {
			return err
		}
		s.writeHTML(w, r, func(out io.Writer) error { return s.render.Menu(out, v.ID, false) })
		return nil
	})
}

func (s *Server) handleGalleryOpen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	slug := r.Form.Get("project")
	project, ok := s.portfolio.Project(slug)
	if !ok {
		s.fail(w, r, fmt.Errorf("%w: %q", errUnknownProject, slug))
		return
	}
	index := 0
	if raw := r.Form.Get("index"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(w, r, fmt.Errorf("%w: index: %v", errBadRequest, err))
			return
		}
		index = n
	}

	s.galleryTransition(w, r, func(g *gallery.Navigator) error {
		return g.Open(project, index)
	})
}

func (s *Server) handleGalleryNext(w http.ResponseWriter, r *http.Request) {
	s.galleryTransition(w, r, func(g *gallery.Navigator) error {
		g.Next()
		return nil
	})
}

func (s *Server) handleGalleryPrev(w http.ResponseWriter, r *http.Request) {
	s.galleryTransition(w, r, func(g *gallery.Navigator) error {
		g.Previous()
		return nil
	})
}

func (s *Server) handleGalleryClose(w http.ResponseWriter, r *http.Request) {
	s.galleryTransition(w, r, func(g *gallery.Navigator) error {
		g.Close()
		return nil
	})
}

func (s *Server) handleGalleryJump(w http.ResponseWriter, r *http.Request) {
	k, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		s.fail(w, r, fmt.Errorf("%w: index: %v", errBadRequest, err))
		return
	}
	s.galleryTransition(w, r, func(g *gallery.Navigator) error {
		return g.JumpTo(k)
	})
}

// galleryTransition applies fn under the view lock and answers with the
// resulting modal.
func (s *Server) galleryTransition(w http.ResponseWriter, r *http.Request, fn func(*gallery.Navigator) error) {
	s.withView(w, r, func(v *view.View) error {
		var snap gallery.State
		err := v.Do(func(st view.State) error {
			if err := fn(st.Gallery); err != nil {
				return err
			}
			snap = st.Gallery.State()
			return nil
		})
		if err != nil {
			return err
		}
		s.writeHTML(w, r, func(out io.Writer) error { return s.render.Gallery(out, v.ID, snap) })
		return nil
	})
}

// writeHTML renders into a buffer first so a failed render still gets a
// clean 500.
func (s *Server) writeHTML(w http.ResponseWriter, r *http.Request, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// fail maps an error to its HTTP status.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, view.ErrViewNotFound),
		errors.Is(err, errUnknownProject),
		errors.Is(err, errUnknownSection):
		status = http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, gallery.ErrIndexOutOfRange),
		errors.Is(err, gallery.ErrNoImages):
		status = http.StatusBadRequest
	case errors.Is(err, gallery.ErrClosed):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		s.log.Debug().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}
	http.Error(w, strings.TrimSpace(http.StatusText(status)+": "+err.Error()), status)
}
