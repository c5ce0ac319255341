package render

import (
	"fmt"
	"html"
	"html/template"
	"net/url"
	"strings"

	"github.com/mhmaidi/folio/internal/gallery"
	"github.com/mhmaidi/folio/internal/welcome"
)

// Mode selects how fragment URLs are built.
type Mode int

const (
	// ModeServe points fragments at the live server's view endpoints.
	ModeServe Mode = iota
	// ModeExport points fragments at pre-rendered static files.
	ModeExport
)

// Action is one htmx request: a method and a path.
type Action struct {
	Method string
	Path   string
}

// Attr renders the action as an hx-get or hx-post attribute.
func (a Action) Attr() template.HTMLAttr {
	name := "hx-get"
	if a.Method == "POST" {
		name = "hx-post"
	}
	return template.HTMLAttr(fmt.Sprintf(`%s="%s"`, name, html.EscapeString(a.Path)))
}

// URLs builds every link the page uses. Server routes and export file
// names mirror each other so one template serves both modes.
type URLs struct {
	BasePath      string
	TrailingSlash bool
	Mode          Mode
}

// Root is the page URL.
func (u URLs) Root() string {
	if u.BasePath == "" {
		return "/"
	}
	if u.TrailingSlash {
		return u.BasePath + "/"
	}
	return u.BasePath
}

// Static is the URL of an embedded stylesheet or script.
func (u URLs) Static(name string) string {
	return u.BasePath + "/static/" + name
}

// Asset maps a content image reference to its served URL. Absolute URLs
// pass through untouched.
func (u URLs) Asset(ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	return u.BasePath + "/assets/" + strings.TrimPrefix(ref, "/")
}

func (u URLs) view(viewID, rest string) string {
	return u.BasePath + "/views/" + url.PathEscape(viewID) + "/" + rest
}

func (u URLs) post(viewID, rest string) Action {
	return Action{Method: "POST", Path: u.view(viewID, rest)}
}

func (u URLs) file(rest string) Action {
	return Action{Method: "GET", Path: u.BasePath + "/" + rest}
}

// Live is the websocket endpoint of a view. Empty in export mode.
func (u URLs) Live(viewID string) string {
	if u.Mode == ModeExport {
		return ""
	}
	return u.view(viewID, "live")
}

// Scroll is the scroll-spy endpoint of a view. Empty in export mode.
func (u URLs) Scroll(viewID string) string {
	if u.Mode == ModeExport {
		return ""
	}
	return u.view(viewID, "scroll")
}

// Menu toggles the mobile menu.
func (u URLs) Menu(viewID string, open bool) Action {
	if u.Mode == ModeExport {
		if open {
			return u.file(MenuFile(false))
		}
		return u.file(MenuFile(true))
	}
	return u.post(viewID, "menu")
}

// Navigate closes the menu after a jump to section.
func (u URLs) Navigate(viewID, section string) Action {
	if u.Mode == ModeExport {
		return u.file(MenuFile(false))
	}
	return u.post(viewID, "navigate/"+url.PathEscape(section))
}

// GalleryOpen opens a project at index.
func (u URLs) GalleryOpen(viewID, slug string, index int) Action {
	if u.Mode == ModeExport {
		return u.file(GalleryFile(slug, index))
	}
	q := url.Values{}
	q.Set("project", slug)
	q.Set("index", fmt.Sprint(index))
	return u.post(viewID, "gallery/open?"+q.Encode())
}

// GalleryNext advances the open gallery.
func (u URLs) GalleryNext(viewID string, st gallery.State) Action {
	if u.Mode == ModeExport {
		return u.file(GalleryFile(st.Project.Slug(), st.Next))
	}
	return u.post(viewID, "gallery/next")
}

// GalleryPrev steps the open gallery back.
func (u URLs) GalleryPrev(viewID string, st gallery.State) Action {
	if u.Mode == ModeExport {
		return u.file(GalleryFile(st.Project.Slug(), st.Prev))
	}
	return u.post(viewID, "gallery/prev")
}

// GalleryJump shows image k of the open gallery.
func (u URLs) GalleryJump(viewID string, st gallery.State, k int) Action {
	if u.Mode == ModeExport {
		return u.file(GalleryFile(st.Project.Slug(), k))
	}
	return u.post(viewID, fmt.Sprintf("gallery/jump/%d", k))
}

// GalleryClose closes the gallery.
func (u URLs) GalleryClose(viewID string) Action {
	if u.Mode == ModeExport {
		return u.file(GalleryClosedFile)
	}
	return u.post(viewID, "gallery/close")
}

// WelcomeNext is the delayed load of the following welcome phase. Only
// export mode schedules it; the live server pushes phases over the
// websocket instead.
func (u URLs) WelcomeNext(phase welcome.Phase) (Action, bool) {
	if u.Mode != ModeExport {
		return Action{}, false
	}
	switch phase {
	case welcome.PhaseVisible:
		return u.file(WelcomeFile(welcome.PhaseFading)), true
	case welcome.PhaseFading:
		return u.file(WelcomeFile(welcome.PhaseHidden)), true
	}
	return Action{}, false
}

// Export file layout, relative to the output directory.
const (
	IndexFile         = "index.html"
	GalleryClosedFile = "gallery/closed.html"
)

// GalleryFile is the pre-rendered Open(slug, index) state.
func GalleryFile(slug string, index int) string {
	return fmt.Sprintf("gallery/%s/%d.html", slug, index)
}

// WelcomeFile is the pre-rendered welcome fragment for phase.
func WelcomeFile(phase welcome.Phase) string {
	return "welcome/" + string(phase) + ".html"
}

// MenuFile is the pre-rendered mobile menu fragment.
func MenuFile(open bool) string {
	if open {
		return "menu/open.html"
	}
	return "menu/closed.html"
}
