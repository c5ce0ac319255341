// Package render turns the portfolio and a page view's state into HTML: the
// full page and the fragments htmx swaps in.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/gallery"
	"github.com/mhmaidi/folio/internal/tracker"
	"github.com/mhmaidi/folio/internal/welcome"
)

// Options configures a Renderer.
type Options struct {
	Title    string
	Sections []string
	URLs     URLs
	Welcome  welcome.Sequence
}

// Renderer renders pages and fragments. It is safe for concurrent use once
// built.
type Renderer struct {
	portfolio *content.Portfolio
	title     string
	sections  []string
	urls      URLs
	welcome   welcome.Sequence
	md        goldmark.Markdown
	tmpl      *template.Template

	// Markdown fields are converted once.
	bio       template.HTML
	summaries map[string]template.HTML
}

// New compiles the templates and pre-renders markdown fields.
func New(p *content.Portfolio, opts Options) (*Renderer, error) {
	sections := opts.Sections
	if len(sections) == 0 {
		sections = tracker.DefaultSections
	}
	r := &Renderer{
		portfolio: p,
		title:     opts.Title,
		sections:  sections,
		urls:      opts.URLs,
		welcome:   opts.Welcome,
		md:        newMarkdown(),
		summaries: make(map[string]template.HTML, len(p.Projects)),
	}
	if r.title == "" {
		r.title = p.Profile.Name
	}
	if r.welcome == (welcome.Sequence{}) {
		r.welcome = welcome.New(welcome.DefaultFadeAfter, welcome.DefaultHideAfter)
	}

	var err error
	if r.bio, err = r.markdown(p.Profile.Bio); err != nil {
		return nil, fmt.Errorf("profile bio: %w", err)
	}
	for i := range p.Projects {
		proj := &p.Projects[i]
		if r.summaries[proj.Slug()], err = r.markdown(proj.Summary()); err != nil {
			return nil, fmt.Errorf("project %q: %w", proj.Title, err)
		}
	}

	tmpl, err := template.New("folio").Funcs(template.FuncMap{
		"asset": r.urls.Asset,
	}).Parse(pageTemplate + fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// URLs returns the link builder the renderer uses.
func (r *Renderer) URLs() URLs { return r.urls }

// Page is the view state a full render starts from.
type Page struct {
	ViewID   string
	Active   string
	MenuOpen bool
	Gallery  gallery.State
	Phase    welcome.Phase
}

type pageData struct {
	Title      string
	Portfolio  *content.Portfolio
	Bio        template.HTML
	Projects   []projectCard
	Root       string
	CSS        string
	JS         string
	LiveURL    string
	Background []Particle
	Nav        navData
	Menu       menuData
	Gallery    galleryData
	Welcome    welcomeData
}

type projectCard struct {
	*content.Project
	Open template.HTMLAttr
}

// Page renders the full document.
func (r *Renderer) Page(w io.Writer, pg Page) error {
	if pg.Phase == "" {
		pg.Phase = welcome.PhaseVisible
	}
	data := pageData{
		Title:      r.title,
		Portfolio:  r.portfolio,
		Bio:        r.bio,
		Root:       r.urls.Root(),
		CSS:        r.urls.Static("folio.css"),
		JS:         r.urls.Static("folio.js"),
		LiveURL:    r.urls.Live(pg.ViewID),
		Background: BackgroundParticles(),
		Nav:        r.navData(pg.ViewID, pg.Active),
		Menu:       r.menuData(pg.ViewID, pg.MenuOpen),
		Gallery:    r.galleryData(pg.ViewID, pg.Gallery),
		Welcome:    r.welcomeData(pg.Phase),
	}
	for i := range r.portfolio.Projects {
		proj := &r.portfolio.Projects[i]
		data.Projects = append(data.Projects, projectCard{
			Project: proj,
			Open:    r.urls.GalleryOpen(pg.ViewID, proj.Slug(), 0).Attr(),
		})
	}
	return r.execute(w, "page", data)
}

type navLink struct {
	ID     string
	Label  string
	Active bool
}

type navData struct {
	Name      string
	Root      string
	ScrollURL string
	Links     []navLink
}

// Nav renders the navigation bar with active highlighted.
func (r *Renderer) Nav(w io.Writer, viewID, active string) error {
	return r.execute(w, "nav", r.navData(viewID, active))
}

func (r *Renderer) navData(viewID, active string) navData {
	d := navData{
		Name:      r.portfolio.Profile.Name,
		Root:      r.urls.Root(),
		ScrollURL: r.urls.Scroll(viewID),
	}
	for _, id := range r.navTargets() {
		d.Links = append(d.Links, navLink{ID: id, Label: sectionLabel(id), Active: id == active})
	}
	return d
}

// navTargets are the sections reachable from the menu: all but the first.
func (r *Renderer) navTargets() []string {
	if len(r.sections) <= 1 {
		return r.sections
	}
	return r.sections[1:]
}

type menuLink struct {
	ID       string
	Label    string
	Navigate template.HTMLAttr
}

type menuData struct {
	Open   bool
	Toggle template.HTMLAttr
	Links  []menuLink
}

// Menu renders the mobile menu.
func (r *Renderer) Menu(w io.Writer, viewID string, open bool) error {
	return r.execute(w, "menu", r.menuData(viewID, open))
}

func (r *Renderer) menuData(viewID string, open bool) menuData {
	d := menuData{
		Open:   open,
		Toggle: r.urls.Menu(viewID, open).Attr(),
	}
	for _, id := range r.navTargets() {
		d.Links = append(d.Links, menuLink{
			ID:       id,
			Label:    sectionLabel(id),
			Navigate: r.urls.Navigate(viewID, id).Attr(),
		})
	}
	return d
}

type jumpLink struct {
	Index   int
	Number  int
	Current bool
	Jump    template.HTMLAttr
}

type galleryData struct {
	Open    bool
	Project *content.Project
	Image   string
	Index   int
	Number  int
	Count   int
	Summary template.HTML
	Close   template.HTMLAttr
	Next    template.HTMLAttr
	Prev    template.HTMLAttr
	Jumps   []jumpLink
}

// Gallery renders the gallery modal; a closed gallery renders an empty
// placeholder that keeps the swap target in the page.
func (r *Renderer) Gallery(w io.Writer, viewID string, st gallery.State) error {
	return r.execute(w, "gallery", r.galleryData(viewID, st))
}

func (r *Renderer) galleryData(viewID string, st gallery.State) galleryData {
	if !st.Open {
		return galleryData{}
	}
	d := galleryData{
		Open:    true,
		Project: st.Project,
		Image:   st.Image(),
		Index:   st.Index,
		Number:  st.Index + 1,
		Count:   st.Count,
		Summary: r.summaries[st.Project.Slug()],
		Close:   r.urls.GalleryClose(viewID).Attr(),
		Next:    r.urls.GalleryNext(viewID, st).Attr(),
		Prev:    r.urls.GalleryPrev(viewID, st).Attr(),
	}
	for _, k := range st.Indices() {
		d.Jumps = append(d.Jumps, jumpLink{
			Index:   k,
			Number:  k + 1,
			Current: k == st.Index,
			Jump:    r.urls.GalleryJump(viewID, st, k).Attr(),
		})
	}
	return d
}

type welcomeData struct {
	Phase     welcome.Phase
	Hidden    bool
	Name      string
	Headline  string
	Particles []Particle
	Next      template.HTMLAttr
	Delay     string
	OOB       bool
}

// Welcome renders the splash screen in phase. oob marks the fragment for
// an out-of-band swap, as pushed over the live websocket.
func (r *Renderer) Welcome(w io.Writer, phase welcome.Phase, oob bool) error {
	d := r.welcomeData(phase)
	d.OOB = oob
	return r.execute(w, "welcome", d)
}

func (r *Renderer) welcomeData(phase welcome.Phase) welcomeData {
	d := welcomeData{
		Phase:    phase,
		Hidden:   phase.Entered(),
		Name:     r.portfolio.Profile.Name,
		Headline: r.portfolio.Profile.Headline,
	}
	if !d.Hidden {
		d.Particles = SplashParticles()
	}
	if next, ok := r.urls.WelcomeNext(phase); ok {
		d.Next = next.Attr()
		for _, step := range r.welcome.Steps() {
			if step.Phase == nextPhase(phase) {
				d.Delay = fmt.Sprintf("%dms", step.Delay.Milliseconds())
			}
		}
	}
	return d
}

func nextPhase(p welcome.Phase) welcome.Phase {
	if p == welcome.PhaseVisible {
		return welcome.PhaseFading
	}
	return welcome.PhaseHidden
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	// Render to a buffer so a template error never leaves half a fragment
	// on the wire.
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// CSS is the stylesheet served at static/folio.css.
func CSS() string { return cssContent }

// JS is the script served at static/folio.js.
func JS() string { return jsContent }

func sectionLabel(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id
	}
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(id[size:], "-", " ")
}
