// Package tracker decides which page section is active for navigation
// highlighting, given the current scroll position.
package tracker

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSections is the document order of the portfolio page.
var DefaultSections = []string{"hero", "about", "skills", "certifications", "experience", "projects", "contact"}

// DefaultHeaderOffset compensates for the fixed navigation bar.
const DefaultHeaderOffset = 100

// Bounds is the vertical extent [Top, Top+Height) of a section.
type Bounds struct {
	Top    float64
	Height float64
}

// Contains reports whether y falls inside the half-open extent.
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout maps section ids to their current bounds. Ids absent from the
// layout are skipped during a scan.
type Layout map[string]Bounds

// Tracker holds the active section. It is not safe for concurrent use;
// callers serialise access per page view.
type Tracker struct {
	sections     []string
	headerOffset float64
	active       string
}

// New returns a tracker over the given ordered sections. The first section
// starts active.
func New(sections []string, headerOffset float64) *Tracker {
	if len(sections) == 0 {
		sections = DefaultSections
	}
	ids := make([]string, len(sections))
	copy(ids, sections)
	return &Tracker{
		sections:     ids,
		headerOffset: headerOffset,
		active:       ids[0],
	}
}

// Sections returns the ordered section ids.
func (t *Tracker) Sections() []string {
	out := make([]string, len(t.sections))
	copy(out, t.sections)
	return out
}

// Has reports whether id is one of the tracked sections.
func (t *Tracker) Has(id string) bool {
	for _, s := range t.sections {
		if s == id {
			return true
		}
	}
	return false
}

// Active returns the active section id. It is never empty.
func (t *Tracker) Active() string { return t.active }

// Update re-scans the sections for scroll offset scrollY and returns the
// active section. The first section whose bounds contain
// scrollY+headerOffset wins; if none does, the previous one is kept.
func (t *Tracker) Update(scrollY float64, layout Layout) string {
	pos := scrollY + t.headerOffset
	for _, id := range t.sections {
		b, ok := layout[id]
		if !ok {
			continue
		}
		if b.Contains(pos) {
			t.active = id
			break
		}
	}
	return t.active
}

// ParseLayout parses "id:top:height" entries separated by commas, the form
// the page script posts. Empty input yields an empty layout.
func ParseLayout(s string) (Layout, error) {
	layout := make(Layout)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("layout entry %q: want id:top:height", entry)
		}
		top, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: top: %w", entry, err)
		}
		height, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("layout entry %q: height: %w", entry, err)
		}
		if height < 0 {
			return nil, fmt.Errorf("layout entry %q: negative height", entry)
		}
		layout[parts[0]] = Bounds{Top: top, Height: height}
	}
	return layout, nil
}
