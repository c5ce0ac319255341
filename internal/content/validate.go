package content

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid wraps every content validation failure.
var ErrInvalid = errors.New("invalid content")

// Validate checks the invariants the page relies on. All problems are
// reported together.
func (p *Portfolio) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(p.Profile.Name) == "" {
		add("profile.name is required")
	}

	for i, sc := range p.Skills {
		if sc.Name == "" {
			add("skills[%d]: category is required", i)
		}
		if len(sc.Items) == 0 {
			add("skills[%d] %q: at least one item is required", i, sc.Name)
		}
		for j, item := range sc.Items {
			if item.Name == "" {
				add("skills[%d].items[%d]: name is required", i, j)
			}
		}
	}

	for i, c := range p.Certifications {
		if c.Name == "" {
			add("certifications[%d]: name is required", i)
		}
	}

	for i, e := range p.Education {
		if e.Degree == "" || e.Institution == "" {
			add("education[%d]: degree and institution are required", i)
		}
	}

	for i, e := range p.Experience {
		if e.Title == "" || e.Company == "" {
			add("experience[%d]: title and company are required", i)
		}
	}

	slugs := make(map[string]int, len(p.Projects))
	for i := range p.Projects {
		proj := &p.Projects[i]
		if proj.Title == "" {
			add("projects[%d]: title is required", i)
			continue
		}
		if len(proj.Images) == 0 {
			add("projects[%d] %q: at least one image is required", i, proj.Title)
		}
		for j, img := range proj.Images {
			if strings.TrimSpace(img) == "" {
				add("projects[%d] %q: images[%d] is empty", i, proj.Title, j)
			}
		}
		slug := proj.Slug()
		if slug == "" {
			add("projects[%d] %q: title has no usable characters", i, proj.Title)
			continue
		}
		if prev, dup := slugs[slug]; dup {
			add("projects[%d] %q: slug %q already used by projects[%d]", i, proj.Title, slug, prev)
			continue
		}
		slugs[slug] = i
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Slugify lower-cases s and collapses every run of characters outside
// [a-z0-9] into a single '-'.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
