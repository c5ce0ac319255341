// Package export writes the portfolio as a static site: the page, one
// fragment file per reachable gallery, menu and welcome state, and the
// asset tree.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/gallery"
	"github.com/mhmaidi/folio/internal/logging"
	"github.com/mhmaidi/folio/internal/progress"
	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/tracker"
	"github.com/mhmaidi/folio/internal/welcome"
)

// Options configures an export.
type Options struct {
	OutputDir    string
	AssetsDir    string
	AssetInclude []string
	AssetExclude []string
	Sections     []string
	Reporter     progress.Reporter
}

// Result counts what an export wrote.
type Result struct {
	Pages     int
	Fragments int
	Assets    int
}

// Exporter writes static sites.
type Exporter struct {
	portfolio *content.Portfolio
	render    *render.Renderer
	opts      Options
	log       zerolog.Logger
}

// New creates an Exporter. The renderer must be built in render.ModeExport
// so fragment links point at the files written here.
func New(p *content.Portfolio, rend *render.Renderer, opts Options) *Exporter {
	if opts.Reporter == nil {
		opts.Reporter = progress.Nop{}
	}
	return &Exporter{
		portfolio: p,
		render:    rend,
		opts:      opts,
		log:       logging.Component("export"),
	}
}

// file is one output file and how to produce it.
type file struct {
	path     string
	fragment bool
	write    func(io.Writer) error
}

// plan lists every generated file in a stable order.
func (e *Exporter) plan() ([]file, error) {
	first := tracker.New(e.opts.Sections, 0).Active()
	files := []file{
		{path: render.IndexFile, write: func(w io.Writer) error {
			return e.render.Page(w, render.Page{Active: first, Phase: welcome.PhaseVisible})
		}},
		{path: "static/folio.css", write: writeString(render.CSS())},
		{path: "static/folio.js", write: writeString(render.JS())},
		{path: render.GalleryClosedFile, fragment: true, write: func(w io.Writer) error {
			return e.render.Gallery(w, "", gallery.State{})
		}},
	}

	for i := range e.portfolio.Projects {
		proj := &e.portfolio.Projects[i]
		for idx := range proj.Images {
			st, err := gallery.StateAt(proj, idx)
			if err != nil {
				return nil, fmt.Errorf("project %q image %d: %w", proj.Title, idx, err)
			}
			files = append(files, file{
				path:     render.GalleryFile(proj.Slug(), idx),
				fragment: true,
				write:    func(w io.Writer) error { return e.render.Gallery(w, "", st) },
			})
		}
	}

	for _, open := range []bool{true, false} {
		files = append(files, file{
			path:     render.MenuFile(open),
			fragment: true,
			write:    func(w io.Writer) error { return e.render.Menu(w, "", open) },
		})
	}

	for _, phase := range []welcome.Phase{welcome.PhaseFading, welcome.PhaseHidden} {
		files = append(files, file{
			path:     render.WelcomeFile(phase),
			fragment: true,
			write:    func(w io.Writer) error { return e.render.Welcome(w, phase, false) },
		})
	}
	return files, nil
}

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// Export writes the site into the output directory.
func (e *Exporter) Export(ctx context.Context) (Result, error) {
	var res Result
	if e.opts.OutputDir == "" {
		return res, errors.New("output directory is required")
	}

	files, err := e.plan()
	if err != nil {
		return res, err
	}
	assets, err := e.assets()
	if err != nil {
		return res, err
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	rep := e.opts.Reporter
	rep.Start(len(files) + len(assets))
	defer rep.Finish()

	n := 0
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := e.writeFile(f); err != nil {
			return res, fmt.Errorf("writing %s: %w", f.path, err)
		}
		if f.fragment {
			res.Fragments++
		} else {
			res.Pages++
		}
		n++
		rep.Update(n, f.path)
	}

	for _, rel := range assets {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		src := filepath.Join(e.opts.AssetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(e.opts.OutputDir, "assets", filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return res, fmt.Errorf("copying asset %s: %w", rel, err)
		}
		res.Assets++
		n++
		rep.Update(n, "assets/"+rel)
	}

	e.log.Info().
		Str("output", e.opts.OutputDir).
		Int("pages", res.Pages).
		Int("fragments", res.Fragments).
		Int("assets", res.Assets).
		Msg("export finished")
	return res, nil
}

func (e *Exporter) writeFile(f file) error {
	var buf bytes.Buffer
	if err := f.write(&buf); err != nil {
		return err
	}
	path := filepath.Join(e.opts.OutputDir, filepath.FromSlash(f.path))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// assets lists the asset files to copy. A missing assets directory exports
// no assets.
func (e *Exporter) assets() ([]string, error) {
	if e.opts.AssetsDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(e.opts.AssetsDir); errors.Is(err, fs.ErrNotExist) {
		e.log.Warn().Str("dir", e.opts.AssetsDir).Msg("assets directory not found, skipping assets")
		return nil, nil
	}
	skip, err := filepath.Abs(e.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	return collectAssets(e.opts.AssetsDir, skip, e.opts.AssetInclude, e.opts.AssetExclude)
}
