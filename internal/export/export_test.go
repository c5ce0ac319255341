package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/render"
)

func setup(t *testing.T, opts Options) (*Exporter, *content.Portfolio) {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	rend, err := render.New(p, render.Options{
		URLs: render.URLs{BasePath: "/my-portfolio", TrailingSlash: true, Mode: render.ModeExport},
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	if opts.OutputDir == "" {
		opts.OutputDir = t.TempDir()
	}
	return New(p, rend, opts), p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestExportWritesSite(t *testing.T) {
	e, p := setup(t, Options{})
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := e.opts.OutputDir

	for _, rel := range []string{
		"index.html",
		"static/folio.css",
		"static/folio.js",
		"gallery/closed.html",
		"menu/open.html",
		"menu/closed.html",
		"welcome/fading.html",
		"welcome/hidden.html",
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	images := 0
	for _, proj := range p.Projects {
		images += len(proj.Images)
	}
	// closed gallery + one per image + two menus + two welcome phases
	if want := 1 + images + 2 + 2; res.Fragments != want {
		t.Errorf("Fragments = %d, want %d", res.Fragments, want)
	}
	if res.Pages != 3 {
		t.Errorf("Pages = %d, want 3", res.Pages)
	}
}

func TestExportGalleryLinksAreCircular(t *testing.T) {
	e, p := setup(t, Options{})
	if _, err := e.Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, proj := range p.Projects {
		n := len(proj.Images)
		for i := 0; i < n; i++ {
			html := readFile(t, filepath.Join(e.opts.OutputDir, "gallery", proj.Slug(), fmt.Sprintf("%d.html", i)))
			next := fmt.Sprintf(`class="gallery-next" aria-label="Next image" hx-get="/my-portfolio/gallery/%s/%d.html"`, proj.Slug(), (i+1)%n)
			prev := fmt.Sprintf(`class="gallery-prev" aria-label="Previous image" hx-get="/my-portfolio/gallery/%s/%d.html"`, proj.Slug(), (i-1+n)%n)
			if !strings.Contains(html, next) {
				t.Errorf("%s/%d: next link should point to %d", proj.Slug(), i, (i+1)%n)
			}
			if !strings.Contains(html, prev) {
				t.Errorf("%s/%d: prev link should point to %d", proj.Slug(), i, (i-1+n)%n)
			}
			if !strings.Contains(html, fmt.Sprintf("%d / %d", i+1, n)) {
				t.Errorf("%s/%d: wrong position caption", proj.Slug(), i)
			}
		}
	}
}

func TestExportIndexUsesStaticFragments(t *testing.T) {
	e, _ := setup(t, Options{})
	if _, err := e.Export(context.Background()); err != nil {
		t.Fatalf("Export: %v", err)
	}
	html := readFile(t, filepath.Join(e.opts.OutputDir, "index.html"))

	if strings.Contains(html, "/views/") || strings.Contains(html, "ws-connect") {
		t.Error("exported page should not reference live endpoints")
	}
	for _, want := range []string{
		`hx-get="/my-portfolio/welcome/fading.html"`,
		`hx-get="/my-portfolio/gallery/devsecops-pipeline/0.html"`,
		`hx-get="/my-portfolio/menu/open.html"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
	// A fresh page sits on the hero, which has no nav link.
	if strings.Contains(html, `class="active"`) {
		t.Error("no nav link should be active in the exported page")
	}
}

func TestExportCopiesMatchingAssets(t *testing.T) {
	assets := t.TempDir()
	for _, rel := range []string{"logos/aws.png", "projects/a.jpg", "notes/todo.txt", "drafts/x.png"} {
		path := filepath.Join(assets, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	e, _ := setup(t, Options{
		AssetsDir:    assets,
		AssetInclude: []string{"**/*.{png,jpg}"},
		AssetExclude: []string{"drafts/**"},
	})
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Assets != 2 {
		t.Errorf("Assets = %d, want 2", res.Assets)
	}

	out := e.opts.OutputDir
	if got := readFile(t, filepath.Join(out, "assets", "logos", "aws.png")); got != "logos/aws.png" {
		t.Errorf("copied content = %q", got)
	}
	for _, rel := range []string{"assets/notes/todo.txt", "assets/drafts/x.png"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err == nil {
			t.Errorf("%s should not be exported", rel)
		}
	}
}

func TestExportSkipsOutputInsideAssets(t *testing.T) {
	assets := t.TempDir()
	if err := os.WriteFile(filepath.Join(assets, "a.png"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(assets, "out")
	if err := os.MkdirAll(filepath.Join(out, "old"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "old", "b.png"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	e, _ := setup(t, Options{AssetsDir: assets, OutputDir: out})
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Assets != 1 {
		t.Errorf("Assets = %d, want 1", res.Assets)
	}
}

func TestExportMissingAssetsDir(t *testing.T) {
	e, _ := setup(t, Options{AssetsDir: filepath.Join(t.TempDir(), "nope")})
	res, err := e.Export(context.Background())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.Assets != 0 {
		t.Errorf("Assets = %d, want 0", res.Assets)
	}
}

func TestExportCancelled(t *testing.T) {
	e, _ := setup(t, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Export(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestExportRequiresOutputDir(t *testing.T) {
	p, _ := content.Default()
	rend, err := render.New(p, render.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(p, rend, Options{}).Export(context.Background()); err == nil {
		t.Error("expected error without output dir")
	}
}

type countingReporter struct {
	total, updates int
	finished       bool
}

func (r *countingReporter) Start(total int)    { r.total = total }
func (r *countingReporter) Update(int, string) { r.updates++ }
func (r *countingReporter) Finish()            { r.finished = true }

func TestExportReportsProgress(t *testing.T) {
	rep := &countingReporter{}
	e, _ := setup(t, Options{Reporter: rep})
	if _, err := e.Export(context.Background()); err != nil {
		t.Fatal(err)
	}
	if rep.total == 0 || rep.updates != rep.total || !rep.finished {
		t.Errorf("reporter = %+v", rep)
	}
}

func TestMatchers(t *testing.T) {
	tests := []struct {
		path    string
		include []string
		exclude []string
		want    bool
	}{
		{"logos/aws.png", nil, nil, true},
		{"logos/aws.png", []string{"*.png"}, nil, true},
		{"logos/aws.png", []string{"**/*.jpg"}, nil, false},
		{"logos/aws.png", nil, []string{"logos/**"}, false},
		{".DS_Store", nil, []string{".DS_Store"}, false},
	}
	for _, tt := range tests {
		got := matchesInclude(tt.path, tt.include) && !matchesExclude(tt.path, tt.exclude)
		if got != tt.want {
			t.Errorf("%s include=%v exclude=%v: got %v, want %v", tt.path, tt.include, tt.exclude, got, tt.want)
		}
	}
}
