package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Welcome.FadeAfter != 3*time.Second {
		t.Errorf("expected default fade_after 3s, got %s", cfg.Welcome.FadeAfter)
	}
	if cfg.Welcome.HideAfter != 4*time.Second {
		t.Errorf("expected default hide_after 4s, got %s", cfg.Welcome.HideAfter)
	}
	if cfg.Tracker.HeaderOffset != 100 {
		t.Errorf("expected default header_offset 100, got %v", cfg.Tracker.HeaderOffset)
	}
	if cfg.Site.OutputDir != "out" {
		t.Errorf("expected default output_dir %q, got %q", "out", cfg.Site.OutputDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Site.Title = "Hmaidi Mohamed"
	original.Site.BasePath = "/my-portfolio"
	original.Site.AssetInclude = []string{"**/*.png", "**/*.webp"}
	original.Server.Port = 9090
	original.Welcome.FadeAfter = 1500 * time.Millisecond
	original.Welcome.HideAfter = 2 * time.Second
	original.Log.Format = LogJSON

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Title != original.Site.Title {
		t.Errorf("title: got %q, want %q", loaded.Site.Title, original.Site.Title)
	}
	if loaded.Site.BasePath != original.Site.BasePath {
		t.Errorf("base_path: got %q, want %q", loaded.Site.BasePath, original.Site.BasePath)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Welcome.FadeAfter != original.Welcome.FadeAfter {
		t.Errorf("fade_after: got %s, want %s", loaded.Welcome.FadeAfter, original.Welcome.FadeAfter)
	}
	if loaded.Welcome.HideAfter != original.Welcome.HideAfter {
		t.Errorf("hide_after: got %s, want %s", loaded.Welcome.HideAfter, original.Welcome.HideAfter)
	}
	if loaded.Log.Format != LogJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogJSON)
	}
	if len(loaded.Site.AssetInclude) != len(original.Site.AssetInclude) {
		t.Fatalf("asset_include length: got %d, want %d", len(loaded.Site.AssetInclude), len(original.Site.AssetInclude))
	}
	for i, v := range loaded.Site.AssetInclude {
		if v != original.Site.AssetInclude[i] {
			t.Errorf("asset_include[%d]: got %q, want %q", i, v, original.Site.AssetInclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("FOLIO_SITE__BASE_PATH", "my-portfolio/")
	t.Setenv("FOLIO_SERVER__PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Site.BasePath != "/my-portfolio" {
		t.Errorf("env override base_path: got %q, want %q", loaded.Site.BasePath, "/my-portfolio")
	}
	if loaded.Server.Port != 3000 {
		t.Errorf("env override port: got %d, want 3000", loaded.Server.Port)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"FOLIO_SITE__BASE_PATH", "site.base_path"},
		{"FOLIO_SERVER__VIEW_TTL", "server.view_ttl"},
		{"FOLIO_LOG__LEVEL", "log.level"},
	}
	for _, tt := range tests {
		if got := envKey(tt.input); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.Site.OutputDir = "" }},
		{"relative base path", func(c *Config) { c.Site.BasePath = "my-portfolio" }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"zero view ttl", func(c *Config) { c.Server.ViewTTL = 0 }},
		{"negative release grace", func(c *Config) { c.Server.ReleaseGrace = -time.Second }},
		{"zero fade", func(c *Config) { c.Welcome.FadeAfter = 0 }},
		{"hide before fade", func(c *Config) { c.Welcome.HideAfter = 2 * time.Second }},
		{"hide equals fade", func(c *Config) { c.Welcome.HideAfter = c.Welcome.FadeAfter }},
		{"negative header offset", func(c *Config) { c.Tracker.HeaderOffset = -1 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"/", ""},
		{"my-portfolio", "/my-portfolio"},
		{"/my-portfolio/", "/my-portfolio"},
		{" /a/b/ ", "/a/b"},
	}
	for _, tt := range tests {
		if got := NormalizeBasePath(tt.input); got != tt.want {
			t.Errorf("NormalizeBasePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.{png,jpg},**/*.pdf", []string{"**/*.{png,jpg}", "**/*.pdf"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("site: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestContentSource(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "content.yml")
	if err := os.WriteFile(existing, []byte("profile: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.yml")

	tests := []struct {
		name         string
		path         string
		writeStarter bool
		want         string
	}{
		{"starter keeps path", missing, true, missing},
		{"existing file kept", existing, false, existing},
		{"missing file dropped", missing, false, ""},
		{"empty stays empty", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentSource(tt.path, tt.writeStarter); got != tt.want {
				t.Errorf("ContentSource(%q, %v) = %q, want %q", tt.path, tt.writeStarter, got, tt.want)
			}
		})
	}
}
