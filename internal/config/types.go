package config

import "time"

// LogFormat selects the zerolog output encoding.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Welcome WelcomeConfig `yaml:"welcome" koanf:"welcome"`
	Tracker TrackerConfig `yaml:"tracker" koanf:"tracker"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// SiteConfig describes where content and assets live and how URLs are built.
type SiteConfig struct {
	Title         string   `yaml:"title" koanf:"title"`
	Content       string   `yaml:"content" koanf:"content"` // empty = embedded default content
	AssetsDir     string   `yaml:"assets_dir" koanf:"assets_dir"`
	OutputDir     string   `yaml:"output_dir" koanf:"output_dir"`
	BasePath      string   `yaml:"base_path" koanf:"base_path"`
	TrailingSlash bool     `yaml:"trailing_slash" koanf:"trailing_slash"`
	AssetInclude  []string `yaml:"asset_include" koanf:"asset_include"`
	AssetExclude  []string `yaml:"asset_exclude" koanf:"asset_exclude"`
}

// ServerConfig holds settings for `folio serve`.
type ServerConfig struct {
	Port     int           `yaml:"port" koanf:"port"`
	AllowAll bool          `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins
	ViewTTL  time.Duration `yaml:"view_ttl" koanf:"view_ttl"`

	// ReleaseGrace keeps a view after its live connection drops so the
	// client can reconnect.
	ReleaseGrace time.Duration `yaml:"release_grace" koanf:"release_grace"`
}

// WelcomeConfig controls the splash screen timeline.
type WelcomeConfig struct {
	FadeAfter time.Duration `yaml:"fade_after" koanf:"fade_after"`
	HideAfter time.Duration `yaml:"hide_after" koanf:"hide_after"`
}

// TrackerConfig controls scroll-spy behaviour.
type TrackerConfig struct {
	HeaderOffset float64 `yaml:"header_offset" koanf:"header_offset"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
