package config

import "time"

// DefaultAssetInclude are glob patterns copied from the assets directory on export.
var DefaultAssetInclude = []string{
	"**/*.{png,jpg,jpeg,webp,gif,svg,ico}",
	"**/*.pdf",
}

// DefaultAssetExclude are glob patterns never copied on export.
var DefaultAssetExclude = []string{
	"**/.*",
	"**/*.psd",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:         "Portfolio",
			AssetsDir:     "public",
			OutputDir:     "out",
			TrailingSlash: true,
			AssetInclude:  append([]string(nil), DefaultAssetInclude...),
			AssetExclude:  append([]string(nil), DefaultAssetExclude...),
		},
		Server: ServerConfig{
			Port:         8080,
			ViewTTL:      30 * time.Minute,
			ReleaseGrace: 10 * time.Second,
		},
		Welcome: WelcomeConfig{
			FadeAfter: 3 * time.Second,
			HideAfter: 4 * time.Second,
		},
		Tracker: TrackerConfig{
			HeaderOffset: 100,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
	}
}
