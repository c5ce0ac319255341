package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/mhmaidi/folio/internal/config"
	"github.com/mhmaidi/folio/internal/content"
	"github.com/mhmaidi/folio/internal/logging"
	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/tracker"
	"github.com/mhmaidi/folio/internal/welcome"
)

// loadConfig loads and validates the config, providing a user-friendly
// error, and sets up logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	logging.Setup(cfg.Log.Level, string(cfg.Log.Format), os.Stderr)
	return cfg, nil
}

// loadPortfolio reads the content file named in the config, or the
// embedded sample content when none is set.
func loadPortfolio(cfg *config.Config) (*content.Portfolio, error) {
	p, err := content.Load(cfg.Site.Content)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}

func welcomeSequence(cfg *config.Config) welcome.Sequence {
	return welcome.New(cfg.Welcome.FadeAfter, cfg.Welcome.HideAfter)
}

func newRenderer(cfg *config.Config, p *content.Portfolio, mode render.Mode) (*render.Renderer, error) {
	return render.New(p, render.Options{
		Title:    cfg.Site.Title,
		Sections: tracker.DefaultSections,
		URLs: render.URLs{
			BasePath:      cfg.Site.BasePath,
			TrailingSlash: cfg.Site.TrailingSlash,
			Mode:          mode,
		},
		Welcome: welcomeSequence(cfg),
	})
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
