package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/server"
	"github.com/mhmaidi/folio/internal/tracker"
	"github.com/mhmaidi/folio/internal/view"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio with live page views",
	Long: `Starts an HTTP server that renders the portfolio and answers the htmx
fragment requests driving scroll-spy, the mobile menu, the project gallery and
the welcome splash.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	p, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(cfg, p, render.ModeServe)
	if err != nil {
		return fmt.Errorf("building renderer: %w", err)
	}
	views := view.NewRegistry(view.Options{
		Sections:     tracker.DefaultSections,
		HeaderOffset: cfg.Tracker.HeaderOffset,
		TTL:          cfg.Server.ViewTTL,
	})

	srv := server.New(server.Config{
		Port:          cfg.Server.Port,
		BasePath:      cfg.Site.BasePath,
		AssetsDir:     cfg.Site.AssetsDir,
		AllowAll:      cfg.Server.AllowAll,
		Welcome:       welcomeSequence(cfg),
		SweepInterval: sweepInterval(cfg.Server.ViewTTL),
		ReleaseGrace:  cfg.Server.ReleaseGrace,
	}, p, rend, views)

	url := fmt.Sprintf("http://localhost:%d%s", cfg.Server.Port, rend.URLs().Root())
	fmt.Fprintf(os.Stderr, "Serving %s at %s\n", p.Profile.Name, url)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

// sweepInterval checks for idle views a few times per TTL.
func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}
