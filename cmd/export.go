package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mhmaidi/folio/internal/config"
	"github.com/mhmaidi/folio/internal/export"
	"github.com/mhmaidi/folio/internal/progress"
	"github.com/mhmaidi/folio/internal/render"
	"github.com/mhmaidi/folio/internal/tracker"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as a static site",
	Long: `Writes index.html, the stylesheet and script, one pre-rendered fragment for
every gallery, menu and welcome state, and the selected assets into the output
directory. Links honour the configured base path.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (site.output_dir)")
	exportCmd.Flags().String("base-path", "", "override base path (site.base_path), e.g. /my-portfolio")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Site.OutputDir = out
	}
	if cmd.Flags().Changed("base-path") {
		bp, _ := cmd.Flags().GetString("base-path")
		cfg.Site.BasePath = config.NormalizeBasePath(bp)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := loadPortfolio(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(cfg, p, render.ModeExport)
	if err != nil {
		return fmt.Errorf("building renderer: %w", err)
	}

	exp := export.New(p, rend, export.Options{
		OutputDir:    cfg.Site.OutputDir,
		AssetsDir:    cfg.Site.AssetsDir,
		AssetInclude: cfg.Site.AssetInclude,
		AssetExclude: cfg.Site.AssetExclude,
		Sections:     tracker.DefaultSections,
		Reporter:     progress.NewReporter(os.Stderr),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := exp.Export(ctx)
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages, %d fragments, %d assets)\n",
		cfg.Site.OutputDir, res.Pages, res.Fragments, res.Assets)
	return nil
}
