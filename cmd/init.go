package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mhmaidi/folio/internal/config"
	"github.com/mhmaidi/folio/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize folio configuration with an interactive wizard",
	Long: `Runs an interactive wizard and writes a .folio.yml file. It can also write a
starter content file from the built-in sample portfolio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}
		if !res.WriteStarter || res.Config.Site.Content == "" {
			return nil
		}
		return writeStarterContent(res.Config.Site.Content)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// writeStarterContent writes the sample content to path unless a file is
// already there.
func writeStarterContent(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Content file %s already exists, leaving it untouched\n", path)
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating content dir: %w", err)
		}
	}
	if err := os.WriteFile(path, content.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("writing starter content: %w", err)
	}
	fmt.Printf("Starter content written to %s\n", path)
	return nil
}
