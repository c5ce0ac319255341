package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := loadPortfolio(cfg)
		if err != nil {
			return err
		}

		source := cfg.Site.Content
		if source == "" {
			source = "built-in sample content"
		}
		images := 0
		for _, proj := range p.Projects {
			images += len(proj.Images)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Content OK: %s\n", source)
		fmt.Fprintf(out, "  Name:           %s\n", p.Profile.Name)
		fmt.Fprintf(out, "  Skill groups:   %d\n", len(p.Skills))
		fmt.Fprintf(out, "  Certifications: %d (+%d upcoming)\n", len(p.Certifications), len(p.Upcoming))
		fmt.Fprintf(out, "  Experience:     %d (+%d education)\n", len(p.Experience), len(p.Education))
		fmt.Fprintf(out, "  Projects:       %d (%d gallery images)\n", len(p.Projects), images)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
