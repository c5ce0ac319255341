package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// WizardResult is what `folio init` collected interactively.
type WizardResult struct {
	Config *Config
	// WriteStarter asks the caller to write a starter content file at
	// Config.Site.Content.
	WriteStarter bool
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*WizardResult, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = title

	contentPrompt := promptui.Prompt{
		Label:   "Content file (YAML)",
		Default: "content.yml",
	}
	contentPath, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}
	cfg.Site.Content = strings.TrimSpace(contentPath)

	starterPrompt := promptui.Select{
		Label: "Start from the sample portfolio content?",
		Items: []string{"yes", "no"},
	}
	starterIdx, _, err := starterPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("starter content: %w", err)
	}
	writeStarter := starterIdx == 0
	if resolved := ContentSource(cfg.Site.Content, writeStarter); resolved != cfg.Site.Content {
		fmt.Printf("%s does not exist, the built-in sample content will be used\n", cfg.Site.Content)
		cfg.Site.Content = resolved
	}

	basePrompt := promptui.Prompt{
		Label:   "Base path for subdirectory hosting (blank for /)",
		Default: "",
	}
	basePath, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base path: %w", err)
	}
	cfg.Site.BasePath = NormalizeBasePath(basePath)

	outputPrompt := promptui.Prompt{
		Label:   "Export output directory",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = outputDir

	includePrompt := promptui.Prompt{
		Label:   "Asset include patterns (comma-separated globs)",
		Default: strings.Join(DefaultAssetInclude, ","),
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	if include := splitAndTrim(includeStr); len(include) > 0 {
		cfg.Site.AssetInclude = include
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return &WizardResult{Config: cfg, WriteStarter: writeStarter}, nil
}

// ContentSource returns the content path to save in the config. A path
// that will not be written and does not exist is dropped so the built-in
// sample is used instead.
func ContentSource(path string, writeStarter bool) string {
	if path == "" || writeStarter {
		return path
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// splitAndTrim splits a comma-separated string and trims whitespace.
// Brace groups such as {png,jpg} are kept intact.
func splitAndTrim(s string) []string {
	var result []string
	depth, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) {
			switch s[i] {
			case '{':
				depth++
				continue
			case '}':
				if depth > 0 {
					depth--
				}
				continue
			}
		}
		if i == len(s) || (s[i] == ',' && depth == 0) {
			if token := strings.TrimSpace(s[start:i]); token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}
