package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  "Shows the configuration the server would run with: file values layered over defaults.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := configPath
	if _, statErr := os.Stat(configPath); statErr != nil {
		source = fmt.Sprintf("%s (not found, using defaults)", configPath)
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s\n", bold("smartmeal config"))
	fmt.Printf("  Config file:  %s\n", source)
	fmt.Printf("  Listen:       %s\n", cfg.Listen)
	fmt.Printf("  Corpus:       %s\n", cfg.CorpusPath)
	fmt.Printf("  DB:           %s\n", cfg.DBPath)
	fmt.Printf("  Suggestions:  %d\n", cfg.SuggestionCount)
	fmt.Printf("  Threshold:    %.2f\n", cfg.FuzzyThreshold)
	fmt.Printf("  Watch:        %t\n", cfg.Watch)
	return nil
}
