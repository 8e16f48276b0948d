package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

var (
	generateCount int
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sample recipe corpus",
	Long:  "Builds sample recipes through the dataset derivation rules and writes them as a corpus file the server can load.",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&generateCount, "count", 50, "number of recipes to generate")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output path (defaults to the configured corpus path)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := generateOut
	if out == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out = cfg.CorpusPath
	}
	if generateCount < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	records := recipe.SampleCorpus(generateCount)
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return fmt.Errorf("generated record %d: %w", i, err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode corpus: %w", err)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}

	fmt.Printf("wrote %d recipes to %s\n", len(records), out)

	cuisines := map[string]int{}
	for i := range records {
		cuisines[records[i].Cuisine]++
	}
	printGroup("by cuisine", cuisines)
	return nil
}
