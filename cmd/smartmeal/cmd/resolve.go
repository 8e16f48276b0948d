package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartmeal/smartmeal/internal/adapters/corpusfile"
	"github.com/smartmeal/smartmeal/internal/domain/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <id>",
	Short: "Resolve a recipe id against the corpus",
	Long:  "Runs one id through the matching tiers and prints the outcome, including suggestions when nothing matched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	corpus, dropped, err := corpusfile.Load(cfg.CorpusPath)
	if err != nil {
		return err
	}
	if dropped > 0 {
		fmt.Printf("corpus: dropped %d record(s) with empty ids\n", dropped)
	}

	rawID := args[0]
	resolver := resolve.Resolver{FuzzyThreshold: cfg.FuzzyThreshold}
	res := resolver.Resolve(corpus, rawID, cfg.SuggestionCount)

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	switch {
	case res.Tier == resolve.TierExact:
		fmt.Printf("%s %s\n", green("✓ exact"), res.MatchedID)
	case res.Tier.Matched():
		fmt.Printf("%s %s (requested %q, key %q)\n",
			yellow("✓ "+res.Tier.String()), res.MatchedID, rawID, res.NormalizedID)
	default:
		fmt.Printf("%s %q (key %q)\n", red("✗ no match"), rawID, res.NormalizedID)
		if len(res.Suggestions) > 0 {
			fmt.Println("did you mean:")
			for _, id := range res.Suggestions {
				fmt.Printf("  %s\n", id)
			}
		}
	}
	return nil
}
