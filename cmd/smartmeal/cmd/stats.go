package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/smartmeal/smartmeal/internal/adapters/corpusfile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Long:  "Prints record counts grouped by cuisine, meal type, and difficulty.",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	corpus, dropped, err := corpusfile.Load(cfg.CorpusPath)
	if err != nil {
		return err
	}

	fmt.Printf("corpus: %d recipes (%d dropped)\n", len(corpus), dropped)

	cuisines := map[string]int{}
	mealTypes := map[string]int{}
	difficulties := map[string]int{}
	for i := range corpus {
		cuisines[orUnknown(corpus[i].Cuisine)]++
		mealTypes[orUnknown(corpus[i].MealType)]++
		difficulties[orUnknown(corpus[i].Difficulty)]++
	}

	printGroup("by cuisine", cuisines)
	printGroup("by meal type", mealTypes)
	printGroup("by difficulty", difficulties)
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}

func printGroup(title string, counts map[string]int) {
	fmt.Printf("\n%s:\n", title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-16s %d\n", k, counts[k])
	}
}
