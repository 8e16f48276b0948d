package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/smartmeal/smartmeal/internal/adapters/boltfav"
	"github.com/smartmeal/smartmeal/internal/adapters/corpusfile"
	"github.com/smartmeal/smartmeal/internal/domain/resolve"
)

var favoritesProfile string

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage a profile's favorite recipes",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite recipe ids",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a recipe to the favorites",
	Long:  "Resolves the id against the corpus first, so a drifted id is stored under its canonical form.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a recipe from the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesCmd.PersistentFlags().StringVarP(&favoritesProfile, "profile", "p", "default", "profile the favorites belong to")
	favoritesCmd.AddCommand(favoritesListCmd, favoritesAddCmd, favoritesRemoveCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := boltfav.NewStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	ids, err := store.List(favoritesProfile)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Printf("no favorites for profile %q\n", favoritesProfile)
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	corpus, _, err := corpusfile.Load(cfg.CorpusPath)
	if err != nil {
		return err
	}

	rawID := args[0]
	resolver := resolve.Resolver{FuzzyThreshold: cfg.FuzzyThreshold}
	res := resolver.Resolve(corpus, rawID, cfg.SuggestionCount)
	if !res.Tier.Matched() {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Printf("%s %q\n", red("✗ no such recipe"), rawID)
		for _, id := range res.Suggestions {
			fmt.Printf("  did you mean: %s\n", id)
		}
		return fmt.Errorf("recipe %q not found", rawID)
	}

	store, err := boltfav.NewStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Add(favoritesProfile, res.MatchedID); err != nil {
		return err
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s %s\n", green("✓ added"), res.MatchedID)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := boltfav.NewStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(favoritesProfile, args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}
