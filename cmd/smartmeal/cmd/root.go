package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartmeal/smartmeal/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "smartmeal",
	Short: "SmartMeal — recipe server with drift-tolerant id resolution",
	Long:  "Serves recipes by id, tolerating casing, punctuation, and typo drift, with ranked suggestions when nothing matches.",
}

var (
	configPath string
	verbose    bool
)

// loadConfig reads the config file named by --config (defaults apply when
// the file is absent).
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// newLogger builds the process logger. --verbose lowers the level to debug.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "smartmeal.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(configCmd)
}
