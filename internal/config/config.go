// Package config loads server configuration from an optional YAML file,
// overlaying values onto defaults. A missing file is not an error — the
// server runs fine on defaults alone.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smartmeal/smartmeal/internal/domain/resolve"
)

// Config holds the effective server configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// CorpusPath is the recipes JSON file the corpus is loaded from.
	CorpusPath string `yaml:"corpus_path"`

	// DBPath is the bbolt database file for favorites.
	DBPath string `yaml:"db_path"`

	// SuggestionCount is how many "did you mean" ids a failed lookup returns.
	SuggestionCount int `yaml:"suggestion_count"`

	// FuzzyThreshold is the maximum edit distance ratio the fuzzy match
	// tier accepts (0 < threshold <= 1).
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// Watch reloads the corpus automatically when the file changes.
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Listen:          "127.0.0.1:8080",
		CorpusPath:      "data/recipes.json",
		DBPath:          "smartmeal.db",
		SuggestionCount: resolve.DefaultSuggestionCount,
		FuzzyThreshold:  resolve.DefaultFuzzyThreshold,
		Watch:           true,
	}
}

// Load reads a YAML config file and overlays it onto defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.SuggestionCount < 0 {
		return fmt.Errorf("suggestion_count must be >= 0, got %d", c.SuggestionCount)
	}
	if c.FuzzyThreshold <= 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in (0, 1], got %g", c.FuzzyThreshold)
	}
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.CorpusPath == "" {
		return fmt.Errorf("corpus_path is empty")
	}
	return nil
}
