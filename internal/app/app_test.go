package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmeal/smartmeal/internal/config"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	corpus := filepath.Join(dir, "recipes.json")
	require.NoError(t, os.WriteFile(corpus, []byte(`[
	  {"id": "chicken-soup-123", "title": "Chicken Soup"},
	  {"id": "beef-stew-42", "title": "Beef Stew"}
	]`), 0644))

	cfg := config.Default()
	cfg.Listen = "127.0.0.1:0"
	cfg.CorpusPath = corpus
	cfg.DBPath = filepath.Join(dir, "smartmeal.db")
	cfg.Watch = false
	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_FailsWithoutCorpus(t *testing.T) {
	cfg := testConfig(t)
	cfg.CorpusPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := New(cfg, testLogger())
	assert.Error(t, err)
}

func TestApp_ServesResolvedRecipes(t *testing.T) {
	a, err := New(testConfig(t), testLogger())
	require.NoError(t, err)
	require.NoError(t, a.Start())
	defer a.Stop()

	url := fmt.Sprintf("http://%s/api/recipes/Chicken_Soup_123", a.Addr())
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload struct {
		Recipe struct {
			ID string `json:"id"`
		} `json:"recipe"`
		MatchTier string `json:"matchTier"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "chicken-soup-123", payload.Recipe.ID)
	assert.Equal(t, "normalized", payload.MatchTier)
}

func TestApp_WatcherReloadsCorpus(t *testing.T) {
	cfg := testConfig(t)
	cfg.Watch = true

	a, err := New(cfg, testLogger())
	require.NoError(t, err)
	require.NoError(t, a.Start())
	defer a.Stop()

	require.NoError(t, os.WriteFile(cfg.CorpusPath, []byte(`[
	  {"id": "chicken-soup-123", "title": "Chicken Soup"},
	  {"id": "beef-stew-42", "title": "Beef Stew"},
	  {"id": "miso-ramen", "title": "Miso Ramen"}
	]`), 0644))

	url := fmt.Sprintf("http://%s/api/recipes/miso-ramen", a.Addr())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 100*time.Millisecond, "corpus change never became visible")
}
