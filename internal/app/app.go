// Package app wires together the adapters and domain logic, and manages
// server lifecycle: create, start, stop.
package app

import (
	"fmt"
	"log/slog"

	"github.com/smartmeal/smartmeal/internal/adapters/boltfav"
	"github.com/smartmeal/smartmeal/internal/adapters/corpusfile"
	"github.com/smartmeal/smartmeal/internal/adapters/corpuswatch"
	"github.com/smartmeal/smartmeal/internal/adapters/slogsink"
	"github.com/smartmeal/smartmeal/internal/adapters/web"
	"github.com/smartmeal/smartmeal/internal/config"
	"github.com/smartmeal/smartmeal/internal/domain/resolve"
)

// App owns the assembled server components.
type App struct {
	cfg config.Config
	log *slog.Logger

	provider  *corpusfile.Provider
	watcher   *corpuswatch.Watcher
	favorites *boltfav.Store
	server    *web.Server
}

// New assembles an App from configuration. The corpus is loaded eagerly —
// a server with no corpus has nothing to serve, so loader failures are
// reported here, before any request is accepted.
func New(cfg config.Config, log *slog.Logger) (*App, error) {
	provider, err := corpusfile.NewProvider(cfg.CorpusPath, log)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	favorites, err := boltfav.NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open favorites db: %w", err)
	}

	server := web.NewServer(web.Options{
		Corpus:          provider,
		Favorites:       favorites,
		Resolver:        resolve.Resolver{FuzzyThreshold: cfg.FuzzyThreshold},
		SuggestionCount: cfg.SuggestionCount,
		Sink:            slogsink.New(log),
		Log:             log,
	})

	return &App{
		cfg:       cfg,
		log:       log,
		provider:  provider,
		favorites: favorites,
		server:    server,
	}, nil
}

// Start begins serving the API and, when configured, watching the corpus
// file for changes.
func (a *App) Start() error {
	if a.cfg.Watch {
		watcher, err := corpuswatch.NewWatcher()
		if err != nil {
			return fmt.Errorf("corpus watcher: %w", err)
		}
		a.watcher = watcher
		err = watcher.Watch(a.cfg.CorpusPath, func() {
			if err := a.provider.Reload(); err != nil {
				a.log.Error("corpus reload failed", slog.Any("error", err))
			}
		})
		if err != nil {
			return fmt.Errorf("corpus watcher: %w", err)
		}
	}

	return a.server.Start(a.cfg.Listen)
}

// Addr returns the bound listen address, empty before Start.
func (a *App) Addr() string {
	return a.server.Addr()
}

// Stop shuts everything down in reverse start order.
func (a *App) Stop() {
	a.server.Stop()
	if a.watcher != nil {
		a.watcher.Stop()
	}
	if err := a.favorites.Close(); err != nil {
		a.log.Error("close favorites db", slog.Any("error", err))
	}
}
