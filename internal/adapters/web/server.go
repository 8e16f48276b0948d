// Package web serves the recipe JSON API over HTTP. It is the boundary
// layer: it extracts raw identifiers from requests, runs them through the
// resolution pipeline, and maps results to responses. One diagnostic
// record is emitted per resolution attempt.
package web

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/smartmeal/smartmeal/internal/domain/resolve"
	"github.com/smartmeal/smartmeal/internal/ports"
)

// Server serves the recipe API.
type Server struct {
	corpus          ports.CorpusSource
	favorites       ports.FavoritesStore
	resolver        resolve.Resolver
	suggestionCount int
	sink            resolve.DiagnosticSink
	log             *slog.Logger

	listener net.Listener
	httpSrv  *http.Server
	started  time.Time
	stopOnce sync.Once
}

// Options configures a Server.
type Options struct {
	Corpus          ports.CorpusSource
	Favorites       ports.FavoritesStore
	Resolver        resolve.Resolver
	SuggestionCount int
	Sink            resolve.DiagnosticSink
	Log             *slog.Logger
}

// NewServer creates an HTTP server for the recipe API.
func NewServer(opts Options) *Server {
	count := opts.SuggestionCount
	if count <= 0 {
		count = resolve.DefaultSuggestionCount
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		corpus:          opts.Corpus,
		favorites:       opts.Favorites,
		resolver:        opts.Resolver,
		suggestionCount: count,
		sink:            opts.Sink,
		log:             log,
	}
}

// Handler builds the API route table. Exposed separately from Start so
// tests can drive it without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/recipes", s.handleListRecipes)
	mux.HandleFunc("GET /api/recipes/{id}", s.handleGetRecipe)
	mux.HandleFunc("GET /api/profiles/{profile}/favorites", s.handleListFavorites)
	mux.HandleFunc("PUT /api/profiles/{profile}/favorites/{id}", s.handleAddFavorite)
	mux.HandleFunc("DELETE /api/profiles/{profile}/favorites/{id}", s.handleRemoveFavorite)
	return s.logRequests(mux)
}

// Start begins listening on addr.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.started = time.Now()
	s.httpSrv = &http.Server{Handler: s.Handler()}

	s.log.Info("api listening", slog.String("addr", ln.Addr().String()))
	go s.httpSrv.Serve(ln)
	return nil
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.httpSrv.Shutdown(ctx)
		}
	})
}

// Addr returns the bound listen address, empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("elapsed", time.Since(start)),
		)
	})
}

// resolveID runs one resolution attempt over the current corpus snapshot
// and emits its diagnostic.
func (s *Server) resolveID(rawID string) resolve.Result {
	corpus := s.corpus.Snapshot()
	res := s.resolver.Resolve(corpus, rawID, s.suggestionCount)
	if s.sink != nil {
		s.sink.Emit(resolve.BuildDiagnostic(rawID, res, corpus))
	}
	return res
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthPayload{
		Status:     "ok",
		CorpusSize: len(s.corpus.Snapshot()),
		Uptime:     time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	corpus := s.corpus.Snapshot()
	items := make([]recipeSummary, 0, len(corpus))
	for i := range corpus {
		items = append(items, recipeSummary{
			ID:       corpus[i].ID,
			Title:    corpus[i].Title,
			MealType: corpus[i].MealType,
			Cuisine:  corpus[i].Cuisine,
		})
	}
	writeJSON(w, http.StatusOK, listPayload{Recipes: items, Count: len(items)})
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	rawID := r.PathValue("id")
	if strings.TrimSpace(rawID) == "" {
		writeError(w, http.StatusBadRequest, "recipe id is required")
		return
	}

	res := s.resolveID(rawID)
	if res.Recipe == nil {
		writeJSON(w, http.StatusNotFound, notFoundPayload{
			Error:       "recipe not found",
			RequestedID: rawID,
			Suggestions: orEmpty(res.Suggestions),
		})
		return
	}

	payload := recipePayload{Recipe: res.Recipe}
	if res.Tier != resolve.TierExact {
		// Surface non-exact tiers so clients can tell the id drifted.
		payload.MatchTier = res.Tier.String()
	}
	if profile := r.URL.Query().Get("profile"); profile != "" {
		fav, err := s.favorites.IsFavorite(profile, res.MatchedID)
		if err != nil {
			s.log.Error("favorite lookup", slog.String("profile", profile), slog.Any("error", err))
		} else {
			payload.Favorite = &fav
		}
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	ids, err := s.favorites.List(profile)
	if err != nil {
		s.log.Error("list favorites", slog.String("profile", profile), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "favorites unavailable")
		return
	}
	writeJSON(w, http.StatusOK, favoritesPayload{Profile: profile, Favorites: orEmpty(ids)})
}

// handleAddFavorite resolves the id before storing so favorites always
// hold canonical corpus ids, even when the client sent a drifted one.
func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	rawID := r.PathValue("id")
	if strings.TrimSpace(rawID) == "" {
		writeError(w, http.StatusBadRequest, "recipe id is required")
		return
	}

	res := s.resolveID(rawID)
	if res.Recipe == nil {
		writeJSON(w, http.StatusNotFound, notFoundPayload{
			Error:       "recipe not found",
			RequestedID: rawID,
			Suggestions: orEmpty(res.Suggestions),
		})
		return
	}

	if err := s.favorites.Add(profile, res.MatchedID); err != nil {
		s.log.Error("add favorite", slog.String("profile", profile), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "favorites unavailable")
		return
	}
	writeJSON(w, http.StatusOK, favoriteChangedPayload{Profile: profile, RecipeID: res.MatchedID})
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	profile := r.PathValue("profile")
	rawID := r.PathValue("id")

	// Resolve to the canonical id when possible; fall back to the raw id
	// so stale favorites can still be removed after corpus drift.
	id := rawID
	if res := s.resolveID(rawID); res.Recipe != nil {
		id = res.MatchedID
	}

	if err := s.favorites.Remove(profile, id); err != nil {
		s.log.Error("remove favorite", slog.String("profile", profile), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "favorites unavailable")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
