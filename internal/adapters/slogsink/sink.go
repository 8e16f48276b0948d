// Package slogsink emits resolution diagnostics as structured log events.
// It is the default observability sink; the pipeline knows nothing about
// where the records end up.
package slogsink

import (
	"context"
	"log/slog"

	"github.com/smartmeal/smartmeal/internal/domain/resolve"
)

// Sink writes one structured event per resolution attempt.
type Sink struct {
	log *slog.Logger
}

// New creates a sink that logs through the given logger.
func New(log *slog.Logger) *Sink {
	return &Sink{log: log}
}

// Emit logs a diagnostic record. Unmatched attempts are logged at Warn so
// operators can alert on id-scheme drift without filtering.
func (s *Sink) Emit(d resolve.Diagnostic) {
	level := slog.LevelInfo
	if !d.Matched {
		level = slog.LevelWarn
	}
	s.log.LogAttrs(context.Background(), level, "recipe resolution",
		slog.String("attempt_id", d.AttemptID),
		slog.String("raw_id", d.RawID),
		slog.String("normalized_id", d.NormalizedID),
		slog.Bool("matched", d.Matched),
		slog.String("tier", d.Tier),
		slog.String("matched_id", d.MatchedID),
		slog.Int("suggestion_count", d.SuggestionCount),
		slog.Int("corpus_size", d.CorpusSize),
		slog.Any("sample_ids", d.SampleIDs),
	)
}
