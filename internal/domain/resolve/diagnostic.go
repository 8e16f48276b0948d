package resolve

import (
	"github.com/google/uuid"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

// sampleIDLimit bounds how many corpus ids a diagnostic may carry.
// Diagnostics never include the full corpus — a handful of ids is enough
// for operators to spot an id-scheme mismatch without exposing content.
const sampleIDLimit = 5

// Diagnostic is the structured record emitted after every resolution
// attempt. It lets operators distinguish clients sending malformed ids
// from corpus drift from fuzzy fallback working as intended. Built fresh
// per call and owned by the caller.
type Diagnostic struct {
	AttemptID       string   `json:"attemptId"`
	RawID           string   `json:"rawId"`
	NormalizedID    string   `json:"normalizedId"`
	Matched         bool     `json:"matched"`
	Tier            string   `json:"tier"`
	MatchedID       string   `json:"matchedId,omitempty"`
	SuggestionCount int      `json:"suggestionCount"`
	CorpusSize      int      `json:"corpusSize"`
	SampleIDs       []string `json:"sampleIds"`
}

// DiagnosticSink receives one Diagnostic per resolution attempt. The
// pipeline has no knowledge of the sink's transport or retention.
type DiagnosticSink interface {
	Emit(d Diagnostic)
}

// BuildDiagnostic assembles a diagnostic record for a completed
// resolution attempt over the corpus it ran against.
func BuildDiagnostic(rawID string, res Result, corpus []recipe.Record) Diagnostic {
	return Diagnostic{
		AttemptID:       uuid.NewString(),
		RawID:           rawID,
		NormalizedID:    res.NormalizedID,
		Matched:         res.Tier.Matched(),
		Tier:            res.Tier.String(),
		MatchedID:       res.MatchedID,
		SuggestionCount: len(res.Suggestions),
		CorpusSize:      len(corpus),
		SampleIDs:       sampleIDs(corpus),
	}
}

// sampleIDs takes the first few well-formed corpus ids in corpus order.
func sampleIDs(corpus []recipe.Record) []string {
	var ids []string
	for i := range corpus {
		if corpus[i].ID == "" {
			continue
		}
		ids = append(ids, corpus[i].ID)
		if len(ids) == sampleIDLimit {
			break
		}
	}
	return ids
}
