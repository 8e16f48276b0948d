// Package corpusfile implements ports.CorpusSource from a recipes JSON
// file. The file holds an ordered array of recipe records; file order is
// preserved because it is the tie-break for fuzzy matches and suggestions.
package corpusfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/smartmeal/smartmeal/internal/domain/recipe"
)

// Load reads and decodes a recipes JSON file. Records that fail
// validation (empty id or title, negative times or servings) are dropped
// and the drop count is returned so callers can report it.
func Load(path string) (records []recipe.Record, dropped int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("read corpus: %w", err)
	}

	var raw []recipe.Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("parse corpus %s: %w", path, err)
	}

	records = make([]recipe.Record, 0, len(raw))
	for i := range raw {
		if raw[i].Validate() != nil {
			dropped++
			continue
		}
		records = append(records, raw[i])
	}
	return records, dropped, nil
}

// Provider holds the current corpus snapshot and swaps it atomically on
// reload. Snapshot readers and a concurrent Reload never block each other
// for longer than the pointer swap.
type Provider struct {
	path string
	log  *slog.Logger

	mu      sync.RWMutex
	records []recipe.Record
}

// NewProvider creates a provider for the given corpus file and performs
// the initial load.
func NewProvider(path string, log *slog.Logger) (*Provider, error) {
	p := &Provider{path: path, log: log}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Snapshot returns the current corpus. Callers must treat it as read-only;
// the slice is never mutated after the swap, so borrowing it is safe.
func (p *Provider) Snapshot() []recipe.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.records
}

// Reload re-reads the corpus file. On failure the previous snapshot stays
// in place and the error is returned.
func (p *Provider) Reload() error {
	records, dropped, err := Load(p.path)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.records = records
	p.mu.Unlock()

	if p.log != nil {
		p.log.Info("corpus loaded",
			slog.String("path", p.path),
			slog.Int("records", len(records)),
			slog.Int("dropped", dropped),
		)
	}
	return nil
}
