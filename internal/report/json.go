package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"crate/internal/reconcile"
)

// MissingEntry is one catalog entity without a folder on disk.
type MissingEntry struct {
	EntityID int64  `json:"entity_id"`
	Name     string `json:"name"`
	Folder   string `json:"folder"`
}

// CandidateEntry is one fuzzy suggestion in a reconciliation report.
type CandidateEntry struct {
	Folder     string  `json:"folder"`
	EntityID   int64   `json:"entity_id"`
	EntityName string  `json:"entity_name"`
	Score      float64 `json:"score"`
}

// ReconcileReport is the JSON shape of one reconciliation run.
type ReconcileReport struct {
	RunID              string           `json:"run_id"`
	GeneratedAt        time.Time        `json:"generated_at"`
	Kind               string           `json:"kind"`
	Base               string           `json:"base"`
	Total              int              `json:"total"`
	ExactMatches       int              `json:"exact_matches"`
	AlternativeMatches int              `json:"alternative_matches"`
	Coverage           float64          `json:"coverage"`
	Missing            []MissingEntry   `json:"missing"`
	Orphaned           []string         `json:"orphaned"`
	Candidates         []CandidateEntry `json:"candidates"`
}

// NewReconcileReport converts a reconciliation result into its export
// shape.
func NewReconcileReport(runID, kind, base string, rep reconcile.Report) ReconcileReport {
	out := ReconcileReport{
		RunID:              runID,
		GeneratedAt:        time.Now().UTC(),
		Kind:               kind,
		Base:               base,
		Total:              rep.Total,
		ExactMatches:       rep.ExactMatches,
		AlternativeMatches: rep.AlternativeMatches,
		Coverage:           rep.Coverage(),
		Missing:            make([]MissingEntry, 0, len(rep.Missing)),
		Orphaned:           append([]string{}, rep.Orphaned...),
		Candidates:         make([]CandidateEntry, 0, len(rep.Candidates)),
	}
	for _, entity := range rep.Missing {
		out.Missing = append(out.Missing, MissingEntry{
			EntityID: entity.ID,
			Name:     entity.Name,
			Folder:   entity.Canonical(),
		})
	}
	for _, cand := range rep.Candidates {
		out.Candidates = append(out.Candidates, CandidateEntry{
			Folder:     cand.Folder,
			EntityID:   cand.EntityID,
			EntityName: cand.EntityName,
			Score:      cand.Score,
		})
	}
	return out
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}
	return nil
}
