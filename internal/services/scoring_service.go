// Package services – ScoringService
//
// This file implements the classification engine and the patient result
// store. Classify is a pure function: the band depends only on the raw score
// and two global threshold constants, and the returned result carries an
// immutable snapshot of the definition's three recommendation texts taken at
// call time. BatchClassifyAndStore applies Classify per entry with upsert
// semantics keyed by field id; entries whose field id does not resolve are
// skipped independently of the rest of the batch.
package services

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/store"
)

// Band thresholds are global and fixed, independent of any definition's
// min/max input range. The per-field range bounds entry-form hints only; a
// definition with max below highScoreMin can therefore never classify HIGH.
// That asymmetry is inherited from the source system on purpose — changing
// it would silently alter the meaning of historical reports — so the values
// live here as named constants for the product to revisit.
const (
	lowScoreMax  = 3 // score <= lowScoreMax  -> LOW
	highScoreMin = 7 // score >= highScoreMin -> HIGH
)

// Classify converts a raw score into a banded result for the given
// definition. It is deterministic, has no I/O, and does not range-check the
// score against the definition's min/max (the entry UI owns that hint).
func Classify(def domain.FieldDefinition, score int) domain.DietAnalysisResult {
	level := domain.LevelNormal
	switch {
	case score <= lowScoreMax:
		level = domain.LevelLow
	case score >= highScoreMin:
		level = domain.LevelHigh
	}

	recs := domain.Recommendations{
		High:   def.HighRecommendation,
		Normal: def.NormalRecommendation,
		Low:    def.LowRecommendation,
	}
	return domain.DietAnalysisResult{
		FieldID:         def.ID,
		Score:           score,
		Level:           level,
		Recommendations: recs,
		SelectedLevel:   level,
		Recommendation:  recs.ForLevel(level),
	}
}

// ScoringService records classified scores into the document's result list.
type ScoringService struct {
	// Store is the whole-document persistence gateway.
	Store *store.DocumentStore
	// DB is the GORM handle used for the audit trail. May be nil in tests.
	DB *gorm.DB
}

// NewScoringService constructs a ScoringService.
func NewScoringService(st *store.DocumentStore, db *gorm.DB) *ScoringService {
	return &ScoringService{Store: st, DB: db}
}

// BatchResult reports the outcome of one batch scoring call.
type BatchResult struct {
	// Written is the number of result rows created or replaced.
	Written int `json:"written"`
	// Skipped lists the field ids that had no definition at call time,
	// sorted for deterministic output.
	Skipped []string `json:"skipped"`
}

// BatchClassifyAndStore classifies each entered score against its field's
// definition and upserts the result (replace when a result for that field id
// already exists, append otherwise). Unknown field ids are skipped; the rest
// of the batch proceeds. Entries are applied in sorted field-id order so the
// stored order is deterministic for a given batch.
func (s *ScoringService) BatchClassifyAndStore(ctx context.Context, act Actor, scores map[string]int) (BatchResult, error) {
	tr := otel.Tracer("services/ScoringService")
	ctx, span := tr.Start(ctx, "BatchClassifyAndStore",
		trace.WithAttributes(attribute.Int("batch.size", len(scores))),
	)
	defer span.End()

	if len(scores) == 0 {
		return BatchResult{}, ErrEmptyBatch
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := BatchResult{Skipped: []string{}}
	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		for _, id := range ids {
			def := doc.Definition(id)
			if def == nil {
				out.Skipped = append(out.Skipped, id)
				continue
			}
			res := Classify(*def, scores[id])
			if existing := doc.Result(id); existing != nil {
				*existing = res
			} else {
				doc.PatientDietAnalysisResults = append(doc.PatientDietAnalysisResults, res)
			}
			out.Written++
		}
		return nil
	})
	if err != nil {
		return BatchResult{}, err
	}

	recordAudit(ctx, s.DB, act, domain.AuditActionScore, "result", "",
		fmt.Sprintf("scored %d fields (%d skipped)", out.Written, len(out.Skipped)))
	return out, nil
}

// DeleteResult removes the single result recorded for fieldID. Removing a
// field id with no recorded result is a no-op, not an error.
func (s *ScoringService) DeleteResult(ctx context.Context, act Actor, fieldID string) error {
	tr := otel.Tracer("services/ScoringService")
	ctx, span := tr.Start(ctx, "DeleteResult",
		trace.WithAttributes(attribute.String("field.id", fieldID)),
	)
	defer span.End()

	removed := false
	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		for i := range doc.PatientDietAnalysisResults {
			if doc.PatientDietAnalysisResults[i].FieldID == fieldID {
				doc.PatientDietAnalysisResults = append(
					doc.PatientDietAnalysisResults[:i],
					doc.PatientDietAnalysisResults[i+1:]...)
				removed = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		recordAudit(ctx, s.DB, act, domain.AuditActionDelete, "result", fieldID, "deleted result for "+fieldID)
	}
	return nil
}

// DeleteAllResults clears the entire result list.
func (s *ScoringService) DeleteAllResults(ctx context.Context, act Actor) error {
	tr := otel.Tracer("services/ScoringService")
	ctx, span := tr.Start(ctx, "DeleteAllResults")
	defer span.End()

	cleared := 0
	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		cleared = len(doc.PatientDietAnalysisResults)
		doc.PatientDietAnalysisResults = []domain.DietAnalysisResult{}
		return nil
	})
	if err != nil {
		return err
	}

	recordAudit(ctx, s.DB, act, domain.AuditActionDelete, "result", "",
		fmt.Sprintf("cleared %d results", cleared))
	return nil
}
