// Package services – ReportService
//
// This file implements report assembly: the join of recorded diet analysis
// results with their originating definitions, grouped by the definition's
// *current* category for the viewer. The mix of snapshot and live data is
// deliberate and must hold: recommendation texts were frozen when the score
// was classified, while the category is read live so reorganizing categories
// reflows previously scored data. Results whose definition no longer exists
// are omitted from the grouped view entirely (the rows themselves survive in
// the document until removed explicitly).
package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/store"
)

// UnknownCategory is the bucket shown for definitions whose category was
// deleted from the category list (dangling references are allowed).
const UnknownCategory = "unknown"

// ResultView is one classified field joined with its definition's label.
type ResultView struct {
	Result domain.DietAnalysisResult `json:"result"`
	Label  string                    `json:"label"`
}

// CategoryGroup is one rendered sub-section of the diet analysis view.
type CategoryGroup struct {
	Category    string       `json:"category"`
	DisplayName string       `json:"displayName"`
	Items       []ResultView `json:"items"`
}

// ReportView is the full view model the report viewer renders and the
// browser prints to PDF.
type ReportView struct {
	Patient             domain.PatientInfo          `json:"patient"`
	Branding            domain.Branding             `json:"branding"`
	GeneResults         []domain.GeneResult         `json:"geneResults"`
	NutrientScores      []domain.NutrientScore      `json:"nutrientScores"`
	LifestyleConditions []domain.LifestyleCondition `json:"lifestyleConditions"`
	DietAnalysis        []CategoryGroup             `json:"dietAnalysis"`
}

// ReportService assembles the read-only view of the report document.
type ReportService struct {
	// Store is the whole-document persistence gateway.
	Store *store.DocumentStore
}

// NewReportService constructs a ReportService.
func NewReportService(st *store.DocumentStore) *ReportService {
	return &ReportService{Store: st}
}

// GroupForDisplay joins each result with its definition and buckets the pair
// under the definition's current category. Orphaned results (field id no
// longer resolves) are dropped silently. Group order is first appearance
// over the result list; item order within a group is the result list's own
// iteration order, not the definition store's order. A definition whose
// category is no longer in the category list lands in the "unknown" bucket.
func GroupForDisplay(doc *domain.ReportDocument) []CategoryGroup {
	byCategory := make(map[string]int)
	groups := make([]CategoryGroup, 0)
	titler := cases.Title(language.English)

	for _, res := range doc.PatientDietAnalysisResults {
		def := doc.Definition(res.FieldID)
		if def == nil {
			continue // orphan: definition was deleted
		}
		cat := def.Category
		if cat == "" || !doc.HasCategory(cat) {
			cat = UnknownCategory
		}
		idx, ok := byCategory[cat]
		if !ok {
			idx = len(groups)
			byCategory[cat] = idx
			groups = append(groups, CategoryGroup{
				Category:    cat,
				DisplayName: titler.String(cat),
				Items:       []ResultView{},
			})
		}
		groups[idx].Items = append(groups[idx].Items, ResultView{
			Result: res,
			Label:  def.Label,
		})
	}
	return groups
}

// Build loads the document and assembles the complete report view.
func (s *ReportService) Build(ctx context.Context) (*ReportView, error) {
	tr := otel.Tracer("services/ReportService")
	_, span := tr.Start(ctx, "Build")
	defer span.End()

	doc, err := s.Store.Load()
	if err != nil {
		return nil, err
	}

	view := &ReportView{
		Patient:             doc.Patient,
		Branding:            doc.Branding,
		GeneResults:         doc.GeneResults,
		NutrientScores:      doc.NutrientScores,
		LifestyleConditions: doc.LifestyleConditions,
		DietAnalysis:        GroupForDisplay(doc),
	}
	span.SetAttributes(attribute.Int("report.groups", len(view.DietAnalysis)))
	return view, nil
}
