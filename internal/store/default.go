package store

import "github.com/nutrigenlab/go-report-backend/internal/domain"

// DefaultDocument returns the document seeded on first run: a blank patient
// header, a starter category set, and a handful of commonly used diet
// sensitivity fields with a worked example result, so the form UI and the
// report viewer have something to render before any admin input.
func DefaultDocument() *domain.ReportDocument {
	defs := []domain.FieldDefinition{
		{
			ID:                   "caffeine_sensitivity",
			Label:                "Caffeine Sensitivity",
			Category:             "Stimulants",
			Min:                  1,
			Max:                  10,
			HighRecommendation:   "Limit caffeine to one cup of coffee per day and avoid caffeine after midday.",
			NormalRecommendation: "Moderate caffeine intake of up to three cups per day is well tolerated.",
			LowRecommendation:    "No special restriction on caffeine intake is indicated.",
		},
		{
			ID:                   "lactose_sensitivity",
			Label:                "Lactose Sensitivity",
			Category:             "Dairy",
			Min:                  1,
			Max:                  10,
			HighRecommendation:   "Prefer lactose-free dairy products and consider a calcium supplement.",
			NormalRecommendation: "Dairy in usual amounts is well tolerated; monitor for discomfort.",
			LowRecommendation:    "Dairy products can be consumed freely.",
		},
		{
			ID:                   "fat_sensitivity",
			Label:                "Fat Sensitivity",
			Category:             "Macronutrients",
			Min:                  1,
			Max:                  10,
			HighRecommendation:   "Keep saturated fat below 10% of daily energy and favour unsaturated sources.",
			NormalRecommendation: "A balanced fat intake with an emphasis on plant oils is appropriate.",
			LowRecommendation:    "Standard dietary fat guidance applies.",
		},
	}

	doc := &domain.ReportDocument{
		Patient: domain.PatientInfo{},
		Categories: []string{
			"Stimulants",
			"Dairy",
			"Macronutrients",
		},
		DietFieldDefinitions: defs,
		Branding: domain.Branding{
			Title:    "Personalised Nutrigenomics Report",
			Subtitle: "Genetic insights for nutrition and lifestyle",
		},
	}

	// Seed one classified example so the grouped view is never empty on a
	// fresh install.
	ex := defs[0]
	doc.PatientDietAnalysisResults = []domain.DietAnalysisResult{
		{
			FieldID: ex.ID,
			Score:   5,
			Level:   domain.LevelNormal,
			Recommendations: domain.Recommendations{
				High:   ex.HighRecommendation,
				Normal: ex.NormalRecommendation,
				Low:    ex.LowRecommendation,
			},
			SelectedLevel:  domain.LevelNormal,
			Recommendation: ex.NormalRecommendation,
		},
	}
	return doc
}
