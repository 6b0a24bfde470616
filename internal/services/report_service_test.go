package services

import (
	"context"
	"testing"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

func TestGroupForDisplay(t *testing.T) {
	doc := &domain.ReportDocument{
		DietFieldDefinitions: []domain.FieldDefinition{
			{ID: "caffeine_sensitivity", Label: "Caffeine Sensitivity", Category: "stimulants"},
			{ID: "lactose_sensitivity", Label: "Lactose Sensitivity", Category: "dairy"},
			{ID: "green_tea_response", Label: "Green Tea Response", Category: "stimulants"},
			{ID: "fat_sensitivity", Label: "Fat Sensitivity", Category: "ghost"},
		},
		Categories: []string{"stimulants", "dairy"},
		PatientDietAnalysisResults: []domain.DietAnalysisResult{
			{FieldID: "lactose_sensitivity", Score: 2, Level: domain.LevelLow},
			{FieldID: "caffeine_sensitivity", Score: 8, Level: domain.LevelHigh},
			{FieldID: "deleted_field", Score: 5, Level: domain.LevelNormal},
			{FieldID: "green_tea_response", Score: 5, Level: domain.LevelNormal},
			{FieldID: "fat_sensitivity", Score: 9, Level: domain.LevelHigh},
		},
	}

	groups := GroupForDisplay(doc)

	// Group order follows first appearance over the result list; the orphan
	// (deleted_field) is dropped and the dangling category lands in unknown.
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(groups), groups)
	}
	if groups[0].Category != "dairy" || groups[1].Category != "stimulants" || groups[2].Category != UnknownCategory {
		t.Fatalf("group order = %q, %q, %q", groups[0].Category, groups[1].Category, groups[2].Category)
	}
	if groups[0].DisplayName != "Dairy" || groups[1].DisplayName != "Stimulants" {
		t.Fatalf("display names = %q, %q", groups[0].DisplayName, groups[1].DisplayName)
	}

	if len(groups[1].Items) != 2 {
		t.Fatalf("stimulants should hold 2 items, got %d", len(groups[1].Items))
	}
	if groups[1].Items[0].Result.FieldID != "caffeine_sensitivity" || groups[1].Items[1].Result.FieldID != "green_tea_response" {
		t.Fatalf("item order inside group must follow the result list: %+v", groups[1].Items)
	}
	if groups[1].Items[0].Label != "Caffeine Sensitivity" {
		t.Fatalf("item label = %q", groups[1].Items[0].Label)
	}

	if len(groups[2].Items) != 1 || groups[2].Items[0].Result.FieldID != "fat_sensitivity" {
		t.Fatalf("unknown bucket = %+v", groups[2].Items)
	}
	for _, g := range groups {
		for _, item := range g.Items {
			if item.Result.FieldID == "deleted_field" {
				t.Fatalf("orphaned result must be omitted from the view")
			}
		}
	}
}

func TestGroupForDisplay_Empty(t *testing.T) {
	groups := GroupForDisplay(&domain.ReportDocument{})
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
	if groups == nil {
		t.Fatalf("empty view must serialize as [], not null")
	}
}

func TestReportService_RecategorizeRegroupsWithoutRescore(t *testing.T) {
	st := newTestStore(t)
	defSvc := NewDefinitionService(st, nil)
	scoreSvc := NewScoringService(st, nil)
	reportSvc := NewReportService(st)
	ctx := context.Background()

	if _, err := scoreSvc.BatchClassifyAndStore(ctx, testActor(), map[string]int{"fat_sensitivity": 8}); err != nil {
		t.Fatalf("score: %v", err)
	}
	if err := defSvc.AddCategory(ctx, testActor(), "Lipids"); err != nil {
		t.Fatalf("add category: %v", err)
	}

	// Moving the definition to another category reflows the already scored
	// result on the next view; the stored result row is untouched.
	cat := "Lipids"
	if _, err := defSvc.Update(ctx, testActor(), "fat_sensitivity", FieldPatch{Category: &cat}); err != nil {
		t.Fatalf("recategorize: %v", err)
	}

	view, err := reportSvc.Build(ctx)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var inLipids, inMacros bool
	for _, g := range view.DietAnalysis {
		for _, item := range g.Items {
			if item.Result.FieldID != "fat_sensitivity" {
				continue
			}
			switch g.Category {
			case "Lipids":
				inLipids = true
				if item.Result.Score != 8 || item.Result.Level != domain.LevelHigh {
					t.Fatalf("regrouped result was rescored: %+v", item.Result)
				}
			case "Macronutrients":
				inMacros = true
			}
		}
	}
	if !inLipids || inMacros {
		t.Fatalf("expected fat_sensitivity under Lipids only: %+v", view.DietAnalysis)
	}

	doc, _ := st.Load()
	if r := doc.Result("fat_sensitivity"); r == nil || r.Score != 8 {
		t.Fatalf("stored result changed by recategorization: %+v", r)
	}
}

func TestReportService_Build(t *testing.T) {
	st := newTestStore(t)
	svc := NewReportService(st)

	view, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if view.Branding.Title == "" {
		t.Fatalf("expected seeded branding title")
	}

	// The seed ships one NORMAL caffeine result under Stimulants.
	var found bool
	for _, g := range view.DietAnalysis {
		if g.Category != "Stimulants" {
			continue
		}
		for _, item := range g.Items {
			if item.Result.FieldID == "caffeine_sensitivity" && item.Result.Level == domain.LevelNormal {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("seeded caffeine result missing from view: %+v", view.DietAnalysis)
	}
}
