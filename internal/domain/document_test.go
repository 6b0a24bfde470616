package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLevel_Valid(t *testing.T) {
	for _, l := range []Level{LevelLow, LevelNormal, LevelHigh} {
		if !l.Valid() {
			t.Fatalf("%q should be valid", l)
		}
	}
	for _, l := range []Level{"", "low", "MEDIUM", "high"} {
		if l.Valid() {
			t.Fatalf("%q should be invalid", l)
		}
	}
}

func TestRecommendations_ForLevel(t *testing.T) {
	r := Recommendations{High: "h", Normal: "n", Low: "l"}
	if r.ForLevel(LevelHigh) != "h" || r.ForLevel(LevelLow) != "l" || r.ForLevel(LevelNormal) != "n" {
		t.Fatalf("ForLevel mapping wrong: %+v", r)
	}
	// Unknown levels fall back to the normal text.
	if r.ForLevel("whatever") != "n" {
		t.Fatalf("expected normal fallback")
	}
}

func TestReportDocument_Lookups(t *testing.T) {
	doc := ReportDocument{
		Categories:           []string{"Dairy"},
		DietFieldDefinitions: []FieldDefinition{{ID: "a"}, {ID: "b"}},
		PatientDietAnalysisResults: []DietAnalysisResult{
			{FieldID: "b", Score: 4},
		},
	}

	if doc.Definition("a") == nil || doc.Definition("b") == nil {
		t.Fatalf("expected definitions found")
	}
	if doc.Definition("c") != nil {
		t.Fatalf("expected nil for unknown definition")
	}
	// Returned pointers alias document storage so callers can edit in place.
	doc.Definition("a").Label = "Alpha"
	if doc.DietFieldDefinitions[0].Label != "Alpha" {
		t.Fatalf("Definition should return a pointer into the document")
	}

	if doc.Result("b") == nil || doc.Result("a") != nil {
		t.Fatalf("Result lookup wrong")
	}
	doc.Result("b").Score = 9
	if doc.PatientDietAnalysisResults[0].Score != 9 {
		t.Fatalf("Result should return a pointer into the document")
	}

	if !doc.HasCategory("Dairy") || doc.HasCategory("dairy") {
		t.Fatalf("HasCategory must be exact-match")
	}
}

// The dynamic-diet JSON keys are a wire contract with the form UI.
func TestReportDocument_JSONKeys(t *testing.T) {
	b, err := json.Marshal(ReportDocument{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{
		`"dynamicDietFieldDefinitions"`,
		`"patientDietAnalysisResults"`,
		`"categories"`,
		`"patient"`,
		`"branding"`,
	} {
		if !strings.Contains(s, key) {
			t.Fatalf("marshaled document missing key %s: %s", key, s)
		}
	}

	rb, err := json.Marshal(Recommendations{High: "h"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(rb), `"HIGH":"h"`) {
		t.Fatalf("recommendation keys must be upper-case bands: %s", rb)
	}
}
