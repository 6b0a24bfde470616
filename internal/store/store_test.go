package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

func newStore(t *testing.T) *DocumentStore {
	t.Helper()
	st, err := New(filepath.Join(t.TempDir(), "report.json"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return st
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing-dir", "report.json")); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestLoad_SeedsDefaultDocument(t *testing.T) {
	st := newStore(t)

	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.DietFieldDefinitions) == 0 {
		t.Fatalf("expected seeded definitions")
	}
	if doc.Definition("caffeine_sensitivity") == nil {
		t.Fatalf("expected caffeine_sensitivity in seed")
	}
	if !doc.HasCategory("Stimulants") {
		t.Fatalf("expected Stimulants category in seed")
	}

	// The seed must have been written to disk.
	if _, err := os.Stat(st.Path()); err != nil {
		t.Fatalf("seed file missing: %v", err)
	}
}

func TestSaveLoad_RoundTripIsStable(t *testing.T) {
	st := newStore(t)

	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	doc.Patient.Name = "Jane Roe"
	if err := st.Save(doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	// Load and re-save without changes: bytes must be identical.
	again, err := st.Load()
	if err != nil {
		t.Fatalf("re-Load: %v", err)
	}
	if again.Patient.Name != "Jane Roe" {
		t.Fatalf("patient name lost: %q", again.Patient.Name)
	}
	if err := st.Save(again); err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	second, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("save/load/save not byte-stable")
	}
}

func TestSave_NormalizesNilSlices(t *testing.T) {
	st := newStore(t)

	if err := st.Save(&domain.ReportDocument{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Categories == nil || doc.DietFieldDefinitions == nil || doc.PatientDietAnalysisResults == nil {
		t.Fatalf("expected empty slices, got nils: %+v", doc)
	}
	if doc.GeneResults == nil || doc.NutrientScores == nil || doc.LifestyleConditions == nil {
		t.Fatalf("expected empty report sections, got nils: %+v", doc)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	st := newStore(t)
	if err := os.WriteFile(st.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := st.Load(); err == nil {
		t.Fatalf("expected parse error for malformed document")
	}
}

func TestMutate_RejectionLeavesFileIntact(t *testing.T) {
	st := newStore(t)

	if _, err := st.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	before, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	boom := errors.New("rejected")
	_, err = st.Mutate(func(doc *domain.ReportDocument) error {
		doc.Patient.Name = "should not persist"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error back, got %v", err)
	}

	after, err := os.ReadFile(st.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("file changed despite rejected mutation")
	}
}

func TestMutate_SuccessPersists(t *testing.T) {
	st := newStore(t)

	out, err := st.Mutate(func(doc *domain.ReportDocument) error {
		doc.Categories = append(doc.Categories, "Micronutrients")
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if !out.HasCategory("Micronutrients") {
		t.Fatalf("returned doc missing change")
	}

	doc, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !doc.HasCategory("Micronutrients") {
		t.Fatalf("persisted doc missing change")
	}
}
