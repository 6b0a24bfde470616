// Package domain defines the report document model shared by the store,
// service, and HTTP layers. The whole model hangs off one aggregate root,
// ReportDocument, which is persisted as a single JSON file and edited by a
// single administrator at a time.
package domain

// Level is the qualitative band a diet-sensitivity score classifies into.
type Level string

const (
	LevelLow    Level = "LOW"
	LevelNormal Level = "NORMAL"
	LevelHigh   Level = "HIGH"
)

// Valid reports whether l is one of the three known bands.
func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelNormal, LevelHigh:
		return true
	}
	return false
}

// FieldDefinition is an administrator-authored diet-sensitivity field.
//
// Fields:
//   - ID: stable slug derived from Label at creation time (lowercased,
//     spaces to underscores, non-alphanumerics stripped). Unique within the
//     document; never re-derived on label edits.
//   - Label: human-readable display name.
//   - Category: grouping key. A soft reference into Categories — deleting a
//     category leaves definitions pointing at it (rendered as "unknown").
//   - Min / Max: legal input range for scores entered against this field.
//     Invariant Min <= Max. The range bounds entry-form hints only; it does
//     not influence classification.
//   - HighRecommendation / NormalRecommendation / LowRecommendation: advice
//     text shown for the corresponding band.
type FieldDefinition struct {
	ID                   string `json:"id"`
	Label                string `json:"label"`
	Category             string `json:"category"`
	Min                  int    `json:"min"`
	Max                  int    `json:"max"`
	HighRecommendation   string `json:"highRecommendation"`
	NormalRecommendation string `json:"normalRecommendation"`
	LowRecommendation    string `json:"lowRecommendation"`
}

// Recommendations is the per-band advice snapshot copied from a
// FieldDefinition at classification time.
type Recommendations struct {
	High   string `json:"HIGH"`
	Normal string `json:"NORMAL"`
	Low    string `json:"LOW"`
}

// ForLevel returns the text for the given band.
func (r Recommendations) ForLevel(l Level) string {
	switch l {
	case LevelHigh:
		return r.High
	case LevelLow:
		return r.Low
	default:
		return r.Normal
	}
}

// DietAnalysisResult is a recorded, classified score for one patient field.
//
// FieldID is a soft reference: the result survives deletion of its
// definition (it is simply dropped from the grouped report view until
// removed explicitly). Recommendations is a snapshot taken at classification
// time so later edits to the definition never rewrite history; the category
// used for grouping, by contrast, is always read live from the definition.
//
// SelectedLevel equals Level at creation and lets the rendered report
// highlight the chosen band while still printing all three texts.
// Recommendation is a convenience copy of the selected band's text for
// single-string consumers.
type DietAnalysisResult struct {
	FieldID         string          `json:"fieldId"`
	Score           int             `json:"score"`
	Level           Level           `json:"level"`
	Recommendations Recommendations `json:"recommendations"`
	SelectedLevel   Level           `json:"selectedLevel"`
	Recommendation  string          `json:"recommendation"`
}

// PatientInfo is the report header block.
type PatientInfo struct {
	Name         string `json:"name"`
	DateOfBirth  string `json:"dateOfBirth"`
	Sex          string `json:"sex"`
	SampleID     string `json:"sampleId"`
	ReportID     string `json:"reportId"`
	SampleDate   string `json:"sampleDate"`
	ReportDate   string `json:"reportDate"`
	Practitioner string `json:"practitioner"`
}

// GeneResult is a single gene/variant row in the genetics section.
type GeneResult struct {
	Gene     string `json:"gene"`
	Variant  string `json:"variant"`
	Genotype string `json:"genotype"`
	Outcome  string `json:"outcome"`
	Comment  string `json:"comment,omitempty"`
}

// NutrientScore is a 0–10 need score for one nutrient.
type NutrientScore struct {
	Nutrient string `json:"nutrient"`
	Score    int    `json:"score"`
	Comment  string `json:"comment,omitempty"`
}

// LifestyleCondition is an on/off flag with optional advice text.
type LifestyleCondition struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Advice  string `json:"advice,omitempty"`
}

// Branding holds presentational settings for the rendered report.
type Branding struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	LogoPath string `json:"logoPath,omitempty"`
}

// ReportDocument is the aggregate root: the entire editable report persisted
// as one JSON document. Field names of the dynamic-diet sections are part of
// the wire contract with the form UI and must not change.
type ReportDocument struct {
	Patient             PatientInfo          `json:"patient"`
	GeneResults         []GeneResult         `json:"geneResults"`
	NutrientScores      []NutrientScore      `json:"nutrientScores"`
	LifestyleConditions []LifestyleCondition `json:"lifestyleConditions"`

	Categories                 []string             `json:"categories"`
	DietFieldDefinitions       []FieldDefinition    `json:"dynamicDietFieldDefinitions"`
	PatientDietAnalysisResults []DietAnalysisResult `json:"patientDietAnalysisResults"`

	Branding Branding `json:"branding"`
}

// Definition returns the definition with the given id, or nil when the id
// does not resolve (deleted or never existed).
func (d *ReportDocument) Definition(id string) *FieldDefinition {
	for i := range d.DietFieldDefinitions {
		if d.DietFieldDefinitions[i].ID == id {
			return &d.DietFieldDefinitions[i]
		}
	}
	return nil
}

// Result returns the analysis result recorded for fieldID, or nil.
func (d *ReportDocument) Result(fieldID string) *DietAnalysisResult {
	for i := range d.PatientDietAnalysisResults {
		if d.PatientDietAnalysisResults[i].FieldID == fieldID {
			return &d.PatientDietAnalysisResults[i]
		}
	}
	return nil
}

// HasCategory reports whether name is present in the category list.
func (d *ReportDocument) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}
