// Package store implements the persistence gateway for the report document.
//
// Persistence is deliberately whole-document: the entire ReportDocument is
// read and written as one JSON file, with no partial updates, versioning, or
// cross-process locking. Two concurrent editors overwrite each other
// document-wide (last save wins); the system targets a single administrator
// and that simplicity is part of the observable contract. An in-process
// mutex serializes Load/Mutate/Save only so the server cannot race itself.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

// DocumentStore loads and saves the report document at a fixed path.
// It is safe for concurrent use within one process.
type DocumentStore struct {
	path string
	mu   sync.Mutex
}

// New returns a DocumentStore backed by the JSON file at path. The parent
// directory must exist; the file itself is created on first Load.
func New(path string) (*DocumentStore, error) {
	if path == "" {
		return nil, errors.New("store: document path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("store: document directory: %w", err)
		}
	}
	return &DocumentStore{path: path}, nil
}

// Path returns the on-disk location of the document.
func (s *DocumentStore) Path() string { return s.path }

// Load reads the whole document from disk. When no document exists yet it
// writes and returns the hardcoded default document instead of failing.
// Malformed JSON surfaces as a single generic error.
func (s *DocumentStore) Load() (*domain.ReportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save serializes the whole document and atomically replaces the file.
func (s *DocumentStore) Save(doc *domain.ReportDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(doc)
}

// Mutate runs fn against the current document and saves the result, all
// under one lock. When fn returns an error nothing is written and the error
// is returned unchanged, so service-level rejections leave the file intact.
// On success the saved document is returned for rendering.
func (s *DocumentStore) Mutate(fn func(*domain.ReportDocument) error) (*domain.ReportDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.saveLocked(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentStore) loadLocked() (*domain.ReportDocument, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := DefaultDocument()
			if serr := s.saveLocked(doc); serr != nil {
				return nil, serr
			}
			return doc, nil
		}
		return nil, fmt.Errorf("store: read document: %w", err)
	}

	var doc domain.ReportDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("store: parse document: %w", err)
	}
	normalize(&doc)
	return &doc, nil
}

// saveLocked marshals with stable two-space indentation and replaces the
// file via temp-write + rename, so a crash mid-write never leaves a
// truncated document behind. Marshaling is deterministic: saving an
// unchanged document produces identical bytes.
func (s *DocumentStore) saveLocked(doc *domain.ReportDocument) error {
	normalize(doc)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	b = append(b, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".report-*.json")
	if err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store: write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: write document: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store: write document: %w", err)
	}
	return nil
}

// normalize replaces nil slices with empty ones so the serialized shape is
// stable ([] rather than null) across load/save cycles.
func normalize(doc *domain.ReportDocument) {
	if doc.GeneResults == nil {
		doc.GeneResults = []domain.GeneResult{}
	}
	if doc.NutrientScores == nil {
		doc.NutrientScores = []domain.NutrientScore{}
	}
	if doc.LifestyleConditions == nil {
		doc.LifestyleConditions = []domain.LifestyleCondition{}
	}
	if doc.Categories == nil {
		doc.Categories = []string{}
	}
	if doc.DietFieldDefinitions == nil {
		doc.DietFieldDefinitions = []domain.FieldDefinition{}
	}
	if doc.PatientDietAnalysisResults == nil {
		doc.PatientDietAnalysisResults = []domain.DietAnalysisResult{}
	}
}
