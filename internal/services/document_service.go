// Package services – DocumentService
//
// Whole-document operations: the form UI loads the complete document, edits
// any of its sections locally, and posts the whole thing back. There are no
// partial-field PATCH semantics at this level and no versioning — the last
// writer wins document-wide, which is acceptable for the single-admin
// deployment this system targets.
package services

import (
	"context"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/store"
)

// DocumentService loads and replaces the report document as one unit.
type DocumentService struct {
	// Store is the whole-document persistence gateway.
	Store *store.DocumentStore
	// DB is the GORM handle used for the audit trail. May be nil in tests.
	DB *gorm.DB
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(st *store.DocumentStore, db *gorm.DB) *DocumentService {
	return &DocumentService{Store: st, DB: db}
}

// Get returns the current document, seeding the default on first load.
func (s *DocumentService) Get(ctx context.Context) (*domain.ReportDocument, error) {
	tr := otel.Tracer("services/DocumentService")
	_, span := tr.Start(ctx, "Get")
	defer span.End()

	return s.Store.Load()
}

// Replace overwrites the entire document with the submitted one.
func (s *DocumentService) Replace(ctx context.Context, act Actor, doc *domain.ReportDocument) error {
	tr := otel.Tracer("services/DocumentService")
	ctx, span := tr.Start(ctx, "Replace",
		trace.WithAttributes(
			attribute.Int("definitions", len(doc.DietFieldDefinitions)),
			attribute.Int("results", len(doc.PatientDietAnalysisResults)),
		),
	)
	defer span.End()

	if err := s.Store.Save(doc); err != nil {
		return err
	}
	recordAudit(ctx, s.DB, act, domain.AuditActionReplace, "document", "", "replaced whole document")
	return nil
}

// SetLogo stores the uploaded logo's path in the branding section.
func (s *DocumentService) SetLogo(ctx context.Context, act Actor, path string) error {
	tr := otel.Tracer("services/DocumentService")
	ctx, span := tr.Start(ctx, "SetLogo")
	defer span.End()

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		doc.Branding.LogoPath = path
		return nil
	})
	if err != nil {
		return err
	}
	recordAudit(ctx, s.DB, act, domain.AuditActionUpload, "upload", path, "uploaded report logo")
	return nil
}
