// Package services – DefinitionService
//
// This file implements the DefinitionService, which owns the ordered list of
// diet-sensitivity field definitions and the category list inside the report
// document. It derives stable slug ids from labels, enforces id uniqueness
// and range validity, and preserves list order (order is significant — it
// drives render order and is persisted as-is).
//
// Service-level errors (e.g., ErrDuplicateID, ErrInvalidRange) are returned
// for predictable cases so handlers can map them to HTTP results
// consistently. Every successful mutation is recorded in the audit trail.
package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/search"
	"github.com/nutrigenlab/go-report-backend/internal/store"
)

// Actor identifies the administrator performing an operation, for the audit
// trail. RequestID is the correlation id set by the HTTP layer and may be
// empty for non-HTTP callers.
type Actor struct {
	ID        string
	RequestID string
}

// DefinitionService provides add/edit/delete/reorder operations over the
// field definitions and categories of the report document.
type DefinitionService struct {
	// Store is the whole-document persistence gateway.
	Store *store.DocumentStore
	// DB is the GORM handle used for the audit trail. May be nil in tests;
	// auditing is then skipped.
	DB *gorm.DB
}

// NewDefinitionService constructs a DefinitionService.
func NewDefinitionService(st *store.DocumentStore, db *gorm.DB) *DefinitionService {
	return &DefinitionService{Store: st, DB: db}
}

// AddFieldInput carries the admin-entered values for a new field definition.
// The id is always derived from Label; it cannot be supplied.
type AddFieldInput struct {
	Label                string
	Category             string
	Min                  int
	Max                  int
	HighRecommendation   string
	NormalRecommendation string
	LowRecommendation    string
}

// FieldPatch is a partial edit of an existing definition. Nil fields are
// left untouched. ID, when set, is re-slugged and checked for uniqueness
// against all other entries.
type FieldPatch struct {
	ID                   *string
	Label                *string
	Category             *string
	Min                  *int
	Max                  *int
	HighRecommendation   *string
	NormalRecommendation *string
	LowRecommendation    *string
}

// DeriveID applies the slug rule to a label: lowercase, whitespace runs to a
// single underscore, every other non-alphanumeric character stripped.
func DeriveID(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = slugSpaceRE.ReplaceAllString(s, "_")
	return slugStripRE.ReplaceAllString(s, "")
}

var (
	// slugSpaceRE collapses consecutive whitespace to a single underscore.
	slugSpaceRE = regexp.MustCompile(`\s+`)
	// slugStripRE removes everything that is not a-z, 0-9, or underscore.
	slugStripRE = regexp.MustCompile(`[^a-z0-9_]+`)
)

// Add derives the id from input.Label and appends a new definition to the
// ordered list. It fails with ErrDuplicateID when the derived id already
// exists, ErrEmptyLabel when the label slugs down to nothing, and
// ErrInvalidRange when min exceeds max. Nothing is written on rejection.
func (s *DefinitionService) Add(ctx context.Context, act Actor, input AddFieldInput) (*domain.FieldDefinition, error) {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "Add",
		trace.WithAttributes(attribute.String("field.label", input.Label)),
	)
	defer span.End()

	id := DeriveID(input.Label)
	if id == "" {
		return nil, ErrEmptyLabel
	}
	if input.Min > input.Max {
		return nil, ErrInvalidRange
	}

	def := domain.FieldDefinition{
		ID:                   id,
		Label:                strings.TrimSpace(input.Label),
		Category:             strings.TrimSpace(input.Category),
		Min:                  input.Min,
		Max:                  input.Max,
		HighRecommendation:   input.HighRecommendation,
		NormalRecommendation: input.NormalRecommendation,
		LowRecommendation:    input.LowRecommendation,
	}

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		if doc.Definition(id) != nil {
			return ErrDuplicateID
		}
		doc.DietFieldDefinitions = append(doc.DietFieldDefinitions, def)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, act, domain.AuditActionCreate, "field", id, "added field "+def.Label)
	return &def, nil
}

// Update applies a partial edit to the definition with the given id. Editing
// the id itself re-applies the slug rule and checks uniqueness against every
// other entry; all other fields are replaced unconditionally, except that
// the min/max pair must still satisfy min <= max after the patch.
func (s *DefinitionService) Update(ctx context.Context, act Actor, id string, patch FieldPatch) (*domain.FieldDefinition, error) {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(attribute.String("field.id", id)),
	)
	defer span.End()

	var updated domain.FieldDefinition
	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		def := doc.Definition(id)
		if def == nil {
			return ErrFieldNotFound
		}

		if patch.ID != nil {
			newID := DeriveID(*patch.ID)
			if newID == "" {
				return ErrEmptyLabel
			}
			if newID != id && doc.Definition(newID) != nil {
				return ErrDuplicateID
			}
			def.ID = newID
		}
		if patch.Label != nil {
			def.Label = strings.TrimSpace(*patch.Label)
		}
		if patch.Category != nil {
			def.Category = strings.TrimSpace(*patch.Category)
		}
		if patch.Min != nil {
			def.Min = *patch.Min
		}
		if patch.Max != nil {
			def.Max = *patch.Max
		}
		if def.Min > def.Max {
			return ErrInvalidRange
		}
		if patch.HighRecommendation != nil {
			def.HighRecommendation = *patch.HighRecommendation
		}
		if patch.NormalRecommendation != nil {
			def.NormalRecommendation = *patch.NormalRecommendation
		}
		if patch.LowRecommendation != nil {
			def.LowRecommendation = *patch.LowRecommendation
		}
		updated = *def
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, act, domain.AuditActionUpdate, "field", updated.ID, "edited field "+updated.Label)
	return &updated, nil
}

// Delete removes the definition from the ordered list. Results previously
// recorded against the id are left untouched (they become orphans and are
// omitted from the grouped report view until removed explicitly).
func (s *DefinitionService) Delete(ctx context.Context, act Actor, id string) error {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "Delete",
		trace.WithAttributes(attribute.String("field.id", id)),
	)
	defer span.End()

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		for i := range doc.DietFieldDefinitions {
			if doc.DietFieldDefinitions[i].ID == id {
				doc.DietFieldDefinitions = append(
					doc.DietFieldDefinitions[:i],
					doc.DietFieldDefinitions[i+1:]...)
				return nil
			}
		}
		return ErrFieldNotFound
	})
	if err != nil {
		return err
	}

	s.audit(ctx, act, domain.AuditActionDelete, "field", id, "deleted field "+id)
	return nil
}

// Reorder replaces the list ordering with the given id sequence. The
// sequence must contain exactly the current set of ids, nothing more and
// nothing less; otherwise ErrOrderMismatch.
func (s *DefinitionService) Reorder(ctx context.Context, act Actor, ids []string) error {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "Reorder",
		trace.WithAttributes(attribute.Int("field.count", len(ids))),
	)
	defer span.End()

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		if len(ids) != len(doc.DietFieldDefinitions) {
			return ErrOrderMismatch
		}
		byID := make(map[string]domain.FieldDefinition, len(doc.DietFieldDefinitions))
		for _, d := range doc.DietFieldDefinitions {
			byID[d.ID] = d
		}
		next := make([]domain.FieldDefinition, 0, len(ids))
		for _, id := range ids {
			d, ok := byID[id]
			if !ok {
				return ErrOrderMismatch
			}
			delete(byID, id)
			next = append(next, d)
		}
		doc.DietFieldDefinitions = next
		return nil
	})
	if err != nil {
		return err
	}

	s.audit(ctx, act, domain.AuditActionReorder, "field", "", fmt.Sprintf("reordered %d fields", len(ids)))
	return nil
}

// AddCategory appends a category name to the list. Names are unique;
// a duplicate yields ErrCategoryExists.
func (s *DefinitionService) AddCategory(ctx context.Context, act Actor, name string) error {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "AddCategory",
		trace.WithAttributes(attribute.String("category", name)),
	)
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategory
	}

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		if doc.HasCategory(name) {
			return ErrCategoryExists
		}
		doc.Categories = append(doc.Categories, name)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit(ctx, act, domain.AuditActionCreate, "category", name, "added category "+name)
	return nil
}

// DeleteCategory removes a category name from the list. Definitions still
// referencing the name keep their dangling reference; the report view shows
// them under an "unknown" bucket.
func (s *DefinitionService) DeleteCategory(ctx context.Context, act Actor, name string) error {
	tr := otel.Tracer("services/DefinitionService")
	ctx, span := tr.Start(ctx, "DeleteCategory",
		trace.WithAttributes(attribute.String("category", name)),
	)
	defer span.End()

	_, err := s.Store.Mutate(func(doc *domain.ReportDocument) error {
		for i, c := range doc.Categories {
			if c == name {
				doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	if err != nil {
		return err
	}

	s.audit(ctx, act, domain.AuditActionDelete, "category", name, "deleted category "+name)
	return nil
}

// Search returns up to k definitions whose label, category, or
// recommendation text matches the query, ranked by similarity. The index is
// rebuilt per call from the current document; definition counts are small
// enough that this stays cheap.
func (s *DefinitionService) Search(ctx context.Context, query string, k int) ([]search.Match, error) {
	tr := otel.Tracer("services/DefinitionService")
	_, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("query", query)),
	)
	defer span.End()

	doc, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	idx := search.NewIndex(doc.DietFieldDefinitions)
	return idx.TopK(query, k), nil
}

// List returns the current ordered definitions and the category list.
func (s *DefinitionService) List(ctx context.Context) ([]domain.FieldDefinition, []string, error) {
	doc, err := s.Store.Load()
	if err != nil {
		return nil, nil, err
	}
	return doc.DietFieldDefinitions, doc.Categories, nil
}

// audit records a successful mutation in the trail. Audit failures are not
// allowed to fail the operation that already happened; they are only logged
// by the repo layer's caller via the returned error being dropped here.
func (s *DefinitionService) audit(ctx context.Context, act Actor, action, entity, entityID, detail string) {
	recordAudit(ctx, s.DB, act, action, entity, entityID, detail)
}
