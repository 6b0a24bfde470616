// Handler wiring shared by every endpoint file in this package.
//
// Handlers are transport-thin: they validate input, call application
// services, and translate sentinel errors into HTTP responses. All service
// dependencies are consumed through narrow interfaces so transport concerns
// stay separate from business logic.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/search"
	"github.com/nutrigenlab/go-report-backend/internal/services"
	"github.com/nutrigenlab/go-report-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// DefinitionService defines field-definition and category operations
// consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type DefinitionService interface {
	// Add creates a field definition, deriving its id from the label.
	Add(ctx context.Context, act services.Actor, input services.AddFieldInput) (*domain.FieldDefinition, error)
	// Update applies a partial edit to the definition with the given id.
	Update(ctx context.Context, act services.Actor, id string, patch services.FieldPatch) (*domain.FieldDefinition, error)
	// Delete removes a definition (recorded results are left orphaned).
	Delete(ctx context.Context, act services.Actor, id string) error
	// Reorder replaces the definition list order with the given id sequence.
	Reorder(ctx context.Context, act services.Actor, ids []string) error
	// AddCategory / DeleteCategory manage the category list.
	AddCategory(ctx context.Context, act services.Actor, name string) error
	DeleteCategory(ctx context.Context, act services.Actor, name string) error
	// List returns the ordered definitions and the category list.
	List(ctx context.Context) ([]domain.FieldDefinition, []string, error)
	// Search ranks definitions against a keyword query.
	Search(ctx context.Context, query string, k int) ([]search.Match, error)
}

// ScoringService defines batch classification and result removal.
type ScoringService interface {
	// BatchClassifyAndStore classifies and upserts each entered score.
	BatchClassifyAndStore(ctx context.Context, act services.Actor, scores map[string]int) (services.BatchResult, error)
	// DeleteResult removes one recorded result (no-op when absent).
	DeleteResult(ctx context.Context, act services.Actor, fieldID string) error
	// DeleteAllResults clears the result list.
	DeleteAllResults(ctx context.Context, act services.Actor) error
}

// ReportService assembles the grouped report view.
type ReportService interface {
	// Build returns the complete view model for the report viewer.
	Build(ctx context.Context) (*services.ReportView, error)
}

// DocumentService exposes whole-document load/replace and upload glue.
type DocumentService interface {
	Get(ctx context.Context) (*domain.ReportDocument, error)
	Replace(ctx context.Context, act services.Actor, doc *domain.ReportDocument) error
	SetLogo(ctx context.Context, act services.Actor, path string) error
}

// Handlers groups the HTTP endpoints for definitions, scoring, the report
// view, the whole document, uploads, and the audit trail.
type Handlers struct {
	defSvc    DefinitionService
	scoreSvc  ScoringService
	reportSvc ReportService
	docSvc    DocumentService

	// db backs the audit listing and idempotency records; may be nil in
	// tests that do not exercise those endpoints.
	db *gorm.DB

	// uploadDir is where uploaded images are written.
	uploadDir string
	// idempotencyTTL is how long a batch-scoring Idempotency-Key stays valid.
	idempotencyTTL time.Duration
}

// New constructs a Handlers instance bound to the given services.
func New(defSvc DefinitionService, scoreSvc ScoringService, reportSvc ReportService, docSvc DocumentService, db *gorm.DB, uploadDir string, idempotencyTTL time.Duration) *Handlers {
	return &Handlers{
		defSvc:         defSvc,
		scoreSvc:       scoreSvc,
		reportSvc:      reportSvc,
		docSvc:         docSvc,
		db:             db,
		uploadDir:      uploadDir,
		idempotencyTTL: idempotencyTTL,
	}
}

// actor extracts the administrator identity from the Gin context (set by
// upstream middleware). If absent, it falls back to the "X-User-ID" header
// (tests use it), and finally to "demo-admin". The request id is carried
// along for the audit trail.
func actor(c *gin.Context) services.Actor {
	act := services.Actor{
		ID:        "demo-admin",
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	}
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			act.ID = s
			return act
		}
	}
	if c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			act.ID = h
		}
	}
	return act
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// failFromService maps service sentinel errors onto the uniform envelope.
// Unknown errors become 500 internal_error.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateID):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, services.ErrCategoryExists):
		fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, services.ErrFieldNotFound), errors.Is(err, services.ErrCategoryNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, services.ErrEmptyLabel),
		errors.Is(err, services.ErrEmptyCategory),
		errors.Is(err, services.ErrInvalidRange),
		errors.Is(err, services.ErrOrderMismatch),
		errors.Is(err, services.ErrEmptyBatch):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}
