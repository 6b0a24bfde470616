package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/services"
	"github.com/nutrigenlab/go-report-backend/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires a Handlers instance over real services and a temp-dir
// document store, with routes mirroring the production router.
type testEnv struct {
	router    *gin.Engine
	store     *store.DocumentStore
	db        *gorm.DB
	uploadDir string
}

func newEnv(t *testing.T, withDB bool) *testEnv {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "report.json"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}

	var db *gorm.DB
	if withDB {
		dsn := fmt.Sprintf("file:h_%s?mode=memory&cache=shared", uuid.NewString())
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		if err := db.AutoMigrate(&domain.AuditEntry{}, &domain.Idempotency{}); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}

	uploadDir := t.TempDir()
	h := New(
		services.NewDefinitionService(st, db),
		services.NewScoringService(st, db),
		services.NewReportService(st),
		services.NewDocumentService(st, db),
		db,
		uploadDir,
		time.Hour,
	)

	r := gin.New()
	r.POST("/fields", h.CreateField)
	r.GET("/fields", h.ListFields)
	r.GET("/fields/search", h.SearchFields)
	r.PUT("/fields/order", h.ReorderFields)
	r.PATCH("/fields/:id", h.UpdateField)
	r.DELETE("/fields/:id", h.DeleteField)
	r.POST("/categories", h.CreateCategory)
	r.GET("/categories", h.ListCategories)
	r.DELETE("/categories/:name", h.DeleteCategory)
	r.POST("/results", h.SubmitScores)
	r.DELETE("/results", h.DeleteAllResults)
	r.DELETE("/results/:fieldId", h.DeleteResult)
	r.GET("/report", h.GetReport)
	r.GET("/document", h.GetDocument)
	r.PUT("/document", h.ReplaceDocument)
	r.POST("/uploads/logo", h.UploadLogo)
	r.GET("/audit", h.ListAudit)

	return &testEnv{router: r, store: st, db: db, uploadDir: uploadDir}
}

// doJSON performs a request with an optional JSON body and headers.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// wantError asserts the uniform error envelope.
func wantError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	var resp ErrorResponse
	decode(t, w, &resp)
	if resp.Code != code {
		t.Fatalf("error code = %q, want %q", resp.Code, code)
	}
	if resp.Message == "" {
		t.Fatalf("error envelope must carry a message")
	}
}
