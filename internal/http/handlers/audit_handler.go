// Audit trail HTTP handler.
//
// GET /audit lists the recorded admin actions, newest first, with pagination
// and a weak ETag so polling dashboards can short-circuit with 304.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/repo"
)

// ListAuditResponse wraps a page of audit entries and pagination information.
type ListAuditResponse struct {
	Entries    []domain.AuditEntry `json:"entries"`
	Pagination Pagination          `json:"pagination"`
}

// ListAudit godoc
// @ID          listAudit
// @Summary     List audit entries (paginated)
// @Description Returns recorded admin actions, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Audit
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"audit:12:1700000000\")
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListAuditResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /audit [get]
func (h *Handlers) ListAudit(c *gin.Context) {
	ctx := c.Request.Context()
	if h.db == nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "audit store not configured")
		return
	}
	page, pageSize := clampPagination(c)

	// ETag pre-check (best effort).
	count, maxTS, err := repo.AuditStats(ctx, h.db)
	if err == nil {
		var ts int64
		if maxTS != nil {
			ts = maxTS.Unix()
		}
		etag := fmt.Sprintf(`W/"audit:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	entries, err := repo.ListAuditPage(ctx, h.db, (page-1)*pageSize, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	total, err := repo.CountAuditEntries(ctx, h.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	resp := ListAuditResponse{
		Entries: entries,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	}
	ok(c, http.StatusOK, resp)
}
