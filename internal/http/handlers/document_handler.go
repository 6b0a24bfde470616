// Whole-document HTTP handlers.
//
//   - GET /document  (export the full report document)
//   - PUT /document  (replace the full report document)
//
// PUT is the import/restore path: the posted document replaces everything
// (definitions, categories, results, patient info, branding) in one write.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

// GetDocument godoc
// @ID          getDocument
// @Summary     Export the report document
// @Description Returns the complete persisted document, suitable for backup or transfer.
// @Tags        Document
// @Produce     json
//
// @Success     200  {object}  domain.ReportDocument
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /document [get]
func (h *Handlers) GetDocument(c *gin.Context) {
	doc, err := h.docSvc.Get(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, doc)
}

// ReplaceDocument godoc
// @ID          replaceDocument
// @Summary     Replace the report document
// @Description Atomically replaces the whole persisted document with the posted one.
// @Tags        Document
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       body       body    domain.ReportDocument  true  "Complete replacement document"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid body"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /document [put]
func (h *Handlers) ReplaceDocument(c *gin.Context) {
	var doc domain.ReportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.docSvc.Replace(c.Request.Context(), actor(c), &doc); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		return
	}
	noContent(c)
}
