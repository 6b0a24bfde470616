// Report HTTP handler.
//
// GET /report returns the assembled view model: patient info, branding,
// gene results, nutrient scores, lifestyle conditions, and the diet-analysis
// results grouped by their field's current category.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetReport godoc
// @ID          getReport
// @Summary     Assemble the report view
// @Description Joins recorded results against the live field definitions. Group order follows definition order; results whose definition was deleted are dropped, and fields whose category was deleted show under "unknown".
// @Tags        Report
// @Produce     json
//
// @Success     200  {object}  services.ReportView
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /report [get]
func (h *Handlers) GetReport(c *gin.Context) {
	view, err := h.reportSvc.Build(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, view)
}
