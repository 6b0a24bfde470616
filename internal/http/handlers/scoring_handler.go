// Scoring HTTP handlers.
//
// This file exposes REST endpoints for patient diet-analysis results:
//   - POST   /results            (batch classify + store, idempotent replay)
//   - DELETE /results/{fieldId}  (remove one result)
//   - DELETE /results            (clear all results)
//
// POST /results honors an Idempotency-Key header: a replayed key within its
// TTL short-circuits to the originally returned response without re-scoring.
package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutrigenlab/go-report-backend/internal/http/middleware"
	"github.com/nutrigenlab/go-report-backend/internal/repo"
	"github.com/nutrigenlab/go-report-backend/internal/services"
)

// ScopeBatchScore is the idempotency scope under which batch-scoring replay
// records are stored. The router's replay lookup uses the same scope.
const ScopeBatchScore = "batch-score"

//
// DTOs
//

// SubmitScoresRequest maps field ids to entered scores.
type SubmitScoresRequest struct {
	// Scores holds one raw score per field id.
	Scores map[string]int `json:"scores" binding:"required"`
}

// SubmitScoresResponse reports how many results were written and which
// submitted ids had no matching field definition.
type SubmitScoresResponse struct {
	Written int      `json:"written"`
	Skipped []string `json:"skipped"`
	// Replayed is true when the response was served from an idempotency
	// record instead of re-running the batch.
	Replayed bool `json:"replayed,omitempty"`
}

//
// Handlers
//

// SubmitScores godoc
// @ID          submitScores
// @Summary     Submit patient scores (batch)
// @Description Classifies each score as LOW, NORMAL, or HIGH, snapshots the field's recommendation texts, and upserts one result per field. Unknown ids are skipped and reported.
// @Tags        Results
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "Admin ID (demo header)"          example(admin42)
// @Param       Idempotency-Key  header  string  false "Safe-retry key for this batch"   example(4d3f0b1c-1111-4222-8333-abcdefabcdef)
// @Param       body             body    handlers.SubmitScoresRequest  true  "Field id to score map"
//
// @Success     200  {object}  handlers.SubmitScoresResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Empty batch or invalid body"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /results [post]
func (h *Handlers) SubmitScores(c *gin.Context) {
	ctx := c.Request.Context()
	act := actor(c)

	var req SubmitScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Idempotency replay (best effort: skipped when no DB is wired).
	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))
	if h.db != nil && key != "" {
		if rec, err := repo.GetIdempotency(ctx, h.db, act.ID, ScopeBatchScore, key, time.Now().UTC()); err == nil {
			ok(c, rec.Status, SubmitScoresResponse{Written: rec.Written, Replayed: true})
			return
		}
	}

	res, err := h.scoreSvc.BatchClassifyAndStore(ctx, act, req.Scores)
	if err != nil {
		if errors.Is(err, services.ErrEmptyBatch) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeScoreFailed, err.Error())
		return
	}

	if h.db != nil && key != "" {
		if _, err := repo.CreateIdempotency(ctx, h.db, act.ID, ScopeBatchScore, key, res.Written, http.StatusOK, h.idempotencyTTL); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency record not stored")
		}
	}

	ok(c, http.StatusOK, SubmitScoresResponse{Written: res.Written, Skipped: res.Skipped})
}

// DeleteResult godoc
// @ID          deleteResult
// @Summary     Remove one recorded result
// @Description Deletes the stored result for a field id. Succeeds even when no result exists.
// @Tags        Results
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       fieldId    path    string  true  "Field ID"                example(caffeine_sensitivity)
//
// @Success     204  {string}  string "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /results/{fieldId} [delete]
func (h *Handlers) DeleteResult(c *gin.Context) {
	if err := h.scoreSvc.DeleteResult(c.Request.Context(), actor(c), c.Param("fieldId")); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}

// DeleteAllResults godoc
// @ID          deleteAllResults
// @Summary     Clear all recorded results
// @Tags        Results
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
//
// @Success     204  {string}  string "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /results [delete]
func (h *Handlers) DeleteAllResults(c *gin.Context) {
	if err := h.scoreSvc.DeleteAllResults(c.Request.Context(), actor(c)); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	noContent(c)
}
