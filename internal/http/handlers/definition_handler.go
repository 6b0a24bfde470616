// Field-definition HTTP handlers.
//
// This file exposes REST endpoints for the admin field-definition resources:
//   - POST   /fields               (create)
//   - PATCH  /fields/{id}          (partial update)
//   - DELETE /fields/{id}          (delete)
//   - PUT    /fields/order         (reorder)
//   - GET    /fields               (list definitions + categories)
//   - GET    /fields/search        (keyword search)
//   - POST   /categories           (add category)
//   - DELETE /categories/{name}    (delete category)
//   - GET    /categories           (list categories)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
	"github.com/nutrigenlab/go-report-backend/internal/services"
	"github.com/nutrigenlab/go-report-backend/internal/utils"
)

//
// DTOs
//

// CreateFieldRequest is the JSON payload for creating a field definition.
type CreateFieldRequest struct {
	// Label is the human-facing field name; the id is derived from it.
	Label string `json:"label" binding:"required,min=1,max=255" example:"Caffeine Sensitivity"`
	// Category assigns the field to a report section.
	Category string `json:"category" example:"Stimulants"`
	// Min and Max bound the score range shown to administrators.
	Min int `json:"min" example:"1"`
	Max int `json:"max" example:"10"`
	// Per-level recommendation texts.
	HighRecommendation   string `json:"highRecommendation" example:"Limit coffee to one cup per day."`
	NormalRecommendation string `json:"normalRecommendation" example:"Current caffeine intake is fine."`
	LowRecommendation    string `json:"lowRecommendation" example:"Caffeine is well tolerated."`
}

// UpdateFieldRequest is the JSON payload for partially editing a definition.
// Absent fields are left untouched; present fields (including empty strings)
// are applied.
type UpdateFieldRequest struct {
	ID                   *string `json:"id,omitempty" example:"caffeine_sensitivity_v2"`
	Label                *string `json:"label,omitempty" example:"Caffeine Sensitivity"`
	Category             *string `json:"category,omitempty" example:"Stimulants"`
	Min                  *int    `json:"min,omitempty" example:"1"`
	Max                  *int    `json:"max,omitempty" example:"10"`
	HighRecommendation   *string `json:"highRecommendation,omitempty"`
	NormalRecommendation *string `json:"normalRecommendation,omitempty"`
	LowRecommendation    *string `json:"lowRecommendation,omitempty"`
}

// ReorderFieldsRequest carries the full id sequence for reordering.
type ReorderFieldsRequest struct {
	// IDs must be a permutation of every existing definition id.
	IDs []string `json:"ids" binding:"required" example:"caffeine_sensitivity,lactose_sensitivity"`
}

// CreateCategoryRequest is the JSON payload for adding a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Micronutrients"`
}

// ListFieldsResponse wraps the ordered definitions and the category list.
type ListFieldsResponse struct {
	Fields     []domain.FieldDefinition `json:"fields"`
	Categories []string                 `json:"categories"`
}

// ListCategoriesResponse wraps the category list.
type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

//
// Handlers
//

// CreateField godoc
// @ID          createField
// @Summary     Create a field definition
// @Description Creates a field definition; its id is derived from the label (lowercased, spaces collapsed to underscores).
// @Tags        Fields
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       body       body    handlers.CreateFieldRequest  true  "Create field payload"
//
// @Success     201  {object}  domain.FieldDefinition
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Derived id already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields [post]
func (h *Handlers) CreateField(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	def, err := h.defSvc.Add(c.Request.Context(), actor(c), services.AddFieldInput{
		Label:                req.Label,
		Category:             req.Category,
		Min:                  req.Min,
		Max:                  req.Max,
		HighRecommendation:   req.HighRecommendation,
		NormalRecommendation: req.NormalRecommendation,
		LowRecommendation:    req.LowRecommendation,
	})
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusCreated, def)
}

// UpdateField godoc
// @ID          updateField
// @Summary     Edit a field definition
// @Description Applies a partial update to a definition. Changing the id rewrites recorded result references.
// @Tags        Fields
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       id         path    string  true  "Field ID"                example(caffeine_sensitivity)
// @Param       body       body    handlers.UpdateFieldRequest  true  "Fields to change"
//
// @Success     200  {object}  domain.FieldDefinition
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Field not found"
// @Failure     409  {object}  handlers.ErrorResponse  "New id already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields/{id} [patch]
func (h *Handlers) UpdateField(c *gin.Context) {
	id := c.Param("id")

	var req UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	def, err := h.defSvc.Update(c.Request.Context(), actor(c), id, services.FieldPatch{
		ID:                   req.ID,
		Label:                req.Label,
		Category:             req.Category,
		Min:                  req.Min,
		Max:                  req.Max,
		HighRecommendation:   req.HighRecommendation,
		NormalRecommendation: req.NormalRecommendation,
		LowRecommendation:    req.LowRecommendation,
	})
	if err != nil {
		failFromService(c, err)
		return
	}
	ok(c, http.StatusOK, def)
}

// DeleteField godoc
// @ID          deleteField
// @Summary     Delete a field definition
// @Description Removes a definition. Recorded results for it are kept and show under the "unknown" report group.
// @Tags        Fields
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       id         path    string  true  "Field ID"                example(caffeine_sensitivity)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Field not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields/{id} [delete]
func (h *Handlers) DeleteField(c *gin.Context) {
	if err := h.defSvc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		failFromService(c, err)
		return
	}
	noContent(c)
}

// ReorderFields godoc
// @ID          reorderFields
// @Summary     Reorder field definitions
// @Description Replaces the display order. The id list must be a permutation of every existing definition id.
// @Tags        Fields
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       body       body    handlers.ReorderFieldsRequest  true  "Full id sequence"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Id list is not a permutation"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields/order [put]
func (h *Handlers) ReorderFields(c *gin.Context) {
	var req ReorderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if err := h.defSvc.Reorder(c.Request.Context(), actor(c), req.IDs); err != nil {
		failFromService(c, err)
		return
	}
	noContent(c)
}

// ListFields godoc
// @ID          listFields
// @Summary     List field definitions
// @Description Returns every definition in display order together with the category list.
// @Tags        Fields
// @Produce     json
//
// @Success     200  {object}  handlers.ListFieldsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields [get]
func (h *Handlers) ListFields(c *gin.Context) {
	fields, cats, err := h.defSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListFieldsResponse{Fields: fields, Categories: cats})
}

// SearchFields godoc
// @ID          searchFields
// @Summary     Search field definitions
// @Description Ranks definitions against a keyword query over labels, ids, categories, and recommendation texts.
// @Tags        Fields
// @Produce     json
//
// @Param       q  query  string  true   "Keyword query"       example(caffeine intake)
// @Param       k  query  int     false  "Max results (1-50)"  minimum(1) maximum(50) default(10)
//
// @Success     200  {array}   search.Match
// @Failure     400  {object}  handlers.ErrorResponse  "Missing query"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /fields/search [get]
func (h *Handlers) SearchFields(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}
	k := utils.AtoiDefault(c.Query("k"), 10)
	if k < 1 {
		k = 1
	}
	if k > 50 {
		k = 50
	}

	matches, err := h.defSvc.Search(c.Request.Context(), q, k)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, matches)
}

// CreateCategory godoc
// @ID          createCategory
// @Summary     Add a category
// @Description Adds a report category. Names are unique case-insensitively.
// @Tags        Categories
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       body       body    handlers.CreateCategoryRequest  true  "Category name"
//
// @Success     201  {object}  handlers.ListCategoriesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse  "Category already exists"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ctx := c.Request.Context()
	if err := h.defSvc.AddCategory(ctx, actor(c), req.Name); err != nil {
		failFromService(c, err)
		return
	}
	_, cats, err := h.defSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, ListCategoriesResponse{Categories: cats})
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Delete a category
// @Description Removes a category. Definitions still pointing at it show under the "unknown" report group.
// @Tags        Categories
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       name       path    string  true  "Category name"           example(Stimulants)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {object}  handlers.ErrorResponse  "Category not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories/{name} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if err := h.defSvc.DeleteCategory(c.Request.Context(), actor(c), c.Param("name")); err != nil {
		failFromService(c, err)
		return
	}
	noContent(c)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List categories
// @Tags        Categories
// @Produce     json
//
// @Success     200  {object}  handlers.ListCategoriesResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	_, cats, err := h.defSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ListCategoriesResponse{Categories: cats})
}
