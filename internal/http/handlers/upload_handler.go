// Upload HTTP handler.
//
// POST /uploads/logo accepts a multipart image, stores it under the
// configured upload directory with a random name, and records the served
// path in the document's branding block.
package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowedLogoExt lists the accepted logo file extensions.
var allowedLogoExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
	".webp": true,
}

// UploadLogoResponse returns the served path of the stored logo.
type UploadLogoResponse struct {
	Path string `json:"path" example:"/uploads/3f1c9a7e-logo.png"`
}

// UploadLogo godoc
// @ID          uploadLogo
// @Summary     Upload a report logo
// @Description Stores the uploaded image and points the document's branding at it.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       X-User-ID  header  string  false "Admin ID (demo header)"  example(admin42)
// @Param       file       formData  file  true  "Logo image (png, jpg, jpeg, svg, webp)"
//
// @Success     201  {object}  handlers.UploadLogoResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing file or unsupported type"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /uploads/logo [post]
func (h *Handlers) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart field 'file' is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExt[ext] {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unsupported image type "+ext)
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}

	served := "/uploads/" + name
	if err := h.docSvc.SetLogo(c.Request.Context(), actor(c), served); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, UploadLogoResponse{Path: served})
}
