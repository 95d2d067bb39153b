// Media upload handler (admin).
//
// Accepts multipart form uploads under the "files" field and stores them in a
// per-folder directory; responds with public URLs the frontend can embed.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadFiles godoc
// @ID          uploadFiles
// @Summary     Upload media files (admin)
// @Description Stores one or more files under the given folder and returns their public URLs.
// @Tags        Files
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       folder  query     string  false "Target folder (e.g. movies, actors)"  default(default)
// @Param       files   formData  file    true  "Files to upload"
//
// @Success     200  {array}   storage.SavedFile
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /files [post]
func (h *Handlers) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "multipart form required")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no files in 'files' field")
		return
	}

	saved, err := h.files.SaveFiles(files, c.Query("folder"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, saved)
}
