// Genre HTTP handlers.
//
// Endpoints:
//   - GET    /genres               (list, optional ?searchTerm=)
//   - GET    /genres/by-slug/{slug}
//   - GET    /genres/collections   (one summary per genre)
//   - GET    /genres/{id}          (admin)
//   - POST   /genres               (admin: create empty draft)
//   - PUT    /genres/{id}          (admin: partial update)
//   - DELETE /genres/{id}          (admin)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moovio/go-cinema-backend/internal/services"
)

// UpdateGenreRequest is the JSON payload for a partial genre update.
type UpdateGenreRequest struct {
	Name        *string `json:"name" example:"Science Fiction"`
	Slug        *string `json:"slug" example:"sci-fi"`
	Description *string `json:"description"`
	Icon        *string `json:"icon" example:"MdLocalMovies"`
}

// failGenreErr translates genre service sentinels into HTTP error envelopes.
func failGenreErr(c *gin.Context, err error) {
	if errors.Is(err, services.ErrGenreNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "genre not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
}

// ListGenres godoc
// @ID          listGenres
// @Summary     List genres
// @Description Returns genres, newest first. Supports substring search over name, slug, and description.
// @Tags        Genres
// @Produce     json
//
// @Param       searchTerm  query  string  false "Case-insensitive substring"
// @Param       page        query  int     false "1-based page number"  default(1)
// @Param       per_page    query  int     false "Page size (max 200)"  default(50)
//
// @Success     200  {array}   domain.Genre
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /genres [get]
func (h *Handlers) ListGenres(c *gin.Context) {
	page, perPage := clampListPagination(c)
	items, err := h.genreSvc.GetAll(c.Request.Context(), c.Query("searchTerm"), page, perPage)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetGenreBySlug godoc
// @ID          getGenreBySlug
// @Summary     Get a genre by slug
// @Tags        Genres
// @Produce     json
//
// @Param       slug  path  string  true  "Genre slug"  example(sci-fi)
//
// @Success     200  {object}  domain.Genre
// @Failure     404  {object}  handlers.ErrorResponse  "Genre not found"
// @Router      /genres/by-slug/{slug} [get]
func (h *Handlers) GetGenreBySlug(c *gin.Context) {
	g, err := h.genreSvc.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failGenreErr(c, err)
		return
	}
	ok(c, http.StatusOK, g)
}

// GetCollections godoc
// @ID          getCollections
// @Summary     List genre collections
// @Description One summary per genre: identity plus the big poster of a representative movie. Genres without movies appear with a null image.
// @Tags        Genres
// @Produce     json
//
// @Success     200  {array}   domain.Collection
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /genres/collections [get]
func (h *Handlers) GetCollections(c *gin.Context) {
	items, err := h.genreSvc.GetCollections(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetGenreByID godoc
// @ID          getGenreByID
// @Summary     Get a genre by id (admin)
// @Tags        Genres
// @Produce     json
//
// @Param       id  path  string  true  "Genre ID"
//
// @Success     200  {object}  domain.Genre
// @Failure     404  {object}  handlers.ErrorResponse  "Genre not found"
// @Router      /genres/{id} [get]
func (h *Handlers) GetGenreByID(c *gin.Context) {
	g, err := h.genreSvc.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failGenreErr(c, err)
		return
	}
	ok(c, http.StatusOK, g)
}

// CreateGenre godoc
// @ID          createGenre
// @Summary     Create an empty genre draft (admin)
// @Tags        Genres
// @Produce     json
//
// @Success     201  {object}  handlers.CreatedResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /genres [post]
func (h *Handlers) CreateGenre(c *gin.Context) {
	id, err := h.genreSvc.Create(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateGenre godoc
// @ID          updateGenre
// @Summary     Update a genre (admin)
// @Tags        Genres
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                       true  "Genre ID"
// @Param       body  body  handlers.UpdateGenreRequest  true  "Partial update payload"
//
// @Success     200  {object}  domain.Genre
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Genre not found"
// @Router      /genres/{id} [put]
func (h *Handlers) UpdateGenre(c *gin.Context) {
	var req UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	g, err := h.genreSvc.Update(c.Request.Context(), c.Param("id"), services.UpdateGenreInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		failGenreErr(c, err)
		return
	}
	ok(c, http.StatusOK, g)
}

// DeleteGenre godoc
// @ID          deleteGenre
// @Summary     Delete a genre (admin)
// @Description Removes the genre. Movies keep their other genre links; stale references are filtered at read time.
// @Tags        Genres
// @Produce     json
//
// @Param       id  path  string  true  "Genre ID"
//
// @Success     200  {object}  domain.Genre
// @Failure     404  {object}  handlers.ErrorResponse  "Genre not found"
// @Router      /genres/{id} [delete]
func (h *Handlers) DeleteGenre(c *gin.Context) {
	g, err := h.genreSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failGenreErr(c, err)
		return
	}
	ok(c, http.StatusOK, g)
}
