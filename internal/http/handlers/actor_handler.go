// Actor HTTP handlers. Same administrative shape as genres.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moovio/go-cinema-backend/internal/services"
)

// UpdateActorRequest is the JSON payload for a partial actor update.
type UpdateActorRequest struct {
	Name  *string `json:"name" example:"Timothée Chalamet"`
	Slug  *string `json:"slug" example:"timothee-chalamet"`
	Photo *string `json:"photo" example:"/uploads/actors/chalamet.jpg"`
}

func failActorErr(c *gin.Context, err error) {
	if errors.Is(err, services.ErrActorNotFound) {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "actor not found")
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
}

// ListActors godoc
// @ID          listActors
// @Summary     List actors
// @Description Returns actors, newest first. Supports substring search over name and slug.
// @Tags        Actors
// @Produce     json
//
// @Param       searchTerm  query  string  false "Case-insensitive substring"
// @Param       page        query  int     false "1-based page number"  default(1)
// @Param       per_page    query  int     false "Page size (max 200)"  default(50)
//
// @Success     200  {array}   domain.Actor
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /actors [get]
func (h *Handlers) ListActors(c *gin.Context) {
	page, perPage := clampListPagination(c)
	items, err := h.actorSvc.GetAll(c.Request.Context(), c.Query("searchTerm"), page, perPage)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetActorBySlug godoc
// @ID          getActorBySlug
// @Summary     Get an actor by slug
// @Tags        Actors
// @Produce     json
//
// @Param       slug  path  string  true  "Actor slug"
//
// @Success     200  {object}  domain.Actor
// @Failure     404  {object}  handlers.ErrorResponse  "Actor not found"
// @Router      /actors/by-slug/{slug} [get]
func (h *Handlers) GetActorBySlug(c *gin.Context) {
	a, err := h.actorSvc.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failActorErr(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// GetActorByID godoc
// @ID          getActorByID
// @Summary     Get an actor by id (admin)
// @Tags        Actors
// @Produce     json
//
// @Param       id  path  string  true  "Actor ID"
//
// @Success     200  {object}  domain.Actor
// @Failure     404  {object}  handlers.ErrorResponse  "Actor not found"
// @Router      /actors/{id} [get]
func (h *Handlers) GetActorByID(c *gin.Context) {
	a, err := h.actorSvc.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failActorErr(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// CreateActor godoc
// @ID          createActor
// @Summary     Create an empty actor draft (admin)
// @Tags        Actors
// @Produce     json
//
// @Success     201  {object}  handlers.CreatedResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /actors [post]
func (h *Handlers) CreateActor(c *gin.Context) {
	id, err := h.actorSvc.Create(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateActor godoc
// @ID          updateActor
// @Summary     Update an actor (admin)
// @Tags        Actors
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                       true  "Actor ID"
// @Param       body  body  handlers.UpdateActorRequest  true  "Partial update payload"
//
// @Success     200  {object}  domain.Actor
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Actor not found"
// @Router      /actors/{id} [put]
func (h *Handlers) UpdateActor(c *gin.Context) {
	var req UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	a, err := h.actorSvc.Update(c.Request.Context(), c.Param("id"), services.UpdateActorInput{
		Name:  req.Name,
		Slug:  req.Slug,
		Photo: req.Photo,
	})
	if err != nil {
		failActorErr(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// DeleteActor godoc
// @ID          deleteActor
// @Summary     Delete an actor (admin)
// @Tags        Actors
// @Produce     json
//
// @Param       id  path  string  true  "Actor ID"
//
// @Success     200  {object}  domain.Actor
// @Failure     404  {object}  handlers.ErrorResponse  "Actor not found"
// @Router      /actors/{id} [delete]
func (h *Handlers) DeleteActor(c *gin.Context) {
	a, err := h.actorSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failActorErr(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}
