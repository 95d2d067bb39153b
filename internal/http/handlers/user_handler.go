// User profile and favorites HTTP handlers.
//
// Endpoints:
//   - GET /users/profile
//   - PUT /users/profile
//   - GET /users/profile/favorites
//   - PUT /users/profile/favorites   (toggle a movie)
//
// Identity comes from UserID(c); token issuance and login live outside this
// service.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moovio/go-cinema-backend/internal/services"
)

// UpdateProfileRequest is the JSON payload for a partial profile update.
// IsAdmin changes only stick when the caller is an admin (enforced by the
// route group guard).
type UpdateProfileRequest struct {
	Email    *string `json:"email" example:"viewer@example.com"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"is_admin"`
}

// ToggleFavoriteRequest identifies the movie to add or remove.
type ToggleFavoriteRequest struct {
	MovieID string `json:"movie_id" binding:"required"`
}

// ToggleFavoriteResponse reports the post-toggle state.
type ToggleFavoriteResponse struct {
	MovieID    string `json:"movie_id"`
	IsFavorite bool   `json:"is_favorite"`
}

func failUserErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
	case errors.Is(err, services.ErrMovieNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")
	case errors.Is(err, services.ErrInvalidEmail):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid email address")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// GetProfile godoc
// @ID          getProfile
// @Summary     Get the current user's profile
// @Tags        Users
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"
//
// @Success     200  {object}  domain.User
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /users/profile [get]
func (h *Handlers) GetProfile(c *gin.Context) {
	u, err := h.userSvc.Profile(c.Request.Context(), UserID(c))
	if err != nil {
		failUserErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateProfile godoc
// @ID          updateProfile
// @Summary     Update the current user's profile
// @Description Partial update. Passwords are hashed before storage; emails are validated.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string                         false "User ID (demo header)"
// @Param       body       body    handlers.UpdateProfileRequest  true  "Partial profile payload"
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid email"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /users/profile [put]
func (h *Handlers) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.userSvc.UpdateProfile(c.Request.Context(), UserID(c), services.UpdateProfileInput{
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		failUserErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List the current user's favorite movies
// @Tags        Users
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"
//
// @Success     200  {array}   domain.Movie
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Router      /users/profile/favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	items, err := h.userSvc.Favorites(c.Request.Context(), UserID(c))
	if err != nil {
		failUserErr(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// ToggleFavorite godoc
// @ID          toggleFavorite
// @Summary     Toggle a movie in the current user's favorites
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string                          false "User ID (demo header)"
// @Param       body       body    handlers.ToggleFavoriteRequest  true  "Movie id"
//
// @Success     200  {object}  handlers.ToggleFavoriteResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "User or movie not found"
// @Router      /users/profile/favorites [put]
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	var req ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.MovieID) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "movie_id required")
		return
	}

	nowFav, err := h.userSvc.ToggleFavorite(c.Request.Context(), UserID(c), req.MovieID)
	if err != nil {
		failUserErr(c, err)
		return
	}
	ok(c, http.StatusOK, ToggleFavoriteResponse{MovieID: req.MovieID, IsFavorite: nowFav})
}
