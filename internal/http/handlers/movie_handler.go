// Movie HTTP handlers.
//
// This file exposes REST endpoints for movie resources:
//   - GET    /movies                       (list, optional ?searchTerm=)
//   - GET    /movies/by-slug/{slug}        (public detail)
//   - GET    /movies/by-actor/{actorId}    (newest movie for an actor)
//   - POST   /movies/by-genres             (movies intersecting a genre set)
//   - GET    /movies/most-popular          (viewed movies, most viewed first)
//   - PUT    /movies/count-opened          (bump the view counter)
//   - GET    /movies/{id}                  (admin detail)
//   - POST   /movies                       (admin: create empty draft)
//   - PUT    /movies/{id}                  (admin: partial update + notify-once)
//   - PATCH  /movies/{id}/rating           (set the aggregated rating)
//   - DELETE /movies/{id}                  (admin delete)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. It also hosts the shared service
// contracts and the Handlers aggregate consumed by the router.
package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/services"
	"github.com/moovio/go-cinema-backend/internal/storage"
	"github.com/moovio/go-cinema-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// MovieService defines the catalog operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type MovieService interface {
	GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Movie, error)
	BySlug(ctx context.Context, slug string) (*domain.Movie, error)
	ByID(ctx context.Context, id string) (*domain.Movie, error)
	ByActor(ctx context.Context, actorID string) (*domain.Movie, error)
	ByGenres(ctx context.Context, genreIDs []string) ([]domain.Movie, error)
	GetMostPopular(ctx context.Context) ([]domain.Movie, error)
	UpdateCountOpened(ctx context.Context, slug string) (*domain.Movie, error)
	UpdateRating(ctx context.Context, id string, value float64) (*domain.Movie, error)
	Create(ctx context.Context) (string, error)
	Update(ctx context.Context, id string, in services.UpdateMovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}

// GenreService defines genre reads, writes, and the collection aggregation.
type GenreService interface {
	GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Genre, error)
	BySlug(ctx context.Context, slug string) (*domain.Genre, error)
	ByID(ctx context.Context, id string) (*domain.Genre, error)
	GetCollections(ctx context.Context) ([]domain.Collection, error)
	Create(ctx context.Context) (string, error)
	Update(ctx context.Context, id string, in services.UpdateGenreInput) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}

// ActorService defines actor reads and administrative writes.
type ActorService interface {
	GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Actor, error)
	BySlug(ctx context.Context, slug string) (*domain.Actor, error)
	ByID(ctx context.Context, id string) (*domain.Actor, error)
	Create(ctx context.Context) (string, error)
	Update(ctx context.Context, id string, in services.UpdateActorInput) (*domain.Actor, error)
	Delete(ctx context.Context, id string) (*domain.Actor, error)
}

// UserService defines profile and favorites operations.
type UserService interface {
	Profile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in services.UpdateProfileInput) (*domain.User, error)
	IsAdmin(ctx context.Context, id string) (bool, error)
	ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error)
	Favorites(ctx context.Context, userID string) ([]domain.Movie, error)
}

// FileStore persists uploaded media and reports public URLs.
type FileStore interface {
	SaveFiles(files []*multipart.FileHeader, folder string) ([]storage.SavedFile, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for movies, genres, actors, users, and
// uploads. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	movieSvc MovieService
	genreSvc GenreService
	actorSvc ActorService
	userSvc  UserService
	files    FileStore
}

// New constructs and returns a Handlers instance bound to the given services.
func New(movieSvc MovieService, genreSvc GenreService, actorSvc ActorService, userSvc UserService, files FileStore) *Handlers {
	return &Handlers{
		movieSvc: movieSvc,
		genreSvc: genreSvc,
		actorSvc: actorSvc,
		userSvc:  userSvc,
		files:    files,
	}
}

// UserID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
// The router's admin guard and the profile handlers share this resolver so
// the fallback chain cannot drift between them.
func UserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

// clampListPagination parses page/per_page from query parameters, applies
// defaults and caps, and returns the validated (page, perPage).
func clampListPagination(c *gin.Context) (page, perPage int) {
	const (
		defaultPage    = 1
		defaultPerPage = 50
		maxPerPage     = 200
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	perPage = utils.AtoiDefault(c.Query("per_page"), defaultPerPage)
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return
}

//
// DTOs
//

// UpdateMovieRequest is the JSON payload for a partial movie update. Omitted
// fields keep their stored values; omitted id lists keep the current
// reference sets.
type UpdateMovieRequest struct {
	Title     *string  `json:"title" example:"Dune: Part Two"`
	Slug      *string  `json:"slug" example:"dune-part-two"`
	Poster    *string  `json:"poster" example:"/uploads/movies/dune.jpg"`
	BigPoster *string  `json:"big_poster" example:"/uploads/movies/dune-big.jpg"`
	VideoURL  *string  `json:"video_url" example:"/uploads/movies/dune.mp4"`
	ActorIDs  []string `json:"actor_ids"`
	GenreIDs  []string `json:"genre_ids"`
}

// ByGenresRequest selects movies by genre ids.
type ByGenresRequest struct {
	GenreIDs []string `json:"genre_ids" binding:"required"`
}

// CountOpenedRequest identifies the movie whose view counter to bump.
type CountOpenedRequest struct {
	Slug string `json:"slug" binding:"required" example:"dune"`
}

// UpdateRatingRequest carries the externally computed rating value.
type UpdateRatingRequest struct {
	Value float64 `json:"value" example:"8.4"`
}

// CreatedResponse returns the id of a freshly created draft resource.
type CreatedResponse struct {
	ID string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

//
// Helpers
//

// failMovieErr translates movie service sentinels into HTTP error envelopes.
// A failed notification maps to 502: the upstream gateway refused delivery
// and the update was not applied, so the client may retry verbatim.
func failMovieErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "movie not found")
	case errors.Is(err, services.ErrNoGenreIDs):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "genre_ids must not be empty")
	case errors.Is(err, services.ErrNotificationFailed):
		fail(c, http.StatusBadGateway, ErrCodeNotifyFailed, "notification delivery failed; update not applied")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// ListMovies godoc
// @ID          listMovies
// @Summary     List movies
// @Description Returns the catalog, newest first, with actors and genres populated. Supports substring search.
// @Tags        Movies
// @Produce     json
//
// @Param       searchTerm  query  string  false "Case-insensitive substring over the title"
// @Param       page        query  int     false "1-based page number"  default(1)
// @Param       per_page    query  int     false "Page size (max 200)"  default(50)
//
// @Success     200  {array}   domain.Movie
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /movies [get]
func (h *Handlers) ListMovies(c *gin.Context) {
	page, perPage := clampListPagination(c)
	items, err := h.movieSvc.GetAll(c.Request.Context(), c.Query("searchTerm"), page, perPage)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetMovieBySlug godoc
// @ID          getMovieBySlug
// @Summary     Get a movie by slug
// @Tags        Movies
// @Produce     json
//
// @Param       slug  path  string  true  "Movie slug"  example(dune)
//
// @Success     200  {object}  domain.Movie
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Router      /movies/by-slug/{slug} [get]
func (h *Handlers) GetMovieBySlug(c *gin.Context) {
	m, err := h.movieSvc.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// GetMovieByActor godoc
// @ID          getMovieByActor
// @Summary     Get the newest movie featuring an actor
// @Tags        Movies
// @Produce     json
//
// @Param       actorId  path  string  true  "Actor ID"
//
// @Success     200  {object}  domain.Movie
// @Failure     404  {object}  handlers.ErrorResponse  "No movie for this actor"
// @Router      /movies/by-actor/{actorId} [get]
func (h *Handlers) GetMovieByActor(c *gin.Context) {
	m, err := h.movieSvc.ByActor(c.Request.Context(), c.Param("actorId"))
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// GetMoviesByGenres godoc
// @ID          getMoviesByGenres
// @Summary     List movies intersecting a genre set
// @Tags        Movies
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ByGenresRequest  true  "Genre ids"
//
// @Success     200  {array}   domain.Movie
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "No movies in these genres"
// @Router      /movies/by-genres [post]
func (h *Handlers) GetMoviesByGenres(c *gin.Context) {
	var req ByGenresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	items, err := h.movieSvc.ByGenres(c.Request.Context(), req.GenreIDs)
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetMostPopular godoc
// @ID          getMostPopularMovies
// @Summary     List viewed movies, most viewed first
// @Tags        Movies
// @Produce     json
//
// @Success     200  {array}   domain.Movie
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /movies/most-popular [get]
func (h *Handlers) GetMostPopular(c *gin.Context) {
	items, err := h.movieSvc.GetMostPopular(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// UpdateCountOpened godoc
// @ID          updateCountOpened
// @Summary     Bump the view counter for a movie
// @Tags        Movies
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CountOpenedRequest  true  "Movie slug"
//
// @Success     200  {object}  domain.Movie
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Router      /movies/count-opened [put]
func (h *Handlers) UpdateCountOpened(c *gin.Context) {
	var req CountOpenedRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Slug) == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "slug required")
		return
	}
	m, err := h.movieSvc.UpdateCountOpened(c.Request.Context(), req.Slug)
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// GetMovieByID godoc
// @ID          getMovieByID
// @Summary     Get a movie by id (admin)
// @Tags        Movies
// @Produce     json
//
// @Param       id  path  string  true  "Movie ID"
//
// @Success     200  {object}  domain.Movie
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Router      /movies/{id} [get]
func (h *Handlers) GetMovieByID(c *gin.Context) {
	m, err := h.movieSvc.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// CreateMovie godoc
// @ID          createMovie
// @Summary     Create an empty movie draft (admin)
// @Description Inserts a draft with placeholder fields and returns its id. Fill it via PUT /movies/{id}.
// @Tags        Movies
// @Produce     json
//
// @Success     201  {object}  handlers.CreatedResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /movies [post]
func (h *Handlers) CreateMovie(c *gin.Context) {
	id, err := h.movieSvc.Create(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateMovie godoc
// @ID          updateMovie
// @Summary     Update a movie (admin)
// @Description Applies a partial update. The first successful update of a movie also announces it to subscribers; if the announcement cannot be delivered, nothing is persisted and 502 is returned so the update can be retried.
// @Tags        Movies
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                       true  "Movie ID"
// @Param       body  body  handlers.UpdateMovieRequest  true  "Partial update payload"
//
// @Success     200  {object}  domain.Movie
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Failure     502  {object}  handlers.ErrorResponse  "Notification delivery failed"
// @Router      /movies/{id} [put]
func (h *Handlers) UpdateMovie(c *gin.Context) {
	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	m, err := h.movieSvc.Update(c.Request.Context(), c.Param("id"), services.UpdateMovieInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Poster:    req.Poster,
		BigPoster: req.BigPoster,
		VideoURL:  req.VideoURL,
		ActorIDs:  req.ActorIDs,
		GenreIDs:  req.GenreIDs,
	})
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// UpdateMovieRating godoc
// @ID          updateMovieRating
// @Summary     Set the aggregated rating for a movie
// @Description Stores the value computed by the rating collection flow. Range checks happen upstream.
// @Tags        Movies
// @Accept      json
// @Produce     json
//
// @Param       id    path  string                        true  "Movie ID"
// @Param       body  body  handlers.UpdateRatingRequest  true  "Rating value"
//
// @Success     200  {object}  domain.Movie
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Router      /movies/{id}/rating [patch]
func (h *Handlers) UpdateMovieRating(c *gin.Context) {
	var req UpdateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	m, err := h.movieSvc.UpdateRating(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}

// DeleteMovie godoc
// @ID          deleteMovie
// @Summary     Delete a movie (admin)
// @Tags        Movies
// @Produce     json
//
// @Param       id  path  string  true  "Movie ID"
//
// @Success     200  {object}  domain.Movie
// @Failure     404  {object}  handlers.ErrorResponse  "Movie not found"
// @Router      /movies/{id} [delete]
func (h *Handlers) DeleteMovie(c *gin.Context) {
	m, err := h.movieSvc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		failMovieErr(c, err)
		return
	}
	ok(c, http.StatusOK, m)
}
