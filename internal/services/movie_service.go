// Package services – MovieService
//
// This file implements MovieService, the application-level component that
// owns the movie catalog: searched and populated reads, the popularity
// counter, the rating setter, and — most importantly — the update/notify
// state machine. A movie starts PENDING (notified=false); the first update
// that goes through while the gateway delivers successfully flips the latch
// to NOTIFIED in the same persisted write. A failed delivery aborts the
// whole update so a retry re-attempts notification.
//
// Observability: methods that fan out over I/O are OpenTelemetry-
// instrumented; spans carry movie identifiers.
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/notify"
	"github.com/moovio/go-cinema-backend/internal/repo"
	"github.com/moovio/go-cinema-backend/internal/search"
	"github.com/moovio/go-cinema-backend/internal/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpdateMovieInput is the partial update payload for a movie. Nil pointers
// leave the field unchanged; nil ID slices leave the reference set
// unchanged (an empty non-nil slice clears it). The payload deliberately
// carries no notification state — the notify transition is owned by the
// service, not smuggled through the caller's input.
type UpdateMovieInput struct {
	Title     *string
	Slug      *string
	Poster    *string
	BigPoster *string
	VideoURL  *string
	ActorIDs  []string
	GenreIDs  []string
}

// MovieService coordinates catalog reads and the update/notify orchestration.
type MovieService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Gateway delivers first-publication notifications. A nil gateway
	// disables notification entirely (latch untouched), which is useful
	// for dev setups without a configured bot.
	Gateway notify.Gateway
	// PublicBaseURL is the site prefix for the call-to-action link,
	// e.g. "https://cinema.example.com".
	PublicBaseURL string
}

// NewMovieService constructs a MovieService.
func NewMovieService(db *gorm.DB, gw notify.Gateway, publicBaseURL string) *MovieService {
	return &MovieService{DB: db, Gateway: gw, PublicBaseURL: publicBaseURL}
}

// GetAll returns the catalog filtered by an optional search term, newest
// first, with actors and genres populated. Pages are 1-based; perPage <= 0
// returns the whole result set.
func (s *MovieService) GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Movie, error) {
	return repo.ListMovies(ctx, s.DB, search.Movies(term), pageOffset(page, perPage), perPage)
}

// BySlug returns the movie with the given public slug, populated, or
// ErrMovieNotFound.
func (s *MovieService) BySlug(ctx context.Context, slug string) (*domain.Movie, error) {
	m, err := repo.FindMovieBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// ByID returns the movie with the given id, populated, or ErrMovieNotFound.
func (s *MovieService) ByID(ctx context.Context, id string) (*domain.Movie, error) {
	m, err := repo.FindMovieByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// ByActor returns the newest movie featuring the actor, or ErrMovieNotFound
// when the actor appears in no movie.
func (s *MovieService) ByActor(ctx context.Context, actorID string) (*domain.Movie, error) {
	m, err := repo.FindMovieByActor(ctx, s.DB, actorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// ByGenres returns movies whose genre set intersects genreIDs, newest
// first. An empty result is ErrMovieNotFound, matching the other existence
// lookups.
func (s *MovieService) ByGenres(ctx context.Context, genreIDs []string) ([]domain.Movie, error) {
	if len(genreIDs) == 0 {
		return nil, ErrNoGenreIDs
	}
	out, err := repo.FindMoviesByGenres(ctx, s.DB, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrMovieNotFound
	}
	return out, nil
}

// GetMostPopular returns movies with at least one view, most viewed first,
// with genres populated.
func (s *MovieService) GetMostPopular(ctx context.Context) ([]domain.Movie, error) {
	return repo.ListMostPopular(ctx, s.DB)
}

// UpdateCountOpened atomically bumps the view counter for the movie with
// the given slug and returns the updated movie, or ErrMovieNotFound.
func (s *MovieService) UpdateCountOpened(ctx context.Context, slug string) (*domain.Movie, error) {
	m, err := repo.IncrementCountOpened(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateRating stores the given rating as-is. The [0, 10] range is the
// caller's contract; this layer performs no clamping, by agreement with the
// rating collection flow that computes the value.
func (s *MovieService) UpdateRating(ctx context.Context, id string, value float64) (*domain.Movie, error) {
	m, err := repo.UpdateRating(ctx, s.DB, id, value)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create inserts an empty draft movie and returns its id. Admins fill the
// draft via Update afterwards.
func (s *MovieService) Create(ctx context.Context) (string, error) {
	m, err := repo.CreateMovie(ctx, s.DB)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// Update applies a partial update with the notify-once guarantee:
//
//   - NOTIFIED movie: fields are applied normally, flag untouched, no
//     gateway call.
//   - PENDING movie: the gateway is called first (image, then message with
//     the action link). Any delivery failure aborts the update — nothing is
//     persisted, the movie stays PENDING, and ErrNotificationFailed is
//     returned so the caller can retry. On success the fields and
//     notified=true are persisted as one conditional write; losing the
//     write race to a concurrent updater degrades to a plain field update
//     and never reverts the latch.
func (s *MovieService) Update(ctx context.Context, id string, in UpdateMovieInput) (*domain.Movie, error) {
	tr := otel.Tracer("services/MovieService")
	ctx, span := tr.Start(ctx, "Update",
		trace.WithAttributes(attribute.String("movie.id", id)),
	)
	defer span.End()

	current, err := repo.FindMovieByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	fields := buildMovieFields(in)

	mustNotify := !current.Notified && s.Gateway != nil
	if mustNotify {
		if err := s.sendNotification(ctx, current, in); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotificationFailed, err)
		}
	}

	updated, _, err := repo.ApplyMovieUpdate(ctx, s.DB, id, fields, in.ActorIDs, in.GenreIDs, mustNotify)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a movie and returns the removed entity, or
// ErrMovieNotFound.
func (s *MovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	m, err := repo.DeleteMovie(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// buildMovieFields flattens the partial input into an update map. A title
// change with a blank slug derives the slug from the new title so drafts
// become publicly addressable without a second edit.
func buildMovieFields(in UpdateMovieInput) map[string]any {
	fields := make(map[string]any, 5)
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Slug != nil {
		slug := *in.Slug
		if slug == "" && in.Title != nil {
			slug = utils.Slugify(*in.Title)
		}
		fields["slug"] = slug
	}
	if in.Poster != nil {
		fields["poster"] = *in.Poster
	}
	if in.BigPoster != nil {
		fields["big_poster"] = *in.BigPoster
	}
	if in.VideoURL != nil {
		fields["video_url"] = *in.VideoURL
	}
	return fields
}

// sendNotification delivers the first-publication announcement: a poster
// image followed by an HTML message with a watch link. Both calls must
// succeed; the first failure aborts.
func (s *MovieService) sendNotification(ctx context.Context, current *domain.Movie, in UpdateMovieInput) error {
	title := current.Title
	if in.Title != nil {
		title = *in.Title
	}
	slug := current.Slug
	if in.Slug != nil && *in.Slug != "" {
		slug = *in.Slug
	}

	image := current.BigPoster
	if in.BigPoster != nil && *in.BigPoster != "" {
		image = *in.BigPoster
	}
	if image == "" {
		image = current.Poster
	}

	if image != "" {
		if err := s.Gateway.SendImage(ctx, image); err != nil {
			return err
		}
	}

	text := fmt.Sprintf("<b>%s</b>\nNow available for streaming.", title)
	btn := notify.Button{
		Label: "Go to watch",
		URL:   fmt.Sprintf("%s/movie/%s", s.PublicBaseURL, slug),
	}
	return s.Gateway.SendMessage(ctx, text, btn)
}
