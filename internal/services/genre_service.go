// Package services – GenreService
//
// This file implements GenreService, which manages genre records and derives
// display "collections": one summary per genre combining the genre identity
// with the big poster of a representative movie. Which movie represents a
// genre is an explicit, configurable policy rather than an ambient store
// sort order.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/repo"
	"github.com/moovio/go-cinema-backend/internal/search"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CollectionPolicy selects the representative movie for a genre collection.
type CollectionPolicy string

const (
	// CollectionNewest picks the most recently created movie in the genre.
	// This is the default and the documented tie-break: it is NOT "most
	// popular" or "best rated".
	CollectionNewest CollectionPolicy = "newest"
	// CollectionTopRated picks the highest-rated movie in the genre.
	CollectionTopRated CollectionPolicy = "top-rated"
)

// order maps the policy to an ORDER BY expression for the movie query.
func (p CollectionPolicy) order() string {
	if p == CollectionTopRated {
		return "movies.rating DESC"
	}
	return "movies.created_at DESC"
}

// UpdateGenreInput is the partial update payload for a genre.
type UpdateGenreInput struct {
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
}

// GenreService provides genre reads, administrative writes, and the
// collection aggregation.
type GenreService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Policy selects the representative movie for collections; the zero
	// value behaves as CollectionNewest.
	Policy CollectionPolicy
}

// NewGenreService constructs a GenreService with the newest-movie policy.
func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{DB: db, Policy: CollectionNewest}
}

// GetAll returns genres filtered by an optional search term over name,
// slug, and description, newest first. Pages are 1-based; perPage <= 0
// returns the whole result set.
func (s *GenreService) GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Genre, error) {
	return repo.ListGenres(ctx, s.DB, search.Genres(term), pageOffset(page, perPage), perPage)
}

// BySlug returns the genre with the given slug, or ErrGenreNotFound.
func (s *GenreService) BySlug(ctx context.Context, slug string) (*domain.Genre, error) {
	g, err := repo.FindGenreBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

// ByID returns the genre with the given id, or ErrGenreNotFound.
func (s *GenreService) ByID(ctx context.Context, id string) (*domain.Genre, error) {
	g, err := repo.FindGenreByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

// GetCollections derives one collection summary per genre. A genre with no
// movies stays in the list with a nil image — absence of a representative
// movie is a display detail, never an error.
func (s *GenreService) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	tr := otel.Tracer("services/GenreService")
	ctx, span := tr.Start(ctx, "GetCollections",
		trace.WithAttributes(attribute.String("policy", string(s.policy()))),
	)
	defer span.End()

	genres, err := s.GetAll(ctx, "", 1, 0)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Collection, 0, len(genres))
	for _, g := range genres {
		c := domain.Collection{
			ID:    g.ID,
			Slug:  g.Slug,
			Title: g.Name,
		}
		rep, err := repo.RepresentativeMovie(ctx, s.DB, g.ID, s.policy().order())
		switch {
		case err == nil:
			if rep.BigPoster != "" {
				img := rep.BigPoster
				c.Image = &img
			}
		case errors.Is(err, repo.ErrNotFound):
			// movieless genre: keep the entry, leave Image nil
		default:
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Create inserts an empty draft genre and returns its id.
func (s *GenreService) Create(ctx context.Context) (string, error) {
	g, err := repo.CreateGenre(ctx, s.DB)
	if err != nil {
		return "", err
	}
	return g.ID, nil
}

// Update applies a partial update, or ErrGenreNotFound.
func (s *GenreService) Update(ctx context.Context, id string, in UpdateGenreInput) (*domain.Genre, error) {
	fields := make(map[string]any, 4)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Slug != nil {
		fields["slug"] = *in.Slug
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Icon != nil {
		fields["icon"] = *in.Icon
	}

	g, err := repo.UpdateGenre(ctx, s.DB, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

// Delete removes a genre and returns the removed entity, or
// ErrGenreNotFound. Movies referencing the genre are left alone; their
// dangling references are filtered at read time.
func (s *GenreService) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	g, err := repo.DeleteGenre(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *GenreService) policy() CollectionPolicy {
	if s.Policy == "" {
		return CollectionNewest
	}
	return s.Policy
}
