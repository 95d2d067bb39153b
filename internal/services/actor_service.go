// Package services – ActorService. Mirrors the genre administrative shape
// for actor records.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/repo"
	"github.com/moovio/go-cinema-backend/internal/search"
)

// UpdateActorInput is the partial update payload for an actor.
type UpdateActorInput struct {
	Name  *string
	Slug  *string
	Photo *string
}

// ActorService provides actor reads and administrative writes.
type ActorService struct {
	DB *gorm.DB
}

// NewActorService constructs an ActorService.
func NewActorService(db *gorm.DB) *ActorService {
	return &ActorService{DB: db}
}

// GetAll returns actors filtered by an optional search term over name and
// slug, newest first. Pages are 1-based; perPage <= 0 returns the whole
// result set.
func (s *ActorService) GetAll(ctx context.Context, term string, page, perPage int) ([]domain.Actor, error) {
	return repo.ListActors(ctx, s.DB, search.Actors(term), pageOffset(page, perPage), perPage)
}

// BySlug returns the actor with the given slug, or ErrActorNotFound.
func (s *ActorService) BySlug(ctx context.Context, slug string) (*domain.Actor, error) {
	a, err := repo.FindActorBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return a, nil
}

// ByID returns the actor with the given id, or ErrActorNotFound.
func (s *ActorService) ByID(ctx context.Context, id string) (*domain.Actor, error) {
	a, err := repo.FindActorByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts an empty draft actor and returns its id.
func (s *ActorService) Create(ctx context.Context) (string, error) {
	a, err := repo.CreateActor(ctx, s.DB)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// Update applies a partial update, or ErrActorNotFound.
func (s *ActorService) Update(ctx context.Context, id string, in UpdateActorInput) (*domain.Actor, error) {
	fields := make(map[string]any, 3)
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Slug != nil {
		fields["slug"] = *in.Slug
	}
	if in.Photo != nil {
		fields["photo"] = *in.Photo
	}

	a, err := repo.UpdateActor(ctx, s.DB, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an actor and returns the removed entity, or
// ErrActorNotFound.
func (s *ActorService) Delete(ctx context.Context, id string) (*domain.Actor, error) {
	a, err := repo.DeleteActor(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return a, nil
}
