// Repository functions for the Actor model. Same conventions as the movie
// and genre repositories.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/search"
)

const actorListColumns = "id, slug, name, photo, created_at"

// ListActors returns actors matching the search scope, newest first.
// offset <= 0 starts at the first row; limit <= 0 disables the page cap.
func ListActors(ctx context.Context, db *gorm.DB, scope search.Scope, offset, limit int) ([]domain.Actor, error) {
	var out []domain.Actor
	q := db.WithContext(ctx).
		Select(actorListColumns).
		Scopes(scope.Apply).
		Order("created_at DESC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// FindActorBySlug fetches an actor by slug, or ErrNotFound.
func FindActorBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Actor, error) {
	var a domain.Actor
	err := db.WithContext(ctx).Where("slug = ?", slug).Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindActorByID fetches an actor by primary key, or ErrNotFound.
func FindActorByID(ctx context.Context, db *gorm.DB, id string) (*domain.Actor, error) {
	var a domain.Actor
	err := db.WithContext(ctx).Where("id = ?", id).Take(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateActor inserts an empty draft actor with a placeholder slug.
func CreateActor(ctx context.Context, db *gorm.DB) (*domain.Actor, error) {
	id := uuid.NewString()
	a := &domain.Actor{
		ID:        id,
		Slug:      "draft-" + id[:8],
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateActor applies a partial field update, or ErrNotFound.
func UpdateActor(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.Actor, error) {
	res := db.WithContext(ctx).
		Model(&domain.Actor{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return FindActorByID(ctx, db, id)
}

// DeleteActor removes an actor and returns the removed entity. Join rows on
// movies are tolerated as dangling and filtered at read time.
func DeleteActor(ctx context.Context, db *gorm.DB, id string) (*domain.Actor, error) {
	a, err := FindActorByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}
