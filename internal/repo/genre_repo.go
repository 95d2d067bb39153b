// Package repo implements the catalog persistence layer, backed by GORM.
// This file provides repository functions for the Genre model. The surface
// mirrors the Movie repository: list reads are newest-first and omit
// updated_at, single-record reads return the full row, and absence is
// reported as ErrNotFound.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/search"
)

// genreListColumns is the default projection for genre list responses.
const genreListColumns = "id, slug, name, description, icon, created_at"

// ListGenres returns genres matching the search scope, newest first.
// offset <= 0 starts at the first row; limit <= 0 disables the page cap.
func ListGenres(ctx context.Context, db *gorm.DB, scope search.Scope, offset, limit int) ([]domain.Genre, error) {
	var out []domain.Genre
	q := db.WithContext(ctx).
		Select(genreListColumns).
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

// FindGenreBySlug fetches a genre by its public slug, or ErrNotFound.
func FindGenreBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Genre, error) {
	var g domain.Genre
	err := db.WithContext(ctx).Where("slug = ?", slug).Take(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// FindGenreByID fetches a genre by primary key, or ErrNotFound.
func FindGenreByID(ctx context.Context, db *gorm.DB, id string) (*domain.Genre, error) {
	var g domain.Genre
	err := db.WithContext(ctx).Where("id = ?", id).Take(&g).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateGenre inserts an empty draft genre with a placeholder slug and
// returns it.
func CreateGenre(ctx context.Context, db *gorm.DB) (*domain.Genre, error) {
	id := uuid.NewString()
	g := &domain.Genre{
		ID:        id,
		Slug:      "draft-" + id[:8],
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGenre applies a partial field update and returns the updated genre.
// Returns ErrNotFound when the genre does not exist.
func UpdateGenre(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.Genre, error) {
	res := db.WithContext(ctx).
		Model(&domain.Genre{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return FindGenreByID(ctx, db, id)
}

// DeleteGenre removes a genre and returns the removed entity. Movies that
// referenced it keep their join rows; reads filter the dangling reference
// out naturally because the preload finds no matching genre row.
func DeleteGenre(ctx context.Context, db *gorm.DB, id string) (*domain.Genre, error) {
	g, err := FindGenreByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Delete(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}
