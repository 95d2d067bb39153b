// Package repo implements the catalog persistence layer, backed by GORM.
// This file provides repository functions for the Movie model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a movie is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// List reads default to creation time descending and project away the
// internal updated_at column; single-record reads return the full row with
// actors and genres populated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/search"
)

// movieListColumns is the default projection for movie list responses:
// everything except internal bookkeeping (updated_at).
const movieListColumns = "id, slug, title, poster, big_poster, video_url, rating, count_opened, notified, created_at"

// ListMovies returns movies matching the search scope, newest first, with
// actors and genres populated. A blank scope returns the whole catalog.
// offset <= 0 starts at the first row; limit <= 0 disables the page cap.
func ListMovies(ctx context.Context, db *gorm.DB, scope search.Scope, offset, limit int) ([]domain.Movie, error) {
	var out []domain.Movie
	q := db.WithContext(ctx).
		Select(movieListColumns).
		Scopes(scope.Apply).
		Order("created_at DESC").
		Preload("Actors").
		Preload("Genres")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

// FindMovieBySlug fetches a single movie by its public slug with actors and
// genres populated. Returns ErrNotFound if no movie has the slug.
func FindMovieBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Movie, error) {
	var m domain.Movie
	err := db.WithContext(ctx).
		Preload("Actors").
		Preload("Genres").
		Where("slug = ?", slug).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMovieByID fetches a single movie by primary key with actors and genres
// populated. Returns ErrNotFound if missing.
func FindMovieByID(ctx context.Context, db *gorm.DB, id string) (*domain.Movie, error) {
	var m domain.Movie
	err := db.WithContext(ctx).
		Preload("Actors").
		Preload("Genres").
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMovieByActor returns the newest movie referencing actorID, or
// ErrNotFound when the actor appears in no movie.
func FindMovieByActor(ctx context.Context, db *gorm.DB, actorID string) (*domain.Movie, error) {
	var m domain.Movie
	err := db.WithContext(ctx).
		Select("movies.*").
		Joins("JOIN movie_actors ma ON ma.movie_id = movies.id").
		Where("ma.actor_id = ?", actorID).
		Order("movies.created_at DESC").
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindMoviesByGenres returns movies whose genre set intersects genreIDs,
// newest first, with genres populated. An empty result is returned as an
// empty slice, not an error; absence handling belongs to the caller.
func FindMoviesByGenres(ctx context.Context, db *gorm.DB, genreIDs []string) ([]domain.Movie, error) {
	var out []domain.Movie
	err := db.WithContext(ctx).
		Distinct("movies.*").
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id IN ?", genreIDs).
		Order("movies.created_at DESC").
		Preload("Genres").
		Find(&out).Error
	return out, err
}

// RepresentativeMovie returns the single movie that represents genreID in a
// collection, chosen by the given ORDER BY expression (for example
// "movies.created_at DESC"). Returns ErrNotFound when the genre has no
// movies.
func RepresentativeMovie(ctx context.Context, db *gorm.DB, genreID, order string) (*domain.Movie, error) {
	var m domain.Movie
	err := db.WithContext(ctx).
		Select("movies.*").
		Joins("JOIN movie_genres mg ON mg.movie_id = movies.id").
		Where("mg.genre_id = ?", genreID).
		Order(order).
		Take(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMostPopular returns movies that have been opened at least once,
// ordered by the view counter descending, with genres populated.
func ListMostPopular(ctx context.Context, db *gorm.DB) ([]domain.Movie, error) {
	var out []domain.Movie
	err := db.WithContext(ctx).
		Select(movieListColumns).
		Where("count_opened > 0").
		Order("count_opened DESC").
		Preload("Genres").
		Find(&out).Error
	return out, err
}

// CreateMovie inserts an empty draft movie and returns it. Drafts get a
// placeholder slug derived from the generated ID so the unique slug index
// holds until an admin edits the record.
func CreateMovie(ctx context.Context, db *gorm.DB) (*domain.Movie, error) {
	id := uuid.NewString()
	m := &domain.Movie{
		ID:        id,
		Slug:      "draft-" + id[:8],
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

// ApplyMovieUpdate applies a partial field update to a movie as one atomic
// document write, optionally flipping the notified latch in the same write.
//
// When markNotified is true, the update is a conditional compare-and-set:
// fields plus notified=true are written only if the row still has
// notified=false. If another writer flipped the flag first, the update
// degrades to a plain field write that leaves the flag alone, so the latch
// can never revert. The returned bool reports whether THIS call set the
// flag.
//
// actorIDs and genreIDs replace the reference sets when non-nil; nil leaves
// them untouched, an empty slice clears them.
//
// Returns ErrNotFound when no movie has the given id.
func ApplyMovieUpdate(ctx context.Context, db *gorm.DB, id string, fields map[string]any, actorIDs, genreIDs []string, markNotified bool) (*domain.Movie, bool, error) {
	flagSet := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if markNotified {
			cas := make(map[string]any, len(fields)+1)
			for k, v := range fields {
				cas[k] = v
			}
			cas["notified"] = true
			res := tx.Model(&domain.Movie{}).
				Where("id = ? AND notified = ?", id, false).
				Updates(cas)
			if res.Error != nil {
				return res.Error
			}
			flagSet = res.RowsAffected > 0
		}
		if !flagSet && len(fields) > 0 {
			// Either the latch was already set or the CAS lost a race:
			// apply the requested fields without touching the flag.
			res := tx.Model(&domain.Movie{}).
				Where("id = ?", id).
				Updates(fields)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if actorIDs != nil {
			actors := make([]domain.Actor, len(actorIDs))
			for i, aid := range actorIDs {
				actors[i] = domain.Actor{ID: aid}
			}
			if err := tx.Model(&domain.Movie{ID: id}).Association("Actors").Replace(actors); err != nil {
				return err
			}
		}
		if genreIDs != nil {
			genres := make([]domain.Genre, len(genreIDs))
			for i, gid := range genreIDs {
				genres[i] = domain.Genre{ID: gid}
			}
			if err := tx.Model(&domain.Movie{ID: id}).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	m, err := FindMovieByID(ctx, db, id)
	if err != nil {
		return nil, false, err
	}
	return m, flagSet, nil
}

// IncrementCountOpened bumps the view counter by one in a single atomic
// UPDATE, independent of any read-modify-write, and returns the updated
// movie. The counter bump deliberately skips the updated_at timestamp: a
// view is not a content change. Returns ErrNotFound for an unknown slug.
func IncrementCountOpened(ctx context.Context, db *gorm.DB, slug string) (*domain.Movie, error) {
	res := db.WithContext(ctx).
		Model(&domain.Movie{}).
		Where("slug = ?", slug).
		UpdateColumn("count_opened", gorm.Expr("count_opened + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return FindMovieBySlug(ctx, db, slug)
}

// UpdateRating stores exactly the given rating value. Range validation is a
// caller contract; no clamping happens here. Returns ErrNotFound when the
// movie does not exist.
func UpdateRating(ctx context.Context, db *gorm.DB, id string, value float64) (*domain.Movie, error) {
	res := db.WithContext(ctx).
		Model(&domain.Movie{}).
		Where("id = ?", id).
		Update("rating", value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return FindMovieByID(ctx, db, id)
}

// DeleteMovie removes a movie and its join rows, returning the removed
// entity. Referenced genres and actors are left untouched. Returns
// ErrNotFound when the movie does not exist.
func DeleteMovie(ctx context.Context, db *gorm.DB, id string) (*domain.Movie, error) {
	m, err := FindMovieByID(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Select(clause.Associations).Delete(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}
