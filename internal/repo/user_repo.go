// Repository functions for the User model. Users live in a separate bounded
// context; the catalog only reads IsAdmin for authorization and manages the
// favorites reference set.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
)

// CreateUser inserts a user row. passwordHash is stored opaquely; hashing is
// the caller's concern.
func CreateUser(ctx context.Context, db *gorm.DB, email, passwordHash string, isAdmin bool) (*domain.User, error) {
	u := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// FindUserByID fetches a user by primary key, or ErrNotFound.
func FindUserByID(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("id = ?", id).Take(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser applies a partial field update, or ErrNotFound.
func UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*domain.User, error) {
	res := db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return FindUserByID(ctx, db, id)
}

// ToggleFavorite adds movieID to the user's favorites if absent, removes it
// if present, and reports whether the movie is a favorite afterwards.
func ToggleFavorite(ctx context.Context, db *gorm.DB, userID, movieID string) (bool, error) {
	nowFavorite := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Table("user_favorites").
			Where("user_id = ? AND movie_id = ?", userID, movieID).
			Count(&n).Error; err != nil {
			return err
		}
		assoc := tx.Model(&domain.User{ID: userID}).Association("Favorites")
		if n > 0 {
			return assoc.Delete(&domain.Movie{ID: movieID})
		}
		nowFavorite = true
		return assoc.Append(&domain.Movie{ID: movieID})
	})
	if err != nil {
		return false, err
	}
	return nowFavorite, nil
}

// ListFavorites returns the user's favorite movies with genres populated,
// newest favorites last (insertion order of the join table is not
// guaranteed, so creation time descending is applied for determinism).
func ListFavorites(ctx context.Context, db *gorm.DB, userID string) ([]domain.Movie, error) {
	var out []domain.Movie
	err := db.WithContext(ctx).
		Select("movies.*").
		Joins("JOIN user_favorites uf ON uf.movie_id = movies.id").
		Where("uf.user_id = ?", userID).
		Order("movies.created_at DESC").
		Preload("Genres").
		Find(&out).Error
	return out, err
}
