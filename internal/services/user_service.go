// Package services – UserService
//
// Users are a separate bounded context; the catalog only needs profile
// reads, profile updates (with email validation and bcrypt hashing), the
// IsAdmin flag, and the favorites reference set. Token issuance and login
// live outside this service.
package services

import (
	"context"
	"errors"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/repo"
)

// UpdateProfileInput is the partial update payload for a user profile.
// A non-nil Password is hashed before storage; IsAdmin changes are expected
// to come only from admin-guarded routes.
type UpdateProfileInput struct {
	Email    *string
	Password *string
	IsAdmin  *bool
}

// UserService implements profile and favorites use-cases.
type UserService struct {
	DB *gorm.DB

	// BcryptCost overrides the hashing cost; zero means bcrypt.DefaultCost.
	BcryptCost int
}

// NewUserService constructs a UserService with default hashing cost.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Profile returns the user with the given id, or ErrUserNotFound.
func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	u, err := repo.FindUserByID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile applies a partial profile update. Emails are validated at
// this boundary (ErrInvalidEmail); passwords are bcrypt-hashed; an empty
// password pointer value is ignored rather than hashed.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error) {
	fields := make(map[string]any, 3)
	if in.Email != nil {
		addr, err := mail.ParseAddress(*in.Email)
		if err != nil || addr.Address != *in.Email {
			return nil, ErrInvalidEmail
		}
		fields["email"] = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		cost := s.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), cost)
		if err != nil {
			return nil, err
		}
		fields["password"] = string(hash)
	}
	if in.IsAdmin != nil {
		fields["is_admin"] = *in.IsAdmin
	}

	u, err := repo.UpdateUser(ctx, s.DB, id, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// IsAdmin reports whether the user exists and carries the admin flag.
func (s *UserService) IsAdmin(ctx context.Context, id string) (bool, error) {
	u, err := s.Profile(ctx, id)
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}

// ToggleFavorite adds or removes a movie from the user's favorites and
// reports whether it is a favorite afterwards. Both the user and the movie
// must exist.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	if _, err := repo.FindUserByID(ctx, s.DB, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if _, err := repo.FindMovieByID(ctx, s.DB, movieID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, ErrMovieNotFound
		}
		return false, err
	}
	return repo.ToggleFavorite(ctx, s.DB, userID, movieID)
}

// Favorites returns the user's favorite movies with genres populated.
func (s *UserService) Favorites(ctx context.Context, userID string) ([]domain.Movie, error) {
	if _, err := repo.FindUserByID(ctx, s.DB, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return repo.ListFavorites(ctx, s.DB, userID)
}
