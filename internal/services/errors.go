// Package services defines the business logic for movies, genres, actors,
// and user profiles. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

var (
	// ErrMovieNotFound indicates that no movie matches the requested id,
	// slug, actor, or genre set.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrGenreNotFound indicates that the requested genre does not exist.
	ErrGenreNotFound = errors.New("genre not found")

	// ErrActorNotFound indicates that the requested actor does not exist.
	ErrActorNotFound = errors.New("actor not found")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotificationFailed is returned when the notification gateway
	// rejects or fails to deliver the first-publication notification. The
	// whole update is aborted: no field changes are persisted and the
	// notified latch stays false, so the operation is safe to retry.
	ErrNotificationFailed = errors.New("notification delivery failed")

	// ErrInvalidEmail is returned when a profile update carries a
	// malformed email address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrNoGenreIDs is returned when a by-genres lookup is called with an
	// empty id list.
	ErrNoGenreIDs = errors.New("at least one genre id is required")
)
