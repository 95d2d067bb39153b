// Package domain defines the persistence models for the movie catalog:
// movies, genres, actors, and users. These types are mapped with GORM and
// form the core data layer of the application.
package domain

import (
	"time"
)

// Genre is a catalog category that movies reference. Genres do not own
// movies; the association lives on the Movie side only.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Slug: unique, human-readable identifier used for public lookups.
//   - Name / Description / Icon: display metadata.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Genre struct {
	ID          string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Slug        string    `json:"slug"        gorm:"type:varchar(255);uniqueIndex:ux_genres_slug"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null;default:''"`
	Description string    `json:"description" gorm:"type:text;not null;default:''"`
	Icon        string    `json:"icon"        gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName returns the database table name for Genre.
func (Genre) TableName() string { return "genres" }

// Actor is a person referenced by movies. Like genres, actors carry no
// back-pointer collection; reverse lookups are computed by query.
type Actor struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Slug      string    `json:"slug"       gorm:"type:varchar(255);uniqueIndex:ux_actors_slug"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null;default:''"`
	Photo     string    `json:"photo"      gorm:"type:varchar(512);not null;default:''"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the database table name for Actor.
func (Actor) TableName() string { return "actors" }

// Movie is the primary catalog entity.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), immutable.
//   - Slug: unique, human-readable identifier used for public lookups.
//   - Title: display string; the only movie field covered by search.
//   - Poster / BigPoster / VideoURL: opaque resource locators.
//   - Actors / Genres: many-to-many reference sets; the movie side owns the
//     join rows, the referenced entities own nothing.
//   - Rating: numeric, semantically in [0, 10]; the range is a caller
//     contract, not enforced here.
//   - CountOpened: monotonically non-decreasing view counter.
//   - Notified: one-way latch; false until the first successfully notified
//     update, then true forever.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Movie struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	Slug        string    `json:"slug"         gorm:"type:varchar(255);uniqueIndex:ux_movies_slug"`
	Title       string    `json:"title"        gorm:"type:varchar(255);not null;default:'';index:idx_movies_title"`
	Poster      string    `json:"poster"       gorm:"type:varchar(512);not null;default:''"`
	BigPoster   string    `json:"big_poster"   gorm:"type:varchar(512);not null;default:''"`
	VideoURL    string    `json:"video_url"    gorm:"type:varchar(512);not null;default:''"`
	Rating      float64   `json:"rating"       gorm:"not null;default:0"`
	CountOpened int64     `json:"count_opened" gorm:"not null;default:0"`
	Notified    bool      `json:"notified"     gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"   gorm:"index:idx_movies_created"`
	UpdatedAt   time.Time `json:"-"`

	// Reference sets. Join rows are owned by the movie; deleting a genre or
	// actor leaves no back-pointer to clean up, and reads simply return the
	// surviving rows.
	Actors []Actor `json:"actors" gorm:"many2many:movie_actors"`
	Genres []Genre `json:"genres" gorm:"many2many:movie_genres"`
}

// TableName returns the database table name for Movie.
func (Movie) TableName() string { return "movies" }

// User is a separate bounded context consumed read-mostly by the catalog:
// admin routes check IsAdmin, and favorites reference movies. Credential
// issuance and verification happen outside this service; Password stores an
// opaque bcrypt hash.
type User struct {
	ID        string    `json:"id"       gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email"    gorm:"type:varchar(255);uniqueIndex:ux_users_email"`
	Password  string    `json:"-"        gorm:"type:varchar(255);not null;default:''"`
	IsAdmin   bool      `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Favorites []Movie `json:"favorites,omitempty" gorm:"many2many:user_favorites"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Collection is the derived display summary for a genre: its identity plus
// the big poster of a representative movie. Image is nil when no movie
// references the genre.
type Collection struct {
	ID    string  `json:"id"`
	Slug  string  `json:"slug"`
	Title string  `json:"title"`
	Image *string `json:"image,omitempty"`
}
