package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/search"
)

func newRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA foreign_keys=ON;")
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedMovie(t *testing.T, db *gorm.DB, m domain.Movie) domain.Movie {
	t.Helper()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed movie %s: %v", m.Slug, err)
	}
	return m
}

func TestCreateMovie_DraftHasPlaceholderSlugAndPendingLatch(t *testing.T) {
	db := newRepoDB(t)

	m, err := CreateMovie(context.Background(), db)
	if err != nil {
		t.Fatalf("CreateMovie: %v", err)
	}
	if m.ID == "" || m.Slug == "" {
		t.Fatalf("draft missing identity: %+v", m)
	}
	if m.Notified {
		t.Fatalf("draft must start PENDING")
	}

	// A second draft must not collide on the unique slug index.
	if _, err := CreateMovie(context.Background(), db); err != nil {
		t.Fatalf("second draft: %v", err)
	}
}

func TestListMovies_OrderNewestFirst_AndProjection(t *testing.T) {
	db := newRepoDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	seedMovie(t, db, domain.Movie{Slug: "oldest", Title: "Oldest", CreatedAt: base})
	seedMovie(t, db, domain.Movie{Slug: "middle", Title: "Middle", CreatedAt: base.Add(time.Hour)})
	seedMovie(t, db, domain.Movie{Slug: "newest", Title: "Newest", CreatedAt: base.Add(2 * time.Hour)})

	list, err := ListMovies(context.Background(), db, search.Movies(""), 0, 0)
	if err != nil {
		t.Fatalf("ListMovies: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(list))
	}
	if list[0].Slug != "newest" || list[2].Slug != "oldest" {
		t.Fatalf("wrong order: %s, %s, %s", list[0].Slug, list[1].Slug, list[2].Slug)
	}
	// updated_at is projected away on list reads.
	if !list[0].UpdatedAt.IsZero() {
		t.Fatalf("updated_at should be excluded from list projection")
	}
}

func TestListMovies_OffsetAndLimitPageTheCatalog(t *testing.T) {
	db := newRepoDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, slug := range []string{"first", "second", "third", "fourth"} {
		seedMovie(t, db, domain.Movie{Slug: slug, Title: slug, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	page, err := ListMovies(context.Background(), db, search.Movies(""), 1, 2)
	if err != nil {
		t.Fatalf("ListMovies page: %v", err)
	}
	// Newest-first ordering with offset 1 skips "fourth".
	if len(page) != 2 || page[0].Slug != "third" || page[1].Slug != "second" {
		t.Fatalf("wrong page: %+v", page)
	}

	// Non-positive offset/limit return the whole catalog.
	all, err := ListMovies(context.Background(), db, search.Movies(""), 0, 0)
	if err != nil || len(all) != 4 {
		t.Fatalf("unpaged read: %d movies, %v", len(all), err)
	}
}

func TestListMovies_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := newRepoDB(t)
	seedMovie(t, db, domain.Movie{Slug: "matrix-reloaded", Title: "The Matrix Reloaded"})
	seedMovie(t, db, domain.Movie{Slug: "alien", Title: "Alien"})

	lower, err := ListMovies(context.Background(), db, search.Movies("matrix"), 0, 0)
	if err != nil {
		t.Fatalf("search lower: %v", err)
	}
	upper, err := ListMovies(context.Background(), db, search.Movies("MATRIX"), 0, 0)
	if err != nil {
		t.Fatalf("search upper: %v", err)
	}
	if len(lower) != 1 || len(upper) != 1 || lower[0].ID != upper[0].ID {
		t.Fatalf("case-insensitive search broken: lower=%d upper=%d", len(lower), len(upper))
	}

	if hits, _ := ListMovies(context.Background(), db, search.Movies("trix rel"), 0, 0); len(hits) != 1 {
		t.Fatalf("interior substring should match, got %d hits", len(hits))
	}
	if hits, _ := ListMovies(context.Background(), db, search.Movies("xyz123"), 0, 0); len(hits) != 0 {
		t.Fatalf("expected no hits for xyz123")
	}
}

func TestFindMovieBySlug_PopulatesReferences(t *testing.T) {
	db := newRepoDB(t)
	g := domain.Genre{ID: "g1", Slug: "sci-fi", Name: "Sci-Fi"}
	a := domain.Actor{ID: "a1", Slug: "lead", Name: "Lead"}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	seedMovie(t, db, domain.Movie{Slug: "dune", Title: "Dune", Genres: []domain.Genre{g}, Actors: []domain.Actor{a}})

	m, err := FindMovieBySlug(context.Background(), db, "dune")
	if err != nil {
		t.Fatalf("FindMovieBySlug: %v", err)
	}
	if len(m.Genres) != 1 || m.Genres[0].Slug != "sci-fi" {
		t.Fatalf("genres not populated: %+v", m.Genres)
	}
	if len(m.Actors) != 1 || m.Actors[0].Slug != "lead" {
		t.Fatalf("actors not populated: %+v", m.Actors)
	}

	if _, err := FindMovieBySlug(context.Background(), db, "does-not-exist"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindMoviesByGenres_IntersectionAndOrder(t *testing.T) {
	db := newRepoDB(t)
	g1 := domain.Genre{ID: "g1", Slug: "action", Name: "Action"}
	g2 := domain.Genre{ID: "g2", Slug: "drama", Name: "Drama"}
	if err := db.Create(&g1).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&g2).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedMovie(t, db, domain.Movie{Slug: "old-action", Title: "Old Action", Genres: []domain.Genre{g1}, CreatedAt: base})
	seedMovie(t, db, domain.Movie{Slug: "new-both", Title: "New Both", Genres: []domain.Genre{g1, g2}, CreatedAt: base.Add(time.Hour)})
	seedMovie(t, db, domain.Movie{Slug: "unrelated", Title: "Unrelated", CreatedAt: base.Add(2 * time.Hour)})

	got, err := FindMoviesByGenres(context.Background(), db, []string{"g1", "g2"})
	if err != nil {
		t.Fatalf("FindMoviesByGenres: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(got))
	}
	// Movie in both genres appears once, and newest comes first.
	if got[0].Slug != "new-both" || got[1].Slug != "old-action" {
		t.Fatalf("wrong order/dedup: %s, %s", got[0].Slug, got[1].Slug)
	}

	empty, err := FindMoviesByGenres(context.Background(), db, []string{"missing"})
	if err != nil {
		t.Fatalf("empty lookup must not error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %d", len(empty))
	}
}

func TestRepresentativeMovie_PolicyOrdering(t *testing.T) {
	db := newRepoDB(t)
	g := domain.Genre{ID: "g1", Slug: "horror", Name: "Horror"}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	seedMovie(t, db, domain.Movie{Slug: "older-better", Title: "Older Better", Rating: 9.1, Genres: []domain.Genre{g}, CreatedAt: base})
	seedMovie(t, db, domain.Movie{Slug: "newer-worse", Title: "Newer Worse", Rating: 5.0, Genres: []domain.Genre{g}, CreatedAt: base.Add(time.Hour)})

	newest, err := RepresentativeMovie(context.Background(), db, "g1", "movies.created_at DESC")
	if err != nil {
		t.Fatalf("newest: %v", err)
	}
	if newest.Slug != "newer-worse" {
		t.Fatalf("newest policy picked %s", newest.Slug)
	}

	top, err := RepresentativeMovie(context.Background(), db, "g1", "movies.rating DESC")
	if err != nil {
		t.Fatalf("top rated: %v", err)
	}
	if top.Slug != "older-better" {
		t.Fatalf("top-rated policy picked %s", top.Slug)
	}

	if _, err := RepresentativeMovie(context.Background(), db, "empty-genre", "movies.created_at DESC"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for movieless genre, got %v", err)
	}
}

func TestListMostPopular_FiltersAndSorts(t *testing.T) {
	db := newRepoDB(t)
	seedMovie(t, db, domain.Movie{Slug: "unseen", Title: "Unseen", CountOpened: 0})
	seedMovie(t, db, domain.Movie{Slug: "hit", Title: "Hit", CountOpened: 42})
	seedMovie(t, db, domain.Movie{Slug: "niche", Title: "Niche", CountOpened: 3})

	got, err := ListMostPopular(context.Background(), db)
	if err != nil {
		t.Fatalf("ListMostPopular: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("movies with zero views must be excluded, got %d", len(got))
	}
	if got[0].Slug != "hit" || got[1].Slug != "niche" {
		t.Fatalf("wrong popularity order: %s, %s", got[0].Slug, got[1].Slug)
	}
}

func TestIncrementCountOpened_MonotonicCounter(t *testing.T) {
	db := newRepoDB(t)
	seedMovie(t, db, domain.Movie{Slug: "counted", Title: "Counted", CountOpened: 5})

	var last int64
	for i := 0; i < 3; i++ {
		m, err := IncrementCountOpened(context.Background(), db, "counted")
		if err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
		last = m.CountOpened
	}
	if last != 8 {
		t.Fatalf("counter = %d; want initial 5 + 3 calls = 8", last)
	}

	if _, err := IncrementCountOpened(context.Background(), db, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateRating_StoresExactValue_NoClamp(t *testing.T) {
	db := newRepoDB(t)
	m := seedMovie(t, db, domain.Movie{Slug: "rated", Title: "Rated", Rating: 4})

	// Out-of-range values are a caller contract violation; the store keeps
	// exactly what it is given.
	got, err := UpdateRating(context.Background(), db, m.ID, 11)
	if err != nil {
		t.Fatalf("UpdateRating: %v", err)
	}
	if got.Rating != 11 {
		t.Fatalf("rating = %v; want exactly 11 (no clamping)", got.Rating)
	}

	if _, err := UpdateRating(context.Background(), db, "missing", 5); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplyMovieUpdate_CASSetsLatchOnce(t *testing.T) {
	db := newRepoDB(t)
	m := seedMovie(t, db, domain.Movie{Slug: "pending", Title: "Pending"})

	// First conditional update wins the CAS and flips the latch.
	got, flagSet, err := ApplyMovieUpdate(context.Background(), db, m.ID,
		map[string]any{"title": "Published"}, nil, nil, true)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if !flagSet || !got.Notified || got.Title != "Published" {
		t.Fatalf("first update: flagSet=%v movie=%+v", flagSet, got)
	}

	// Second conditional update must NOT report the flag as newly set, but
	// still applies the fields.
	got, flagSet, err = ApplyMovieUpdate(context.Background(), db, m.ID,
		map[string]any{"title": "Republished"}, nil, nil, true)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if flagSet {
		t.Fatalf("latch reported as set twice")
	}
	if !got.Notified || got.Title != "Republished" {
		t.Fatalf("second update lost fields or reverted latch: %+v", got)
	}
}

func TestApplyMovieUpdate_ReplacesReferenceSets(t *testing.T) {
	db := newRepoDB(t)
	g1 := domain.Genre{ID: "g1", Slug: "one", Name: "One"}
	g2 := domain.Genre{ID: "g2", Slug: "two", Name: "Two"}
	for _, g := range []domain.Genre{g1, g2} {
		if err := db.Create(&g).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	m := seedMovie(t, db, domain.Movie{Slug: "refs", Title: "Refs", Genres: []domain.Genre{g1}})

	got, _, err := ApplyMovieUpdate(context.Background(), db, m.ID,
		map[string]any{"title": "Refs"}, nil, []string{"g2"}, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Genres) != 1 || got.Genres[0].ID != "g2" {
		t.Fatalf("genre set not replaced: %+v", got.Genres)
	}

	// nil leaves the set untouched.
	got, _, err = ApplyMovieUpdate(context.Background(), db, m.ID,
		map[string]any{"title": "Refs"}, nil, nil, false)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(got.Genres) != 1 || got.Genres[0].ID != "g2" {
		t.Fatalf("nil genre list must not clear references: %+v", got.Genres)
	}

	if _, _, err := ApplyMovieUpdate(context.Background(), db, "missing",
		map[string]any{"title": "x"}, nil, nil, false); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteMovie_ReturnsRemovedEntity(t *testing.T) {
	db := newRepoDB(t)
	g := domain.Genre{ID: "g1", Slug: "kept", Name: "Kept"}
	if err := db.Create(&g).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	m := seedMovie(t, db, domain.Movie{Slug: "doomed", Title: "Doomed", Genres: []domain.Genre{g}})

	removed, err := DeleteMovie(context.Background(), db, m.ID)
	if err != nil {
		t.Fatalf("DeleteMovie: %v", err)
	}
	if removed.Slug != "doomed" {
		t.Fatalf("wrong entity returned: %+v", removed)
	}
	if _, err := FindMovieByID(context.Background(), db, m.ID); err != ErrNotFound {
		t.Fatalf("movie should be gone, got %v", err)
	}
	// Referenced genre survives (no cascade into referenced entities).
	if _, err := FindGenreByID(context.Background(), db, "g1"); err != nil {
		t.Fatalf("genre must survive movie deletion: %v", err)
	}

	if _, err := DeleteMovie(context.Background(), db, m.ID); err != ErrNotFound {
		t.Fatalf("double delete should be ErrNotFound, got %v", err)
	}
}
