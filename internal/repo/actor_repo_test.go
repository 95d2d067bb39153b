package repo

import (
	"context"
	"testing"

	"github.com/moovio/go-cinema-backend/internal/domain"
	"github.com/moovio/go-cinema-backend/internal/search"
)

func TestActorLifecycle(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	a, err := CreateActor(ctx, db)
	if err != nil {
		t.Fatalf("CreateActor: %v", err)
	}

	upd, err := UpdateActor(ctx, db, a.ID, map[string]any{
		"name":  "Famous Person",
		"slug":  "famous-person",
		"photo": "/uploads/actors/famous.jpg",
	})
	if err != nil || upd.Slug != "famous-person" {
		t.Fatalf("UpdateActor: %+v, %v", upd, err)
	}

	if got, err := FindActorBySlug(ctx, db, "famous-person"); err != nil || got.ID != a.ID {
		t.Fatalf("FindActorBySlug: %+v, %v", got, err)
	}

	if got, err := ListActors(ctx, db, search.Actors("famous"), 0, 0); err != nil || len(got) != 1 {
		t.Fatalf("ListActors search: %+v, %v", got, err)
	}

	if _, err := DeleteActor(ctx, db, a.ID); err != nil {
		t.Fatalf("DeleteActor: %v", err)
	}
	if _, err := FindActorByID(ctx, db, a.ID); err != ErrNotFound {
		t.Fatalf("actor should be gone, got %v", err)
	}
}

func TestFindMovieByActor(t *testing.T) {
	db := newRepoDB(t)
	ctx := context.Background()

	a := domain.Actor{ID: "a1", Slug: "star", Name: "Star"}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	seedMovie(t, db, domain.Movie{Slug: "with-star", Title: "With Star", Actors: []domain.Actor{a}})

	got, err := FindMovieByActor(ctx, db, "a1")
	if err != nil || got.Slug != "with-star" {
		t.Fatalf("FindMovieByActor: %+v, %v", got, err)
	}

	if _, err := FindMovieByActor(ctx, db, "a-unknown"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
