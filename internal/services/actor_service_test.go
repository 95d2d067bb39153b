package services

import (
	"context"
	"errors"
	"testing"
)

func TestActorLifecycleAndSearch(t *testing.T) {
	db := newServiceDB(t)
	svc := NewActorService(db)
	ctx := context.Background()

	id, err := svc.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	a, err := svc.Update(ctx, id, UpdateActorInput{
		Name: strptr("Denis Villeneuve"),
		Slug: strptr("denis-villeneuve"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Name != "Denis Villeneuve" {
		t.Fatalf("update result: %+v", a)
	}

	hits, err := svc.GetAll(ctx, "VILLE", 1, 0)
	if err != nil || len(hits) != 1 {
		t.Fatalf("search: %d hits, %v", len(hits), err)
	}
	miss, err := svc.GetAll(ctx, "nolan", 1, 0)
	if err != nil || len(miss) != 0 {
		t.Fatalf("search miss: %d hits, %v", len(miss), err)
	}

	removed, err := svc.Delete(ctx, id)
	if err != nil || removed.ID != id {
		t.Fatalf("delete: %+v, %v", removed, err)
	}
	if _, err := svc.BySlug(ctx, "denis-villeneuve"); !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("expected ErrActorNotFound after delete, got %v", err)
	}
}

func TestActor_NotFoundMapping(t *testing.T) {
	db := newServiceDB(t)
	svc := NewActorService(db)
	ctx := context.Background()

	if _, err := svc.ByID(ctx, "missing"); !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("ByID: %v", err)
	}
	if _, err := svc.Update(ctx, "missing", UpdateActorInput{Name: strptr("x")}); !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrActorNotFound) {
		t.Fatalf("Delete: %v", err)
	}
}
