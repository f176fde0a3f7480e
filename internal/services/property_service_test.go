package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "hypergo-properties/internal/errors"
	"hypergo-properties/internal/models"
	"hypergo-properties/pkg/cache"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateAssignsIncreasingPublicIDs(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	fixed := time.UnixMilli(1_700_000_000_000)
	env.listings.now = func() time.Time { return fixed }
	ctx := context.Background()

	a, err := env.listings.Create(ctx, owner.ID, validInput())
	if err != nil {
		t.Fatal(err)
	}
	b, err := env.listings.Create(ctx, owner.ID, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if a.PropertyID != "PROP1700000000000" || b.PropertyID != "PROP1700000000001" {
		t.Fatalf("ids = %s, %s", a.PropertyID, b.PropertyID)
	}
	if a.Owner == nil || a.Owner.ID != owner.ID {
		t.Errorf("owner not populated on create")
	}
	if a.AvailableFrom.Format("2006-01-02") != "2025-07-01" {
		t.Errorf("availableFrom = %v", a.AvailableFrom)
	}
}

func TestCreateSkipsTakenPublicID(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	fixed := time.UnixMilli(1_700_000_000_000)
	env.listings.now = func() time.Time { return fixed }
	env.seed("PROP1700000000000", owner.ID, nil)

	p, err := env.listings.Create(context.Background(), owner.ID, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.PropertyID != "PROP1700000000001" {
		t.Fatalf("id = %s", p.PropertyID)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	env := newTestEnv(nil)
	in := validInput()
	in.Title = ""
	in.Type = "Castle"

	_, err := env.listings.Create(context.Background(), primitive.NewObjectID(), in)
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Kind != apperrors.KindValidation || len(appErr.Details) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
}

func TestGetByEitherIdentifier(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	seeded := env.seed("PROP1001", owner.ID, nil)
	ctx := context.Background()

	a, err := env.listings.Get(ctx, "PROP1001")
	if err != nil {
		t.Fatal(err)
	}
	b, err := env.listings.Get(ctx, seeded.ID.Hex())
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != b.ID || a.Owner == nil || a.Owner.Email != "asha@example.com" {
		t.Fatalf("unexpected records: %+v %+v", a, b)
	}
	if _, err := env.listings.Get(ctx, "UNKNOWN"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestUpdateAndDeleteRequireOwner(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	intruder := env.user("ravi")
	env.seed("PROP1001", owner.ID, nil)
	ctx := context.Background()
	title := "Taken over"

	if _, err := env.listings.Update(ctx, intruder.ID, "PROP1001", &models.PropertyPatch{Title: &title}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("Update by non-owner: %v", err)
	}
	if err := env.listings.Delete(ctx, intruder.ID, "PROP1001"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("Delete by non-owner: %v", err)
	}

	updated, err := env.listings.Update(ctx, owner.ID, "PROP1001", &models.PropertyPatch{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Title != title || updated.PropertyID != "PROP1001" {
		t.Fatalf("update not applied: %+v", updated.Property)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("updatedAt not advanced")
	}
}

func TestUpdateRejectsInvalidPatch(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	env.seed("PROP1001", owner.ID, nil)
	bad := "purple"

	_, err := env.listings.Update(context.Background(), owner.ID, "PROP1001", &models.PropertyPatch{ColorTheme: &bad})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	env := newTestEnv(nil)
	owner := env.user("asha")
	fan := env.user("ravi")
	p := env.seed("PROP1001", owner.ID, nil)
	ctx := context.Background()

	if _, err := env.favoriteSvc.Add(ctx, fan.ID, "PROP1001"); err != nil {
		t.Fatal(err)
	}
	if _, err := env.recommendations.Create(ctx, owner.ID, "PROP1001", &models.RecommendRequest{RecipientEmail: fan.Email}); err != nil {
		t.Fatal(err)
	}
	// Warm the caches that reference the listing.
	if check, _, _ := env.favoriteSvc.Check(ctx, fan.ID, "PROP1001"); !check.IsFavorite {
		t.Fatal("expected favorite before delete")
	}
	_, _, _ = env.favoriteSvc.List(ctx, fan.ID)
	_, _, _ = env.recommendations.Received(ctx, fan.ID)

	if err := env.listings.Delete(ctx, owner.ID, "PROP1001"); err != nil {
		t.Fatal(err)
	}

	favs, cached, _ := env.favoriteSvc.List(ctx, fan.ID)
	if cached || len(favs) != 0 {
		t.Fatalf("favorites after delete: cached=%v len=%d", cached, len(favs))
	}
	recs, cached, _ := env.recommendations.Received(ctx, fan.ID)
	if cached || len(recs) != 0 {
		t.Fatalf("recommendations after delete: cached=%v len=%d", cached, len(recs))
	}
	if _, ok := env.store.Get(ctx, cache.FavoriteCheckKey(fan.ID.Hex(), p.ID.Hex())); ok {
		t.Fatal("favorite flag survived listing delete")
	}
	if _, err := env.listings.Get(ctx, "PROP1001"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("listing still resolvable: %v", err)
	}
}

func TestApplyPatchLeavesNilFieldsAlone(t *testing.T) {
	p := &models.Property{Title: "Old", City: "Pune", Bedrooms: 2}
	city := " Mumbai "
	beds := 0
	applyPatch(p, &models.PropertyPatch{City: &city, Bedrooms: &beds})

	if p.Title != "Old" || p.City != "Mumbai" || p.Bedrooms != 0 {
		t.Fatalf("patched = %+v", p)
	}
}
