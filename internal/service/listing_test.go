package service

import (
	"context"
	"errors"
	"testing"

	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/model"
)

func newListingService() (*ListingService, *fakeListingRepo) {
	listings := newFakeListingRepo()
	requests := newFakeRequestRepo(listings)
	svc := NewListingService(listings, requests, &fakeMessageRepo{}, &fakeReviewRepo{})
	return svc, listings
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr.Status
}

func TestCreateListingNormalizesRole(t *testing.T) {
	svc, _ := newListingService()

	listing, err := svc.Create(context.Background(), "user_1", "  Traveler ", ListingInput{
		FromCity: "Paris",
		ToCity:   "Lagos",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if listing.Role != model.RoleTraveler {
		t.Errorf("role = %q, want %q", listing.Role, model.RoleTraveler)
	}
	if listing.Status != model.ListingOpen {
		t.Errorf("status = %q, want %q", listing.Status, model.ListingOpen)
	}
	if listing.IsActive != 1 {
		t.Errorf("is_active = %d, want 1", listing.IsActive)
	}
	if listing.Currency != "USD" {
		t.Errorf("currency = %q, want USD default", listing.Currency)
	}
}

func TestCreateListingRejectsUnknownRole(t *testing.T) {
	svc, _ := newListingService()

	_, err := svc.Create(context.Background(), "user_1", "pilot", ListingInput{})
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400", status)
	}
}

func TestCreateListingCoercesNumericStrings(t *testing.T) {
	svc, _ := newListingService()

	listing, err := svc.Create(context.Background(), "user_1", "sender", ListingInput{
		WeightKg:     "12.5",
		RewardAmount: 30,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if listing.WeightKg != 12.5 {
		t.Errorf("weight = %v, want 12.5", listing.WeightKg)
	}
	if listing.RewardAmount != 30 {
		t.Errorf("reward = %v, want 30", listing.RewardAmount)
	}
}

func TestUpdateListingMergesFields(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user_1", "traveler", ListingInput{
		FromCity:    "Paris",
		ToCity:      "Lagos",
		Description: "two free kilos",
		WeightKg:    2,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, "user_1", false, created.ID, ListingInput{
		ToCity:   "Abuja",
		WeightKg: "not a number",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.ToCity != "Abuja" {
		t.Errorf("to_city = %q, want Abuja", updated.ToCity)
	}
	if updated.FromCity != "Paris" {
		t.Errorf("from_city = %q, want unchanged Paris", updated.FromCity)
	}
	if updated.Description != "two free kilos" {
		t.Errorf("description = %q, want unchanged", updated.Description)
	}
	if updated.WeightKg != 2 {
		t.Errorf("weight = %v, want unchanged 2 for non-numeric input", updated.WeightKg)
	}
}

func TestUpdateListingReplacesExtra(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "user_1", "traveler", ListingInput{
		Extra: map[string]any{"old": true, "keepme": 1},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, "user_1", false, created.ID, ListingInput{
		Extra: map[string]any{"new": true},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, ok := updated.Extra["old"]; ok {
		t.Error("extra payload should be fully replaced, old key survived")
	}
	if _, ok := updated.Extra["new"]; !ok {
		t.Error("extra payload missing new key")
	}
}

func TestUpdateListingForbiddenForNonOwner(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "user_1", "traveler", ListingInput{})

	_, err := svc.Update(ctx, "user_2", false, created.ID, ListingInput{ToCity: "Abuja"})
	if status := httpStatus(t, err); status != 403 {
		t.Errorf("status = %d, want 403", status)
	}

	// Admin may update someone else's listing.
	if _, err := svc.Update(ctx, "user_2", true, created.ID, ListingInput{ToCity: "Abuja"}); err != nil {
		t.Errorf("admin Update() error = %v", err)
	}
}

func TestDeleteListingHidesFromReads(t *testing.T) {
	svc, _ := newListingService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "user_1", "traveler", ListingInput{})

	if err := svc.Delete(ctx, "user_1", false, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Get(ctx, created.ID); httpStatus(t, err) != 404 {
		t.Error("soft-deleted listing should be 404 on detail")
	}

	listings, err := svc.List(ctx, model.ListingFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("List() returned %d listings, want 0 after soft delete", len(listings))
	}
}

func TestTransitionListing(t *testing.T) {
	svc, repo := newListingService()
	ctx := context.Background()

	created, _ := svc.Create(ctx, "user_1", "traveler", ListingInput{})
	repo.listings[created.ID].Status = model.ListingMatched

	listing, err := svc.Transition(ctx, "user_1", false, created.ID, "in_transit")
	if err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if listing.Status != model.ListingInTransit {
		t.Errorf("status = %q, want in_transit", listing.Status)
	}

	// Backwards moves are rejected.
	_, err = svc.Transition(ctx, "user_1", false, created.ID, "open")
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400 for backwards transition", status)
	}
}

func TestGetListingAggregates(t *testing.T) {
	listings := newFakeListingRepo()
	requests := newFakeRequestRepo(listings)
	messages := &fakeMessageRepo{}
	reviews := &fakeReviewRepo{}
	svc := NewListingService(listings, requests, messages, reviews)
	ctx := context.Background()

	created, _ := svc.Create(ctx, "user_1", "traveler", ListingInput{})

	requests.Create(ctx, created.ID, "user_2")
	requests.Create(ctx, created.ID, "user_3")
	messages.Create(ctx, created.ID, "user_2", "hello")
	reviews.Create(ctx, &model.Review{ListingID: created.ID, Rating: 4})
	reviews.Create(ctx, &model.Review{ListingID: created.ID, Rating: 2})

	detail, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if detail.RequestCount != 2 {
		t.Errorf("request_count = %d, want 2", detail.RequestCount)
	}
	if len(detail.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(detail.Messages))
	}
	if detail.Rating.Count != 2 || detail.Rating.Average != 3 {
		t.Errorf("rating = %+v, want count 2 average 3", detail.Rating)
	}
}
