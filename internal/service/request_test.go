package service

import (
	"context"
	"testing"

	"github.com/androadel2014/carryon-backend/internal/model"
)

func newRequestFixture(t *testing.T) (*MatchRequestService, *fakeListingRepo, *model.Listing) {
	t.Helper()

	listings := newFakeListingRepo()
	requests := newFakeRequestRepo(listings)
	svc := NewMatchRequestService(requests, listings)

	listing, err := listings.Create(context.Background(), &model.Listing{
		UserID: "owner",
		Role:   model.RoleTraveler,
	})
	if err != nil {
		t.Fatalf("fixture listing: %v", err)
	}
	return svc, listings, listing
}

func TestCreateRequestRejectsOwnListing(t *testing.T) {
	svc, _, listing := newRequestFixture(t)

	_, err := svc.Create(context.Background(), "owner", listing.ID)
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400 for own listing", status)
	}
}

func TestCreateRequestRequiresOpenListing(t *testing.T) {
	svc, listings, listing := newRequestFixture(t)
	listings.listings[listing.ID].Status = model.ListingMatched

	_, err := svc.Create(context.Background(), "user_2", listing.ID)
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400 for non-open listing", status)
	}
}

func TestCreateRequestDuplicate(t *testing.T) {
	svc, _, listing := newRequestFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user_2", listing.ID); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(ctx, "user_2", listing.ID)
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400 for duplicate request", status)
	}
}

func TestCreateRequestRevivesCancelled(t *testing.T) {
	svc, _, listing := newRequestFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "user_2", listing.ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.requests.SetStatus(ctx, first.ID, model.RequestCancelled); err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}

	revived, err := svc.Create(ctx, "user_2", listing.ID)
	if err != nil {
		t.Fatalf("revive Create() error = %v", err)
	}

	if revived.ID != first.ID {
		t.Errorf("revived id = %d, want original id %d", revived.ID, first.ID)
	}
	if revived.Status != model.RequestPending {
		t.Errorf("revived status = %q, want pending", revived.Status)
	}
}

func TestAcceptRequestMatchesListing(t *testing.T) {
	svc, listings, listing := newRequestFixture(t)
	ctx := context.Background()

	request, err := svc.Create(ctx, "user_2", listing.ID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	accepted, err := svc.Accept(ctx, "owner", false, request.ID)
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	if accepted.Status != model.RequestAccepted {
		t.Errorf("request status = %q, want accepted", accepted.Status)
	}
	if got := listings.listings[listing.ID].Status; got != model.ListingMatched {
		t.Errorf("listing status = %q, want matched", got)
	}
}

func TestAcceptRequestForbiddenForNonOwner(t *testing.T) {
	svc, _, listing := newRequestFixture(t)
	ctx := context.Background()

	request, _ := svc.Create(ctx, "user_2", listing.ID)

	_, err := svc.Accept(ctx, "user_3", false, request.ID)
	if status := httpStatus(t, err); status != 403 {
		t.Errorf("status = %d, want 403", status)
	}

	// The requester themselves cannot accept either.
	_, err = svc.Accept(ctx, "user_2", false, request.ID)
	if status := httpStatus(t, err); status != 403 {
		t.Errorf("status = %d, want 403 for requester", status)
	}
}

func TestAcceptRequestRequiresPending(t *testing.T) {
	svc, _, listing := newRequestFixture(t)
	ctx := context.Background()

	request, _ := svc.Create(ctx, "user_2", listing.ID)
	if _, err := svc.Reject(ctx, "owner", false, request.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	_, err := svc.Accept(ctx, "owner", false, request.ID)
	if status := httpStatus(t, err); status != 400 {
		t.Errorf("status = %d, want 400 accepting a rejected request", status)
	}
}

func TestRejectRequestLeavesListingOpen(t *testing.T) {
	svc, listings, listing := newRequestFixture(t)
	ctx := context.Background()

	request, _ := svc.Create(ctx, "user_2", listing.ID)

	rejected, err := svc.Reject(ctx, "owner", false, request.ID)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}

	if rejected.Status != model.RequestRejected {
		t.Errorf("request status = %q, want rejected", rejected.Status)
	}
	if got := listings.listings[listing.ID].Status; got != model.ListingOpen {
		t.Errorf("listing status = %q, want still open", got)
	}
}

func TestAcceptMissingRequestIs404(t *testing.T) {
	svc, _, _ := newRequestFixture(t)

	_, err := svc.Accept(context.Background(), "owner", false, 9999)
	if status := httpStatus(t, err); status != 404 {
		t.Errorf("status = %d, want 404", status)
	}
}
