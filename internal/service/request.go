package service

import (
	"context"
	"errors"

	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/repository"
	"github.com/jackc/pgx/v5"
)

// MatchRequestService runs the per-request state machine: pending ->
// accepted | rejected, with cancelled rows revivable by a fresh create.
type MatchRequestService struct {
	requests repository.MatchRequestRepository
	listings repository.ListingRepository
}

func NewMatchRequestService(
	requests repository.MatchRequestRepository,
	listings repository.ListingRepository,
) *MatchRequestService {
	return &MatchRequestService{
		requests: requests,
		listings: listings,
	}
}

// Create claims an open listing for the caller. A caller's own listing
// is always rejected. If the caller's previous request on this listing
// was cancelled, that row is revived to pending (same id) instead of
// inserting a duplicate; any other prior request is a duplicate error.
func (s *MatchRequestService) Create(ctx context.Context, callerID string, listingID int64) (*model.MatchRequest, error) {
	listing, err := s.listings.GetActive(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, err
	}

	if listing.UserID == callerID {
		return nil, errs.NewBadRequestError("You cannot request your own listing", nil, nil)
	}

	if listing.Status != model.ListingOpen {
		return nil, errs.NewBadRequestError("Listing is not open for requests", nil, nil)
	}

	existing, err := s.requests.FindByListingAndRequester(ctx, listingID, callerID)
	switch {
	case err == nil && existing.Status == model.RequestCancelled:
		return s.requests.Revive(ctx, existing.ID)
	case err == nil:
		return nil, errs.NewBadRequestError("You have already requested this listing", nil, nil)
	case errors.Is(err, pgx.ErrNoRows):
		return s.requests.Create(ctx, listingID, callerID)
	default:
		return nil, err
	}
}

// ListForListing returns all requests on a listing to its owner or an
// admin, newest first.
func (s *MatchRequestService) ListForListing(ctx context.Context, callerID string, isAdmin bool, listingID int64) ([]*model.MatchRequest, error) {
	listing, err := s.listings.GetActive(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, err
	}

	if !CanModify(callerID, listing.UserID, isAdmin) {
		return nil, errs.NewForbiddenError("You do not own this listing")
	}

	requests, err := s.requests.ListByListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*model.MatchRequest{}
	}
	return requests, nil
}

// resolve looks up the request, then its parent listing, and checks
// ownership against the listing. The two lookups fail with distinct
// not-found messages.
func (s *MatchRequestService) resolve(ctx context.Context, callerID string, isAdmin bool, requestID int64) (*model.MatchRequest, *model.Listing, error) {
	request, err := s.requests.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, errs.NewNotFoundError("Request not found", nil)
		}
		return nil, nil, err
	}

	listing, err := s.listings.GetActive(ctx, request.ListingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, nil, err
	}

	if !CanModify(callerID, listing.UserID, isAdmin) {
		return nil, nil, errs.NewForbiddenError("You do not own this listing")
	}

	return request, listing, nil
}

// Accept marks a pending request accepted and advances the parent
// listing to matched. Both writes happen in one transaction so they
// become visible together.
func (s *MatchRequestService) Accept(ctx context.Context, callerID string, isAdmin bool, requestID int64) (*model.MatchRequest, error) {
	request, listing, err := s.resolve(ctx, callerID, isAdmin, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != model.RequestPending {
		return nil, errs.NewBadRequestError("Request is not pending", nil, nil)
	}

	if err := s.requests.Accept(ctx, request.ID, listing.ID); err != nil {
		return nil, err
	}

	request.Status = model.RequestAccepted
	return request, nil
}

// Reject marks a pending request rejected. The listing is untouched.
func (s *MatchRequestService) Reject(ctx context.Context, callerID string, isAdmin bool, requestID int64) (*model.MatchRequest, error) {
	request, _, err := s.resolve(ctx, callerID, isAdmin, requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != model.RequestPending {
		return nil, errs.NewBadRequestError("Request is not pending", nil, nil)
	}

	if err := s.requests.SetStatus(ctx, request.ID, model.RequestRejected); err != nil {
		return nil, err
	}

	request.Status = model.RequestRejected
	return request, nil
}
