package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cast"
)

// detailMessageLimit is how many recent messages the listing detail
// carries.
const detailMessageLimit = 20

// ListingService owns the listing lifecycle: create, list, detail,
// merge-update, explicit status transitions, and soft delete.
type ListingService struct {
	listings repository.ListingRepository
	requests repository.MatchRequestRepository
	messages repository.MessageRepository
	reviews  repository.ReviewRepository
}

func NewListingService(
	listings repository.ListingRepository,
	requests repository.MatchRequestRepository,
	messages repository.MessageRepository,
	reviews repository.ReviewRepository,
) *ListingService {
	return &ListingService{
		listings: listings,
		requests: requests,
		messages: messages,
		reviews:  reviews,
	}
}

// ListingInput carries the caller-editable listing fields. Numeric
// fields are typed any so tolerant coercion can accept JSON numbers or
// numeric strings; Extra is preserved verbatim.
type ListingInput struct {
	FromCountry  string
	FromCity     string
	ToCountry    string
	ToCity       string
	TravelDate   string
	ArrivalDate  string
	WeightKg     any
	ItemType     string
	Description  string
	RewardAmount any
	Currency     string
	Extra        map[string]any
}

// toFinite coerces v to a float64 and reports whether it parsed as a
// finite number.
func toFinite(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Create validates the role, normalizes it, and persists a new open,
// active listing owned by the caller.
func (s *ListingService) Create(ctx context.Context, userID, role string, in ListingInput) (*model.Listing, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !model.ValidRole(role) {
		return nil, errs.NewBadRequestError("role must be traveler or sender", nil, nil)
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = "USD"
	}

	extra := in.Extra
	if extra == nil {
		extra = map[string]any{}
	}

	listing := &model.Listing{
		UserID:      userID,
		Role:        role,
		FromCountry: strings.TrimSpace(in.FromCountry),
		FromCity:    strings.TrimSpace(in.FromCity),
		ToCountry:   strings.TrimSpace(in.ToCountry),
		ToCity:      strings.TrimSpace(in.ToCity),
		TravelDate:  strings.TrimSpace(in.TravelDate),
		ArrivalDate: strings.TrimSpace(in.ArrivalDate),
		ItemType:    strings.TrimSpace(in.ItemType),
		Description: strings.TrimSpace(in.Description),
		Currency:    currency,
		Extra:       extra,
	}

	if weight, ok := toFinite(in.WeightKg); ok {
		listing.WeightKg = weight
	}
	if reward, ok := toFinite(in.RewardAmount); ok {
		listing.RewardAmount = reward
	}

	return s.listings.Create(ctx, listing)
}

// List returns active listings matching the filter, newest first.
func (s *ListingService) List(ctx context.Context, filter model.ListingFilter) ([]*model.Listing, error) {
	filter.Role = strings.ToLower(strings.TrimSpace(filter.Role))
	filter.Query = strings.TrimSpace(filter.Query)
	filter.FromCountry = strings.TrimSpace(filter.FromCountry)
	filter.ToCountry = strings.TrimSpace(filter.ToCountry)

	listings, err := s.listings.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []*model.Listing{}
	}
	return listings, nil
}

// Get returns one active listing augmented with its match request
// count, the 20 most recent messages, and the review aggregate.
func (s *ListingService) Get(ctx context.Context, id int64) (*model.ListingDetail, error) {
	listing, err := s.listings.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, err
	}

	requestCount, err := s.requests.CountByListing(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListNewest(ctx, id, detailMessageLimit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*model.Message{}
	}

	rating, err := s.reviews.Aggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ListingDetail{
		Listing:      *listing,
		RequestCount: requestCount,
		Messages:     messages,
		Rating:       rating,
	}, nil
}

// Update applies a merge-by-field update: empty string fields keep the
// stored value, numeric fields are replaced only when they coerce to a
// finite number, and the extra payload is fully replaced when
// supplied. Only the owner or an admin may update.
func (s *ListingService) Update(ctx context.Context, callerID string, isAdmin bool, id int64, in ListingInput) (*model.Listing, error) {
	listing, err := s.listings.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, err
	}

	if !CanModify(callerID, listing.UserID, isAdmin) {
		return nil, errs.NewForbiddenError("You do not own this listing")
	}

	mergeString(&listing.FromCountry, in.FromCountry)
	mergeString(&listing.FromCity, in.FromCity)
	mergeString(&listing.ToCountry, in.ToCountry)
	mergeString(&listing.ToCity, in.ToCity)
	mergeString(&listing.TravelDate, in.TravelDate)
	mergeString(&listing.ArrivalDate, in.ArrivalDate)
	mergeString(&listing.ItemType, in.ItemType)
	mergeString(&listing.Description, in.Description)
	mergeString(&listing.Currency, in.Currency)

	if weight, ok := toFinite(in.WeightKg); ok {
		listing.WeightKg = weight
	}
	if reward, ok := toFinite(in.RewardAmount); ok {
		listing.RewardAmount = reward
	}

	if in.Extra != nil {
		listing.Extra = in.Extra
	}

	return s.listings.Update(ctx, listing)
}

func mergeString(dst *string, v string) {
	if trimmed := strings.TrimSpace(v); trimmed != "" {
		*dst = trimmed
	}
}

// Transition moves the listing along its status lifecycle through the
// explicit transition endpoint. Only forward moves (and cancellation
// of non-terminal states) are allowed.
func (s *ListingService) Transition(ctx context.Context, callerID string, isAdmin bool, id int64, status string) (*model.Listing, error) {
	status = strings.ToLower(strings.TrimSpace(status))

	listing, err := s.listings.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Listing not found", nil)
		}
		return nil, err
	}

	if !CanModify(callerID, listing.UserID, isAdmin) {
		return nil, errs.NewForbiddenError("You do not own this listing")
	}

	if !model.CanTransitionListing(listing.Status, status) {
		return nil, errs.NewBadRequestError("Cannot move listing from "+listing.Status+" to "+status, nil, nil)
	}

	if err := s.listings.SetStatus(ctx, id, status); err != nil {
		return nil, err
	}

	listing.Status = status
	return listing, nil
}

// Delete soft-deletes the listing: the row and its requests, messages,
// and reviews stay in place, but every read path stops surfacing it.
func (s *ListingService) Delete(ctx context.Context, callerID string, isAdmin bool, id int64) error {
	listing, err := s.listings.GetActive(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError("Listing not found", nil)
		}
		return err
	}

	if !CanModify(callerID, listing.UserID, isAdmin) {
		return errs.NewForbiddenError("You do not own this listing")
	}

	return s.listings.SoftDelete(ctx, id)
}
