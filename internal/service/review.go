package service

import (
	"context"
	"errors"
	"strings"

	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cast"
)

// ReviewService records ratings about a counterparty on a listing.
type ReviewService struct {
	reviews  repository.ReviewRepository
	listings repository.ListingRepository
}

func NewReviewService(
	reviews repository.ReviewRepository,
	listings repository.ListingRepository,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		listings: listings,
	}
}

// CoerceRating converts any numeric input to an int rating clamped to
// [1,5]. Fractions truncate (3.7 stores as 3); non-numeric input is a
// validation error.
func CoerceRating(v any) (int, error) {
	rating, err := cast.ToIntE(v)
	if err != nil {
		return 0, errs.NewBadRequestError("rating must be a number between 1 and 5", nil, nil)
	}

	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	return rating, nil
}

// Create stores a review on an existing listing. The reviewed party
// defaults to the listing owner when not supplied. Nothing prevents
// self-review or duplicates.
func (s *ReviewService) Create(ctx context.Context, callerID string, listingID int64, rating any, comment, reviewedUserID string) error {
	listing, err := s.listings.GetActive(ctx, listingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError("Listing not found", nil)
		}
		return err
	}

	value, err := CoerceRating(rating)
	if err != nil {
		return err
	}

	reviewedUserID = strings.TrimSpace(reviewedUserID)
	if reviewedUserID == "" {
		reviewedUserID = listing.UserID
	}

	return s.reviews.Create(ctx, &model.Review{
		ListingID:      listingID,
		ReviewerID:     callerID,
		ReviewedUserID: reviewedUserID,
		Rating:         value,
		Comment:        strings.TrimSpace(comment),
	})
}
