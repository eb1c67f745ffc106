// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// rows, abstracting SQL away from the service layer. Each repository
// is exposed as an interface so services can be tested against
// in-memory fakes.
package repository

import (
	"context"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
)

// ListingRepository persists listings. Read paths only surface active
// rows; soft-deleted rows stay in place.
type ListingRepository interface {
	Create(ctx context.Context, listing *model.Listing) (*model.Listing, error)
	List(ctx context.Context, filter model.ListingFilter) ([]*model.Listing, error)
	GetActive(ctx context.Context, id int64) (*model.Listing, error)
	Update(ctx context.Context, listing *model.Listing) (*model.Listing, error)
	SetStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
}

// MatchRequestRepository persists match requests. Accept performs the
// compound request-accepted/listing-matched write in one transaction.
type MatchRequestRepository interface {
	Create(ctx context.Context, listingID int64, requesterID string) (*model.MatchRequest, error)
	Get(ctx context.Context, id int64) (*model.MatchRequest, error)
	FindByListingAndRequester(ctx context.Context, listingID int64, requesterID string) (*model.MatchRequest, error)
	Revive(ctx context.Context, id int64) (*model.MatchRequest, error)
	ListByListing(ctx context.Context, listingID int64) ([]*model.MatchRequest, error)
	CountByListing(ctx context.Context, listingID int64) (int64, error)
	Accept(ctx context.Context, requestID, listingID int64) error
	SetStatus(ctx context.Context, id int64, status string) error
}

// MessageRepository persists listing chat messages.
type MessageRepository interface {
	Create(ctx context.Context, listingID int64, senderID, body string) (*model.Message, error)
	ListOldest(ctx context.Context, listingID int64, limit int) ([]*model.Message, error)
	ListNewest(ctx context.Context, listingID int64, limit int) ([]*model.Message, error)
}

// ReviewRepository persists reviews and computes the per-listing
// aggregate.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Aggregate(ctx context.Context, listingID int64) (model.RatingSummary, error)
}

// AirportRepository reads the static airport directory.
type AirportRepository interface {
	Search(ctx context.Context, query string, limit int) ([]*model.Airport, error)
	Count(ctx context.Context) (int64, error)
}

// Repositories is the container for all repository instances, wired
// from the shared database pool.
type Repositories struct {
	Listings ListingRepository
	Requests MatchRequestRepository
	Messages MessageRepository
	Reviews  ReviewRepository
	Airports AirportRepository
}

// NewRepositories constructs the repository container from the
// application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Listings: NewListingRepository(s.DB.Pool),
		Requests: NewMatchRequestRepository(s.DB.Pool),
		Messages: NewMessageRepository(s.DB.Pool),
		Reviews:  NewReviewRepository(s.DB.Pool),
		Airports: NewAirportRepository(s.DB.Pool),
	}
}
