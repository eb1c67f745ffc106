package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/jackc/pgx/v5"
)

// In-memory repository fakes used across the service tests.

type fakeListingRepo struct {
	nextID   int64
	listings map[int64]*model.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: map[int64]*model.Listing{}}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *model.Listing) (*model.Listing, error) {
	r.nextID++
	listing.ID = r.nextID
	listing.Status = model.ListingOpen
	listing.IsActive = 1
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = listing.CreatedAt
	r.listings[listing.ID] = listing
	return listing, nil
}

func (r *fakeListingRepo) List(_ context.Context, filter model.ListingFilter) ([]*model.Listing, error) {
	var out []*model.Listing
	for _, l := range r.listings {
		if l.IsActive != 1 {
			continue
		}
		if filter.Role != "" && l.Role != filter.Role {
			continue
		}
		if filter.FromCountry != "" && l.FromCountry != filter.FromCountry {
			continue
		}
		if filter.ToCountry != "" && l.ToCountry != filter.ToCountry {
			continue
		}
		if filter.Query != "" && !strings.Contains(l.Description, filter.Query) {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeListingRepo) GetActive(_ context.Context, id int64) (*model.Listing, error) {
	l, ok := r.listings[id]
	if !ok || l.IsActive != 1 {
		return nil, pgx.ErrNoRows
	}
	copied := *l
	return &copied, nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *model.Listing) (*model.Listing, error) {
	if _, ok := r.listings[listing.ID]; !ok {
		return nil, pgx.ErrNoRows
	}
	listing.UpdatedAt = time.Now()
	r.listings[listing.ID] = listing
	return listing, nil
}

func (r *fakeListingRepo) SetStatus(_ context.Context, id int64, status string) error {
	l, ok := r.listings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.Status = status
	l.UpdatedAt = time.Now()
	return nil
}

func (r *fakeListingRepo) SoftDelete(_ context.Context, id int64) error {
	l, ok := r.listings[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.IsActive = 0
	l.UpdatedAt = time.Now()
	return nil
}

type fakeRequestRepo struct {
	nextID   int64
	requests map[int64]*model.MatchRequest
	listings *fakeListingRepo
}

func newFakeRequestRepo(listings *fakeListingRepo) *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int64]*model.MatchRequest{}, listings: listings}
}

func (r *fakeRequestRepo) Create(_ context.Context, listingID int64, requesterID string) (*model.MatchRequest, error) {
	r.nextID++
	req := &model.MatchRequest{
		ID:          r.nextID,
		ListingID:   listingID,
		RequesterID: requesterID,
		Status:      model.RequestPending,
		CreatedAt:   time.Now(),
	}
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeRequestRepo) Get(_ context.Context, id int64) (*model.MatchRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *req
	return &copied, nil
}

func (r *fakeRequestRepo) FindByListingAndRequester(_ context.Context, listingID int64, requesterID string) (*model.MatchRequest, error) {
	for _, req := range r.requests {
		if req.ListingID == listingID && req.RequesterID == requesterID {
			copied := *req
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeRequestRepo) Revive(_ context.Context, id int64) (*model.MatchRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	req.Status = model.RequestPending
	copied := *req
	return &copied, nil
}

func (r *fakeRequestRepo) ListByListing(_ context.Context, listingID int64) ([]*model.MatchRequest, error) {
	var out []*model.MatchRequest
	for _, req := range r.requests {
		if req.ListingID == listingID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRequestRepo) CountByListing(_ context.Context, listingID int64) (int64, error) {
	var count int64
	for _, req := range r.requests {
		if req.ListingID == listingID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRequestRepo) Accept(_ context.Context, requestID, listingID int64) error {
	req, ok := r.requests[requestID]
	if !ok {
		return pgx.ErrNoRows
	}
	l, ok := r.listings.listings[listingID]
	if !ok {
		return pgx.ErrNoRows
	}
	req.Status = model.RequestAccepted
	l.Status = model.ListingMatched
	return nil
}

func (r *fakeRequestRepo) SetStatus(_ context.Context, id int64, status string) error {
	req, ok := r.requests[id]
	if !ok {
		return pgx.ErrNoRows
	}
	req.Status = status
	return nil
}

type fakeMessageRepo struct {
	nextID   int64
	messages []*model.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, listingID int64, senderID, body string) (*model.Message, error) {
	r.nextID++
	msg := &model.Message{
		ID:        r.nextID,
		ListingID: listingID,
		SenderID:  senderID,
		Body:      body,
		CreatedAt: time.Now(),
	}
	r.messages = append(r.messages, msg)
	return msg, nil
}

func (r *fakeMessageRepo) ListOldest(_ context.Context, listingID int64, limit int) ([]*model.Message, error) {
	var out []*model.Message
	for _, msg := range r.messages {
		if msg.ListingID == listingID {
			out = append(out, msg)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListNewest(_ context.Context, listingID int64, limit int) ([]*model.Message, error) {
	var out []*model.Message
	for i := len(r.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if r.messages[i].ListingID == listingID {
			out = append(out, r.messages[i])
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	nextID  int64
	reviews []*model.Review
}

func (r *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	r.nextID++
	review.ID = r.nextID
	review.CreatedAt = time.Now()
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) Aggregate(_ context.Context, listingID int64) (model.RatingSummary, error) {
	var summary model.RatingSummary
	var total int
	for _, review := range r.reviews {
		if review.ListingID == listingID {
			summary.Count++
			total += review.Rating
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary, nil
}

type fakeAirportRepo struct {
	results   []*model.Airport
	lastQuery string
	lastLimit int
	count     int64
}

func (r *fakeAirportRepo) Search(_ context.Context, query string, limit int) ([]*model.Airport, error) {
	r.lastQuery = query
	r.lastLimit = limit
	return r.results, nil
}

func (r *fakeAirportRepo) Count(_ context.Context) (int64, error) {
	return r.count, nil
}
