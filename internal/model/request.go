package model

import "time"

// Match request statuses. Accepted and rejected are terminal; a
// cancelled request can be revived by a fresh create from the same
// requester.
const (
	RequestPending   = "pending"
	RequestAccepted  = "accepted"
	RequestRejected  = "rejected"
	RequestCancelled = "cancelled"
)

// MatchRequest is a claim by a non-owner against an open listing.
type MatchRequest struct {
	ID          int64     `json:"id"`
	ListingID   int64     `json:"listing_id"`
	RequesterID string    `json:"requester_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
