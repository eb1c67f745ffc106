package model

import "time"

// Review is an immutable rating about a counterparty on a listing.
// Rating is always within [1,5].
type Review struct {
	ID             int64     `json:"id"`
	ListingID      int64     `json:"listing_id"`
	ReviewerID     string    `json:"reviewer_id"`
	ReviewedUserID string    `json:"reviewed_user_id"`
	Rating         int       `json:"rating"`
	Comment        string    `json:"comment"`
	CreatedAt      time.Time `json:"created_at"`
}
