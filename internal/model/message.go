package model

import "time"

// Message is an immutable chat entry attached to a listing.
type Message struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
