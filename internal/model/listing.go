// Package model holds the domain types shared by the repository,
// service, and handler layers.
package model

import (
	"time"
)

// Listing roles.
const (
	RoleTraveler = "traveler"
	RoleSender   = "sender"
)

// Listing statuses.
const (
	ListingOpen      = "open"
	ListingMatched   = "matched"
	ListingInTransit = "in_transit"
	ListingDelivered = "delivered"
	ListingCompleted = "completed"
	ListingCancelled = "cancelled"
)

// Listing is a posted carry offer (traveler) or carry request (sender).
// Extra preserves arbitrary caller-supplied fields verbatim.
type Listing struct {
	ID           int64          `json:"id"`
	UserID       string         `json:"user_id"`
	Role         string         `json:"role"`
	FromCountry  string         `json:"from_country"`
	FromCity     string         `json:"from_city"`
	ToCountry    string         `json:"to_country"`
	ToCity       string         `json:"to_city"`
	TravelDate   string         `json:"travel_date"`
	ArrivalDate  string         `json:"arrival_date"`
	WeightKg     float64        `json:"weight_kg"`
	ItemType     string         `json:"item_type"`
	Description  string         `json:"description"`
	RewardAmount float64        `json:"reward_amount"`
	Currency     string         `json:"currency"`
	Status       string         `json:"status"`
	IsActive     int16          `json:"is_active"`
	Extra        map[string]any `json:"extra,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// RatingSummary aggregates the reviews referencing a listing.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ListingDetail is a listing augmented with its request count, recent
// messages, and review aggregate for the detail endpoint.
type ListingDetail struct {
	Listing
	RequestCount int64         `json:"request_count"`
	Messages     []*Message    `json:"messages"`
	Rating       RatingSummary `json:"rating"`
}

// ListingFilter narrows the listing index. Empty fields are ignored.
type ListingFilter struct {
	Role        string
	Query       string
	FromCountry string
	ToCountry   string
}

// listingTransitions are the forward-only status moves allowed through
// the explicit transition endpoint. Acceptance of a match request moves
// open -> matched separately.
var listingTransitions = map[string][]string{
	ListingOpen:      {ListingCancelled},
	ListingMatched:   {ListingInTransit, ListingCancelled},
	ListingInTransit: {ListingDelivered, ListingCancelled},
	ListingDelivered: {ListingCompleted},
}

// CanTransitionListing reports whether a listing may move from one
// status to another via the transition endpoint.
func CanTransitionListing(from, to string) bool {
	for _, next := range listingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidRole reports whether role is one of the two enumerated values.
func ValidRole(role string) bool {
	return role == RoleTraveler || role == RoleSender
}
