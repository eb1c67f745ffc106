package model

import "testing"

func TestCanTransitionListing(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{ListingOpen, ListingCancelled, true},
		{ListingOpen, ListingMatched, false}, // only request acceptance moves open -> matched
		{ListingMatched, ListingInTransit, true},
		{ListingMatched, ListingCancelled, true},
		{ListingInTransit, ListingDelivered, true},
		{ListingInTransit, ListingCancelled, true},
		{ListingDelivered, ListingCompleted, true},
		{ListingDelivered, ListingCancelled, false},
		{ListingCompleted, ListingCancelled, false},
		{ListingCancelled, ListingOpen, false},
		{ListingInTransit, ListingOpen, false},
		{"unknown", ListingCancelled, false},
	}

	for _, tt := range tests {
		if got := CanTransitionListing(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransitionListing(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleTraveler, true},
		{RoleSender, true},
		{"Traveler", false},
		{"pilot", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidRole(tt.role); got != tt.want {
			t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}
