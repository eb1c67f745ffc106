package service

import (
	"github.com/androadel2014/carryon-backend/internal/repository"
	"github.com/androadel2014/carryon-backend/internal/server"
)

// Services is the container for all business logic services.
type Services struct {
	Listings *ListingService
	Requests *MatchRequestService
	Messages *MessageService
	Reviews  *ReviewService
	Airports *AirportService
}

// NewServices wires the services from the application container and
// the repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Listings: NewListingService(repos.Listings, repos.Requests, repos.Messages, repos.Reviews),
		Requests: NewMatchRequestService(repos.Requests, repos.Listings),
		Messages: NewMessageService(repos.Messages),
		Reviews:  NewReviewService(repos.Reviews, repos.Listings),
		Airports: NewAirportService(repos.Airports, s.Redis),
	}, nil
}
