package handler

import (
	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// validate is the shared validator instance backing every request
// payload's Validate method.
var validate = validator.New()

// Handlers groups all HTTP handlers so router setup receives a single
// wired object.
type Handlers struct {
	Health   *HealthHandler
	Listings *ListingHandler
	Requests *MatchRequestHandler
	Messages *MessageHandler
	Reviews  *ReviewHandler
	Airports *AirportHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Listings: NewListingHandler(s, services.Listings),
		Requests: NewMatchRequestHandler(s, services.Requests),
		Messages: NewMessageHandler(s, services.Messages),
		Reviews:  NewReviewHandler(s, services.Reviews),
		Airports: NewAirportHandler(s, services.Airports),
	}
}

// parseID coerces a path parameter into a numeric id. Malformed ids
// are a validation error, not a 404.
func parseID(raw string) (int64, error) {
	id, err := cast.ToInt64E(raw)
	if err != nil || id <= 0 {
		return 0, errs.NewBadRequestError("Invalid id", nil, nil)
	}
	return id, nil
}

// okResponse is the bare success acknowledgment.
type okResponse struct {
	OK bool `json:"ok"`
}
