package handler

import (
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// AirportHandler serves the airport directory endpoints.
type AirportHandler struct {
	Handler
	airports *service.AirportService
}

func NewAirportHandler(s *server.Server, airports *service.AirportService) *AirportHandler {
	return &AirportHandler{
		Handler:  NewHandler(s),
		airports: airports,
	}
}

type airportSearchResponse struct {
	OK    bool             `json:"ok"`
	Items []*model.Airport `json:"items"`
}

type airportHealthResponse struct {
	OK    bool  `json:"ok"`
	Count int64 `json:"count"`
}

// SearchAirportsRequest carries the autocomplete query. Limit binds as
// a string and is coerced and clamped by the service.
type SearchAirportsRequest struct {
	Query string `query:"q"`
	Limit string `query:"limit"`
}

func (r *SearchAirportsRequest) Validate() error {
	return validate.Struct(r)
}

func (h *AirportHandler) Search(c echo.Context, req *SearchAirportsRequest) (airportSearchResponse, error) {
	items, err := h.airports.Search(c.Request().Context(), req.Query, req.Limit)
	if err != nil {
		return airportSearchResponse{}, err
	}
	return airportSearchResponse{OK: true, Items: items}, nil
}

// HealthRequest has no inputs.
type HealthRequest struct{}

func (r *HealthRequest) Validate() error {
	return nil
}

func (h *AirportHandler) Health(c echo.Context, _ *HealthRequest) (airportHealthResponse, error) {
	count, err := h.airports.Count(c.Request().Context())
	if err != nil {
		return airportHealthResponse{}, err
	}
	return airportHealthResponse{OK: true, Count: count}, nil
}
