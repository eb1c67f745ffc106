package handler

import (
	"github.com/androadel2014/carryon-backend/internal/middleware"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// MatchRequestHandler serves the match request workflow endpoints.
type MatchRequestHandler struct {
	Handler
	requests *service.MatchRequestService
}

func NewMatchRequestHandler(s *server.Server, requests *service.MatchRequestService) *MatchRequestHandler {
	return &MatchRequestHandler{
		Handler:  NewHandler(s),
		requests: requests,
	}
}

type matchRequestResponse struct {
	OK      bool                `json:"ok"`
	Request *model.MatchRequest `json:"request"`
}

type matchRequestListResponse struct {
	OK    bool                  `json:"ok"`
	Items []*model.MatchRequest `json:"items"`
}

// CreateMatchRequestRequest claims a listing for the calling user.
type CreateMatchRequestRequest struct {
	ListingID string `param:"id"`
}

func (r *CreateMatchRequestRequest) Validate() error {
	return validate.Struct(r)
}

func (h *MatchRequestHandler) Create(c echo.Context, req *CreateMatchRequestRequest) (matchRequestResponse, error) {
	listingID, err := parseID(req.ListingID)
	if err != nil {
		return matchRequestResponse{}, err
	}

	request, err := h.requests.Create(c.Request().Context(), middleware.GetUserID(c), listingID)
	if err != nil {
		return matchRequestResponse{}, err
	}
	return matchRequestResponse{OK: true, Request: request}, nil
}

// ListMatchRequestsRequest lists requests made against a listing.
type ListMatchRequestsRequest struct {
	ListingID string `param:"id"`
}

func (r *ListMatchRequestsRequest) Validate() error {
	return validate.Struct(r)
}

func (h *MatchRequestHandler) ListForListing(c echo.Context, req *ListMatchRequestsRequest) (matchRequestListResponse, error) {
	listingID, err := parseID(req.ListingID)
	if err != nil {
		return matchRequestListResponse{}, err
	}

	items, err := h.requests.ListForListing(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), listingID)
	if err != nil {
		return matchRequestListResponse{}, err
	}
	return matchRequestListResponse{OK: true, Items: items}, nil
}

// DecideMatchRequestRequest resolves the request id for accept/reject.
type DecideMatchRequestRequest struct {
	ID string `param:"id"`
}

func (r *DecideMatchRequestRequest) Validate() error {
	return validate.Struct(r)
}

func (h *MatchRequestHandler) Accept(c echo.Context, req *DecideMatchRequestRequest) (matchRequestResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return matchRequestResponse{}, err
	}

	request, err := h.requests.Accept(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id)
	if err != nil {
		return matchRequestResponse{}, err
	}
	return matchRequestResponse{OK: true, Request: request}, nil
}

func (h *MatchRequestHandler) Reject(c echo.Context, req *DecideMatchRequestRequest) (matchRequestResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return matchRequestResponse{}, err
	}

	request, err := h.requests.Reject(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id)
	if err != nil {
		return matchRequestResponse{}, err
	}
	return matchRequestResponse{OK: true, Request: request}, nil
}
