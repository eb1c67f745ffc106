package handler

import (
	"github.com/androadel2014/carryon-backend/internal/middleware"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ListingHandler serves the listing lifecycle endpoints.
type ListingHandler struct {
	Handler
	listings *service.ListingService
}

func NewListingHandler(s *server.Server, listings *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler:  NewHandler(s),
		listings: listings,
	}
}

type listingResponse struct {
	OK   bool           `json:"ok"`
	Item *model.Listing `json:"item"`
}

type listingListResponse struct {
	OK    bool             `json:"ok"`
	Items []*model.Listing `json:"items"`
}

type listingDetailResponse struct {
	OK   bool                 `json:"ok"`
	Item *model.ListingDetail `json:"item"`
}

// CreateListingRequest carries the new listing. Numeric fields are
// untyped so numbers and numeric strings both coerce; Extra is stored
// verbatim.
type CreateListingRequest struct {
	Role         string         `json:"role" validate:"required"`
	FromCountry  string         `json:"from_country"`
	FromCity     string         `json:"from_city"`
	ToCountry    string         `json:"to_country"`
	ToCity       string         `json:"to_city"`
	TravelDate   string         `json:"travel_date"`
	ArrivalDate  string         `json:"arrival_date"`
	WeightKg     any            `json:"weight_kg"`
	ItemType     string         `json:"item_type"`
	Description  string         `json:"description"`
	RewardAmount any            `json:"reward_amount"`
	Currency     string         `json:"currency"`
	Extra        map[string]any `json:"extra"`
}

func (r *CreateListingRequest) Validate() error {
	return validate.Struct(r)
}

func (r *CreateListingRequest) input() service.ListingInput {
	return service.ListingInput{
		FromCountry:  r.FromCountry,
		FromCity:     r.FromCity,
		ToCountry:    r.ToCountry,
		ToCity:       r.ToCity,
		TravelDate:   r.TravelDate,
		ArrivalDate:  r.ArrivalDate,
		WeightKg:     r.WeightKg,
		ItemType:     r.ItemType,
		Description:  r.Description,
		RewardAmount: r.RewardAmount,
		Currency:     r.Currency,
		Extra:        r.Extra,
	}
}

func (h *ListingHandler) Create(c echo.Context, req *CreateListingRequest) (listingResponse, error) {
	listing, err := h.listings.Create(c.Request().Context(), middleware.GetUserID(c), req.Role, req.input())
	if err != nil {
		return listingResponse{}, err
	}
	return listingResponse{OK: true, Item: listing}, nil
}

// ListListingsRequest holds the optional index filters.
type ListListingsRequest struct {
	Role        string `query:"role"`
	Query       string `query:"q"`
	FromCountry string `query:"from_country"`
	ToCountry   string `query:"to_country"`
}

func (r *ListListingsRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ListingHandler) List(c echo.Context, req *ListListingsRequest) (listingListResponse, error) {
	listings, err := h.listings.List(c.Request().Context(), model.ListingFilter{
		Role:        req.Role,
		Query:       req.Query,
		FromCountry: req.FromCountry,
		ToCountry:   req.ToCountry,
	})
	if err != nil {
		return listingListResponse{}, err
	}
	return listingListResponse{OK: true, Items: listings}, nil
}

// GetListingRequest resolves the listing id from the path.
type GetListingRequest struct {
	ID string `param:"id"`
}

func (r *GetListingRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ListingHandler) Get(c echo.Context, req *GetListingRequest) (listingDetailResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return listingDetailResponse{}, err
	}

	detail, err := h.listings.Get(c.Request().Context(), id)
	if err != nil {
		return listingDetailResponse{}, err
	}
	return listingDetailResponse{OK: true, Item: detail}, nil
}

// UpdateListingRequest is the merge-by-field partial update payload.
type UpdateListingRequest struct {
	ID           string         `param:"id"`
	FromCountry  string         `json:"from_country"`
	FromCity     string         `json:"from_city"`
	ToCountry    string         `json:"to_country"`
	ToCity       string         `json:"to_city"`
	TravelDate   string         `json:"travel_date"`
	ArrivalDate  string         `json:"arrival_date"`
	WeightKg     any            `json:"weight_kg"`
	ItemType     string         `json:"item_type"`
	Description  string         `json:"description"`
	RewardAmount any            `json:"reward_amount"`
	Currency     string         `json:"currency"`
	Extra        map[string]any `json:"extra"`
}

func (r *UpdateListingRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ListingHandler) Update(c echo.Context, req *UpdateListingRequest) (listingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return listingResponse{}, err
	}

	listing, err := h.listings.Update(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id, service.ListingInput{
		FromCountry:  req.FromCountry,
		FromCity:     req.FromCity,
		ToCountry:    req.ToCountry,
		ToCity:       req.ToCity,
		TravelDate:   req.TravelDate,
		ArrivalDate:  req.ArrivalDate,
		WeightKg:     req.WeightKg,
		ItemType:     req.ItemType,
		Description:  req.Description,
		RewardAmount: req.RewardAmount,
		Currency:     req.Currency,
		Extra:        req.Extra,
	})
	if err != nil {
		return listingResponse{}, err
	}
	return listingResponse{OK: true, Item: listing}, nil
}

// TransitionListingRequest moves a listing along its status lifecycle.
type TransitionListingRequest struct {
	ID     string `param:"id"`
	Status string `json:"status" validate:"required"`
}

func (r *TransitionListingRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ListingHandler) Transition(c echo.Context, req *TransitionListingRequest) (listingResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return listingResponse{}, err
	}

	listing, err := h.listings.Transition(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id, req.Status)
	if err != nil {
		return listingResponse{}, err
	}
	return listingResponse{OK: true, Item: listing}, nil
}

// DeleteListingRequest resolves the listing id from the path.
type DeleteListingRequest struct {
	ID string `param:"id"`
}

func (r *DeleteListingRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ListingHandler) Delete(c echo.Context, req *DeleteListingRequest) (okResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return okResponse{}, err
	}

	if err := h.listings.Delete(c.Request().Context(), middleware.GetUserID(c), middleware.IsAdmin(c), id); err != nil {
		return okResponse{}, err
	}
	return okResponse{OK: true}, nil
}
