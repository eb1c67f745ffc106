package handler

import (
	"github.com/androadel2014/carryon-backend/internal/middleware"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// ReviewHandler serves the counterparty review endpoint.
type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// CreateReviewRequest rates a counterparty on a listing. Rating stays
// untyped so numeric strings and floats coerce; the reviewed user
// defaults to the listing owner when empty.
type CreateReviewRequest struct {
	ListingID      string `param:"id"`
	Rating         any    `json:"rating"`
	Comment        string `json:"comment"`
	ReviewedUserID string `json:"reviewed_user_id"`
}

func (r *CreateReviewRequest) Validate() error {
	return validate.Struct(r)
}

func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (okResponse, error) {
	listingID, err := parseID(req.ListingID)
	if err != nil {
		return okResponse{}, err
	}

	if err := h.reviews.Create(c.Request().Context(), middleware.GetUserID(c), listingID, req.Rating, req.Comment, req.ReviewedUserID); err != nil {
		return okResponse{}, err
	}
	return okResponse{OK: true}, nil
}
