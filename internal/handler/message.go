package handler

import (
	"github.com/androadel2014/carryon-backend/internal/middleware"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/server"
	"github.com/androadel2014/carryon-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// MessageHandler serves the per-listing chat endpoints.
type MessageHandler struct {
	Handler
	messages *service.MessageService
}

func NewMessageHandler(s *server.Server, messages *service.MessageService) *MessageHandler {
	return &MessageHandler{
		Handler:  NewHandler(s),
		messages: messages,
	}
}

type messageListResponse struct {
	OK       bool             `json:"ok"`
	Messages []*model.Message `json:"messages"`
}

type messageResponse struct {
	OK      bool           `json:"ok"`
	Message *model.Message `json:"message"`
}

// ListMessagesRequest resolves the listing id from the path.
type ListMessagesRequest struct {
	ListingID string `param:"id"`
}

func (r *ListMessagesRequest) Validate() error {
	return validate.Struct(r)
}

func (h *MessageHandler) List(c echo.Context, req *ListMessagesRequest) (messageListResponse, error) {
	listingID, err := parseID(req.ListingID)
	if err != nil {
		return messageListResponse{}, err
	}

	messages, err := h.messages.List(c.Request().Context(), listingID)
	if err != nil {
		return messageListResponse{}, err
	}
	return messageListResponse{OK: true, Messages: messages}, nil
}

// PostMessageRequest appends a message to a listing's chat.
type PostMessageRequest struct {
	ListingID string `param:"id"`
	Message   string `json:"message"`
}

func (r *PostMessageRequest) Validate() error {
	return validate.Struct(r)
}

func (h *MessageHandler) Post(c echo.Context, req *PostMessageRequest) (messageResponse, error) {
	listingID, err := parseID(req.ListingID)
	if err != nil {
		return messageResponse{}, err
	}

	message, err := h.messages.Post(c.Request().Context(), middleware.GetUserID(c), listingID, req.Message)
	if err != nil {
		return messageResponse{}, err
	}
	return messageResponse{OK: true, Message: message}, nil
}
