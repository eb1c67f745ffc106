package service

import (
	"context"
	"strings"

	"github.com/androadel2014/carryon-backend/internal/errs"
	"github.com/androadel2014/carryon-backend/internal/model"
	"github.com/androadel2014/carryon-backend/internal/repository"
)

// listMessageLimit bounds the chat transcript endpoint.
const listMessageLimit = 200

// MessageService is the append-only listing chat. It performs no
// relationship check between the sender and the listing owner; any
// authenticated caller may read or write.
type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// List returns up to 200 messages oldest first. Messages on a
// soft-deleted listing remain readable here.
func (s *MessageService) List(ctx context.Context, listingID int64) ([]*model.Message, error) {
	messages, err := s.messages.ListOldest(ctx, listingID, listMessageLimit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*model.Message{}
	}
	return messages, nil
}

// Post appends a message. The body is trimmed and must be non-empty.
func (s *MessageService) Post(ctx context.Context, callerID string, listingID int64, body string) (*model.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errs.NewBadRequestError("Message text is required", nil, nil)
	}

	return s.messages.Create(ctx, listingID, callerID, body)
}
