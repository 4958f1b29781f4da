package service

import (
	"context"
	"errors"
	"fmt"

	"kbms.app/integrations/common/id"
	"kbms.app/integrations/internal/model"
	"kbms.app/integrations/internal/store"
)

// ErrConversationNotFound is the expected outcome of a point lookup on
// an unknown id.
var ErrConversationNotFound = errors.New("conversation not found")

// ConversationService serves the read side of the normalized data.
type ConversationService interface {
	Get(ctx context.Context, rawID string) (*model.Conversation, error)
	List(ctx context.Context) ([]model.ConversationListItem, error)
}

type conversationService struct {
	conversations store.ConversationStore
}

func NewConversationService(conversations store.ConversationStore) ConversationService {
	return &conversationService{conversations: conversations}
}

func (s *conversationService) Get(ctx context.Context, rawID string) (*model.Conversation, error) {
	// An id that is not a UUID cannot be in the store.
	convID, err := id.Parse(rawID)
	if err != nil {
		return nil, ErrConversationNotFound
	}

	conv, err := s.conversations.GetByID(ctx, convID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, fmt.Errorf("fetching conversation: %w", err)
	}
	return conv, nil
}

func (s *conversationService) List(ctx context.Context) ([]model.ConversationListItem, error) {
	items, err := s.conversations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return items, nil
}
