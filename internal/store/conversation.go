package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"kbms.app/integrations/core/db/sqlc"
	"kbms.app/integrations/internal/model"
)

type conversationStore struct {
	queries *sqlc.Queries
}

func newConversationStore(queries *sqlc.Queries) ConversationStore {
	return &conversationStore{queries: queries}
}

func (s *conversationStore) CreateOrGet(ctx context.Context, conv *model.Conversation) (*model.Conversation, bool, error) {
	payload, err := json.Marshal(conv)
	if err != nil {
		return nil, false, fmt.Errorf("marshaling conversation payload: %w", err)
	}

	row, err := s.queries.CreateConversation(ctx, sqlc.CreateConversationParams{
		ID:         conv.ID,
		Provider:   string(conv.Provider),
		ExternalID: conv.ExternalID,
		CreatedAt:  conv.CreatedAt,
		UpdatedAt:  conv.UpdatedAt,
		Payload:    payload,
	})
	if err == nil {
		stored, err := toConversationModel(row)
		if err != nil {
			return nil, false, err
		}
		return stored, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("inserting conversation: %w", err)
	}

	// The natural key lost the insert: read the winner. A racing writer
	// holds the constraint until commit, so this select observes it.
	row, err = s.queries.GetConversationByNaturalKey(ctx, sqlc.GetConversationByNaturalKeyParams{
		Provider:   string(conv.Provider),
		ExternalID: conv.ExternalID,
	})
	if err != nil {
		return nil, false, fmt.Errorf("fetching conversation by natural key: %w", err)
	}

	stored, err := toConversationModel(row)
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}

func (s *conversationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	row, err := s.queries.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toConversationModel(row)
}

func (s *conversationStore) List(ctx context.Context) ([]model.ConversationListItem, error) {
	rows, err := s.queries.ListConversations(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.ConversationListItem, 0, len(rows))
	for _, row := range rows {
		conv, err := toConversationModel(row)
		if err != nil {
			return nil, err
		}
		items = append(items, conv.ListItem())
	}
	return items, nil
}

// toConversationModel deserializes the stored payload, which carries the
// full conversation (participants and messages) as written at ingest
// time. The key columns exist for constraints and ordering; the payload
// is the source of truth for content.
func toConversationModel(row sqlc.Conversation) (*model.Conversation, error) {
	var conv model.Conversation
	if err := json.Unmarshal(row.Payload, &conv); err != nil {
		return nil, fmt.Errorf("unmarshaling conversation %s payload: %w", row.ID, err)
	}
	return &conv, nil
}
