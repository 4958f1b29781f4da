package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"kbms.app/integrations/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist.
// It is an expected outcome for point lookups, not an infrastructure
// failure; any other error from the store is one.
var ErrNotFound = errors.New("not found")

// ConversationStore defines the contract for conversation data access.
type ConversationStore interface {
	// CreateOrGet stores the conversation unless its natural key
	// (provider, external_id) is already present. It returns the stored
	// conversation and created=true on first write, or the previously
	// stored conversation and created=false on replay. The candidate is
	// discarded entirely on replay; stored content is never overwritten.
	// The check-then-insert is atomic: the unique constraint decides
	// races, so concurrent replays of one key see exactly one winner.
	CreateOrGet(ctx context.Context, conv *model.Conversation) (*model.Conversation, bool, error)

	// GetByID looks up a conversation by its internal id.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)

	// List returns the projection of every stored conversation, most
	// recently created first. Derived fields are computed per call from
	// the stored payload, never cached.
	List(ctx context.Context) ([]model.ConversationListItem, error)
}
