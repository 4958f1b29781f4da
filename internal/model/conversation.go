package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider identifies the source system a conversation was ingested from.
type Provider string

const (
	ProviderIntercom Provider = "intercom"
)

// Role is the stable internal participant role, derived from the
// provider's role hint. The set is closed; unmapped hints collapse to
// RoleUnknown.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleBot      Role = "bot"
	RoleUnknown  Role = "unknown"
)

// Participant is a conversation participant, unique per conversation by ID.
type Participant struct {
	ID    string  `json:"id"`
	Role  Role    `json:"role"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Message is a single normalized message. Order within a conversation is
// significant: it is the provider-given order and drives the last-message
// projection.
type Message struct {
	ID                  *string   `json:"id"`
	AuthorParticipantID string    `json:"author_participant_id"`
	SentAt              time.Time `json:"sent_at"`
	Content             string    `json:"content"`
}

// Conversation is the stable internal schema for an ingested conversation.
// ID is generated internally and carries no provider data; the natural key
// is (Provider, ExternalID).
//
// Absent optional fields serialize as explicit nulls: API consumers see
// every key on every response.
type Conversation struct {
	ID           uuid.UUID     `json:"id"`
	Provider     Provider      `json:"provider"`
	ExternalID   string        `json:"external_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    *time.Time    `json:"updated_at"`
	Participants []Participant `json:"participants"`
	Messages     []Message     `json:"messages"`
}

// PreviewMaxLen is the character budget for last-message previews.
const PreviewMaxLen = 120

// ConversationListItem is the read-time projection of a stored
// conversation. It is never persisted; counts and the last-message fields
// are derived from the conversation on every list call.
type ConversationListItem struct {
	ID                 uuid.UUID  `json:"id"`
	Provider           Provider   `json:"provider"`
	ExternalID         string     `json:"external_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
	ParticipantCount   int        `json:"participant_count"`
	MessageCount       int        `json:"message_count"`
	LastMessageAt      *time.Time `json:"last_message_at"`
	LastMessagePreview *string    `json:"last_message_preview"`
}

// ListItem derives the list projection for the conversation.
func (c *Conversation) ListItem() ConversationListItem {
	item := ConversationListItem{
		ID:               c.ID,
		Provider:         c.Provider,
		ExternalID:       c.ExternalID,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
		ParticipantCount: len(c.Participants),
		MessageCount:     len(c.Messages),
	}

	if len(c.Messages) > 0 {
		last := c.Messages[len(c.Messages)-1]
		at := last.SentAt
		preview := Preview(last.Content)
		item.LastMessageAt = &at
		item.LastMessagePreview = &preview
	}

	return item
}

// Preview trims the content and truncates it to exactly PreviewMaxLen
// characters when longer; shorter content is kept whole.
func Preview(content string) string {
	trimmed := strings.TrimSpace(content)
	runes := []rune(trimmed)
	if len(runes) <= PreviewMaxLen {
		return trimmed
	}
	return string(runes[:PreviewMaxLen])
}
