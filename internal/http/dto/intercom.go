package dto

// IntercomConversationRequest is the raw Intercom conversation payload.
//
// Only the fields this service consumes are declared; unknown top-level
// and nested keys are accepted and ignored by encoding/json, which is
// the documented forward-compatibility contract with the provider.
type IntercomConversationRequest struct {
	Type                *string                      `json:"type,omitempty"`
	ID                  string                       `json:"id" binding:"required"`
	CreatedAt           *int64                       `json:"created_at" binding:"required"`
	UpdatedAt           *int64                       `json:"updated_at,omitempty"`
	Source              map[string]any               `json:"source,omitempty"`
	ConversationMessage *IntercomConversationMessage `json:"conversation_message,omitempty"`
	ConversationParts   *IntercomConversationParts   `json:"conversation_parts,omitempty"`
}

// IntercomConversationMessage is the top-level message of a conversation.
// Optional as a whole, but strict when present: Intercom always ships a
// body and an identified author on it.
type IntercomConversationMessage struct {
	ID     *string         `json:"id,omitempty"`
	Body   *string         `json:"body" binding:"required"`
	Author *IntercomAuthor `json:"author" binding:"required"`
}

type IntercomAuthor struct {
	ID    string  `json:"id" binding:"required"`
	Type  *string `json:"type,omitempty"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

type IntercomConversationParts struct {
	Type              *string                    `json:"type,omitempty"`
	ConversationParts []IntercomConversationPart `json:"conversation_parts,omitempty"`
	TotalCount        *int                       `json:"total_count,omitempty"`
}

// IntercomConversationPart is deliberately lenient: parts come from a
// wide range of Intercom event kinds and individual fields are often
// absent or malformed. CreatedAt is untyped so a non-numeric timestamp
// reaches the mapper's now() fallback instead of failing validation.
type IntercomConversationPart struct {
	ID        *string             `json:"id,omitempty"`
	Body      *string             `json:"body,omitempty"`
	CreatedAt any                 `json:"created_at,omitempty"`
	Author    *IntercomPartAuthor `json:"author,omitempty"`
}

type IntercomPartAuthor struct {
	ID    *string `json:"id,omitempty"`
	Type  *string `json:"type,omitempty"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
