package mapper

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kbms.app/integrations/common/id"
	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/model"
)

// IntercomMapper maps validated Intercom payloads to the internal
// conversation schema. Mapping is pure and never fails: optional or
// malformed sub-fields resolve through documented fallbacks, and the
// required fields have already been checked at the HTTP boundary.
type IntercomMapper struct {
	// Now and NewID are swappable for deterministic tests.
	Now   func() time.Time
	NewID func() uuid.UUID
}

func NewIntercomMapper() *IntercomMapper {
	return &IntercomMapper{
		Now:   time.Now,
		NewID: id.New,
	}
}

// Map builds a fresh internal conversation from the payload. A new
// internal ID is generated on every call; the store decides whether the
// candidate survives the natural-key dedup.
func (m *IntercomMapper) Map(payload *dto.IntercomConversationRequest) *model.Conversation {
	createdAt := m.instantFromUnix(payload.CreatedAt)

	var updatedAt *time.Time
	if payload.UpdatedAt != nil {
		t := time.Unix(*payload.UpdatedAt, 0).UTC()
		updatedAt = &t
	}

	participants := []model.Participant{}
	seen := make(map[string]bool)
	messages := []model.Message{}

	if cm := payload.ConversationMessage; cm != nil {
		if cm.Author != nil && cm.Author.ID != "" && !seen[cm.Author.ID] {
			seen[cm.Author.ID] = true
			participants = append(participants, model.Participant{
				ID:    cm.Author.ID,
				Role:  mapRole(cm.Author.Type),
				Name:  normalizeOptional(cm.Author.Name),
				Email: normalizeOptional(cm.Author.Email),
			})
		}

		if cm.Body != nil && *cm.Body != "" {
			authorID := "unknown"
			if cm.Author != nil && cm.Author.ID != "" {
				authorID = cm.Author.ID
			}
			messages = append(messages, model.Message{
				ID:                  cm.ID,
				AuthorParticipantID: authorID,
				// Intercom gives no per-message timestamp at this level;
				// the conversation's created_at stands in for it.
				SentAt:  createdAt,
				Content: *cm.Body,
			})
		}
	}

	if payload.ConversationParts != nil {
		for _, part := range payload.ConversationParts.ConversationParts {
			if part.Author != nil && part.Author.ID != nil && *part.Author.ID != "" && !seen[*part.Author.ID] {
				seen[*part.Author.ID] = true
				participants = append(participants, model.Participant{
					ID:    *part.Author.ID,
					Role:  mapRole(part.Author.Type),
					Name:  normalizeOptional(part.Author.Name),
					Email: normalizeOptional(part.Author.Email),
				})
			}

			if part.Body == nil || *part.Body == "" {
				continue
			}

			authorID := "unknown"
			if part.Author != nil && part.Author.ID != nil && *part.Author.ID != "" {
				authorID = *part.Author.ID
			}
			messages = append(messages, model.Message{
				ID:                  part.ID,
				AuthorParticipantID: authorID,
				SentAt:              m.instantFromAny(part.CreatedAt),
				Content:             *part.Body,
			})
		}
	}

	return &model.Conversation{
		ID:           m.NewID(),
		Provider:     model.ProviderIntercom,
		ExternalID:   payload.ID,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
		Participants: participants,
		Messages:     messages,
	}
}

// instantFromUnix converts unix seconds to a UTC instant, falling back
// to now so a gap in the provider data never stops the pipeline.
func (m *IntercomMapper) instantFromUnix(ts *int64) time.Time {
	if ts == nil {
		return m.Now().UTC()
	}
	return time.Unix(*ts, 0).UTC()
}

// instantFromAny handles the untyped per-part timestamps: anything that
// is not a number resolves to now.
func (m *IntercomMapper) instantFromAny(v any) time.Time {
	switch ts := v.(type) {
	case float64:
		return time.Unix(int64(ts), 0).UTC()
	case int64:
		return time.Unix(ts, 0).UTC()
	case int:
		return time.Unix(int64(ts), 0).UTC()
	default:
		return m.Now().UTC()
	}
}

func mapRole(hint *string) model.Role {
	if hint == nil {
		return model.RoleUnknown
	}
	switch strings.ToLower(*hint) {
	case "user":
		return model.RoleCustomer
	case "admin":
		return model.RoleAgent
	case "bot":
		return model.RoleBot
	default:
		return model.RoleUnknown
	}
}

// normalizeOptional collapses empty and whitespace-only strings to absent.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
