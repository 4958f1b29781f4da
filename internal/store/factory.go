package store

import (
	"kbms.app/integrations/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Conversations() ConversationStore {
	return newConversationStore(s.queries)
}
