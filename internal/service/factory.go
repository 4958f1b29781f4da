package service

import (
	"kbms.app/integrations/internal/mapper"
	"kbms.app/integrations/internal/queue"
	"kbms.app/integrations/internal/store"
)

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	events   queue.Producer
}

func NewServices(stores *store.Stores, txRunner TxRunner, events queue.Producer) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		events:   events,
	}
}

func (s *Services) Ingest() IngestService {
	return NewIngestService(mapper.NewIntercomMapper(), s.txRunner, s.events, nil)
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(s.stores.Conversations())
}
