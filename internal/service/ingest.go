package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"kbms.app/integrations/common/logger"
	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/mapper"
	"kbms.app/integrations/internal/model"
	"kbms.app/integrations/internal/queue"
)

type IngestResult struct {
	ID           uuid.UUID
	Provider     model.Provider
	ExternalID   string
	Deduplicated bool
}

// IngestService orchestrates one ingestion call: map the provider
// payload, persist it idempotently, respond with the stored identity.
type IngestService interface {
	IngestIntercom(ctx context.Context, payload *dto.IntercomConversationRequest) (*IngestResult, error)
}

type ingestService struct {
	mapper   *mapper.IntercomMapper
	txRunner TxRunner
	events   queue.Producer
	logger   *slog.Logger
}

func NewIngestService(m *mapper.IntercomMapper, txRunner TxRunner, events queue.Producer, logger *slog.Logger) IngestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ingestService{
		mapper:   m,
		txRunner: txRunner,
		events:   events,
		logger:   logger,
	}
}

// IngestIntercom maps and upserts the payload. The returned id is always
// the stored one: when the natural key already exists, the freshly
// mapped candidate (including its generated id) is discarded and the
// original record's id is reported with Deduplicated=true. Storage
// failures propagate as-is; there are no retries at this layer.
func (s *ingestService) IngestIntercom(ctx context.Context, payload *dto.IntercomConversationRequest) (*IngestResult, error) {
	sc := logger.StartSpan(ctx, "integrations.ingest.intercom")
	defer sc.End()
	ctx = sc.Context()

	conv := s.mapper.Map(payload)

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Provider:   logger.Ptr(string(conv.Provider)),
		ExternalID: logger.Ptr(conv.ExternalID),
		Component:  "integrations.ingest",
	})

	var (
		stored  *model.Conversation
		created bool
	)
	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		var err error
		stored, created, err = sp.Conversations().CreateOrGet(ctx, conv)
		if err != nil {
			return fmt.Errorf("upserting conversation: %w", err)
		}
		return nil
	}); err != nil {
		sc.RecordError(err)
		return nil, err
	}

	if created {
		// Best-effort: the ingest result reflects storage truth even
		// when the event stream is unavailable.
		if err := s.events.Publish(ctx, queue.ConversationIngestedEvent{
			ConversationID: stored.ID.String(),
			Provider:       string(stored.Provider),
			ExternalID:     stored.ExternalID,
		}); err != nil {
			s.logger.WarnContext(ctx, "failed to publish conversation ingested event", "error", err, "conversation_id", stored.ID)
		}
		s.logger.InfoContext(ctx, "conversation ingested", "conversation_id", stored.ID, "participants", len(stored.Participants), "messages", len(stored.Messages))
	} else {
		s.logger.InfoContext(ctx, "duplicate conversation deduped", "conversation_id", stored.ID)
	}

	return &IngestResult{
		ID:           stored.ID,
		Provider:     conv.Provider,
		ExternalID:   conv.ExternalID,
		Deduplicated: !created,
	}, nil
}
