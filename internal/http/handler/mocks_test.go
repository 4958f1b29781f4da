package handler_test

import (
	"context"

	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/model"
	"kbms.app/integrations/internal/service"
)

type mockIngestService struct {
	ingestFn func(ctx context.Context, payload *dto.IntercomConversationRequest) (*service.IngestResult, error)

	capturedPayload *dto.IntercomConversationRequest
}

func (m *mockIngestService) IngestIntercom(ctx context.Context, payload *dto.IntercomConversationRequest) (*service.IngestResult, error) {
	m.capturedPayload = payload
	return m.ingestFn(ctx, payload)
}

type mockConversationService struct {
	getFn  func(ctx context.Context, rawID string) (*model.Conversation, error)
	listFn func(ctx context.Context) ([]model.ConversationListItem, error)
}

func (m *mockConversationService) Get(ctx context.Context, rawID string) (*model.Conversation, error) {
	return m.getFn(ctx, rawID)
}

func (m *mockConversationService) List(ctx context.Context) ([]model.ConversationListItem, error) {
	return m.listFn(ctx)
}
