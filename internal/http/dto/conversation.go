package dto

import "kbms.app/integrations/internal/model"

type IngestConversationResponse struct {
	ID           string `json:"id"`
	Provider     string `json:"provider"`
	ExternalID   string `json:"external_id"`
	Deduplicated bool   `json:"deduplicated"`
}

type ConversationListResponse struct {
	Items []model.ConversationListItem `json:"items"`
}
