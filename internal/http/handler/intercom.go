package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/service"
)

type IntercomHandler struct {
	service service.IngestService
}

func NewIntercomHandler(service service.IngestService) *IntercomHandler {
	return &IntercomHandler{service: service}
}

// IngestConversation accepts a raw Intercom conversation payload and
// persists its normalized form. A first sighting of the natural key
// answers 201, a replay answers 200 with the originally stored id.
func (h *IntercomHandler) IngestConversation(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.IntercomConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "rejected intercom conversation payload", "error", err)
		status, body := bindingErrorResponse(err)
		c.JSON(status, body)
		return
	}

	result, err := h.service.IngestIntercom(ctx, &req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to ingest intercom conversation", "error", err, "external_id", req.ID)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeInternalError,
			Message:   "failed to ingest conversation",
		})
		return
	}

	status := http.StatusCreated
	if result.Deduplicated {
		status = http.StatusOK
	}
	c.JSON(status, dto.IngestConversationResponse{
		ID:           result.ID.String(),
		Provider:     string(result.Provider),
		ExternalID:   result.ExternalID,
		Deduplicated: result.Deduplicated,
	})
}
