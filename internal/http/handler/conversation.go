package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/service"
)

type ConversationHandler struct {
	service service.ConversationService
}

func NewConversationHandler(service service.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

func (h *ConversationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.service.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list conversations", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeInternalError,
			Message:   "failed to list conversations",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ConversationListResponse{Items: items})
}

func (h *ConversationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	conv, err := h.service.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				ErrorCode: dto.ErrCodeNotFound,
				Message:   "conversation not found",
			})
			return
		}
		slog.ErrorContext(ctx, "failed to fetch conversation", "error", err, "conversation_id", c.Param("id"))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeInternalError,
			Message:   "failed to fetch conversation",
		})
		return
	}

	c.JSON(http.StatusOK, conv)
}
