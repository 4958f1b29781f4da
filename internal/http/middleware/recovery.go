package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/dto"
)

// Recovery converts panics into the standard error envelope instead of
// gin's default plain-text response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			ErrorCode: dto.ErrCodeInternalError,
			Message:   "internal server error",
		})
	})
}
