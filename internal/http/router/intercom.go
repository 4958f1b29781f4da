package router

import (
	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/handler"
)

func IntercomRouter(router *gin.RouterGroup, intercom *handler.IntercomHandler, schema *handler.SchemaHandler) {
	router.POST("/conversations", intercom.IngestConversation)
	router.GET("/conversations/schema", schema.IntercomConversation)
}
