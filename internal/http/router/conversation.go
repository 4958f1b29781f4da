package router

import (
	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/handler"
)

func ConversationRouter(router *gin.RouterGroup, conversations *handler.ConversationHandler) {
	router.GET("", conversations.List)
	router.GET("/:id", conversations.Get)
}
