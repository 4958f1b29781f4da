package router

import (
	"github.com/gin-gonic/gin"

	"kbms.app/integrations/internal/http/handler"
	"kbms.app/integrations/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	integrations := router.Group("/integrations")
	{
		intercomHandler := handler.NewIntercomHandler(services.Ingest())
		schemaHandler := handler.NewSchemaHandler()
		IntercomRouter(integrations.Group("/intercom"), intercomHandler, schemaHandler)
	}

	internal := router.Group("/internal")
	{
		conversationHandler := handler.NewConversationHandler(services.Conversations())
		ConversationRouter(internal.Group("/conversations"), conversationHandler)
	}
}
