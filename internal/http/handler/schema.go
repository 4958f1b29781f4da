package handler

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"

	"kbms.app/integrations/internal/http/dto"
)

// SchemaHandler publishes the JSON Schema of the accepted ingest payload
// so provider-side integrations can validate before sending.
type SchemaHandler struct {
	once   sync.Once
	schema *jsonschema.Schema
}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

func (h *SchemaHandler) IntercomConversation(c *gin.Context) {
	h.once.Do(func() {
		reflector := jsonschema.Reflector{
			ExpandedStruct: true,
			DoNotReference: true,
		}
		h.schema = reflector.Reflect(&dto.IntercomConversationRequest{})
	})
	c.JSON(http.StatusOK, h.schema)
}
