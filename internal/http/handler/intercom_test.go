package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/http/handler"
	"kbms.app/integrations/internal/model"
	"kbms.app/integrations/internal/service"
)

var _ = Describe("IntercomHandler", func() {
	var (
		engine  *gin.Engine
		ingest  *mockIngestService
		convID  uuid.UUID
		perform func(body string) *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		convID = uuid.New()
		ingest = &mockIngestService{
			ingestFn: func(ctx context.Context, payload *dto.IntercomConversationRequest) (*service.IngestResult, error) {
				return &service.IngestResult{
					ID:         convID,
					Provider:   model.ProviderIntercom,
					ExternalID: payload.ID,
				}, nil
			},
		}

		engine = gin.New()
		h := handler.NewIntercomHandler(ingest)
		engine.POST("/integrations/intercom/conversations", h.IngestConversation)

		perform = func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/integrations/intercom/conversations", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			return rec
		}
	})

	It("answers 201 with the stored identity on first ingest", func() {
		rec := perform(`{"type":"conversation","id":"conv-1","created_at":1700000000}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var resp dto.IngestConversationResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.ID).To(Equal(convID.String()))
		Expect(resp.Provider).To(Equal("intercom"))
		Expect(resp.ExternalID).To(Equal("conv-1"))
		Expect(resp.Deduplicated).To(BeFalse())
	})

	It("answers 200 with the original id on a replay", func() {
		ingest.ingestFn = func(ctx context.Context, payload *dto.IntercomConversationRequest) (*service.IngestResult, error) {
			return &service.IngestResult{
				ID:           convID,
				Provider:     model.ProviderIntercom,
				ExternalID:   payload.ID,
				Deduplicated: true,
			}, nil
		}

		rec := perform(`{"type":"conversation","id":"conv-1","created_at":1700000000}`)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp dto.IngestConversationResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.ID).To(Equal(convID.String()))
		Expect(resp.Deduplicated).To(BeTrue())
	})

	It("answers 500 with the error envelope when ingestion fails", func() {
		ingest.ingestFn = func(ctx context.Context, payload *dto.IntercomConversationRequest) (*service.IngestResult, error) {
			return nil, errors.New("database unavailable")
		}

		rec := perform(`{"type":"conversation","id":"conv-1","created_at":1700000000}`)
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))

		var resp dto.ErrorResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.ErrorCode).To(Equal(dto.ErrCodeInternalError))
	})

	Describe("payload rejection", func() {
		It("answers 400 for malformed JSON without touching the service", func() {
			rec := perform(`{"id": "conv-1",`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeInvalidJSON))
			Expect(ingest.capturedPayload).To(BeNil())
		})

		It("answers 400 for an empty body", func() {
			rec := perform(``)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeInvalidJSON))
		})

		It("answers 422 naming the missing field", func() {
			rec := perform(`{"type":"conversation","id":"conv-1"}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeValidationError))
			Expect(resp.Details).To(ContainElement(dto.FieldError{
				Field:   "created_at",
				Issue:   dto.IssueMissing,
				Message: "field is required",
			}))
			Expect(ingest.capturedPayload).To(BeNil())
		})

		It("answers 422 with a dot-path for a nested violation", func() {
			rec := perform(`{
				"type": "conversation",
				"id": "conv-1",
				"created_at": 1700000000,
				"conversation_message": {"body": "hi", "author": {"type": "admin"}}
			}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Details).To(ContainElement(dto.FieldError{
				Field:   "conversation_message.author.id",
				Issue:   dto.IssueMissing,
				Message: "field is required",
			}))
		})

		It("answers 422 with a type error for a non-numeric created_at", func() {
			rec := perform(`{"type":"conversation","id":"conv-1","created_at":"not-an-int"}`)
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Details).To(HaveLen(1))
			Expect(resp.Details[0].Field).To(Equal("created_at"))
			Expect(resp.Details[0].Issue).To(Equal(dto.IssueTypeError))
		})

		It("answers 400 when the body is a JSON array", func() {
			rec := perform(`[1, 2, 3]`)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeInvalidJSON))
		})
	})
})
