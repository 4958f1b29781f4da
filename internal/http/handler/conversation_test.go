package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kbms.app/integrations/internal/http/dto"
	"kbms.app/integrations/internal/http/handler"
	"kbms.app/integrations/internal/model"
	"kbms.app/integrations/internal/service"
)

var _ = Describe("ConversationHandler", func() {
	var (
		engine        *gin.Engine
		conversations *mockConversationService
		perform       func(path string) *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		conversations = &mockConversationService{}

		engine = gin.New()
		h := handler.NewConversationHandler(conversations)
		engine.GET("/internal/conversations", h.List)
		engine.GET("/internal/conversations/:id", h.Get)

		perform = func(path string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)
			return rec
		}
	})

	Describe("List", func() {
		It("returns the list projection", func() {
			created := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
			preview := "Thanks, that fixed it"
			conversations.listFn = func(ctx context.Context) ([]model.ConversationListItem, error) {
				return []model.ConversationListItem{{
					ID:                 uuid.New(),
					Provider:           model.ProviderIntercom,
					ExternalID:         "conv-9",
					CreatedAt:          created,
					ParticipantCount:   2,
					MessageCount:       3,
					LastMessageAt:      &created,
					LastMessagePreview: &preview,
				}}, nil
			}

			rec := perform("/internal/conversations")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp dto.ConversationListResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Items).To(HaveLen(1))
			Expect(resp.Items[0].ExternalID).To(Equal("conv-9"))
			Expect(resp.Items[0].MessageCount).To(Equal(3))
			Expect(*resp.Items[0].LastMessagePreview).To(Equal(preview))
		})

		It("returns an empty items array rather than null", func() {
			conversations.listFn = func(ctx context.Context) ([]model.ConversationListItem, error) {
				return []model.ConversationListItem{}, nil
			}

			rec := perform("/internal/conversations")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"items":[]`))
		})

		It("answers 500 with the error envelope on store failure", func() {
			conversations.listFn = func(ctx context.Context) ([]model.ConversationListItem, error) {
				return nil, errors.New("timeout")
			}

			rec := perform("/internal/conversations")
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeInternalError))
		})
	})

	Describe("Get", func() {
		It("returns the full conversation", func() {
			convID := uuid.New()
			conversations.getFn = func(ctx context.Context, rawID string) (*model.Conversation, error) {
				Expect(rawID).To(Equal(convID.String()))
				return &model.Conversation{
					ID:           convID,
					Provider:     model.ProviderIntercom,
					ExternalID:   "conv-9",
					CreatedAt:    time.Unix(1700000000, 0).UTC(),
					Participants: []model.Participant{{ID: "u1", Role: model.RoleCustomer}},
					Messages:     []model.Message{{AuthorParticipantID: "u1", SentAt: time.Unix(1700000000, 0).UTC(), Content: "hello"}},
				}, nil
			}

			rec := perform("/internal/conversations/" + convID.String())
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp model.Conversation
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ID).To(Equal(convID))
			Expect(resp.Messages).To(HaveLen(1))
		})

		It("answers 404 for an unknown id", func() {
			conversations.getFn = func(ctx context.Context, rawID string) (*model.Conversation, error) {
				return nil, service.ErrConversationNotFound
			}

			rec := perform("/internal/conversations/" + uuid.New().String())
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			var resp dto.ErrorResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.ErrorCode).To(Equal(dto.ErrCodeNotFound))
		})

		It("answers 500 on unexpected errors", func() {
			conversations.getFn = func(ctx context.Context, rawID string) (*model.Conversation, error) {
				return nil, errors.New("connection reset")
			}

			rec := perform("/internal/conversations/" + uuid.New().String())
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
