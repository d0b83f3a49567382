package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/usecase"
)

// MockQueryUsecase is a mock implementation of usecase.QueryUsecase
type MockQueryUsecase struct {
	mock.Mock
}

func (m *MockQueryUsecase) Answer(ctx context.Context, query *entity.TextQuery) (*entity.TextAnswer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TextAnswer), args.Error(1)
}

func queryRouter(uc usecase.QueryUsecase) *gin.Engine {
	router := gin.New()
	h := NewQueryHandler(uc, zap.NewNop())
	router.POST("/api/v1/text/query", h.Query)
	return router
}

func postQuery(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/text/query", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestQueryHandler_Query(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns the answer object", func(t *testing.T) {
		mockUC := new(MockQueryUsecase)
		mockUC.On("Answer", mock.Anything, mock.MatchedBy(func(q *entity.TextQuery) bool {
			return q.Text == "What causes yellow spots on tomato plant leaves?"
		})).Return(entity.NewTextualAnswer(entity.DomainPlant, "Causes: fungal infection."), nil)

		w := postQuery(t, queryRouter(mockUC), `{"text":"What causes yellow spots on tomato plant leaves?"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var answer entity.TextAnswer
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &answer))
		assert.Equal(t, entity.AnswerTypeText, answer.Type)
		assert.Equal(t, entity.DomainPlant, answer.Domain)
		assert.Equal(t, "Causes: fungal infection.", answer.Answer)
		assert.Nil(t, answer.ImageQuery)
		mockUC.AssertExpectations(t)
	})

	t.Run("image answers include imageQuery", func(t *testing.T) {
		mockUC := new(MockQueryUsecase)
		mockUC.On("Answer", mock.Anything, mock.Anything).
			Return(entity.NewImageAnswer(entity.DomainPlant, "This image is related to rice in the plant domain.", "rice"), nil)

		w := postQuery(t, queryRouter(mockUC), `{"text":"show me a photo of rice"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"imageQuery":"rice"`)
	})

	t.Run("blank text is rejected with 400", func(t *testing.T) {
		mockUC := new(MockQueryUsecase)
		mockUC.On("Answer", mock.Anything, mock.Anything).Return(nil, usecase.ErrEmptyQuery)

		w := postQuery(t, queryRouter(mockUC), `{"text":"   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	})

	t.Run("malformed body is rejected with 400", func(t *testing.T) {
		mockUC := new(MockQueryUsecase)

		w := postQuery(t, queryRouter(mockUC), `{"text":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUC.AssertNotCalled(t, "Answer")
	})
}
