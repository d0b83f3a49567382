package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/domain/entity"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/usecase"
)

// QueryHandler handles free-text question requests
type QueryHandler struct {
	queryUC usecase.QueryUsecase
	logger  *zap.Logger
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryUC usecase.QueryUsecase, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryUC: queryUC,
		logger:  logger,
	}
}

// Query handles POST /api/v1/text/query. The response body is the
// answer object itself: {type, domain, answer, imageQuery?}.
func (h *QueryHandler) Query(c *gin.Context) {
	var query entity.TextQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		HandleInvalidRequest(c, "request body must be JSON with a text field")
		return
	}

	answer, err := h.queryUC.Answer(c.Request.Context(), &query)
	if err != nil {
		HandleUsecaseError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}
