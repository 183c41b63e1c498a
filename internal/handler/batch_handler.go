package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
	"github.com/bimbel-hq/rostering-api/pkg/response"
)

type batchService interface {
	Apply(ctx context.Context, req *dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error)
}

// BatchHandler exposes the batch busy-set edit endpoint.
type BatchHandler struct {
	service batchService
}

// NewBatchHandler builds a new handler.
func NewBatchHandler(service batchService) *BatchHandler {
	return &BatchHandler{service: service}
}

// Apply godoc
// @Summary Apply an editing session's cell toggles
// @Tags Busy
// @Accept json
// @Produce json
// @Param payload body dto.BatchUpdateRequest true "Batch toggles"
// @Success 200 {object} response.Envelope
// @Router /busy/batch [put]
func (h *BatchHandler) Apply(c *gin.Context) {
	var req dto.BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}
	result, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
