package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
	"github.com/bimbel-hq/rostering-api/pkg/response"
)

type importService interface {
	Preview(ctx context.Context, req *dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error)
	Commit(ctx context.Context, previewID string) (*dto.ImportCommitResponse, error)
	Report(ctx context.Context, previewID string) ([]byte, error)
}

// ImportHandler exposes the two-phase bulk import endpoints.
type ImportHandler struct {
	service importService
}

// NewImportHandler builds a new handler.
func NewImportHandler(service importService) *ImportHandler {
	return &ImportHandler{service: service}
}

// Preview godoc
// @Summary Parse bulk-import text into a reviewable preview
// @Tags Imports
// @Accept json
// @Produce json
// @Param payload body dto.ImportPreviewRequest true "Import payload"
// @Success 201 {object} response.Envelope
// @Router /imports/preview [post]
func (h *ImportHandler) Preview(c *gin.Context) {
	var req dto.ImportPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid import payload"))
		return
	}
	preview, err := h.service.Preview(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, preview)
}

// Commit godoc
// @Summary Write the error-free rows of a preview
// @Tags Imports
// @Produce json
// @Param id path string true "Preview id"
// @Success 200 {object} response.Envelope
// @Router /imports/{id}/commit [post]
func (h *ImportHandler) Commit(c *gin.Context) {
	result, err := h.service.Commit(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Report godoc
// @Summary Download a preview's row report as CSV
// @Tags Imports
// @Produce text/csv
// @Param id path string true "Preview id"
// @Success 200 {string} string "CSV content"
// @Router /imports/{id}/report [get]
func (h *ImportHandler) Report(c *gin.Context) {
	raw, err := h.service.Report(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="import-report.csv"`)
	c.Data(http.StatusOK, "text/csv", raw)
}
