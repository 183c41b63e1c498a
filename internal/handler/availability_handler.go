package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	"github.com/bimbel-hq/rostering-api/internal/models"
	"github.com/bimbel-hq/rostering-api/pkg/response"
)

type availabilityService interface {
	Grid(ctx context.Context, weekID string, group []string) (*dto.AvailabilityGridResponse, error)
	Roster(ctx context.Context, weekID string, kind models.PersonKind, incompleteOnly bool) (*dto.RosterResponse, error)
}

// AvailabilityHandler exposes the availability matrix endpoints.
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler builds a new handler.
func NewAvailabilityHandler(service availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// Grid godoc
// @Summary Availability grid for a week
// @Tags Availability
// @Produce json
// @Param weekId query string true "Week identifier"
// @Param group query string false "Comma-separated person ids to intersect"
// @Success 200 {object} response.Envelope
// @Router /availability/grid [get]
func (h *AvailabilityHandler) Grid(c *gin.Context) {
	group := splitList(c.Query("group"))
	grid, err := h.service.Grid(c.Request.Context(), c.Query("weekId"), group)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}

// Roster godoc
// @Summary Roster entries with completion classification
// @Tags Availability
// @Produce json
// @Param weekId query string true "Week identifier"
// @Param kind query string false "Filter by kind (user or teacher)"
// @Param incomplete query bool false "Only persons who have not marked all slots"
// @Success 200 {object} response.Envelope
// @Router /availability/roster [get]
func (h *AvailabilityHandler) Roster(c *gin.Context) {
	incompleteOnly := c.Query("incomplete") == "true"
	roster, err := h.service.Roster(c.Request.Context(), c.Query("weekId"), models.PersonKind(c.Query("kind")), incompleteOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, roster, nil)
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
