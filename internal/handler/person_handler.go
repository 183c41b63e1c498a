package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bimbel-hq/rostering-api/internal/models"
	"github.com/bimbel-hq/rostering-api/pkg/response"
)

type personService interface {
	List(ctx context.Context, filter models.PersonFilter) ([]models.Person, *models.Pagination, error)
}

// PersonHandler exposes roster listing endpoints.
type PersonHandler struct {
	service personService
}

// NewPersonHandler builds a new handler.
func NewPersonHandler(service personService) *PersonHandler {
	return &PersonHandler{service: service}
}

// List godoc
// @Summary List roster persons
// @Tags Persons
// @Produce json
// @Param kind query string false "Filter by kind (user or teacher)"
// @Param search query string false "Match against email or full name"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /persons [get]
func (h *PersonHandler) List(c *gin.Context) {
	filter := models.PersonFilter{
		Search:   c.Query("search"),
		Kind:     models.PersonKind(c.Query("kind")),
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	}
	if raw, ok := c.GetQuery("active"); ok {
		active := raw == "true"
		filter.Active = &active
	}

	persons, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, persons, pagination)
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
