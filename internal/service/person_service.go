package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bimbel-hq/rostering-api/internal/models"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type personLister interface {
	List(ctx context.Context, filter models.PersonFilter) ([]models.Person, int, error)
}

// PersonService serves roster listings for the admin screens.
type PersonService struct {
	roster personLister
	logger *zap.Logger
}

// NewPersonService wires the service.
func NewPersonService(roster personLister, logger *zap.Logger) *PersonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonService{roster: roster, logger: logger}
}

// List returns persons matching the filter plus pagination metadata.
func (s *PersonService) List(ctx context.Context, filter models.PersonFilter) ([]models.Person, *models.Pagination, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown kind %q", filter.Kind))
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	persons, total, err := s.roster.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list persons")
	}

	totalPages := total / filter.PageSize
	if total%filter.PageSize > 0 {
		totalPages++
	}
	pagination := &models.Pagination{
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
	return persons, pagination, nil
}
