package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/bimbel-hq/rostering-api/internal/models"
)

// LessonRepository reads lesson occupancy. Placement of lessons is owned by
// the auto-scheduler; this side only ever reads.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs the repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListOccupants returns every (slot, person) occupancy fact for the week,
// with 1-based slot numbers.
func (r *LessonRepository) ListOccupants(ctx context.Context, weekID string) ([]models.LessonOccupant, error) {
	const query = `SELECT l.slot, lp.person_id
		FROM lessons l
		JOIN lesson_participants lp ON lp.lesson_id = l.id
		WHERE l.week_id = $1
		ORDER BY l.slot, lp.person_id`

	occupants := []models.LessonOccupant{}
	if err := r.db.SelectContext(ctx, &occupants, query, weekID); err != nil {
		return nil, fmt.Errorf("list lesson occupants: %w", err)
	}
	return occupants, nil
}
