package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bimbel-hq/rostering-api/internal/models"
)

// RosterRepository persists persons and their per-week busy schedules.
type RosterRepository struct {
	db *sqlx.DB
}

// NewRosterRepository constructs the repository.
func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// List returns persons matching the filter plus the total count.
func (r *RosterRepository) List(ctx context.Context, filter models.PersonFilter) ([]models.Person, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conditions = append(conditions, fmt.Sprintf("active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(email ILIKE $%d OR full_name ILIKE $%d)", len(args), len(args)))
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM persons WHERE " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count persons: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(
		"SELECT id, email, full_name, kind, active, created_at, updated_at FROM persons WHERE %s ORDER BY email LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args),
	)

	persons := []models.Person{}
	if err := r.db.SelectContext(ctx, &persons, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	return persons, total, nil
}

// FindByEmail resolves a person by their external roster key.
func (r *RosterRepository) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	const query = `SELECT id, email, full_name, kind, active, created_at, updated_at FROM persons WHERE email = $1`
	var person models.Person
	if err := r.db.GetContext(ctx, &person, query, email); err != nil {
		return nil, err
	}
	return &person, nil
}

type rosterEntryRow struct {
	models.Person
	Slots pq.Int64Array `db:"slots"`
}

// ListEntries returns every active person joined with their busy set for the
// week. Persons without a stored set come back with an empty one.
func (r *RosterRepository) ListEntries(ctx context.Context, weekID string) ([]models.RosterEntry, error) {
	const query = `SELECT p.id, p.email, p.full_name, p.kind, p.active, p.created_at, p.updated_at,
			COALESCE(b.slots, '{}') AS slots
		FROM persons p
		LEFT JOIN busy_schedules b ON b.person_id = p.id AND b.week_id = $1
		WHERE p.active = TRUE
		ORDER BY p.email`

	rows := []rosterEntryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, weekID); err != nil {
		return nil, fmt.Errorf("list roster entries: %w", err)
	}

	entries := make([]models.RosterEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.RosterEntry{
			Person: row.Person,
			WeekID: weekID,
			Slots:  []int64(row.Slots),
		})
	}
	return entries, nil
}

// ReplaceBusySet writes a person's complete busy set for the week. The stored
// set is replaced, never merged; callers must pass the full new set.
func (r *RosterRepository) ReplaceBusySet(ctx context.Context, exec sqlx.ExtContext, personID, weekID string, slots []int64) error {
	if exec == nil {
		exec = r.db
	}
	if slots == nil {
		slots = []int64{}
	}
	now := time.Now().UTC()

	const query = `INSERT INTO busy_schedules (id, person_id, week_id, slots, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (person_id, week_id) DO UPDATE
		SET slots = EXCLUDED.slots,
		    updated_at = EXCLUDED.updated_at`
	if _, err := exec.ExecContext(ctx, query, uuid.NewString(), personID, weekID, pq.Int64Array(slots), now); err != nil {
		return fmt.Errorf("replace busy set: %w", err)
	}
	return nil
}

// ListWeekIDs returns the week identifiers with stored busy schedules.
func (r *RosterRepository) ListWeekIDs(ctx context.Context) ([]string, error) {
	weekIDs := []string{}
	if err := r.db.SelectContext(ctx, &weekIDs, `SELECT DISTINCT week_id FROM busy_schedules ORDER BY week_id`); err != nil {
		return nil, fmt.Errorf("list week ids: %w", err)
	}
	return weekIDs, nil
}

// BeginTxx starts a transaction for multi-person batch writes.
func (r *RosterRepository) BeginTxx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}
