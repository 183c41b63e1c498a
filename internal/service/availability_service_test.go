package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bimbel-hq/rostering-api/internal/models"
	"github.com/bimbel-hq/rostering-api/internal/timetable"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type stubRosterReader struct {
	entries []models.RosterEntry
}

func (s *stubRosterReader) ListEntries(_ context.Context, _ string) ([]models.RosterEntry, error) {
	return s.entries, nil
}

type stubOccupancyReader struct {
	occupants []models.LessonOccupant
}

func (s *stubOccupancyReader) ListOccupants(_ context.Context, _ string) ([]models.LessonOccupant, error) {
	return s.occupants, nil
}

func entry(id, email string, kind models.PersonKind, slots ...int64) models.RosterEntry {
	return models.RosterEntry{
		Person: models.Person{ID: id, Email: email, Kind: kind, Active: true},
		WeekID: "2026-W01",
		Slots:  slots,
	}
}

func TestAvailabilityGridSweepsAllSlots(t *testing.T) {
	roster := &stubRosterReader{entries: []models.RosterEntry{
		entry("p-1", "alice@x.com", models.KindStudent, 1),
		entry("p-2", "mr.t@x.com", models.KindTeacher),
	}}
	lessons := &stubOccupancyReader{}
	svc := NewAvailabilityService(roster, lessons, nil)

	grid, err := svc.Grid(context.Background(), "2026-W01", nil)
	require.NoError(t, err)

	require.Len(t, grid.Slots, timetable.SlotsPerWeek)
	assert.Equal(t, 1, grid.Slots[0].Slot)
	assert.Equal(t, "Monday", grid.Slots[0].Day)
	assert.Equal(t, "08:00-10:00", grid.Slots[0].TimeRange)
	// Slot 1 is alice's declared busy slot.
	assert.Equal(t, []string{"p-2"}, grid.Slots[0].FreePersonIDs)
	assert.Equal(t, []string{"p-1", "p-2"}, grid.Slots[1].FreePersonIDs)
}

func TestAvailabilityGridLessonOccupancyExcludes(t *testing.T) {
	roster := &stubRosterReader{entries: []models.RosterEntry{
		entry("p-1", "alice@x.com", models.KindStudent),
		entry("p-2", "mr.t@x.com", models.KindTeacher),
	}}
	lessons := &stubOccupancyReader{occupants: []models.LessonOccupant{
		{Slot: 4, PersonID: "p-1"},
	}}
	svc := NewAvailabilityService(roster, lessons, nil)

	grid, err := svc.Grid(context.Background(), "2026-W01", []string{"p-1", "p-2"})
	require.NoError(t, err)

	// p-1 is in a lesson at slot 4 even though their busy set is empty.
	assert.Equal(t, []string{"p-2"}, grid.Slots[3].FreePersonIDs)
	assert.False(t, grid.Slots[3].GroupFree)
	assert.True(t, grid.Slots[4].GroupFree)
}

func TestAvailabilityGridUnknownGroupMember(t *testing.T) {
	roster := &stubRosterReader{entries: []models.RosterEntry{
		entry("p-1", "alice@x.com", models.KindStudent),
	}}
	svc := NewAvailabilityService(roster, &stubOccupancyReader{}, nil)

	_, err := svc.Grid(context.Background(), "2026-W01", []string{"p-9"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAvailabilityGridRequiresWeekID(t *testing.T) {
	svc := NewAvailabilityService(&stubRosterReader{}, &stubOccupancyReader{}, nil)

	_, err := svc.Grid(context.Background(), "", nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAvailabilityRosterClassification(t *testing.T) {
	all := make([]int64, 0, timetable.SlotsPerWeek)
	for i := int64(1); i <= int64(timetable.SlotsPerWeek); i++ {
		all = append(all, i)
	}
	roster := &stubRosterReader{entries: []models.RosterEntry{
		entry("p-1", "alice@x.com", models.KindStudent, all...),
		entry("p-2", "bob@x.com", models.KindStudent, 1, 2),
		entry("p-3", "mr.t@x.com", models.KindTeacher),
	}}
	svc := NewAvailabilityService(roster, &stubOccupancyReader{}, nil)

	resp, err := svc.Roster(context.Background(), "2026-W01", "", false)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 3)
	assert.True(t, resp.Entries[0].FullyDeclared)
	assert.False(t, resp.Entries[1].FullyDeclared)

	incomplete, err := svc.Roster(context.Background(), "2026-W01", models.KindStudent, true)
	require.NoError(t, err)
	require.Len(t, incomplete.Entries, 1)
	assert.Equal(t, "bob@x.com", incomplete.Entries[0].Email)
}

func TestAvailabilityRosterRejectsUnknownKind(t *testing.T) {
	svc := NewAvailabilityService(&stubRosterReader{}, &stubOccupancyReader{}, nil)

	_, err := svc.Roster(context.Background(), "2026-W01", "parent", false)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
