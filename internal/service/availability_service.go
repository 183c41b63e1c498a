package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	"github.com/bimbel-hq/rostering-api/internal/models"
	"github.com/bimbel-hq/rostering-api/internal/timetable"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type rosterEntryReader interface {
	ListEntries(ctx context.Context, weekID string) ([]models.RosterEntry, error)
}

type occupancyReader interface {
	ListOccupants(ctx context.Context, weekID string) ([]models.LessonOccupant, error)
}

// AvailabilityService answers "who is free where" for a week: the 42-slot
// sweep over self-declared busy sets and lesson occupancy.
type AvailabilityService struct {
	roster  rosterEntryReader
	lessons occupancyReader
	logger  *zap.Logger
}

// NewAvailabilityService wires the service.
func NewAvailabilityService(roster rosterEntryReader, lessons occupancyReader, logger *zap.Logger) *AvailabilityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AvailabilityService{roster: roster, lessons: lessons, logger: logger}
}

// Grid computes per-slot free person ids and, when a group is given, whether
// the entire group can meet at each slot.
func (s *AvailabilityService) Grid(ctx context.Context, weekID string, group []string) (*dto.AvailabilityGridResponse, error) {
	if weekID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "week_id is required")
	}

	entries, err := s.roster.ListEntries(ctx, weekID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	busyByID := make(map[string]timetable.SlotSet, len(entries))
	for _, entry := range entries {
		busyByID[entry.ID] = timetable.FromExternal(entry.Slots)
	}

	for _, id := range group {
		if _, ok := busyByID[id]; !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("person %s not found in roster", id))
		}
	}

	occupants, err := s.lessons.ListOccupants(ctx, weekID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load lesson occupancy")
	}
	occ := timetable.NewOccupancy()
	for _, o := range occupants {
		occ.AddExternal(o.Slot, o.PersonID)
	}

	resp := &dto.AvailabilityGridResponse{
		WeekID: weekID,
		Group:  group,
		Slots:  make([]dto.SlotAvailability, 0, timetable.SlotsPerWeek),
	}
	for slot := timetable.Slot(0); slot < timetable.SlotsPerWeek; slot++ {
		cell := dto.SlotAvailability{
			Slot:          slot.External(),
			Day:           slot.Day().String(),
			TimeRange:     slot.Range().String(),
			FreePersonIDs: timetable.FreeAt(slot, busyByID, occ),
		}
		if len(group) > 0 {
			cell.GroupFree = timetable.AllFreeAt(slot, group, busyByID, occ)
		}
		resp.Slots = append(resp.Slots, cell)
	}
	return resp, nil
}

// Roster lists entries for a week with their completion classification,
// optionally narrowed to one kind or to incomplete responders only.
func (s *AvailabilityService) Roster(ctx context.Context, weekID string, kind models.PersonKind, incompleteOnly bool) (*dto.RosterResponse, error) {
	if weekID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "week_id is required")
	}
	if kind != "" && !kind.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown kind %q", kind))
	}

	entries, err := s.roster.ListEntries(ctx, weekID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	resp := &dto.RosterResponse{WeekID: weekID, Entries: make([]dto.RosterEntryResult, 0, len(entries))}
	for _, entry := range entries {
		if kind != "" && entry.Kind != kind {
			continue
		}
		busy := timetable.FromExternal(entry.Slots)
		declared := timetable.FullyDeclared(busy)
		if incompleteOnly && declared {
			continue
		}
		resp.Entries = append(resp.Entries, dto.RosterEntryResult{
			PersonID:        entry.ID,
			Email:           entry.Email,
			FullName:        entry.FullName,
			Kind:            string(entry.Kind),
			BusyScheduleArr: busy.ExternalSorted(),
			FullyDeclared:   declared,
		})
	}
	return resp, nil
}
