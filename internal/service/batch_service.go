package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/bimbel-hq/rostering-api/internal/dto"
	"github.com/bimbel-hq/rostering-api/internal/models"
	"github.com/bimbel-hq/rostering-api/internal/timetable"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type snapshotLoader interface {
	Load(ctx context.Context, weekID string) (models.RosterSnapshot, error)
	Invalidate(ctx context.Context, weekID string)
}

type busySetWriter interface {
	BeginTxx(ctx context.Context) (*sqlx.Tx, error)
	ReplaceBusySet(ctx context.Context, exec sqlx.ExtContext, personID, weekID string, slots []int64) error
}

// BatchService collapses an editing session's cell toggles into the minimal
// set of per-person writes: however many toggles touch a person, exactly one
// full-replacement mutation is produced for them.
type BatchService struct {
	roster    busySetWriter
	snapshots snapshotLoader
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewBatchService wires the service.
func NewBatchService(roster busySetWriter, snapshots snapshotLoader, v *validator.Validate, metrics *MetricsService, logger *zap.Logger) *BatchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{roster: roster, snapshots: snapshots, validator: v, metrics: metrics, logger: logger}
}

// Apply seeds each touched person's working set from the week snapshot,
// replays their toggles in request order, and writes every resulting busy set
// in a single transaction. Toggles for keys absent from the snapshot are
// skipped; writing a replacement set without a known base would erase slots
// the caller never touched.
func (s *BatchService) Apply(ctx context.Context, req *dto.BatchUpdateRequest) (*dto.BatchUpdateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	snapshot, err := s.snapshots.Load(ctx, req.WeekID)
	if err != nil {
		return nil, err
	}

	working := make(map[string]timetable.SlotSet)
	order := make([]string, 0, len(req.Toggles))
	skipped := []dto.SkippedToggle{}
	skippedKeys := make(map[string]struct{})

	for _, toggle := range req.Toggles {
		entry, known := snapshot[toggle.Key]
		if !known {
			if _, seen := skippedKeys[toggle.Key]; !seen {
				skippedKeys[toggle.Key] = struct{}{}
				skipped = append(skipped, dto.SkippedToggle{Key: toggle.Key, Reason: "person not found in roster"})
				s.logger.Warn("dropping toggles for unknown person",
					zap.String("week_id", req.WeekID),
					zap.String("key", toggle.Key))
			}
			continue
		}

		slot, ok := timetable.SlotFromExternal(toggle.Slot)
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("slot %d is outside the week", toggle.Slot))
		}

		set, touched := working[toggle.Key]
		if !touched {
			set = timetable.FromExternal(entry.Slots)
			working[toggle.Key] = set
			order = append(order, toggle.Key)
		}
		if toggle.Busy {
			set.Add(slot)
		} else {
			set.Remove(slot)
		}
	}

	mutations := make([]models.BatchMutation, 0, len(order))
	for _, key := range order {
		mutations = append(mutations, models.BatchMutation{
			Key:             key,
			BusyScheduleArr: working[key].ExternalSorted(),
			Type:            snapshot[key].Kind,
		})
	}

	if len(mutations) > 0 {
		tx, err := s.roster.BeginTxx(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin batch write")
		}
		for _, m := range mutations {
			if err := s.roster.ReplaceBusySet(ctx, tx, snapshot[m.Key].PersonID, req.WeekID, m.BusyScheduleArr); err != nil {
				tx.Rollback()
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write busy set")
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit batch write")
		}
		s.snapshots.Invalidate(ctx, req.WeekID)
		s.metrics.CountBatchMutations(len(mutations))
	}

	s.logger.Info("batch edit applied",
		zap.String("week_id", req.WeekID),
		zap.Int("toggles", len(req.Toggles)),
		zap.Int("mutations", len(mutations)),
		zap.Int("skipped", len(skipped)))

	return &dto.BatchUpdateResponse{
		WeekID:    req.WeekID,
		Mutations: mutations,
		Skipped:   skipped,
	}, nil
}
