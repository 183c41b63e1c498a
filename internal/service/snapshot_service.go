package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bimbel-hq/rostering-api/internal/models"
	appErrors "github.com/bimbel-hq/rostering-api/pkg/errors"
)

type snapshotRosterReader interface {
	ListEntries(ctx context.Context, weekID string) ([]models.RosterEntry, error)
	ListWeekIDs(ctx context.Context) ([]string, error)
}

type snapshotCache interface {
	Get(ctx context.Context, weekID string) (models.RosterSnapshot, bool, error)
	Set(ctx context.Context, weekID string, snapshot models.RosterSnapshot) error
	Invalidate(ctx context.Context, weekID string) error
}

// SnapshotService maintains the cached last-known roster busy sets that the
// batch aggregator seeds from. Reads go through the cache; writes to busy
// sets invalidate it.
type SnapshotService struct {
	roster  snapshotRosterReader
	cache   snapshotCache
	metrics *MetricsService
	logger  *zap.Logger
}

// NewSnapshotService wires the service.
func NewSnapshotService(roster snapshotRosterReader, cache snapshotCache, metrics *MetricsService, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{roster: roster, cache: cache, metrics: metrics, logger: logger}
}

// Load returns the roster snapshot for a week, reading through the cache.
func (s *SnapshotService) Load(ctx context.Context, weekID string) (models.RosterSnapshot, error) {
	start := time.Now()
	snapshot, hit, err := s.cache.Get(ctx, weekID)
	s.metrics.RecordCacheOperation(hit, time.Since(start))
	if err != nil {
		// A broken cache degrades to a database read.
		s.logger.Warn("snapshot cache read failed", zap.String("week_id", weekID), zap.Error(err))
	}
	if hit {
		return snapshot, nil
	}
	return s.Warm(ctx, weekID)
}

// Warm rebuilds the snapshot for a week from the database and stores it.
func (s *SnapshotService) Warm(ctx context.Context, weekID string) (models.RosterSnapshot, error) {
	start := time.Now()
	entries, err := s.roster.ListEntries(ctx, weekID)
	s.metrics.ObserveDBQuery("roster_list_entries", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster for snapshot")
	}

	snapshot := make(models.RosterSnapshot, len(entries))
	for _, entry := range entries {
		snapshot[entry.Email] = models.SnapshotEntry{
			PersonID: entry.ID,
			Kind:     entry.Kind,
			Slots:    entry.Slots,
		}
	}
	if err := s.cache.Set(ctx, weekID, snapshot); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.String("week_id", weekID), zap.Error(err))
	}
	return snapshot, nil
}

// Invalidate drops the cached snapshot after a busy-set write.
func (s *SnapshotService) Invalidate(ctx context.Context, weekID string) {
	if err := s.cache.Invalidate(ctx, weekID); err != nil {
		s.logger.Warn("snapshot invalidation failed", zap.String("week_id", weekID), zap.Error(err))
	}
}

// RefreshAll rewarms every week with stored busy schedules. Run periodically.
func (s *SnapshotService) RefreshAll(ctx context.Context) error {
	weekIDs, err := s.roster.ListWeekIDs(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list weeks for snapshot refresh")
	}
	for _, weekID := range weekIDs {
		if _, err := s.Warm(ctx, weekID); err != nil {
			s.logger.Warn("snapshot refresh failed", zap.String("week_id", weekID), zap.Error(err))
		}
	}
	return nil
}
