package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bimbel-hq/rostering-api/internal/models"
)

// SnapshotRepository caches the last-known roster busy sets per week in
// Redis. The batch aggregator seeds working sets from here; misses fall back
// to a fresh database read.
type SnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository constructs the repository.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{client: client, ttl: ttl}
}

func snapshotKey(weekID string) string {
	return "roster:snapshot:" + weekID
}

// Get loads the cached snapshot for a week. The second return value reports
// whether the snapshot was present.
func (r *SnapshotRepository) Get(ctx context.Context, weekID string) (models.RosterSnapshot, bool, error) {
	if r == nil || r.client == nil {
		return nil, false, nil
	}
	raw, err := r.client.Get(ctx, snapshotKey(weekID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get roster snapshot: %w", err)
	}
	var snapshot models.RosterSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, false, fmt.Errorf("decode roster snapshot: %w", err)
	}
	return snapshot, true, nil
}

// Set stores the snapshot for a week with the configured TTL.
func (r *SnapshotRepository) Set(ctx context.Context, weekID string, snapshot models.RosterSnapshot) error {
	if r == nil || r.client == nil {
		return nil
	}
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode roster snapshot: %w", err)
	}
	if err := r.client.Set(ctx, snapshotKey(weekID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("set roster snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot for a week.
func (r *SnapshotRepository) Invalidate(ctx context.Context, weekID string) error {
	if r == nil || r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, snapshotKey(weekID)).Err(); err != nil {
		return fmt.Errorf("invalidate roster snapshot: %w", err)
	}
	return nil
}
