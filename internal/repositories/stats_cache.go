package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/autoapply/unified-service/internal/logger"
	"github.com/autoapply/unified-service/internal/models"
)

// StatsCacheRepository keeps dashboard aggregates in Redis so repeated
// dashboard loads do not hit Postgres. Entries are short-lived and
// invalidated on every job mutation.
type StatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached stats
}

// NewStatsCacheRepository creates a new repository instance with the given TTL.
func NewStatsCacheRepository(client *redis.Client, expiration time.Duration) *StatsCacheRepository {
	return &StatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func statsKey(userID uuid.UUID) string {
	return fmt.Sprintf("dashboard_stats:%s", userID)
}

// Get fetches cached dashboard stats for a user.
func (r *StatsCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	key := statsKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("stats cache read",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("dashboard stats not found in cache for user %s", userID)
		}
		return nil, err
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow("stats cache read",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("stats cache read",
		"key", key,
		"error", nil,
	)

	return &stats, nil
}

// Set caches dashboard stats with the configured expiration.
func (r *StatsCacheRepository) Set(ctx context.Context, userID uuid.UUID, stats *models.DashboardStats) error {
	key := statsKey(userID)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("stats cache write",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached stats after a job mutation.
func (r *StatsCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := statsKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("stats cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
