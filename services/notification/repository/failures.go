package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jetcab/dispatch/internal/pkg/constants"
	"github.com/jetcab/dispatch/internal/pkg/database"
	"github.com/jetcab/dispatch/internal/pkg/logger"
	"github.com/jetcab/dispatch/internal/pkg/models"
)

// FailureRepo stores exhausted notification attempts in a Redis list so
// operators can review and replay them.
type FailureRepo struct {
	redisClient *database.RedisClient
}

// NewFailureRepository creates a new failure repository
func NewFailureRepository(redisClient *database.RedisClient) *FailureRepo {
	return &FailureRepo{redisClient: redisClient}
}

// RecordFailure prepends a failed delivery to the failure list
func (r *FailureRepo) RecordFailure(ctx context.Context, failure models.NotificationFailure) error {
	data, err := json.Marshal(failure)
	if err != nil {
		return fmt.Errorf("failed to marshal notification failure: %w", err)
	}

	if err := r.redisClient.LPush(ctx, constants.KeyNotifyFailures, data); err != nil {
		return fmt.Errorf("failed to record notification failure: %w", err)
	}

	return nil
}

// ListFailures returns recorded failures, newest first. A non-positive limit
// returns the whole list.
func (r *FailureRepo) ListFailures(ctx context.Context, limit int64) ([]models.NotificationFailure, error) {
	stop := limit - 1
	if limit <= 0 {
		stop = -1
	}

	entries, err := r.redisClient.LRange(ctx, constants.KeyNotifyFailures, 0, stop)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification failures: %w", err)
	}

	failures := make([]models.NotificationFailure, 0, len(entries))
	for _, entry := range entries {
		var failure models.NotificationFailure
		if err := json.Unmarshal([]byte(entry), &failure); err != nil {
			logger.Warn("Skipping malformed notification failure entry",
				logger.Err(err))
			continue
		}
		failures = append(failures, failure)
	}

	return failures, nil
}
