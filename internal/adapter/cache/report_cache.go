// Package cache memoizes generated disease reports. A classification
// label always maps to the same report text, so the expensive
// generation step only runs once per label per TTL window.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const reportKeyPrefix = "agriliv:report:"

// ReportCache stores generated remediation reports keyed by disease
// label. A nil *ReportCache is valid and behaves as a permanent miss.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewReportCache creates a report cache backed by the given Redis client
func NewReportCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached report for a label. Cache errors are logged
// and treated as misses so the pipeline never fails on the cache path.
func (c *ReportCache) Get(ctx context.Context, label string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}

	text, err := c.client.Get(ctx, reportKey(label)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("report cache read failed", zap.String("label", label), zap.Error(err))
		}
		return "", false
	}
	return text, true
}

// Set stores a report for a label. Failures are logged and swallowed.
func (c *ReportCache) Set(ctx context.Context, label, text string) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Set(ctx, reportKey(label), text, c.ttl).Err(); err != nil {
		c.logger.Warn("report cache write failed", zap.String("label", label), zap.Error(err))
	}
}

func reportKey(label string) string {
	return reportKeyPrefix + strings.ToLower(label)
}
