package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"salon-ads/internal/config/configs"
	"salon-ads/internal/core/port"
)

// Entry is one recorded activity, newest first in the list.
type Entry struct {
	UserID    int64          `json:"user_id"`
	EventType string         `json:"event_type"`
	Details   map[string]any `json:"details,omitempty"`
	At        time.Time      `json:"at"`
}

// RedisRecorder appends activity entries to a capped Redis list.
type RedisRecorder struct {
	client redis.Cmdable
	key    string
	maxLen int64
	now    func() time.Time
	logger *slog.Logger
}

// NewRedisClient connects and pings.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisRecorder creates a recorder writing to cfg.ActivityKey.
func NewRedisRecorder(client redis.Cmdable, cfg configs.Redis, logger *slog.Logger) *RedisRecorder {
	return &RedisRecorder{
		client: client,
		key:    cfg.ActivityKey,
		maxLen: cfg.ActivityMaxLen,
		now:    time.Now,
		logger: logger,
	}
}

// Record pushes an entry and trims the list to its configured length.
func (r *RedisRecorder) Record(ctx context.Context, userID int64, eventType string, details map[string]any) error {
	payload, err := json.Marshal(Entry{
		UserID:    userID,
		EventType: eventType,
		Details:   details,
		At:        r.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode activity: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.LPush(ctx, r.key, payload)
		if r.maxLen > 0 {
			p.LTrim(ctx, r.key, 0, r.maxLen-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("push activity: %w", err)
	}
	r.logger.Debug("activity recorded", slog.Int64("user_id", userID), slog.String("event", eventType))
	return nil
}

// Recent returns up to n newest entries.
func (r *RedisRecorder) Recent(ctx context.Context, n int64) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	raw, err := r.client.LRange(ctx, r.key, 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}
	out := make([]Entry, 0, len(raw))
	for _, s := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

var _ port.ActivityRecorder = (*RedisRecorder)(nil)
