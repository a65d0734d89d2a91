package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Video views change rarely between mutations; dashboard stats
// tolerate short staleness.
const (
	VideoCacheTTL     = 5 * time.Minute
	DashboardCacheTTL = 1 * time.Minute
)

// CacheService provides a Redis cache-aside layer for video read views and
// dashboard statistics.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and every
// cache operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetVideo retrieves a cached video view. Returns nil if not cached.
func (c *CacheService) GetVideo(ctx context.Context, videoID string) ([]byte, error) {
	return c.get(ctx, videoKey(videoID))
}

// SetVideo stores a video view in cache.
func (c *CacheService) SetVideo(ctx context.Context, videoID string, data interface{}) error {
	return c.set(ctx, videoKey(videoID), data, VideoCacheTTL)
}

// InvalidateVideo removes a video view from cache (called after mutations).
func (c *CacheService) InvalidateVideo(ctx context.Context, videoID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, videoKey(videoID)).Err()
}

// GetDashboard retrieves cached dashboard stats for a channel.
func (c *CacheService) GetDashboard(ctx context.Context, channelID string) ([]byte, error) {
	return c.get(ctx, dashboardKey(channelID))
}

// SetDashboard stores dashboard stats for a channel.
func (c *CacheService) SetDashboard(ctx context.Context, channelID string, data interface{}) error {
	return c.set(ctx, dashboardKey(channelID), data, DashboardCacheTTL)
}

// InvalidateDashboard removes a channel's dashboard stats from cache.
func (c *CacheService) InvalidateDashboard(ctx context.Context, channelID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, dashboardKey(channelID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *CacheService) set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:%s", videoID)
}

func dashboardKey(channelID string) string {
	return fmt.Sprintf("dashboard:%s", channelID)
}
