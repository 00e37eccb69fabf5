package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"jobmatch/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultTTL = 60 * time.Second

var ErrUnavailable = errors.New("redis unavailable")

// Redis is a JSON cache. When the server cannot be reached at startup every
// operation becomes a no-op, so callers never have to special-case a missing
// cache.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) *Redis {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "cache"))

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn("redis unavailable, bypassing cache", zap.String("addr", cfg.Addr()), zap.Error(err))
		_ = client.Close()
		return &Redis{ttl: cfg.CacheTTL, log: log}
	}

	log.Info("redis connected", zap.String("addr", cfg.Addr()))
	return &Redis{client: client, ttl: cfg.CacheTTL, log: log}
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r == nil || r.log == nil {
		return
	}
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn("redis error, cache degraded", zap.Error(err))
	}
}

// Enabled reports whether the cache reached Redis at startup.
func (r *Redis) Enabled() bool {
	return !r.isUnavailable()
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.isUnavailable() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON decodes the value at key into out. A miss reports false with a nil
// error.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value at key. A non-positive ttl falls back to the
// configured TTL, then to DefaultTTL.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}
