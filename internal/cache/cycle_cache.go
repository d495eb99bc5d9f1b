package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/config"
	"github.com/misterclayt0n/wendler/internal/logger"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "wendler:cycle"

// CycleCache keeps generated cycles in Redis. Generation is pure, so the key
// is derived from the full profile and any profile edit changes it. A nil
// *CycleCache is valid and always generates.
type CycleCache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *logger.Logger
}

// New connects to the Redis server in cfg. It returns nil without error when
// no address is configured.
func New(ctx context.Context, cfg config.CacheConfig, log *logger.Logger) (*CycleCache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.RedisAddr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 2 * time.Second,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewWithClient(rdb, cfg.TTL.Duration, log), nil
}

func NewWithClient(rdb *goredis.Client, ttl time.Duration, log *logger.Logger) *CycleCache {
	if log == nil {
		log = logger.Nop()
	}
	return &CycleCache{rdb: rdb, ttl: ttl, log: log.With("component", "cycle_cache")}
}

func (c *CycleCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// Key returns wendler:cycle:{sha256 of the profile JSON}:{n}.
func Key(profile *models.UserProfile, cycleNumber int) (string, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, hex.EncodeToString(sum[:]), cycleNumber), nil
}

// Cycle returns cycle n for profile, from Redis when possible. Cache failures
// are logged and never surface: the cycle is generated instead.
func (c *CycleCache) Cycle(ctx context.Context, profile *models.UserProfile, cycleNumber int) (*models.WorkoutCycle, error) {
	if c == nil || c.rdb == nil || profile == nil {
		return wendler.GenerateCycle(profile, cycleNumber)
	}

	key, err := Key(profile, cycleNumber)
	if err != nil {
		return wendler.GenerateCycle(profile, cycleNumber)
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cycle models.WorkoutCycle
		if err := json.Unmarshal(raw, &cycle); err == nil {
			c.log.Debug("cycle cache hit", "cycle", cycleNumber)
			return &cycle, nil
		}
		c.log.Warn("dropping unreadable cached cycle", "key", key)
	case errors.Is(err, goredis.Nil):
	default:
		c.log.Warn("cycle cache unavailable", "error", err)
		return wendler.GenerateCycle(profile, cycleNumber)
	}

	cycle, err := wendler.GenerateCycle(profile, cycleNumber)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(cycle); err == nil {
		if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.log.Warn("cycle cache write failed", "error", err)
		}
	}
	return cycle, nil
}
