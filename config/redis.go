package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ariebrainware/hospital-api/util"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 2 * time.Second

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// redisOptions returns nil when the rate limiter store is switched off.
func redisOptions(cfg *Config) *redis.Options {
	if cfg.IsTest() || cfg.RedisAddr == "" {
		return nil
	}
	return &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// ConnectRedis dials Redis once per process. It returns a nil client and no
// error under APPENV=test or without REDIS_ADDR; a failed ping leaves the
// client nil as well.
func ConnectRedis() (*redis.Client, error) {
	var err error
	redisOnce.Do(func() {
		opts := redisOptions(LoadConfig())
		if opts == nil {
			util.Logger().Debug().Msg("redis disabled")
			return
		}

		rdb := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
			_ = rdb.Close()
			err = fmt.Errorf("ping redis at %s: %w", opts.Addr, pingErr)
			return
		}

		redisClient = rdb
		util.Logger().Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("connected to redis")
	})
	return redisClient, err
}

// GetRedisClient returns the client set up by ConnectRedis, or nil.
func GetRedisClient() *redis.Client {
	return redisClient
}
