package redis

import (
	"Sheetcast/internal/api/config"
	"Sheetcast/internal/pkg/logger"
	"context"
	log "log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// Rdb 为 nil 时缓存、黑名单与任务锁全部降级为空操作
var Rdb *redis.Client

const pingTimeout = 5 * time.Second

// InitRedis 连接 Redis，addr 为空时跳过
func InitRedis(cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		log.Warn("Redis addr is empty, dashboard cache and token blacklist are disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return errors.Wrapf(err, "ping redis %s", cfg.Addr)
	}

	Rdb = rdb
	return nil
}

// Close 关闭连接，未初始化时什么都不做
func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
