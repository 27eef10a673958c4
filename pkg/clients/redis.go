package clients

import (
	"context"

	"github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/DRSN-tech/store-backend/pkg/e"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// RedisClient — обёртка над go-redis, через которую ходит кэш товаров.
type RedisClient struct {
	Client *goredis.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	return &RedisClient{
		Client: goredis.NewClient(redisOptions(cfg)),
	}
}

func redisOptions(cfg *cfg.RedisCfg) *goredis.Options {
	return &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	}
}

// Ping проверяет доступность сервера; кэш необязателен, поэтому вызывающий решает, фатальна ли ошибка.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *RedisClient) Close(context.Context) error {
	return r.Client.Close()
}
