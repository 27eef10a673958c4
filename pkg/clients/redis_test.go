package clients

import (
	"testing"
	"time"

	"github.com/DRSN-tech/store-backend/internal/cfg"
	"github.com/stretchr/testify/assert"
)

func TestRedisOptions(t *testing.T) {
	opts := redisOptions(&cfg.RedisCfg{
		Addr:        "cache:6379",
		User:        "app",
		Password:    "pw",
		DB:          2,
		MaxRetries:  3,
		DialTimeout: time.Second,
		Timeout:     2 * time.Second,
	})

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "app", opts.Username)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 2*time.Second, opts.ReadTimeout)
	assert.Equal(t, 2*time.Second, opts.WriteTimeout)
}
