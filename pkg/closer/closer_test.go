package closer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(0)

	var order []int
	for i := 1; i <= 3; i++ {
		c.Add("res", func(ctx context.Context) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0)
	c.Add("redis", func(ctx context.Context) error { return errors.New("dial failed") })
	c.Add("http", func(ctx context.Context) error { return nil })
	c.Add("mongo", func(ctx context.Context) error { return errors.New("disconnect failed") })

	err := c.Close(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis: dial failed")
	assert.Contains(t, err.Error(), "mongo: disconnect failed")

	// повторный Close ничего не делает
	assert.NoError(t, c.Close(context.Background()))
}

func TestCloser_ForcedOnTimeout(t *testing.T) {
	c := NewCloser(50 * time.Millisecond)

	forced := make(chan struct{}, 1)
	c.Add("fast", func(ctx context.Context) error {
		select {
		case forced <- struct{}{}:
		default:
		}
		return nil
	})
	c.Add("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadline exceeded")
}
