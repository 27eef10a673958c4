package jitter

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Bounds(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, 0.5, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, 0.5, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoff_CapsAtMax(t *testing.T) {
	got := ExponentialBackoff(time.Second, 4*time.Second, 10, 0)
	assert.Equal(t, 4*time.Second, got)

	got = ExponentialBackoff(time.Second, time.Minute, 2, 0)
	assert.Equal(t, 4*time.Second, got)
}

func TestRetry(t *testing.T) {
	t.Run("stops on success", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), 5, time.Millisecond, time.Millisecond, func(int) error {
			calls++
			if calls < 3 {
				return errors.New("not yet")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), 2, time.Millisecond, time.Millisecond, func(int) error {
			calls++
			return errors.New("down")
		})
		assert.EqualError(t, err, "down")
		assert.Equal(t, 2, calls)
	})

	t.Run("zero attempts is an error", func(t *testing.T) {
		for _, attempts := range []int{0, -1} {
			calls := 0
			err := Retry(context.Background(), attempts, time.Millisecond, time.Millisecond, func(int) error {
				calls++
				return nil
			})
			assert.ErrorIs(t, err, ErrNoAttempts)
			assert.Zero(t, calls)
		}
	})

	t.Run("honours context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Retry(ctx, 3, time.Hour, time.Hour, func(int) error { return errors.New("down") })
		assert.ErrorIs(t, err, context.Canceled)
	})
}
