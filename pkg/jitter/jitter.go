// Package jitter считает интервалы повторов с экспоненциальным ростом и случайной добавкой,
// чтобы повторные подключения к хранилищам не приходили одновременно.
package jitter

import (
	"context"
	"errors"
	mathrand "math/rand"
	"math/rand/v2"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

// Duration возвращает d с добавкой в диапазоне [0, d*jitterFactor].
func Duration(d time.Duration, jitterFactor float64) time.Duration {
	return d + time.Duration(rand.Float64()*jitterFactor*float64(d))
}

// DurationWithSeed то же, что Duration, но с заданным генератором (для тестов).
func DurationWithSeed(d time.Duration, jitterFactor float64, rng *mathrand.Rand) time.Duration {
	return d + time.Duration(rng.Float64()*jitterFactor*float64(d))
}

// ExponentialBackoff возвращает base*2^attempt, ограниченное max, с джиттером.
// attempt нумеруется с нуля.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff > max {
			backoff = max
			break
		}
	}
	return Duration(backoff, jitterFactor)
}

// ErrNoAttempts возвращается Retry, если attempts < 1 и fn не была вызвана ни разу.
var ErrNoAttempts = errors.New("retry: attempts must be at least 1")

// Retry вызывает fn до attempts раз, делая паузу ExponentialBackoff между попытками.
// Возвращает последнюю ошибку fn или ошибку контекста.
func Retry(ctx context.Context, attempts int, base, max time.Duration, fn func(attempt int) error) error {
	if attempts < 1 {
		return ErrNoAttempts
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}

		if attempt == attempts-1 {
			break
		}

		select {
		case <-time.After(ExponentialBackoff(base, max, attempt, DefaultJitter)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}
