package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/devson1024/vedinsta-resolver/pkg/logger"
)

// Config controls the randomized linear backoff between attempts: each wait
// is drawn uniformly from [MinInterval, MaxInterval] and multiplied by the
// attempt number.
type Config struct {
	MaxRetries  uint64
	MinInterval time.Duration
	MaxInterval time.Duration

	// Rand returns a value in [0,1) used to draw the jittered interval. Nil
	// means math/rand; tests inject a deterministic source.
	Rand func() float64

	// Timer overrides how the waits happen. Nil means real sleeps; tests
	// inject a timer that fires immediately and records durations.
	Timer backoff.Timer
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:  2,
		MinInterval: 3 * time.Second,
		MaxInterval: 7 * time.Second,
	}
}

// linearJitterBackOff widens the wait with each attempt. The upstream API
// tolerates a slow linear ramp better than an aggressive exponential one.
type linearJitterBackOff struct {
	min, max time.Duration
	rand     func() float64
	attempt  int
}

func (b *linearJitterBackOff) NextBackOff() time.Duration {
	b.attempt++
	span := float64(b.max - b.min)
	d := b.min + time.Duration(b.rand()*span)
	return time.Duration(b.attempt) * d
}

func (b *linearJitterBackOff) Reset() { b.attempt = 0 }

// Do runs operation with bounded randomized backoff, MaxRetries+1 attempts
// at most. Wrap an error in backoff.Permanent to stop retrying immediately.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	rnd := cfg.Rand
	if rnd == nil {
		rnd = rand.Float64
	}

	bo := &linearJitterBackOff{min: cfg.MinInterval, max: cfg.MaxInterval, rand: rnd}
	bo.Reset()

	retryable := backoff.WithMaxRetries(bo, cfg.MaxRetries)
	retryableWithContext := backoff.WithContext(retryable, ctx)

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotifyWithTimer(operation, retryableWithContext, notify, cfg.Timer)
}
