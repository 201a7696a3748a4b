package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/devson1024/vedinsta-resolver/pkg/config"
)

// Pacer spaces out successive calls to the private API within a single
// invocation, mirroring the polite-crawl behavior Instagram tolerates.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer builds the process-wide token bucket. The first call is never
// delayed; subsequent calls are spread across the configured per-minute
// budget.
func NewPacer(cfg *config.Config) Pacer {
	rpm := cfg.Resolver.RequestsPerMinute
	if rpm <= 0 {
		rpm = 12
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
}
