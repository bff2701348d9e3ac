package main

import (
	"context"
	"time"

	"haven/internal/ratelimiter"
)

// sweepRateLimiterEvery drops expired rate limiter windows until ctx is done.
func (app *application) sweepRateLimiterEvery(ctx context.Context, interval time.Duration) {
	limiter, ok := app.rateLimiter.(*ratelimiter.FixedWindowRateLimiter)
	if !ok || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := limiter.Sweep(); removed > 0 {
					app.logger.Debugf("rate limiter swept %d expired windows", removed)
				}
			}
		}
	}()
}
