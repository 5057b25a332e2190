package render

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// FrameLimiter paces an animation loop to a fixed frame duration.
type FrameLimiter struct {
	limiter *rate.Limiter
}

// NewFrameLimiter creates a limiter emitting one frame per interval.
// A non-positive interval disables pacing.
func NewFrameLimiter(interval time.Duration) *FrameLimiter {
	if interval <= 0 {
		return &FrameLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &FrameLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the next frame is due or the context is cancelled.
func (f *FrameLimiter) Wait(ctx context.Context) error {
	return f.limiter.Wait(ctx)
}
